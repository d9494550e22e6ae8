package app

import (
	"context"
	"database/sql"
	"time"

	"github.com/gin-gonic/gin"
	_ "github.com/go-sql-driver/mysql"
	"github.com/rabbitmq/amqp091-go"
	"github.com/rakshalokam/storefront-api/configs"
	"github.com/rakshalokam/storefront-api/internal/adapter/cache"
	"github.com/rakshalokam/storefront-api/internal/adapter/commerce"
	"github.com/rakshalokam/storefront-api/internal/adapter/http"
	"github.com/rakshalokam/storefront-api/internal/adapter/http/middleware"
	"github.com/rakshalokam/storefront-api/internal/adapter/kafka"
	"github.com/rakshalokam/storefront-api/internal/adapter/queue"
	"github.com/rakshalokam/storefront-api/internal/adapter/repo"
	"github.com/rakshalokam/storefront-api/internal/logging"
	"github.com/rakshalokam/storefront-api/internal/security"
	"github.com/rakshalokam/storefront-api/internal/usecase"
	"github.com/redis/go-redis/v9"
)

type App struct {
	Router *gin.Engine
}

func InitWithConfig(cfg configs.Config) (*App, func(), error) {
	logger := logging.Init("storefront-api", "./logs/app.log")

	// init database (local review store)
	db, err := sql.Open("mysql", cfg.MySQL.DSN)
	if err != nil {
		return nil, nil, err
	}
	db.SetConnMaxLifetime(cfg.MySQL.ConnMaxLifetime)
	db.SetMaxOpenConns(cfg.MySQL.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MySQL.MaxIdleConns)

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	if err := db.PingContext(ctx); err != nil {
		cancel()
		return nil, nil, err
	}
	cancel()

	logger.Info("storefront-api: Starting up...")

	// init redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, nil, err
	}

	// init rabbitmq
	conn, err := amqp091.Dial(cfg.Rabbit.URL)
	if err != nil {
		return nil, nil, err
	}
	ch, err := conn.Channel()
	if err != nil {
		return nil, nil, err
	}

	// commerce backend client (shop GraphQL API)
	gw := commerce.NewClient(cfg)

	// infra
	reviewRepo := repo.NewMySQLReviewRepo(db)
	redisCache := cache.NewRedisCache(rdb, cfg.Cache.TTL)
	dedup := cache.NewRedisEventDedup(rdb, cfg.Webhook.DedupTTL)
	producer, err := queue.NewRabbitProducer(ch)
	if err != nil {
		return nil, nil, err
	}
	verifier := security.NewRazorpaySignatures(cfg.Razorpay.KeySecret, cfg.Razorpay.WebhookSecret)

	// register queue-handler
	setupQueue(ch, cfg)

	// register kafka-listener
	setupKafkaListener(cfg, redisCache)

	// init handlers + routers + middleware
	prepareUC := usecase.NewPreparePayment(gw, cfg.Razorpay.KeyID)
	applyUC := usecase.NewApplyPayment(gw, producer)
	shippingUC := usecase.NewShippingStep(gw)
	confirmationUC := usecase.NewConfirmation(gw, redisCache)
	showcaseUC := usecase.NewShowcase(gw, redisCache)
	reviewsUC := usecase.NewReviews(reviewRepo)

	checkout := http.NewCheckoutHandler(gw, prepareUC, applyUC, shippingUC, confirmationUC)
	store := http.NewStorefrontHandler(showcaseUC, reviewsUC, reviewRepo)
	webhook := http.NewWebhookHandler(verifier, dedup, redisCache)
	th := http.NewTokenHandler(cfg)
	auth := middleware.NewAuthz(cfg)
	router := http.NewRouter(checkout, store, webhook, th, auth)

	cleanup := func() {
		_ = ch.Close()
		_ = conn.Close()
		_ = db.Close()
		_ = rdb.Close()
	}

	return &App{Router: router}, cleanup, nil
}

func setupQueue(ch *amqp091.Channel, cfg configs.Config) {
	h := queue.NewOrderPlacedHandler(cfg.Notify.WhatsAppNumber)

	router := queue.NewRouter(ch, queue.WithPrefetch(50))
	router.Register("order.placed.q", queue.JSONHandler[usecase.OrderPlacedMsg]{HandleFunc: h.HandleOrderPlaced})

	if err := router.Start(); err != nil {
		panic(err)
	}
}

func setupKafkaListener(cfg configs.Config, redisCache *cache.RedisCache) {
	grp, err := kafka.NewGroup(cfg.Kafka.Brokers, cfg.Kafka.GroupID)
	if err != nil {
		panic(err)
	}

	h := kafka.NewOrderStateChangedHandler(redisCache)
	consumer := kafka.NewConsumer(grp, []string{cfg.Kafka.Topic}, h.Handle)

	// Run in background (respect app context if you have one)
	go func() {
		if err := consumer.Start(context.Background()); err != nil {
			panic(err)
		}
	}()
}
