package http

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rakshalokam/storefront-api/internal/adapter/http/middleware"
	"github.com/rakshalokam/storefront-api/internal/logging"
)

func NewRouter(
	checkout *CheckoutHandler,
	store *StorefrontHandler,
	webhook *WebhookHandler,
	th *TokenHandler,
	authz *middleware.Authz,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.MetricsMiddleware())

	l := logging.New("http")
	r.Use(middleware.Logging(l), middleware.Session())

	r.GET("/healthz", func(c *gin.Context) {
		logging.From(c).Info("health check")
		c.JSON(200, gin.H{"ok": true})
	})
	// Prometheus endpoint (scraped by Prometheus)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	r.POST("/v1/token", th.IssueToken)

	r.GET("/home", store.Home)
	r.GET("/products/:slug/reviews", store.ProductReviews)

	co := r.Group("/checkout")
	{
		co.GET("/shipping", checkout.ShippingPage)
		co.POST("/shipping", checkout.SetShipping)
		co.GET("/payment", checkout.PaymentPage)
		co.POST("/payment", checkout.ApplyPayment)
		co.GET("/confirmation/:code", checkout.Confirmation)
	}

	r.POST("/webhooks/razorpay", webhook.Razorpay)

	v1 := r.Group("/v1")
	{
		v1.POST("/reviews", authz.Require("reviews.write"), store.AddReview)
		v1.GET("/reviews/:id", authz.Require("reviews.read"), store.GetReview)
	}

	return r
}
