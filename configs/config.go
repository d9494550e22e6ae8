package configs

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

type Config struct {
	App struct {
		Name     string `koanf:"name"`
		HTTPAddr string `koanf:"http_addr"`
		LogLevel string `koanf:"log_level"`
	} `koanf:"app"`

	HTTP struct {
		ReadTimeout  time.Duration `koanf:"read_timeout"`
		WriteTimeout time.Duration `koanf:"write_timeout"`
		IdleTimeout  time.Duration `koanf:"idle_timeout"`
	} `koanf:"http"`

	// Commerce is the headless commerce backend (shop GraphQL API).
	Commerce struct {
		APIURL       string        `koanf:"api_url"`
		ChannelToken string        `koanf:"channel_token"`
		Timeout      time.Duration `koanf:"timeout"`
	} `koanf:"commerce"`

	MySQL struct {
		DSN             string        `koanf:"dsn"`
		MaxOpenConns    int           `koanf:"max_open_conns"`
		MaxIdleConns    int           `koanf:"max_idle_conns"`
		ConnMaxLifetime time.Duration `koanf:"conn_max_lifetime"`
	} `koanf:"mysql"`

	Redis struct {
		Addr     string `koanf:"addr"`
		Password string `koanf:"password"`
	} `koanf:"redis"`

	Cache struct {
		TTL time.Duration `koanf:"ttl"`
	} `koanf:"cache"`

	Webhook struct {
		DedupTTL time.Duration `koanf:"dedup_ttl"`
	} `koanf:"webhook"`

	Razorpay struct {
		KeyID         string `koanf:"key_id"`
		KeySecret     string `koanf:"key_secret"`
		WebhookSecret string `koanf:"webhook_secret"`
	} `koanf:"razorpay"`

	Rabbit struct {
		URL string `koanf:"url"`
	} `koanf:"rabbitmq"`

	Kafka struct {
		Brokers []string `koanf:"brokers"`
		GroupID string   `koanf:"group_id"`
		Topic   string   `koanf:"topic"`
	} `koanf:"kafka"`

	Security struct {
		JWTSecret string        `koanf:"jwt_secret"`
		Issuer    string        `koanf:"issuer"`
		Audience  string        `koanf:"audience"`
		TTL       time.Duration `koanf:"ttl"`
	} `koanf:"security"`

	Notify struct {
		WhatsAppNumber string `koanf:"whatsapp_number"`
	} `koanf:"notify"`

	Populate struct {
		DBHost      string `koanf:"db_host"`
		DBPort      int    `koanf:"db_port"`
		ProductsCSV string `koanf:"products_csv"`
	} `koanf:"populate"`
}

func Load(pathDir, envName string) (Config, error) {
	k := koanf.New(".")
	// 1) base
	if err := k.Load(file.Provider(fmt.Sprintf("%s/base.yaml", pathDir)), yaml.Parser()); err != nil {
		return Config{}, fmt.Errorf("load base: %w", err)
	}

	// 2) env override (dev/staging/prod). Optional: allow missing for local runs.
	_ = k.Load(file.Provider(fmt.Sprintf("%s/%s.yaml", pathDir, envName)), yaml.Parser())

	// 3) environment variables override (prefix STOREFRONT_, nested with __)
	// e.g. STOREFRONT_MYSQL__DSN, STOREFRONT_RAZORPAY__KEY_ID
	if err := k.Load(env.Provider("STOREFRONT_", ".", func(s string) string {
		s = strings.TrimPrefix(s, "STOREFRONT_")
		s = strings.ReplaceAll(s, "__", ".")
		return strings.ToLower(s)
	}), nil); err != nil {
		return Config{}, fmt.Errorf("env overlay: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal: %w", err)
	}

	// Gateway secrets keep their conventional process-environment names.
	if cfg.Razorpay.KeyID == "" {
		cfg.Razorpay.KeyID = os.Getenv("RAZORPAY_KEY_ID")
	}
	if cfg.Razorpay.KeySecret == "" {
		cfg.Razorpay.KeySecret = os.Getenv("RAZORPAY_KEY_SECRET")
	}
	if cfg.Razorpay.WebhookSecret == "" {
		cfg.Razorpay.WebhookSecret = os.Getenv("RAZORPAY_WEBHOOK_SECRET")
	}
	if cfg.Notify.WhatsAppNumber == "" {
		cfg.Notify.WhatsAppNumber = os.Getenv("WHATSAPP_NUMBER")
	}
	cfg.Notify.WhatsAppNumber = digitsOnly(cfg.Notify.WhatsAppNumber)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.App.HTTPAddr == "" {
		return fmt.Errorf("app.http_addr required")
	}
	if c.Commerce.APIURL == "" {
		return fmt.Errorf("commerce.api_url required")
	}
	if c.MySQL.DSN == "" {
		return fmt.Errorf("mysql.dsn required")
	}
	if len(c.Kafka.Brokers) == 0 {
		return fmt.Errorf("kafka.brokers required (can be dummy for now)")
	}
	return nil
}

// digitsOnly strips everything except digits, so "+91 98765-43210" from
// config or the process environment becomes a dialable WhatsApp number.
func digitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
