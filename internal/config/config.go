package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type R2Config struct {
	AccountID       string
	AccessKeyID     string
	SecretAccessKey string
	Bucket          string
	PublicURL       string
}

type RedisConfig struct {
	Addr     string
	Password string
	DB       int
	CartTTL  time.Duration
}

type StripeConfig struct {
	SecretKey     string
	WebhookSecret string
	Currency      string
	SuccessURL    string
	CancelURL     string
}

type EmailConfig struct {
	APIKey   string
	From     string
	FromName string
}

type Config struct {
	Env         string
	Port        string
	FrontendURL string
	CORSOrigins string
	DatabaseURL string
	JWTSecret   string
	JWTIssuer   string
	JWTTTL      time.Duration
	BcryptCost  int
	RabbitMQURL string
	RateLimit   int

	AdminEmail    string
	AdminPassword string

	R2               R2Config
	CloudflareImages struct {
		AccountID string
		Token     string
		Hash      string // Images CDN URL'leri için hash değeri
	}
	Redis  RedisConfig
	Stripe StripeConfig
	Email  EmailConfig
}

func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// LoadConfig .env dosyası varsa yükler, sonra ortam değişkenlerini okur
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Env:         getenv("APP_ENV", "production"),
		Port:        getenv("PORT", "8080"),
		FrontendURL: getenv("FRONTEND_URL", "http://localhost:3000"),
		CORSOrigins: getenv("CORS_ORIGINS", "http://localhost:3000"),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		JWTIssuer:   getenv("JWT_ISSUER", "shootbook"),
		JWTTTL:      parseDur(getenv("JWT_TTL", "168h"), 7*24*time.Hour),
		BcryptCost:  atoi(getenv("BCRYPT_COST", "10"), 10),
		RabbitMQURL: os.Getenv("RABBITMQ_URL"),
		RateLimit:   atoi(getenv("RATE_LIMIT_PER_MINUTE", "60"), 60),

		AdminEmail:    os.Getenv("ADMIN_EMAIL"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
	}

	// R2 config
	cfg.R2.AccountID = os.Getenv("R2_ACCOUNT_ID")
	cfg.R2.AccessKeyID = os.Getenv("R2_ACCESS_KEY_ID")
	cfg.R2.SecretAccessKey = os.Getenv("R2_SECRET_ACCESS_KEY")
	cfg.R2.Bucket = os.Getenv("R2_BUCKET")
	cfg.R2.PublicURL = os.Getenv("R2_PUBLIC_URL")

	// Cloudflare Images config
	cfg.CloudflareImages.AccountID = os.Getenv("CLOUDFLARE_ACCOUNT_ID")
	cfg.CloudflareImages.Token = os.Getenv("CLOUDFLARE_IMAGES_TOKEN")
	cfg.CloudflareImages.Hash = os.Getenv("CLOUDFLARE_IMAGES_HASH")

	cfg.Redis = RedisConfig{
		Addr:     os.Getenv("REDIS_ADDR"),
		Password: os.Getenv("REDIS_PASSWORD"),
		DB:       atoi(getenv("REDIS_DB", "0"), 0),
		CartTTL:  parseDur(getenv("CART_TTL", "720h"), 30*24*time.Hour),
	}

	cfg.Stripe = StripeConfig{
		SecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		WebhookSecret: os.Getenv("STRIPE_WEBHOOK_SECRET"),
		Currency:      strings.ToLower(getenv("STRIPE_CURRENCY", "usd")),
		SuccessURL:    getenv("STRIPE_SUCCESS_URL", cfg.FrontendURL+"/bookings/success?session_id={CHECKOUT_SESSION_ID}"),
		CancelURL:     getenv("STRIPE_CANCEL_URL", cfg.FrontendURL+"/bookings/cancel"),
	}

	cfg.Email = EmailConfig{
		APIKey:   os.Getenv("RESEND_API_KEY"),
		From:     getenv("EMAIL_FROM_ADDRESS", "bookings@shootbook.app"),
		FromName: getenv("EMAIL_FROM_NAME", "Shootbook"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL must be set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET must be set")
	}

	return cfg, nil
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoi(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func parseDur(s string, def time.Duration) time.Duration {
	d, err := time.ParseDuration(s)
	if err != nil {
		return def
	}
	return d
}
