package main

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/sefazor/shootbook-backend/internal/booking"
	"github.com/sefazor/shootbook-backend/internal/config"
	"github.com/sefazor/shootbook-backend/internal/events"
	"github.com/sefazor/shootbook-backend/internal/service"
	"github.com/sefazor/shootbook-backend/pkg/bcrypt"
	"github.com/sefazor/shootbook-backend/pkg/cache"
	"github.com/sefazor/shootbook-backend/pkg/jwt"
	"github.com/sefazor/shootbook-backend/pkg/qrcode"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// App HTTP sunucusu ve varsa broker tüketicisi
type App struct {
	Fiber    *fiber.App
	Consumer *events.Consumer
}

func newApp(fiberApp *fiber.App, consumer *events.Consumer) *App {
	return &App{Fiber: fiberApp, Consumer: consumer}
}

func provideRedis(cfg *config.Config, logger *zap.Logger) (*redis.Client, func(), error) {
	client, err := cache.NewRedisClient(cfg)
	if err != nil {
		return nil, nil, err
	}
	if client == nil {
		return nil, func() {}, nil
	}
	return client, func() {
		if err := client.Close(); err != nil {
			logger.Warn("failed to close redis client", zap.Error(err))
		}
	}, nil
}

// provideCartStore Redis yoksa sepetler veritabanında tutulur
func provideCartStore(cfg *config.Config, db *gorm.DB, client *redis.Client, logger *zap.Logger) booking.Store {
	if client != nil {
		logger.Info("booking carts stored in redis", zap.String("addr", cfg.Redis.Addr))
		return booking.NewRedisStore(client, cfg.Redis.CartTTL, logger)
	}
	return booking.NewGormStore(db, logger)
}

func provideHasher(cfg *config.Config) *bcrypt.Hasher {
	return bcrypt.NewHasher(cfg.BcryptCost)
}

func provideTokens(cfg *config.Config) *jwt.Manager {
	return jwt.NewManager(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL)
}

func provideQR(cfg *config.Config) *qrcode.QRService {
	return qrcode.NewQRService(strings.TrimRight(cfg.FrontendURL, "/") + "/bookings")
}

// providePublisher RABBITMQ_URL yoksa olaylar aynı süreçte bildirim servisine gider
func providePublisher(cfg *config.Config, notifications *service.NotificationService, logger *zap.Logger) (service.EventPublisher, func()) {
	if cfg.RabbitMQURL == "" {
		return events.NewInProcessPublisher(notifications.HandleBookingEvent, logger), func() {}
	}
	p := events.NewPublisher(cfg.RabbitMQURL, logger)
	return p, func() {
		if err := p.Close(); err != nil {
			logger.Warn("failed to close publisher", zap.Error(err))
		}
	}
}

func provideConsumer(cfg *config.Config, notifications *service.NotificationService, logger *zap.Logger) *events.Consumer {
	if cfg.RabbitMQURL == "" {
		return nil
	}
	return events.NewConsumer(cfg.RabbitMQURL, notifications.HandleBookingEvent, logger)
}
