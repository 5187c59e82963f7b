//go:build wireinject
// +build wireinject

package main

import (
	"github.com/google/wire"
	"github.com/sefazor/shootbook-backend/internal/config"
	"github.com/sefazor/shootbook-backend/internal/controller"
	"github.com/sefazor/shootbook-backend/internal/handler"
	"github.com/sefazor/shootbook-backend/internal/repository"
	"github.com/sefazor/shootbook-backend/internal/service"
	"github.com/sefazor/shootbook-backend/pkg/database"
	"github.com/sefazor/shootbook-backend/pkg/email"
	"github.com/sefazor/shootbook-backend/pkg/payment"
	"github.com/sefazor/shootbook-backend/pkg/storage"
	"github.com/sefazor/shootbook-backend/pkg/utils"
	"go.uber.org/zap"
)

func InitializeApp(cfg *config.Config, logger *zap.Logger) (*App, func(), error) {
	wire.Build(
		// Infrastructure
		database.NewDatabase,
		provideRedis,
		provideCartStore,
		provideHasher,
		provideTokens,
		provideQR,
		providePublisher,
		provideConsumer,

		// External services
		email.NewEmailService,
		wire.Bind(new(service.Mailer), new(*email.EmailService)),
		payment.NewStripeService,
		wire.Bind(new(service.PaymentGateway), new(*payment.StripeService)),
		storage.NewCloudflareStorage,
		wire.Bind(new(storage.StorageService), new(*storage.CloudflareStorage)),
		storage.NewCloudflareImages,
		wire.Bind(new(storage.ImageService), new(*storage.CloudflareImages)),

		// Repositories
		repository.NewUserRepository,
		repository.NewPhotographerRepository,
		repository.NewAvailabilityRepository,
		repository.NewPortfolioRepository,
		repository.NewLocationRepository,
		repository.NewEquipmentRepository,
		repository.NewTransportRepository,
		repository.NewBookingRepository,
		repository.NewNotificationRepository,
		repository.NewTransactor,

		// Services
		service.NewAuthService,
		service.NewUserService,
		service.NewPhotographerService,
		service.NewPortfolioService,
		service.NewCatalogService,
		service.NewNotificationService,
		service.NewCartService,
		service.NewBookingService,

		// Controllers
		controller.NewAuthController,
		controller.NewUserController,
		controller.NewPaymentController,

		// Validator
		utils.NewValidator,

		// Handlers
		handler.NewAuthHandler,
		handler.NewUserHandler,
		handler.NewPhotographerHandler,
		handler.NewPortfolioHandler,
		handler.NewCatalogHandler,
		handler.NewCartHandler,
		handler.NewBookingHandler,
		handler.NewPaymentHandler,
		handler.NewNotificationHandler,
		wire.Struct(new(Handlers), "*"),

		// App
		NewFiberApp,
		newApp,
	)
	return nil, nil, nil
}
