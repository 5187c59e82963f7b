package main

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sefazor/shootbook-backend/internal/config"
	"github.com/sefazor/shootbook-backend/internal/handler"
	"github.com/sefazor/shootbook-backend/internal/middleware"
	"github.com/sefazor/shootbook-backend/internal/models"
	"github.com/sefazor/shootbook-backend/internal/service"
	"github.com/sefazor/shootbook-backend/pkg/jwt"
)

type Handlers struct {
	Auth         *handler.AuthHandler
	User         *handler.UserHandler
	Photographer *handler.PhotographerHandler
	Portfolio    *handler.PortfolioHandler
	Catalog      *handler.CatalogHandler
	Cart         *handler.CartHandler
	Booking      *handler.BookingHandler
	Payment      *handler.PaymentHandler
	Notification *handler.NotificationHandler
}

func NewFiberApp(cfg *config.Config, tokens *jwt.Manager, h *Handlers) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "shootbook",
		BodyLimit:    service.MaxPortfolioFileSize + 1024*1024,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 30 * time.Second,
	})

	// Global Middleware'ler önce tanımlanmalı
	app.Use(recover.New())
	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(strings.Fields(strings.ReplaceAll(cfg.CORSOrigins, ",", " ")), ", "),
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowMethods:     "GET, POST, PUT, PATCH, DELETE",
		AllowCredentials: true,
	}))
	app.Use(logger.New())
	app.Use(limiter.New(limiter.Config{
		Max:        cfg.RateLimit,
		Expiration: 1 * time.Minute,
		KeyGenerator: func(c *fiber.Ctx) string {
			return c.IP()
		},
		Next: func(c *fiber.Ctx) bool {
			// Stripe webhook'ları rate limit'e takılmamalı
			return c.Path() == "/api/payments/webhook"
		},
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.JSON(models.SuccessResponse(fiber.Map{"status": "ok"}, ""))
	})

	registerRoutes(app.Group("/api"), tokens, h)

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusNotFound).JSON(models.ErrorResponse("Route not found"))
	})
	return app
}

func registerRoutes(api fiber.Router, tokens *jwt.Manager, h *Handlers) {
	// Public routes
	authRoutes := api.Group("/auth")
	authRoutes.Post("/register", h.Auth.Register)
	authRoutes.Post("/login", h.Auth.Login)

	api.Get("/photographers", h.Photographer.List)
	api.Get("/photographers/:id", h.Photographer.Get)
	api.Get("/photographers/:id/availability", h.Photographer.Availability)
	api.Get("/photographers/:id/portfolio", h.Portfolio.List)

	catalog := api.Group("/catalog")
	catalog.Get("/locations", h.Catalog.ListLocations)
	catalog.Get("/equipment", h.Catalog.ListEquipment)
	catalog.Get("/transport", h.Catalog.ListTransport)

	// Stripe webhook (public)
	api.Post("/payments/webhook", h.Payment.HandleStripeWebhook)

	// Protected routes. Her grup kendi prefix'iyle auth alır, bilinmeyen
	// public path'ler 401 yerine 404 döner.
	auth := middleware.AuthMiddleware(tokens)

	user := api.Group("/user", auth)
	user.Get("/profile", h.User.GetMyProfile)
	user.Put("/profile", h.User.UpdateProfile)
	user.Post("/change-password", h.User.ChangePassword)

	cart := api.Group("/cart", auth)
	cart.Get("/", h.Cart.Get)
	cart.Put("/type", h.Cart.SetType)
	cart.Put("/location", h.Cart.SetLocation)
	cart.Put("/date", h.Cart.SetDate)
	cart.Put("/rental-days", h.Cart.SetRentalDays)
	cart.Post("/items", h.Cart.AddItem)
	cart.Put("/items/:kind/:refId", h.Cart.UpdateItem)
	cart.Delete("/items/:kind/:refId", h.Cart.RemoveItem)
	cart.Post("/next", h.Cart.Next)
	cart.Post("/back", h.Cart.Back)
	cart.Post("/goto", h.Cart.GoTo)
	cart.Delete("/", h.Cart.Reset)
	cart.Post("/checkout", h.Cart.Checkout)

	bookings := api.Group("/bookings", auth)
	bookings.Get("/", h.Booking.ListMine)
	bookings.Get("/:id", h.Booking.GetMine)
	bookings.Post("/:id/cancel", h.Booking.Cancel)
	bookings.Get("/:id/qr", h.Booking.QRCode)
	bookings.Post("/:id/checkout", h.Payment.CreateCheckoutSession)

	notifications := api.Group("/notifications", auth)
	notifications.Get("/", h.Notification.List)
	notifications.Get("/unread-count", h.Notification.UnreadCount)
	notifications.Patch("/:id/read", h.Notification.MarkRead)
	notifications.Patch("/read-all", h.Notification.MarkAllRead)

	// Fotoğrafçı paneli
	photographer := api.Group("/dashboard", auth, middleware.RequireRole(models.RolePhotographer))
	photographer.Get("/profile", h.Photographer.GetMine)
	photographer.Put("/profile", h.Photographer.UpdateMine)
	photographer.Post("/availability", h.Photographer.BlockDates)
	photographer.Delete("/availability", h.Photographer.UnblockDates)
	photographer.Post("/portfolio", h.Portfolio.Upload)
	photographer.Delete("/portfolio/:imageId", h.Portfolio.Delete)
	photographer.Get("/bookings", h.Booking.ListForPhotographer)

	admin := api.Group("/admin", auth, middleware.RequireRole(models.RoleAdmin))
	admin.Get("/bookings", h.Booking.AdminList)
	admin.Get("/bookings/:id", h.Booking.AdminGet)
	admin.Put("/bookings/:id/status", h.Booking.AdminUpdateStatus)
	admin.Put("/photographers/:id/grade", h.Photographer.AssignGrade)

	admin.Get("/locations", h.Catalog.ListLocations)
	admin.Post("/locations", h.Catalog.CreateLocation)
	admin.Put("/locations/:id", h.Catalog.UpdateLocation)
	admin.Delete("/locations/:id", h.Catalog.DeleteLocation)
	admin.Get("/equipment", h.Catalog.ListEquipment)
	admin.Post("/equipment", h.Catalog.CreateEquipment)
	admin.Put("/equipment/:id", h.Catalog.UpdateEquipment)
	admin.Delete("/equipment/:id", h.Catalog.DeleteEquipment)
	admin.Get("/transport", h.Catalog.ListTransport)
	admin.Post("/transport", h.Catalog.CreateTransport)
	admin.Put("/transport/:id", h.Catalog.UpdateTransport)
	admin.Delete("/transport/:id", h.Catalog.DeleteTransport)
}
