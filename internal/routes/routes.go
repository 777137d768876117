// Package routes defines the API routing configuration.
// It wires repositories, services and handlers, and sets up all HTTP
// routes with their middleware.
package routes

import (
	"zfunds/internal/handlers"
	"zfunds/internal/middleware"
	"zfunds/internal/models"
	"zfunds/internal/repositories"
	"zfunds/internal/services/advisory"
	"zfunds/internal/services/auth"
	"zfunds/internal/services/catalog"
	"zfunds/internal/services/otp"
	"zfunds/internal/services/purchase"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// SetupRoutes configures all application routes.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// Repositories
	identityRepo := repositories.NewIdentityRepository(db, repositories.CacheService)
	catalogRepo := repositories.NewCatalogRepository(db)
	purchaseRepo := repositories.NewPurchaseRepository(db)

	// Services
	otpService := otp.NewService()
	authService := auth.NewService(identityRepo)
	advisoryService := advisory.NewService(identityRepo, otpService, authService)
	catalogService := catalog.NewService(catalogRepo)
	purchaseService := purchase.NewService(identityRepo, catalogRepo, purchaseRepo)

	// Handlers
	advisoryHandler := handlers.NewAdvisoryHandler(advisoryService)
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	purchaseHandler := handlers.NewPurchaseHandler(purchaseService)
	authHandler := handlers.NewAuthHandler(authService)

	app.Get("/health", handlers.HealthCheck)

	app.Get("/", func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"message": "Welcome to zfunds API",
			"version": "1.0.0",
			"docs":    "/api",
		})
	})

	api := app.Group("/api")

	// Public endpoints (no auth required)
	api.Post("/advisor-signup", advisoryHandler.AdvisorSignup)
	api.Post("/user-signup", advisoryHandler.UserSignup)
	api.Post("/request-otp", advisoryHandler.RequestOTP)
	api.Post("/add-product", catalogHandler.AddProduct)
	api.Post("/refresh", authHandler.RefreshToken)

	// Protected routes with auth middleware
	authMiddleware := middleware.NewAuthMiddleware(authService)
	protected := api.Use(authMiddleware.Handler)

	protected.Post("/add-client",
		middleware.HasPermission(models.PermissionClientWrite), advisoryHandler.AddClient)
	protected.Get("/list-clients/:advisor_id",
		middleware.HasPermission(models.PermissionClientRead), advisoryHandler.ListClients)
	protected.Post("/advisor-purchase-product",
		middleware.HasPermission(models.PermissionPurchaseWrite), purchaseHandler.AdvisorPurchaseProduct)
	protected.Post("/logout", authHandler.Logout)
}
