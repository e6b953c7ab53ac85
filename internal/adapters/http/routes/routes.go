package routes

import (
	"time"

	"scholarhub/internal/adapters/http/handlers"
	"scholarhub/internal/adapters/http/middleware"
	"scholarhub/internal/adapters/persistence/repositories"
	"scholarhub/internal/config"
	"scholarhub/internal/core/services"
	"scholarhub/internal/pkg/filestorage"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"gorm.io/gorm"
)

// Setup configures all routes for the application
func Setup(app *fiber.App, db *gorm.DB, cfg *config.Config, storage filestorage.Storage) {
	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	schemeRepo := repositories.NewSchemeRepository(db)
	appRepo := repositories.NewApplicationRepository(db)
	docRepo := repositories.NewDocumentRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo, cfg)
	schemeService := services.NewSchemeService(schemeRepo)
	appService := services.NewApplicationService(appRepo, docRepo, userRepo, schemeRepo, storage)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	authHandler := handlers.NewAuthHandler(authService)
	schemeHandler := handlers.NewSchemeHandler(schemeService)
	appHandler := handlers.NewApplicationHandler(appService)
	adminHandler := handlers.NewAdminHandler(appService)

	// Health check & root routes
	app.Get("/", healthHandler.Root)
	app.Get("/health", healthHandler.HealthCheck)

	// Swagger documentation
	app.Get("/swagger/*", swagger.HandlerDefault)

	// API group
	api := app.Group("/api")
	setupAPIRoutes(api, authHandler, schemeHandler, appHandler, adminHandler, cfg)
}

// setupAPIRoutes configures the portal API routes
func setupAPIRoutes(
	router fiber.Router,
	authHandler *handlers.AuthHandler,
	schemeHandler *handlers.SchemeHandler,
	appHandler *handlers.ApplicationHandler,
	adminHandler *handlers.AdminHandler,
	cfg *config.Config,
) {
	// Auth routes (public, tighter rate limit)
	router.Post("/register", middleware.AuthRateLimiter(), authHandler.Register)
	router.Post("/login", middleware.AuthRateLimiter(), authHandler.Login)

	// Scheme catalog (public, cacheable)
	router.Get("/schemes", middleware.CacheControl(5*time.Minute), schemeHandler.List)
	router.Get("/schemes/:id", middleware.CacheControl(5*time.Minute), schemeHandler.GetByID)

	// Application workflow
	router.Post("/apply", appHandler.Apply)
	router.Get("/my-applications/:userId", middleware.NoCacheHeaders(), appHandler.MyApplications)
	router.Get("/application/:id", middleware.NoCacheHeaders(), appHandler.Detail)

	// Admin routes (guard is a pass-through unless enforcement is on)
	adminRoutes := router.Group("/admin")
	adminRoutes.Use(middleware.NoCacheHeaders())
	adminRoutes.Use(middleware.AdminGuard(cfg))
	adminRoutes.Get("/stats", adminHandler.Stats)
	adminRoutes.Get("/pending-applications", adminHandler.PendingApplications)
	adminRoutes.Post("/application/:id/approve", adminHandler.Approve)
	adminRoutes.Post("/application/:id/reject", adminHandler.Reject)
}
