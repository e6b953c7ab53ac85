package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"scholarhub/internal/adapters/http/middleware"
	"scholarhub/internal/adapters/http/routes"
	"scholarhub/internal/adapters/persistence/models"
	"scholarhub/internal/adapters/persistence/repositories"
	"scholarhub/internal/config"
	"scholarhub/internal/core/services"
	"scholarhub/internal/pkg/filestorage"

	"github.com/gofiber/fiber/v2"

	_ "scholarhub/docs" // Swagger docs
)

// @title ScholarHub API
// @version 1.0
// @description Scholarship application portal API

// @host localhost:3000
// @BasePath /api
// @schemes http

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	// Auto migrate (creates tables if not exist)
	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	// Seed admin user and starter scheme catalog
	if err := config.NewSeeder(db).Run(); err != nil {
		log.Printf("⚠️ Warning: Failed to seed data: %v", err)
	}

	// Document store for uploaded files
	storage, err := filestorage.NewLocalStorage(cfg.Upload.Dir)
	if err != nil {
		log.Fatalf("❌ Failed to init upload storage: %v", err)
	}

	// Nightly orphan-upload sweep
	cronService := services.NewCronService(repositories.NewDocumentRepository(db), storage)
	cronService.Start()
	defer cronService.Stop()

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "ScholarHub API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	// Setup middlewares
	middleware.Setup(app, cfg)

	// Setup routes (pass db, cfg and storage for dependency injection)
	routes.Setup(app, db, cfg, storage)

	// Graceful shutdown
	go gracefulShutdown(app)

	// Start server
	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.Shutdown(); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
