package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/taskledger/taskledger/pkg/validator"

	"github.com/taskledger/taskledger/internal/adapter/handler"
	"github.com/taskledger/taskledger/internal/adapter/repository"
	"github.com/taskledger/taskledger/internal/infrastructure/database"
	"github.com/taskledger/taskledger/internal/usecase/actionitem"
	"github.com/taskledger/taskledger/internal/usecase/extraction"
	"github.com/taskledger/taskledger/internal/usecase/meeting"
	pkgai "github.com/taskledger/taskledger/pkg/ai"
	"github.com/taskledger/taskledger/pkg/config"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	log.Println("🔧 Initializing dependencies...")

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run migrations only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate.
	if cfg.Database.AutoMigrate {
		if cfg.IsProduction() {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		log.Println("🔄 Applying migrations (development only) ...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to apply migrations: %v", err)
		}
	} else {
		log.Println("🔄 Skipping migrations; use sql-migrate for schema migrations in CI/CD/production")
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	meetingRepo := repository.NewMeetingRepository(db)
	actionItemRepo := repository.NewActionItemRepository(db)

	// Initialize the Gemini client and extraction pipeline
	log.Println("🤖 Initializing extraction pipeline...")
	geminiClient, err := pkgai.NewGeminiClient(&cfg.Gemini)
	if err != nil {
		log.Fatalf("Failed to initialize Gemini client: %v", err)
	}
	extractionService := extraction.NewService(geminiClient, cfg, logger)
	log.Printf("✅ Extraction pipeline ready (model: %s)", cfg.Gemini.Model)

	// Initialize services
	log.Println("✨ Initializing services...")
	meetingService := meeting.NewService(meetingRepo, extractionService, logger)
	actionItemService := actionitem.NewService(actionItemRepo, meetingRepo, logger)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	healthHandler := handler.NewHealthHandler(cfg, db, geminiClient)
	meetingHandler := handler.NewMeetingHandler(meetingService, logger)
	actionItemHandler := handler.NewActionItemHandler(actionItemService, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, healthHandler, meetingHandler, actionItemHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
