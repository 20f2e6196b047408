package main

import (
	"context"
	"log"
	"os"

	"github.com/faturango/fatura-api/internal/application/service"
	"github.com/faturango/fatura-api/internal/config"
	"github.com/faturango/fatura-api/internal/infrastructure/cache"
	"github.com/faturango/fatura-api/internal/infrastructure/database"
	"github.com/faturango/fatura-api/internal/infrastructure/repository"
	"github.com/faturango/fatura-api/internal/presentation/http/handler"
	"github.com/faturango/fatura-api/internal/presentation/http/routes"
	"github.com/faturango/fatura-api/pkg/email"
	"github.com/faturango/fatura-api/pkg/render"
	"github.com/faturango/fatura-api/pkg/utils"
	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Connect to redis for the invoice archive
	redisClient, err := cache.NewRedisClient(context.Background(), &cfg.Redis)
	if err != nil {
		log.Fatalf("Failed to connect to redis: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(cfg.JWT.Secret, cfg.JWT.ExpiryHours)

	// Initialize repositories
	invoiceRepo := repository.NewInvoiceRepository(db)
	itemRepo := repository.NewInvoiceItemRepository(db)
	proofRepo := repository.NewProofRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)
	invoiceCache := cache.NewRedisInvoiceCache(redisClient)

	// Initialize email service; proof review notifications are optional
	var emailService *email.EmailService
	if cfg.Email.Enabled {
		emailService = email.NewEmailService(email.EmailConfig{
			SMTPHost:     cfg.Email.SMTPHost,
			SMTPPort:     cfg.Email.SMTPPort,
			SMTPUsername: cfg.Email.SMTPUsername,
			SMTPPassword: cfg.Email.SMTPPassword,
			FromName:     cfg.Email.FromName,
			FromEmail:    cfg.Email.FromEmail,
		})
	}

	// Initialize the template renderer
	renderer, err := render.NewRenderer()
	if err != nil {
		log.Fatalf("Failed to load invoice templates: %v", err)
	}

	// Initialize services
	invoiceService := service.NewInvoiceService(invoiceRepo, itemRepo, cfg.Invoice.NumberPrefix)
	renderService := service.NewRenderService(invoiceRepo, renderer)
	proofService := service.NewProofService(proofRepo, emailService)
	archiveService := service.NewArchiveService(invoiceCache, invoiceRepo, itemRepo, cfg.Invoice.CacheTTL)
	authService := service.NewAuthService(cfg.Admin, jwtManager)

	// Initialize handlers
	handlers := &routes.Handlers{
		Invoice: handler.NewInvoiceHandler(invoiceService, archiveService),
		Render:  handler.NewRenderHandler(renderService),
		Proof:   handler.NewProofHandler(proofService),
		Admin:   handler.NewAdminHandler(authService, proofService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
	log.Printf("Environment: %s", cfg.App.Env)

	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
		os.Exit(1)
	}
}
