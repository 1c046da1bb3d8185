package main

import (
	"context"
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/uav-siberia/leads-api/internal/ai"
	"github.com/uav-siberia/leads-api/internal/application/service"
	"github.com/uav-siberia/leads-api/internal/config"
	"github.com/uav-siberia/leads-api/internal/infrastructure/database"
	"github.com/uav-siberia/leads-api/internal/infrastructure/repository"
	"github.com/uav-siberia/leads-api/internal/presentation/http/handler"
	"github.com/uav-siberia/leads-api/internal/presentation/http/routes"
	"github.com/uav-siberia/leads-api/pkg/email"
	"github.com/uav-siberia/leads-api/pkg/utils"
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

	// Seed the catalog and the optional admin account
	if err := database.SeedDefaultData(db); err != nil {
		log.Printf("Warning: Failed to seed default data: %v", err)
	}

	// Initialize JWT manager
	jwtManager := utils.NewJWTManager(
		cfg.JWT.Secret,
		cfg.JWT.ExpiryHours,
		cfg.JWT.RefreshExpiryHours,
	)

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	requestRepo := repository.NewRequestRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	productRepo := repository.NewProductRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize email service
	emailService := email.NewEmailService(email.EmailConfig{
		SMTPHost:     cfg.Email.SMTPHost,
		SMTPPort:     cfg.Email.SMTPPort,
		SMTPUsername: cfg.Email.SMTPUser,
		SMTPPassword: cfg.Email.SMTPPass,
		FromName:     cfg.App.Name,
		FromEmail:    cfg.Email.FromAddress,
	})

	// Initialize the classification client
	aiClient := ai.NewClient(ai.Config{
		Endpoint:    cfg.AI.Endpoint,
		APIKey:      cfg.AI.APIKey,
		Model:       cfg.AI.Model,
		MaxTokens:   cfg.AI.MaxTokens,
		Temperature: cfg.AI.Temperature,
	})

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	requestService := service.NewRequestService(requestRepo, cfg.Expiry.TTL)
	messageService := service.NewMessageService(messageRepo, requestRepo)
	productService := service.NewProductService(productRepo)
	proposalService := service.NewProposalService(requestRepo, productRepo, emailService)
	assistantService := service.NewAssistantService(aiClient)
	contactService := service.NewContactService(requestRepo, cfg.Contact.ForwardURL)

	// Background expiry sweep: stale new requests become expired
	sweepCtx, cancelSweep := context.WithCancel(context.Background())
	defer cancelSweep()
	go requestService.StartExpirySweeper(sweepCtx, cfg.Expiry.Interval)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Request:   handler.NewRequestHandler(requestService),
		Message:   handler.NewMessageHandler(messageService),
		Product:   handler.NewProductHandler(productService),
		Proposal:  handler.NewProposalHandler(proposalService),
		Assistant: handler.NewAssistantHandler(assistantService),
		Contact:   handler.NewContactHandler(contactService),
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
