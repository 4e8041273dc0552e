package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/jamaney/mmtacos-api/internal/application/service"
	"github.com/jamaney/mmtacos-api/internal/config"
	"github.com/jamaney/mmtacos-api/internal/infrastructure/database"
	"github.com/jamaney/mmtacos-api/internal/infrastructure/repository"
	"github.com/jamaney/mmtacos-api/internal/presentation/http/handler"
	"github.com/jamaney/mmtacos-api/internal/presentation/http/routes"
	"github.com/jamaney/mmtacos-api/pkg/printer"
	"github.com/jamaney/mmtacos-api/pkg/utils"
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

	// Seed the admin user and catalog
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
	productRepo := repository.NewProductRepository(db)
	orderRepo := repository.NewOrderRepository(db)
	seqRepo := repository.NewSequenceRepository(db)
	dayRepo := repository.NewOperationalDayRepository(db)
	sessionRepo := repository.NewCashSessionRepository(db)
	clientOrderRepo := repository.NewClientOrderRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}

	// Initialize services
	reportService := service.NewReportService(thermalPrinter, cfg.Printer.Type, cfg.Store)
	reconciliationService := service.NewReconciliationService(dayRepo, sessionRepo, orderRepo, reportService, cfg.Register)
	registerService := service.NewRegisterService(orderRepo, seqRepo, reconciliationService, reportService)
	authService := service.NewAuthService(userRepo, jwtManager)
	productService := service.NewProductService(productRepo)
	clientOrderService := service.NewClientOrderService(clientOrderRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:        handler.NewAuthHandler(authService),
		Register:    handler.NewRegisterHandler(reconciliationService),
		Order:       handler.NewOrderHandler(registerService),
		Report:      handler.NewReportHandler(reconciliationService),
		Product:     handler.NewProductHandler(productService),
		ClientOrder: handler.NewClientOrderHandler(clientOrderService),
		Printer:     handler.NewPrinterHandler(reportService),
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
