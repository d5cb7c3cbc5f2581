package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"
	"github.com/supthawee/farmgate-api/internal/application/service"
	"github.com/supthawee/farmgate-api/internal/config"
	"github.com/supthawee/farmgate-api/internal/infrastructure/database"
	"github.com/supthawee/farmgate-api/internal/infrastructure/repository"
	"github.com/supthawee/farmgate-api/internal/presentation/http/handler"
	"github.com/supthawee/farmgate-api/internal/presentation/http/routes"
	"github.com/supthawee/farmgate-api/pkg/printer"
	"github.com/supthawee/farmgate-api/pkg/utils"
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

	// Seed the operator account and default products
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
	farmerRepo := repository.NewFarmerRepository(db)
	employeeRepo := repository.NewEmployeeRepository(db)
	productRepo := repository.NewProductRepository(db)
	priceRepo := repository.NewProductPriceRepository(db)
	licenseRepo := repository.NewCarLicenseRepository(db)
	splitDefaultRepo := repository.NewSplitDefaultRepository(db)
	groupRepo := repository.NewTransactionGroupRepository(db)
	lineRepo := repository.NewTransactionLineRepository(db)
	dashboardRepo := repository.NewDashboardRepository(db)
	idempotencyRepo := repository.NewIdempotencyRepository(db)

	// Initialize services
	authService := service.NewAuthService(userRepo, jwtManager)
	farmerService := service.NewFarmerService(farmerRepo, employeeRepo)
	productService := service.NewProductService(productRepo, priceRepo, cfg.Shop)
	carLicenseService := service.NewCarLicenseService(licenseRepo, farmerRepo)
	splitDefaultService := service.NewSplitDefaultService(splitDefaultRepo)
	transactionService := service.NewTransactionService(groupRepo, lineRepo, licenseRepo, splitDefaultService)
	dashboardService := service.NewDashboardService(dashboardRepo)
	maintenanceService := service.NewMaintenanceService(groupRepo, lineRepo, cfg.Retention)

	// Initialize thermal printer
	thermalPrinter, err := printer.NewPrinterFromConfig(
		cfg.Printer.Type,
		cfg.Printer.USBPath,
		cfg.Printer.Address,
		cfg.Printer.DialTimeout,
		cfg.Printer.WriteTimeout,
	)
	if err != nil {
		log.Printf("Warning: Failed to initialize printer: %v", err)
		thermalPrinter = printer.NewNullPrinter()
	}
	printerService := service.NewPrinterService(thermalPrinter, groupRepo, userRepo, cfg.Printer, cfg.Shop)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:         handler.NewAuthHandler(authService),
		Farmer:       handler.NewFarmerHandler(farmerService),
		Employee:     handler.NewEmployeeHandler(farmerService),
		Product:      handler.NewProductHandler(productService),
		CarLicense:   handler.NewCarLicenseHandler(carLicenseService),
		SplitDefault: handler.NewSplitDefaultHandler(splitDefaultService),
		Transaction:  handler.NewTransactionHandler(transactionService),
		Dashboard:    handler.NewDashboardHandler(dashboardService),
		Printer:      handler.NewPrinterHandler(printerService),
		Maintenance:  handler.NewMaintenanceHandler(maintenanceService),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		JWTManager:      jwtManager,
		Cfg:             cfg,
		IdempotencyRepo: idempotencyRepo,
	})

	// Schedule the retention sweep. A run that reports more eligible groups
	// repeats immediately so a backlog drains in one scheduling slot.
	scheduler := cron.New()
	_, err = scheduler.AddFunc(cfg.Retention.Schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()
		for {
			result, err := maintenanceService.Sweep(ctx)
			if err != nil {
				log.Printf("Retention sweep failed: %v", err)
				return
			}
			if !result.HasMoreEligible {
				return
			}
		}
	})
	if err != nil {
		log.Fatalf("Invalid retention schedule %q: %v", cfg.Retention.Schedule, err)
	}
	scheduler.Start()

	// Get port from environment or use default
	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		log.Printf("Starting %s server on port %s...", cfg.App.Name, port)
		log.Printf("Environment: %s", cfg.App.Env)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt, then drain in-flight requests and stop the sweep
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")
	cronCtx := scheduler.Stop()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}
	<-cronCtx.Done()

	log.Println("Server exited")
}
