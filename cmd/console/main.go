package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/salimdiab/pos-console/internal/application/service"
	"github.com/salimdiab/pos-console/internal/config"
	"github.com/salimdiab/pos-console/internal/gateway"
	"github.com/salimdiab/pos-console/internal/infrastructure/api"
	"github.com/salimdiab/pos-console/internal/presentation/http/handler"
	"github.com/salimdiab/pos-console/internal/presentation/http/routes"
	"github.com/salimdiab/pos-console/internal/session"
	"github.com/salimdiab/pos-console/pkg/printer"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Restore the persisted sign-in session, if any
	sess, err := session.Load(cfg.Session.Path)
	if err != nil {
		log.Fatalf("Failed to load session store: %v", err)
	}

	// Initialize the POS backend gateway
	client := gateway.New(gateway.Config{
		BaseURL:           cfg.API.BaseURL,
		Timeout:           cfg.API.Timeout,
		RequestsPerSecond: float64(cfg.RateLimit.Requests) / float64(cfg.RateLimit.Duration),
		Burst:             cfg.RateLimit.Requests,
	}, sess)

	// Initialize repositories
	authRepo := api.NewAuthRepository(client)
	productRepo := api.NewProductRepository(client)
	categoryRepo := api.NewCategoryRepository(client)
	userRepo := api.NewUserRepository(client)
	receiptRepo := api.NewReceiptRepository(client)
	dashboardRepo := api.NewDashboardRepository(client)

	// Initialize the till printer
	tillPrinter, err := printer.FromConfig(cfg.Printer.Type, cfg.Printer.USBPath, cfg.Printer.Address)
	if err != nil {
		log.Printf("Warning: failed to initialize printer: %v", err)
		tillPrinter = printer.NewNullPrinter()
	}

	// Initialize services
	authService := service.NewAuthService(authRepo, sess)
	productService := service.NewProductService(productRepo, categoryRepo)
	categoryService := service.NewCategoryService(categoryRepo)
	userService := service.NewUserService(userRepo)
	receiptService := service.NewReceiptService(productRepo, receiptRepo, tillPrinter, cfg.App.Name, cfg.Printer.Width)
	dashboardService := service.NewDashboardService(productRepo, dashboardRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Auth:      handler.NewAuthHandler(authService, receiptService, sess),
		Dashboard: handler.NewDashboardHandler(dashboardService, sess),
		Product:   handler.NewProductHandler(productService, sess),
		Category:  handler.NewCategoryHandler(categoryService, sess),
		User:      handler.NewUserHandler(userService, sess),
		Receipt:   handler.NewReceiptHandler(receiptService, authService, sess),
	}

	// Setup routes and start the console
	router := routes.Setup(handlers, &routes.Deps{Cfg: cfg, Sess: sess})

	log.Printf("Starting %s on port %s", cfg.App.Name, cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
