package main

import (
	"fmt"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"duitku/internal/config"
	"duitku/internal/handlers"
	"duitku/internal/kv"
	"duitku/internal/logger"
	"duitku/internal/middleware"
	"duitku/internal/store"
	"duitku/internal/validator"
)

func main() {
	// Initialize logger (use ENV var if available, default to development)
	logger.Init(os.Getenv("ENV"))
	defer logger.Sync()

	if err := run(); err != nil {
		logger.Get().Fatalf("Fatal error: %v", err)
	}
}

func run() error {
	log := logger.Get()

	// Load configuration
	appConfig, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Open the key-value binding and the record store on top of it
	binding, err := openBinding(appConfig)
	if err != nil {
		return fmt.Errorf("failed to open store backend: %w", err)
	}
	recordStore, err := store.Open(binding, appConfig.StoreNamespace)
	if err != nil {
		return fmt.Errorf("failed to open record store: %w", err)
	}

	// Register custom request validators
	validator.Register()

	// Initialize handlers
	transactionHandler := handlers.NewTransactionHandler(recordStore)
	categoryHandler := handlers.NewCategoryHandler()
	reportHandler := handlers.NewReportHandler(recordStore)

	// Initialize Gin router
	if appConfig.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Transaction routes
	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Category catalog routes
	categories := v1.Group("/categories")
	categories.GET("", categoryHandler.ListCategories)
	categories.GET("/:id", categoryHandler.GetCategoryByID)

	// Report routes
	reports := v1.Group("/reports")
	reports.GET("/overview", reportHandler.GetOverview)
	reports.GET("/summary", reportHandler.GetSummary)
	reports.GET("/categories", reportHandler.GetCategoryReport)
	reports.GET("/periods", reportHandler.GetPeriodReport)
	reports.GET("/comparison", reportHandler.GetComparison)

	// Export routes
	exports := v1.Group("/export")
	exports.GET("/report", reportHandler.ExportReport)
	exports.GET("/transactions.csv", reportHandler.ExportCSV)

	log.Infof("Starting Duitku backend server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

// openBinding selects the key-value backend from configuration.
func openBinding(cfg *config.Config) (kv.Binding, error) {
	switch cfg.StoreBackend {
	case config.StoreBackendFile:
		return kv.NewFile(cfg.StorePath), nil
	case config.StoreBackendSQLite:
		return kv.OpenSQLite(cfg.StorePath)
	default:
		return nil, fmt.Errorf("unknown store backend %q", cfg.StoreBackend)
	}
}
