package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/kuanensn/italy/internal/config"
	"github.com/kuanensn/italy/internal/database"
	"github.com/kuanensn/italy/internal/handlers"
	"github.com/kuanensn/italy/internal/ledger"
	"github.com/kuanensn/italy/internal/logger"
	"github.com/kuanensn/italy/internal/middleware"
	"github.com/kuanensn/italy/internal/store"
	"github.com/kuanensn/italy/internal/trip"
	"github.com/kuanensn/italy/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/kuanensn/italy/internal/docs" // Import swagger docs
)

// @title           Dolce Vita API
// @version         1.0
// @description     Backend for a personal Italy trip companion: itinerary, travel essentials, phrasebook, and a shared budget ledger.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

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

	// Register request validators
	validator.Register()

	// Choose the snapshot backend
	snapshots, err := newSnapshotStore(appConfig)
	if err != nil {
		return fmt.Errorf("failed to open snapshot store: %w", err)
	}

	// Load the ledger; a missing or damaged snapshot falls back to the seed list
	expenses, result := ledger.Initialize(context.Background(), snapshots, appConfig.SnapshotKey)
	log.Infow("expense ledger ready", "source", result.Source, "key", appConfig.SnapshotKey)

	// Static trip data
	trips := trip.NewService()

	// Initialize handlers
	authHandler := handlers.NewAuthHandler()
	expenseHandler := handlers.NewExpenseHandler(expenses)
	tripHandler := handlers.NewTripHandler(trips)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health check endpoint
	router.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// API v1 group
	v1 := router.Group("/api/v1")

	// Public routes
	auth := v1.Group("/auth")
	auth.POST("/session", authHandler.CreateSession)

	v1.GET("/trip", tripHandler.GetTrip)
	v1.GET("/trip/days", tripHandler.GetDays)
	v1.GET("/trip/days/:day", tripHandler.GetDay)

	essentials := v1.Group("/essentials")
	essentials.GET("/flights", tripHandler.GetFlights)
	essentials.GET("/accommodation", tripHandler.GetAccommodations)
	essentials.GET("/contacts", tripHandler.GetContacts)

	v1.GET("/phrases", tripHandler.GetPhrases)

	// Ledger reads are public
	v1.GET("/expenses", expenseHandler.ListExpenses)
	v1.GET("/expenses/summary", expenseHandler.GetSummary)
	v1.GET("/expenses/export/csv", expenseHandler.ExportCSV)
	v1.GET("/expenses/export/xlsx", expenseHandler.ExportXLSX)

	// Mutations require a session
	protected := v1.Group("/")
	protected.Use(middleware.AuthMiddleware())
	protected.POST("/expenses", expenseHandler.CreateExpense)
	protected.DELETE("/expenses/:id", expenseHandler.DeleteExpense)
	protected.POST("/expenses/reset", expenseHandler.ResetExpenses)

	log.Infof("Starting Dolce Vita backend server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

// newSnapshotStore opens the configured snapshot backend. Postgres also runs
// pending migrations before serving.
func newSnapshotStore(cfg *config.Config) (store.SnapshotStore, error) {
	switch cfg.StoreBackend {
	case "redis":
		return store.NewRedisStore(cfg.RedisURL)

	case "postgres":
		dbManager, err := database.NewManager(cfg)
		if err != nil {
			return nil, fmt.Errorf("failed to create database manager: %w", err)
		}
		if err := dbManager.RunMigrations(); err != nil {
			return nil, fmt.Errorf("failed to run database migrations: %w", err)
		}
		return store.NewGormStore(dbManager.DB()), nil

	default:
		return nil, fmt.Errorf("unknown STORE_BACKEND: %s (use postgres or redis)", cfg.StoreBackend)
	}
}
