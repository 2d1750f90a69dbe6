package main

import (
	"fmt"
	"net/http"
	"os"

	"kasiswa/internal/config"
	"kasiswa/internal/database"
	"kasiswa/internal/handlers"
	"kasiswa/internal/logger"
	"kasiswa/internal/middleware"
	"kasiswa/internal/services"
	"kasiswa/internal/validator"

	"github.com/gin-gonic/gin"
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

	// Initialize database configuration
	dbConfig, err := database.NewConfig()
	if err != nil {
		return fmt.Errorf("failed to load database configuration: %w", err)
	}

	// Create database manager
	dbManager, err := database.NewManager(dbConfig)
	if err != nil {
		return fmt.Errorf("failed to create database manager: %w", err)
	}

	// Run migrations
	if err := dbManager.RunMigrations(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	// Register custom binding validators
	validator.Register()

	// Initialize services
	db := dbManager.DB()
	studentService := services.NewStudentService(db)
	transactionService := services.NewTransactionService(db)
	recapService := services.NewRecapService(db, studentService, appConfig.MonthlyFee)
	reportService := services.NewReportService(transactionService)
	dashboardService := services.NewDashboardService(db, studentService)

	// Initialize handlers
	studentHandler := handlers.NewStudentHandler(studentService)
	transactionHandler := handlers.NewTransactionHandler(transactionService)
	recapHandler := handlers.NewRecapHandler(recapService)
	reportHandler := handlers.NewReportHandler(reportService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService)

	// Initialize Gin router
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

	// Student routes
	students := v1.Group("/students")
	students.POST("", studentHandler.CreateStudent)
	students.GET("", studentHandler.ListStudents)
	students.GET("/:id", studentHandler.GetStudentByID)
	students.PUT("/:id", studentHandler.UpdateStudent)
	students.DELETE("/:id", studentHandler.DeleteStudent)

	// Transaction routes
	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.ListTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.PUT("/:id", transactionHandler.UpdateTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)

	// Report routes
	reports := v1.Group("/reports")
	reports.GET("", reportHandler.GetReport)
	reports.GET("/export/csv", reportHandler.ExportCSV)
	reports.GET("/export/pdf", reportHandler.ExportPDF)

	// Recap and dashboard
	v1.GET("/recap", recapHandler.GetRecap)
	v1.GET("/dashboard", dashboardHandler.GetSummary)

	log.Infof("Starting Kasiswa backend server on port %s", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}
