package main

import (
	"fmt"
	"net/http"
	"os"

	"budgetcore/internal/config"
	"budgetcore/internal/database"
	"budgetcore/internal/handlers"
	"budgetcore/internal/logger"
	"budgetcore/internal/middleware"
	"budgetcore/internal/models"
	"budgetcore/internal/services"
	"budgetcore/internal/validator"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "budgetcore/internal/docs" // Import swagger docs
)

// @title           Budget Core API
// @version         1.0
// @description     Budget enforcement and allocation core: periods, allocations, enforcement checks, budget associations and recommendations.

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey WorkspaceID
// @in header
// @name X-Workspace-ID

// @securityDefinitions.apikey PipelineKey
// @in header
// @name X-API-Key

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
	defer dbManager.Close()

	// Run migrations
	if err := dbManager.Migrate(); err != nil {
		return fmt.Errorf("failed to run database migrations: %w", err)
	}

	validator.Register()

	router := newRouter(dbManager, appConfig)

	log.Infof("Starting budget core server on port %s", appConfig.Port)
	log.Infof("Swagger documentation available at http://localhost:%s/swagger/index.html", appConfig.Port)
	return router.Run(":" + appConfig.Port)
}

func newRouter(dbManager *database.Manager, appConfig *config.Config) *gin.Engine {
	// Initialize services
	db := dbManager.DB()
	periodService := services.NewPeriodService(db)
	enforcementService := services.NewEnforcementService(db, periodService)
	associationService := services.NewAssociationService(db)
	allocationService := services.NewAllocationService(db, periodService, enforcementService)
	budgetService := services.NewBudgetService(db, associationService, periodService, models.EnforcementLevel(appConfig.DefaultEnforcementLevel))
	recommendationService := services.NewRecommendationService(db, budgetService, appConfig.RecommendationTTL, appConfig.RecommendationRetention)
	transactionService := services.NewTransactionService(db, allocationService)
	accountService := services.NewAccountService(db)
	categoryService := services.NewCategoryService(db)
	auditService := services.NewAuditService(db)

	// Initialize handlers
	budgetHandler := handlers.NewBudgetHandler(budgetService, associationService, enforcementService, allocationService, auditService)
	periodHandler := handlers.NewPeriodHandler(periodService, allocationService, auditService)
	allocationHandler := handlers.NewAllocationHandler(allocationService, auditService)
	recommendationHandler := handlers.NewRecommendationHandler(recommendationService, auditService)
	transactionHandler := handlers.NewTransactionHandler(transactionService, auditService)
	accountHandler := handlers.NewAccountHandler(accountService, auditService)
	categoryHandler := handlers.NewCategoryHandler(categoryService, auditService)

	// Initialize Gin router
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	router.Use(middleware.ErrorHandler())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Workspace-ID, X-API-Key, X-Request-ID")

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

	// API v1 group, scoped to the caller's workspace
	v1 := router.Group("/api/v1")
	v1.Use(middleware.WorkspaceScope())

	// Budget routes
	budgets := v1.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.GET("/applicable", budgetHandler.GetApplicableBudgets)
	budgets.GET("/:id", budgetHandler.GetBudget)
	budgets.PUT("/:id", budgetHandler.UpdateBudget)
	budgets.PUT("/:id/status", budgetHandler.SetBudgetStatus)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)
	budgets.PUT("/:id/accounts", budgetHandler.SyncAccounts)
	budgets.PUT("/:id/categories", budgetHandler.SyncCategories)
	budgets.GET("/:id/progress", budgetHandler.GetBudgetProgress)
	budgets.POST("/:id/check", budgetHandler.CheckAllocation)
	budgets.GET("/:id/periods", periodHandler.ListPeriods)
	budgets.POST("/:id/periods", periodHandler.CreatePeriod)
	budgets.GET("/:id/periods/current", periodHandler.GetCurrentPeriod)
	budgets.POST("/:id/periods/:periodId/recalculate", periodHandler.RecalculatePeriod)

	// Period routes
	periods := v1.Group("/periods")
	periods.GET("/:id", periodHandler.GetPeriod)
	periods.POST("/:id/close", periodHandler.ClosePeriod)

	// Allocation routes
	allocations := v1.Group("/allocations")
	allocations.POST("", allocationHandler.CreateAllocation)
	allocations.POST("/split", allocationHandler.SplitTransaction)
	allocations.DELETE("/:id", allocationHandler.DeleteAllocation)

	// Transaction routes
	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("/:id", transactionHandler.GetTransaction)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)
	transactions.GET("/:id/allocations", allocationHandler.GetTransactionAllocations)
	transactions.POST("/:id/auto-assign", allocationHandler.AutoAssign)

	// Recommendation routes
	recommendations := v1.Group("/recommendations")
	recommendations.POST("", middleware.PipelineAuthMiddleware(appConfig.PipelineAPIKey), recommendationHandler.CreateRecommendation)
	recommendations.GET("", recommendationHandler.GetRecommendations)
	recommendations.GET("/:id", recommendationHandler.GetRecommendation)
	recommendations.POST("/:id/dismiss", recommendationHandler.DismissRecommendation)
	recommendations.POST("/:id/restore", recommendationHandler.RestoreRecommendation)
	recommendations.POST("/:id/apply", recommendationHandler.ApplyRecommendation)

	// Account routes
	accounts := v1.Group("/accounts")
	accounts.POST("", accountHandler.CreateAccount)
	accounts.GET("", accountHandler.GetAccounts)
	accounts.GET("/:id", accountHandler.GetAccount)

	// Category and payee routes
	v1.POST("/categories", categoryHandler.CreateCategory)
	v1.GET("/categories", categoryHandler.GetCategories)
	v1.POST("/payees", categoryHandler.CreatePayee)
	v1.GET("/payees", categoryHandler.GetPayees)

	return router
}
