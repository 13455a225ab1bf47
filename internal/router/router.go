// Package router assembles the HTTP API on top of a ledger database.
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "wealthyways/internal/docs" // swagger docs
	"wealthyways/internal/handlers"
	"wealthyways/internal/metrics"
	"wealthyways/internal/middleware"
	"wealthyways/internal/services"
)

// Options configures the optional cross-cutting parts of the router.
type Options struct {
	// Metrics receives request and summary observations and is served on
	// /metrics. Nil disables both.
	Metrics *metrics.Metrics
	// RateLimiter throttles /api/v1 per client IP. Nil disables throttling.
	RateLimiter *middleware.RateLimiter
}

// New wires services, handlers and middleware over db and returns the engine.
func New(db *gorm.DB, opts Options) *gin.Engine {
	var recorder metrics.SummaryRecorder
	if opts.Metrics != nil {
		recorder = opts.Metrics
	}

	transactionService := services.NewTransactionService(db)
	budgetService := services.NewBudgetService(db)
	goalService := services.NewGoalService(db)
	summaryService := services.NewSummaryService(transactionService, budgetService, recorder)

	transactionHandler := handlers.NewTransactionHandler(transactionService)
	budgetHandler := handlers.NewBudgetHandler(budgetService)
	goalHandler := handlers.NewGoalHandler(goalService)
	summaryHandler := handlers.NewSummaryHandler(summaryService)
	exportHandler := handlers.NewExportHandler(transactionService, budgetService)

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogging())
	// Metrics wraps ErrorHandler so it sees the status of the error envelope.
	if opts.Metrics != nil {
		router.Use(middleware.Metrics(opts.Metrics))
	}
	router.Use(middleware.ErrorHandler())

	// CORS
	router.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, X-Request-ID")

		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
			return
		}

		c.Next()
	})

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/api/health", func(c *gin.Context) {
		status, code := "ok", http.StatusOK
		if sqlDB, err := db.DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			status, code = "unavailable", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": status})
	})

	if opts.Metrics != nil {
		router.GET("/metrics", gin.WrapH(opts.Metrics.Handler()))
	}

	v1 := router.Group("/api/v1")
	if opts.RateLimiter != nil {
		v1.Use(opts.RateLimiter.Middleware())
	}

	transactions := v1.Group("/transactions")
	transactions.POST("", transactionHandler.CreateTransaction)
	transactions.GET("", transactionHandler.GetTransactions)
	transactions.GET("/:id", transactionHandler.GetTransactionByID)
	transactions.DELETE("/:id", transactionHandler.DeleteTransaction)
	v1.GET("/months", transactionHandler.ListMonths)

	budgets := v1.Group("/budgets")
	budgets.POST("", budgetHandler.CreateBudget)
	budgets.GET("", budgetHandler.GetBudgets)
	budgets.GET("/:id", budgetHandler.GetBudgetByID)
	budgets.DELETE("/:id", budgetHandler.DeleteBudget)

	goals := v1.Group("/goals")
	goals.POST("", goalHandler.CreateGoal)
	goals.GET("", goalHandler.GetGoals)
	goals.GET("/:id", goalHandler.GetGoalByID)
	goals.PATCH("/:id/progress", goalHandler.UpdateGoalProgress)
	goals.DELETE("/:id", goalHandler.DeleteGoal)

	v1.GET("/summary", summaryHandler.GetSummary)
	v1.GET("/categories", handlers.GetCategories)

	export := v1.Group("/export")
	export.GET("/transactions.csv", exportHandler.ExportTransactions)
	export.GET("/budgets.csv", exportHandler.ExportBudgets)

	return router
}
