package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/debtwise-ledger/internal/api/handler"
	"github.com/debtwise-ledger/internal/api/middleware"
)

// setupRouter configures API routes and middleware for the application
func setupRouter(
	logger *slog.Logger,
	r *gin.Engine,
	debtHandler *handler.DebtHandler,
	statsHandler *handler.StatsHandler,
	historyHandler *handler.HistoryHandler,
) {
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CorrelationID())

	// API v1 endpoints
	v1 := r.Group("/api/v1")
	{
		// Ledger operations
		debts := v1.Group("/debts")
		{
			debts.POST("", debtHandler.Create)
			debts.GET("", debtHandler.List)
			debts.DELETE("", debtHandler.ClearAll)
			debts.POST("/removals", debtHandler.RemovePositions)
			debts.GET("/:id", debtHandler.GetByID)
			debts.PUT("/:id", debtHandler.Update)
			debts.DELETE("/:id", debtHandler.Delete)
			debts.POST("/:id/payments", debtHandler.MakePayment)
			debts.GET("/:id/history", historyHandler.ListByDebt)
		}

		// Derived statistics
		v1.GET("/dashboard", statsHandler.Dashboard)
		v1.GET("/statistics", statsHandler.Statistics)

		// Audit trail
		v1.GET("/history", historyHandler.List)
	}

	// Health check endpoint for monitoring
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
	})
}
