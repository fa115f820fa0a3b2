package server

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/contabilidade-ledger/internal/server/handler"
	"github.com/contabilidade-ledger/internal/server/middleware"
)

// setupRouter configures API routes and middleware
func setupRouter(
	logger *slog.Logger,
	r *gin.Engine,
	accountHandler *handler.AccountHandler,
	entryHandler *handler.EntryHandler,
) {
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.Logger(logger))
	r.Use(middleware.CorrelationID())

	// API v1 endpoints
	v1 := r.Group("/api/v1")
	{
		// Chart of accounts (plano de contas)
		accounts := v1.Group("/plano-de-contas")
		{
			accounts.POST("", accountHandler.Create)
			accounts.GET("", accountHandler.List)
			accounts.GET("/:id", accountHandler.GetByID)
		}

		// Ledger entries (lançamentos)
		entries := v1.Group("/lancamentos")
		{
			entries.POST("", entryHandler.ProcessEvent)
			entries.POST("/manual", entryHandler.CreateManual)
			entries.GET("", entryHandler.List)
			entries.GET("/:id", entryHandler.GetByID)
		}
	}

	// Health check endpoint for monitoring
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now().UTC()})
	})
}
