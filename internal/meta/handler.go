package meta

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/ktmtfamily/family-tree-api/internal/config"
	"github.com/ktmtfamily/family-tree-api/internal/shared/database"
	"github.com/ktmtfamily/family-tree-api/internal/shared/handler"
)

// Handler handles meta endpoints (liveness banner, health check)
type Handler struct {
	cfg  *config.Config
	conn database.Conn
}

// NewHandler creates a new meta handler
func NewHandler(cfg *config.Config, conn database.Conn) *Handler {
	return &Handler{
		cfg:  cfg,
		conn: conn,
	}
}

// Root answers without touching the store
func (h *Handler) Root(c *gin.Context) {
	handler.RespondMessage(c, http.StatusOK, "Family Tree Backend is Running!")
}

// Health checks service and store health
func (h *Handler) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	start := time.Now()

	if err := h.conn.HealthCheck(ctx); err != nil {
		slog.Error("Health check failed", "driver", h.conn.Driver(), "error", err)

		c.JSON(http.StatusServiceUnavailable, gin.H{
			"status": "unhealthy",
			"service": gin.H{
				"name":        h.cfg.App.Name,
				"environment": h.cfg.App.Env,
			},
			"checks": gin.H{
				"database": gin.H{
					"driver": h.conn.Driver(),
					"status": "down",
					"error":  err.Error(),
				},
			},
		})
		return
	}

	dbLatency := time.Since(start).Milliseconds()

	// All checks passed
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"service": gin.H{
			"name":        h.cfg.App.Name,
			"environment": h.cfg.App.Env,
			"port":        h.cfg.App.Port,
		},
		"checks": gin.H{
			"database": gin.H{
				"driver":     h.conn.Driver(),
				"status":     "up",
				"latency_ms": dbLatency,
			},
		},
	})
}
