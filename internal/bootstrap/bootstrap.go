package bootstrap

import (
	"io"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/ktmtfamily/family-tree-api/internal/config"
	"github.com/ktmtfamily/family-tree-api/internal/shared/metrics"
	"github.com/ktmtfamily/family-tree-api/internal/shared/middleware"
)

// Bootstrap handles common server setup
type Bootstrap struct {
	cfg     *config.Config
	metrics *metrics.Recorder
}

// NewBootstrap creates a new bootstrap instance
func NewBootstrap(cfg *config.Config, recorder *metrics.Recorder) *Bootstrap {
	return &Bootstrap{
		cfg:     cfg,
		metrics: recorder,
	}
}

// SetupEngine creates and configures a gin engine with common middleware
func (b *Bootstrap) SetupEngine() *gin.Engine {
	// Set Gin mode based on environment
	if b.cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	// Disable Gin's default logger (using slog)
	gin.DefaultWriter = io.Discard
	gin.DefaultErrorWriter = io.Discard

	// Create engine without default middleware
	engine := gin.New()
	engine.MaxMultipartMemory = b.cfg.Server.MaxUploadBytes

	engine.Use(gin.CustomRecovery(b.recoveryHandler))
	engine.Use(middleware.RequestID())
	engine.Use(middleware.CORS(b.cfg))
	engine.Use(b.metrics.Middleware())
	engine.Use(middleware.Timeout(b.cfg.Server.RequestTimeout))
	engine.Use(middleware.LoggerMiddleware())

	return engine
}

// recoveryHandler handles panics
func (b *Bootstrap) recoveryHandler(c *gin.Context, recovered interface{}) {
	slog.Error("Panic Recovered",
		"error", recovered,
		"path", c.Request.URL.Path,
		"method", c.Request.Method,
		"request_id", middleware.GetRequestID(c),
	)
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
		"error": "Internal server error", "request_id": middleware.GetRequestID(c),
	})
}
