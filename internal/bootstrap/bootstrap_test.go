package bootstrap_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/ktmtfamily/family-tree-api/internal/bootstrap"
	"github.com/ktmtfamily/family-tree-api/internal/shared/metrics"
	"github.com/ktmtfamily/family-tree-api/internal/shared/middleware"
	"github.com/ktmtfamily/family-tree-api/internal/shared/testutil"
	"github.com/stretchr/testify/assert"
)

func TestSetupEngine_RecoversFromPanic(t *testing.T) {
	cfg := testutil.NewTestConfig()
	engine := bootstrap.NewBootstrap(cfg, metrics.New(cfg.App.Name)).SetupEngine()
	engine.GET("/boom", func(*gin.Context) { panic("boom") })

	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/boom", nil))

	assert.Equal(t, http.StatusInternalServerError, recorder.Code)
	assert.NotEmpty(t, recorder.Header().Get(middleware.RequestIDHeader))
	assert.Contains(t, recorder.Body.String(), "Internal server error")
}

func TestSetupEngine_RequestDeadline(t *testing.T) {
	cfg := testutil.NewTestConfig()
	engine := bootstrap.NewBootstrap(cfg, metrics.New(cfg.App.Name)).SetupEngine()

	var hasDeadline bool
	engine.GET("/ping", func(c *gin.Context) {
		_, hasDeadline = c.Request.Context().Deadline()
		c.Status(http.StatusNoContent)
	})

	recorder := httptest.NewRecorder()
	engine.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/ping", nil))

	assert.Equal(t, http.StatusNoContent, recorder.Code)
	assert.True(t, hasDeadline)
}
