package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"

	"github.com/taskledger/taskledger/pkg/ai"
	"github.com/taskledger/taskledger/pkg/config"
)

// Health exposes liveness and dependency health endpoints
type Health struct {
	cfg    *config.Config
	db     *gorm.DB
	gemini *ai.GeminiClient
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(cfg *config.Config, db *gorm.DB, gemini *ai.GeminiClient) *Health {
	return &Health{
		cfg:    cfg,
		db:     db,
		gemini: gemini,
	}
}

// Root handles GET / with basic service information
func (h *Health) Root(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"service":     "taskledger",
		"description": "Meeting transcript action item extraction",
		"health":      "/health",
	})
}

// Check handles GET /health as a cheap liveness probe
func (h *Health) Check(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]interface{}{
		"status":      "ok",
		"environment": h.cfg.Server.Environment,
		"time":        time.Now().UTC().Format(time.RFC3339),
	})
}

// Detailed handles GET /health/detailed and reports per-dependency status.
// A degraded dependency flips the overall status but the endpoint still
// answers 200 so probes can read the body.
func (h *Health) Detailed(c echo.Context) error {
	status := "ok"

	dbStatus := "ok"
	if sqlDB, err := h.db.DB(); err != nil {
		dbStatus = "error: " + err.Error()
	} else if err := sqlDB.PingContext(c.Request().Context()); err != nil {
		dbStatus = "error: " + err.Error()
	}
	if dbStatus != "ok" {
		status = "degraded"
	}

	extractionStatus := "ok"
	if h.gemini == nil || !h.gemini.IsConfigured() {
		extractionStatus = "not configured"
		status = "degraded"
	}

	body := map[string]interface{}{
		"status":      status,
		"environment": h.cfg.Server.Environment,
		"time":        time.Now().UTC().Format(time.RFC3339),
		"database":    dbStatus,
		"extraction": map[string]interface{}{
			"status": extractionStatus,
			"model":  h.cfg.Gemini.Model,
		},
	}
	return c.JSON(http.StatusOK, body)
}
