package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/stitts-dev/livescore-service/internal/cache"
	"github.com/stitts-dev/livescore-service/internal/config"
)

// HealthStatus is the health endpoint payload
type HealthStatus struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Timestamp time.Time         `json:"timestamp"`
	Checks    map[string]string `json:"checks"`
}

// HealthHandler handles health check endpoints
type HealthHandler struct {
	cfg    *config.Config
	cache  *cache.GameCache
	logger *logrus.Logger
}

// NewHealthHandler creates a new health handler
func NewHealthHandler(cfg *config.Config, gameCache *cache.GameCache, logger *logrus.Logger) *HealthHandler {
	return &HealthHandler{
		cfg:    cfg,
		cache:  gameCache,
		logger: logger,
	}
}

// GetHealth returns the basic health status
func (h *HealthHandler) GetHealth(c *gin.Context) {
	response := HealthStatus{
		Status:    "ok",
		Service:   "livescore-service",
		Timestamp: time.Now(),
		Checks:    make(map[string]string),
	}

	response.Checks["cache"] = "ok"

	if h.cfg.UseMockSportsData || !h.cfg.HasSportsAPI() {
		response.Checks["upstream"] = "mock"
	} else {
		response.Checks["upstream"] = "configured"
	}

	c.JSON(http.StatusOK, response)
}

// GetReady returns the readiness status
func (h *HealthHandler) GetReady(c *gin.Context) {
	c.JSON(http.StatusOK, HealthStatus{
		Status:    "ready",
		Service:   "livescore-service",
		Timestamp: time.Now(),
		Checks: map[string]string{
			"config": "ok",
		},
	})
}
