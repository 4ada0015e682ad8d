// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether a dependency is reachable.
type HealthChecker func(ctx context.Context) bool

// HealthController handles health check endpoints.
type HealthController struct {
	dbHealthChecker    HealthChecker
	cacheHealthChecker HealthChecker
}

// HealthResponse represents the health check response.
type HealthResponse struct {
	Status    string `json:"status"`
	Database  string `json:"database"`
	Cache     string `json:"cache"`
	Timestamp string `json:"timestamp"`
}

// NewHealthController creates a new health controller instance. A nil cache
// checker reports the cache as disabled.
func NewHealthController(dbHealthChecker, cacheHealthChecker HealthChecker) *HealthController {
	return &HealthController{
		dbHealthChecker:    dbHealthChecker,
		cacheHealthChecker: cacheHealthChecker,
	}
}

// Check handles GET /health requests.
// It returns the current health status of the API and its dependencies.
func (h *HealthController) Check(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := "ok"
	statusCode := http.StatusOK

	dbStatus := "disconnected"
	if h.dbHealthChecker != nil && h.dbHealthChecker(ctx) {
		dbStatus = "connected"
	} else {
		status = "degraded"
		statusCode = http.StatusServiceUnavailable
	}

	cacheStatus := "disabled"
	if h.cacheHealthChecker != nil {
		cacheStatus = "disconnected"
		if h.cacheHealthChecker(ctx) {
			cacheStatus = "connected"
		}
	}

	c.JSON(statusCode, HealthResponse{
		Status:    status,
		Database:  dbStatus,
		Cache:     cacheStatus,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	})
}
