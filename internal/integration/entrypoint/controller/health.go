// Package controller implements HTTP handlers for the API endpoints.
package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/mohamedahmede/expense-tracker-lite/internal/application/adapter"
)

// HealthController handles health check endpoints.
type HealthController struct {
	store adapter.BlobStore
}

// NewHealthController creates a new health controller instance.
func NewHealthController(store adapter.BlobStore) *HealthController {
	return &HealthController{store: store}
}

// Check handles GET /health requests.
func (c *HealthController) Check(ctx *gin.Context) {
	storage := "up"
	status := http.StatusOK
	if err := c.store.Ping(ctx.Request.Context()); err != nil {
		storage = "down"
		status = http.StatusServiceUnavailable
	}

	ctx.JSON(status, gin.H{
		"status":  "ok",
		"storage": storage,
	})
}
