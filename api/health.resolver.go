package api

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
)

type healthCheckResponse struct {
	Success  bool   `json:"success"`
	Status   string `json:"status"`
	Database string `json:"database"`
}

func (m ApiHandler) healthCheck(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	if err := m.TransformerRepository.Ping(ctx); err != nil {
		m.Logger.Errorf("health check failed: %v", err)
		c.JSON(500, healthCheckResponse{
			Success:  false,
			Status:   "unhealthy",
			Database: "disconnected",
		})
		return
	}

	c.JSON(200, healthCheckResponse{
		Success:  true,
		Status:   "healthy",
		Database: "connected",
	})
}
