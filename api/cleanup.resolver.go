package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
)

type cleanupResponse struct {
	Success      bool   `json:"success"`
	Message      string `json:"message"`
	DeletedCount int64  `json:"deleted_count"`
}

func (m ApiHandler) cleanupDatabase(c *gin.Context) {
	deleted, err := m.MaintenanceService.CleanupInvalidRecords()
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to clean up database: %w", err), c)
		return
	}

	c.JSON(200, cleanupResponse{
		Success:      true,
		Message:      fmt.Sprintf("Successfully cleaned up %d empty records", deleted),
		DeletedCount: deleted,
	})
}
