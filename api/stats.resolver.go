package api

import (
	"transfleet/internal/domain"

	"github.com/gin-gonic/gin"
)

type getFleetStatsResponse struct {
	Success bool              `json:"success"`
	Stats   domain.FleetStats `json:"stats"`
}

func (m ApiHandler) getFleetStats(c *gin.Context) {
	c.JSON(200, getFleetStatsResponse{
		Success: true,
		Stats:   m.StatsService.FleetPowerStats(),
	})
}
