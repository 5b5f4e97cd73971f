package api

import (
	"github.com/gin-gonic/gin"
)

type getCustomerCountResponse struct {
	Success bool `json:"success"`
	Count   int  `json:"count"`
}

func (m ApiHandler) getCustomerCount(c *gin.Context) {
	c.JSON(200, getCustomerCountResponse{
		Success: true,
		Count:   m.ReportService.CountCustomersWithContracts(),
	})
}
