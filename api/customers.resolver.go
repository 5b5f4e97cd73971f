package api

import (
	"transfleet/internal/domain"

	"github.com/gin-gonic/gin"
)

type getCustomersResponse struct {
	Success   bool                     `json:"success"`
	Customers []domain.CustomerSummary `json:"customers"`
	Count     int                      `json:"count"`
}

func (m ApiHandler) getCustomers(c *gin.Context) {
	customers := m.ReportService.CustomersWithContracts()

	c.JSON(200, getCustomersResponse{
		Success:   true,
		Customers: customers,
		Count:     len(customers),
	})
}
