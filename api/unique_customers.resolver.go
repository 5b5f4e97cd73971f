package api

import (
	"github.com/gin-gonic/gin"
)

type getUniqueCustomersResponse struct {
	Success   bool     `json:"success"`
	Customers []string `json:"customers"`
	Count     int      `json:"count"`
}

func (m ApiHandler) getUniqueCustomers(c *gin.Context) {
	customers := m.ReportService.ListUniqueCustomerNames()

	c.JSON(200, getUniqueCustomersResponse{
		Success:   true,
		Customers: customers,
		Count:     len(customers),
	})
}
