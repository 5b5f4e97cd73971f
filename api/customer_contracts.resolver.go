package api

import (
	"transfleet/internal/domain"

	"github.com/gin-gonic/gin"
)

type getCustomerContractsResponse struct {
	Success   bool                       `json:"success"`
	Customer  string                     `json:"customer"`
	Contracts []domain.TransformerRecord `json:"contracts"`
	Count     int                        `json:"count"`
}

func (m ApiHandler) getCustomerContracts(c *gin.Context) {
	customerName := c.Param("name")
	contracts := m.ReportService.ListContractsForCustomer(customerName)

	c.JSON(200, getCustomerContractsResponse{
		Success:   true,
		Customer:  customerName,
		Contracts: contracts,
		Count:     len(contracts),
	})
}
