package api

import (
	"transfleet/internal/domain"

	"github.com/gin-gonic/gin"
)

type getCustomersContractsResponse struct {
	Success   bool                       `json:"success"`
	Contracts []domain.TransformerRecord `json:"contracts"`
	Count     int                        `json:"count"`
}

// getCustomersContracts is the legacy listing endpoint. The body carries
// every valid row while count reports distinct contract ids; the
// dashboard has depended on that mismatch since the first release, so
// it stays.
func (m ApiHandler) getCustomersContracts(c *gin.Context) {
	contracts := m.ReportService.ListAll()
	contractIDs := m.ReportService.ListDistinctContractIDs()

	c.JSON(200, getCustomersContractsResponse{
		Success:   true,
		Contracts: contracts,
		Count:     len(contractIDs),
	})
}
