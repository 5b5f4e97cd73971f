package api

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/gocarina/gocsv"
)

func (m ApiHandler) exportCustomers(c *gin.Context) {
	records := m.ReportService.ListAll()

	csvStr, err := gocsv.MarshalString(&records)
	if err != nil {
		returnErrorJson(fmt.Errorf("failed to export records: %w", err), c)
		return
	}

	c.Header("Content-Disposition", `attachment; filename="transformer_records.csv"`)
	c.Data(200, "text/csv", []byte(csvStr))
}
