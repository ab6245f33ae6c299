package v1

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/epc-intel/services"
)

var reportService = services.NewReportService()

// ExportRiskCSV downloads the portfolio risk report as CSV
func ExportRiskCSV(c *gin.Context) {
	userID, isAdmin, ok := callerIdentity(c)
	if !ok {
		return
	}

	rows, err := reportService.RiskReport(userID, isAdmin, c.Query("asOf"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to build risk report: " + err.Error(),
		})
		return
	}

	out, err := services.RenderRiskCSV(rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to encode risk report: " + err.Error(),
		})
		return
	}

	serveDownload(c, out, "text/csv", fmt.Sprintf("epc_risk_report_%s.csv", time.Now().Format("2006-01-02")))
}

// ExportRiskXLSX downloads the portfolio risk report as an Excel workbook
func ExportRiskXLSX(c *gin.Context) {
	userID, isAdmin, ok := callerIdentity(c)
	if !ok {
		return
	}

	rows, err := reportService.RiskReport(userID, isAdmin, c.Query("asOf"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to build risk report: " + err.Error(),
		})
		return
	}

	out, err := services.RenderRiskXLSX(rows)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to encode risk report: " + err.Error(),
		})
		return
	}

	serveDownload(c, out,
		"application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
		fmt.Sprintf("epc_risk_report_%s.xlsx", time.Now().Format("2006-01-02")))
}

// ExportLogsCSV downloads every visible daily spend log as CSV
func ExportLogsCSV(c *gin.Context) {
	userID, isAdmin, ok := callerIdentity(c)
	if !ok {
		return
	}

	out, err := reportService.LogsCSV(userID, isAdmin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to export logs: " + err.Error(),
		})
		return
	}

	serveDownload(c, out, "text/csv", fmt.Sprintf("epc_daily_logs_%s.csv", time.Now().Format("2006-01-02")))
}

func serveDownload(c *gin.Context, body []byte, contentType, filename string) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, contentType, body)
}
