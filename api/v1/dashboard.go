package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/epc-intel/services"
)

var dashboardService = services.NewDashboardService()

// GetDashboard returns the portfolio KPIs and the risk matrix ranked by
// score as of an optional ?asOf=YYYY-MM-DD date
func GetDashboard(c *gin.Context) {
	userID, isAdmin, ok := callerIdentity(c)
	if !ok {
		return
	}

	dashboard, err := dashboardService.Portfolio(userID, isAdmin, c.Query("asOf"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to build dashboard: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   dashboard,
	})
}
