package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/epc-intel/dto"
	"github.com/epc-intel/services"
)

var logService = services.NewLogService()

// ListLogs returns all daily spend logs for a milestone
func ListLogs(c *gin.Context) {
	userID, isAdmin, ok := callerIdentity(c)
	if !ok {
		return
	}

	logs, err := logService.ListLogs(c.Param("id"), userID, isAdmin)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Milestone not found or access denied: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   logs,
	})
}

// CreateLog records one day of actual spend against a milestone
func CreateLog(c *gin.Context) {
	userID, isAdmin, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateLogRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	response, err := logService.AddLog(c.Param("id"), req, userID, isAdmin)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to save log entry: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   response,
	})
}

// DeleteLog removes a single log entry
func DeleteLog(c *gin.Context) {
	userID, isAdmin, ok := callerIdentity(c)
	if !ok {
		return
	}

	if err := logService.DeleteLog(c.Param("id"), userID, isAdmin); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to delete log entry: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Log entry deleted",
	})
}
