package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/epc-intel/dto"
	"github.com/epc-intel/services"
)

var milestoneService = services.NewMilestoneService()
var riskService = services.NewRiskService()

// callerIdentity pulls the authenticated user's id and role from the context
func callerIdentity(c *gin.Context) (string, bool, bool) {
	userID, exists := c.Get("userId")
	if !exists {
		c.JSON(http.StatusUnauthorized, gin.H{"status": "error", "message": "User not authenticated"})
		return "", false, false
	}

	role, _ := c.Get("role")
	return userID.(string), role == "admin", true
}

// ListMilestones returns the caller's milestones
func ListMilestones(c *gin.Context) {
	userID, isAdmin, ok := callerIdentity(c)
	if !ok {
		return
	}

	milestones, err := milestoneService.ListMilestones(userID, isAdmin)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status":  "error",
			"message": "Failed to retrieve milestones: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   milestones,
	})
}

// CreateMilestone creates a new milestone for the authenticated user and
// returns it with its plan-vs-contract summary
func CreateMilestone(c *gin.Context) {
	userID, _, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.CreateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	response, err := milestoneService.CreateMilestone(req, userID)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to create milestone: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status": "success",
		"data":   response,
	})
}

// GetMilestone returns a milestone by ID
func GetMilestone(c *gin.Context) {
	userID, isAdmin, ok := callerIdentity(c)
	if !ok {
		return
	}

	milestoneID := c.Param("id")
	milestone, err := milestoneService.GetMilestone(milestoneID, userID, isAdmin)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Milestone not found or access denied: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   milestone,
	})
}

// UpdateMilestone edits a milestone
func UpdateMilestone(c *gin.Context) {
	userID, isAdmin, ok := callerIdentity(c)
	if !ok {
		return
	}

	var req dto.UpdateMilestoneRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Invalid request data: " + err.Error(),
		})
		return
	}

	milestone, err := milestoneService.UpdateMilestone(c.Param("id"), req, userID, isAdmin)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to update milestone: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   milestone,
	})
}

// DeleteMilestone removes a milestone and all of its daily logs
func DeleteMilestone(c *gin.Context) {
	userID, isAdmin, ok := callerIdentity(c)
	if !ok {
		return
	}

	if err := milestoneService.DeleteMilestone(c.Param("id"), userID, isAdmin); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"status":  "error",
			"message": "Failed to delete milestone: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Milestone deleted",
	})
}

// GetMilestoneRisk returns the milestone's metrics bundle, score breakdown
// and advisories as of an optional ?asOf=YYYY-MM-DD date
func GetMilestoneRisk(c *gin.Context) {
	userID, isAdmin, ok := callerIdentity(c)
	if !ok {
		return
	}

	detail, err := riskService.MilestoneRisk(c.Param("id"), userID, isAdmin, c.Query("asOf"))
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Failed to compute milestone risk: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   detail,
	})
}

// GetMilestoneSchedule returns the milestone's derived day-by-day planned spend
func GetMilestoneSchedule(c *gin.Context) {
	userID, isAdmin, ok := callerIdentity(c)
	if !ok {
		return
	}

	schedule, err := milestoneService.MilestoneSchedule(c.Param("id"), userID, isAdmin)
	if err != nil {
		c.JSON(http.StatusNotFound, gin.H{
			"status":  "error",
			"message": "Milestone not found or access denied: " + err.Error(),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status": "success",
		"data":   schedule,
	})
}
