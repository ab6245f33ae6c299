package v1

import (
	"github.com/gin-gonic/gin"

	"github.com/epc-intel/middleware"
)

// RegisterRoutes registers all v1 API routes
func RegisterRoutes(router *gin.RouterGroup) {
	// Health check endpoint
	router.GET("/health", HealthCheck)

	// Auth endpoints
	authGroup := router.Group("/auth")
	{
		authGroup.POST("/register", Register)
		authGroup.POST("/login", Login)
		// Use auth middleware here only for the /me endpoint
		authGroup.GET("/me", middleware.AuthMiddleware(), GetCurrentUser)
	}

	// Milestone endpoints - protected by AuthMiddleware
	milestoneGroup := router.Group("/milestones")
	milestoneGroup.Use(middleware.AuthMiddleware())
	{
		milestoneGroup.GET("", ListMilestones)
		milestoneGroup.POST("", CreateMilestone)
		milestoneGroup.GET("/:id", GetMilestone)
		milestoneGroup.PUT("/:id", UpdateMilestone)
		milestoneGroup.DELETE("/:id", DeleteMilestone)
		milestoneGroup.GET("/:id/risk", GetMilestoneRisk)
		milestoneGroup.GET("/:id/schedule", GetMilestoneSchedule)
		milestoneGroup.GET("/:id/logs", ListLogs)
		milestoneGroup.POST("/:id/logs", CreateLog)
	}

	// Log entries are deleted by their own id
	logGroup := router.Group("/logs")
	logGroup.Use(middleware.AuthMiddleware())
	{
		logGroup.DELETE("/:id", DeleteLog)
	}

	// Portfolio dashboard
	dashboardGroup := router.Group("/dashboard")
	dashboardGroup.Use(middleware.AuthMiddleware())
	{
		dashboardGroup.GET("", GetDashboard)
	}

	// Report exports
	reportGroup := router.Group("/reports")
	reportGroup.Use(middleware.AuthMiddleware())
	{
		reportGroup.GET("/risk.csv", ExportRiskCSV)
		reportGroup.GET("/risk.xlsx", ExportRiskXLSX)
		reportGroup.GET("/logs.csv", ExportLogsCSV)
	}
}
