package main

import (
	"log"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	v1 "github.com/epc-intel/api/v1"
	"github.com/epc-intel/config"
	"github.com/epc-intel/database"
)

func main() {
	// Load environment and connect to the database
	config.LoadEnv()
	database.Initialize()

	// Set Gin mode
	gin.SetMode(config.GetEnv("GIN_MODE", gin.ReleaseMode))

	// Initialize router
	router := gin.Default()

	// CORS configuration
	router.Use(cors.New(cors.Config{
		AllowAllOrigins:  true,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		AllowCredentials: true,
	}))

	// Register v1 API routes
	v1.RegisterRoutes(router.Group("/api/v1"))

	port := config.GetEnv("PORT", "8080")

	log.Printf("🏗️ EPC Intelligence Portal API starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
