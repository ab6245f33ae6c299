package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/epc-intel/services"
)

// AuthMiddleware validates the bearer token and stores the caller's
// identity in the request context
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Authorization header with bearer token is required",
			})
			c.Abort()
			return
		}

		claims, err := services.ValidateToken(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{
				"status":  "error",
				"message": "Invalid or expired token",
			})
			c.Abort()
			return
		}

		c.Set("userId", claims.UserID)
		c.Set("email", claims.Email)
		c.Set("role", claims.Role)
		c.Next()
	}
}

// AdminMiddleware requires an authenticated admin caller
func AdminMiddleware() gin.HandlerFunc {
	auth := AuthMiddleware()
	return func(c *gin.Context) {
		auth(c)
		if c.IsAborted() {
			return
		}

		if role, _ := c.Get("role"); role != "admin" {
			c.JSON(http.StatusForbidden, gin.H{
				"status":  "error",
				"message": "Admin access required",
			})
			c.Abort()
			return
		}

		c.Next()
	}
}
