package middleware

import (
	"net/http"
	"strings"

	"bookly_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// ServiceAuthMiddleware creates a Gin middleware that authenticates trusted
// callers (the cron scheduler, operator tooling) via a signed service token.
func ServiceAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required"})
			c.Abort()
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid authorization header format. Use Bearer <token>"})
			c.Abort()
			return
		}

		tokenString := parts[1]
		claims, err := utils.ValidateServiceToken(tokenString)
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token: " + err.Error()})
			c.Abort()
			return
		}

		// Expose the caller identity to downstream handlers for logging.
		c.Set("caller", claims.Subject)

		c.Next()
	}
}
