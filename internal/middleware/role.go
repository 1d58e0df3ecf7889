package middleware

import (
	"net/http"

	"aerotours/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole ensures the authenticated operator carries the given role.
func RequireRole(requiredRole string) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		if role.(string) != requiredRole {
			response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
			c.Abort()
			return
		}

		c.Next()
	}
}

// AdminOnly restricts a group to back-office operators.
func AdminOnly() gin.HandlerFunc {
	return RequireRole("admin")
}
