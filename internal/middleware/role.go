package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ristorante/internal/domain"
	"ristorante/internal/pkg/response"
)

// RequireRole ensures the authenticated user has one of the given roles.
func RequireRole(roles ...domain.UserRole) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, exists := c.Get("role")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Role not found in token")
			c.Abort()
			return
		}

		for _, r := range roles {
			if role.(string) == string(r) {
				c.Next()
				return
			}
		}

		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
		c.Abort()
	}
}

// AdminOnly restricts a route to admin accounts.
func AdminOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleAdmin)
}

// StaffOrAdmin allows any authenticated staff member.
func StaffOrAdmin() gin.HandlerFunc {
	return RequireRole(domain.RoleAdmin, domain.RoleStaff)
}
