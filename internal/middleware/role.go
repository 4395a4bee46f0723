package middleware

import (
	"net/http"

	"aparthotel/internal/domain"
	"aparthotel/internal/pkg/response"

	"github.com/gin-gonic/gin"
)

// RequireRole ensures the authenticated user carries at least one of the
// given role keys.
func RequireRole(keys ...domain.RoleKey) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw, exists := c.Get("roles")
		if !exists {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Roles not found in token")
			c.Abort()
			return
		}

		roles, ok := raw.([]string)
		if !ok {
			response.Error(c, http.StatusUnauthorized, "UNAUTHORIZED", "Malformed roles claim")
			c.Abort()
			return
		}

		for _, have := range roles {
			for _, want := range keys {
				if have == string(want) {
					c.Next()
					return
				}
			}
		}

		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Access denied: insufficient permissions")
		c.Abort()
	}
}

// SupervisorOnly restricts a route group to supervisors.
func SupervisorOnly() gin.HandlerFunc {
	return RequireRole(domain.RoleSupervisor)
}
