package middleware

import (
	"net/http"

	"library-service/internal/domain/access"
	"library-service/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// CallerRole maps the parsed token claims (if any) to the policy tier.
func CallerRole(c *gin.Context) access.Role {
	if c.GetUint("user_id") == 0 {
		return access.RoleAnonymous
	}
	if c.GetString("role") == users.RoleStaff {
		return access.RoleStaff
	}
	return access.RoleAuthenticated
}

// Require consults the access decision table for the route's operation.
// Anonymous callers get 401 so clients know authenticating may help;
// authenticated callers lacking privilege get 403.
func Require(resource access.Resource, action access.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := CallerRole(c)
		if access.Allowed(role, resource, action) {
			c.Next()
			return
		}
		if role == access.RoleAnonymous {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		} else {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
		}
		c.Abort()
	}
}
