package middleware

import (
	"net/http"

	"artivisual-app/internal/domain/access"
	"artivisual-app/internal/domain/users"

	"github.com/gin-gonic/gin"
)

// RequireCapability gates a route on the session role's capabilities.
// Must run after AuthMiddleware.
func RequireCapability(capability access.Capability) gin.HandlerFunc {
	return func(c *gin.Context) {
		role := users.Role(c.GetString("role"))

		if !access.Can(role, capability) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"error": "Your account cannot " + string(capability),
			})
			return
		}

		c.Next()
	}
}
