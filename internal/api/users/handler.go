package users

import (
	"net/http"

	"artivisual-app/internal/app/http/middleware"

	"github.com/gin-gonic/gin"
)

// GetCurrentUser answers GET /me for an authenticated session.
func GetCurrentUser(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	c.JSON(http.StatusOK, BuildMeResponse(user))
}
