package middleware

import (
	"net/http"
	"strings"

	"artivisual-app/internal/domain/users"
	"artivisual-app/internal/session"

	"github.com/gin-gonic/gin"
)

// AuthMiddleware admits a request only when its bearer token belongs to the
// session that is current right now. Logging out or logging in again invalidates it.
func AuthMiddleware(sessions *session.Store, secret []byte) gin.HandlerFunc {
	return func(c *gin.Context) {
		if len(secret) == 0 {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "JWT secret not configured"})
			c.Abort()
			return
		}
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header missing"})
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Bearer token malformed"})
			c.Abort()
			return
		}

		claims, err := session.ParseToken(secret, strings.TrimSpace(tokenString))
		if err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}

		user, gen, ok := sessions.Snapshot()
		if !ok || user.ID != claims.UserID || gen != claims.Gen {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Session ended, please sign in again"})
			c.Abort()
			return
		}

		c.Set("user", user)
		c.Set("user_id", user.ID)
		c.Set("role", string(user.Role))
		c.Next()
	}
}

// CurrentUser reads what AuthMiddleware stored.
func CurrentUser(c *gin.Context) (users.User, bool) {
	v, ok := c.Get("user")
	if !ok {
		return users.User{}, false
	}
	u, ok := v.(users.User)
	return u, ok
}
