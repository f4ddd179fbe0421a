package auth

import (
	"net/http"

	"artivisual-app/internal/api/apierr"
	meapi "artivisual-app/internal/api/users"
	"artivisual-app/internal/catalog"
	"artivisual-app/internal/domain/users"
	"artivisual-app/internal/session"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Sessions  *session.Store
	Catalog   *catalog.Store
	JWTSecret []byte
}

type authResponse struct {
	Token string           `json:"token"`
	Me    meapi.MeResponse `json:"me"`
}

func (h *Handler) Register(c *gin.Context) {
	var input struct {
		Name     string `json:"name"`
		Email    string `json:"email"`
		Password string `json:"password"`
		Role     string `json:"role"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed request"})
		return
	}

	// unknown roles pass through unchanged and are rejected by Register
	role, _ := users.ParseRole(input.Role)
	user, gen, err := h.Sessions.Register(c.Request.Context(), input.Email, input.Password, input.Name, role)
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	h.respondWithToken(c, user, gen)
}

func (h *Handler) Login(c *gin.Context) {
	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Malformed request"})
		return
	}

	user, gen, err := h.Sessions.Login(c.Request.Context(), input.Email, input.Password)
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	h.respondWithToken(c, user, gen)
}

// Logout ends the session and forgets the favorites and cart that belonged to it.
func (h *Handler) Logout(c *gin.Context) {
	h.Sessions.Logout(c.Request.Context())
	h.Catalog.ResetSessionState()

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// respondWithToken binds the token to the generation the session was applied at.
func (h *Handler) respondWithToken(c *gin.Context, user users.User, gen uint64) {
	token, err := session.IssueToken(h.JWTSecret, user, gen)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Could not create token"})
		return
	}

	c.JSON(http.StatusOK, authResponse{Token: token, Me: meapi.BuildMeResponse(user)})
}
