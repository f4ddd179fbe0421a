package cart

import (
	"net/http"

	"artivisual-app/internal/api/apierr"
	"artivisual-app/internal/catalog"
	"artivisual-app/internal/domain/works"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Catalog *catalog.Store
}

type CartResponse struct {
	Items   []works.CartItem `json:"items"`
	Summary catalog.Summary  `json:"summary"`
}

func (h *Handler) respondWithCart(c *gin.Context, status int) {
	items := h.Catalog.Cart()
	if items == nil {
		items = []works.CartItem{}
	}
	c.JSON(status, CartResponse{Items: items, Summary: h.Catalog.CartSummary()})
}

// GET /cart
func (h *Handler) GetCart(c *gin.Context) {
	h.respondWithCart(c, http.StatusOK)
}

// POST /cart/:id
func (h *Handler) AddToCart(c *gin.Context) {
	a, err := h.Catalog.Artwork(c.Param("id"))
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	if _, err := h.Catalog.AddToCart(a); err != nil {
		apierr.Respond(c, err)
		return
	}
	h.respondWithCart(c, http.StatusOK)
}

// DELETE /cart/:id
func (h *Handler) RemoveFromCart(c *gin.Context) {
	if err := h.Catalog.RemoveFromCart(c.Param("id")); err != nil {
		apierr.Respond(c, err)
		return
	}
	h.respondWithCart(c, http.StatusOK)
}
