package favorites

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

type FavoritesResponse struct {
	Favorites  []works.Artwork `json:"favorites"`
	Count      int             `json:"count"`
	Total      int             `json:"total"`
	Categories []string        `json:"categories"`
}

type ToggleResponse struct {
	ArtworkID string `json:"artwork_id"`
	Favorite  bool   `json:"favorite"`
}

// POST /favorites/:id
func (h *Handler) ToggleFavorite(c *gin.Context) {
	a, err := h.Catalog.Artwork(c.Param("id"))
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	added, err := h.Catalog.ToggleFavorite(a)
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	c.JSON(http.StatusOK, ToggleResponse{ArtworkID: a.ID, Favorite: added})
}

// GET /favorites?q=&category=
func (h *Handler) ListFavorites(c *gin.Context) {
	all := h.Catalog.Favorites()
	view := h.Catalog.FavoritesView(c.Query("q"), c.Query("category"))

	c.JSON(http.StatusOK, FavoritesResponse{
		Favorites:  view,
		Count:      len(view),
		Total:      len(all),
		Categories: catalog.Categories(all),
	})
}
