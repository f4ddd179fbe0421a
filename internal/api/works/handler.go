package works

import (
	"net/http"

	"artivisual-app/internal/api/apierr"
	"artivisual-app/internal/app/http/middleware"
	"artivisual-app/internal/catalog"
	"artivisual-app/internal/domain/works"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Catalog *catalog.Store
}

// ------------------------------
// GET /artworks  (?q= replaces the search query first)
// ------------------------------
func (h *Handler) ListArtworks(c *gin.Context) {
	if q, ok := c.GetQuery("q"); ok {
		h.Catalog.SetSearchQuery(q)
	}

	c.JSON(http.StatusOK, toArtworkListDTO(h.Catalog, h.Catalog.FilteredArtworks()))
}

// ------------------------------
// GET /artworks/browse
// ------------------------------
func (h *Handler) BrowseArtworks(c *gin.Context) {
	q, err := browseQueryFrom(c)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, toArtworkListDTO(h.Catalog, h.Catalog.Browse(q)))
}

func (h *Handler) GetArtworkByID(c *gin.Context) {
	a, err := h.Catalog.Artwork(c.Param("id"))
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, toArtworkDTO(h.Catalog, a))
}

// ------------------------------
// POST /artworks/:id/like
// ------------------------------
func (h *Handler) ToggleLike(c *gin.Context) {
	a, err := h.Catalog.ToggleLike(c.Param("id"))
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, toArtworkDTO(h.Catalog, a))
}

// ------------------------------
// POST /artworks  (sellers only; seller identity comes from the session)
// ------------------------------
func (h *Handler) CreateArtwork(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req CreateArtworkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	watermarked := true
	if req.Watermarked != nil {
		watermarked = *req.Watermarked
	}

	a, err := h.Catalog.AddArtwork(works.Draft{
		Title:       req.Title,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		SellerID:    user.ID,
		SellerName:  user.Name,
		Watermarked: watermarked,
	})
	if err != nil {
		apierr.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, toArtworkDTO(h.Catalog, a))
}

// ------------------------------
// GET /sellers/:id/artworks
// ------------------------------
func (h *Handler) GetSellerArtworks(c *gin.Context) {
	sellerID := c.Param("id")
	list := h.Catalog.SellerArtworks(sellerID)

	out := SellerDTO{
		SellerID: sellerID,
		Stats:    h.Catalog.SellerStats(sellerID),
		Artworks: make([]ArtworkDTO, 0, len(list)),
	}
	for _, a := range list {
		if out.SellerName == "" {
			out.SellerName = a.SellerName
		}
		out.Artworks = append(out.Artworks, toArtworkDTO(h.Catalog, a))
	}

	c.JSON(http.StatusOK, out)
}
