package dashboard

import (
	"net/http"

	"artivisual-app/internal/app/http/middleware"
	"artivisual-app/internal/catalog"
	"artivisual-app/internal/domain/access"
	"artivisual-app/internal/domain/works"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	Catalog *catalog.Store
}

type SellerDashboard struct {
	Dashboard access.Dashboard    `json:"dashboard"`
	Stats     catalog.SellerStats `json:"stats"`
	Artworks  []works.Artwork     `json:"artworks"`
}

type BuyerDashboard struct {
	Dashboard access.Dashboard   `json:"dashboard"`
	Stats     catalog.BuyerStats `json:"stats"`
	Favorites []works.Artwork    `json:"favorites"`
	Cart      catalog.Summary    `json:"cart"`
}

type AdminDashboard struct {
	Dashboard access.Dashboard   `json:"dashboard"`
	Stats     catalog.AdminStats `json:"stats"`
}

// GET /dashboard picks the view from the session role.
func (h *Handler) GetDashboard(c *gin.Context) {
	user, ok := middleware.CurrentUser(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	switch d := access.DashboardFor(user.Role); d {
	case access.DashboardSeller:
		c.JSON(http.StatusOK, SellerDashboard{
			Dashboard: d,
			Stats:     h.Catalog.SellerStats(user.ID),
			Artworks:  h.Catalog.SellerArtworks(user.ID),
		})
	case access.DashboardBuyer:
		favs := h.Catalog.Favorites()
		if favs == nil {
			favs = []works.Artwork{}
		}
		c.JSON(http.StatusOK, BuyerDashboard{
			Dashboard: d,
			Stats:     h.Catalog.BuyerStats(),
			Favorites: favs,
			Cart:      h.Catalog.CartSummary(),
		})
	case access.DashboardAdmin:
		c.JSON(http.StatusOK, AdminDashboard{Dashboard: d, Stats: h.Catalog.AdminStats()})
	default:
		c.JSON(http.StatusForbidden, gin.H{"error": "No dashboard for role " + string(user.Role)})
	}
}

// GET /admin/stats
func (h *Handler) GetAdminStats(c *gin.Context) {
	c.JSON(http.StatusOK, h.Catalog.AdminStats())
}
