package routes

import (
	"net/http"

	authapi "artivisual-app/internal/api/auth"
	cartapi "artivisual-app/internal/api/cart"
	dashboardapi "artivisual-app/internal/api/dashboard"
	favoritesapi "artivisual-app/internal/api/favorites"
	uiapi "artivisual-app/internal/api/ui"
	"artivisual-app/internal/api/users"
	worksapi "artivisual-app/internal/api/works"
	"artivisual-app/internal/app/http/middleware"
	"artivisual-app/internal/catalog"
	"artivisual-app/internal/domain/access"
	"artivisual-app/internal/session"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type Deps struct {
	Sessions  *session.Store
	Catalog   *catalog.Store
	JWTSecret []byte
	// Registry backs /metrics. Nil skips request metrics entirely.
	Registry *prometheus.Registry
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	if d.Registry != nil {
		r.Use(middleware.Metrics(d.Registry))
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(d.Registry, promhttp.HandlerOpts{})))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	authH := &authapi.Handler{Sessions: d.Sessions, Catalog: d.Catalog, JWTSecret: d.JWTSecret}
	worksH := &worksapi.Handler{Catalog: d.Catalog}
	cartH := &cartapi.Handler{Catalog: d.Catalog}
	favH := &favoritesapi.Handler{Catalog: d.Catalog}
	dashH := &dashboardapi.Handler{Catalog: d.Catalog}
	uiH := &uiapi.Handler{Catalog: d.Catalog}

	public := r.Group("/")
	public.Use(middleware.SanitizeAndCleanInputMiddleware())

	public.POST("/register", authH.Register)
	public.POST("/login", authH.Login)
	public.POST("/logout", authH.Logout)

	public.GET("/artworks", worksH.ListArtworks)
	public.GET("/artworks/browse", worksH.BrowseArtworks)
	public.GET("/artworks/:id", worksH.GetArtworkByID)
	public.GET("/sellers/:id/artworks", worksH.GetSellerArtworks)

	public.GET("/ui/state", uiH.GetState)
	public.PUT("/ui/search", uiH.SetSearch)
	public.PUT("/ui/category", uiH.SetCategory)
	public.POST("/ui/modal/open/:id", uiH.OpenModal)
	public.POST("/ui/modal/close", uiH.CloseModal)
	public.POST("/ui/auth-form", uiH.ToggleAuthForm)

	// Authenticated
	auth := r.Group("/")
	auth.Use(middleware.AuthMiddleware(d.Sessions, d.JWTSecret), middleware.SanitizeAndCleanInputMiddleware())
	auth.GET("/me", users.GetCurrentUser)
	auth.GET("/dashboard", dashH.GetDashboard)

	auth.POST("/artworks/:id/like", middleware.RequireCapability(access.CapLike), worksH.ToggleLike)

	auth.GET("/favorites", middleware.RequireCapability(access.CapFavorite), favH.ListFavorites)
	auth.POST("/favorites/:id", middleware.RequireCapability(access.CapFavorite), favH.ToggleFavorite)

	auth.GET("/cart", middleware.RequireCapability(access.CapCart), cartH.GetCart)
	auth.POST("/cart/:id", middleware.RequireCapability(access.CapCart), cartH.AddToCart)
	auth.DELETE("/cart/:id", middleware.RequireCapability(access.CapCart), cartH.RemoveFromCart)

	// Sellers
	seller := auth.Group("/")
	seller.Use(middleware.RequireCapability(access.CapUpload))
	seller.POST("/artworks", worksH.CreateArtwork)

	// Admin
	admin := auth.Group("/admin")
	admin.Use(middleware.RequireCapability(access.CapModerate))
	admin.GET("/stats", dashH.GetAdminStats)
}
