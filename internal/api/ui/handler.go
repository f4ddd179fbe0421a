package ui

import (
	"io"
	"net/http"

	"artivisual-app/internal/api/apierr"
	"artivisual-app/internal/catalog"
	"artivisual-app/internal/domain/works"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
)

type Handler struct {
	Catalog *catalog.Store
}

type SearchRequest struct {
	Query string `json:"query"`
}

type CategoryRequest struct {
	Category string `json:"category"`
}

type AuthFormRequest struct {
	Mode string `json:"mode"`
}

type ModalDTO struct {
	Open    bool           `json:"open"`
	Artwork *works.Artwork `json:"artwork,omitempty"`
}

type StateDTO struct {
	SearchQuery      string                `json:"search_query"`
	SelectedCategory string                `json:"selected_category"`
	Modal            ModalDTO              `json:"modal"`
	AuthForm         catalog.AuthFormState `json:"auth_form"`
}

func toModalDTO(m catalog.ModalState) ModalDTO {
	if open, ok := m.(catalog.ModalOpen); ok {
		a := open.Artwork
		return ModalDTO{Open: true, Artwork: &a}
	}
	return ModalDTO{}
}

func (h *Handler) state() StateDTO {
	return StateDTO{
		SearchQuery:      h.Catalog.SearchQuery(),
		SelectedCategory: h.Catalog.SelectedCategory(),
		Modal:            toModalDTO(h.Catalog.Modal()),
		AuthForm:         h.Catalog.AuthForm(),
	}
}

func (h *Handler) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, h.state())
}

// PUT /ui/search
func (h *Handler) SetSearch(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.Catalog.SetSearchQuery(req.Query)
	c.JSON(http.StatusOK, h.state())
}

// PUT /ui/category
func (h *Handler) SetCategory(c *gin.Context) {
	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.Catalog.SetSelectedCategory(req.Category)
	c.JSON(http.StatusOK, h.state())
}

// POST /ui/modal/open/:id
func (h *Handler) OpenModal(c *gin.Context) {
	a, err := h.Catalog.Artwork(c.Param("id"))
	if err != nil {
		apierr.Respond(c, err)
		return
	}
	h.Catalog.OpenArtwork(a)
	c.JSON(http.StatusOK, h.state())
}

func (h *Handler) CloseModal(c *gin.Context) {
	h.Catalog.CloseArtwork()
	c.JSON(http.StatusOK, h.state())
}

// POST /ui/auth-form; an empty body toggles in the current mode.
func (h *Handler) ToggleAuthForm(c *gin.Context) {
	var req AuthFormRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	h.Catalog.ToggleAuthForm(catalog.AuthMode(req.Mode))
	c.JSON(http.StatusOK, h.state())
}
