package api_v1_themes

import (
	"net/http"

	"github.com/go-chi/render"
	"github.com/nais/lander/pkg/theme"
)

type Catalog interface {
	List() []theme.Theme
}

type Handler struct {
	Catalog Catalog
}

type Response struct {
	Themes []theme.Theme `json:"themes"`
}

// List returns the theme presets a client can pick from.
func (h *Handler) List(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, &Response{
		Themes: h.Catalog.List(),
	})
}
