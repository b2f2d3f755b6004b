package api_v1_preview

import (
	"context"
	"net/http"

	"github.com/go-chi/render"
	"github.com/nais/lander/pkg/lander/api/v1"
	"github.com/nais/lander/pkg/logging"
	"github.com/nais/lander/pkg/publisher"
)

var StatusCodes = []int{
	http.StatusOK,
	http.StatusBadRequest,
	http.StatusInternalServerError,
}

type Previewer interface {
	Preview(ctx context.Context, req publisher.Request) (*publisher.Preview, error)
}

type Handler struct {
	Previewer Previewer
}

type Response struct {
	Success     bool   `json:"success"`
	HTML        string `json:"html"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Theme       string `json:"theme"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	logger := logging.FromContext(r.Context())

	request, err := api_v1.DecodeRequest(r)
	if err != nil {
		logger.WithError(err).Info("Rejecting invalid preview request")
		render.Render(w, r, api_v1.ErrInvalidRequest(err))
		return
	}

	preview, err := h.Previewer.Preview(r.Context(), request.Publisher())
	if err != nil {
		logger.WithError(err).Error("Preview failed")
		render.Render(w, r, api_v1.ErrPublish(err))
		return
	}

	render.JSON(w, r, &Response{
		Success:     true,
		HTML:        preview.HTML,
		Title:       preview.Title,
		Description: preview.Description,
		Theme:       preview.Theme,
	})
}
