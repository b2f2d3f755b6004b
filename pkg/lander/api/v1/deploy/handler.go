package api_v1_deploy

import (
	"context"
	"net/http"

	"github.com/go-chi/render"
	"github.com/nais/lander/pkg/lander/api/v1"
	"github.com/nais/lander/pkg/lander/middleware"
	"github.com/nais/lander/pkg/logging"
	"github.com/nais/lander/pkg/publisher"
	log "github.com/sirupsen/logrus"
)

// Every status code this handler can respond with.
var StatusCodes = []int{
	http.StatusOK,
	http.StatusBadRequest,
	http.StatusTooManyRequests,
	http.StatusInternalServerError,
	http.StatusBadGateway,
}

type Deployer interface {
	Deploy(ctx context.Context, clientKey string, req publisher.Request) (*publisher.Result, error)
}

type Handler struct {
	Deployer Deployer
}

type Response struct {
	Success     bool   `json:"success"`
	SiteID      string `json:"site_id"`
	DeployID    string `json:"deploy_id"`
	URL         string `json:"url"`
	AdminURL    string `json:"admin_url,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Theme       string `json:"theme"`
	DeployedAt  string `json:"deployed_at"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	clientKey := middleware.GetClientKey(ctx)
	if clientKey == "" {
		clientKey = middleware.ClientKey(r)
	}
	logger := logging.FromContext(ctx).WithField("client", clientKey)

	request, err := api_v1.DecodeRequest(r)
	if err != nil {
		logger.WithError(err).Info("Rejecting invalid deploy request")
		render.Render(w, r, api_v1.ErrInvalidRequest(err))
		return
	}
	logger = logger.WithFields(request.LogFields())
	logger.Debug("Incoming deploy request")

	result, err := h.Deployer.Deploy(logging.WithEntry(ctx, logger), clientKey, request.Publisher())
	if err != nil {
		logger.WithFields(log.Fields{
			"error_kind": publisher.ErrorKind(err),
		}).WithError(err).Warn("Deploy failed")
		render.Render(w, r, api_v1.ErrPublish(err))
		return
	}

	render.JSON(w, r, &Response{
		Success:     true,
		SiteID:      result.SiteID,
		DeployID:    result.DeployID,
		URL:         result.URL,
		AdminURL:    result.AdminURL,
		Title:       result.Title,
		Description: result.Description,
		Theme:       result.Theme,
		DeployedAt:  result.DeployedAt,
	})
}
