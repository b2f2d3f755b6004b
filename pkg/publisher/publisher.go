package publisher

import (
	"context"
	"time"

	"github.com/nais/lander/pkg/archive"
	"github.com/nais/lander/pkg/lander/metrics"
	"github.com/nais/lander/pkg/logging"
	"github.com/nais/lander/pkg/netlify"
	"github.com/nais/lander/pkg/page"
	"github.com/nais/lander/pkg/ratelimit"
	"github.com/nais/lander/pkg/telemetry"
	"github.com/nais/lander/pkg/theme"
	log "github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const buildFailedMessage = "failed to build the site"

// Provider publishes archives to a static hosting service.
type Provider interface {
	CreateSite(ctx context.Context, name string) (*netlify.Site, error)
	CreateDeploy(ctx context.Context, siteID string, archive []byte) (*netlify.Deploy, error)
}

type NameGenerator interface {
	Generate() (string, error)
}

type Config struct {
	Provider Provider
	Limiter  ratelimit.Limiter
	Names    NameGenerator

	// Only used in the message returned to rate limited clients.
	MaxPerHour int

	Clock func() time.Time
}

type Request struct {
	Title       string
	Description string
	Theme       *theme.Theme
}

type Preview struct {
	HTML        string
	Title       string
	Description string
	Theme       string
}

type Result struct {
	SiteID      string
	DeployID    string
	URL         string
	AdminURL    string
	Title       string
	Description string
	Theme       string
	DeployedAt  string
}

type Publisher struct {
	provider   Provider
	limiter    ratelimit.Limiter
	names      NameGenerator
	maxPerHour int
	clock      func() time.Time
}

func New(cfg Config) *Publisher {
	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}
	return &Publisher{
		provider:   cfg.Provider,
		limiter:    cfg.Limiter,
		names:      cfg.Names,
		maxPerHour: cfg.MaxPerHour,
		clock:      clock,
	}
}

func (p *Publisher) render(req Request) (string, error) {
	return page.Render(page.Variables{
		Title:       req.Title,
		Description: req.Description,
		Year:        p.clock().Year(),
		Colors:      theme.Resolve(req.Theme),
	})
}

// Preview renders the page without publishing it.
func (p *Publisher) Preview(ctx context.Context, req Request) (*Preview, error) {
	html, err := p.render(req)
	if err != nil {
		logging.FromContext(ctx).WithError(err).Error("Rendering preview")
		metrics.Preview(string(KindPreviewFailed))
		return nil, ErrorWrap(KindPreviewFailed, StageRender, "failed to render the preview", err)
	}

	metrics.Preview(metrics.ResultOK)

	return &Preview{
		HTML:        html,
		Title:       req.Title,
		Description: req.Description,
		Theme:       theme.DisplayName(req.Theme),
	}, nil
}

// Deploy admits the client, builds the site and publishes it. The steps run
// in order and the first failure is returned. A site created before a failed
// upload is left in place.
func (p *Publisher) Deploy(ctx context.Context, clientKey string, req Request) (*Result, error) {
	ctx, span := telemetry.Tracer().Start(ctx, "publisher.Deploy")
	defer span.End()

	result, err := p.deploy(ctx, clientKey, req)
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		metrics.Deploy(string(ErrorKind(err)))
		return nil, err
	}

	span.SetAttributes(
		attribute.String("site.id", result.SiteID),
		attribute.String("deploy.id", result.DeployID),
	)
	metrics.Deploy(metrics.ResultOK)

	return result, nil
}

func (p *Publisher) deploy(ctx context.Context, clientKey string, req Request) (*Result, error) {
	logger := logging.FromContext(ctx).WithField("client", clientKey)

	admitted, err := p.limiter.Admit(ctx, clientKey)
	if err != nil {
		logger.WithError(err).Error("Checking rate limit")
		return nil, ErrorWrap(KindDeployFailed, StageAdmit, "unable to check the deploy rate limit", err)
	}
	metrics.RateLimitDecision(admitted)
	if !admitted {
		logger.Warn("Deploy rejected by rate limiter")
		return nil, Errorf(KindRateLimitExceeded, StageAdmit, "Maximum %d deployments per hour allowed", p.maxPerHour)
	}

	html, err := p.render(req)
	if err != nil {
		logger.WithError(err).Error("Rendering page")
		return nil, ErrorWrap(KindDeployFailed, StageRender, buildFailedMessage, err)
	}

	zip, err := archive.Package(html)
	if err != nil {
		logger.WithError(err).Error("Packaging site")
		return nil, ErrorWrap(KindDeployFailed, StagePackage, buildFailedMessage, err)
	}

	name, err := p.names.Generate()
	if err != nil {
		logger.WithError(err).Error("Generating site name")
		return nil, ErrorWrap(KindDeployFailed, StageName, buildFailedMessage, err)
	}
	logger = logger.WithField("site_name", name)

	site, err := p.provider.CreateSite(ctx, name)
	if err != nil {
		logger.WithError(err).Error("Creating site")
		return nil, ErrorWrap(KindDeployFailed, StageCreateSite, err.Error(), err)
	}
	logger = logger.WithField("site_id", site.ID)

	deploy, err := p.provider.CreateDeploy(ctx, site.ID, zip)
	if err != nil {
		logger.WithError(err).Error("Uploading site")
		return nil, ErrorWrap(KindDeployFailed, StageCreateDeploy, err.Error(), err)
	}

	deployedAt := deploy.CreatedAt
	if deployedAt == "" {
		deployedAt = p.clock().UTC().Format(time.RFC3339)
	}

	url := deploy.SSLURL
	if url == "" {
		url = site.SSLURL
	}
	adminURL := deploy.AdminURL
	if adminURL == "" {
		adminURL = site.AdminURL
	}

	logger.WithFields(log.Fields{
		"deploy_id": deploy.ID,
		"url":       url,
	}).Info("Site deployed")

	return &Result{
		SiteID:      site.ID,
		DeployID:    deploy.ID,
		URL:         url,
		AdminURL:    adminURL,
		Title:       req.Title,
		Description: req.Description,
		Theme:       theme.DisplayName(req.Theme),
		DeployedAt:  deployedAt,
	}, nil
}
