package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi"
	chi_middleware "github.com/go-chi/chi/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/render"
	"github.com/nais/lander/pkg/lander/api/v1"
	api_v1_deploy "github.com/nais/lander/pkg/lander/api/v1/deploy"
	api_v1_preview "github.com/nais/lander/pkg/lander/api/v1/preview"
	api_v1_themes "github.com/nais/lander/pkg/lander/api/v1/themes"
	"github.com/nais/lander/pkg/lander/middleware"
	"github.com/nais/lander/pkg/version"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deploys wait for two provider round trips.
var requestTimeout = time.Minute

type Publisher interface {
	api_v1_deploy.Deployer
	api_v1_preview.Previewer
}

type Config struct {
	AllowedOrigins []string
	Catalog        api_v1_themes.Catalog
	MetricsPath    string
	Publisher      Publisher
	Clock          func() time.Time
	RequestTimeout time.Duration
}

type HealthResponse struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Version   string `json:"version"`
}

func New(cfg Config) chi.Router {
	prometheusMiddleware := middleware.PrometheusMiddleware("lander")

	clock := cfg.Clock
	if clock == nil {
		clock = time.Now
	}

	deployHandler := &api_v1_deploy.Handler{
		Deployer: cfg.Publisher,
	}

	previewHandler := &api_v1_preview.Handler{
		Previewer: cfg.Publisher,
	}

	themesHandler := &api_v1_themes.Handler{
		Catalog: cfg.Catalog,
	}

	// Pre-populate request metrics
	for _, code := range api_v1_deploy.StatusCodes {
		prometheusMiddleware.Initialize("/api/deploy", http.MethodPost, code)
	}
	for _, code := range api_v1_preview.StatusCodes {
		prometheusMiddleware.Initialize("/api/preview", http.MethodPost, code)
	}

	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = requestTimeout
	}

	allowedOrigins := cfg.AllowedOrigins
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}

	// Base settings for all requests
	router := chi.NewRouter()
	router.Use(
		middleware.RequestLogger(),
		prometheusMiddleware.Handler(),
		chi_middleware.StripSlashes,
		api_v1.Recoverer,
		cors.Handler(cors.Options{
			AllowedOrigins: allowedOrigins,
			AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", middleware.CorrelationIDHeader},
			ExposedHeaders: []string{middleware.CorrelationIDHeader},
			MaxAge:         300,
		}),
	)

	router.NotFound(func(w http.ResponseWriter, r *http.Request) {
		render.Render(w, r, api_v1.ErrNotFound)
	})
	router.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		render.Render(w, r, api_v1.ErrMethodNotAllowed)
	})

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		render.JSON(w, r, &HealthResponse{
			Status:    "healthy",
			Timestamp: clock().UTC().Format(time.RFC3339),
			Version:   version.Version(),
		})
	})

	// Mount /metrics endpoint with no authentication
	if cfg.MetricsPath != "" {
		router.Get(cfg.MetricsPath, promhttp.Handler().ServeHTTP)
	}

	router.Route("/api", func(r chi.Router) {
		r.Get("/themes", themesHandler.List)

		r.Group(func(r chi.Router) {
			r.Use(
				api_v1.RequireJSON,
				api_v1.Deadline(timeout),
			)
			r.Post("/preview", previewHandler.ServeHTTP)

			r.With(middleware.ClientIdentifier).Post("/deploy", deployHandler.ServeHTTP)
		})
	})

	return router
}
