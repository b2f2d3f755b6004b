package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nais/liberator/pkg/conftools"
	log "github.com/sirupsen/logrus"

	"github.com/nais/lander/pkg/lander/api"
	"github.com/nais/lander/pkg/lander/config"
	"github.com/nais/lander/pkg/logging"
	"github.com/nais/lander/pkg/netlify"
	"github.com/nais/lander/pkg/publisher"
	"github.com/nais/lander/pkg/ratelimit"
	"github.com/nais/lander/pkg/sitename"
	"github.com/nais/lander/pkg/telemetry"
	"github.com/nais/lander/pkg/theme"
	"github.com/nais/lander/pkg/version"
)

const (
	serviceName = "lander"

	redisConnectTimeout = 5 * time.Second
)

func limiter(ctx context.Context, cfg *config.Config) (ratelimit.Limiter, func(), error) {
	if cfg.RedisURL == "" {
		log.Infof("Keeping rate limits in memory; limits are not shared between replicas")
		return ratelimit.NewMemory(cfg.MaxDeploysPerHour, nil), func() {}, nil
	}

	redisLimiter, err := ratelimit.NewRedis(cfg.RedisURL, cfg.MaxDeploysPerHour, nil)
	if err != nil {
		return nil, nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, redisConnectTimeout)
	defer cancel()
	err = redisLimiter.Ping(ctx)
	if err != nil {
		redisLimiter.Close()
		return nil, nil, fmt.Errorf("connect to redis: %w", err)
	}

	log.Infof("Rate limits are stored in redis")

	return redisLimiter, func() {
		redisLimiter.Close()
	}, nil
}

func run() error {
	err := config.LoadEnvFile(os.Getenv("LANDER_ENV_FILE"))
	if err != nil {
		return fmt.Errorf("read env file: %w", err)
	}

	cfg := config.Initialize()
	err = conftools.Load(cfg)
	if err != nil {
		return err
	}

	if err := logging.Setup(cfg.LogLevel, cfg.LogFormat); err != nil {
		return err
	}

	// Welcome
	log.Infof("lander %s", version.Version())
	ts, err := version.BuildTime()
	if err == nil {
		log.Infof("This version was built %s", ts.Local())
	}

	for _, line := range conftools.Format(config.Secrets) {
		log.Info(line)
	}

	if cfg.Netlify.Token == "" {
		return fmt.Errorf("netlify token is required; try using --%s or NETLIFY_TOKEN", config.NetlifyToken)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.OtelCollectorURL != "" {
		tracerProvider, err := telemetry.New(ctx, serviceName, cfg.OtelCollectorURL)
		if err != nil {
			return fmt.Errorf("set up tracing: %w", err)
		}
		defer func() {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
			defer cancel()
			if err := tracerProvider.Shutdown(shutdownCtx); err != nil {
				log.Errorf("Flushing traces: %s", err)
			}
		}()
		log.Infof("Sending traces to %s", cfg.OtelCollectorURL)
	}

	rateLimiter, closeLimiter, err := limiter(ctx, cfg)
	if err != nil {
		return fmt.Errorf("set up rate limiter: %w", err)
	}
	defer closeLimiter()

	catalog, err := theme.LoadCatalog(cfg.ThemesFile)
	if err != nil {
		return fmt.Errorf("load themes: %w", err)
	}

	pub := publisher.New(publisher.Config{
		Provider:   netlify.New(cfg.Netlify.URL, cfg.Netlify.Token),
		Limiter:    rateLimiter,
		Names:      sitename.New(),
		MaxPerHour: cfg.MaxDeploysPerHour,
	})

	router := api.New(api.Config{
		AllowedOrigins: cfg.CorsAllowedOrigins,
		Catalog:        catalog,
		MetricsPath:    cfg.MetricsPath,
		Publisher:      pub,
	})

	server := &http.Server{
		Addr:              cfg.ListenAddress,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- server.ListenAndServe()
	}()

	log.Infof("Ready to accept connections on %s", cfg.ListenAddress)

	select {
	case err := <-serverErrors:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Infof("Received shutdown signal, exiting...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	return server.Shutdown(shutdownCtx)
}

func main() {
	err := run()
	if err != nil {
		log.Errorf("Fatal error: %s", err)
		os.Exit(1)
	}
}
