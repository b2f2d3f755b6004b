// This code was originally written by Rene Zbinden and modified by Vladimir Konovalov.
// Copied from https://github.com/766b/chi-prometheus and further adapted.

package middleware

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi"
	chi_middleware "github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus"
)

var defaultBuckets = []float64{.005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10, 15, 20, 30}

const (
	reqsName    = "requests_total"
	latencyName = "request_duration_seconds"
)

// Prometheus exposes the number of requests and their latency,
// partitioned by status code, method and route pattern.
type Prometheus struct {
	reqs    *prometheus.CounterVec
	latency *prometheus.HistogramVec
}

// register returns the collector already registered under the same name, if any.
func register[T prometheus.Collector](c T) T {
	err := prometheus.Register(c)
	if err == nil {
		return c
	}
	var already prometheus.AlreadyRegisteredError
	if errors.As(err, &already) {
		if existing, ok := already.ExistingCollector.(T); ok {
			return existing
		}
	}
	panic(err)
}

func PrometheusMiddleware(name string, buckets ...float64) *Prometheus {
	if len(buckets) == 0 {
		buckets = defaultBuckets
	}

	reqs := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name:        reqsName,
			Help:        "How many HTTP requests processed, partitioned by status code, method and HTTP path.",
			ConstLabels: prometheus.Labels{"service": name},
		},
		[]string{"code", "method", "path"},
	)

	latency := prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:        latencyName,
		Help:        "How long it took to process the request, partitioned by status code, method and HTTP path.",
		ConstLabels: prometheus.Labels{"service": name},
		Buckets:     buckets,
	},
		[]string{"code", "method", "path"},
	)

	return &Prometheus{
		reqs:    register(reqs),
		latency: register(latency),
	}
}

// Initialize creates the series for a route so it is exported before the first request.
func (p *Prometheus) Initialize(path, method string, code int) {
	p.reqs.WithLabelValues(strconv.Itoa(code), method, path)
}

func routePattern(r *http.Request) string {
	rctx := chi.RouteContext(r.Context())
	if rctx == nil {
		return r.URL.Path
	}
	pattern := rctx.RoutePattern()
	if pattern == "" {
		// Unmatched routes share one label to bound cardinality.
		return "unmatched"
	}
	return pattern
}

func (p *Prometheus) Handler() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chi_middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r)
			statusCode := strconv.Itoa(ww.Status())
			path := routePattern(r)
			p.reqs.WithLabelValues(statusCode, r.Method, path).Inc()
			p.latency.WithLabelValues(statusCode, r.Method, path).Observe(time.Since(start).Seconds())
		}
		return http.HandlerFunc(fn)
	}
}
