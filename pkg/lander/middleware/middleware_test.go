package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi"
	"github.com/google/uuid"
	"github.com/nais/lander/pkg/lander/middleware"
	"github.com/nais/lander/pkg/logging"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClientKey(t *testing.T) {
	tests := []struct {
		name       string
		forwarded  string
		remoteAddr string
		expected   string
	}{
		{name: "remote address", remoteAddr: "192.0.2.10:51234", expected: "192.0.2.10"},
		{name: "ipv6 remote address", remoteAddr: "[2001:db8::1]:443", expected: "2001:db8::1"},
		{name: "forwarded single", forwarded: "203.0.113.7", remoteAddr: "10.0.0.1:80", expected: "203.0.113.7"},
		{name: "forwarded chain", forwarded: " 203.0.113.7 , 10.1.1.1", remoteAddr: "10.0.0.1:80", expected: "203.0.113.7"},
		{name: "empty first hop", forwarded: " , 10.1.1.1", remoteAddr: "10.0.0.1:80", expected: "10.0.0.1"},
		{name: "remote address without port", remoteAddr: "unix-socket", expected: "unix-socket"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(http.MethodPost, "/api/deploy", nil)
			r.RemoteAddr = tt.remoteAddr
			if tt.forwarded != "" {
				r.Header.Set("X-Forwarded-For", tt.forwarded)
			}
			assert.Equal(t, tt.expected, middleware.ClientKey(r))
		})
	}
}

func TestClientIdentifier(t *testing.T) {
	var key string
	handler := middleware.ClientIdentifier(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		key = middleware.GetClientKey(r.Context())
	}))

	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set("X-Forwarded-For", "198.51.100.4")
	handler.ServeHTTP(httptest.NewRecorder(), r)

	assert.Equal(t, "198.51.100.4", key)
}

func TestRequestLoggerCorrelationID(t *testing.T) {
	var fromContext, fromLogger string
	handler := middleware.RequestLogger()(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fromContext = middleware.GetCorrelationID(r.Context())
		fromLogger, _ = logging.FromContext(r.Context()).Data["correlation_id"].(string)
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	id := rec.Header().Get(middleware.CorrelationIDHeader)
	_, err := uuid.Parse(id)
	require.NoError(t, err)
	assert.Equal(t, id, fromContext)
	assert.Equal(t, id, fromLogger)
	assert.Equal(t, http.StatusTeapot, rec.Code)

	// A valid incoming ID is kept, anything else is replaced.
	incoming := uuid.New().String()
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(middleware.CorrelationIDHeader, incoming)
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, r)
	assert.Equal(t, incoming, rec.Header().Get(middleware.CorrelationIDHeader))

	r = httptest.NewRequest(http.MethodGet, "/", nil)
	r.Header.Set(middleware.CorrelationIDHeader, "<script>")
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, r)
	assert.NotEqual(t, "<script>", rec.Header().Get(middleware.CorrelationIDHeader))
}

func TestPrometheusMiddleware(t *testing.T) {
	p := middleware.PrometheusMiddleware("middleware-test")
	again := middleware.PrometheusMiddleware("middleware-test")
	require.NotNil(t, again)

	router := chi.NewRouter()
	router.Use(p.Handler())
	router.Get("/things/{id}", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusAccepted)
	})

	for _, id := range []string{"a", "b", "c"} {
		router.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/things/"+id, nil))
	}

	expected := `
# HELP requests_total How many HTTP requests processed, partitioned by status code, method and HTTP path.
# TYPE requests_total counter
requests_total{code="202",method="GET",path="/things/{id}",service="middleware-test"} 3
`
	err := testutil.GatherAndCompare(prometheus.DefaultGatherer, strings.NewReader(expected), "requests_total")
	assert.NoError(t, err)
}
