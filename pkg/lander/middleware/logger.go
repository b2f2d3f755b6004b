package middleware

import (
	"net/http"
	"time"

	chi_middleware "github.com/go-chi/chi/middleware"
	"github.com/google/uuid"
	"github.com/nais/lander/pkg/logging"
	log "github.com/sirupsen/logrus"
)

const CorrelationIDHeader = "X-Correlation-ID"

// RequestLogger assigns a correlation ID to every request and logs the
// request when it completes. Handlers find the request scoped log entry
// with logging.FromContext.
func RequestLogger() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		fn := func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			correlationID := r.Header.Get(CorrelationIDHeader)
			if _, err := uuid.Parse(correlationID); err != nil {
				correlationID = uuid.New().String()
			}
			w.Header().Set(CorrelationIDHeader, correlationID)

			ctx := WithCorrelationID(r.Context(), correlationID)
			entry := log.WithField("correlation_id", correlationID)
			ctx = logging.WithEntry(ctx, entry)

			ww := chi_middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			next.ServeHTTP(ww, r.WithContext(ctx))

			entry.WithFields(log.Fields{
				"method":   r.Method,
				"path":     r.URL.Path,
				"status":   ww.Status(),
				"bytes":    ww.BytesWritten(),
				"duration": time.Since(start).String(),
			}).Info("Request completed")
		}
		return http.HandlerFunc(fn)
	}
}
