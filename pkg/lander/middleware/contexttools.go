package middleware

import (
	"context"
	"net"
	"net/http"
	"strings"
)

type contextKey int

const (
	contextKeyCorrelationID contextKey = iota
	contextKeyClientKey
)

func GetCorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(contextKeyCorrelationID).(string)
	return id
}

func WithCorrelationID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, contextKeyCorrelationID, id)
}

func GetClientKey(ctx context.Context) string {
	key, _ := ctx.Value(contextKeyClientKey).(string)
	return key
}

func WithClientKey(ctx context.Context, key string) context.Context {
	return context.WithValue(ctx, contextKeyClientKey, key)
}

// ClientKey identifies the caller for rate limiting. The first address in
// X-Forwarded-For wins, otherwise the host part of the remote address.
func ClientKey(r *http.Request) string {
	forwarded := r.Header.Get("X-Forwarded-For")
	if forwarded != "" {
		first, _, _ := strings.Cut(forwarded, ",")
		first = strings.TrimSpace(first)
		if first != "" {
			return first
		}
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// ClientIdentifier stores the client key of every request in its context.
func ClientIdentifier(next http.Handler) http.Handler {
	fn := func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithClientKey(r.Context(), ClientKey(r))))
	}
	return http.HandlerFunc(fn)
}
