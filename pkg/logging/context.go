package logging

import (
	"context"

	log "github.com/sirupsen/logrus"
)

type contextKey struct{}

// WithEntry stores a log entry with request scoped fields in the context.
func WithEntry(ctx context.Context, entry *log.Entry) context.Context {
	return context.WithValue(ctx, contextKey{}, entry)
}

// FromContext returns the entry stored by WithEntry, or a bare entry on the
// standard logger.
func FromContext(ctx context.Context) *log.Entry {
	entry, ok := ctx.Value(contextKey{}).(*log.Entry)
	if !ok || entry == nil {
		return log.NewEntry(log.StandardLogger())
	}
	return entry
}
