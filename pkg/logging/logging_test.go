package logging_test

import (
	"context"
	"testing"

	"github.com/nais/lander/pkg/logging"
	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestSetup(t *testing.T) {
	defer log.SetLevel(log.InfoLevel)

	tests := []struct {
		name   string
		level  string
		format string
		err    string
	}{
		{name: "json", level: "debug", format: "json"},
		{name: "text", level: "warn", format: "text"},
		{name: "bad format", level: "info", format: "xml", err: "log format 'xml' is not recognized"},
		{name: "bad level", level: "loud", format: "text", err: `while setting log level: not a valid logrus Level: "loud"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := logging.Setup(tt.level, tt.format)
			if tt.err != "" {
				assert.EqualError(t, err, tt.err)
				return
			}
			assert.NoError(t, err)
			lvl, _ := log.ParseLevel(tt.level)
			assert.Equal(t, lvl, log.GetLevel())
		})
	}
}

func TestFromContext(t *testing.T) {
	entry := logging.FromContext(context.Background())
	assert.Empty(t, entry.Data)

	ctx := logging.WithEntry(context.Background(), log.WithField("correlation_id", "abc"))
	assert.Equal(t, "abc", logging.FromContext(ctx).Data["correlation_id"])
}
