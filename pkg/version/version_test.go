package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildTime(t *testing.T) {
	buildTime = "2026-10-14T09:00:00Z"
	ts, err := BuildTime()
	assert.NoError(t, err)
	assert.Equal(t, 2026, ts.Year())

	buildTime = "0"
	_, err = BuildTime()
	assert.Error(t, err)
}

func TestVersion(t *testing.T) {
	assert.Equal(t, "unknown", Version())
}
