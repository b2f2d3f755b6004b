package version

import (
	"time"
)

// Injected at build time with:
//
//	go build -ldflags "-X github.com/nais/lander/pkg/version.version=... -X github.com/nais/lander/pkg/version.buildTime=..."
var (
	version   = "unknown"
	buildTime = "0"
)

func Version() string {
	return version
}

// BuildTime returns the build timestamp as given in RFC 3339 format.
func BuildTime() (time.Time, error) {
	return time.Parse(time.RFC3339, buildTime)
}
