package ratelimit

import (
	"context"
	"time"
)

// Limiter decides whether a client may start another deployment.
type Limiter interface {
	Admit(ctx context.Context, key string) (bool, error)
}

type Clock func() time.Time

// Bucket returns the fixed one hour window a timestamp belongs to.
func Bucket(t time.Time) int64 {
	return t.Unix() / 3600
}

func clockOrDefault(clock Clock) Clock {
	if clock == nil {
		return time.Now
	}
	return clock
}
