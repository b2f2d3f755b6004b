package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	keyPrefix = "lander:ratelimit:"

	// Long enough to keep the previous bucket around, like Memory does.
	bucketTTL = 2 * time.Hour
)

// KEYS[1] is the bucket key, ARGV[1] the maximum and ARGV[2] the TTL in seconds.
// The TTL is set once, when the bucket is created, so it runs from the first admission.
var admitScript = redis.NewScript(`
local count = tonumber(redis.call("GET", KEYS[1]) or "0")
if count >= tonumber(ARGV[1]) then
	return 0
end
if redis.call("INCR", KEYS[1]) == 1 then
	redis.call("EXPIRE", KEYS[1], ARGV[2])
end
return 1
`)

// Redis shares admission counts between replicas through a redis server.
type Redis struct {
	client *redis.Client
	max    int
	clock  Clock
}

var _ Limiter = &Redis{}

func NewRedis(url string, maxPerHour int, clock Clock) (*Redis, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	return NewRedisFromClient(redis.NewClient(opt), maxPerHour, clock), nil
}

func NewRedisFromClient(client *redis.Client, maxPerHour int, clock Clock) *Redis {
	return &Redis{
		client: client,
		max:    maxPerHour,
		clock:  clockOrDefault(clock),
	}
}

func BucketKey(key string, bucket int64) string {
	return fmt.Sprintf("%s%s:%d", keyPrefix, key, bucket)
}

func (r *Redis) Admit(ctx context.Context, key string) (bool, error) {
	if r.max <= 0 {
		return false, nil
	}

	h := Bucket(r.clock())
	admitted, err := admitScript.Run(ctx, r.client, []string{BucketKey(key, h)}, r.max, int(bucketTTL.Seconds())).Int()
	if err != nil {
		return false, fmt.Errorf("rate limit store: %w", err)
	}

	return admitted == 1, nil
}

func (r *Redis) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *Redis) Close() error {
	return r.client.Close()
}
