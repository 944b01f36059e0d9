package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// WindowCounter counts hits per key in fixed windows backed by Redis.
// Key format: ratelimit:<scope>:<key>:<window_start_unix>
type WindowCounter struct {
	client *redis.Client
	window time.Duration
	now    func() time.Time
}

// NewWindowCounter creates a WindowCounter wrapping the given Redis client.
func NewWindowCounter(client *redis.Client, window time.Duration) *WindowCounter {
	if window <= 0 {
		window = time.Minute
	}
	return &WindowCounter{client: client, window: window, now: time.Now}
}

// Hit records one hit and returns the count in the current window along with
// the time left until the window resets.
func (w *WindowCounter) Hit(ctx context.Context, scope, key string) (int64, time.Duration, error) {
	now := w.now()
	start := now.Truncate(w.window)
	redisKey := w.key(scope, key, start)

	pipe := w.client.TxPipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, w.window)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, 0, fmt.Errorf("rate limit hit: %w", err)
	}

	return incr.Val(), start.Add(w.window).Sub(now), nil
}

func (w *WindowCounter) key(scope, key string, start time.Time) string {
	return fmt.Sprintf("ratelimit:%s:%s:%d", scope, key, start.Unix())
}
