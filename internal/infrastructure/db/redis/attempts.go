package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const attemptWindow = 15 * time.Minute

// FailedLoginTracker counts failed login attempts per username in a rolling
// window, backed by Redis. It feeds brute-force monitoring only; it never
// blocks a login by itself.
// Key format: login_failures:<username>
type FailedLoginTracker struct {
	client *redis.Client
}

// NewFailedLoginTracker creates a FailedLoginTracker wrapping the given
// Redis client.
func NewFailedLoginTracker(client *redis.Client) *FailedLoginTracker {
	return &FailedLoginTracker{client: client}
}

// RecordFailure bumps the counter for username and returns the count inside
// the current window. The window starts at the first failure.
func (t *FailedLoginTracker) RecordFailure(ctx context.Context, username string) (int64, error) {
	key := t.key(username)
	count, err := t.client.Incr(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("record login failure: %w", err)
	}
	if count == 1 {
		if err := t.client.Expire(ctx, key, attemptWindow).Err(); err != nil {
			return count, fmt.Errorf("set failure window: %w", err)
		}
	}
	return count, nil
}

// Reset clears the counter after a successful login.
func (t *FailedLoginTracker) Reset(ctx context.Context, username string) error {
	if err := t.client.Del(ctx, t.key(username)).Err(); err != nil {
		return fmt.Errorf("reset login failures: %w", err)
	}
	return nil
}

func (t *FailedLoginTracker) key(username string) string {
	return "login_failures:" + username
}
