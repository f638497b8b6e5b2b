package contract

import (
	"context"
	"time"
)

// SessionStore keeps short-lived token associations with explicit TTLs.
type SessionStore interface {
	Save(ctx context.Context, key string, value string, ttl time.Duration) error
	// Get reports false when the key is absent or expired.
	Get(ctx context.Context, key string) (string, bool, error)
	// Take reads and deletes key in one step; of several concurrent callers
	// at most one observes the value.
	Take(ctx context.Context, key string) (string, bool, error)
	// Remove is a no-op for absent keys.
	Remove(ctx context.Context, key string) error
}
