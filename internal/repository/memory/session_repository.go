package memory

import (
	"context"
	"sync"
	"time"

	"ustory-be/internal/repository/contract"

	"github.com/patrickmn/go-cache"
)

// SessionRepository is the in-process SessionStore, used when Redis is not configured.
type SessionRepository struct {
	cache *cache.Cache
	// takeMu serializes Take so a value is handed out once.
	takeMu sync.Mutex
}

func NewSessionRepository(cleanupInterval time.Duration) *SessionRepository {
	return &SessionRepository{
		cache: cache.New(cache.NoExpiration, cleanupInterval),
	}
}

var _ contract.SessionStore = (*SessionRepository)(nil)

func (r *SessionRepository) Save(_ context.Context, key string, value string, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = cache.NoExpiration
	}
	r.cache.Set(key, value, ttl)
	return nil
}

func (r *SessionRepository) Get(_ context.Context, key string) (string, bool, error) {
	if x, found := r.cache.Get(key); found {
		return x.(string), true, nil
	}
	return "", false, nil
}

func (r *SessionRepository) Take(_ context.Context, key string) (string, bool, error) {
	r.takeMu.Lock()
	defer r.takeMu.Unlock()

	x, found := r.cache.Get(key)
	if !found {
		return "", false, nil
	}
	r.cache.Delete(key)
	return x.(string), true, nil
}

func (r *SessionRepository) Remove(_ context.Context, key string) error {
	r.cache.Delete(key)
	return nil
}
