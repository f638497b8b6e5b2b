package memory

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRepositorySaveGetRemove(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(time.Minute)

	require.NoError(t, repo.Save(ctx, "naver:abc", "token-1", time.Hour))

	value, ok, err := repo.Get(ctx, "naver:abc")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "token-1", value)

	require.NoError(t, repo.Remove(ctx, "naver:abc"))

	_, ok, err = repo.Get(ctx, "naver:abc")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionRepositoryRemoveMissingKey(t *testing.T) {
	repo := NewSessionRepository(time.Minute)

	assert.NoError(t, repo.Remove(context.Background(), "naver:missing"))
}

func TestSessionRepositoryExpires(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(time.Minute)

	require.NoError(t, repo.Save(ctx, "refresh:r1", "v", 10*time.Millisecond))
	time.Sleep(30 * time.Millisecond)

	_, ok, err := repo.Get(ctx, "refresh:r1")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSessionRepositoryTakeHandsOutOnce(t *testing.T) {
	ctx := context.Background()
	repo := NewSessionRepository(time.Minute)
	require.NoError(t, repo.Save(ctx, "naver-state:s1", "1", time.Minute))

	const callers = 16
	var wg sync.WaitGroup
	var won atomic.Int32
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, ok, err := repo.Take(ctx, "naver-state:s1"); err == nil && ok {
				won.Add(1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, int32(1), won.Load())
	_, ok, err := repo.Get(ctx, "naver-state:s1")
	require.NoError(t, err)
	assert.False(t, ok)
}
