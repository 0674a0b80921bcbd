package homesite

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLimiter(t *testing.T, max int, window time.Duration) (*ContactLimiter, *time.Time) {
	t.Helper()
	l := NewContactLimiter(max, window)
	t.Cleanup(l.Stop)
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	l.now = func() time.Time { return now }
	return l, &now
}

func TestContactLimiterBlocksAfterMax(t *testing.T) {
	l, _ := newTestLimiter(t, 2, time.Minute)
	ip := "203.0.113.10"

	assert.True(t, l.Allow(ip))
	assert.True(t, l.Allow(ip))
	assert.False(t, l.Allow(ip))
	assert.ErrorIs(t, l.Take(ip), ErrRateLimited)
}

func TestContactLimiterResetsAfterWindow(t *testing.T) {
	l, now := newTestLimiter(t, 1, time.Minute)
	ip := "203.0.113.20"

	require.True(t, l.Allow(ip))
	require.False(t, l.Allow(ip))

	*now = now.Add(61 * time.Second)
	assert.True(t, l.Allow(ip))
}

func TestContactLimiterIsPerIP(t *testing.T) {
	l, _ := newTestLimiter(t, 1, time.Minute)

	assert.True(t, l.Allow("203.0.113.30"))
	assert.True(t, l.Allow("203.0.113.31"))
	assert.False(t, l.Allow("203.0.113.30"))
}

func TestContactLimiterDisabled(t *testing.T) {
	l, _ := newTestLimiter(t, 0, time.Minute)
	for i := 0; i < 10; i++ {
		assert.True(t, l.Allow("203.0.113.40"))
	}
}

func TestContactLimiterConcurrent(t *testing.T) {
	l := NewContactLimiter(5, time.Minute)
	defer l.Stop()

	var wg sync.WaitGroup
	var mu sync.Mutex
	allowed := 0
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if l.Allow("203.0.113.50") {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()
	assert.Equal(t, 5, allowed)
}

func TestContactLimiterStopTwice(t *testing.T) {
	l := NewContactLimiter(1, time.Minute)
	l.Stop()
	assert.NotPanics(t, l.Stop)
}
