package ratelimit

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.now = c.now.Add(d)
}

func newTestLimiter(max int, length time.Duration) (*Limiter, *fakeClock) {
	clock := &fakeClock{now: time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)}

	l := New(max, length)
	l.now = clock.Now

	return l, clock
}

func TestLimiter_Record(t *testing.T) {
	l, _ := newTestLimiter(20, 15*time.Minute)

	for i := 1; i <= 20; i++ {
		res := l.Record("10.0.0.1")
		require.True(t, res.Allowed, "request %d", i)
		require.Equal(t, 20-i, res.Remaining)
		require.Equal(t, 20, res.Limit)
	}

	res := l.Record("10.0.0.1")
	require.False(t, res.Allowed)
	require.Equal(t, 0, res.Remaining)

	other := l.Record("10.0.0.2")
	require.True(t, other.Allowed)
}

func TestLimiter_WindowReset(t *testing.T) {
	l, clock := newTestLimiter(2, 15*time.Minute)

	first := l.Record("a")
	require.True(t, first.Allowed)
	require.Equal(t, clock.Now().Add(15*time.Minute), first.ResetAt)

	clock.Advance(time.Minute)
	require.True(t, l.Record("a").Allowed)

	clock.Advance(13 * time.Minute)
	require.False(t, l.Record("a").Allowed)

	clock.Advance(time.Minute)
	res := l.Record("a")
	require.True(t, res.Allowed)
	require.Equal(t, 1, res.Remaining)
}

func TestLimiter_Cleanup(t *testing.T) {
	l, clock := newTestLimiter(5, time.Minute)

	l.Record("a")
	clock.Advance(30 * time.Second)
	l.Record("b")

	clock.Advance(30 * time.Second)
	require.Equal(t, 1, l.Cleanup())
	require.Equal(t, 1, l.size())

	clock.Advance(30 * time.Second)
	require.Equal(t, 1, l.Cleanup())
	require.Equal(t, 0, l.size())
}

func TestLimiter_Concurrent(t *testing.T) {
	l, _ := newTestLimiter(50, time.Hour)

	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		allowed int
	)

	for i := 0; i < 100; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			if l.Record("shared").Allowed {
				mu.Lock()
				allowed++
				mu.Unlock()
			}
		}()
	}

	wg.Wait()
	require.Equal(t, 50, allowed)
}

func TestLimiter_StartCleanup(t *testing.T) {
	l := New(1, time.Millisecond)
	l.Record("a")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	l.StartCleanup(ctx, 5*time.Millisecond)

	require.Eventually(t, func() bool {
		return l.size() == 0
	}, time.Second, 10*time.Millisecond)
}
