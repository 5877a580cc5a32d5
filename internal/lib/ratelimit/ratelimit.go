// Package ratelimit counts requests per client within a fixed-length window
// that opens on the client's first request.
package ratelimit

import (
	"context"
	"sync"
	"time"
)

type Result struct {
	Allowed   bool
	Limit     int
	Remaining int
	ResetAt   time.Time
}

type window struct {
	count   int
	resetAt time.Time
}

type Limiter struct {
	max    int
	length time.Duration
	now    func() time.Time

	mu      sync.Mutex
	clients map[string]*window
}

func New(max int, length time.Duration) *Limiter {
	return &Limiter{
		max:     max,
		length:  length,
		now:     time.Now,
		clients: make(map[string]*window),
	}
}

// Record counts one request from key and reports whether it fits in the
// key's current window. Rejected requests are counted too.
func (l *Limiter) Record(key string) Result {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	w, ok := l.clients[key]
	if !ok || !now.Before(w.resetAt) {
		w = &window{resetAt: now.Add(l.length)}
		l.clients[key] = w
	}

	w.count++

	return Result{
		Allowed:   w.count <= l.max,
		Limit:     l.max,
		Remaining: max(l.max-w.count, 0),
		ResetAt:   w.resetAt,
	}
}

// Cleanup drops expired windows and returns how many were removed.
func (l *Limiter) Cleanup() int {
	now := l.now()

	l.mu.Lock()
	defer l.mu.Unlock()

	removed := 0
	for key, w := range l.clients {
		if !now.Before(w.resetAt) {
			delete(l.clients, key)
			removed++
		}
	}

	return removed
}

// StartCleanup runs Cleanup every interval until ctx is done.
func (l *Limiter) StartCleanup(ctx context.Context, interval time.Duration) {
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				l.Cleanup()
			}
		}
	}()
}

func (l *Limiter) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()

	return len(l.clients)
}
