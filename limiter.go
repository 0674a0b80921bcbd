package homesite

import (
	"errors"
	"sync"
	"time"
)

// ErrRateLimited is returned when a client has used up its allowance.
var ErrRateLimited = errors.New("rate limited")

// ContactLimiter caps contact form submissions per IP over a sliding window.
type ContactLimiter struct {
	mu     sync.Mutex
	hits   map[string][]time.Time
	max    int
	window time.Duration
	now    func() time.Time

	stop     chan struct{}
	stopOnce sync.Once
}

// NewContactLimiter allows max submissions per window. A max of zero or
// less disables limiting.
func NewContactLimiter(max int, window time.Duration) *ContactLimiter {
	l := &ContactLimiter{
		hits:   make(map[string][]time.Time),
		max:    max,
		window: window,
		now:    time.Now,
		stop:   make(chan struct{}),
	}
	go l.cleanup()
	return l
}

func (l *ContactLimiter) cleanup() {
	ticker := time.NewTicker(l.window)
	defer ticker.Stop()
	for {
		select {
		case <-l.stop:
			return
		case <-ticker.C:
			l.mu.Lock()
			for ip := range l.hits {
				if l.pruneLocked(ip) == 0 {
					delete(l.hits, ip)
				}
			}
			l.mu.Unlock()
		}
	}
}

// pruneLocked drops hits older than the window and returns how many remain.
func (l *ContactLimiter) pruneLocked(ip string) int {
	cutoff := l.now().Add(-l.window)
	hits := l.hits[ip]
	kept := hits[:0]
	for _, t := range hits {
		if t.After(cutoff) {
			kept = append(kept, t)
		}
	}
	l.hits[ip] = kept
	return len(kept)
}

// Allow records a submission for ip and reports whether it is within the
// limit. Rejected submissions are not recorded.
func (l *ContactLimiter) Allow(ip string) bool {
	return l.Take(ip) == nil
}

// Take is Allow returning ErrRateLimited instead of false.
func (l *ContactLimiter) Take(ip string) error {
	if l.max <= 0 {
		return nil
	}
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.pruneLocked(ip) >= l.max {
		return ErrRateLimited
	}
	l.hits[ip] = append(l.hits[ip], l.now())
	return nil
}

// Stop ends the background cleanup. It is safe to call more than once.
func (l *ContactLimiter) Stop() {
	l.stopOnce.Do(func() { close(l.stop) })
}
