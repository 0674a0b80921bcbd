// Package widgets models the site's small interactive behaviors as explicit
// state machines: toast, mobile nav, contact form, scroll reveal, smooth
// scroll and room cards.
package widgets

import (
	"sync"
	"time"
)

// ToastDuration is how long a toast stays visible.
const ToastDuration = 3 * time.Second

// Toast shows one title/message pair at a time. Showing again while visible
// replaces the content and restarts the timer; there is no queue.
type Toast struct {
	mu       sync.Mutex
	duration time.Duration
	title    string
	message  string
	visible  bool
	timer    *time.Timer
	gen      uint64
}

// NewToast creates a hidden toast that auto-dismisses after d.
func NewToast(d time.Duration) *Toast {
	if d <= 0 {
		d = ToastDuration
	}
	return &Toast{duration: d}
}

// Show displays title and message and (re)starts the dismiss timer.
func (t *Toast) Show(title, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.title = title
	t.message = message
	t.visible = true
	if t.timer != nil {
		t.timer.Stop()
	}
	t.gen++
	gen := t.gen
	t.timer = time.AfterFunc(t.duration, func() {
		t.expire(gen)
	})
}

// expire hides the toast unless a newer Show superseded the timer that fired.
func (t *Toast) expire(gen uint64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if gen != t.gen {
		return
	}
	t.visible = false
	t.timer = nil
}

// Hide dismisses the toast immediately and cancels the timer.
func (t *Toast) Hide() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.gen++
	t.visible = false
}

// Stop cancels a pending auto-hide without dismissing the toast.
func (t *Toast) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.timer != nil {
		t.timer.Stop()
		t.timer = nil
	}
	t.gen++
}

// Duration is how long each Show stays visible.
func (t *Toast) Duration() time.Duration {
	return t.duration
}

// Visible reports whether the toast is showing.
func (t *Toast) Visible() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.visible
}

// Content returns the last title and message shown.
func (t *Toast) Content() (title, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.title, t.message
}
