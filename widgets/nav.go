package widgets

import "sync"

// NavToggle is the mobile menu's open/closed state. Nothing is persisted.
type NavToggle struct {
	mu   sync.Mutex
	open bool
}

// Toggle flips the state and returns the new one.
func (n *NavToggle) Toggle() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.open = !n.open
	return n.open
}

// Open reports whether the menu is open.
func (n *NavToggle) Open() bool {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.open
}

// Class is the CSS class applied to both the menu button and the nav.
func (n *NavToggle) Class() string {
	if n.Open() {
		return "active"
	}
	return ""
}
