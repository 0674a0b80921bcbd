package widgets

import "sync"

// RevealThreshold is the visible fraction at which an element is revealed.
const RevealThreshold = 0.1

// Intersection is one visibility observation of an element.
type Intersection struct {
	ID    string
	Ratio float64
}

// Revealer tracks scroll-reveal elements. Reveal is one-shot: once an
// element is visible it stops being observed and never hides again.
type Revealer struct {
	mu       sync.Mutex
	observed map[string]bool
	visible  map[string]bool
}

// NewRevealer observes ids.
func NewRevealer(ids ...string) *Revealer {
	r := &Revealer{
		observed: make(map[string]bool),
		visible:  make(map[string]bool),
	}
	r.Observe(ids...)
	return r
}

// Observe starts watching ids that are not already revealed.
func (r *Revealer) Observe(ids ...string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		if !r.visible[id] {
			r.observed[id] = true
		}
	}
}

// Handle applies a batch of observations and returns the ids revealed by it.
func (r *Revealer) Handle(entries []Intersection) []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	var revealed []string
	for _, e := range entries {
		if !r.observed[e.ID] || e.Ratio < RevealThreshold {
			continue
		}
		r.visible[e.ID] = true
		delete(r.observed, e.ID)
		revealed = append(revealed, e.ID)
	}
	return revealed
}

// RevealAll reveals every observed element, as when the whole page is in
// view or no observer is available, and returns the ids revealed.
func (r *Revealer) RevealAll() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	revealed := make([]string, 0, len(r.observed))
	for id := range r.observed {
		r.visible[id] = true
		revealed = append(revealed, id)
	}
	clear(r.observed)
	return revealed
}

// Visible reports whether id has been revealed.
func (r *Revealer) Visible(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.visible[id]
}

// Observing reports whether id is still being watched.
func (r *Revealer) Observing(id string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.observed[id]
}
