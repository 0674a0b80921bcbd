package widgets

import "strings"

// Scroller brings an element into view by id.
type Scroller interface {
	ScrollIntoView(id string) bool
}

// AnchorTarget returns the element id an in-page link points at. Bare "#"
// and links that are not in-page anchors return false.
func AnchorTarget(href string) (string, bool) {
	if !strings.HasPrefix(href, "#") || href == "#" {
		return "", false
	}
	return href[1:], true
}

// SmoothScroll handles a click on href. It reports whether the default
// navigation was intercepted, which is the case for every in-page anchor
// even when no target exists.
func SmoothScroll(s Scroller, href string) bool {
	id, ok := AnchorTarget(href)
	if !ok {
		return false
	}
	s.ScrollIntoView(id)
	return true
}
