package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// Placeholder texts shown in mount points.
const (
	LatestLoading = "Loading…"
	LatestEmpty   = "No posts yet."
	RoomLoading   = "Loading posts…"
	RoomEmpty     = "No posts yet for this room."
	LoadFailed    = "Couldn’t load posts."
)

// StatusMessage renders a muted placeholder paragraph. Room feeds center it.
func StatusMessage(text string, centered bool) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		style := "opacity:.7;"
		if centered {
			style = "text-align:center;opacity:.7;"
		}
		_, err := io.WriteString(w, `<p style="`+style+`">`+esc(text)+`</p>`)
		return err
	})
}
