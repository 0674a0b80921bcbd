package views

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/minimallymodern/homesite/sanity"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// FormatDate renders an ISO timestamp as "Jan 2, 2006". Anything it cannot
// parse becomes the empty string.
func FormatDate(iso string) string {
	iso = strings.TrimSpace(iso)
	if iso == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format("Jan 2, 2006")
		}
	}
	return ""
}

// RoomHref links a post card to its room feed, anchored on the post slug.
func RoomHref(room, slug string) string {
	return "room.html?room=" + sanity.EncodeURIComponent(room) + "#" + sanity.EncodeURIComponent(slug)
}

// AnimationDelay staggers card entrance animations by 80ms per position.
func AnimationDelay(index int) string {
	return fmt.Sprintf("%.2fs", float64(index)*0.08)
}

// safeURL accepts relative links and http(s)/mailto URLs. Everything else
// (javascript:, data:, unparsable input) yields "".
func safeURL(raw string) string {
	val := strings.TrimSpace(raw)
	if val == "" {
		return ""
	}
	if strings.HasPrefix(val, "/") || strings.HasPrefix(val, "#") {
		return val
	}
	parsed, err := url.Parse(val)
	if err != nil || parsed.Scheme == "" {
		return ""
	}
	switch strings.ToLower(parsed.Scheme) {
	case "http", "https", "mailto":
		return val
	default:
		return ""
	}
}

func esc(s string) string {
	return templ.EscapeString(s)
}

// RenderString renders cmp into a string.
func RenderString(ctx context.Context, cmp templ.Component) (string, error) {
	var b strings.Builder
	if err := cmp.Render(ctx, &b); err != nil {
		return "", err
	}
	return b.String(), nil
}
