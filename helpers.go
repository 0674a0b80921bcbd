package homesite

import (
	"net/url"
	"strings"
)

// BuildURL resolves a site-relative reference such as
// "room.html?room=kitchen#slug" against base. An unparsable base is
// returned unchanged.
func BuildURL(base, ref string) string {
	u, err := url.Parse(strings.TrimRight(base, "/") + "/")
	if err != nil {
		return base
	}
	r, err := url.Parse(strings.TrimLeft(ref, "/"))
	if err != nil {
		return u.String()
	}
	return u.ResolveReference(r).String()
}
