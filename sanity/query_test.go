package sanity

import (
	"net/url"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var roomClause = regexp.MustCompile(`room=="([^"]*)"`)

func TestSanitizeRoom(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"kitchen", "kitchen"},
		{"living-room", "living-room"},
		{`kitchen" || true || "`, "kitchentrue"},
		{"Bedroom", "edroom"},
		{"home_office", "homeoffice"},
		{"ùñí©ødé", "d"},
		{"", ""},
		{"123 !@#", ""},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeRoom(tt.in))
		})
	}
}

func TestRoomPostsQueryOnlyAllowsRoomCharacters(t *testing.T) {
	inputs := []string{
		`"] | *[_type=="secret"`,
		"kitchen\n&& true",
		"<script>",
		"%22",
		"",
	}
	allowed := regexp.MustCompile(`^[a-z-]*$`)
	for _, in := range inputs {
		q := RoomPostsQuery(in, RoomLimit)
		m := roomClause.FindStringSubmatch(q)
		require.Len(t, m, 2, "query %q has no room clause", q)
		assert.Regexp(t, allowed, m[1])
		assert.Equal(t, 1, strings.Count(q, `_type=="post"`))
	}
}

func TestLatestPostsQuery(t *testing.T) {
	q := LatestPostsQuery(3)

	assert.True(t, strings.HasPrefix(q, `*[_type=="post"] | order(publishedAt desc)[0...3]`))
	assert.NotContains(t, q, "room==")
	assert.Contains(t, q, `"slug": slug.current`)
	assert.Contains(t, q, `"imageUrl": mainImage.asset->url`)
	assert.NotContains(t, q, "pinterestUrl")
	assert.NotContains(t, q, "products[]")
}

func TestRoomPostsQueryProjection(t *testing.T) {
	q := RoomPostsQuery("bedroom", 50)

	assert.Contains(t, q, `*[_type=="post" && room=="bedroom"]`)
	assert.Contains(t, q, "[0...50]")
	assert.Contains(t, q, "pinterestUrl")
	assert.Contains(t, q, "products[] { name, url, note }")
}

func TestQueryURL(t *testing.T) {
	cfg := DefaultConfig()
	q := LatestPostsQuery(3)

	raw := cfg.QueryURL(q)
	assert.True(t, strings.HasPrefix(raw, "https://opqrg5t7.api.sanity.io/v2025-01-01/data/query/production?query="))
	assert.NotContains(t, raw, " ")
	assert.NotContains(t, raw, "+")

	u, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, q, u.Query().Get("query"))
}

func TestQueryURLBaseOverride(t *testing.T) {
	cfg := DefaultConfig()
	cfg.BaseURL = "http://127.0.0.1:9999/"

	assert.True(t, strings.HasPrefix(cfg.QueryURL("*"), "http://127.0.0.1:9999/v2025-01-01/data/query/production?query="))
}

func TestRoomLabel(t *testing.T) {
	assert.Equal(t, "Living Room", RoomLabel("living-room"))
	assert.Equal(t, "Home Office", RoomLabel("home-office"))
	assert.Equal(t, "Room", RoomLabel("garage"))
	assert.Equal(t, "Room", RoomLabel(""))
}

func TestEncodeURIComponent(t *testing.T) {
	for in, want := range map[string]string{
		"open shelves":     "open%20shelves",
		"a+b&c=d":          "a%2Bb%26c%3Dd",
		"it's (really) *!": "it's%20(really)%20*!",
		"x#y/z?~_.-":       "x%23y%2Fz%3F~_.-",
		"café":             "caf%C3%A9",
	} {
		assert.Equal(t, want, EncodeURIComponent(in), in)
	}
}
