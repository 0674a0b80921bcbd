package views

import (
	"context"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minimallymodern/homesite/sanity"
)

func renderHTML(t *testing.T, cmp templ.Component) string {
	t.Helper()
	out, err := RenderString(context.Background(), cmp)
	require.NoError(t, err)
	return out
}

func TestFormatDate(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"2025-03-01T10:00:00Z", "Mar 1, 2025"},
		{"2025-03-01T10:00:00.000Z", "Mar 1, 2025"},
		{"2024-12-24", "Dec 24, 2024"},
		{"2024-12-24T08:30:00", "Dec 24, 2024"},
		{"", ""},
		{"yesterday", ""},
		{"2025-13-45", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDate(tt.in), tt.in)
	}
}

func TestAnimationDelay(t *testing.T) {
	assert.Equal(t, "0.00s", AnimationDelay(0))
	assert.Equal(t, "0.08s", AnimationDelay(1))
	assert.Equal(t, "0.16s", AnimationDelay(2))
}

func TestRoomHref(t *testing.T) {
	assert.Equal(t, "room.html?room=kitchen#abc", RoomHref("kitchen", "abc"))
	assert.Equal(t, "room.html?room=living-room#", RoomHref("living-room", ""))
	assert.Equal(t, "room.html?room=a%20b%26c#x%23y", RoomHref("a b&c", "x#y"))
}

func TestPostCardLink(t *testing.T) {
	post := sanity.Post{Title: "Warm kitchen", Room: "kitchen", Slug: "abc", PublishedAt: "2025-01-05T00:00:00Z"}
	out := renderHTML(t, PostCard(post, 2))

	assert.Contains(t, out, `href="room.html?room=kitchen#abc"`)
	assert.Contains(t, out, `style="animation-delay:0.16s;"`)
	assert.Contains(t, out, `<span class="room-tag">Kitchen</span>`)
	assert.Contains(t, out, `<span class="post-date">Jan 5, 2025</span>`)
	assert.Contains(t, out, `<h3>Warm kitchen</h3>`)
}

func TestPostCardWithoutImageOrSlug(t *testing.T) {
	post := sanity.Post{Title: "Bare", Room: "garage"}
	out := renderHTML(t, PostCard(post, 0))

	assert.Contains(t, out, `<img src="" alt="Bare">`)
	assert.Contains(t, out, `href="room.html?room=garage#"`)
	assert.Contains(t, out, `<span class="room-tag">Room</span>`)
	assert.Contains(t, out, `<p></p>`)
}

func TestPostCardEscapesContent(t *testing.T) {
	post := sanity.Post{Title: `<script>alert(1)</script>`, Excerpt: `"quoted" & more`, Room: "bedroom"}
	out := renderHTML(t, PostCard(post, 0))

	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;alert(1)&lt;/script&gt;")
	assert.Contains(t, out, "&#34;quoted&#34; &amp; more")
}

func TestRoomPostHeroImage(t *testing.T) {
	base := sanity.Post{Title: "Cosy", Room: "bedroom", Slug: "cosy"}

	t.Run("no image", func(t *testing.T) {
		post := base
		post.PinterestURL = "https://pinterest.com/pin/1"
		out := renderHTML(t, RoomPost(post, FeedOptions{}))
		assert.NotContains(t, out, "<img")
		assert.NotContains(t, out, "post-hero-image")
		assert.NotContains(t, out, "pin-badge")
	})

	t.Run("image only", func(t *testing.T) {
		post := base
		post.ImageURL = "https://cdn.example.com/cosy.jpg"
		out := renderHTML(t, RoomPost(post, FeedOptions{}))
		assert.Contains(t, out, `<div class="post-hero-image"><img src="https://cdn.example.com/cosy.jpg" alt="Cosy"></div>`)
		assert.NotContains(t, out, "pin-link")
		assert.NotContains(t, out, "pin-badge")
	})

	t.Run("image and pinterest", func(t *testing.T) {
		post := base
		post.ImageURL = "https://cdn.example.com/cosy.jpg"
		post.PinterestURL = "https://pinterest.com/pin/1"
		out := renderHTML(t, RoomPost(post, FeedOptions{Badge: BadgeSize{Width: 32, Height: 32}}))
		assert.Contains(t, out, `<a class="post-hero-image pin-link" href="https://pinterest.com/pin/1" target="_blank" rel="noopener noreferrer">`)
		assert.Contains(t, out, `class="pin-badge-img" width="32" height="32"`)
		assert.Contains(t, out, `src="assets/pinterest.webp"`)
	})

	t.Run("unsafe pinterest link", func(t *testing.T) {
		post := base
		post.ImageURL = "https://cdn.example.com/cosy.jpg"
		post.PinterestURL = "javascript:alert(1)"
		out := renderHTML(t, RoomPost(post, FeedOptions{}))
		assert.NotContains(t, out, "javascript:")
		assert.Contains(t, out, `<div class="post-hero-image">`)
	})
}

func TestRoomPostProducts(t *testing.T) {
	post := sanity.Post{Title: "Bath", Room: "bathroom", Slug: "bath"}

	out := renderHTML(t, RoomPost(post, FeedOptions{}))
	assert.NotContains(t, out, "Recreate this look")
	assert.NotContains(t, out, "product-section")
	assert.NotContains(t, out, "affiliate")

	post.Products = []sanity.Product{{Name: "Teak bath mat", URL: "https://shop.example.com/mat"}}
	out = renderHTML(t, RoomPost(post, FeedOptions{}))
	assert.Contains(t, out, "Recreate this look")
	assert.Equal(t, 1, strings.Count(out, `<li class="affiliate-item">`))
	assert.Contains(t, out, `<span class="affiliate-name">Teak bath mat</span>`)
	assert.Contains(t, out, `href="https://shop.example.com/mat" target="_blank" rel="noopener sponsored"`)
	assert.NotContains(t, out, "affiliate-note")
	assert.Contains(t, out, `<span class="affiliate-chevron" aria-hidden="true">›</span>`)
}

func TestRoomPostProductFallbacks(t *testing.T) {
	post := sanity.Post{
		Title: "Office",
		Room:  "home-office",
		Products: []sanity.Product{
			{Name: "Lamp", Note: "brass"},
			{Name: "Desk", URL: "javascript:void(0)"},
		},
	}
	out := renderHTML(t, RoomPost(post, FeedOptions{}))

	assert.Equal(t, 2, strings.Count(out, `href="#"`))
	assert.Contains(t, out, `<span class="affiliate-note">brass</span>`)
	assert.Contains(t, out, `<article class="room-post" id="">`)
}

func TestRoomPostHeader(t *testing.T) {
	post := sanity.Post{Title: "Calm", Room: "living-room", Slug: "calm", Excerpt: "Less is more.", PublishedAt: "bad"}
	out := renderHTML(t, RoomPost(post, FeedOptions{}))

	assert.True(t, strings.HasPrefix(out, `<article class="room-post" id="calm">`))
	assert.Contains(t, out, `<p class="post-intro">Less is more.</p>`)
	assert.Contains(t, out, `<span class="post-date"></span>`)
	assert.Contains(t, out, `<span class="room-tag">Living Room</span>`)
	assert.Contains(t, out, `<h2 class="post-title">Calm</h2>`)
}

func TestStatusMessage(t *testing.T) {
	out := renderHTML(t, StatusMessage(RoomEmpty, true))
	assert.Equal(t, `<p style="text-align:center;opacity:.7;">No posts yet for this room.</p>`, out)

	out = renderHTML(t, StatusMessage(LatestLoading, false))
	assert.Equal(t, `<p style="opacity:.7;">Loading…</p>`, out)
}
