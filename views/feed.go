package views

import (
	"context"
	"io"
	"strconv"
	"strings"

	"github.com/a-h/templ"

	"github.com/minimallymodern/homesite/sanity"
)

// PinBadgeSrc is the overlay icon shown on Pinterest-linked hero images.
const PinBadgeSrc = "assets/pinterest.webp"

// BadgeSize is the intrinsic size of the Pinterest badge. A zero value
// omits the width and height attributes.
type BadgeSize struct {
	Width, Height int
}

// FeedOptions tunes RoomPost output.
type FeedOptions struct {
	Badge BadgeSize
}

// RoomPost renders one post of a room feed. The article id is the slug so
// room.html#slug lands on it.
func RoomPost(post sanity.Post, opts FeedOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<article class="room-post" id="`)
		b.WriteString(esc(post.Slug))
		b.WriteString(`">`)

		b.WriteString(`<header class="post-hero"><div class="post-hero-meta">`)
		b.WriteString(`<span class="room-tag">`)
		b.WriteString(esc(sanity.RoomLabel(post.Room)))
		b.WriteString(`</span><span class="post-date">`)
		b.WriteString(esc(FormatDate(post.PublishedAt)))
		b.WriteString(`</span></div><h2 class="post-title">`)
		b.WriteString(esc(post.Title))
		b.WriteString(`</h2>`)
		if post.Excerpt != "" {
			b.WriteString(`<p class="post-intro">`)
			b.WriteString(esc(post.Excerpt))
			b.WriteString(`</p>`)
		}
		b.WriteString(`</header>`)

		writeHeroImage(&b, post, opts.Badge)

		b.WriteString(`<div class="post-divider"></div>`)

		writeProducts(&b, post.Products)

		b.WriteString(`</article>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// RoomPosts renders a whole feed in order.
func RoomPosts(posts []sanity.Post, opts FeedOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for _, p := range posts {
			if err := RoomPost(p, opts).Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}

// writeHeroImage handles the three image cases: no image, a plain image, and
// an image wrapped in a Pinterest link with the badge overlay.
func writeHeroImage(b *strings.Builder, post sanity.Post, badge BadgeSize) {
	if post.ImageURL == "" {
		return
	}
	pin := safeURL(post.PinterestURL)
	if pin == "" {
		b.WriteString(`<div class="post-hero-image"><img src="`)
		b.WriteString(esc(post.ImageURL))
		b.WriteString(`" alt="`)
		b.WriteString(esc(post.Title))
		b.WriteString(`"></div>`)
		return
	}
	b.WriteString(`<a class="post-hero-image pin-link" href="`)
	b.WriteString(esc(pin))
	b.WriteString(`" target="_blank" rel="noopener noreferrer"><img src="`)
	b.WriteString(esc(post.ImageURL))
	b.WriteString(`" alt="`)
	b.WriteString(esc(post.Title))
	b.WriteString(`">`)
	b.WriteString(`<span class="pin-badge" aria-hidden="true" title="View on Pinterest">`)
	b.WriteString(`<img src="` + PinBadgeSrc + `" alt="" class="pin-badge-img"`)
	if badge.Width > 0 && badge.Height > 0 {
		b.WriteString(` width="` + strconv.Itoa(badge.Width) + `" height="` + strconv.Itoa(badge.Height) + `"`)
	}
	b.WriteString(` loading="lazy" decoding="async"></span></a>`)
}

func writeProducts(b *strings.Builder, products []sanity.Product) {
	if len(products) == 0 {
		return
	}
	b.WriteString(`<section class="product-section">`)
	b.WriteString(`<h2 class="section-title">Recreate this look</h2>`)
	b.WriteString(`<p class="muted">Affiliate links below. We may earn a small commission at no extra cost to you.</p>`)
	b.WriteString(`<ul class="affiliate-list">`)
	for _, p := range products {
		href := safeURL(p.URL)
		if href == "" {
			href = "#"
		}
		b.WriteString(`<li class="affiliate-item"><a class="affiliate-link" href="`)
		b.WriteString(esc(href))
		b.WriteString(`" target="_blank" rel="noopener sponsored"><span class="affiliate-left">`)
		b.WriteString(`<span class="affiliate-name">`)
		b.WriteString(esc(p.Name))
		b.WriteString(`</span>`)
		if p.Note != "" {
			b.WriteString(`<span class="affiliate-note">`)
			b.WriteString(esc(p.Note))
			b.WriteString(`</span>`)
		}
		b.WriteString(`</span><span class="affiliate-chevron" aria-hidden="true">›</span></a></li>`)
	}
	b.WriteString(`</ul></section>`)
}
