package views

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"

	"github.com/minimallymodern/homesite/sanity"
)

// PostCard renders a homepage grid card. index drives the entrance delay.
// A post without an image still gets an <img> with an empty src.
func PostCard(post sanity.Post, index int) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<article class="post-card animate-fade-in" style="animation-delay:`)
		b.WriteString(AnimationDelay(index))
		b.WriteString(`;">`)
		b.WriteString(`<a class="post-card-link" href="`)
		b.WriteString(esc(RoomHref(post.Room, post.Slug)))
		b.WriteString(`" aria-label="Open `)
		b.WriteString(esc(post.Title))
		b.WriteString(`">`)
		b.WriteString(`<div class="post-card-image"><img src="`)
		b.WriteString(esc(post.ImageURL))
		b.WriteString(`" alt="`)
		b.WriteString(esc(post.Title))
		b.WriteString(`"></div>`)
		b.WriteString(`<div class="post-card-content"><div class="post-meta">`)
		b.WriteString(`<span class="room-tag">`)
		b.WriteString(esc(sanity.RoomLabel(post.Room)))
		b.WriteString(`</span><span class="post-date">`)
		b.WriteString(esc(FormatDate(post.PublishedAt)))
		b.WriteString(`</span></div><h3>`)
		b.WriteString(esc(post.Title))
		b.WriteString(`</h3><p>`)
		b.WriteString(esc(post.Excerpt))
		b.WriteString(`</p></div></a></article>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// PostCards renders cards for posts in order.
func PostCards(posts []sanity.Post) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for i, p := range posts {
			if err := PostCard(p, i).Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}
