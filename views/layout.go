package views

import (
	"context"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/a-h/templ"

	"github.com/minimallymodern/homesite/sanity"
	"github.com/minimallymodern/homesite/widgets"
)

// SiteConfig holds site-wide settings the layout needs.
type SiteConfig struct {
	Name        string
	Description string
}

// Flash is a one-shot toast carried across a redirect.
type Flash struct {
	Title   string
	Message string
}

// LayoutData is passed to Layout for every page.
type LayoutData struct {
	Site   SiteConfig
	Title  string
	Active string // nav key: "home", a room id, or "contact"
	Nav    widgets.NavToggle
	Toast  *widgets.Toast // rendered active when visible
}

// Layout wraps body in the shared document shell: header nav, mobile nav,
// toast host and footer.
func Layout(data LayoutData, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		title := data.Site.Name
		if data.Title != "" {
			title = data.Title + " | " + data.Site.Name
		}
		var b strings.Builder
		b.WriteString(`<!DOCTYPE html><html lang="en"><head><meta charset="utf-8">`)
		b.WriteString(`<meta name="viewport" content="width=device-width, initial-scale=1">`)
		b.WriteString(`<title>` + esc(title) + `</title>`)
		b.WriteString(`<link rel="stylesheet" href="/assets/styles.css">`)
		b.WriteString(`<link rel="alternate" type="application/rss+xml" href="/feed.xml" title="` + esc(data.Site.Name) + `">`)
		b.WriteString(`</head><body>`)
		writeNav(&b, data.Active, data.Nav)
		b.WriteString(`<main>`)
		if _, err := io.WriteString(w, b.String()); err != nil {
			return err
		}
		if err := body.Render(ctx, w); err != nil {
			return err
		}
		b.Reset()
		b.WriteString(`</main>`)
		writeToast(&b, data.Toast)
		b.WriteString(`<footer class="site-footer"><p>` + esc(data.Site.Name) + `</p></footer>`)
		b.WriteString(`</body></html>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// writeNav renders the header nav and the mobile nav. The menu button is a
// label for a checkbox so the toggle works without script.
func writeNav(b *strings.Builder, active string, nav widgets.NavToggle) {
	links := func(class string) {
		b.WriteString(`<a class="` + class + navActive(active == "home") + `" href="/">Home</a>`)
		for _, room := range sanity.Rooms {
			b.WriteString(`<a class="` + class + navActive(active == room) + `" href="` + esc(RoomHref(room, "")) + `">`)
			b.WriteString(esc(sanity.RoomLabel(room)) + `</a>`)
		}
		b.WriteString(`<a class="` + class + navActive(active == "contact") + `" href="/contact.html">Contact</a>`)
	}
	b.WriteString(`<input type="checkbox" id="navToggle" class="nav-toggle" aria-hidden="true"`)
	if nav.Open() {
		b.WriteString(` checked`)
	}
	b.WriteString(`>`)
	b.WriteString(`<header class="site-header"><a class="logo" href="/">Minimally Modern Home</a><nav class="main-nav">`)
	links("nav-link")
	b.WriteString(`</nav><label for="navToggle" class="mobile-menu-btn" aria-label="Menu"><span></span><span></span><span></span></label></header>`)
	b.WriteString(`<nav class="mobile-nav` + navActive(nav.Class() != "") + `">`)
	links("mobile-nav-link")
	b.WriteString(`</nav>`)
}

func navActive(ok bool) string {
	if ok {
		return " active"
	}
	return ""
}

// writeToast renders the toast host. A visible toast fades out by CSS after
// its duration.
func writeToast(b *strings.Builder, t *widgets.Toast) {
	if t == nil || !t.Visible() {
		writeToastDiv(b, "toast", "toast", "", "", 0)
		return
	}
	title, msg := t.Content()
	writeToastDiv(b, "toast", "toast active", title, msg, t.Duration())
}

func writeToastDiv(b *strings.Builder, id, class, title, msg string, d time.Duration) {
	b.WriteString(`<div id="` + esc(id) + `" class="` + class + `" role="status"`)
	if d > 0 {
		b.WriteString(` style="--toast-duration:` + ToastDuration(d) + `"`)
	}
	b.WriteString(`>`)
	b.WriteString(`<p class="toast-title">` + esc(title) + `</p>`)
	b.WriteString(`<p class="toast-message">` + esc(msg) + `</p></div>`)
}

// ToastDuration formats d for the --toast-duration CSS variable.
func ToastDuration(d time.Duration) string {
	return strconv.FormatFloat(d.Seconds(), 'f', 2, 64) + "s"
}

// RevealID is the scroll-reveal id of a room card.
func RevealID(room string) string {
	return "room-" + room
}

const heroRevealID = "hero"

// HomeBody renders the homepage around the mounted latest-posts grid.
// Server-rendered pages have no viewport observer, so every reveal element
// is emitted already revealed. Unavailable room cards link to a
// coming-soon toast shown by :target instead of navigating.
func HomeBody(cards []widgets.RoomCard, gridHTML string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		ids := []string{heroRevealID}
		for _, c := range cards {
			ids = append(ids, RevealID(c.Room))
		}
		rev := widgets.NewRevealer(ids...)
		rev.RevealAll()

		var b strings.Builder
		b.WriteString(`<section class="hero ` + revealClass(rev, heroRevealID) + `"><h1>Calm, considered rooms</h1>`)
		b.WriteString(`<p>Simple ideas for a home that feels finished.</p>`)
		b.WriteString(`<a class="hero-link" href="#latestPostsGrid">Latest posts</a></section>`)
		b.WriteString(`<section class="rooms"><h2 class="section-title">Shop by room</h2><div class="room-grid">`)
		var soon strings.Builder
		for _, c := range cards {
			b.WriteString(`<a class="room-card ` + revealClass(rev, RevealID(c.Room)) + `" data-available="`)
			toast := widgets.NewToast(widgets.ToastDuration)
			if c.Click(toast) {
				b.WriteString(`true" href="` + esc(RoomHref(c.Room, "")) + `">`)
				b.WriteString(`<h3>` + esc(c.Name) + `</h3></a>`)
				continue
			}
			title, msg := toast.Content()
			toast.Stop()
			id := "soon-" + c.Room
			b.WriteString(`false" href="#` + esc(id) + `">`)
			b.WriteString(`<h3>` + esc(c.Name) + `</h3>`)
			b.WriteString(`<span class="room-card-soon">Coming soon</span></a>`)
			writeToastDiv(&soon, id, "toast soon-toast", title, msg, toast.Duration())
		}
		b.WriteString(`</div></section>`)
		b.WriteString(soon.String())
		b.WriteString(`<section class="latest"><h2 class="section-title">Latest posts</h2>`)
		b.WriteString(`<div id="latestPostsGrid" class="posts-grid">`)
		b.WriteString(gridHTML)
		b.WriteString(`</div></section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// RoomBody renders the room page around the mounted title and feed.
// scrollTarget is the post the mounter scrolled to, if any; the browser's
// fragment navigation lands on it with smooth scrolling.
func RoomBody(title, feedHTML, scrollTarget string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="room-page"><h1 id="roomTitle" class="room-title">`)
		b.WriteString(esc(title))
		b.WriteString(`</h1><div id="roomFeed" class="room-feed"`)
		if scrollTarget != "" {
			b.WriteString(` data-scroll-target="` + esc(scrollTarget) + `"`)
		}
		b.WriteString(`>`)
		b.WriteString(feedHTML)
		b.WriteString(`</div></section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// ContactView is the server-side state of the contact form.
type ContactView struct {
	Action    string
	CSRFToken string
	Status    string
	Sent      bool
	Button    widgets.Button
}

// ContactBody renders the contact form, or the success panel once sent.
func ContactBody(v ContactView) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		var b strings.Builder
		b.WriteString(`<section class="contact"><h1>Get in touch</h1>`)
		formStyle, successStyle := "", ` style="display:none"`
		if v.Sent {
			formStyle, successStyle = ` style="display:none"`, ` style="display:block"`
		}
		b.WriteString(`<form id="contactForm" method="post" enctype="multipart/form-data" action="` + esc(v.Action) + `"` + formStyle + `>`)
		b.WriteString(`<input type="hidden" name="_csrf" value="` + esc(v.CSRFToken) + `">`)
		b.WriteString(`<label>Name<input type="text" name="name" required></label>`)
		b.WriteString(`<label>Email<input type="email" name="email" required></label>`)
		b.WriteString(`<label>Message<textarea name="message" rows="5" required></textarea></label>`)
		b.WriteString(`<button type="submit"`)
		if v.Button.Disabled {
			b.WriteString(` disabled`)
		}
		b.WriteString(`>` + esc(v.Button.Label) + `</button>`)
		b.WriteString(`<p id="formStatus" class="form-status" role="alert">` + esc(v.Status) + `</p></form>`)
		b.WriteString(`<div id="successMessage" class="success-message"` + successStyle + `>`)
		b.WriteString(`<h2>Thank you!</h2><p>Your message has been sent. We'll be in touch soon.</p></div>`)
		b.WriteString(`</section>`)
		_, err := io.WriteString(w, b.String())
		return err
	})
}

// ErrorBody is shown by the HTTP error handler.
func ErrorBody(code int, message string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, `<section class="error-page"><p class="error-code">`+strconv.Itoa(code)+`</p><h1>`+esc(message)+`</h1><p><a href="/">Back home</a></p></section>`)
		return err
	})
}

func revealClass(r *widgets.Revealer, id string) string {
	if r.Visible(id) {
		return "animate-on-scroll visible"
	}
	return "animate-on-scroll"
}
