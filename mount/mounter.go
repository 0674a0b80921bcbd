package mount

import (
	"context"
	"log/slog"

	"github.com/a-h/templ"

	"github.com/minimallymodern/homesite/sanity"
	"github.com/minimallymodern/homesite/views"
	"github.com/minimallymodern/homesite/widgets"
)

// State is where a mount ended up. Mounting is one-shot: a page goes
// idle -> loading -> rendered|empty|error and never back to loading.
type State int

const (
	StateIdle State = iota
	StateLoading
	StateRendered
	StateEmpty
	StateError
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateRendered:
		return "rendered"
	case StateEmpty:
		return "empty"
	case StateError:
		return "error"
	default:
		return "idle"
	}
}

// PostSource is the content store as seen by the mounters.
type PostSource interface {
	LatestPosts(ctx context.Context, limit int) ([]sanity.Post, error)
	RoomPosts(ctx context.Context, room string, limit int) ([]sanity.Post, error)
}

// Mounter fills a page's mount points from the content store.
type Mounter struct {
	source PostSource
	logger *slog.Logger
	feed   views.FeedOptions
}

// Option configures a Mounter.
type Option func(*Mounter)

// WithLogger sets the logger used for fetch failures.
func WithLogger(l *slog.Logger) Option {
	return func(m *Mounter) {
		m.logger = l
	}
}

// WithFeedOptions sets the room feed rendering options.
func WithFeedOptions(o views.FeedOptions) Option {
	return func(m *Mounter) {
		m.feed = o
	}
}

// New creates a Mounter reading from source.
func New(source PostSource, opts ...Option) *Mounter {
	m := &Mounter{
		source: source,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Mount runs the mount routine for kind. Kinds without dynamic content stay
// idle.
func (m *Mounter) Mount(ctx context.Context, kind Kind, doc Document) State {
	switch kind {
	case KindHome:
		return m.MountLatestPosts(ctx, doc)
	case KindRoom:
		return m.MountRoomFeed(ctx, doc)
	default:
		return StateIdle
	}
}

// MountLatestPosts fills latestPostsGrid with the newest post cards. A page
// without the grid is left untouched.
func (m *Mounter) MountLatestPosts(ctx context.Context, doc Document) State {
	grid, ok := doc.Mount(LatestPostsGrid)
	if !ok {
		return StateIdle
	}
	m.setStatus(ctx, grid, views.LatestLoading, false)

	posts, err := m.source.LatestPosts(ctx, sanity.LatestLimit)
	if err != nil {
		m.logger.Error("load latest posts", "error", err)
		m.setStatus(ctx, grid, views.LoadFailed, false)
		return StateError
	}
	if len(posts) == 0 {
		m.setStatus(ctx, grid, views.LatestEmpty, false)
		return StateEmpty
	}
	if err := m.render(ctx, grid, views.PostCards(posts)); err != nil {
		m.logger.Error("render latest posts", "error", err)
		m.setStatus(ctx, grid, views.LoadFailed, false)
		return StateError
	}
	return StateRendered
}

// MountRoomFeed fills roomFeed with every post of the room named by the
// ?room= query parameter, then scrolls to the URL fragment if it names a
// rendered post.
func (m *Mounter) MountRoomFeed(ctx context.Context, doc Document) State {
	feed, ok := doc.Mount(RoomFeed)
	if !ok {
		return StateIdle
	}
	loc := doc.Location()
	room := loc.Query().Get("room")
	if title, ok := doc.Mount(RoomTitle); ok {
		title.SetText(sanity.RoomLabel(room))
	}
	m.setStatus(ctx, feed, views.RoomLoading, true)

	posts, err := m.source.RoomPosts(ctx, room, sanity.RoomLimit)
	if err != nil {
		m.logger.Error("load room posts", "room", room, "error", err)
		m.setStatus(ctx, feed, views.LoadFailed, true)
		return StateError
	}
	if len(posts) == 0 {
		m.setStatus(ctx, feed, views.RoomEmpty, true)
		return StateEmpty
	}
	if err := m.render(ctx, feed, views.RoomPosts(posts, m.feed)); err != nil {
		m.logger.Error("render room posts", "room", room, "error", err)
		m.setStatus(ctx, feed, views.LoadFailed, true)
		return StateError
	}

	// Fragment is already percent-decoded; an empty one is a bare "#".
	widgets.SmoothScroll(doc, "#"+loc.Fragment)
	return StateRendered
}

func (m *Mounter) render(ctx context.Context, el Element, cmp templ.Component) error {
	out, err := views.RenderString(ctx, cmp)
	if err != nil {
		return err
	}
	el.SetHTML(out)
	return nil
}

func (m *Mounter) setStatus(ctx context.Context, el Element, text string, centered bool) {
	out, err := views.RenderString(ctx, views.StatusMessage(text, centered))
	if err != nil {
		el.SetText(text)
		return
	}
	el.SetHTML(out)
}
