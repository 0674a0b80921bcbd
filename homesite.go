// Package homesite serves the Minimally Modern Home decor site. Posts come
// from a Sanity dataset on every request; each page kind has a set of
// mount points that the mount package fills before the layout is rendered.
package homesite

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"net/url"
	"path/filepath"
	"time"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"

	"github.com/minimallymodern/homesite/mount"
	"github.com/minimallymodern/homesite/sanity"
	"github.com/minimallymodern/homesite/views"
	"github.com/minimallymodern/homesite/widgets"
)

var _ mount.PostSource = (*sanity.Client)(nil)

// App is the running site. It wires the Sanity client, the mounter, the
// contact relay and the Echo router together.
type App struct {
	Config  SiteConfig
	Echo    *echo.Echo
	Sanity  *sanity.Client
	Mounter *mount.Mounter
	Logger  *slog.Logger

	contactLimiter *ContactLimiter
	source         mount.PostSource
	httpClient     *http.Client
	badge          views.BadgeSize
	customRoutes   []func(*App)
}

// New creates the App and registers middleware and routes. Nothing is
// fetched until a page is requested.
func New(cfg SiteConfig, opts ...Option) (*App, error) {
	cfg.setDefaults()

	a := &App{
		Config:     cfg,
		Echo:       echo.New(),
		Logger:     slog.Default(),
		httpClient: http.DefaultClient,
	}
	a.Echo.HideBanner = true
	a.Echo.HidePort = true

	for _, opt := range opts {
		opt(a)
	}

	a.Sanity = sanity.NewClient(cfg.Sanity, sanity.WithHTTPClient(a.httpClient))
	if a.source == nil {
		a.source = a.Sanity
	}

	badge, err := LoadBadgeSize(cfg.StaticDir)
	if err != nil {
		a.Logger.Warn("pinterest badge size unavailable", "err", err)
	}
	a.badge = badge

	a.Mounter = mount.New(a.source,
		mount.WithLogger(a.Logger),
		mount.WithFeedOptions(views.FeedOptions{Badge: a.badge}),
	)
	a.contactLimiter = NewContactLimiter(cfg.ContactLimit, time.Hour)

	if err := a.setupMiddleware(); err != nil {
		a.contactLimiter.Stop()
		return nil, err
	}
	a.setupRoutes()
	for _, fn := range a.customRoutes {
		fn(a)
	}
	return a, nil
}

// Start listens on Config.Addr until the server is shut down.
func (a *App) Start() error {
	a.Logger.Info("listening", "addr", a.Config.Addr, "dataset", a.Config.Sanity.Dataset)
	if err := a.Echo.Start(a.Config.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones.
func (a *App) Shutdown(ctx context.Context) error {
	return a.Echo.Shutdown(ctx)
}

// Close releases background resources.
func (a *App) Close() error {
	a.contactLimiter.Stop()
	return nil
}

func (a *App) setupRoutes() {
	e := a.Echo

	embeddedFS, _ := fs.Sub(EmbeddedAssets, "embedded")
	e.GET("/assets/styles.css", echo.WrapHandler(http.StripPrefix("/assets/", http.FileServer(http.FS(embeddedFS)))))
	e.Static("/assets", filepath.Join(a.Config.StaticDir, "assets"))

	e.GET("/", a.handleHome)
	e.GET("/index.html", a.handleHome)
	e.GET("/room.html", a.handleRoom)
	e.GET("/contact.html", a.handleContact)
	e.POST("/contact.html", a.handleContactSubmit)
	e.GET("/feed.xml", a.handleFeed)
}

// MountPage builds the document for loc's page kind and runs the mounter
// over it, bounded by Config.FetchTimeout.
func (a *App) MountPage(ctx context.Context, loc *url.URL) (*mount.Page, mount.Kind, mount.State) {
	kind := mount.KindForPath(loc.Path)
	page := mount.NewPageForKind(loc, kind)

	ctx, cancel := context.WithTimeout(ctx, a.Config.FetchTimeout)
	defer cancel()
	state := a.Mounter.Mount(ctx, kind, page)
	return page, kind, state
}

// PageView renders a mounted home or room page inside the layout. Contact
// pages carry per-request form state and are built by the handler.
func (a *App) PageView(kind mount.Kind, page *mount.Page, flash *views.Flash) (templ.Component, error) {
	switch kind {
	case mount.KindHome:
		return a.layout("", "home", flash,
			views.HomeBody(widgets.RoomCards(a.Config.AvailableRooms), page.HTML(mount.LatestPostsGrid))), nil
	case mount.KindRoom:
		title := page.Text(mount.RoomTitle)
		room := sanity.SanitizeRoom(page.Location().Query().Get("room"))
		return a.layout(title, room, flash, views.RoomBody(title, page.HTML(mount.RoomFeed), page.Scrolled())), nil
	default:
		return nil, fmt.Errorf("no standalone view for %s pages", kind)
	}
}

func (a *App) layout(title, active string, flash *views.Flash, body templ.Component) templ.Component {
	return views.Layout(views.LayoutData{
		Site:   views.SiteConfig{Name: a.Config.Name, Description: a.Config.Description},
		Title:  title,
		Active: active,
		Toast:  flashToast(flash),
	}, body)
}

// flashToast shows flash on a toast. The page hides it after the toast's
// duration, so no server-side timer is kept.
func flashToast(flash *views.Flash) *widgets.Toast {
	if flash == nil {
		return nil
	}
	t := widgets.NewToast(widgets.ToastDuration)
	t.Show(flash.Title, flash.Message)
	t.Stop()
	return t
}
