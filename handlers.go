package homesite

import (
	"context"
	"errors"
	"net/http"
	"net/url"

	"github.com/labstack/echo/v4"

	"github.com/minimallymodern/homesite/views"
	"github.com/minimallymodern/homesite/widgets"
)

const (
	flashSentTitle   = "Message sent"
	flashSentMessage = "Thanks for reaching out! We'll reply soon."
	statusRateLimit  = "Too many messages from your network. Please try again later."
)

func (a *App) handleHome(c echo.Context) error {
	return a.renderMounted(c)
}

func (a *App) handleRoom(c echo.Context) error {
	return a.renderMounted(c)
}

func (a *App) renderMounted(c echo.Context) error {
	page, kind, state := a.MountPage(c.Request().Context(), c.Request().URL)
	a.Logger.Debug("page mounted", "kind", kind.String(), "state", state.String())

	cmp, err := a.PageView(kind, page, popFlash(c))
	if err != nil {
		return err
	}
	return Render(c, cmp)
}

// handleContact shows the form, or the success panel when the flash left by
// a successful relay is present.
func (a *App) handleContact(c echo.Context) error {
	form := a.newContactForm()
	flash := popFlash(c)
	return a.renderContact(c, http.StatusOK, flash, views.ContactView{
		Sent:   flash != nil && flash.Title == flashSentTitle,
		Button: form.Button(),
	})
}

// handleContactSubmit relays the posted form to the configured endpoint and
// redirects on success so a reload does not resend.
func (a *App) handleContactSubmit(c echo.Context) error {
	form := a.newContactForm()

	if !a.contactLimiter.Allow(c.RealIP()) {
		a.Logger.Warn("contact rate limited", "ip", c.RealIP())
		return a.renderContact(c, http.StatusTooManyRequests, nil, views.ContactView{
			Status: statusRateLimit,
			Button: form.Button(),
		})
	}

	fields := url.Values{}
	for _, name := range []string{"name", "email", "message"} {
		fields.Set(name, c.FormValue(name))
	}

	err := form.Submit(c.Request().Context(), fields)
	if err == nil {
		if err := setFlash(c, views.Flash{Title: flashSentTitle, Message: flashSentMessage}); err != nil {
			a.Logger.Warn("saving flash", "err", err)
		}
		return c.Redirect(http.StatusSeeOther, "/contact.html")
	}

	code := http.StatusBadGateway
	if errors.Is(err, widgets.ErrNotConfigured) {
		code = http.StatusServiceUnavailable
	}
	a.Logger.Error("contact relay failed", "err", err)
	return a.renderContact(c, code, nil, views.ContactView{
		Status: form.Status(),
		Button: form.Button(),
	})
}

func (a *App) renderContact(c echo.Context, code int, flash *views.Flash, v views.ContactView) error {
	v.Action = "/contact.html"
	v.CSRFToken = CsrfToken(c)
	return RenderStatus(c, code, a.layout("Contact", "contact", flash, views.ContactBody(v)))
}

func (a *App) newContactForm() *widgets.ContactForm {
	return widgets.NewContactForm(a.Config.ContactEndpoint, widgets.WithContactHTTPClient(a.httpClient))
}

func (a *App) handleFeed(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), a.Config.FetchTimeout)
	defer cancel()
	posts, err := a.source.LatestPosts(ctx, a.Config.FeedLimit)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadGateway, "content store unavailable").SetInternal(err)
	}
	return a.renderRSS(c, posts)
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	code := http.StatusInternalServerError
	message := "Something went wrong"
	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		if m, ok := he.Message.(string); ok {
			message = m
		}
	}
	if code == http.StatusNotFound {
		message = "Page not found"
	}
	if code >= 500 {
		a.Logger.Error("server error", "err", err, "path", c.Request().URL.Path)
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = RenderStatus(c, code, a.layout(http.StatusText(code), "", nil, views.ErrorBody(code, message)))
}
