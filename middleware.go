package homesite

import (
	"crypto/rand"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
	"github.com/labstack/echo-contrib/session"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/minimallymodern/homesite/views"
)

const (
	sessionName     = "homesite_session"
	flashTitleKey   = "flash_title"
	flashMessageKey = "flash_message"
)

func (a *App) setupMiddleware() error {
	e := a.Echo

	store, err := a.newSessionStore()
	if err != nil {
		return err
	}

	e.IPExtractor = echo.ExtractIPFromXFFHeader(
		echo.TrustLoopback(true),
		echo.TrustLinkLocal(false),
		echo.TrustPrivateNet(true),
	)

	e.HTTPErrorHandler = a.httpErrorHandler

	e.Pre(middleware.NonWWWRedirect())

	e.Use(middleware.RequestIDWithConfig(middleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))

	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			level := slog.LevelInfo
			if v.Error != nil {
				level = slog.LevelError
			}
			a.Logger.LogAttrs(c.Request().Context(), level, "request",
				slog.String("id", v.RequestID),
				slog.String("method", v.Method),
				slog.String("uri", v.URI),
				slog.Int("status", v.Status),
				slog.Duration("latency", v.Latency),
			)
			return nil
		},
	}))

	e.Use(middleware.Recover())

	e.Use(middleware.GzipWithConfig(middleware.GzipConfig{
		Level: 5,
		Skipper: func(c echo.Context) bool {
			return strings.HasSuffix(c.Request().URL.Path, ".webp")
		},
	}))

	e.Use(middleware.SecureWithConfig(middleware.SecureConfig{
		XSSProtection:         "1; mode=block",
		ContentTypeNosniff:    "nosniff",
		XFrameOptions:         "DENY",
		ReferrerPolicy:        "strict-origin-when-cross-origin",
		ContentSecurityPolicy: "default-src 'self'; style-src 'self' 'unsafe-inline'; img-src 'self' https: data:; font-src 'self'; form-action 'self'",
		HSTSMaxAge:            31536000,
	}))

	e.Use(session.Middleware(store))

	e.Use(middleware.CSRFWithConfig(middleware.CSRFConfig{
		ContextKey:     middleware.DefaultCSRFConfig.ContextKey,
		TokenLookup:    "header:X-CSRF-Token,form:_csrf",
		CookieName:     "_csrf",
		CookiePath:     "/",
		CookieSameSite: http.SameSiteLaxMode,
		CookieSecure:   a.Config.CookieSecure,
		CookieHTTPOnly: true,
		ErrorHandler: func(err error, c echo.Context) error {
			return echo.NewHTTPError(http.StatusForbidden, "Forbidden")
		},
	}))

	e.Use(cacheControlMiddleware)
	return nil
}

// cacheControlMiddleware keeps pages uncached so every load refetches posts.
func cacheControlMiddleware(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		path := c.Request().URL.Path
		switch {
		case strings.HasPrefix(path, "/assets/"):
			c.Response().Header().Set("Cache-Control", "public, max-age=86400")
		case path == "/feed.xml":
			c.Response().Header().Set("Cache-Control", "public, max-age=3600")
		default:
			c.Response().Header().Set("Cache-Control", "no-cache")
		}
		return next(c)
	}
}

// randRead fills session keys generated at startup.
var randRead = rand.Read

func (a *App) newSessionStore() (*sessions.CookieStore, error) {
	secret := []byte(a.Config.SessionSecret)
	if len(secret) == 0 {
		secret = make([]byte, 32)
		if _, err := randRead(secret); err != nil {
			return nil, fmt.Errorf("generating session key: %w", err)
		}
		a.Logger.Warn("session_secret not set, flash cookies will not survive a restart")
	}
	store := sessions.NewCookieStore(secret)
	store.Options = &sessions.Options{
		Path:     "/",
		HttpOnly: true,
		MaxAge:   60 * 10,
		SameSite: http.SameSiteLaxMode,
		Secure:   a.Config.CookieSecure,
	}
	return store, nil
}

func setFlash(c echo.Context, f views.Flash) error {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return err
	}
	sess.Values[flashTitleKey] = f.Title
	sess.Values[flashMessageKey] = f.Message
	return sess.Save(c.Request(), c.Response())
}

// popFlash returns and clears the pending flash, or nil when there is none.
func popFlash(c echo.Context) *views.Flash {
	sess, err := session.Get(sessionName, c)
	if err != nil {
		return nil
	}
	title, _ := sess.Values[flashTitleKey].(string)
	if title == "" {
		return nil
	}
	msg, _ := sess.Values[flashMessageKey].(string)
	delete(sess.Values, flashTitleKey)
	delete(sess.Values, flashMessageKey)
	if err := sess.Save(c.Request(), c.Response()); err != nil {
		return nil
	}
	return &views.Flash{Title: title, Message: msg}
}

// CsrfToken extracts the CSRF token from the Echo context.
func CsrfToken(c echo.Context) string {
	token, _ := c.Get(middleware.DefaultCSRFConfig.ContextKey).(string)
	return token
}
