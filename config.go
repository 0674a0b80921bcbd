package homesite

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/minimallymodern/homesite/mount"
	"github.com/minimallymodern/homesite/sanity"
)

// SiteConfig holds all configuration for the site.
type SiteConfig struct {
	Name        string `koanf:"name"`        // Site name (default "Minimally Modern Home")
	URL         string `koanf:"url"`         // Canonical URL (default "http://localhost:3000")
	Description string `koanf:"description"` // Used by the RSS channel

	Addr      string `koanf:"addr"`       // Listen address (default ":3000")
	StaticDir string `koanf:"static_dir"` // Directory served under /assets (default "public")

	Sanity       sanity.Config `koanf:"sanity"`
	FetchTimeout time.Duration `koanf:"fetch_timeout"` // Bound on one content fetch (default 10s)
	FeedLimit    int           `koanf:"feed_limit"`    // Posts in /feed.xml (default 20)

	// ContactEndpoint receives contact form submissions, e.g. a Formspree
	// form URL. Empty or placeholder values disable sending.
	ContactEndpoint string `koanf:"contact_endpoint"`
	ContactLimit    int    `koanf:"contact_limit"` // Submissions per IP per hour (default 5)

	// AvailableRooms link from the homepage room cards; other rooms show
	// "coming soon". Empty means every room is available.
	AvailableRooms []string `koanf:"available_rooms"`

	SessionSecret string `koanf:"session_secret"` // Signs the flash cookie; random per process when empty
	CookieSecure  bool   `koanf:"cookie_secure"`  // Set true for HTTPS
}

func (c *SiteConfig) setDefaults() {
	if c.Name == "" {
		c.Name = "Minimally Modern Home"
	}
	if c.URL == "" {
		c.URL = "http://localhost:3000"
	}
	if c.Addr == "" {
		c.Addr = ":3000"
	}
	if c.StaticDir == "" {
		c.StaticDir = "public"
	}
	if c.FetchTimeout == 0 {
		c.FetchTimeout = 10 * time.Second
	}
	if c.FeedLimit == 0 {
		c.FeedLimit = 20
	}
	if c.ContactLimit == 0 {
		c.ContactLimit = 5
	}
	c.Sanity = c.Sanity.WithDefaults()
}

// LoadConfig reads the YAML file at path, if it exists, then overlays
// HOMESITE_* environment variables. A double underscore nests keys:
// HOMESITE_SANITY__PROJECT_ID sets sanity.project_id.
func LoadConfig(path string) (SiteConfig, error) {
	k := koanf.New(".")

	if path != "" {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
				return SiteConfig{}, fmt.Errorf("reading config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return SiteConfig{}, fmt.Errorf("accessing config %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider("HOMESITE_", ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, "HOMESITE_"))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return SiteConfig{}, fmt.Errorf("loading env overrides: %w", err)
	}

	var cfg SiteConfig
	if err := k.Unmarshal("", &cfg); err != nil {
		return SiteConfig{}, fmt.Errorf("unmarshalling config: %w", err)
	}
	cfg.setDefaults()
	return cfg, nil
}

// Validate checks values that defaults cannot repair.
func (c SiteConfig) Validate() error {
	for _, r := range c.AvailableRooms {
		if sanity.RoomLabel(r) == "Room" {
			return fmt.Errorf("available_rooms: unknown room %q", r)
		}
	}
	if c.FeedLimit < 0 {
		return fmt.Errorf("feed_limit must be non-negative")
	}
	if c.ContactLimit < 0 {
		return fmt.Errorf("contact_limit must be non-negative")
	}
	return nil
}

// Option configures additional App behavior.
type Option func(*App)

// WithCustomRoutes registers additional routes on the Echo instance.
func WithCustomRoutes(fn func(*App)) Option {
	return func(a *App) {
		a.customRoutes = append(a.customRoutes, fn)
	}
}

// WithLogger replaces slog.Default.
func WithLogger(l *slog.Logger) Option {
	return func(a *App) {
		a.Logger = l
	}
}

// WithPostSource replaces the Sanity client as the source of posts.
func WithPostSource(src mount.PostSource) Option {
	return func(a *App) {
		a.source = src
	}
}

// WithHTTPClient sets the client used for Sanity queries and contact
// form relays.
func WithHTTPClient(hc *http.Client) Option {
	return func(a *App) {
		a.httpClient = hc
	}
}
