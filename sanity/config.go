package sanity

import (
	"fmt"
	"net/url"
	"strings"
)

// Config identifies the Sanity project and dataset queried by the site.
type Config struct {
	ProjectID  string `koanf:"project_id"`
	Dataset    string `koanf:"dataset"`
	APIVersion string `koanf:"api_version"`

	// BaseURL replaces https://{project}.api.sanity.io when set. Used by
	// tests and local proxies.
	BaseURL string `koanf:"base_url"`
}

// DefaultConfig returns the production project settings.
func DefaultConfig() Config {
	return Config{
		ProjectID:  "opqrg5t7",
		Dataset:    "production",
		APIVersion: "2025-01-01",
	}
}

// WithDefaults returns c with empty project fields filled from
// DefaultConfig.
func (c Config) WithDefaults() Config {
	d := DefaultConfig()
	if c.ProjectID == "" {
		c.ProjectID = d.ProjectID
	}
	if c.Dataset == "" {
		c.Dataset = d.Dataset
	}
	if c.APIVersion == "" {
		c.APIVersion = d.APIVersion
	}
	return c
}

func (c Config) host() string {
	if c.BaseURL != "" {
		return strings.TrimRight(c.BaseURL, "/")
	}
	return fmt.Sprintf("https://%s.api.sanity.io", c.ProjectID)
}

// QueryURL returns the GET endpoint for a GROQ query with the query fully
// percent-encoded.
func (c Config) QueryURL(groq string) string {
	return fmt.Sprintf("%s/v%s/data/query/%s?query=%s",
		c.host(), c.APIVersion, c.Dataset, EncodeURIComponent(groq))
}

// componentUnescaper undoes url.QueryEscape where encodeURIComponent
// differs: spaces are %20 and !'()* stay literal.
var componentUnescaper = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// EncodeURIComponent escapes s the way browsers do for a single URI
// component. Only A-Z a-z 0-9 and -_.!~*'() are left unescaped.
func EncodeURIComponent(s string) string {
	return componentUnescaper.Replace(url.QueryEscape(s))
}
