package homesite

import (
	"encoding/xml"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/minimallymodern/homesite/sanity"
	"github.com/minimallymodern/homesite/views"
)

type rssXML struct {
	XMLName xml.Name   `xml:"rss"`
	Version string     `xml:"version,attr"`
	Channel rssChannel `xml:"channel"`
}

type rssChannel struct {
	Title       string    `xml:"title"`
	Link        string    `xml:"link"`
	Description string    `xml:"description"`
	Items       []rssItem `xml:"item"`
}

type rssItem struct {
	Title       string  `xml:"title"`
	Link        string  `xml:"link"`
	Description string  `xml:"description,omitempty"`
	Category    string  `xml:"category,omitempty"`
	PubDate     string  `xml:"pubDate,omitempty"`
	GUID        rssGUID `xml:"guid"`
}

type rssGUID struct {
	Value       string `xml:",chardata"`
	IsPermaLink bool   `xml:"isPermaLink,attr"`
}

func (a *App) renderRSS(c echo.Context, posts []sanity.Post) error {
	feed := buildFeed(a.Config, posts)
	c.Response().Header().Set(echo.HeaderContentType, "application/rss+xml; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	if _, err := c.Response().Write([]byte(xml.Header)); err != nil {
		return err
	}
	return xml.NewEncoder(c.Response()).Encode(feed)
}

func buildFeed(cfg SiteConfig, posts []sanity.Post) rssXML {
	items := make([]rssItem, 0, len(posts))
	for _, p := range posts {
		link := BuildURL(cfg.URL, views.RoomHref(p.Room, p.Slug))
		items = append(items, rssItem{
			Title:       p.Title,
			Link:        link,
			Description: p.Excerpt,
			Category:    sanity.RoomLabel(p.Room),
			PubDate:     rssDate(p.PublishedAt),
			GUID:        rssGUID{Value: link, IsPermaLink: true},
		})
	}
	return rssXML{
		Version: "2.0",
		Channel: rssChannel{
			Title:       cfg.Name,
			Link:        BuildURL(cfg.URL, ""),
			Description: cfg.Description,
			Items:       items,
		},
	}
}

func rssDate(iso string) string {
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05", "2006-01-02"} {
		if t, err := time.Parse(layout, iso); err == nil {
			return t.Format(time.RFC1123Z)
		}
	}
	return ""
}
