package mount

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageMount(t *testing.T) {
	page := NewPage(nil, "a", "b", "a")

	_, ok := page.Mount("missing")
	assert.False(t, ok)

	el, ok := page.Mount("a")
	require.True(t, ok)
	el.SetText(`<b>bold</b> & more`)
	assert.Equal(t, "&lt;b&gt;bold&lt;/b&gt; &amp; more", page.HTML("a"))
	assert.Equal(t, "<b>bold</b> & more", page.Text("a"))
	assert.Equal(t, "/", page.Location().Path)
}

func TestPageScrollIntoViewFirstMatchWins(t *testing.T) {
	page := NewPage(nil, "feed")
	el, _ := page.Mount("feed")
	el.SetHTML(`<article id="dup">one</article><article id="dup">two</article><section><p id="deep">x</p></section>`)

	assert.True(t, page.ScrollIntoView("dup"))
	assert.Equal(t, "dup", page.Scrolled())
	assert.True(t, page.ScrollIntoView("deep"))
	assert.True(t, page.ScrollIntoView("feed"))
	assert.False(t, page.ScrollIntoView("nope"))
	assert.False(t, page.ScrollIntoView(""))
	assert.Equal(t, "feed", page.Scrolled())
}

func TestKindForPath(t *testing.T) {
	tests := map[string]Kind{
		"/":             KindHome,
		"":              KindHome,
		"/index.html":   KindHome,
		"/room.html":    KindRoom,
		"/contact.html": KindContact,
		"/about.html":   KindOther,
	}
	for path, want := range tests {
		assert.Equal(t, want, KindForPath(path), path)
	}
}

func TestParseKind(t *testing.T) {
	for _, k := range []Kind{KindHome, KindRoom, KindContact, KindOther} {
		got, ok := ParseKind(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, got)
	}
	_, ok := ParseKind("blog")
	assert.False(t, ok)
}

func TestMountPoints(t *testing.T) {
	assert.Equal(t, []string{LatestPostsGrid}, KindHome.MountPoints())
	assert.Equal(t, []string{RoomTitle, RoomFeed}, KindRoom.MountPoints())
	assert.Empty(t, KindContact.MountPoints())
}
