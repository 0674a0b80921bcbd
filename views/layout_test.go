package views

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/minimallymodern/homesite/widgets"
)

func TestLayoutNavToggle(t *testing.T) {
	closed := renderHTML(t, Layout(LayoutData{Site: SiteConfig{Name: "Home"}}, StatusMessage("x", false)))
	assert.Contains(t, closed, `<input type="checkbox" id="navToggle" class="nav-toggle" aria-hidden="true">`)
	assert.Contains(t, closed, `<nav class="mobile-nav">`)

	var nav widgets.NavToggle
	nav.Toggle()
	open := renderHTML(t, Layout(LayoutData{Site: SiteConfig{Name: "Home"}, Nav: nav}, StatusMessage("x", false)))
	assert.Contains(t, open, `class="nav-toggle" aria-hidden="true" checked>`)
	assert.Contains(t, open, `<nav class="mobile-nav active">`)
}

func TestLayoutToast(t *testing.T) {
	idle := renderHTML(t, Layout(LayoutData{}, StatusMessage("x", false)))
	assert.Contains(t, idle, `<div id="toast" class="toast" role="status">`)

	toast := widgets.NewToast(1500 * time.Millisecond)
	toast.Show("Saved", "<b>done</b>")
	toast.Stop()
	shown := renderHTML(t, Layout(LayoutData{Toast: toast}, StatusMessage("x", false)))
	assert.Contains(t, shown, `<div id="toast" class="toast active" role="status" style="--toast-duration:1.50s">`)
	assert.Contains(t, shown, `&lt;b&gt;done&lt;/b&gt;`)

	toast.Hide()
	hidden := renderHTML(t, Layout(LayoutData{Toast: toast}, StatusMessage("x", false)))
	assert.NotContains(t, hidden, "toast active")
}

func TestHomeBodyRevealsAndComingSoon(t *testing.T) {
	out := renderHTML(t, HomeBody(widgets.RoomCards([]string{"kitchen"}), ""))

	assert.Equal(t, strings.Count(out, "animate-on-scroll"), strings.Count(out, "animate-on-scroll visible"))
	assert.Contains(t, out, `<a class="room-card animate-on-scroll visible" data-available="true" href="room.html?room=kitchen#">`)
	assert.Contains(t, out, `data-available="false" href="#soon-bathroom"`)
	assert.Contains(t, out, "The Bathroom collection is coming soon!")
	assert.Equal(t, 4, strings.Count(out, `class="toast soon-toast"`))
}

func TestRoomBodyScrollTarget(t *testing.T) {
	assert.Contains(t, renderHTML(t, RoomBody("Bedroom", "", `a"b`)), `data-scroll-target="a&#34;b"`)
	assert.NotContains(t, renderHTML(t, RoomBody("Bedroom", "", "")), "data-scroll-target")
}

func TestToastDurationFormat(t *testing.T) {
	assert.Equal(t, "3.00s", ToastDuration(widgets.ToastDuration))
}
