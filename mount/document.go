package mount

import (
	"net/url"
	"strings"
	"sync"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Element is a mount point whose content a mounter replaces.
type Element interface {
	SetHTML(fragment string)
	SetText(text string)
}

// Document is the page a mounter runs against.
type Document interface {
	// Location is the page URL, including query and fragment.
	Location() *url.URL
	// Mount returns the element with the given id, if the page has one.
	Mount(id string) (Element, bool)
	// ScrollIntoView brings the first element with id into view. It reports
	// whether such an element exists.
	ScrollIntoView(id string) bool
}

// Page is an in-memory Document. It is what the HTTP layer renders from and
// what tests inspect.
type Page struct {
	mu       sync.Mutex
	loc      *url.URL
	ids      []string
	content  map[string]string
	history  map[string][]string
	scrolled string
}

// NewPage creates a Page at loc with empty mount points ids.
func NewPage(loc *url.URL, ids ...string) *Page {
	if loc == nil {
		loc = &url.URL{Path: "/"}
	}
	p := &Page{
		loc:     loc,
		content: make(map[string]string, len(ids)),
		history: make(map[string][]string, len(ids)),
	}
	for _, id := range ids {
		if _, ok := p.content[id]; ok {
			continue
		}
		p.ids = append(p.ids, id)
		p.content[id] = ""
	}
	return p
}

// NewPageForKind creates a Page with the mount points kind expects.
func NewPageForKind(loc *url.URL, kind Kind) *Page {
	return NewPage(loc, kind.MountPoints()...)
}

func (p *Page) Location() *url.URL {
	u := *p.loc
	return &u
}

func (p *Page) Mount(id string) (Element, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if _, ok := p.content[id]; !ok {
		return nil, false
	}
	return &element{page: p, id: id}, true
}

// HTML returns the current markup of mount point id.
func (p *Page) HTML(id string) string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.content[id]
}

// Text returns the text content of mount point id.
func (p *Page) Text(id string) string {
	return textContent(p.HTML(id))
}

// History lists every value written to mount point id, oldest first.
func (p *Page) History(id string) []string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]string(nil), p.history[id]...)
}

// Scrolled returns the id last passed to a successful ScrollIntoView.
func (p *Page) Scrolled() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.scrolled
}

func (p *Page) ScrollIntoView(id string) bool {
	if id == "" {
		return false
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	for _, mid := range p.ids {
		if mid == id || containsID(p.content[mid], id) {
			p.scrolled = id
			return true
		}
	}
	return false
}

func (p *Page) set(id, fragment string) {
	p.mu.Lock()
	p.content[id] = fragment
	p.history[id] = append(p.history[id], fragment)
	p.mu.Unlock()
}

type element struct {
	page *Page
	id   string
}

func (e *element) SetHTML(fragment string) {
	e.page.set(e.id, fragment)
}

func (e *element) SetText(text string) {
	e.page.set(e.id, html.EscapeString(text))
}

func parseFragment(fragment string) []*html.Node {
	ctx := &html.Node{Type: html.ElementNode, Data: "div", DataAtom: atom.Div}
	nodes, err := html.ParseFragment(strings.NewReader(fragment), ctx)
	if err != nil {
		return nil
	}
	return nodes
}

func containsID(fragment, id string) bool {
	if fragment == "" {
		return false
	}
	var found bool
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if found {
			return
		}
		if n.Type == html.ElementNode {
			for _, a := range n.Attr {
				if a.Key == "id" && a.Val == id {
					found = true
					return
				}
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range parseFragment(fragment) {
		walk(n)
	}
	return found
}

func textContent(fragment string) string {
	var b strings.Builder
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			b.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range parseFragment(fragment) {
		walk(n)
	}
	return b.String()
}
