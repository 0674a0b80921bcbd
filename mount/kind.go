package mount

import "strings"

// Mount point ids.
const (
	LatestPostsGrid = "latestPostsGrid"
	RoomFeed        = "roomFeed"
	RoomTitle       = "roomTitle"
)

// Kind identifies which page is being mounted.
type Kind int

const (
	KindOther Kind = iota
	KindHome
	KindRoom
	KindContact
)

func (k Kind) String() string {
	switch k {
	case KindHome:
		return "home"
	case KindRoom:
		return "room"
	case KindContact:
		return "contact"
	default:
		return "other"
	}
}

// MountPoints lists the element ids a page of kind k carries.
func (k Kind) MountPoints() []string {
	switch k {
	case KindHome:
		return []string{LatestPostsGrid}
	case KindRoom:
		return []string{RoomTitle, RoomFeed}
	default:
		return nil
	}
}

// KindForPath maps a request path to its page kind.
func KindForPath(path string) Kind {
	switch strings.TrimSuffix(path, "/") {
	case "", "/index.html":
		return KindHome
	case "/room.html":
		return KindRoom
	case "/contact.html":
		return KindContact
	default:
		return KindOther
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, bool) {
	for _, k := range []Kind{KindHome, KindRoom, KindContact, KindOther} {
		if k.String() == s {
			return k, true
		}
	}
	return KindOther, false
}
