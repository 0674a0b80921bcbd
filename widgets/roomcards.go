package widgets

import (
	"fmt"

	"github.com/minimallymodern/homesite/sanity"
)

// RoomCard is a homepage tile linking to a room feed.
type RoomCard struct {
	Room      string
	Name      string
	Available bool
}

// RoomCards builds a card for every known room. Rooms listed in available
// link to their feed; the rest are marked coming soon. A nil available list
// makes every room available.
func RoomCards(available []string) []RoomCard {
	open := make(map[string]bool, len(available))
	for _, r := range available {
		open[r] = true
	}
	cards := make([]RoomCard, 0, len(sanity.Rooms))
	for _, r := range sanity.Rooms {
		cards = append(cards, RoomCard{
			Room:      r,
			Name:      sanity.RoomLabel(r),
			Available: available == nil || open[r],
		})
	}
	return cards
}

// Click handles a click on card. Unavailable rooms show a "Coming Soon"
// toast and block navigation. It reports whether navigation proceeds.
func (c RoomCard) Click(t *Toast) bool {
	if c.Available {
		return true
	}
	name := c.Name
	if name == "" {
		name = "This room"
	}
	t.Show("Coming Soon", fmt.Sprintf("The %s collection is coming soon!", name))
	return false
}
