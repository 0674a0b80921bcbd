package sanity

// Post is a projection of a Sanity "post" document. Which optional fields are
// populated depends on the query that produced it: the latest-posts shape has
// no PinterestURL or Products.
type Post struct {
	Title        string    `json:"title"`
	Room         string    `json:"room"`
	PublishedAt  string    `json:"publishedAt"`
	Excerpt      string    `json:"excerpt,omitempty"`
	Slug         string    `json:"slug,omitempty"`
	ImageURL     string    `json:"imageUrl,omitempty"`
	PinterestURL string    `json:"pinterestUrl,omitempty"`
	Products     []Product `json:"products,omitempty"`
}

// Product is an affiliate link attached to a post.
type Product struct {
	Name string `json:"name"`
	URL  string `json:"url"`
	Note string `json:"note,omitempty"`
}

// Room identifiers used by the content store.
const (
	RoomLivingRoom = "living-room"
	RoomBedroom    = "bedroom"
	RoomKitchen    = "kitchen"
	RoomBathroom   = "bathroom"
	RoomHomeOffice = "home-office"
)

// Rooms lists the known room identifiers in navigation order.
var Rooms = []string{
	RoomLivingRoom,
	RoomBedroom,
	RoomKitchen,
	RoomBathroom,
	RoomHomeOffice,
}

var roomLabels = map[string]string{
	RoomLivingRoom: "Living Room",
	RoomBedroom:    "Bedroom",
	RoomKitchen:    "Kitchen",
	RoomBathroom:   "Bathroom",
	RoomHomeOffice: "Home Office",
}

// RoomLabel returns the display label for a room, or "Room" for anything
// outside the known set.
func RoomLabel(room string) string {
	if l, ok := roomLabels[room]; ok {
		return l
	}
	return "Room"
}
