package sanity

import (
	"fmt"
	"strings"
)

// Result limits used by the page mounters.
const (
	LatestLimit = 3
	RoomLimit   = 50
)

const latestProjection = `{
  title,
  room,
  publishedAt,
  excerpt,
  "slug": slug.current,
  "imageUrl": mainImage.asset->url
}`

const roomProjection = `{
  title,
  room,
  publishedAt,
  excerpt,
  "slug": slug.current,
  "imageUrl": mainImage.asset->url,
  pinterestUrl,
  products[] { name, url, note }
}`

// SanitizeRoom drops every character outside [a-z-]. It never rejects: an
// input made only of disallowed characters becomes the empty string, which
// matches no documents.
func SanitizeRoom(room string) string {
	return strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || r == '-' {
			return r
		}
		return -1
	}, room)
}

// LatestPostsQuery selects the newest posts across all rooms.
func LatestPostsQuery(limit int) string {
	return fmt.Sprintf(`*[_type=="post"] | order(publishedAt desc)[0...%d]%s`, limit, latestProjection)
}

// RoomPostsQuery selects the newest posts of one room, including the
// Pinterest link and affiliate products.
func RoomPostsQuery(room string, limit int) string {
	return fmt.Sprintf(`*[_type=="post" && room==%q] | order(publishedAt desc)[0...%d]%s`,
		SanitizeRoom(room), limit, roomProjection)
}
