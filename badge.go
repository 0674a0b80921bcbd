package homesite

import (
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/image/webp"

	"github.com/minimallymodern/homesite/views"
)

// LoadBadgeSize reads the intrinsic size of the Pinterest badge under
// staticDir. A missing file yields a zero size and no error; the badge is
// then rendered without width and height.
func LoadBadgeSize(staticDir string) (views.BadgeSize, error) {
	path := filepath.Join(staticDir, filepath.FromSlash(views.PinBadgeSrc))
	f, err := os.Open(path)
	if os.IsNotExist(err) {
		return views.BadgeSize{}, nil
	}
	if err != nil {
		return views.BadgeSize{}, fmt.Errorf("open badge: %w", err)
	}
	defer f.Close()

	cfg, err := webp.DecodeConfig(f)
	if err != nil {
		return views.BadgeSize{}, fmt.Errorf("decode badge %s: %w", path, err)
	}
	return views.BadgeSize{Width: cfg.Width, Height: cfg.Height}, nil
}
