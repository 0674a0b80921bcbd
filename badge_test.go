package homesite

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/minimallymodern/homesite/views"
)

// vp8lHeader is a lossless WebP with only a header: 32x32, no alpha.
var vp8lHeader = []byte{
	'R', 'I', 'F', 'F', 0x12, 0x00, 0x00, 0x00,
	'W', 'E', 'B', 'P',
	'V', 'P', '8', 'L', 0x05, 0x00, 0x00, 0x00,
	0x2f, 0x1f, 0xc0, 0x07, 0x00, 0x00,
}

func writeBadge(t *testing.T, data []byte) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, filepath.FromSlash(views.PinBadgeSrc))
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, data, 0o644))
	return dir
}

func TestLoadBadgeSize(t *testing.T) {
	size, err := LoadBadgeSize(writeBadge(t, vp8lHeader))
	require.NoError(t, err)
	assert.Equal(t, views.BadgeSize{Width: 32, Height: 32}, size)
}

func TestLoadBadgeSizeMissing(t *testing.T) {
	size, err := LoadBadgeSize(t.TempDir())
	require.NoError(t, err)
	assert.Zero(t, size)
}

func TestLoadBadgeSizeCorrupt(t *testing.T) {
	size, err := LoadBadgeSize(writeBadge(t, []byte("not a webp")))
	assert.ErrorContains(t, err, "decode badge")
	assert.Zero(t, size)
}
