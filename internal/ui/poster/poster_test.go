package poster

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func solid(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	return img
}

func TestEncode(t *testing.T) {
	out, err := Encode(solid(400, 600), 10, 8)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "\x1b_Ga=T,f=100,c=10,r=8,"))
	assert.True(t, strings.HasSuffix(out, "\x1b\\"))
}

func TestEncode_ChunksLargeImages(t *testing.T) {
	noisy := image.NewRGBA(image.Rect(0, 0, 300, 300))
	for y := range 300 {
		for x := range 300 {
			noisy.Set(x, y, color.RGBA{R: uint8(x * y), G: uint8(x + y), B: uint8(x ^ y), A: 255})
		}
	}

	out, err := Encode(noisy, 30, 15)
	require.NoError(t, err)
	assert.Contains(t, out, "m=1;")
	assert.Contains(t, out, "\x1b_Gm=0;")
}

func TestEncode_EmptyArea(t *testing.T) {
	out, err := Encode(solid(10, 10), 0, 5)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poster.png")
	f, err := os.Create(path)
	require.NoError(t, err)
	require.NoError(t, png.Encode(f, solid(20, 30)))
	require.NoError(t, f.Close())

	out, err := Load(path, 4, 4)
	require.NoError(t, err)
	assert.NotEmpty(t, out)
}

func TestLoad_NotAnImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "poster.jpg")
	require.NoError(t, os.WriteFile(path, []byte("not an image"), 0o600))

	_, err := Load(path, 4, 4)
	assert.Error(t, err)
}

func TestPlaceholder(t *testing.T) {
	out := Placeholder(10, 5)
	assert.Equal(t, 5, lipgloss.Height(out))
	assert.Equal(t, 10, lipgloss.Width(out))
	assert.Contains(t, out, "▶")

	assert.Empty(t, Placeholder(3, 5))
}

func TestSupported_Override(t *testing.T) {
	t.Setenv("MARQUEE_IMAGES", "none")
	t.Setenv("KITTY_WINDOW_ID", "1")
	assert.False(t, Supported())

	t.Setenv("MARQUEE_IMAGES", "kitty")
	t.Setenv("KITTY_WINDOW_ID", "")
	assert.True(t, Supported())
}
