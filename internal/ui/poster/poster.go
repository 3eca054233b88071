// Package poster renders artwork next to the details screen using the Kitty
// graphics protocol, with a text frame fallback.
package poster

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	_ "image/jpeg" // Register JPEG decoder for image.Decode
	"image/png"
	"os"
	"strings"

	"github.com/nfnt/resize"
)

const (
	chunkSize = 4096 // Max bytes per escape sequence chunk

	// Approximate cell size in pixels, used to size the thumbnail.
	cellWidth  = 10
	cellHeight = 20
)

// Supported reports whether the terminal understands Kitty graphics.
// MARQUEE_IMAGES=none disables images, MARQUEE_IMAGES=kitty forces them.
func Supported() bool {
	switch os.Getenv("MARQUEE_IMAGES") {
	case "none":
		return false
	case "kitty":
		return true
	}
	return os.Getenv("KITTY_WINDOW_ID") != "" ||
		os.Getenv("TERM") == "xterm-kitty" ||
		os.Getenv("TERM_PROGRAM") == "WezTerm" ||
		os.Getenv("GHOSTTY_RESOURCES_DIR") != ""
}

// Load reads the image at path and returns an escape sequence displaying it
// in a cols×rows cell area.
func Load(path string, cols, rows int) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return "", fmt.Errorf("decode poster: %w", err)
	}
	return Encode(img, cols, rows)
}

// Encode scales img to fit the cell area and wraps it in Kitty escape
// sequences.
func Encode(img image.Image, cols, rows int) (string, error) {
	if cols <= 0 || rows <= 0 {
		return "", nil
	}

	thumb := resize.Thumbnail(uint(cols*cellWidth), uint(rows*cellHeight), img, resize.Lanczos3)

	var buf bytes.Buffer
	if err := png.Encode(&buf, thumb); err != nil {
		return "", fmt.Errorf("encode poster: %w", err)
	}
	b64 := base64.StdEncoding.EncodeToString(buf.Bytes())

	// ESC _ G <params> ; <payload> ESC \
	// a=T transmit and display, f=100 PNG, c/r cell size, m=1 more chunks.
	var sb strings.Builder
	for i := 0; i < len(b64); i += chunkSize {
		end := min(i+chunkSize, len(b64))
		more := 0
		if end < len(b64) {
			more = 1
		}
		if i == 0 {
			fmt.Fprintf(&sb, "\x1b_Ga=T,f=100,c=%d,r=%d,m=%d;%s\x1b\\", cols, rows, more, b64[i:end])
		} else {
			fmt.Fprintf(&sb, "\x1b_Gm=%d;%s\x1b\\", more, b64[i:end])
		}
	}
	return sb.String(), nil
}

// Placeholder returns a framed box with a film glyph in the middle.
func Placeholder(cols, rows int) string {
	if cols < 4 || rows < 2 {
		return ""
	}

	inner := cols - 2
	lines := make([]string, 0, rows)
	lines = append(lines, "┌"+strings.Repeat("─", inner)+"┐")
	for i := 1; i < rows-1; i++ {
		if i == rows/2 {
			left := (inner - 1) / 2
			lines = append(lines, "│"+strings.Repeat(" ", left)+"▶"+strings.Repeat(" ", inner-1-left)+"│")
			continue
		}
		lines = append(lines, "│"+strings.Repeat(" ", inner)+"│")
	}
	lines = append(lines, "└"+strings.Repeat("─", inner)+"┘")
	return strings.Join(lines, "\n")
}
