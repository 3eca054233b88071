// internal/app/layout.go
package app

import (
	"github.com/llehouerou/marquee/internal/playback"
	"github.com/llehouerou/marquee/internal/ui/playerbar"
)

// Terminal cells are about twice as tall as wide, so a 16:9 picture needs
// 32 columns for every 9 rows.
const (
	aspectCols = 32
	aspectRows = 9
)

// Rect is a region of the terminal in cells.
type Rect struct {
	X, Y          int
	Width, Height int
}

// Viewport fits the picture into a width x height area. Contain letterboxes
// it at its aspect ratio; Cover fills the whole area.
func Viewport(width, height int, mode playback.ResizeMode) Rect {
	if width <= 0 || height <= 0 {
		return Rect{}
	}
	if mode == playback.ResizeCover {
		return Rect{Width: width, Height: height}
	}

	w, h := width, width*aspectRows/aspectCols
	if h > height {
		w, h = height*aspectCols/aspectRows, height
	}
	w, h = max(w, 1), max(h, 1)
	return Rect{
		X:      (width - w) / 2,
		Y:      (height - h) / 2,
		Width:  w,
		Height: h,
	}
}

// playerLayout splits the player screen into the picture area and the
// controls below it. Fullscreen drops the help lines.
func playerLayout(width, height, helpLines int, ui playback.UIState) Rect {
	chrome := playerbar.Height(ui.ControlsVisible)
	if !ui.Fullscreen {
		chrome += helpLines
	}
	return Rect{Width: width, Height: max(height-chrome, 0)}
}
