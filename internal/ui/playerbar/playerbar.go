// Package playerbar renders the on-screen playback controls.
package playerbar

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/mattn/go-runewidth"

	"github.com/llehouerou/marquee/internal/icons"
	"github.com/llehouerou/marquee/internal/playback"
	"github.com/llehouerou/marquee/internal/ui/styles"
)

// Info describes the media shown in the bar.
type Info struct {
	Title    string
	Subtitle string // e.g. "Artist · Album"
}

// Height returns the number of rows Render produces.
func Height(controlsVisible bool) int {
	if controlsVisible {
		return 4 // 2 content rows + 2 border rows
	}
	return 1
}

// Render returns the controls for the given width. Hidden controls collapse
// to a thin progress line.
func Render(ui playback.UIState, info Info, width int) string {
	if width <= 0 {
		return ""
	}
	if !ui.ControlsVisible {
		return renderThin(ui.Status, width)
	}

	innerWidth := max(width-6, 0) // border + padding

	header := renderHeader(ui, info, innerWidth)
	var body string
	if ui.State == playback.StateError {
		body = renderError(ui.Error, innerWidth)
	} else {
		body = renderControls(ui, innerWidth)
	}

	return styles.T().Frame(ui.State == playback.StateError).
		Padding(0, 2).
		Width(width - 2).
		Render(header + "\n" + body)
}

func renderHeader(ui playback.UIState, info Info, width int) string {
	s := styles.T().S()

	badge := stateBadge(ui)
	title := info.Title
	if title == "" {
		title = "Untitled"
	}
	if info.Subtitle != "" {
		title += s.Muted.Render("  " + info.Subtitle)
	}

	titleWidth := max(width-lipgloss.Width(badge)-1, 0)
	title = ansi.Truncate(s.Title.Render(title), titleWidth, "…")
	return row(title, badge, width)
}

func stateBadge(ui playback.UIState) string {
	s := styles.T().S()
	switch {
	case ui.State == playback.StateError:
		return s.Error.Render(icons.Error() + " ERROR")
	case ui.Status.Buffering:
		return s.Warning.Render(icons.Buffering() + " BUFFERING")
	case ui.State == playback.StatePlaying:
		return s.Success.Render("PLAYING")
	case ui.State == playback.StateFinished:
		return s.Muted.Render("FINISHED")
	case ui.State == playback.StateReady:
		return s.Muted.Render("PAUSED")
	default:
		return s.Subtle.Render("LOADING")
	}
}

func renderControls(ui playback.UIState, width int) string {
	s := styles.T().S()

	playIcon := icons.PlayPause(ui.Status.Playing, ui.State == playback.StateFinished)
	left := strings.Join([]string{
		s.Control.Render(icons.SkipBack()),
		s.ControlActive.Render(playIcon),
		s.Control.Render(icons.SkipForward()),
	}, " ")

	toggles := []string{toggle(icons.Mute(ui.Muted), ui.Muted)}
	if ui.Status.Looping {
		toggles = append(toggles, toggle(icons.Loop(), true))
	}
	toggles = append(toggles,
		toggle(ui.ResizeMode.String(), ui.ResizeMode == playback.ResizeCover),
		toggle(icons.Fullscreen(ui.Fullscreen), ui.Fullscreen),
	)
	right := strings.Join(toggles, " ")

	timeStr := FormatTime(ui.Status)
	fixed := lipgloss.Width(left) + lipgloss.Width(right) + lipgloss.Width(timeStr) + 6
	barWidth := width - fixed
	if barWidth < 5 {
		return row(left+"  "+s.Muted.Render(timeStr), right, width)
	}

	bar := ProgressBar(ui.Status, barWidth)
	return left + "  " + s.Muted.Render(timeStr) + "  " + bar + "  " + right
}

func renderError(msg string, width int) string {
	s := styles.T().S()
	if msg == "" {
		msg = "Playback failed"
	}
	retry := s.Button.Render("r  Retry")
	msgWidth := max(width-lipgloss.Width(retry)-2, 0)
	return row(s.Error.Render(ansi.Truncate(msg, msgWidth, "…")), retry, width)
}

func renderThin(st playback.Status, width int) string {
	return ProgressBar(st, width)
}

func toggle(label string, on bool) string {
	s := styles.T().S()
	if on {
		return s.ControlActive.Render(label)
	}
	return s.Control.Render(label)
}

// row places left and right at the edges of width.
func row(left, right string, width int) string {
	gap := max(width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return left + strings.Repeat(" ", gap) + right
}

// ProgressBar renders a bar of width cells filled up to the position. An
// unknown duration renders an empty bar.
func ProgressBar(st playback.Status, width int) string {
	if width <= 0 {
		return ""
	}
	s := styles.T().S()

	filled := 0
	if st.DurationKnown && st.Duration > 0 {
		ratio := float64(st.Position) / float64(st.Duration)
		filled = min(int(float64(width)*ratio), width)
	}
	return s.Progress.Render(strings.Repeat("━", filled)) +
		s.ProgressEmpty.Render(strings.Repeat("─", width-filled))
}

// FormatTime returns "position / duration", with "--:--" for an unknown
// duration.
func FormatTime(st playback.Status) string {
	dur := "--:--"
	if st.DurationKnown {
		dur = FormatDuration(st.Duration)
	}
	return FormatDuration(st.Position) + " / " + dur
}

// FormatDuration formats d as m:ss, or h:mm:ss from one hour.
func FormatDuration(d time.Duration) string {
	d = max(d, 0)
	h := int(d.Hours())
	m := int(d.Minutes()) % 60
	sec := int(d.Seconds()) % 60
	if h > 0 {
		return fmt.Sprintf("%d:%02d:%02d", h, m, sec)
	}
	return fmt.Sprintf("%d:%02d", m, sec)
}

// Pad fills s with spaces to width cells, truncating first when too wide.
func Pad(s string, width int) string {
	return runewidth.FillRight(runewidth.Truncate(s, width, "…"), width)
}
