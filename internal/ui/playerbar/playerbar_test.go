package playerbar

import (
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/marquee/internal/icons"
	"github.com/llehouerou/marquee/internal/playback"
)

func playing(pos time.Duration) playback.UIState {
	return playback.UIState{
		State:           playback.StatePlaying,
		ControlsVisible: true,
		Status: playback.Status{
			Loaded:        true,
			Playing:       true,
			Position:      pos,
			Duration:      2 * time.Minute,
			DurationKnown: true,
		},
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0:00"},
		{-time.Second, "0:00"},
		{59 * time.Second, "0:59"},
		{83 * time.Second, "1:23"},
		{time.Hour + 2*time.Minute + 3*time.Second, "1:02:03"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDuration(tt.d), tt.d.String())
	}
}

func TestFormatTime_UnknownDuration(t *testing.T) {
	assert.Equal(t, "0:05 / --:--", FormatTime(playback.Status{Position: 5 * time.Second}))
	assert.Equal(t, "0:05 / 2:00", FormatTime(playing(5*time.Second).Status))
}

func TestProgressBar(t *testing.T) {
	bar := ansi.Strip(ProgressBar(playing(time.Minute).Status, 10))
	assert.Equal(t, "━━━━━─────", bar)

	empty := ansi.Strip(ProgressBar(playback.Status{Position: time.Minute}, 4))
	assert.Equal(t, "────", empty)

	assert.Empty(t, ProgressBar(playing(0).Status, 0))
}

func TestRender_HiddenIsThin(t *testing.T) {
	ui := playing(time.Minute)
	ui.ControlsVisible = false

	out := Render(ui, Info{Title: "Night Drive"}, 40)
	assert.Equal(t, 1, lipgloss.Height(out))
	assert.Equal(t, 40, lipgloss.Width(out))
	assert.NotContains(t, ansi.Strip(out), "Night Drive")
}

func TestRender_Visible(t *testing.T) {
	icons.Init("none")
	out := Render(playing(time.Minute), Info{Title: "Night Drive", Subtitle: "Marquee"}, 80)
	plain := ansi.Strip(out)

	assert.Equal(t, Height(true), lipgloss.Height(out))
	assert.Contains(t, plain, "Night Drive")
	assert.Contains(t, plain, "PLAYING")
	assert.Contains(t, plain, "1:00 / 2:00")
	assert.Contains(t, plain, "||", "playing shows the pause action")
	for _, line := range strings.Split(out, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 80)
	}
}

func TestRender_Error(t *testing.T) {
	ui := playback.UIState{State: playback.StateError, ControlsVisible: true, Error: "network lost"}
	plain := ansi.Strip(Render(ui, Info{}, 60))

	assert.Contains(t, plain, "network lost")
	assert.Contains(t, plain, "Retry")
	assert.Contains(t, plain, "ERROR")
}

func TestRender_Finished(t *testing.T) {
	icons.Init("none")
	ui := playing(2 * time.Minute)
	ui.State = playback.StateFinished
	ui.Status.Playing = false

	plain := ansi.Strip(Render(ui, Info{Title: "x"}, 80))
	assert.Contains(t, plain, "FINISHED")
	assert.Contains(t, plain, "<>", "finished shows the replay action")
}

func TestRender_ZeroWidth(t *testing.T) {
	assert.Empty(t, Render(playing(0), Info{}, 0))
}

func TestPad(t *testing.T) {
	assert.Equal(t, "ab  ", Pad("ab", 4))
	assert.Equal(t, 4, lipgloss.Width(Pad("abcdefgh", 4)))
	assert.Equal(t, 4, lipgloss.Width(Pad("映画", 4)))
}
