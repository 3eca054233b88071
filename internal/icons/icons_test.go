package icons

import "testing"

func TestInit(t *testing.T) {
	tests := []struct {
		name          string
		style         string
		expectedStyle Style
	}{
		{"nerd style", "nerd", StyleNerd},
		{"unicode style", "unicode", StyleUnicode},
		{"none style", "none", StyleNone},
		{"empty string defaults to none", "", StyleNone},
		{"unknown style defaults to none", "invalid", StyleNone},
		{"case sensitive - NERD defaults to none", "NERD", StyleNone},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.style)

			switch tt.expectedStyle {
			case StyleNerd:
				if current != nerdIcons {
					t.Error("expected nerd icons to be active")
				}
			case StyleUnicode:
				if current != unicodeIcons {
					t.Error("expected unicode icons to be active")
				}
			case StyleNone:
				if current != noneIcons {
					t.Error("expected none icons to be active")
				}
			}
		})
	}

	// Reset to default
	Init("none")
}

func TestPlayPause(t *testing.T) {
	Init("none")
	defer Init("none")

	tests := []struct {
		name     string
		playing  bool
		finished bool
		want     string
	}{
		{"paused shows play", false, false, ">"},
		{"playing shows pause", true, false, "||"},
		{"finished shows replay", false, true, "<>"},
		{"playing wins over finished", true, true, "||"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PlayPause(tt.playing, tt.finished); got != tt.want {
				t.Errorf("PlayPause(%v, %v) = %q, want %q", tt.playing, tt.finished, got, tt.want)
			}
		})
	}
}

func TestToggles(t *testing.T) {
	Init("unicode")
	defer Init("none")

	if got := Mute(true); got != "🔇" {
		t.Errorf("Mute(true) = %q", got)
	}
	if got := Mute(false); got != "🔊" {
		t.Errorf("Mute(false) = %q", got)
	}
	if got := Fullscreen(false); got != "⛶" {
		t.Errorf("Fullscreen(false) = %q", got)
	}
	if got := Fullscreen(true); got != "▣" {
		t.Errorf("Fullscreen(true) = %q", got)
	}
}

func TestAllStylesComplete(t *testing.T) {
	for _, set := range []Icons{nerdIcons, unicodeIcons, noneIcons} {
		fields := []string{
			set.Play, set.Pause, set.Replay, set.SkipBack, set.SkipForward,
			set.Volume, set.Muted, set.Fullscreen, set.Windowed, set.Loop,
			set.Error, set.Spinner,
		}
		for i, f := range fields {
			if f == "" {
				t.Errorf("icon set %+v has empty field %d", set, i)
			}
		}
	}
}

func TestAccessors(t *testing.T) {
	Init("none")
	if SkipBack() != "<<" || SkipForward() != ">>" {
		t.Error("skip icons mismatch")
	}
	if Loop() != "[L]" || Error() != "!" || Buffering() != "..." {
		t.Error("status icons mismatch")
	}
}
