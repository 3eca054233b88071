package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Play        string
	Pause       string
	Replay      string
	SkipBack    string
	SkipForward string
	Volume      string
	Muted       string
	Fullscreen  string
	Windowed    string
	Loop        string
	Error       string
	Spinner     string
}

var (
	nerdIcons = Icons{
		Play:        "󰐊", // nf-md-play
		Pause:       "󰏤", // nf-md-pause
		Replay:      "󰑙", // nf-md-replay
		SkipBack:    "󰴪", // nf-md-rewind_10
		SkipForward: "󰵱", // nf-md-fast_forward_10
		Volume:      "󰕾", // nf-md-volume_high
		Muted:       "󰝟", // nf-md-volume_off
		Fullscreen:  "󰊓", // nf-md-fullscreen
		Windowed:    "󰊔", // nf-md-fullscreen_exit
		Loop:        "󰑖", // nf-md-repeat
		Error:       "󰅚", // nf-md-close_circle_outline
		Spinner:     "󰔟", // nf-md-timer_sand
	}

	unicodeIcons = Icons{
		Play:        "▶",
		Pause:       "⏸",
		Replay:      "↻",
		SkipBack:    "⏪",
		SkipForward: "⏩",
		Volume:      "🔊",
		Muted:       "🔇",
		Fullscreen:  "⛶",
		Windowed:    "▣",
		Loop:        "🔁",
		Error:       "⚠",
		Spinner:     "⏳",
	}

	noneIcons = Icons{
		Play:        ">",
		Pause:       "||",
		Replay:      "<>",
		SkipBack:    "<<",
		SkipForward: ">>",
		Volume:      "[vol]",
		Muted:       "[mute]",
		Fullscreen:  "[ ]",
		Windowed:    "[-]",
		Loop:        "[L]",
		Error:       "!",
		Spinner:     "...",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// PlayPause returns the icon for the action the play button performs.
func PlayPause(playing, finished bool) string {
	switch {
	case playing:
		return current.Pause
	case finished:
		return current.Replay
	default:
		return current.Play
	}
}

// Mute returns the volume or muted icon.
func Mute(muted bool) string {
	if muted {
		return current.Muted
	}
	return current.Volume
}

// Fullscreen returns the icon for the fullscreen toggle.
func Fullscreen(fullscreen bool) string {
	if fullscreen {
		return current.Windowed
	}
	return current.Fullscreen
}

// SkipBack returns the skip backward icon.
func SkipBack() string {
	return current.SkipBack
}

// SkipForward returns the skip forward icon.
func SkipForward() string {
	return current.SkipForward
}

// Loop returns the loop icon.
func Loop() string {
	return current.Loop
}

// Error returns the error icon.
func Error() string {
	return current.Error
}

// Buffering returns the buffering indicator.
func Buffering() string {
	return current.Spinner
}
