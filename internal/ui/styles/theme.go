package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Marquee red - progress, active controls
	Secondary lipgloss.Color // Gold - titles, highlights

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Tertiary text (very dim)

	// Backgrounds
	BgBase    lipgloss.Color // Screen background
	BgOverlay lipgloss.Color // Controls overlay

	// Borders
	Border      lipgloss.Color // Unfocused frame borders
	BorderFocus lipgloss.Color // Focused frame borders

	// Status colors
	Success lipgloss.Color // Green - playing
	Error   lipgloss.Color // Red - playback errors
	Warning lipgloss.Color // Yellow - buffering

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base          lipgloss.Style // Default text
	Muted         lipgloss.Style // Dimmed text
	Subtle        lipgloss.Style // Very dim text
	Title         lipgloss.Style // Bold, bright
	Control       lipgloss.Style // Inactive control icon
	ControlActive lipgloss.Style // Toggled-on control icon
	Progress      lipgloss.Style // Elapsed part of the progress bar
	ProgressEmpty lipgloss.Style // Remaining part of the progress bar
	Button        lipgloss.Style // Focusable button
	Success       lipgloss.Style
	Error         lipgloss.Style
	Warning       lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#e50914"),
	Secondary: lipgloss.Color("#f5c518"),

	// Text hierarchy (grayscale)
	FgBase:   lipgloss.Color("#e5e5e5"),
	FgMuted:  lipgloss.Color("#8c8c8c"),
	FgSubtle: lipgloss.Color("#4d4d4d"),

	// Backgrounds
	BgBase:    lipgloss.Color("#141414"),
	BgOverlay: lipgloss.Color("#262626"),

	// Borders
	Border:      lipgloss.Color("#4d4d4d"),
	BorderFocus: lipgloss.Color("#e50914"),

	// Status
	Success: lipgloss.Color("#46d369"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f5c518"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

// Frame returns a rounded border style, highlighted when focused.
func (t *Theme) Frame(focused bool) lipgloss.Style {
	border := t.Border
	if focused {
		border = t.BorderFocus
	}
	return lipgloss.NewStyle().
		BorderStyle(lipgloss.RoundedBorder()).
		BorderForeground(border)
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:          base,
		Muted:         lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle:        lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:         base.Bold(true),
		Control:       lipgloss.NewStyle().Foreground(t.FgMuted),
		ControlActive: lipgloss.NewStyle().Foreground(t.Secondary).Bold(true),
		Progress:      lipgloss.NewStyle().Foreground(t.Primary),
		ProgressEmpty: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Button: lipgloss.NewStyle().
			Foreground(t.FgBase).
			Background(t.Primary).
			Bold(true).
			Padding(0, 2),
		Success: lipgloss.NewStyle().Foreground(t.Success),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
