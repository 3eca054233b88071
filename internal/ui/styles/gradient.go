package styles

import (
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/uniseg"
)

// Marquee renders a title in bold with a horizontal gradient between the
// theme's accent colors.
func Marquee(text string) string {
	t := T()
	return Gradient(text, true, t.Primary, t.Secondary)
}

// Gradient renders text with a horizontal color gradient, one color per
// grapheme cluster.
func Gradient(text string, bold bool, from, to lipgloss.Color) string {
	clusters := graphemes(text)
	if len(clusters) == 0 {
		return ""
	}

	colors := blend(len(clusters), from, to)

	var b strings.Builder
	for i, cluster := range clusters {
		style := lipgloss.NewStyle().Foreground(lipgloss.Color(hex(colors[i]))).Bold(bold)
		b.WriteString(style.Render(cluster))
	}
	return b.String()
}

func graphemes(text string) []string {
	var clusters []string
	gr := uniseg.NewGraphemes(text)
	for gr.Next() {
		clusters = append(clusters, gr.Str())
	}
	return clusters
}

// blend returns size colors from..to, interpolated in HCL space.
func blend(size int, from, to lipgloss.Color) []colorful.Color {
	c1 := parse(from)
	if size < 2 {
		return []colorful.Color{c1}
	}
	c2 := parse(to)

	colors := make([]colorful.Color, size)
	for i := range size {
		colors[i] = c1.BlendHcl(c2, float64(i)/float64(size-1)).Clamped()
	}
	return colors
}

// parse reads a "#rrggbb" lipgloss color. ANSI palette colors fall back to
// neutral gray.
func parse(c lipgloss.Color) colorful.Color {
	if col, err := colorful.Hex(string(c)); err == nil {
		return col
	}
	col, _ := colorful.MakeColor(color.RGBA{R: 128, G: 128, B: 128, A: 255})
	return col
}

func hex(c colorful.Color) string {
	return c.Hex()
}
