package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/assert"
)

func TestGradient_KeepsText(t *testing.T) {
	out := Gradient("Night Drive", true, "#e50914", "#f5c518")
	assert.Equal(t, "Night Drive", ansi.Strip(out))
	assert.Equal(t, 11, lipgloss.Width(out))
}

func TestGradient_Empty(t *testing.T) {
	assert.Empty(t, Gradient("", false, "#000000", "#ffffff"))
}

func TestGradient_WideClusters(t *testing.T) {
	out := Gradient("映画🎬", false, "#000000", "#ffffff")
	assert.Equal(t, "映画🎬", ansi.Strip(out))
}

func TestBlend_Endpoints(t *testing.T) {
	colors := blend(3, "#000000", "#ffffff")
	assert.Len(t, colors, 3)
	assert.Equal(t, "#000000", colors[0].Hex())
	assert.Equal(t, "#ffffff", colors[2].Hex())

	assert.Len(t, blend(1, "#123456", "#ffffff"), 1)
}

func TestParse_ANSIFallsBackToGray(t *testing.T) {
	assert.Equal(t, "#808080", parse(lipgloss.Color("240")).Hex())
}

func TestTheme_StylesCached(t *testing.T) {
	th := T()
	assert.Same(t, th.S(), th.S())
}
