// internal/app/view.go
package app

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/marquee/internal/icons"
	"github.com/llehouerou/marquee/internal/log"
	"github.com/llehouerou/marquee/internal/ui/playerbar"
	"github.com/llehouerou/marquee/internal/ui/poster"
	"github.com/llehouerou/marquee/internal/ui/styles"
)

const (
	posterCols = 24
	posterRows = 12
)

// View renders the application UI.
func (m Model) View() string {
	if m.Width == 0 {
		return ""
	}
	if m.Screen() == ScreenPlayer {
		return m.renderPlayer()
	}
	return m.renderDetails()
}

func (m Model) renderDetails() string {
	s := styles.T().S()
	d := m.opts.Details

	var b strings.Builder
	b.WriteString(styles.Marquee(d.Title()))
	if sub := d.Subtitle(); sub != "" {
		b.WriteString("\n" + s.Muted.Render(sub))
	}
	b.WriteString("\n\n")
	// Terminal graphics have no printable width, so the artwork gets its own
	// block instead of being joined with the text.
	b.WriteString(m.renderPoster())
	b.WriteString("\n\n")
	if facts := d.facts(time.Now()); len(facts) > 0 {
		b.WriteString(renderFacts(facts) + "\n\n")
	}
	b.WriteString(s.Button.Render(icons.PlayPause(false, false) + " Play trailer"))
	b.WriteString("\n\n")
	b.WriteString(m.renderFooter(m.help.View(m.keysDetails)))
	return b.String()
}

func (m Model) renderPoster() string {
	if !m.art.done {
		m.art.rendered = m.loadPoster()
		m.art.done = true
	}
	return m.art.rendered
}

func (m Model) loadPoster() string {
	if m.opts.Images && m.opts.Details.Poster != "" {
		art, err := poster.Load(m.opts.Details.Poster, posterCols, posterRows)
		if err == nil && art != "" {
			return art + strings.Repeat("\n", posterRows-1)
		}
		m.log.Debug().Err(err).Str(log.FieldPath, m.opts.Details.Poster).Msg("render poster")
	}
	return poster.Placeholder(posterCols, posterRows)
}

func (m Model) renderPlayer() string {
	s := styles.T().S()
	info := playerbar.Info{
		Title:    m.opts.Details.Title(),
		Subtitle: m.opts.Details.Subtitle(),
	}

	helpView := m.renderFooter(m.help.View(m.keysPlayer))
	helpLines := lipgloss.Height(helpView)

	var picture string
	switch {
	case m.loading:
		picture = m.spinner.View() + " Opening " + info.Title + "…"
	case m.openErr != "":
		picture = s.Error.Render(icons.Error()+" "+m.openErr) + "\n\n" +
			s.Muted.Render("r retry · esc back")
	default:
		area := playerLayout(m.Width, m.Height, helpLines, m.ui)
		vp := Viewport(area.Width, area.Height, m.ui.ResizeMode)
		picture = lipgloss.Place(area.Width, area.Height, lipgloss.Center, lipgloss.Center,
			poster.Placeholder(vp.Width, vp.Height))
	}

	if m.session == nil {
		body := lipgloss.Place(m.Width, max(m.Height-helpLines, 1),
			lipgloss.Center, lipgloss.Center, picture)
		return body + "\n" + helpView
	}

	out := picture + "\n" + playerbar.Render(m.ui, info, m.Width)
	if !m.ui.Fullscreen {
		out += "\n" + helpView
	}
	return out
}

// renderFooter shows the last error in place of the help line.
func (m Model) renderFooter(helpView string) string {
	if m.ErrorMsg != "" {
		return styles.T().S().Error.Render(icons.Error() + " " + m.ErrorMsg)
	}
	return helpView
}
