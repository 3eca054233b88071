// internal/app/details.go
package app

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/rs/zerolog"

	"github.com/llehouerou/marquee/internal/log"
	"github.com/llehouerou/marquee/internal/mpris"
	"github.com/llehouerou/marquee/internal/player"
	"github.com/llehouerou/marquee/internal/ui/styles"
)

// Details describes the media shown on the details screen.
type Details struct {
	Info    *player.TrackInfo
	Poster  string // empty when no artwork was found
	Size    int64
	ModTime time.Time
}

// LoadDetails stats path and reads its tags. Missing tags fall back to the
// file name; a missing file is an error.
func LoadDetails(path string, logger zerolog.Logger) (Details, error) {
	fi, err := os.Stat(path)
	if err != nil {
		return Details{}, err
	}
	if fi.IsDir() {
		return Details{}, fmt.Errorf("%s is a directory", path)
	}

	info, err := player.ReadTrackInfo(path)
	if err != nil {
		logger.Debug().Err(err).Str(log.FieldPath, path).Msg("no readable tags")
		info = player.FallbackTrackInfo(path)
	}

	return Details{
		Info:    info,
		Poster:  mpris.FindPoster(path),
		Size:    fi.Size(),
		ModTime: fi.ModTime(),
	}, nil
}

// Title returns the display title.
func (d Details) Title() string {
	if d.Info == nil {
		return ""
	}
	return d.Info.Title
}

// Subtitle joins artist, album and year.
func (d Details) Subtitle() string {
	if d.Info == nil {
		return ""
	}
	var parts []string
	for _, s := range []string{d.Info.Artist, d.Info.Album} {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if d.Info.Year > 0 {
		parts = append(parts, strconv.Itoa(d.Info.Year))
	}
	return strings.Join(parts, " · ")
}

// facts returns the label/value lines of the details screen.
func (d Details) facts(now time.Time) [][2]string {
	var out [][2]string
	if d.Info != nil && d.Info.Format != "" {
		out = append(out, [2]string{"Format", d.Info.Format})
	}
	if d.Size > 0 {
		out = append(out, [2]string{"Size", humanize.Bytes(uint64(d.Size))})
	}
	if !d.ModTime.IsZero() {
		out = append(out, [2]string{"Added", humanize.RelTime(d.ModTime, now, "ago", "from now")})
	}
	return out
}

func renderFacts(facts [][2]string) string {
	s := styles.T().S()
	lines := make([]string, 0, len(facts))
	for _, f := range facts {
		lines = append(lines, s.Muted.Render(fmt.Sprintf("%-8s", f[0]))+s.Base.Render(f[1]))
	}
	return strings.Join(lines, "\n")
}
