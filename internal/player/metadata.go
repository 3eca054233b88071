package player

import (
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dhowden/tag"
)

// TrackInfo describes the media a Player has open.
type TrackInfo struct {
	Path     string
	Title    string
	Artist   string
	Album    string
	Year     int
	Format   string // "MP3", "FLAC" or "WAV"
	Duration time.Duration
}

// ReadTrackInfo reads embedded tags. The title falls back to the file name.
func ReadTrackInfo(path string) (*TrackInfo, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	m, err := tag.ReadFrom(f)
	if err != nil {
		return nil, err
	}

	info := FallbackTrackInfo(path)
	if title := strings.TrimSpace(m.Title()); title != "" {
		info.Title = title
	}
	info.Artist = m.Artist()
	info.Album = m.Album()
	info.Year = m.Year()
	return info, nil
}

// FallbackTrackInfo derives a title and format from the file name.
func FallbackTrackInfo(path string) *TrackInfo {
	base := filepath.Base(path)
	ext := filepath.Ext(base)
	return &TrackInfo{
		Path:   path,
		Title:  strings.TrimSuffix(base, ext),
		Format: strings.ToUpper(strings.TrimPrefix(ext, ".")),
	}
}
