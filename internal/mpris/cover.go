package mpris

import (
	"os"
	"path/filepath"
	"strings"
)

// posterNames lists common artwork filenames in priority order, after the
// media file's own "<name>.jpg" or "<name>.png".
var posterNames = []string{
	"poster.jpg", "poster.png",
	"cover.jpg", "cover.png", "cover.jpeg",
	"folder.jpg", "folder.png",
}

// FindPoster looks for artwork next to the media file. Returns the path to
// the art file, or empty string if not found.
func FindPoster(mediaPath string) string {
	dir := filepath.Dir(mediaPath)
	stem := strings.TrimSuffix(filepath.Base(mediaPath), filepath.Ext(mediaPath))

	candidates := make([]string, 0, len(posterNames)+2)
	candidates = append(candidates, stem+".jpg", stem+".png")
	candidates = append(candidates, posterNames...)

	for _, name := range candidates {
		path := filepath.Join(dir, name)
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}
