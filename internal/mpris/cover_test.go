package mpris

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFake(t *testing.T, path string) {
	t.Helper()
	if err := os.WriteFile(path, []byte("fake"), 0o600); err != nil {
		t.Fatal(err)
	}
}

func TestFindPoster(t *testing.T) {
	dir := t.TempDir()
	posterPath := filepath.Join(dir, "poster.jpg")
	writeFake(t, posterPath)

	got := FindPoster(filepath.Join(dir, "trailer.mp3"))
	if got != posterPath {
		t.Errorf("FindPoster() = %q, want %q", got, posterPath)
	}
}

func TestFindPoster_NotFound(t *testing.T) {
	dir := t.TempDir()

	got := FindPoster(filepath.Join(dir, "trailer.mp3"))
	if got != "" {
		t.Errorf("FindPoster() = %q, want empty string", got)
	}
}

func TestFindPoster_Priority(t *testing.T) {
	dir := t.TempDir()
	writeFake(t, filepath.Join(dir, "folder.jpg"))
	writeFake(t, filepath.Join(dir, "poster.jpg"))
	ownPath := filepath.Join(dir, "trailer.png")
	writeFake(t, ownPath)

	got := FindPoster(filepath.Join(dir, "trailer.mp3"))
	if got != ownPath {
		t.Errorf("FindPoster() = %q, want %q (file's own artwork wins)", got, ownPath)
	}
}
