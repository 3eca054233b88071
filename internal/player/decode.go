package player

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gopxl/beep/v2"
	"github.com/gopxl/beep/v2/flac"
	"github.com/gopxl/beep/v2/mp3"
	"github.com/gopxl/beep/v2/wav"
)

const (
	extMP3  = ".mp3"
	extFLAC = ".flac"
	extWAV  = ".wav"
)

// IsMediaFile reports whether Open can decode the file at path.
func IsMediaFile(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case extMP3, extFLAC, extWAV:
		return true
	}
	return false
}

func decode(f *os.File, path string) (beep.StreamSeekCloser, beep.Format, error) {
	ext := strings.ToLower(filepath.Ext(path))
	switch ext {
	case extMP3:
		return mp3.Decode(f)
	case extFLAC:
		// Some taggers prepend ID3v2 to FLAC files.
		if err := skipID3v2(f); err != nil {
			return nil, beep.Format{}, err
		}
		return flac.Decode(f)
	case extWAV:
		return wav.Decode(f)
	}
	return nil, beep.Format{}, fmt.Errorf("%w: %s", ErrUnsupported, ext)
}

// skipID3v2 positions r after a leading ID3v2 tag, or at the start if none.
func skipID3v2(r io.ReadSeeker) error {
	header := make([]byte, 10)
	n, err := io.ReadFull(r, header)
	if err != nil && n < len(header) {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}

	if string(header[0:3]) != "ID3" {
		_, err = r.Seek(0, io.SeekStart)
		return err
	}

	// Syncsafe integer: 7 bits per byte.
	size := int64(header[6])<<21 | int64(header[7])<<14 | int64(header[8])<<7 | int64(header[9])
	_, err = r.Seek(10+size, io.SeekStart)
	return err
}
