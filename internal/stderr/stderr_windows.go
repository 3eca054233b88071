//go:build windows

package stderr

import (
	"os"

	"github.com/rs/zerolog"
)

// Start is a no-op on Windows, whose audio backend does not write to fd 2.
func Start(_ zerolog.Logger) error {
	return nil
}

// WriteOriginal writes to stderr.
func WriteOriginal(msg string) {
	_, _ = os.Stderr.WriteString(msg)
}

// Stop is a no-op on Windows.
func Stop() {}
