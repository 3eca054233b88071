package log

import (
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
)

const logFileName = "marquee.log"

// OpenFile opens the application log file under the XDG state directory,
// creating it if needed. The terminal host logs there so log lines never
// reach the screen.
func OpenFile() (*os.File, error) {
	path, err := xdg.StateFile(filepath.Join("marquee", logFileName))
	if err != nil {
		return nil, err
	}
	return os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
}
