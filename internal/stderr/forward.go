package stderr

import (
	"bufio"
	"io"
	"strings"

	"github.com/rs/zerolog"
)

// forward logs every non-blank line read from r until EOF.
func forward(r io.Reader, logger zerolog.Logger) {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line != "" {
			logger.Warn().Str("source", "stderr").Msg(line)
		}
	}
}
