package log

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithComponent_AnnotatesEntries(t *testing.T) {
	var buf bytes.Buffer
	Configure(Config{Level: "debug", Output: &buf, Service: "marquee-test"})

	l := WithComponent("playback")
	l.Info().Str(FieldIntent, "seek").Msg("intent")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(buf.Bytes()), &entry))
	assert.Equal(t, "playback", entry[FieldComponent])
	assert.Equal(t, "seek", entry[FieldIntent])
	assert.Equal(t, "marquee-test", entry["service"])
	assert.Equal(t, "intent", entry["message"])
}

func TestNop_DiscardsEverything(t *testing.T) {
	l := Nop()
	// Must not panic and must not write anywhere.
	l.Error().Msg("ignored")
}
