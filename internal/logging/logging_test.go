package logging

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"DEBUG", zerolog.DebugLevel},
		{"info", zerolog.InfoLevel},
		{"warn", zerolog.WarnLevel},
		{"warning", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{" trace ", zerolog.TraceLevel},
		{"off", zerolog.Disabled},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseLevel(tt.in))
		})
	}
}

func TestNew_FiltersBelowLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, "warn")

	log.Info().Msg("dropped")
	log.Warn().Str("source", "drone").Msg("kept")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "kept", entry["message"])
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "drone", entry["source"])
	assert.Equal(t, "VAJRA-X", entry["app"])
	assert.Contains(t, entry, "time")
}

func TestOpen_EmptyPathDiscards(t *testing.T) {
	w, err := Open("")
	require.NoError(t, err)
	n, err := w.Write([]byte("anything"))
	require.NoError(t, err)
	assert.Equal(t, 8, n)
	assert.NoError(t, w.Close())
}

func TestOpen_AppendsToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "vajra.log")
	require.NoError(t, os.WriteFile(path, []byte("first\n"), 0o644))

	w, err := Open(path)
	require.NoError(t, err)
	_, err = w.Write([]byte("second\n"))
	require.NoError(t, err)
	require.NoError(t, w.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "first\nsecond\n", string(data))
}

func TestOpen_BadPath(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "missing", "dir", "vajra.log"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open log file")
}

func TestNewTee_WritesBoth(t *testing.T) {
	var console, file bytes.Buffer
	log := NewTee(&console, &file, "info")
	log.Warn().Str("id", "log-1").Msg("jamming detected")

	assert.Contains(t, console.String(), "jamming detected")
	assert.Contains(t, file.String(), `"message":"jamming detected"`)
	assert.Contains(t, file.String(), `"id":"log-1"`)
}
