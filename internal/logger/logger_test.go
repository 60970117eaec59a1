package logger

import (
	"bufio"
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewClientLogger_WritesToFile verifies that entries are appended to the
// configured file as JSON lines carrying the role field.
func TestNewClientLogger_WritesToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")
	l := NewClientLogger("test-role", path)
	require.NotNil(t, l)

	l.Info().Msg("first")
	l.Info().Msg("second")

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var lines []map[string]any
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var entry map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &entry))
		lines = append(lines, entry)
	}

	require.Len(t, lines, 2)
	assert.Equal(t, "test-role", lines[0]["role"])
	assert.Equal(t, "second", lines[1]["message"])
}

// TestNewClientLogger_UnwritablePath verifies that an unopenable path does
// not panic and falls back to discarding output.
func TestNewClientLogger_UnwritablePath(t *testing.T) {
	l := NewClientLogger("test", filepath.Join(t.TempDir(), "missing-dir", "client.log"))
	require.NotNil(t, l)
	assert.NotPanics(t, func() { l.Info().Msg("dropped") })
}

func TestNewClientLogger_CallerFieldName(t *testing.T) {
	NewClientLogger("caller-role", filepath.Join(t.TempDir(), "client.log"))
	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNewLogger_ContainsTimestamp(t *testing.T) {
	var buf bytes.Buffer
	l := newLogger(&buf, "ts-role")

	l.Info().Msg("ts check")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	_, hasTime := entry["time"]
	assert.True(t, hasTime, "expected 'time' field in log entry")
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Info().Msg("should be discarded")

	assert.Empty(t, buf.String(), "Nop logger should produce no output")
}

func TestGetChildLogger_InheritsFields(t *testing.T) {
	var buf bytes.Buffer
	parent := newLogger(&buf, "inherited-role")

	child := parent.GetChildLogger("directline")
	assert.NotSame(t, parent, child)
	child.Info().Msg("child message")

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "inherited-role", entry["role"])
	assert.Equal(t, "directline", entry["component"])
}

func TestClose_ClosesLogFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "client.log")
	l := NewClientLogger("close-role", path)
	l.Info().Msg("kept")
	child := l.GetChildLogger("child")

	require.NoError(t, child.Close())
	require.NotNil(t, l.file, "child Close leaves the parent file open")

	file := l.file
	require.NoError(t, l.Close())
	require.NoError(t, l.Close())

	_, err := file.Write([]byte("x"))
	assert.ErrorIs(t, err, os.ErrClosed)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "kept")
}

func TestClose_Nop(t *testing.T) {
	assert.NoError(t, Nop().Close())
	assert.NoError(t, NewClientLogger("x", filepath.Join(t.TempDir(), "missing", "a.log")).Close())
}
