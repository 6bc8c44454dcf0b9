package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func TestLoggerInfoWithFields(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"key": "theme-preference", "preference": "dark"})
	log.Info("preference saved")

	var entry logEntry
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	require.Equal(t, "preference saved", entry["message"])
	require.Equal(t, "theme-preference", entry["key"])
	require.Equal(t, "dark", entry["preference"])
	require.Equal(t, "info", entry["level"])
}

func TestLoggerDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log.Debug("this should not appear")
	require.Equal(t, "", strings.TrimSpace(buf.String()))
}

func TestLoggerRejectsUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.Error(t, err)
}

func TestLoggerWarnErrIncludesContext(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", HumanReadable: false, Writer: buf})
	require.NoError(t, err)

	log = log.WithComponent("theme")
	log.WarnErr(errors.New("read-only"), "failed to persist preference")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry logEntry
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "failed to persist preference", entry["message"])
	require.Equal(t, "theme", entry["component"])
	require.Equal(t, "read-only", entry["error"])
	require.Equal(t, "warn", entry["level"])
}

func TestLoggerWritesToFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "logs", "folio.log")
	log, err := New(Options{Level: "info", File: path})
	require.NoError(t, err)

	log.Error(errors.New("boom"), "failed")
	require.NoError(t, log.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), `"message":"failed"`)
	require.Contains(t, string(data), `"error":"boom"`)
}

func TestNilAndDiscardLoggersAreSafe(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.NotPanics(t, func() {
		log.Info("ignored")
		log.Warn("ignored")
		log.Error(errors.New("ignored"), "ignored")
		require.Nil(t, log.WithFields(map[string]any{"a": 1}))
		require.NoError(t, log.Close())
	})

	require.NotPanics(t, func() {
		Discard().WithComponent("tui").Info("dropped")
	})
}
