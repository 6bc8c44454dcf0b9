package main

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	folioerrors "github.com/jahasielva/folio/pkg/errors"
)

func TestThemeGetDefaultsToSystem(t *testing.T) {
	isolate(t, "dark")

	out, err := executeCommand(newRootCmd(), "theme", "get")
	require.NoError(t, err)

	assert.Contains(t, out, "preference: system")
	assert.Contains(t, out, "resolved: dark")
	assert.Contains(t, out, "platform: dark (env)")
	assert.NotContains(t, out, "updated:")
}

func TestThemeSetPersistsAcrossRuns(t *testing.T) {
	home := isolate(t, "dark")

	out, err := executeCommand(newRootCmd(), "theme", "set", "light")
	require.NoError(t, err)
	assert.Contains(t, out, "theme preference set to light (resolved light)")

	data, err := os.ReadFile(filepath.Join(home, ".folio", "preferences.json"))
	require.NoError(t, err)
	assert.Contains(t, string(data), "va-portfolio-theme")

	out, err = executeCommand(newRootCmd(), "theme", "get")
	require.NoError(t, err)
	assert.Contains(t, out, "preference: light")
	assert.Contains(t, out, "resolved: light")
}

func TestThemeSetRejectsUnknownPreference(t *testing.T) {
	isolate(t, "dark")

	_, err := executeCommand(newRootCmd(), "theme", "set", "purple")
	require.Error(t, err)

	var verr *folioerrors.ValidationError
	assert.True(t, errors.As(err, &verr))

	out, err := executeCommand(newRootCmd(), "theme", "get")
	require.NoError(t, err)
	assert.Contains(t, out, "preference: system")
}

func TestThemeToggleFlipsResolvedTheme(t *testing.T) {
	isolate(t, "dark")

	out, err := executeCommand(newRootCmd(), "theme", "toggle")
	require.NoError(t, err)
	assert.Contains(t, out, "theme preference set to light (resolved light)")

	out, err = executeCommand(newRootCmd(), "theme", "toggle")
	require.NoError(t, err)
	assert.Contains(t, out, "theme preference set to dark (resolved dark)")
}

func TestThemeUsesSQLiteDriver(t *testing.T) {
	home := isolate(t, "light")
	cfgPath := filepath.Join(home, "config.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("storage:\n  driver: sqlite\n"), 0o644))

	_, err := executeCommand(newRootCmd(), "theme", "set", "dark", "--config", cfgPath)
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(home, ".folio", "folio.db"))

	out, err := executeCommand(newRootCmd(), "theme", "get", "--config", cfgPath)
	require.NoError(t, err)
	assert.Contains(t, out, "preference: dark")
	assert.Contains(t, out, "updated: ")
}

func TestSchemeFlagOverridesDetection(t *testing.T) {
	isolate(t, "dark")

	out, err := executeCommand(newRootCmd(), "theme", "get", "--scheme", "light")
	require.NoError(t, err)
	assert.Contains(t, out, "resolved: light")
	assert.Contains(t, out, "platform: light (flag)")
}

func TestThemeSetRecoversFromCorruptPreferencesFile(t *testing.T) {
	home := isolate(t, "dark")
	path := filepath.Join(home, ".folio", "preferences.json")
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := executeCommand(newRootCmd(), "theme", "set", "light")
	require.NoError(t, err)

	out, err := executeCommand(newRootCmd(), "theme", "get")
	require.NoError(t, err)
	assert.Contains(t, out, "preference: light")
	assert.Contains(t, out, "resolved: light")

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"va-portfolio-theme": "light"`)
}
