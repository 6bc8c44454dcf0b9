package main

import (
	"os"
	"path/filepath"

	"github.com/jahasielva/folio/internal/prefstore"
)

func folioDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(home, ".folio"), nil
}

func defaultConfigPath() (string, error) {
	dir, err := folioDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "config.yaml"), nil
}

// defaultStorePath is where a driver keeps preferences when the config
// leaves the path empty.
func defaultStorePath(driver string) (string, error) {
	dir, err := folioDir()
	if err != nil {
		return "", err
	}

	if driver == prefstore.DriverSQLite {
		return filepath.Join(dir, "folio.db"), nil
	}
	return filepath.Join(dir, "preferences.json"), nil
}

func defaultLogPath() (string, error) {
	dir, err := folioDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(dir, "folio.log"), nil
}
