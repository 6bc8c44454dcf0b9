package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"regexp"

	"gopkg.in/yaml.v3"

	folioerrors "github.com/jahasielva/folio/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Load reads the configuration at path over the defaults. A missing file
// (or an empty path) yields the defaults; other read failures, YAML
// errors and invalid values are returned.
func Load(path string) (*Config, error) {
	cfg := Defaults()
	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &cfg, nil
		}
		return nil, folioerrors.NewParseError(path, 0, err)
	}

	return parse(path, data, cfg)
}

// Parse decodes data over the defaults and validates the result.
func Parse(path string, data []byte) (*Config, error) {
	return parse(path, data, Defaults())
}

func parse(path string, data []byte, cfg Config) (*Config, error) {
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, folioerrors.NewParseError(path, extractLine(err), err)
	}

	if err := Validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}

	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}

	var line int
	_, scanErr := fmt.Sscanf(matches[1], "%d", &line)
	if scanErr != nil {
		return 0
	}

	return line
}
