package config

import (
	"time"

	"github.com/jahasielva/folio/internal/prefstore"
	"github.com/jahasielva/folio/internal/scheme"
	"github.com/jahasielva/folio/internal/theme"
)

// DefaultStorageKey is the key the portfolio stores its theme preference
// under.
const DefaultStorageKey = "va-portfolio-theme"

// Config represents the full folio configuration document.
type Config struct {
	Theme   ThemeConfig   `yaml:"theme"`
	Storage StorageConfig `yaml:"storage"`
	Scheme  SchemeConfig  `yaml:"scheme"`
	Log     LogConfig     `yaml:"log"`
	TUI     TUIConfig     `yaml:"tui"`
}

// ThemeConfig holds the preference used when nothing is stored and the key
// the stored preference lives under.
type ThemeConfig struct {
	Default    string `yaml:"default" validate:"required,theme_pref"`
	StorageKey string `yaml:"storage_key" validate:"required,max=128"`
}

// Preference returns Default as a theme preference.
func (t ThemeConfig) Preference() theme.Preference {
	pref, ok := theme.ParsePreference(t.Default)
	if !ok {
		return theme.System
	}
	return pref
}

// StorageConfig selects the preference store driver. An empty path means
// the driver's default location.
type StorageConfig struct {
	Driver string `yaml:"driver" validate:"required,oneof=file sqlite memory"`
	Path   string `yaml:"path,omitempty"`
}

// SchemeConfig configures platform colour-scheme detection. A zero poll
// interval disables polling.
type SchemeConfig struct {
	EnvVar        string        `yaml:"env_var" validate:"omitempty,env_name"`
	PollInterval  time.Duration `yaml:"poll_interval" validate:"omitempty,min=1s"`
	QueryOS       bool          `yaml:"query_os"`
	QueryTerminal bool          `yaml:"query_terminal"`
}

// DetectorOptions converts the section into scheme detector options.
func (s SchemeConfig) DetectorOptions() scheme.DetectorOptions {
	return scheme.DetectorOptions{
		EnvVar:        s.EnvVar,
		QueryOS:       s.QueryOS,
		QueryTerminal: s.QueryTerminal,
	}
}

type LogConfig struct {
	Level  string `yaml:"level" validate:"required,oneof=debug info warn error"`
	Format string `yaml:"format" validate:"required,oneof=console json"`
	File   string `yaml:"file,omitempty"`
}

// TUIConfig tunes the interactive program. A zero carousel interval turns
// off testimonial auto-advance.
type TUIConfig struct {
	CarouselInterval time.Duration `yaml:"carousel_interval" validate:"omitempty,min=1s"`
	AltScreen        bool          `yaml:"alt_screen"`
}

// Defaults returns the configuration used when no file exists.
func Defaults() Config {
	return Config{
		Theme: ThemeConfig{
			Default:    string(theme.System),
			StorageKey: DefaultStorageKey,
		},
		Storage: StorageConfig{
			Driver: prefstore.DriverFile,
		},
		Scheme: SchemeConfig{
			EnvVar:        scheme.DefaultEnvVar,
			PollInterval:  scheme.DefaultPollInterval,
			QueryOS:       true,
			QueryTerminal: true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		TUI: TUIConfig{
			CarouselInterval: 8 * time.Second,
			AltScreen:        true,
		},
	}
}
