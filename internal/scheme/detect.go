package scheme

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"runtime"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// DefaultEnvVar overrides every other detector when set to "dark" or "light".
const DefaultEnvVar = "FOLIO_COLOR_SCHEME"

const osQueryTimeout = 2 * time.Second

// Detector is one source of the platform colour-scheme answer. ok is false
// when the source has no opinion.
type Detector interface {
	Name() string
	Detect(ctx context.Context) (prefersDark bool, ok bool)
}

// EnvDetector reads the answer from an environment variable.
type EnvDetector struct {
	Var    string
	Lookup func(string) (string, bool)
}

func (d EnvDetector) Name() string { return "env" }

func (d EnvDetector) Detect(context.Context) (bool, bool) {
	name := d.Var
	if name == "" {
		name = DefaultEnvVar
	}
	lookup := d.Lookup
	if lookup == nil {
		lookup = os.LookupEnv
	}

	value, ok := lookup(name)
	if !ok {
		return false, false
	}
	return parseSchemeWord(value)
}

func parseSchemeWord(value string) (bool, bool) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "dark":
		return true, true
	case "light":
		return false, true
	default:
		return false, false
	}
}

// CommandRunner runs an external command and returns its standard output.
type CommandRunner func(ctx context.Context, name string, args ...string) ([]byte, error)

func execRunner(ctx context.Context, name string, args ...string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// OSDetector asks the desktop environment for its appearance setting.
type OSDetector struct {
	GOOS string
	Run  CommandRunner
}

func (d OSDetector) Name() string { return "os" }

func (d OSDetector) Detect(ctx context.Context) (bool, bool) {
	goos := d.GOOS
	if goos == "" {
		goos = runtime.GOOS
	}
	run := d.Run
	if run == nil {
		run = execRunner
	}

	ctx, cancel := context.WithTimeout(ctx, osQueryTimeout)
	defer cancel()

	switch goos {
	case "linux", "freebsd", "openbsd":
		out, err := run(ctx, "gsettings", "get", "org.gnome.desktop.interface", "color-scheme")
		if err != nil {
			return false, false
		}
		switch strings.Trim(strings.TrimSpace(string(out)), "'") {
		case "prefer-dark":
			return true, true
		case "prefer-light", "default":
			return false, true
		}
		return false, false
	case "darwin":
		out, err := run(ctx, "defaults", "read", "-g", "AppleInterfaceStyle")
		if err != nil {
			// The key only exists in dark mode; a failing read means light.
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				return false, true
			}
			return false, false
		}
		return strings.EqualFold(strings.TrimSpace(string(out)), "dark"), true
	case "windows":
		out, err := run(ctx, "reg", "query",
			`HKCU\Software\Microsoft\Windows\CurrentVersion\Themes\Personalize`, "/v", "AppsUseLightTheme")
		if err != nil {
			return false, false
		}
		text := string(out)
		switch {
		case strings.Contains(text, "0x0"):
			return true, true
		case strings.Contains(text, "0x1"):
			return false, true
		}
		return false, false
	default:
		return false, false
	}
}

// TerminalDetector queries the terminal's background colour. The query is
// made once: asking again while a full-screen program owns the terminal
// would swallow its input.
type TerminalDetector struct {
	File *os.File

	once sync.Once
	dark bool
	ok   bool
}

func (d *TerminalDetector) Name() string { return "terminal" }

func (d *TerminalDetector) Detect(context.Context) (bool, bool) {
	d.once.Do(func() {
		f := d.File
		if f == nil {
			f = os.Stdout
		}
		if !term.IsTerminal(int(f.Fd())) {
			return
		}
		d.dark = termenv.NewOutput(f).HasDarkBackground()
		d.ok = true
	})
	return d.dark, d.ok
}

// Resolve returns the first answer given by detectors, in order, and the
// name of the detector that gave it. When none answers the result is dark,
// the usual terminal default.
func Resolve(ctx context.Context, detectors ...Detector) (prefersDark bool, source string) {
	for _, d := range detectors {
		if d == nil {
			continue
		}
		if dark, ok := d.Detect(ctx); ok {
			return dark, d.Name()
		}
	}
	return true, "fallback"
}

// DetectorOptions selects the detector chain.
type DetectorOptions struct {
	EnvVar        string
	QueryOS       bool
	QueryTerminal bool
}

// Detectors builds the chain env, os, terminal honouring opts.
func Detectors(opts DetectorOptions) []Detector {
	detectors := []Detector{EnvDetector{Var: opts.EnvVar}}
	if opts.QueryOS {
		detectors = append(detectors, OSDetector{})
	}
	if opts.QueryTerminal {
		detectors = append(detectors, &TerminalDetector{})
	}
	return detectors
}
