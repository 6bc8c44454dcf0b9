package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/jahasielva/folio/internal/config"
	"github.com/jahasielva/folio/internal/content"
	"github.com/jahasielva/folio/internal/logger"
	"github.com/jahasielva/folio/internal/prefstore"
	"github.com/jahasielva/folio/internal/scheme"
	"github.com/jahasielva/folio/internal/theme"
	folioerrors "github.com/jahasielva/folio/pkg/errors"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Config    config.Config
	Logger    *logger.Logger
	Portfolio *content.Portfolio
	Store     prefstore.Store
	Theme     *theme.Provider
	// Watcher is nil when --scheme overrides detection.
	Watcher *scheme.Watcher

	closers []func() error
}

type appOptions struct {
	// interactive routes logs to a file and starts scheme polling.
	interactive bool
	logWriter   io.Writer
}

func newAppContext(ctx context.Context, flags *rootFlags, opts appOptions) (*AppContext, error) {
	cfg, err := loadConfig(flags)
	if err != nil {
		return nil, err
	}

	log, err := newLogger(cfg, flags, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}
	app := &AppContext{Config: cfg, Logger: log}
	app.closers = append(app.closers, log.Close)

	portfolio, err := content.Load()
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to load portfolio: %w", err)
	}
	app.Portfolio = portfolio

	store, err := app.openStore(ctx)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Store = store

	signal, err := app.buildSignal(ctx, flags.scheme, opts.interactive)
	if err != nil {
		app.Close()
		return nil, err
	}

	app.Theme = theme.New(ctx, theme.Options{
		DefaultPreference: cfg.Theme.Preference(),
		StorageKey:        cfg.Theme.StorageKey,
		Store:             store,
		Signal:            signal,
		Logger:            log,
	})
	app.closers = append(app.closers, func() error {
		app.Theme.Close()
		return nil
	})

	return app, nil
}

func loadConfig(flags *rootFlags) (config.Config, error) {
	path := flags.configPath
	if path == "" {
		if p, err := defaultConfigPath(); err == nil {
			path = p
		}
	}

	cfg, err := config.Load(path)
	if err != nil {
		return config.Config{}, fmt.Errorf("failed to load config: %w", err)
	}
	return *cfg, nil
}

func newLogger(cfg config.Config, flags *rootFlags, opts appOptions) (*logger.Logger, error) {
	level := cfg.Log.Level
	if flags.logLevel != "" {
		level = flags.logLevel
	}
	if flags.verbose {
		level = "debug"
	}

	file := cfg.Log.File
	if opts.interactive && file == "" {
		path, err := defaultLogPath()
		if err != nil {
			return logger.Discard(), nil
		}
		file = path
	}

	return logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.Log.Format == "console",
		Writer:        opts.logWriter,
		File:          file,
	})
}

// openStore opens the configured driver. A store that cannot be opened is
// replaced by a memory store so the session still works without
// persistence.
func (a *AppContext) openStore(ctx context.Context) (prefstore.Store, error) {
	path := a.Config.Storage.Path
	if path == "" && a.Config.Storage.Driver != prefstore.DriverMemory {
		p, err := defaultStorePath(a.Config.Storage.Driver)
		if err != nil {
			return nil, fmt.Errorf("failed to determine preference store path: %w", err)
		}
		path = p
	}

	store, closeStore, err := prefstore.Open(ctx, prefstore.Options{
		Driver: a.Config.Storage.Driver,
		Path:   path,
		Logger: a.Logger,
	})
	var storageErr *folioerrors.StorageError
	switch {
	case errors.As(err, &storageErr):
		a.Logger.WarnErr(err, "preference store unavailable, theme choices will not persist")
		return prefstore.NewMemoryStore(), nil
	case err != nil:
		return nil, err
	}

	a.closers = append(a.closers, closeStore)
	a.Logger.WithFields(map[string]any{"driver": a.Config.Storage.Driver, "path": path}).
		Debug("preference store opened")
	return store, nil
}

func (a *AppContext) buildSignal(ctx context.Context, override string, poll bool) (theme.Signal, error) {
	switch strings.ToLower(override) {
	case "":
	case "dark":
		return scheme.NewManual(true), nil
	case "light":
		return scheme.NewManual(false), nil
	default:
		return nil, folioerrors.NewValidationError("scheme",
			fmt.Sprintf("unknown colour scheme %q (want light or dark)", override), nil)
	}

	a.Watcher = scheme.NewWatcher(ctx, scheme.WatcherOptions{
		Detectors: scheme.Detectors(a.Config.Scheme.DetectorOptions()),
		Interval:  a.Config.Scheme.PollInterval,
		Logger:    a.Logger,
	})
	if poll && a.Config.Scheme.PollInterval > 0 {
		a.Watcher.Start(ctx)
		a.closers = append(a.closers, func() error {
			a.Watcher.Stop()
			return nil
		})
	}
	return a.Watcher, nil
}

// Close releases services in reverse order of creation.
func (a *AppContext) Close() error {
	var errs []error
	for i := len(a.closers) - 1; i >= 0; i-- {
		if err := a.closers[i](); err != nil {
			errs = append(errs, err)
		}
	}
	a.closers = nil
	return errors.Join(errs...)
}
