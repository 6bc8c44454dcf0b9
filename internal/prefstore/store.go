// Package prefstore persists small string preferences keyed by name.
//
// Drivers:
//   - file: a JSON document written atomically (default)
//   - sqlite: a single table in a local database
//   - memory: process-local map, used when nothing should touch disk
package prefstore

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jahasielva/folio/internal/logger"
	folioerrors "github.com/jahasielva/folio/pkg/errors"
)

// ErrNotFound is returned by Load when no value is stored under the key.
var ErrNotFound = errors.New("preference not found")

// Store reads and writes preference values.
type Store interface {
	Load(ctx context.Context, key string) (string, error)
	Save(ctx context.Context, key, value string) error
}

// Driver names accepted by Open.
const (
	DriverFile   = "file"
	DriverSQLite = "sqlite"
	DriverMemory = "memory"
)

// Options selects and configures a driver.
type Options struct {
	Driver string
	Path   string
	Logger *logger.Logger
}

// Open builds the store described by opts. The returned close function
// releases driver resources and is always non-nil.
func Open(ctx context.Context, opts Options) (Store, func() error, error) {
	noop := func() error { return nil }

	switch strings.ToLower(opts.Driver) {
	case "", DriverFile:
		s, err := NewFileStore(opts.Path)
		if err != nil {
			return nil, noop, folioerrors.NewStorageError(DriverFile, "open", err)
		}
		if discarded := s.Discarded(); discarded != nil {
			opts.Logger.WithFields(map[string]any{"path": s.Path()}).
				WarnErr(discarded, "ignoring unreadable preferences file, it will be replaced on the next save")
		}
		return s, noop, nil
	case DriverSQLite:
		s, err := NewSQLiteStore(ctx, opts.Path)
		if err != nil {
			return nil, noop, folioerrors.NewStorageError(DriverSQLite, "open", err)
		}
		return s, s.Close, nil
	case DriverMemory:
		return NewMemoryStore(), noop, nil
	default:
		return nil, noop, folioerrors.NewStorageError(opts.Driver, "open", fmt.Errorf("unknown driver %q", opts.Driver))
	}
}
