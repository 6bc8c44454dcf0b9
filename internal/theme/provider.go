// Package theme owns the light/dark/system preference: it loads and persists
// the user's choice, resolves "system" against the platform colour-scheme
// signal and tells subscribers whenever the effective theme changes.
package theme

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/jahasielva/folio/internal/logger"
	"github.com/jahasielva/folio/internal/prefstore"
	folioerrors "github.com/jahasielva/folio/pkg/errors"
)

// DefaultStorageKey is used when Options.StorageKey is empty.
const DefaultStorageKey = "theme-preference"

// Signal is the platform's "prefers dark" colour-scheme answer.
type Signal interface {
	PrefersDark() bool
	// Subscribe registers fn for changes and returns a function that
	// removes the registration.
	Subscribe(fn func(prefersDark bool)) (unsubscribe func())
}

// Listener receives the resolved theme after each state change.
type Listener func(Resolved)

// Options configures a Provider.
type Options struct {
	DefaultPreference Preference
	StorageKey        string
	// Store is optional; without it the preference lives in memory only.
	Store prefstore.Store
	// Signal is optional; without it "system" resolves to light.
	Signal Signal
	Logger *logger.Logger
}

type subscription struct {
	id uint64
	fn Listener
}

// Provider is the single source of truth for the active theme.
//
// Listeners run synchronously on the goroutine that caused the change, in
// registration order. A listener must not call SetPreference or Toggle
// synchronously; hand the work to another goroutine instead.
type Provider struct {
	store  prefstore.Store
	key    string
	signal Signal
	log    *logger.Logger

	mu          sync.Mutex
	preference  Preference
	prefersDark bool
	delivered   Resolved
	listeners   []subscription
	nextID      uint64

	// dispatchMu serialises state transitions with their notifications so
	// the last value a listener sees is always the current one.
	dispatchMu sync.Mutex

	unsubscribeSignal func()
	closeOnce         sync.Once
}

// New initialises a Provider from the stored preference. It never fails:
// a missing, unreadable or unrecognised stored value falls back to the
// default preference.
func New(ctx context.Context, opts Options) *Provider {
	defaultPref := opts.DefaultPreference
	if !defaultPref.Valid() {
		defaultPref = System
	}

	key := opts.StorageKey
	if key == "" {
		key = DefaultStorageKey
	}

	p := &Provider{
		store:      opts.Store,
		key:        key,
		signal:     opts.Signal,
		log:        opts.Logger.WithComponent("theme"),
		preference: defaultPref,
	}

	p.preference = p.loadPreference(ctx, defaultPref)

	// Subscribe before reading so a change in between is not lost.
	if p.signal != nil {
		p.unsubscribeSignal = p.signal.Subscribe(p.onSignal)
	}

	p.dispatchMu.Lock()
	p.mu.Lock()
	if p.signal != nil {
		p.prefersDark = p.signal.PrefersDark()
	}
	p.delivered = Resolve(p.preference, p.prefersDark)
	p.mu.Unlock()
	p.dispatchMu.Unlock()

	p.log.WithFields(map[string]any{
		"preference": p.preference.String(),
		"resolved":   p.delivered.String(),
		"key":        key,
	}).Debug("theme provider initialised")

	return p
}

func (p *Provider) loadPreference(ctx context.Context, fallback Preference) Preference {
	if p.store == nil {
		return fallback
	}

	raw, err := p.store.Load(ctx, p.key)
	switch {
	case errors.Is(err, prefstore.ErrNotFound):
		return fallback
	case err != nil:
		p.log.WarnErr(err, "failed to read stored theme preference, using default")
		return fallback
	}

	pref, ok := ParsePreference(raw)
	if !ok {
		p.log.WithFields(map[string]any{"key": p.key, "value": raw}).
			Warn("ignoring unrecognised stored theme preference")
		return fallback
	}
	return pref
}

// Preference returns the current intent.
func (p *Provider) Preference() Preference {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.preference
}

// Resolved returns the concrete theme in effect. It has no side effects.
func (p *Provider) Resolved() Resolved {
	p.mu.Lock()
	defer p.mu.Unlock()
	return Resolve(p.preference, p.prefersDark)
}

// StorageKey returns the key the preference is persisted under.
func (p *Provider) StorageKey() string {
	return p.key
}

// SetPreference records pref, persists it best-effort and notifies
// listeners. Values outside light/dark/system are rejected and change
// nothing. A failed write is logged; the in-memory value still changes.
func (p *Provider) SetPreference(ctx context.Context, pref Preference) error {
	if !pref.Valid() {
		return folioerrors.NewValidationError("preference",
			fmt.Sprintf("unknown theme preference %q (want light, dark or system)", string(pref)), nil)
	}

	p.dispatchMu.Lock()
	defer p.dispatchMu.Unlock()

	p.mu.Lock()
	changed := p.preference != pref
	p.preference = pref
	p.mu.Unlock()

	p.persist(ctx, pref)
	p.publish(changed)
	return nil
}

// Toggle pins the preference to the opposite of the currently resolved theme.
func (p *Provider) Toggle(ctx context.Context) error {
	return p.SetPreference(ctx, p.Resolved().Opposite().Preference())
}

func (p *Provider) persist(ctx context.Context, pref Preference) {
	if p.store == nil {
		return
	}
	if err := p.store.Save(ctx, p.key, pref.String()); err != nil {
		p.log.WarnErr(err, "failed to persist theme preference")
	}
}

// Subscribe registers l and returns the function that removes it.
func (p *Provider) Subscribe(l Listener) (unsubscribe func()) {
	if l == nil {
		return func() {}
	}

	p.mu.Lock()
	p.nextID++
	id := p.nextID
	p.listeners = append(p.listeners, subscription{id: id, fn: l})
	p.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			for i, s := range p.listeners {
				if s.id == id {
					p.listeners = append(p.listeners[:i:i], p.listeners[i+1:]...)
					return
				}
			}
		})
	}
}

func (p *Provider) onSignal(prefersDark bool) {
	p.dispatchMu.Lock()
	defer p.dispatchMu.Unlock()

	p.mu.Lock()
	p.prefersDark = prefersDark
	following := p.preference == System
	p.mu.Unlock()

	if !following {
		return
	}
	p.publish(false)
}

// publish delivers the current resolved theme when it differs from the last
// delivered one, or unconditionally when force is set. Callers hold dispatchMu.
func (p *Provider) publish(force bool) {
	p.mu.Lock()
	resolved := Resolve(p.preference, p.prefersDark)
	if !force && resolved == p.delivered {
		p.mu.Unlock()
		return
	}
	p.delivered = resolved
	listeners := make([]subscription, len(p.listeners))
	copy(listeners, p.listeners)
	p.mu.Unlock()

	for _, s := range listeners {
		s.fn(resolved)
	}
}

// Close releases the platform signal subscription. It is safe to call more
// than once.
func (p *Provider) Close() {
	p.closeOnce.Do(func() {
		if p.unsubscribeSignal != nil {
			p.unsubscribeSignal()
		}
	})
}
