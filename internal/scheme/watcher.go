package scheme

import (
	"context"
	"sync"
	"time"

	"github.com/jahasielva/folio/internal/logger"
)

// DefaultPollInterval is used when WatcherOptions.Interval is zero.
const DefaultPollInterval = 5 * time.Second

// WatcherOptions configures a Watcher.
type WatcherOptions struct {
	Detectors []Detector
	Interval  time.Duration
	Logger    *logger.Logger
}

// Watcher polls a detector chain and notifies subscribers when the answer
// changes.
type Watcher struct {
	detectors []Detector
	interval  time.Duration
	log       *logger.Logger

	mu     sync.Mutex
	dark   bool
	source string
	b      broadcaster

	runMu  sync.Mutex
	cancel context.CancelFunc
	done   chan struct{}
}

// NewWatcher performs an initial detection so PrefersDark is meaningful
// before Start is called.
func NewWatcher(ctx context.Context, opts WatcherOptions) *Watcher {
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultPollInterval
	}

	w := &Watcher{
		detectors: opts.Detectors,
		interval:  interval,
		log:       opts.Logger.WithComponent("scheme"),
	}
	w.dark, w.source = Resolve(ctx, w.detectors...)

	w.log.WithFields(map[string]any{"prefers_dark": w.dark, "source": w.source}).
		Debug("detected colour scheme")
	return w
}

func (w *Watcher) PrefersDark() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.dark
}

// Source names the detector behind the current answer.
func (w *Watcher) Source() string {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.source
}

func (w *Watcher) Subscribe(fn func(prefersDark bool)) func() {
	return w.b.subscribe(fn)
}

// Refresh re-runs detection and notifies subscribers if the answer changed.
func (w *Watcher) Refresh(ctx context.Context) bool {
	dark, source := Resolve(ctx, w.detectors...)

	w.mu.Lock()
	changed := dark != w.dark
	w.dark = dark
	w.source = source
	w.mu.Unlock()

	if changed {
		w.log.WithFields(map[string]any{"prefers_dark": dark, "source": source}).
			Info("colour scheme changed")
		w.b.broadcast(dark)
	}
	return changed
}

// Start polls in the background until ctx is done or Stop is called.
// Calling Start on a running watcher does nothing.
func (w *Watcher) Start(ctx context.Context) {
	w.runMu.Lock()
	defer w.runMu.Unlock()

	if w.cancel != nil {
		return
	}

	ctx, cancel := context.WithCancel(ctx)
	w.cancel = cancel
	w.done = make(chan struct{})

	go func(done chan struct{}) {
		defer close(done)
		ticker := time.NewTicker(w.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				w.Refresh(ctx)
			}
		}
	}(w.done)
}

// Stop ends polling and waits for the poller to exit.
func (w *Watcher) Stop() {
	w.runMu.Lock()
	cancel, done := w.cancel, w.done
	w.cancel, w.done = nil, nil
	w.runMu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done
}
