// Package scheme answers "does the platform prefer a dark colour scheme?"
// and reports when that answer changes.
package scheme

import "sync"

type subscriber struct {
	id uint64
	fn func(bool)
}

// broadcaster fans a value out to subscribers in registration order.
type broadcaster struct {
	mu     sync.Mutex
	subs   []subscriber
	nextID uint64
}

func (b *broadcaster) subscribe(fn func(bool)) func() {
	if fn == nil {
		return func() {}
	}

	b.mu.Lock()
	b.nextID++
	id := b.nextID
	b.subs = append(b.subs, subscriber{id: id, fn: fn})
	b.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			b.mu.Lock()
			defer b.mu.Unlock()
			for i, s := range b.subs {
				if s.id == id {
					b.subs = append(b.subs[:i:i], b.subs[i+1:]...)
					return
				}
			}
		})
	}
}

func (b *broadcaster) broadcast(prefersDark bool) {
	b.mu.Lock()
	subs := make([]subscriber, len(b.subs))
	copy(subs, b.subs)
	b.mu.Unlock()

	for _, s := range subs {
		s.fn(prefersDark)
	}
}

func (b *broadcaster) count() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

// Manual is a signal whose answer is set explicitly. It backs the
// --scheme flag and tests.
type Manual struct {
	mu   sync.Mutex
	dark bool
	b    broadcaster
}

// NewManual returns a signal reporting prefersDark.
func NewManual(prefersDark bool) *Manual {
	return &Manual{dark: prefersDark}
}

func (m *Manual) PrefersDark() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.dark
}

// Set changes the answer and notifies subscribers if it differs.
func (m *Manual) Set(prefersDark bool) {
	m.mu.Lock()
	changed := m.dark != prefersDark
	m.dark = prefersDark
	m.mu.Unlock()

	if changed {
		m.b.broadcast(prefersDark)
	}
}

func (m *Manual) Subscribe(fn func(prefersDark bool)) func() {
	return m.b.subscribe(fn)
}

// Subscribers reports the number of live subscriptions.
func (m *Manual) Subscribers() int {
	return m.b.count()
}
