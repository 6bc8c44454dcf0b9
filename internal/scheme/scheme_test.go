package scheme

import (
	"context"
	"errors"
	"os/exec"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeDetector struct {
	name string
	mu   sync.Mutex
	dark bool
	ok   bool
}

func (f *fakeDetector) Name() string { return f.name }

func (f *fakeDetector) Detect(context.Context) (bool, bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.dark, f.ok
}

func (f *fakeDetector) set(dark bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.dark = dark
	f.ok = true
}

func TestManualNotifiesOnlyOnChange(t *testing.T) {
	t.Parallel()

	m := NewManual(false)
	var got []bool
	unsubscribe := m.Subscribe(func(dark bool) { got = append(got, dark) })

	m.Set(false)
	m.Set(true)
	m.Set(true)
	m.Set(false)

	assert.Equal(t, []bool{true, false}, got)
	assert.False(t, m.PrefersDark())

	unsubscribe()
	unsubscribe()
	m.Set(true)
	assert.Len(t, got, 2)
	assert.Equal(t, 0, m.Subscribers())
}

func TestManualDeliversInRegistrationOrder(t *testing.T) {
	t.Parallel()

	m := NewManual(false)
	var order []string
	m.Subscribe(func(bool) { order = append(order, "first") })
	m.Subscribe(func(bool) { order = append(order, "second") })
	m.Subscribe(func(bool) { order = append(order, "third") })

	m.Set(true)
	assert.Equal(t, []string{"first", "second", "third"}, order)
}

func TestEnvDetector(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		value    string
		set      bool
		wantDark bool
		wantOK   bool
	}{
		{name: "unset", set: false},
		{name: "dark", value: "dark", set: true, wantDark: true, wantOK: true},
		{name: "light mixed case", value: " Light ", set: true, wantOK: true},
		{name: "garbage", value: "sepia", set: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			d := EnvDetector{Var: "TEST_SCHEME", Lookup: func(name string) (string, bool) {
				require.Equal(t, "TEST_SCHEME", name)
				return tt.value, tt.set
			}}
			dark, ok := d.Detect(context.Background())
			assert.Equal(t, tt.wantDark, dark)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestOSDetector(t *testing.T) {
	t.Parallel()

	reply := func(out string, err error) CommandRunner {
		return func(context.Context, string, ...string) ([]byte, error) {
			return []byte(out), err
		}
	}

	tests := []struct {
		name     string
		goos     string
		run      CommandRunner
		wantDark bool
		wantOK   bool
	}{
		{name: "gnome dark", goos: "linux", run: reply("'prefer-dark'\n", nil), wantDark: true, wantOK: true},
		{name: "gnome default", goos: "linux", run: reply("'default'\n", nil), wantOK: true},
		{name: "gnome missing", goos: "linux", run: reply("", exec.ErrNotFound)},
		{name: "macos dark", goos: "darwin", run: reply("Dark\n", nil), wantDark: true, wantOK: true},
		{name: "macos light", goos: "darwin", run: reply("", &exec.ExitError{}), wantOK: true},
		{name: "macos no defaults", goos: "darwin", run: reply("", errors.New("boom"))},
		{name: "windows dark", goos: "windows", run: reply("AppsUseLightTheme    REG_DWORD    0x0", nil), wantDark: true, wantOK: true},
		{name: "windows light", goos: "windows", run: reply("AppsUseLightTheme    REG_DWORD    0x1", nil), wantOK: true},
		{name: "unsupported", goos: "plan9", run: reply("dark", nil)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			dark, ok := OSDetector{GOOS: tt.goos, Run: tt.run}.Detect(context.Background())
			assert.Equal(t, tt.wantDark, dark)
			assert.Equal(t, tt.wantOK, ok)
		})
	}
}

func TestResolveUsesFirstAnsweringDetector(t *testing.T) {
	t.Parallel()

	silent := &fakeDetector{name: "silent"}
	light := &fakeDetector{name: "light", ok: true}
	dark := &fakeDetector{name: "dark", dark: true, ok: true}

	prefersDark, source := Resolve(context.Background(), silent, nil, light, dark)
	assert.False(t, prefersDark)
	assert.Equal(t, "light", source)

	prefersDark, source = Resolve(context.Background(), silent)
	assert.True(t, prefersDark)
	assert.Equal(t, "fallback", source)
}

func TestDetectorsChain(t *testing.T) {
	t.Parallel()

	chain := Detectors(DetectorOptions{EnvVar: "X", QueryOS: true, QueryTerminal: true})
	require.Len(t, chain, 3)
	assert.Equal(t, "env", chain[0].Name())
	assert.Equal(t, "os", chain[1].Name())
	assert.Equal(t, "terminal", chain[2].Name())

	assert.Len(t, Detectors(DetectorOptions{}), 1)
}

func TestWatcherRefreshNotifiesOnChange(t *testing.T) {
	t.Parallel()

	det := &fakeDetector{name: "fake", ok: true}
	w := NewWatcher(context.Background(), WatcherOptions{Detectors: []Detector{det}})
	require.False(t, w.PrefersDark())
	require.Equal(t, "fake", w.Source())

	var got []bool
	w.Subscribe(func(dark bool) { got = append(got, dark) })

	assert.False(t, w.Refresh(context.Background()))
	det.set(true)
	assert.True(t, w.Refresh(context.Background()))
	assert.False(t, w.Refresh(context.Background()))
	assert.Equal(t, []bool{true}, got)
	assert.True(t, w.PrefersDark())
}

func TestWatcherPollsUntilStopped(t *testing.T) {
	t.Parallel()

	det := &fakeDetector{name: "fake", ok: true}
	w := NewWatcher(context.Background(), WatcherOptions{
		Detectors: []Detector{det},
		Interval:  5 * time.Millisecond,
	})

	changes := make(chan bool, 4)
	w.Subscribe(func(dark bool) { changes <- dark })

	w.Start(context.Background())
	w.Start(context.Background())
	det.set(true)

	select {
	case dark := <-changes:
		assert.True(t, dark)
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not report the change")
	}

	w.Stop()
	w.Stop()
	det.set(false)
	time.Sleep(20 * time.Millisecond)
	assert.Empty(t, changes)
}
