package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jahasielva/folio/internal/theme"
)

// themeChangedMsg carries a resolved theme delivered by the provider.
type themeChangedMsg struct {
	Resolved theme.Resolved
}

// carouselTickMsg advances the testimonial carousel. Ticks whose seq no
// longer matches the model's are stale and ignored.
type carouselTickMsg struct {
	seq int
}

// waitForTheme blocks until the provider delivers a theme or the program
// shuts down.
func waitForTheme(ch <-chan theme.Resolved, done <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		select {
		case resolved := <-ch:
			return themeChangedMsg{Resolved: resolved}
		case <-done:
			return nil
		}
	}
}

func carouselTick(interval time.Duration, seq int) tea.Cmd {
	if interval <= 0 {
		return nil
	}
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return carouselTickMsg{seq: seq}
	})
}
