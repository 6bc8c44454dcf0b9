package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jahasielva/folio/internal/theme"
)

// Update handles Bubbletea messages and updates model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case themeChangedMsg:
		m.applyTheme(msg.Resolved)
		return m, waitForTheme(m.themeCh, m.done)

	case carouselTickMsg:
		if msg.seq != m.carouselSeq {
			return m, nil
		}
		m.sections.nextTestimonial()
		m.refreshIf(SectionTestimonials)
		return m, carouselTick(m.carouselInterval, m.carouselSeq)

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.MouseMsg:
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.tooSmall = width < minWidth || height < minHeight
	m.help.Width = width

	bodyHeight := max(1, height-m.chromeHeight())
	if !m.ready {
		m.viewport = newViewport(width, bodyHeight)
		m.ready = true
	} else {
		m.viewport.Width = width
		m.viewport.Height = bodyHeight
	}
	m.refreshContent()
}

// handleKeyPress handles keyboard input; the menu overlay takes keys first.
func (m *Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Quit) {
		m.Close()
		return m, tea.Quit
	}

	if m.showMenu {
		return m.handleMenuKeys(msg)
	}

	switch {
	case key.Matches(msg, m.keys.NextSection):
		m.nav.Next()

	case key.Matches(msg, m.keys.PrevSection):
		m.nav.Prev()

	case key.Matches(msg, m.keys.Jump):
		m.jump(msg.String())

	case key.Matches(msg, m.keys.Left):
		return m, m.step(-1)

	case key.Matches(msg, m.keys.Right):
		return m, m.step(1)

	case key.Matches(msg, m.keys.ToggleTheme):
		m.themeSwitch.Toggle()

	case key.Matches(msg, m.keys.SystemTheme):
		m.setPreference(theme.System)

	case key.Matches(msg, m.keys.Menu):
		m.showMenu = true

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		m.resize(m.width, m.height)

	case key.Matches(msg, m.keys.Scroll):
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *Model) handleMenuKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Menu), key.Matches(msg, m.keys.Close):
		m.showMenu = false
	case key.Matches(msg, m.keys.Jump):
		m.jump(msg.String())
		m.showMenu = false
	case key.Matches(msg, m.keys.NextSection):
		m.nav.Next()
	case key.Matches(msg, m.keys.PrevSection):
		m.nav.Prev()
	}
	return m, nil
}

// jump activates the nav key at the 1-based digit.
func (m *Model) jump(digit string) {
	var index int
	if _, err := fmt.Sscanf(digit, "%d", &index); err != nil {
		return
	}
	keys := m.nav.Keys()
	if index < 1 || index > len(keys) {
		return
	}
	m.nav.Activate(keys[index-1])
}

// step moves within the visible section: project categories or the
// testimonial carousel.
func (m *Model) step(delta int) tea.Cmd {
	switch m.section {
	case SectionProjects:
		if delta > 0 {
			m.sections.categories.Next()
		} else {
			m.sections.categories.Prev()
		}
		m.refreshContent()
		return nil

	case SectionTestimonials:
		if delta > 0 {
			m.sections.nextTestimonial()
		} else {
			m.sections.prevTestimonial()
		}
		m.refreshContent()
		m.carouselSeq++
		return carouselTick(m.carouselInterval, m.carouselSeq)
	}
	return nil
}

func (m *Model) refreshIf(section string) {
	if m.section == section {
		m.refreshContent()
	}
}
