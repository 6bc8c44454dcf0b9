package tui

import (
	"context"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jahasielva/folio/internal/content"
	"github.com/jahasielva/folio/internal/logger"
	"github.com/jahasielva/folio/internal/theme"
	"github.com/jahasielva/folio/internal/ui/components"
)

const (
	minWidth  = 60
	minHeight = 20
)

// ThemeSource is the part of the theme provider the program drives.
type ThemeSource interface {
	Preference() theme.Preference
	Resolved() theme.Resolved
	SetPreference(ctx context.Context, pref theme.Preference) error
	Subscribe(l theme.Listener) func()
}

// Options configures a Model.
type Options struct {
	Portfolio *content.Portfolio
	Theme     ThemeSource
	Logger    *logger.Logger
	// CarouselInterval advances testimonials automatically; zero disables it.
	CarouselInterval time.Duration
}

// Model is the Bubbletea state of the portfolio program.
type Model struct {
	ctx       context.Context
	portfolio *content.Portfolio
	theme     ThemeSource
	log       *logger.Logger

	// Theme delivery
	resolved    theme.Resolved
	themeCh     chan theme.Resolved
	done        chan struct{}
	unsubscribe func()
	closeOnce   sync.Once

	// Components
	nav         *components.Tabs
	themeSwitch *components.Switch
	sections    *sections

	// UI state
	section  string
	keys     keyMap
	help     help.Model
	viewport viewport.Model
	ready    bool
	showMenu bool

	carouselInterval time.Duration
	carouselSeq      int

	// Dimensions
	width    int
	height   int
	tooSmall bool
}

// New builds the program model and subscribes it to the theme source. Call
// Close when the program ends.
func New(ctx context.Context, opts Options) *Model {
	log := opts.Logger
	if log == nil {
		log = logger.Discard()
	}

	m := &Model{
		ctx:              ctx,
		portfolio:        opts.Portfolio,
		theme:            opts.Theme,
		log:              log.WithComponent("tui"),
		resolved:         opts.Theme.Resolved(),
		themeCh:          make(chan theme.Resolved, 1),
		done:             make(chan struct{}),
		sections:         newSections(opts.Portfolio),
		keys:             defaultKeyMap(),
		help:             help.New(),
		carouselInterval: opts.CarouselInterval,
		width:            80,
		height:           24,
	}

	keys := opts.Portfolio.NavKeys()
	if len(keys) > 0 {
		m.section = keys[0]
	}

	m.nav = components.NewTabs("").WithValue(m.section).WithGap(0).WithOnValueChange(m.setSection)
	for _, link := range opts.Portfolio.Nav {
		m.nav.Trigger(link.Key, link.Label)
	}

	m.themeSwitch = components.NewSwitch(m.resolved.IsDark()).
		WithLabels("☀", "☾").
		WithOnCheckedChange(m.requestDark)

	m.unsubscribe = opts.Theme.Subscribe(m.deliver)
	return m
}

// deliver runs on whichever goroutine changed the theme. It never blocks:
// a pending value is replaced by the newer one.
func (m *Model) deliver(resolved theme.Resolved) {
	select {
	case <-m.done:
		return
	default:
	}

	select {
	case m.themeCh <- resolved:
	default:
		select {
		case <-m.themeCh:
		default:
		}
		select {
		case m.themeCh <- resolved:
		default:
		}
	}
}

// Init starts theme delivery and the carousel.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		waitForTheme(m.themeCh, m.done),
		carouselTick(m.carouselInterval, m.carouselSeq),
	)
}

// Close unsubscribes from the theme source. It is safe to call more than
// once.
func (m *Model) Close() {
	m.closeOnce.Do(func() {
		close(m.done)
		if m.unsubscribe != nil {
			m.unsubscribe()
		}
	})
}

// Section returns the nav key of the visible section.
func (m *Model) Section() string {
	return m.section
}

// Resolved returns the theme the model currently draws with.
func (m *Model) Resolved() theme.Resolved {
	return m.resolved
}

// Category returns the selected project category.
func (m *Model) Category() string {
	return m.sections.categories.Value()
}

// Testimonial returns the carousel position.
func (m *Model) Testimonial() int {
	return m.sections.testimonial
}

// setSection is the nav tabs' change callback: the model owns the value
// and feeds it back.
func (m *Model) setSection(key string) {
	if key == m.section {
		return
	}
	m.section = key
	m.nav.SetValue(key)
	m.showMenu = false
	m.log.WithFields(map[string]any{"section": key}).Debug("section changed")
	m.refreshContent()
	m.viewport.GotoTop()
}

// requestDark is the theme switch's change callback.
func (m *Model) requestDark(dark bool) {
	pref := theme.Light
	if dark {
		pref = theme.Dark
	}
	m.setPreference(pref)
}

func (m *Model) setPreference(pref theme.Preference) {
	if err := m.theme.SetPreference(m.ctx, pref); err != nil {
		m.log.WarnErr(err, "failed to change theme preference")
		return
	}
	m.applyTheme(m.theme.Resolved())
}

func (m *Model) applyTheme(resolved theme.Resolved) {
	m.themeSwitch.SetChecked(resolved.IsDark())
	if resolved == m.resolved {
		return
	}
	m.resolved = resolved
	m.log.WithFields(map[string]any{"theme": resolved.String()}).Debug("theme applied")
	m.refreshContent()
}

func (m *Model) renderContext() components.RenderContext {
	return components.ContextFor(m.resolved).WithWidth(sectionWidth(m.width))
}

func (m *Model) refreshContent() {
	if !m.ready {
		return
	}
	ctx := m.renderContext()
	body := m.sections.render(ctx, m.section)
	m.viewport.SetContent(body + "\n\n" + m.sections.footer(ctx))
}
