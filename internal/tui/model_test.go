package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jahasielva/folio/internal/content"
	"github.com/jahasielva/folio/internal/prefstore"
	"github.com/jahasielva/folio/internal/scheme"
	"github.com/jahasielva/folio/internal/theme"
)

const testKey = "va-portfolio-theme"

type fixture struct {
	model    *Model
	provider *theme.Provider
	store    *prefstore.MemoryStore
	signal   *scheme.Manual
}

func newFixture(t *testing.T, pref theme.Preference, prefersDark bool) *fixture {
	t.Helper()

	portfolio, err := content.Load()
	require.NoError(t, err)

	store := prefstore.NewMemoryStore()
	signal := scheme.NewManual(prefersDark)
	provider := theme.New(context.Background(), theme.Options{
		DefaultPreference: pref,
		StorageKey:        testKey,
		Store:             store,
		Signal:            signal,
	})
	t.Cleanup(provider.Close)

	m := New(context.Background(), Options{
		Portfolio:        portfolio,
		Theme:            provider,
		CarouselInterval: time.Second,
	})
	t.Cleanup(m.Close)

	m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return &fixture{model: m, provider: provider, store: store, signal: signal}
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func sectionText(m *Model) string {
	return m.sections.render(m.renderContext(), m.section)
}

func TestNewStartsOnFirstSection(t *testing.T) {
	f := newFixture(t, theme.Light, false)

	assert.Equal(t, SectionHome, f.model.Section())
	assert.Equal(t, theme.ResolvedLight, f.model.Resolved())
	assert.Equal(t, content.AllCategory, f.model.Category())
	assert.False(t, f.model.themeSwitch.Checked())
}

func TestToggleKeyPinsOppositeTheme(t *testing.T) {
	f := newFixture(t, theme.System, false)

	f.model.Update(runes("t"))

	assert.Equal(t, theme.Dark, f.provider.Preference())
	assert.Equal(t, theme.ResolvedDark, f.model.Resolved())
	assert.True(t, f.model.themeSwitch.Checked())

	stored, err := f.store.Load(context.Background(), testKey)
	require.NoError(t, err)
	assert.Equal(t, "dark", stored)

	f.model.Update(runes("t"))
	assert.Equal(t, theme.Light, f.provider.Preference())
	assert.Equal(t, theme.ResolvedLight, f.model.Resolved())
}

func TestSystemKeyFollowsSignal(t *testing.T) {
	f := newFixture(t, theme.Light, true)
	require.Equal(t, theme.ResolvedLight, f.model.Resolved())

	f.model.Update(runes("s"))

	assert.Equal(t, theme.System, f.provider.Preference())
	assert.Equal(t, theme.ResolvedDark, f.model.Resolved())
}

func TestSignalChangeReachesModelThroughCommand(t *testing.T) {
	f := newFixture(t, theme.System, false)

	f.signal.Set(true)

	msg := waitForTheme(f.model.themeCh, f.model.done)()
	require.Equal(t, themeChangedMsg{Resolved: theme.ResolvedDark}, msg)

	_, cmd := f.model.Update(msg)
	assert.NotNil(t, cmd)
	assert.Equal(t, theme.ResolvedDark, f.model.Resolved())
	assert.True(t, f.model.themeSwitch.Checked())
}

func TestDeliverKeepsOnlyLatestTheme(t *testing.T) {
	f := newFixture(t, theme.System, false)

	f.model.deliver(theme.ResolvedDark)
	f.model.deliver(theme.ResolvedLight)

	assert.Len(t, f.model.themeCh, 1)
	assert.Equal(t, theme.ResolvedLight, <-f.model.themeCh)
}

func TestTabCyclesSections(t *testing.T) {
	f := newFixture(t, theme.Light, false)

	f.model.Update(tea.KeyMsg{Type: tea.KeyTab})
	assert.Equal(t, SectionAbout, f.model.Section())

	f.model.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	f.model.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	assert.Equal(t, SectionContact, f.model.Section())
}

func TestDigitJumpsToSection(t *testing.T) {
	f := newFixture(t, theme.Light, false)

	f.model.Update(runes("4"))
	assert.Equal(t, SectionProjects, f.model.Section())
	assert.True(t, f.model.nav.IsActive(SectionProjects))

	f.model.Update(runes("7"))
	assert.Equal(t, SectionContact, f.model.Section())
}

func TestMenuJumpClosesMenu(t *testing.T) {
	f := newFixture(t, theme.Light, false)

	f.model.Update(runes("m"))
	require.True(t, f.model.showMenu)
	assert.Contains(t, f.model.View(), "Menu")

	f.model.Update(runes("3"))
	assert.Equal(t, SectionSkills, f.model.Section())
	assert.False(t, f.model.showMenu)

	f.model.Update(runes("m"))
	f.model.Update(tea.KeyMsg{Type: tea.KeyEsc})
	assert.False(t, f.model.showMenu)
	assert.Equal(t, SectionSkills, f.model.Section())
}

func TestProjectCategoryFilter(t *testing.T) {
	f := newFixture(t, theme.Light, false)
	f.model.Update(runes("4"))

	all := sectionText(f.model)
	assert.Contains(t, all, "PowerPoint")
	assert.Contains(t, all, "Notion")

	f.model.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, "automation", f.model.Category())

	automation := sectionText(f.model)
	assert.Contains(t, automation, "TypeScript")
	assert.NotContains(t, automation, "PowerPoint")
	assert.NotContains(t, automation, "Notion")

	f.model.Update(tea.KeyMsg{Type: tea.KeyLeft})
	f.model.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.Equal(t, "admin", f.model.Category())
}

func TestLeftRightOutsideProjectsLeaveCategory(t *testing.T) {
	f := newFixture(t, theme.Light, false)

	f.model.Update(tea.KeyMsg{Type: tea.KeyRight})

	assert.Equal(t, content.AllCategory, f.model.Category())
	assert.Equal(t, 0, f.model.Testimonial())
}

func TestCarouselStepsAndWraps(t *testing.T) {
	f := newFixture(t, theme.Light, false)
	f.model.Update(runes("6"))

	_, cmd := f.model.Update(tea.KeyMsg{Type: tea.KeyLeft})
	assert.NotNil(t, cmd)
	assert.Equal(t, 3, f.model.Testimonial())

	f.model.Update(tea.KeyMsg{Type: tea.KeyRight})
	assert.Equal(t, 0, f.model.Testimonial())
	assert.Contains(t, sectionText(f.model), "●")
}

func TestCarouselIgnoresStaleTick(t *testing.T) {
	f := newFixture(t, theme.Light, false)
	f.model.Update(runes("6"))

	stale := carouselTickMsg{seq: f.model.carouselSeq}
	f.model.Update(tea.KeyMsg{Type: tea.KeyRight})
	require.Equal(t, 1, f.model.Testimonial())

	_, cmd := f.model.Update(stale)
	assert.Nil(t, cmd)
	assert.Equal(t, 1, f.model.Testimonial())

	_, cmd = f.model.Update(carouselTickMsg{seq: f.model.carouselSeq})
	assert.NotNil(t, cmd)
	assert.Equal(t, 2, f.model.Testimonial())
}

func TestCarouselDisabledWithoutInterval(t *testing.T) {
	assert.Nil(t, carouselTick(0, 1))
	assert.NotNil(t, carouselTick(time.Second, 1))
}

func TestViewShowsHeaderAndSection(t *testing.T) {
	f := newFixture(t, theme.Light, false)

	view := f.model.View()
	assert.Contains(t, view, "Jahasiel")
	assert.Contains(t, view, "About")
	assert.Contains(t, f.model.viewport.View(), "Hi, I'm")
}

func TestViewWarnsWhenTerminalTooSmall(t *testing.T) {
	f := newFixture(t, theme.Light, false)

	f.model.Update(tea.WindowSizeMsg{Width: 40, Height: 12})

	view := f.model.View()
	assert.Contains(t, view, "Terminal too small")
	assert.Contains(t, view, "40x12")
}

func TestNarrowHeaderCollapsesNav(t *testing.T) {
	f := newFixture(t, theme.Light, false)

	f.model.Update(tea.WindowSizeMsg{Width: 70, Height: 30})

	header := strings.Split(f.model.View(), "\n")[0]
	assert.Contains(t, header, "m menu")
	assert.NotContains(t, header, "Testimonials")
}

func TestQuitClosesModel(t *testing.T) {
	f := newFixture(t, theme.System, false)

	_, cmd := f.model.Update(runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())

	assert.Nil(t, waitForTheme(f.model.themeCh, f.model.done)())

	f.signal.Set(true)
	assert.Empty(t, f.model.themeCh)
	f.model.Close()
}
