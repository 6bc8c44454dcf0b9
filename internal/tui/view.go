package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/jahasielva/folio/internal/theme"
	"github.com/jahasielva/folio/internal/ui/components"
)

// navBreakpoint is the width below which the nav collapses behind the menu
// key.
const navBreakpoint = 100

// View renders the current state of the model.
func (m *Model) View() string {
	ctx := components.ContextFor(m.resolved).WithWidth(m.width)

	if m.tooSmall {
		return components.WarningAlert(
			"Terminal too small",
			fmt.Sprintf("Current size %dx%d. Minimum size: %dx%d", m.width, m.height, minWidth, minHeight),
		).ViewWithContext(ctx.WithWidth(min(m.width, 50)))
	}

	body := m.viewport.View()
	if m.showMenu {
		body = m.menuView(ctx)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.headerView(ctx),
		body,
		m.helpView(ctx),
	)
}

func (m *Model) headerView(ctx components.RenderContext) string {
	p := m.portfolio.Profile
	brand := components.TitleText(p.Name).ViewWithContext(ctx) +
		components.AccentText(p.Brand).ViewWithContext(ctx)

	nav := components.MutedText("m menu").ViewWithContext(ctx)
	if m.width >= navBreakpoint {
		nav = m.nav.List(ctx)
	}
	toggle := m.themeSwitch.ViewWithContext(ctx)
	if m.theme.Preference() == theme.System {
		toggle += components.MutedText(" auto").ViewWithContext(ctx)
	}

	gap := max(1, m.width-lipgloss.Width(brand)-lipgloss.Width(nav)-lipgloss.Width(toggle)-2)
	left, right := gap/2, gap-gap/2
	line := brand + strings.Repeat(" ", left) + nav + strings.Repeat(" ", right) + toggle

	rule := components.HorizontalDivider().
		WithWidth(max(1, m.width)).
		WithAppliers(components.MutedForeground(components.PaletteNeutral)).
		ViewWithContext(ctx)
	return lipgloss.JoinVertical(lipgloss.Left, line, rule)
}

func (m *Model) menuView(ctx components.RenderContext) string {
	lines := make([]string, 0, len(m.portfolio.Nav))
	for i, link := range m.portfolio.Nav {
		label := fmt.Sprintf("%d  %s", i+1, link.Label)
		if link.Key == m.section {
			lines = append(lines, components.AccentText("▶ "+label).ViewWithContext(ctx))
		} else {
			lines = append(lines, components.BodyText("  "+label).ViewWithContext(ctx))
		}
	}

	card := components.NewCard(
		components.MutedText("Jump to a section, esc to close"),
	).WithTitle("Menu").WithHighlight(true)
	for _, line := range lines {
		card.Add(components.NewText(line))
	}

	return lipgloss.Place(m.width, m.viewport.Height, lipgloss.Center, lipgloss.Center,
		card.ViewWithContext(ctx.WithWidth(min(40, m.width))))
}

func (m *Model) helpView(ctx components.RenderContext) string {
	m.help.Styles = helpStyles(ctx.Theme)
	return m.help.View(m.keys)
}

// chromeHeight is the number of rows the header and help take.
func (m *Model) chromeHeight() int {
	ctx := components.ContextFor(m.resolved).WithWidth(m.width)
	return lipgloss.Height(m.headerView(ctx)) + lipgloss.Height(m.helpView(ctx))
}

func newViewport(width, height int) viewport.Model {
	vp := viewport.New(width, height)
	vp.MouseWheelEnabled = true
	vp.MouseWheelDelta = 3
	return vp
}

func helpStyles(th components.Theme) help.Styles {
	keyStyle := lipgloss.NewStyle().Foreground(th.Palette.Primary.Base).Bold(true)
	descStyle := lipgloss.NewStyle().Foreground(th.Palette.Neutral.Muted)
	return help.Styles{
		Ellipsis:       descStyle,
		ShortKey:       keyStyle,
		ShortDesc:      descStyle,
		ShortSeparator: descStyle,
		FullKey:        keyStyle,
		FullDesc:       descStyle,
		FullSeparator:  descStyle,
	}
}
