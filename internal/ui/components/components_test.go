package components

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jahasielva/folio/internal/theme"
	"github.com/jahasielva/folio/internal/ui"
)

func TestThemeForResolvedMode(t *testing.T) {
	light := ThemeFor(theme.ResolvedLight)
	dark := ThemeFor(theme.ResolvedDark)

	assert.False(t, light.IsDark())
	assert.True(t, dark.IsDark())
	assert.NotEqual(t, light.Palette.Surface.Base, dark.Palette.Surface.Base)
	assert.Equal(t, LightTheme(), DefaultTheme())
	assert.Equal(t, lipgloss.RoundedBorder(), dark.Borders.Rounded)
	assert.True(t, dark.Typography.Title.GetBold())

	for _, th := range []Theme{light, dark} {
		assert.NotNil(t, th.Variants.Get(ButtonVariantPrimary))
		assert.NotNil(t, th.Variants.Get(BadgeVariantSuccess))
	}
}

func TestContextFor(t *testing.T) {
	ctx := ContextFor(theme.ResolvedDark).WithWidth(60)
	assert.True(t, ctx.Theme.IsDark())
	assert.Equal(t, 60, ctx.Width(10))
	assert.Equal(t, 10, DefaultContext().Width(10))
}

func TestProgressPercentClamps(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		max   float64
		want  float64
	}{
		{name: "half", value: 50, max: 100, want: 50},
		{name: "custom max", value: 3, max: 4, want: 75},
		{name: "negative", value: -10, max: 100, want: 0},
		{name: "overflow", value: 150, max: 100, want: 100},
		{name: "zero max falls back to 100", value: 40, max: 0, want: 40},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, NewProgress(tt.value).WithMax(tt.max).Percent(), 0.0001)
		})
	}
}

func TestProgressBarWidth(t *testing.T) {
	view := NewProgress(50).WithWidth(10).View()
	assert.Equal(t, 5, strings.Count(view, "█"))
	assert.Equal(t, 5, strings.Count(view, "░"))

	full := NewProgress(100).WithWidth(8).WithShowValue(true).View()
	assert.Equal(t, 8, strings.Count(full, "█"))
	assert.Contains(t, full, "100%")
}

func TestCardRendersTitleBodyAndFooter(t *testing.T) {
	card := NewCard(NewText("Streamlined inbox triage")).
		WithTitle("Email Automation").
		WithFooter(NewText("Completed"))

	view := card.ViewWithContext(DefaultContext().WithWidth(40))
	assert.Contains(t, view, "Email Automation")
	assert.Contains(t, view, "Streamlined inbox triage")
	assert.Contains(t, view, "Completed")
	assert.Contains(t, view, "╭")

	for _, line := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, lipgloss.Width(line), 40)
	}
}

func TestStackSkipsEmptyChildren(t *testing.T) {
	stack := VStack(NewText("one"), ui.RenderFunc(func() string { return "" }), nil, NewText("two"))
	assert.Equal(t, "one\ntwo", stack.View())

	gapped := VStack(NewText("one"), NewText("two")).WithGap(1)
	assert.Equal(t, 3, len(strings.Split(gapped.View(), "\n")))

	row := HStack(NewText("a"), NewText("b")).WithGap(2)
	assert.Equal(t, "a  b", row.View())

	assert.Empty(t, VStack().View())
}

func TestBadgeVariants(t *testing.T) {
	assert.Equal(t, BadgeVariantSuccess, StatusBadge("Completed").Variant())
	assert.Equal(t, BadgeVariantSuccess, StatusBadge("Live").Variant())
	assert.Equal(t, BadgeVariantWarning, StatusBadge("In Progress").Variant())
	assert.Contains(t, NewBadge("Excel").View(), "Excel")

	row := BadgeRow(DefaultContext(), []string{"Excel", "Zapier"}, BadgeVariantOutline)
	assert.Contains(t, row, "Excel")
	assert.Contains(t, row, "Zapier")
}

func TestButtonPress(t *testing.T) {
	pressed := 0
	button := NewButton("Get In Touch").WithHint("[c]").WithOnPress(func() { pressed++ })

	button.Press()
	assert.Equal(t, 1, pressed)
	assert.Contains(t, button.View(), "Get In Touch [c]")

	button.WithDisabled(true).Press()
	assert.Equal(t, 1, pressed)
	assert.NotPanics(t, func() { OutlineButton("View My Work").Press() })
}

func TestHeaderAndDivider(t *testing.T) {
	header := NewHeader("Skills").WithEyebrow("What I Do").WithSubtitle("Tools of the trade")
	view := header.View()
	require.Contains(t, view, "What I Do")
	assert.Contains(t, view, "Skills")
	assert.Contains(t, view, "Tools of the trade")

	assert.Equal(t, strings.Repeat("─", 12), HorizontalDivider().WithWidth(12).View())
	assert.Contains(t, HorizontalDivider().WithWidth(20).WithLabel("or").View(), " or ")
}

func TestAlertIncludesTitleAndMessage(t *testing.T) {
	view := WarningAlert("Terminal too small", "Resize to at least 60x20").View()
	assert.Contains(t, view, "Terminal too small")
	assert.Contains(t, view, "Resize to at least 60x20")
	assert.Contains(t, view, "!")
}

func TestAddAppliersPreservesCustomStrategy(t *testing.T) {
	text := NewText("x")
	text.SetStrategy(customStrategy{})
	text.WithAppliers(Bold())

	style := text.ComputeStyle(DefaultTheme())
	assert.True(t, style.GetItalic(), "custom strategy still applied")
	assert.True(t, style.GetBold())
}

type customStrategy struct{}

func (customStrategy) Apply(base lipgloss.Style, _ Theme) lipgloss.Style {
	return base.Italic(true)
}
