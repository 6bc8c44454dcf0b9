package components

import (
	"github.com/charmbracelet/lipgloss"
)

// AlertVariant specifies the tone of an alert.
type AlertVariant int

const (
	AlertVariantInfo AlertVariant = iota
	AlertVariantSuccess
	AlertVariantWarning
	AlertVariantError
)

// Alert is a bordered notice with an icon, an optional title and a message.
type Alert struct {
	BaseComponent
	title   string
	message string
	variant AlertVariant
}

// NewAlert creates an informational alert.
func NewAlert(message string) *Alert {
	return &Alert{
		BaseComponent: NewBaseComponent(),
		message:       message,
	}
}

func (a *Alert) View() string {
	return a.ViewWithContext(DefaultContext())
}

func (a *Alert) ViewWithContext(ctx RenderContext) string {
	slot, icon := a.tone()
	colour := slot(ctx.Theme.Palette).Base

	style := a.ComputeStyle(ctx.Theme).
		Border(ctx.Theme.Borders.Rounded).
		BorderForeground(colour).
		Padding(0, 1)
	if width := ctx.Width(0); width > 0 {
		style = style.Width(width - style.GetHorizontalBorderSize())
	}

	head := lipgloss.NewStyle().Foreground(colour).Bold(true).Render(icon)
	if a.title != "" {
		head += " " + lipgloss.NewStyle().Foreground(colour).Bold(true).Render(a.title)
	}
	body := TypographyStyle(ctx.Theme, TypographyVariantBody).Render(a.message)

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, head, body))
}

func (a *Alert) tone() (PaletteSlot, string) {
	switch a.variant {
	case AlertVariantSuccess:
		return PaletteSuccess, "✓"
	case AlertVariantWarning:
		return PaletteWarning, "!"
	case AlertVariantError:
		return PaletteDanger, "✗"
	default:
		return PalettePrimary, "i"
	}
}

// WithTitle sets the alert title.
func (a *Alert) WithTitle(title string) *Alert {
	a.title = title
	return a
}

// WithVariant sets the alert tone.
func (a *Alert) WithVariant(variant AlertVariant) *Alert {
	a.variant = variant
	return a
}

// WarningAlert creates a warning alert.
func WarningAlert(title, message string) *Alert {
	return NewAlert(message).WithTitle(title).WithVariant(AlertVariantWarning)
}
