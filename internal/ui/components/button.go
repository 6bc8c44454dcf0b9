package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Button is a focusable call to action. Pressing it runs its handler.
type Button struct {
	BaseComponent
	label    string
	hint     string
	variant  ButtonVariant
	focused  bool
	disabled bool
	onPress  func()
}

// NewButton creates a primary button with the given label.
func NewButton(label string) *Button {
	return &Button{
		BaseComponent: NewBaseComponent(),
		label:         label,
		variant:       ButtonVariantPrimary,
	}
}

func (b *Button) View() string {
	return b.ViewWithContext(DefaultContext())
}

func (b *Button) ViewWithContext(ctx RenderContext) string {
	label := b.label
	if b.hint != "" {
		label += " " + b.hint
	}
	return b.computeStyle(ctx.Theme).Render(label)
}

func (b *Button) computeStyle(t Theme) lipgloss.Style {
	style := b.ComputeStyle(t)
	if strategy := t.Variants.Get(b.variant); strategy != nil {
		style = strategy.Apply(style, t)
	}
	if b.disabled {
		style = style.Faint(true)
	}
	if b.focused {
		style = style.Underline(true)
	}
	return style
}

// Press runs the handler unless the button is disabled.
func (b *Button) Press() {
	if b.disabled || b.onPress == nil {
		return
	}
	b.onPress()
}

// WithOnPress sets the handler run by Press.
func (b *Button) WithOnPress(fn func()) *Button {
	b.onPress = fn
	return b
}

// WithVariant sets the button variant.
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.variant = variant
	return b
}

// WithHint appends a short hint, usually the key that presses the button.
func (b *Button) WithHint(hint string) *Button {
	b.hint = hint
	return b
}

// WithFocused marks the button as the keyboard target.
func (b *Button) WithFocused(focused bool) *Button {
	b.focused = focused
	return b
}

// WithDisabled sets the disabled state.
func (b *Button) WithDisabled(disabled bool) *Button {
	b.disabled = disabled
	return b
}

// Label returns the button label.
func (b *Button) Label() string {
	return b.label
}

// OutlineButton creates an outline button.
func OutlineButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantOutline)
}

// GhostButton creates a borderless, low-emphasis button.
func GhostButton(label string) *Button {
	return NewButton(label).WithVariant(ButtonVariantGhost)
}
