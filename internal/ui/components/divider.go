package components

import (
	"strings"
)

// Divider renders a horizontal rule.
type Divider struct {
	BaseComponent
	char  string
	width int
	label string
}

// HorizontalDivider creates a thin rule sized to its context.
func HorizontalDivider() *Divider {
	return &Divider{
		BaseComponent: NewBaseComponent(),
		char:          "─",
	}
}

func (d *Divider) View() string {
	return d.ViewWithContext(DefaultContext())
}

func (d *Divider) ViewWithContext(ctx RenderContext) string {
	width := d.width
	if width <= 0 {
		width = ctx.Width(40)
	}

	if d.label == "" {
		return d.ComputeStyle(ctx.Theme).Render(strings.Repeat(d.char, width))
	}

	label := " " + d.label + " "
	side := (width - len([]rune(label))) / 2
	if side < 1 {
		side = 1
	}
	line := strings.Repeat(d.char, side) + label + strings.Repeat(d.char, side)
	return d.ComputeStyle(ctx.Theme).Render(line)
}

// WithChar sets the character used for the rule.
func (d *Divider) WithChar(char string) *Divider {
	if char != "" {
		d.char = char
	}
	return d
}

// WithWidth sets an explicit width.
func (d *Divider) WithWidth(width int) *Divider {
	d.width = width
	return d
}

// WithLabel centres a label in the rule.
func (d *Divider) WithLabel(label string) *Divider {
	d.label = label
	return d
}

// WithAppliers adds theme-based style modifiers.
func (d *Divider) WithAppliers(appliers ...StyleFunc) *Divider {
	d.AddAppliers(appliers...)
	return d
}
