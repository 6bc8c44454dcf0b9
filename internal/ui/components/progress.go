package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const defaultProgressWidth = 20

// Progress draws a horizontal bar for value out of max.
type Progress struct {
	BaseComponent
	value     float64
	max       float64
	width     int
	showValue bool
}

// NewProgress creates a bar for value out of 100.
func NewProgress(value float64) *Progress {
	return &Progress{
		BaseComponent: NewBaseComponent(),
		value:         value,
		max:           100,
	}
}

// WithMax sets the value that fills the bar. Non-positive values mean 100.
func (p *Progress) WithMax(limit float64) *Progress {
	p.max = limit
	return p
}

// WithWidth sets the bar width in cells.
func (p *Progress) WithWidth(width int) *Progress {
	p.width = width
	return p
}

// WithShowValue appends the percentage after the bar.
func (p *Progress) WithShowValue(show bool) *Progress {
	p.showValue = show
	return p
}

// Percent is value/max as a percentage clamped to [0, 100].
func (p *Progress) Percent() float64 {
	limit := p.max
	if limit <= 0 {
		limit = 100
	}
	pct := p.value / limit * 100
	switch {
	case pct < 0:
		return 0
	case pct > 100:
		return 100
	default:
		return pct
	}
}

func (p *Progress) View() string {
	return p.ViewWithContext(DefaultContext())
}

func (p *Progress) ViewWithContext(ctx RenderContext) string {
	width := p.width
	if width <= 0 {
		width = ctx.Width(defaultProgressWidth)
		if p.showValue {
			width -= 5
		}
	}
	if width < 1 {
		width = 1
	}

	pct := p.Percent()
	filled := int(pct/100*float64(width) + 0.5)

	palette := ctx.Theme.Palette
	bar := lipgloss.NewStyle().Foreground(palette.Primary.Base).Render(strings.Repeat("█", filled)) +
		lipgloss.NewStyle().Foreground(palette.Primary.Muted).Render(strings.Repeat("░", width-filled))

	if p.showValue {
		bar += TypographyStyle(ctx.Theme, TypographyVariantMuted).Render(fmt.Sprintf(" %3.0f%%", pct))
	}
	return p.ComputeStyle(ctx.Theme).Render(bar)
}
