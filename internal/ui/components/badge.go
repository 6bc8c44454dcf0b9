package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Badge is a small label such as a tag, status or category.
type Badge struct {
	BaseComponent
	text    string
	variant BadgeVariant
}

// BadgeVariant specifies the visual style of a badge.
type BadgeVariant int

const (
	BadgeVariantDefault BadgeVariant = iota
	BadgeVariantPrimary
	BadgeVariantOutline
	BadgeVariantSuccess
	BadgeVariantWarning
)

// NewBadge creates a new badge with the given text.
func NewBadge(text string) *Badge {
	return &Badge{
		BaseComponent: NewBaseComponent(),
		text:          text,
	}
}

func (b *Badge) View() string {
	return b.ViewWithContext(DefaultContext())
}

func (b *Badge) ViewWithContext(ctx RenderContext) string {
	return b.computeStyle(ctx.Theme).Render(b.text)
}

func (b *Badge) computeStyle(t Theme) lipgloss.Style {
	style := b.ComputeStyle(t)
	if strategy := t.Variants.Get(b.variant); strategy != nil {
		return strategy.Apply(style, t)
	}
	return style
}

// WithVariant sets the badge variant.
func (b *Badge) WithVariant(variant BadgeVariant) *Badge {
	b.variant = variant
	return b
}

// WithAppliers adds theme-based style modifiers.
func (b *Badge) WithAppliers(appliers ...StyleFunc) *Badge {
	b.AddAppliers(appliers...)
	return b
}

// Text returns the badge text.
func (b *Badge) Text() string {
	return b.text
}

// Variant returns the badge variant.
func (b *Badge) Variant() BadgeVariant {
	return b.variant
}

// StatusBadge picks a variant for a project status: finished work reads
// as success, ongoing work as warning.
func StatusBadge(status string) *Badge {
	switch status {
	case "Completed", "Live":
		return NewBadge(status).WithVariant(BadgeVariantSuccess)
	case "":
		return NewBadge(status)
	default:
		return NewBadge(status).WithVariant(BadgeVariantWarning)
	}
}

// BadgeRow renders badges on one line separated by a space.
func BadgeRow(ctx RenderContext, labels []string, variant BadgeVariant) string {
	views := make([]string, 0, len(labels)*2)
	for i, label := range labels {
		if i > 0 {
			views = append(views, " ")
		}
		views = append(views, NewBadge(label).WithVariant(variant).ViewWithContext(ctx))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}
