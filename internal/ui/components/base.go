package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jahasielva/folio/internal/theme"
	"github.com/jahasielva/folio/internal/ui"
)

// BaseComponent carries the raw style and the theme-aware strategy every
// component shares. Embed it in component structs.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
}

// StyleStrategy turns a base style into the final style for a theme.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc applies theme data to a lipgloss.Style.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// CompositeStrategy applies multiple StyleFunc in sequence.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// NewCompositeStrategy creates a strategy from multiple style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// NewBaseComponent creates a base component with an empty style.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle returns the component style for theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, theme)
}

// SetStyle replaces the raw lipgloss style.
func (b *BaseComponent) SetStyle(style lipgloss.Style) {
	b.style = style
}

// SetStrategy replaces the style strategy.
func (b *BaseComponent) SetStrategy(strategy StyleStrategy) {
	b.strategy = strategy
}

// SetAppliers sets the style strategy from style functions.
func (b *BaseComponent) SetAppliers(appliers ...StyleFunc) {
	b.strategy = NewCompositeStrategy(appliers...)
}

// AddAppliers appends appliers after whatever strategy is already set.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	if existing, ok := b.strategy.(CompositeStrategy); ok {
		funcs := make([]StyleFunc, len(existing.funcs), len(existing.funcs)+len(appliers))
		copy(funcs, existing.funcs)
		b.strategy = CompositeStrategy{funcs: append(funcs, appliers...)}
		return
	}

	current := b.strategy
	b.strategy = NewCompositeStrategy(func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if current != nil {
			base = current.Apply(base, theme)
		}
		for _, applier := range appliers {
			base = applier(base, theme)
		}
		return base
	})
}

// Spacing is padding or margin in top, right, bottom, left order.
type Spacing struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// UniformSpacing creates spacing with the same value on all sides.
func UniformSpacing(size int) Spacing {
	return Spacing{Top: size, Right: size, Bottom: size, Left: size}
}

// SymmetricSpacing creates spacing with different vertical and horizontal values.
func SymmetricSpacing(vertical, horizontal int) Spacing {
	return Spacing{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// IsZero returns true if all spacing values are zero.
func (s Spacing) IsZero() bool {
	return s.Top == 0 && s.Right == 0 && s.Bottom == 0 && s.Left == 0
}

// Horizontal returns left + right.
func (s Spacing) Horizontal() int {
	return s.Left + s.Right
}

// Constraints bounds the space a component may use. -1 means unlimited.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{MaxWidth: -1, MaxHeight: -1}
}

// WithMaxWidth creates constraints with a maximum width.
func WithMaxWidth(maxWidth int) Constraints {
	return Constraints{MaxWidth: maxWidth, MaxHeight: -1}
}

// HasWidth returns true if there's a width constraint.
func (c Constraints) HasWidth() bool {
	return c.MinWidth > 0 || c.MaxWidth >= 0
}

// RenderContext is what a component needs to know to draw itself: the theme
// for the resolved light/dark mode and the space it has.
type RenderContext struct {
	Theme       Theme
	Constraints Constraints
	ParentWidth int
}

// DefaultContext renders with the light theme and no constraints.
func DefaultContext() RenderContext {
	return RenderContext{
		Theme:       DefaultTheme(),
		Constraints: Unconstrained(),
	}
}

// ContextFor returns an unconstrained context for the resolved theme.
func ContextFor(resolved theme.Resolved) RenderContext {
	return DefaultContext().WithTheme(ThemeFor(resolved))
}

// WithTheme returns a new context with the specified theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithConstraints returns a new context with the given constraints.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// WithWidth bounds the context to width columns.
func (r RenderContext) WithWidth(width int) RenderContext {
	r.Constraints = WithMaxWidth(width)
	r.ParentWidth = width
	return r
}

// Width returns the usable width, or fallback when nothing bounds it.
func (r RenderContext) Width(fallback int) int {
	if r.Constraints.MaxWidth > 0 {
		return r.Constraints.MaxWidth
	}
	if r.ParentWidth > 0 {
		return r.ParentWidth
	}
	return fallback
}

// ContextualRenderable is a component that renders against a RenderContext.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// render draws child with ctx when it supports it.
func render(child ui.Renderable, ctx RenderContext) string {
	if child == nil {
		return ""
	}
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}

// CrossAxisAlignment specifies how children are aligned along the cross axis.
type CrossAxisAlignment int

const (
	CrossStart CrossAxisAlignment = iota
	CrossCenter
	CrossEnd
)

func (c CrossAxisAlignment) toLipglossPosition() lipgloss.Position {
	switch c {
	case CrossCenter:
		return lipgloss.Center
	case CrossEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}
