package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jahasielva/folio/internal/ui"
)

// Card is a bordered box holding a title, a body of children and an
// optional footer.
type Card struct {
	BaseComponent
	title       string
	children    []ui.Renderable
	footer      ui.Renderable
	padding     Spacing
	width       int
	highlighted bool
}

// NewCard creates a card with the default card styling.
func NewCard(children ...ui.Renderable) *Card {
	c := &Card{
		BaseComponent: NewBaseComponent(),
		children:      children,
		padding:       SymmetricSpacing(0, 1),
	}
	c.SetAppliers(CardBaseStyle()...)
	return c
}

func (c *Card) View() string {
	return c.ViewWithContext(DefaultContext())
}

func (c *Card) ViewWithContext(ctx RenderContext) string {
	style := c.ComputeStyle(ctx.Theme).
		Padding(c.padding.Top, c.padding.Right, c.padding.Bottom, c.padding.Left)
	if c.highlighted {
		style = style.BorderForeground(ctx.Theme.Palette.Primary.Base)
	}

	outer := c.width
	if outer <= 0 {
		outer = ctx.Width(0)
	}
	inner := 0
	if outer > 0 {
		inner = outer - c.padding.Horizontal() - style.GetHorizontalBorderSize()
		if inner < 1 {
			inner = 1
		}
		style = style.Width(inner + c.padding.Horizontal())
	}

	childCtx := ctx
	if inner > 0 {
		childCtx = ctx.WithWidth(inner)
	}

	parts := make([]string, 0, len(c.children)+3)
	if c.title != "" {
		parts = append(parts, TypographyStyle(ctx.Theme, TypographyVariantTitle).Render(c.title))
	}
	for _, child := range c.children {
		if view := render(child, childCtx); view != "" {
			parts = append(parts, view)
		}
	}
	if c.footer != nil {
		parts = append(parts,
			HorizontalDivider().WithWidth(max(inner, 1)).
				WithAppliers(MutedForeground(PaletteNeutral)).
				ViewWithContext(childCtx),
			render(c.footer, childCtx))
	}

	return style.Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// WithTitle sets the card title.
func (c *Card) WithTitle(title string) *Card {
	c.title = title
	return c
}

// WithFooter adds a footer below a divider.
func (c *Card) WithFooter(footer ui.Renderable) *Card {
	c.footer = footer
	return c
}

// WithPadding sets the inner padding.
func (c *Card) WithPadding(padding Spacing) *Card {
	c.padding = padding
	return c
}

// WithWidth fixes the outer width of the card.
func (c *Card) WithWidth(width int) *Card {
	c.width = width
	return c
}

// WithHighlight draws the border in the primary colour.
func (c *Card) WithHighlight(highlighted bool) *Card {
	c.highlighted = highlighted
	return c
}

// WithAppliers adds theme-based style modifiers.
func (c *Card) WithAppliers(appliers ...StyleFunc) *Card {
	c.AddAppliers(appliers...)
	return c
}

// Add appends children.
func (c *Card) Add(children ...ui.Renderable) *Card {
	c.children = append(c.children, children...)
	return c
}

// Children returns the card body.
func (c *Card) Children() []ui.Renderable {
	return c.children
}
