package components

import "github.com/charmbracelet/lipgloss"

// Text renders styled text. With wrap enabled it fills the width the
// render context allows.
type Text struct {
	BaseComponent
	content string
	wrap    bool
}

// NewText creates a text component with the given content.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
	}
}

func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

func (t *Text) ViewWithContext(ctx RenderContext) string {
	style := t.ComputeStyle(ctx.Theme)
	if t.wrap {
		if width := ctx.Width(0); width > 0 {
			style = style.Width(width)
		}
	}
	return style.Render(t.content)
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// SetContent updates the text content.
func (t *Text) SetContent(content string) *Text {
	t.content = content
	return t
}

// WithWrap makes the text wrap at the context width.
func (t *Text) WithWrap(wrap bool) *Text {
	t.wrap = wrap
	return t
}

// WithStyle sets the lipgloss style directly.
func (t *Text) WithStyle(style lipgloss.Style) *Text {
	t.SetStyle(style)
	return t
}

// WithAppliers adds theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.AddAppliers(appliers...)
	return t
}

func TitleText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantTitle))
}

func SubtitleText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantSubtitle))
}

func BodyText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantBody))
}

func MutedText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantMuted))
}

func EmphasisText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantEmphasis))
}

// AccentText renders content in the primary colour.
func AccentText(content string) *Text {
	return NewText(content).WithAppliers(Foreground(PalettePrimary), Bold())
}
