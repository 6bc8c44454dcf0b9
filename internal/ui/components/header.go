package components

import (
	"github.com/charmbracelet/lipgloss"
)

// Header is a section heading with an optional eyebrow label above the
// title and a subtitle below it.
type Header struct {
	BaseComponent
	eyebrow  string
	title    string
	subtitle string
	align    CrossAxisAlignment
}

// NewHeader creates a header with the given title.
func NewHeader(title string) *Header {
	h := &Header{
		BaseComponent: NewBaseComponent(),
		title:         title,
	}
	h.SetAppliers(Typography(TypographyVariantTitle))
	return h
}

func (h *Header) View() string {
	return h.ViewWithContext(DefaultContext())
}

func (h *Header) ViewWithContext(ctx RenderContext) string {
	lines := make([]string, 0, 3)
	if h.eyebrow != "" {
		lines = append(lines, lipgloss.NewStyle().
			Foreground(ctx.Theme.Palette.Primary.Base).
			Render(h.eyebrow))
	}
	lines = append(lines, h.ComputeStyle(ctx.Theme).Render(h.title))
	if h.subtitle != "" {
		subtitle := TypographyStyle(ctx.Theme, TypographyVariantSubtitle)
		if width := ctx.Width(0); width > 0 {
			subtitle = subtitle.Width(width)
		}
		lines = append(lines, subtitle.Render(h.subtitle))
	}

	block := lipgloss.JoinVertical(h.align.toLipglossPosition(), lines...)
	if width := ctx.Width(0); width > 0 && h.align != CrossStart {
		return lipgloss.PlaceHorizontal(width, h.align.toLipglossPosition(), block)
	}
	return block
}

// WithEyebrow sets the small label shown above the title.
func (h *Header) WithEyebrow(eyebrow string) *Header {
	h.eyebrow = eyebrow
	return h
}

// WithSubtitle adds a subtitle to the header.
func (h *Header) WithSubtitle(subtitle string) *Header {
	h.subtitle = subtitle
	return h
}

// WithAlign sets horizontal alignment within the context width.
func (h *Header) WithAlign(align CrossAxisAlignment) *Header {
	h.align = align
	return h
}

// WithAppliers adds theme-based style modifiers to the title.
func (h *Header) WithAppliers(appliers ...StyleFunc) *Header {
	h.AddAppliers(appliers...)
	return h
}

// Title returns the header title.
func (h *Header) Title() string {
	return h.title
}

// Subtitle returns the header subtitle.
func (h *Header) Subtitle() string {
	return h.subtitle
}
