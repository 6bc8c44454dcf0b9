package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/glamour/styles"

	"github.com/jahasielva/folio/internal/theme"
)

// markdown renders markdown for one resolved theme and width, recreating
// the glamour renderer only when either changes.
type markdown struct {
	renderer *glamour.TermRenderer
	resolved theme.Resolved
	width    int
}

func (md *markdown) render(source string, resolved theme.Resolved, width int) string {
	if width < 20 {
		width = 20
	}
	if md.renderer == nil || md.resolved != resolved || md.width != width {
		style := styles.LightStyle
		if resolved.IsDark() {
			style = styles.DarkStyle
		}
		r, err := glamour.NewTermRenderer(
			glamour.WithStandardStyle(style),
			glamour.WithWordWrap(width),
		)
		if err != nil {
			return source
		}
		md.renderer, md.resolved, md.width = r, resolved, width
	}

	out, err := md.renderer.Render(source)
	if err != nil {
		return source
	}
	return strings.Trim(out, "\n")
}
