package tui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jahasielva/folio/internal/content"
	"github.com/jahasielva/folio/internal/theme"
	"github.com/jahasielva/folio/internal/ui/components"
	folioerrors "github.com/jahasielva/folio/pkg/errors"
)

// Render draws the portfolio once without a program, for pipes and
// non-interactive terminals. An empty section renders every section in nav
// order. The footer always closes the output.
func Render(p *content.Portfolio, section string, width int, resolved theme.Resolved) (string, error) {
	if p == nil {
		return "", folioerrors.NewValidationError("portfolio", "portfolio is required", nil)
	}

	keys := p.NavKeys()
	if section != "" && !slices.Contains(keys, section) {
		return "", folioerrors.NewValidationError(
			"section",
			fmt.Sprintf("unknown section %q (want one of %s)", section, strings.Join(keys, ", ")),
			nil,
		)
	}
	if section != "" {
		keys = []string{section}
	}

	s := newSections(p)
	ctx := components.ContextFor(resolved).WithWidth(sectionWidth(width))

	parts := make([]string, 0, len(keys)+1)
	for _, key := range keys {
		if out := s.render(ctx, key); out != "" {
			parts = append(parts, out)
		}
	}
	parts = append(parts, s.footer(ctx))
	return strings.Join(parts, "\n\n") + "\n", nil
}
