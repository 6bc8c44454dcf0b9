package tui

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jahasielva/folio/internal/content"
	"github.com/jahasielva/folio/internal/theme"
	folioerrors "github.com/jahasielva/folio/pkg/errors"
)

func TestRenderSingleSection(t *testing.T) {
	p, err := content.Load()
	require.NoError(t, err)

	out, err := Render(p, SectionTestimonials, 100, theme.ResolvedDark)
	require.NoError(t, err)

	assert.Contains(t, out, "What Clients Say")
	assert.Contains(t, out, "Made with ♥")
	assert.NotContains(t, out, "Featured Projects")
	assert.True(t, strings.HasSuffix(out, "\n"))
}

func TestRenderAllSections(t *testing.T) {
	p, err := content.Load()
	require.NoError(t, err)

	out, err := Render(p, "", 100, theme.ResolvedLight)
	require.NoError(t, err)

	for _, want := range []string{"Hi, I'm", "Featured Projects", "What Clients Say", "Let's Work Together"} {
		assert.Contains(t, out, want)
	}
	assert.Equal(t, 1, strings.Count(out, "Made with ♥"))
}

func TestRenderRejectsUnknownSection(t *testing.T) {
	p, err := content.Load()
	require.NoError(t, err)

	_, err = Render(p, "blog", 100, theme.ResolvedLight)
	require.Error(t, err)

	var verr *folioerrors.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "section", verr.Field)

	_, err = Render(nil, "", 100, theme.ResolvedLight)
	assert.Error(t, err)
}
