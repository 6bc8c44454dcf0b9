package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jahasielva/folio/internal/theme"
)

// ColourSet groups related colours for one semantic slot.
//
//   - Base: the slot's main colour
//   - OnBase: text drawn on top of Base
//   - Muted: a quieter tint for tracks, borders and hover-like states
//   - Contrast: an accent that stands out against Base
type ColourSet struct {
	Base     lipgloss.Color
	OnBase   lipgloss.Color
	Muted    lipgloss.Color
	Contrast lipgloss.Color
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary ColourSet
	Accent  ColourSet
	Surface ColourSet
	Neutral ColourSet
	Success ColourSet
	Warning ColourSet
	Danger  ColourSet
}

// PaletteSlot selects a ColourSet from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteAccent  PaletteSlot = func(p Palette) ColourSet { return p.Accent }
	PaletteSurface PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
	PaletteSuccess PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger  PaletteSlot = func(p Palette) ColourSet { return p.Danger }
)

// BorderVariant names a border from the theme's BorderSet.
type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
	BorderVariantThick
)

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
}

// TypographyVariant names a text preset.
type TypographyVariant int

const (
	TypographyVariantBody TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantMuted
	TypographyVariantEmphasis
	TypographyVariantCode
)

// TypographyScale holds the text presets for a theme.
type TypographyScale struct {
	Body     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Muted    lipgloss.Style
	Emphasis lipgloss.Style
	Code     lipgloss.Style
}

// ButtonVariant specifies the visual style of a button.
type ButtonVariant int

const (
	ButtonVariantPrimary ButtonVariant = iota
	ButtonVariantOutline
	ButtonVariantGhost
)

// VariantRegistry maps component variants to their styling strategies.
type VariantRegistry struct {
	strategies map[any]StyleStrategy
}

// NewVariantRegistry creates an empty registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{strategies: make(map[any]StyleStrategy)}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant any, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil if not found.
func (vr *VariantRegistry) Get(variant any) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme is an immutable set of styling data for one resolved mode. Build it
// once per mode and pass it through RenderContext.
type Theme struct {
	Mode       theme.Resolved
	Palette    Palette
	Borders    BorderSet
	Typography TypographyScale
	Variants   *VariantRegistry
}

// IsDark reports whether t is the dark theme.
func (t Theme) IsDark() bool {
	return t.Mode.IsDark()
}

var (
	lightTheme = newTheme(theme.ResolvedLight, Palette{
		Primary: ColourSet{Base: "#7c3aed", OnBase: "#faf5ff", Muted: "#ddd6fe", Contrast: "#db2777"},
		Accent:  ColourSet{Base: "#f1f5f9", OnBase: "#0f172a", Muted: "#e2e8f0", Contrast: "#7c3aed"},
		Surface: ColourSet{Base: "#ffffff", OnBase: "#0f172a", Muted: "#e2e8f0", Contrast: "#7c3aed"},
		Neutral: ColourSet{Base: "#64748b", OnBase: "#f8fafc", Muted: "#cbd5e1", Contrast: "#0f172a"},
		Success: ColourSet{Base: "#16a34a", OnBase: "#f0fdf4", Muted: "#bbf7d0", Contrast: "#052e16"},
		Warning: ColourSet{Base: "#d97706", OnBase: "#fffbeb", Muted: "#fde68a", Contrast: "#451a03"},
		Danger:  ColourSet{Base: "#dc2626", OnBase: "#fef2f2", Muted: "#fecaca", Contrast: "#450a0a"},
	})

	darkTheme = newTheme(theme.ResolvedDark, Palette{
		Primary: ColourSet{Base: "#a78bfa", OnBase: "#1e1b4b", Muted: "#4c1d95", Contrast: "#f472b6"},
		Accent:  ColourSet{Base: "#1e293b", OnBase: "#e2e8f0", Muted: "#334155", Contrast: "#a78bfa"},
		Surface: ColourSet{Base: "#0b1120", OnBase: "#e2e8f0", Muted: "#1e293b", Contrast: "#a78bfa"},
		Neutral: ColourSet{Base: "#94a3b8", OnBase: "#0f172a", Muted: "#334155", Contrast: "#f8fafc"},
		Success: ColourSet{Base: "#4ade80", OnBase: "#052e16", Muted: "#14532d", Contrast: "#f0fdf4"},
		Warning: ColourSet{Base: "#fbbf24", OnBase: "#451a03", Muted: "#78350f", Contrast: "#fffbeb"},
		Danger:  ColourSet{Base: "#f87171", OnBase: "#450a0a", Muted: "#7f1d1d", Contrast: "#fef2f2"},
	})
)

// LightTheme returns the theme used when the resolved mode is light.
func LightTheme() Theme {
	return lightTheme
}

// DarkTheme returns the theme used when the resolved mode is dark.
func DarkTheme() Theme {
	return darkTheme
}

// DefaultTheme is the light theme, matching a platform with no dark preference.
func DefaultTheme() Theme {
	return lightTheme
}

// ThemeFor picks the theme for a resolved mode.
func ThemeFor(resolved theme.Resolved) Theme {
	if resolved.IsDark() {
		return darkTheme
	}
	return lightTheme
}

func newTheme(mode theme.Resolved, p Palette) Theme {
	t := Theme{
		Mode:    mode,
		Palette: p,
		Borders: BorderSet{
			None:    lipgloss.HiddenBorder(),
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
		},
		Typography: defaultTypography(p),
		Variants:   NewVariantRegistry(),
	}
	registerButtonVariants(t.Variants)
	registerBadgeVariants(t.Variants)
	return t
}

func defaultTypography(p Palette) TypographyScale {
	body := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Body:     body,
		Title:    body.Bold(true).Foreground(p.Primary.Base),
		Subtitle: body.Foreground(p.Neutral.Base),
		Muted:    body.Foreground(p.Neutral.Base).Faint(true),
		Emphasis: body.Bold(true),
		Code: body.
			Foreground(p.Primary.Contrast).
			Background(p.Accent.Base).
			Padding(0, 1),
	}
}

func registerButtonVariants(registry *VariantRegistry) {
	registry.Register(ButtonVariantPrimary, NewCompositeStrategy(
		Background(PalettePrimary),
		Bold(),
		PaddingX(2),
	))
	registry.Register(ButtonVariantOutline, NewCompositeStrategy(
		Foreground(PalettePrimary),
		Border(BorderVariantRounded),
		BorderColor(PalettePrimary),
		PaddingX(1),
	))
	registry.Register(ButtonVariantGhost, NewCompositeStrategy(
		Foreground(PaletteNeutral),
		PaddingX(1),
	))
}

func registerBadgeVariants(registry *VariantRegistry) {
	registry.Register(BadgeVariantDefault, NewCompositeStrategy(
		Background(PaletteAccent),
		PaddingX(1),
	))
	registry.Register(BadgeVariantPrimary, NewCompositeStrategy(
		Background(PalettePrimary),
		PaddingX(1),
	))
	registry.Register(BadgeVariantOutline, NewCompositeStrategy(
		Foreground(PalettePrimary),
		PaddingX(1),
	))
	registry.Register(BadgeVariantSuccess, NewCompositeStrategy(
		Background(PaletteSuccess),
		PaddingX(1),
	))
	registry.Register(BadgeVariantWarning, NewCompositeStrategy(
		Background(PaletteWarning),
		PaddingX(1),
	))
}

// BorderForVariant returns the border for variant.
func BorderForVariant(t Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return t.Borders.Normal
	case BorderVariantRounded:
		return t.Borders.Rounded
	case BorderVariantThick:
		return t.Borders.Thick
	default:
		return t.Borders.None
	}
}

// TypographyStyle returns the preset for variant.
func TypographyStyle(t Theme, variant TypographyVariant) lipgloss.Style {
	switch variant {
	case TypographyVariantTitle:
		return t.Typography.Title
	case TypographyVariantSubtitle:
		return t.Typography.Subtitle
	case TypographyVariantMuted:
		return t.Typography.Muted
	case TypographyVariantEmphasis:
		return t.Typography.Emphasis
	case TypographyVariantCode:
		return t.Typography.Code
	default:
		return t.Typography.Body
	}
}

// Background applies a slot's background with its matching foreground.
//
//	badge := NewBadge("New").WithAppliers(Background(PalettePrimary))
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		cs := slot(t.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a slot's colour to text only.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		return base.Foreground(slot(t.Palette).Base)
	}
}

// MutedForeground applies a slot's muted tint to text.
func MutedForeground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		return base.Foreground(slot(t.Palette).Muted)
	}
}

// Border applies a border style from the theme.
func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		return base.Border(BorderForVariant(t, variant))
	}
}

// BorderColor colours an existing border with a slot's muted tint.
func BorderColor(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		return base.BorderForeground(slot(t.Palette).Muted)
	}
}

func PaddingX(n int) StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.PaddingLeft(n).PaddingRight(n)
	}
}

func Bold() StyleFunc {
	return func(base lipgloss.Style, _ Theme) lipgloss.Style {
		return base.Bold(true)
	}
}

// Typography applies a text preset.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, t Theme) lipgloss.Style {
		return base.Inherit(TypographyStyle(t, variant))
	}
}

// CardBaseStyle is the default look of a Card.
func CardBaseStyle() []StyleFunc {
	return []StyleFunc{
		Border(BorderVariantRounded),
		BorderColor(PaletteNeutral),
		Typography(TypographyVariantBody),
	}
}
