// Package components is the theme-aware terminal component library the
// portfolio is drawn with.
//
// # Themes
//
// There is one Theme per resolved mode. Pick it from the theme provider's
// resolved value and pass it down explicitly:
//
//	ctx := components.ContextFor(provider.Resolved()).WithWidth(80)
//	out := card.ViewWithContext(ctx)
//
// View() renders with the light theme and no width bound.
//
// # Components
//
// Primitives:
//   - Text, Header, Divider
//   - Badge, Button, Progress
//
// Layout:
//   - Stack (VStack, HStack), Card
//
// Interactive:
//   - Tabs with TabsTrigger and TabsContent: one selected key per instance,
//     only the selected panel renders
//   - Switch: shows a boolean owned by its caller and proposes the inverse
//
// # Style modifiers
//
// Components accept StyleFunc values through WithAppliers:
//
//	NewText("Available").WithAppliers(Foreground(PaletteSuccess), Bold())
//
// Colours come from semantic palette slots (PalettePrimary, PaletteAccent,
// PaletteSurface, PaletteNeutral, PaletteSuccess, PaletteWarning,
// PaletteDanger), never from literal values in component code.
//
// # Tabs and scope
//
// Triggers and panels hold a pointer to the Tabs they belong to and are
// created through it:
//
//	tabs := NewTabs("all")
//	tabs.Trigger("all", "All Projects")
//	tabs.Content("all", projectGrid)
//
// Building a trigger or panel without an instance panics; it is a wiring
// mistake, not a runtime condition.
package components
