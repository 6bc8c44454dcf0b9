package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/jahasielva/folio/internal/ui"
)

// errTabsScope is the panic message for triggers and panels built without
// the Tabs instance they belong to.
const errTabsScope = "components: tabs trigger and content must be created from a Tabs instance"

// Tabs holds the selected key shared by one set of triggers and content
// panels. Every trigger and panel keeps a pointer to its instance; two
// instances never share a selection.
//
// An instance is uncontrolled unless WithValue is called. Uncontrolled tabs
// keep their own key, starting at the default, and Activate both updates
// it and reports the change. Controlled tabs mirror the owner's value and
// Activate only reports; the owner feeds the new value back with SetValue.
//
// Tabs is not safe for concurrent use.
type Tabs struct {
	BaseComponent
	value         string
	controlled    bool
	onValueChange func(key string)

	triggers []*TabsTrigger
	panels   []*TabsContent
	gap      int
}

// NewTabs creates an uncontrolled instance selecting defaultKey.
func NewTabs(defaultKey string) *Tabs {
	return &Tabs{
		BaseComponent: NewBaseComponent(),
		value:         defaultKey,
		gap:           1,
	}
}

// WithValue makes the instance controlled by the owner's key.
func (t *Tabs) WithValue(key string) *Tabs {
	t.controlled = true
	t.value = key
	return t
}

// WithOnValueChange sets the callback receiving every activation request.
func (t *Tabs) WithOnValueChange(fn func(key string)) *Tabs {
	t.onValueChange = fn
	return t
}

// WithGap sets the columns between triggers in the list.
func (t *Tabs) WithGap(gap int) *Tabs {
	t.gap = gap
	return t
}

// SetValue is how an owner feeds a new value to the instance, controlled
// or not.
func (t *Tabs) SetValue(key string) {
	t.value = key
}

// Controlled reports whether the owner holds the selection.
func (t *Tabs) Controlled() bool {
	return t.controlled
}

// Value returns the selected key.
func (t *Tabs) Value() string {
	return t.value
}

// IsActive reports whether key is the selected key.
func (t *Tabs) IsActive(key string) bool {
	return t.value == key
}

// Activate requests that key become selected. A key with no panel is
// still selected; the instance then renders no panel.
func (t *Tabs) Activate(key string) {
	if !t.controlled {
		t.value = key
	}
	if t.onValueChange != nil {
		t.onValueChange(key)
	}
}

// Trigger creates and registers a trigger for key.
func (t *Tabs) Trigger(key, label string) *TabsTrigger {
	trigger := NewTabsTrigger(t, key, label)
	t.triggers = append(t.triggers, trigger)
	return trigger
}

// Content creates and registers the panel shown while key is selected.
func (t *Tabs) Content(key string, children ...ui.Renderable) *TabsContent {
	panel := NewTabsContent(t, key, children...)
	t.panels = append(t.panels, panel)
	return panel
}

// Keys returns the trigger keys in registration order.
func (t *Tabs) Keys() []string {
	keys := make([]string, 0, len(t.triggers))
	for _, trigger := range t.triggers {
		keys = append(keys, trigger.key)
	}
	return keys
}

// HasPanel reports whether a panel is registered for key.
func (t *Tabs) HasPanel(key string) bool {
	return t.panelFor(key) != nil
}

// Next activates the trigger after the selected one, wrapping around and
// skipping disabled triggers.
func (t *Tabs) Next() {
	t.step(1)
}

// Prev activates the trigger before the selected one.
func (t *Tabs) Prev() {
	t.step(-1)
}

func (t *Tabs) step(delta int) {
	n := len(t.triggers)
	if n == 0 {
		return
	}

	current := -1
	for i, trigger := range t.triggers {
		if trigger.key == t.value {
			current = i
			break
		}
	}
	if current == -1 && delta < 0 {
		current = 0
	}

	for i := 1; i <= n; i++ {
		candidate := t.triggers[((current+delta*i)%n+n)%n]
		if !candidate.disabled {
			t.Activate(candidate.key)
			return
		}
	}
}

// panelFor returns the first registered panel for key.
func (t *Tabs) panelFor(key string) *TabsContent {
	for _, panel := range t.panels {
		if panel.key == key {
			return panel
		}
	}
	return nil
}

// List renders the trigger row.
func (t *Tabs) List(ctx RenderContext) string {
	views := make([]string, 0, len(t.triggers)*2)
	for i, trigger := range t.triggers {
		if i > 0 && t.gap > 0 {
			views = append(views, strings.Repeat(" ", t.gap))
		}
		views = append(views, trigger.ViewWithContext(ctx))
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, views...)
}

// Panel renders the selected panel, or the empty string when no panel is
// registered for the selection.
func (t *Tabs) Panel(ctx RenderContext) string {
	panel := t.panelFor(t.value)
	if panel == nil {
		return ""
	}
	return panel.ViewWithContext(ctx)
}

func (t *Tabs) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the trigger row above the selected panel.
func (t *Tabs) ViewWithContext(ctx RenderContext) string {
	parts := []string{t.List(ctx)}
	if panel := t.Panel(ctx); panel != "" {
		parts = append(parts, "", panel)
	}
	return t.ComputeStyle(ctx.Theme).Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

// TabsTrigger selects its key when activated.
type TabsTrigger struct {
	BaseComponent
	tabs     *Tabs
	key      string
	label    string
	disabled bool
}

// NewTabsTrigger binds a trigger to tabs. It panics if tabs is nil.
func NewTabsTrigger(tabs *Tabs, key, label string) *TabsTrigger {
	if tabs == nil {
		panic(errTabsScope)
	}
	return &TabsTrigger{
		BaseComponent: NewBaseComponent(),
		tabs:          tabs,
		key:           key,
		label:         label,
	}
}

func (tr *TabsTrigger) instance() *Tabs {
	if tr == nil || tr.tabs == nil {
		panic(errTabsScope)
	}
	return tr.tabs
}

// Activate selects the trigger's key unless the trigger is disabled.
func (tr *TabsTrigger) Activate() {
	tabs := tr.instance()
	if tr.disabled {
		return
	}
	tabs.Activate(tr.key)
}

// IsActive reports whether the trigger's key is selected.
func (tr *TabsTrigger) IsActive() bool {
	return tr.instance().IsActive(tr.key)
}

// WithDisabled stops the trigger from activating.
func (tr *TabsTrigger) WithDisabled(disabled bool) *TabsTrigger {
	tr.disabled = disabled
	return tr
}

// Key returns the key the trigger selects.
func (tr *TabsTrigger) Key() string {
	return tr.key
}

func (tr *TabsTrigger) View() string {
	return tr.ViewWithContext(DefaultContext())
}

func (tr *TabsTrigger) ViewWithContext(ctx RenderContext) string {
	style := tr.ComputeStyle(ctx.Theme).PaddingLeft(1).PaddingRight(1)
	switch {
	case tr.IsActive():
		style = Background(PalettePrimary)(style, ctx.Theme).Bold(true)
	case tr.disabled:
		style = MutedForeground(PaletteNeutral)(style, ctx.Theme)
	default:
		style = Foreground(PaletteNeutral)(style, ctx.Theme)
	}
	return style.Render(tr.label)
}

// TabsContent renders its children only while its key is selected.
type TabsContent struct {
	BaseComponent
	tabs     *Tabs
	key      string
	children []ui.Renderable
}

// NewTabsContent binds a panel to tabs. It panics if tabs is nil.
func NewTabsContent(tabs *Tabs, key string, children ...ui.Renderable) *TabsContent {
	if tabs == nil {
		panic(errTabsScope)
	}
	return &TabsContent{
		BaseComponent: NewBaseComponent(),
		tabs:          tabs,
		key:           key,
		children:      children,
	}
}

// IsActive reports whether this panel is the one its instance renders: its
// key is selected and no earlier panel claims the same key.
func (c *TabsContent) IsActive() bool {
	if c == nil || c.tabs == nil {
		panic(errTabsScope)
	}
	if !c.tabs.IsActive(c.key) {
		return false
	}
	first := c.tabs.panelFor(c.key)
	return first == nil || first == c
}

// Key returns the panel key.
func (c *TabsContent) Key() string {
	return c.key
}

func (c *TabsContent) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders nothing at all for an inactive panel.
func (c *TabsContent) ViewWithContext(ctx RenderContext) string {
	if !c.IsActive() {
		return ""
	}
	return c.ComputeStyle(ctx.Theme).Render(VStack(c.children...).ViewWithContext(ctx))
}
