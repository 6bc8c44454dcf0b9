package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newABC(defaultKey string) *Tabs {
	tabs := NewTabs(defaultKey)
	for _, key := range []string{"A", "B", "C"} {
		tabs.Trigger(key, "Tab "+key)
		tabs.Content(key, NewText("panel "+key))
	}
	return tabs
}

func activeKeys(tabs *Tabs, keys ...string) []string {
	var active []string
	for _, key := range keys {
		if tabs.IsActive(key) {
			active = append(active, key)
		}
	}
	return active
}

func TestUncontrolledTabsStartAtDefault(t *testing.T) {
	tabs := newABC("A")

	assert.False(t, tabs.Controlled())
	assert.Equal(t, []string{"A"}, activeKeys(tabs, "A", "B", "C"))
	assert.Equal(t, []string{"A", "B", "C"}, tabs.Keys())
}

func TestUncontrolledActivateUpdatesAndReports(t *testing.T) {
	var reported []string
	tabs := newABC("A").WithOnValueChange(func(key string) { reported = append(reported, key) })

	tabs.Activate("B")

	assert.Equal(t, []string{"B"}, activeKeys(tabs, "A", "B", "C"))
	assert.Equal(t, []string{"B"}, reported)
}

func TestUncontrolledActivateWithoutCallback(t *testing.T) {
	tabs := newABC("A")
	assert.NotPanics(t, func() { tabs.Activate("C") })
	assert.Equal(t, "C", tabs.Value())
}

func TestControlledTabsOnlyReport(t *testing.T) {
	var reported []string
	tabs := newABC("A").
		WithValue("B").
		WithOnValueChange(func(key string) { reported = append(reported, key) })

	require.True(t, tabs.Controlled())
	assert.Equal(t, []string{"B"}, activeKeys(tabs, "A", "B", "C"))

	tabs.Activate("C")
	assert.Equal(t, []string{"C"}, reported)
	assert.Equal(t, []string{"B"}, activeKeys(tabs, "A", "B", "C"), "selection moves only when the owner feeds it back")

	tabs.SetValue("C")
	assert.Equal(t, []string{"C"}, activeKeys(tabs, "A", "B", "C"))
}

func TestControlledTabsIgnoreDefault(t *testing.T) {
	tabs := NewTabs("A").WithValue("")
	assert.False(t, tabs.IsActive("A"))
	assert.True(t, tabs.IsActive(""))
}

func TestActivateKeyWithoutPanel(t *testing.T) {
	tabs := newABC("A")
	tabs.Trigger("D", "Tab D")

	tabs.Activate("D")

	assert.True(t, tabs.IsActive("D"))
	assert.False(t, tabs.HasPanel("D"))
	assert.Empty(t, tabs.Panel(DefaultContext()))
	for _, key := range []string{"A", "B", "C"} {
		assert.False(t, tabs.IsActive(key))
	}
}

func TestOnlyTheActivePanelRenders(t *testing.T) {
	tabs := NewTabs("B")
	a := tabs.Content("A", NewText("alpha"))
	b := tabs.Content("B", NewText("bravo"))

	assert.Empty(t, a.View())
	assert.Contains(t, b.View(), "bravo")

	view := tabs.View()
	assert.Contains(t, view, "bravo")
	assert.NotContains(t, view, "alpha")

	tabs.Activate("A")
	assert.Contains(t, a.View(), "alpha")
	assert.Empty(t, b.View())
}

func TestDuplicatePanelKeysRenderOnce(t *testing.T) {
	tabs := NewTabs("A")
	first := tabs.Content("A", NewText("first"))
	second := tabs.Content("A", NewText("second"))

	assert.True(t, first.IsActive())
	assert.False(t, second.IsActive())
	assert.Empty(t, second.View())

	panel := tabs.Panel(DefaultContext())
	assert.Contains(t, panel, "first")
	assert.NotContains(t, panel, "second")
}

func TestInstancesDoNotShareSelection(t *testing.T) {
	left := newABC("A")
	right := newABC("A")

	left.Activate("C")
	assert.True(t, left.IsActive("C"))
	assert.True(t, right.IsActive("A"))
}

func TestTriggerActivation(t *testing.T) {
	tabs := NewTabs("A")
	tabs.Trigger("A", "Alpha")
	b := tabs.Trigger("B", "Bravo")
	c := tabs.Trigger("C", "Charlie").WithDisabled(true)

	b.Activate()
	assert.True(t, b.IsActive())

	c.Activate()
	assert.True(t, tabs.IsActive("B"), "disabled trigger does not activate")
}

func TestNextAndPrevWrapAndSkipDisabled(t *testing.T) {
	tabs := NewTabs("A")
	tabs.Trigger("A", "Alpha")
	tabs.Trigger("B", "Bravo").WithDisabled(true)
	tabs.Trigger("C", "Charlie")

	tabs.Next()
	assert.Equal(t, "C", tabs.Value())
	tabs.Next()
	assert.Equal(t, "A", tabs.Value())
	tabs.Prev()
	assert.Equal(t, "C", tabs.Value())
}

func TestNextOnControlledTabsReports(t *testing.T) {
	var reported string
	tabs := newABC("A").WithValue("A").WithOnValueChange(func(key string) { reported = key })

	tabs.Next()
	assert.Equal(t, "B", reported)
	assert.Equal(t, "A", tabs.Value())
}

func TestTriggerListRendersAllLabels(t *testing.T) {
	tabs := newABC("B")
	list := tabs.List(DefaultContext())

	for _, label := range []string{"Tab A", "Tab B", "Tab C"} {
		assert.Contains(t, list, label)
	}
}

func TestPartsOutsideAnInstancePanic(t *testing.T) {
	assert.PanicsWithValue(t, errTabsScope, func() { NewTabsTrigger(nil, "A", "Alpha") })
	assert.PanicsWithValue(t, errTabsScope, func() { NewTabsContent(nil, "A") })

	var tabs *Tabs
	assert.PanicsWithValue(t, errTabsScope, func() { tabs.Trigger("A", "Alpha") })

	assert.PanicsWithValue(t, errTabsScope, func() { (&TabsTrigger{key: "A"}).IsActive() })
	assert.PanicsWithValue(t, errTabsScope, func() { (&TabsContent{key: "A"}).View() })
}
