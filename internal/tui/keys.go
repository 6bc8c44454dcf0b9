package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	NextSection key.Binding
	PrevSection key.Binding
	Jump        key.Binding
	Left        key.Binding
	Right       key.Binding
	Scroll      key.Binding
	ToggleTheme key.Binding
	SystemTheme key.Binding
	Menu        key.Binding
	Close       key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		NextSection: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next section"),
		),
		PrevSection: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "previous section"),
		),
		Jump: key.NewBinding(
			key.WithKeys("1", "2", "3", "4", "5", "6", "7"),
			key.WithHelp("1-7", "jump to section"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "previous"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "next"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "k", "j", "pgup", "pgdown", "b", "f", "u", "d", "ctrl+u", "ctrl+d"),
			key.WithHelp("↑/↓", "scroll"),
		),
		ToggleTheme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "toggle theme"),
		),
		SystemTheme: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "follow system theme"),
		),
		Menu: key.NewBinding(
			key.WithKeys("m"),
			key.WithHelp("m", "menu"),
		),
		Close: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "close"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more keys"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextSection, k.ToggleTheme, k.Menu, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextSection, k.PrevSection, k.Jump, k.Scroll},
		{k.Left, k.Right, k.Menu, k.Close},
		{k.ToggleTheme, k.SystemTheme, k.Help, k.Quit},
	}
}
