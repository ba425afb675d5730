package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap is the calculator's key bindings, rendered by the help bubble.
type keyMap struct {
	Up        key.Binding
	Down      key.Binding
	Prev      key.Binding
	Next      key.Binding
	Edit      key.Binding
	Cancel    key.Binding
	AutoScale key.Binding
	Export    key.Binding
	Help      key.Binding
	Quit      key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:        key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:      key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Prev:      key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "previous / decrease")),
		Next:      key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next / increase")),
		Edit:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "edit value")),
		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel edit")),
		AutoScale: key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "toggle chart auto-scale")),
		Export:    key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export CSV")),
		Help:      key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more help")),
		Quit:      key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp implements help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Prev, k.Next, k.Edit, k.Help, k.Quit}
}

// FullHelp implements help.KeyMap.
func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Prev, k.Next},
		{k.Edit, k.Cancel, k.AutoScale, k.Export},
		{k.Help, k.Quit},
	}
}
