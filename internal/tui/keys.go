package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up     key.Binding
	Down   key.Binding
	Add    key.Binding
	Delete key.Binding
	Filter key.Binding
	Copy   key.Binding
	Quit   key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Add:    key.NewBinding(key.WithKeys("a", "n"), key.WithHelp("a", "add")),
		Delete: key.NewBinding(key.WithKeys("d", "delete", "x"), key.WithHelp("d/del", "delete")),
		Filter: key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today only")),
		Copy:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "copy detail")),
		Quit:   key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp and FullHelp implement help.KeyMap.
func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Add, k.Delete, k.Filter, k.Copy, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Up, k.Down}, k.ShortHelp()}
}

type dialogKeyMap struct {
	Next    key.Binding
	Prev    key.Binding
	Confirm key.Binding
	Cancel  key.Binding
	Later   key.Binding
	Earlier key.Binding
	Month   key.Binding
	Back    key.Binding
	Today   key.Binding
}

func defaultDialogKeys() dialogKeyMap {
	return dialogKeyMap{
		Next:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next field")),
		Prev:    key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev field")),
		Confirm: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "ok")),
		Cancel:  key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		Later:   key.NewBinding(key.WithKeys("+", "=", "up", "right"), key.WithHelp("+/-", "day")),
		Earlier: key.NewBinding(key.WithKeys("-", "down", "left")),
		Month:   key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup/pgdn", "month")),
		Back:    key.NewBinding(key.WithKeys("pgdown")),
		Today:   key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
	}
}

func (k dialogKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Confirm, k.Cancel, k.Later, k.Month, k.Today}
}

func (k dialogKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}
