package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Up      key.Binding
	Down    key.Binding
	Left    key.Binding
	Right   key.Binding
	Play    key.Binding
	NewGame key.Binding
	Quit    key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Up:      key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:    key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "left")),
		Right:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "right")),
		Play:    key.NewBinding(key.WithKeys("enter", " "), key.WithHelp("enter", "play")),
		NewGame: key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new game")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

func (that keyMap) ShortHelp() []key.Binding {
	return []key.Binding{that.Up, that.Down, that.Left, that.Right, that.Play, that.NewGame, that.Quit}
}

func (that keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{that.ShortHelp()}
}
