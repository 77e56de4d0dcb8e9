package ui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Increase key.Binding
	Decrease key.Binding
	Quit     key.Binding
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Increase, k.Decrease, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Increase, k.Decrease, k.Quit}}
}

func defaultKeys() keyMap {
	return keyMap{
		Increase: key.NewBinding(
			key.WithKeys("up", "k", "+"),
			key.WithHelp("↑/+", "brighter"),
		),
		Decrease: key.NewBinding(
			key.WithKeys("down", "j", "-"),
			key.WithHelp("↓/-", "dimmer"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}
