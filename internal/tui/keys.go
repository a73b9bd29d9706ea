package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	submit    key.Binding
	copy      key.Binding
	buildInfo key.Binding
	up        key.Binding
	down      key.Binding
	back      key.Binding
	quit      key.Binding
}

// Letter keys belong to the query input, so every action uses a modifier.
var keys = keyMap{
	submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "search")),
	copy:      key.NewBinding(key.WithKeys("ctrl+y"), key.WithHelp("ctrl+y", "copy answer")),
	buildInfo: key.NewBinding(key.WithKeys("ctrl+b"), key.WithHelp("ctrl+b", "about")),
	up:        key.NewBinding(key.WithKeys("pgup", "up"), key.WithHelp("pgup", "scroll up")),
	down:      key.NewBinding(key.WithKeys("pgdown", "down"), key.WithHelp("pgdn", "scroll down")),
	back:      key.NewBinding(key.WithKeys("esc")),
	quit:      key.NewBinding(key.WithKeys("ctrl+c", "esc"), key.WithHelp("esc", "quit")),
}

func (k keyMap) help() []key.Binding {
	return []key.Binding{k.submit, k.copy, k.up, k.down, k.buildInfo, k.quit}
}
