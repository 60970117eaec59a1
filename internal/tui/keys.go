package tui

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	submit key.Binding
	quit   key.Binding
	eof    key.Binding
}

var keys = keyMap{
	submit: key.NewBinding(key.WithKeys("enter")),
	quit:   key.NewBinding(key.WithKeys("ctrl+c", "esc")),
	eof:    key.NewBinding(key.WithKeys("ctrl+d")),
}
