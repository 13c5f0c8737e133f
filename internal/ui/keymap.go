package ui

import "github.com/charmbracelet/bubbles/key"

type KeyMap struct {
	Add     key.Binding
	Edit    key.Binding
	View    key.Binding
	Delete  key.Binding
	Refresh key.Binding
	Export  key.Binding
	Sheet   key.Binding
	Select  key.Binding
	Clear   key.Binding
	Search  key.Binding
	Quit    key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		Edit:    key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		View:    key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "view")),
		Delete:  key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Export:  key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "export csv")),
		Sheet:   key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "pdf sheet")),
		Select:  key.NewBinding(key.WithKeys(" "), key.WithHelp("space", "select")),
		Clear:   key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "clear selection")),
		Search:  key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Quit:    key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}
