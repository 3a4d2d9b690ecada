package ui

import "github.com/charmbracelet/bubbles/key"

type listKeyMap struct {
	Up          key.Binding
	Down        key.Binding
	Open        key.Binding
	Filters     key.Binding
	ClearFilter key.Binding
	Quit        key.Binding
}

func (k listKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Open, k.Filters, k.ClearFilter, k.Quit}
}

func (k listKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

type modalKeyMap struct {
	Up        key.Binding
	Down      key.Binding
	NextTab   key.Binding
	PrevTab   key.Binding
	Select    key.Binding
	Apply     key.Binding
	Reset     key.Binding
	Close     key.Binding
	ForceQuit key.Binding
}

func (k modalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Up, k.Down, k.Select, k.Apply, k.Reset, k.Close}
}

func (k modalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{k.ShortHelp()}
}

var listKeys = listKeyMap{
	Up:          key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
	Down:        key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
	Open:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "open")),
	Filters:     key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "filters")),
	ClearFilter: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear filters")),
	Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
}

var modalKeys = modalKeyMap{
	Up:        key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "up")),
	Down:      key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "down")),
	NextTab:   key.NewBinding(key.WithKeys("tab", "l", "right"), key.WithHelp("tab", "next group")),
	PrevTab:   key.NewBinding(key.WithKeys("shift+tab", "h", "left"), key.WithHelp("shift+tab", "prev group")),
	Select:    key.NewBinding(key.WithKeys("enter", " ", "space"), key.WithHelp("enter", "select")),
	Apply:     key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "apply")),
	Reset:     key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
	Close:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
}
