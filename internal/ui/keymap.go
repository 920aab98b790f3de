package ui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds every binding for both modes. The browsing flag picks which
// half the help footer shows.
type keyMap struct {
	browsing bool

	// entry mode
	Indent    key.Binding
	Outdent   key.Binding
	RaisePrio key.Binding
	LowerPrio key.Binding
	Submit    key.Binding
	Browse    key.Binding

	// browse mode
	CursorUp   key.Binding
	CursorDown key.Binding
	Toggle     key.Binding
	PrevDay    key.Binding
	NextDay    key.Binding
	Today      key.Binding
	Entry      key.Binding
	Quit       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Indent:    key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "indent")),
		Outdent:   key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "outdent")),
		RaisePrio: key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "priority up")),
		LowerPrio: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "priority down")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "add")),
		Browse:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "browse")),

		CursorUp:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		CursorDown: key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Toggle:     key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
		PrevDay:    key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←/h", "prev day")),
		NextDay:    key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→/l", "next day")),
		Today:      key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "today")),
		Entry:      key.NewBinding(key.WithKeys("a", "i"), key.WithHelp("a", "add items")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
	}
}

// ShortHelp and FullHelp implement help.KeyMap for the footer.
func (k keyMap) ShortHelp() []key.Binding {
	if k.browsing {
		return []key.Binding{k.Toggle, k.PrevDay, k.NextDay, k.Entry, k.Quit}
	}
	return []key.Binding{k.Submit, k.Indent, k.RaisePrio, k.Browse}
}

func (k keyMap) FullHelp() [][]key.Binding {
	if k.browsing {
		return [][]key.Binding{
			{k.CursorUp, k.CursorDown, k.Toggle},
			{k.PrevDay, k.NextDay, k.Today},
			{k.Entry, k.Quit},
		}
	}
	return [][]key.Binding{
		{k.Submit, k.Browse},
		{k.Indent, k.Outdent},
		{k.RaisePrio, k.LowerPrio},
	}
}
