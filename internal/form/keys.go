package form

import "github.com/charmbracelet/bubbles/key"

// normalKeyMap defines key bindings while navigating rows
type normalKeyMap struct {
	Up         key.Binding
	Down       key.Binding
	Edit       key.Binding
	Mark       key.Binding
	Delete     key.Binding
	ClearMarks key.Binding
	Quit       key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k normalKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Up, k.Down, k.Edit, k.Mark, k.Delete, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k normalKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Edit},
		{k.Mark, k.Delete, k.ClearMarks, k.Quit},
	}
}

// editingKeyMap defines key bindings while a row is being edited
type editingKeyMap struct {
	Newline key.Binding
	Done    key.Binding
	Quit    key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (k editingKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Newline, k.Done, k.Quit}
}

// FullHelp returns keybindings for the expanded help view
func (k editingKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Newline, k.Done, k.Quit}}
}

func newNormalKeyMap() normalKeyMap {
	return normalKeyMap{
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Edit: key.NewBinding(
			key.WithKeys("enter", "i"),
			key.WithHelp("enter", "edit"),
		),
		Mark: key.NewBinding(
			key.WithKeys(" "),
			key.WithHelp("space", "mark"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d", "delete"),
			key.WithHelp("d", "delete"),
		),
		ClearMarks: key.NewBinding(
			key.WithKeys("x"),
			key.WithHelp("x", "clear marks"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

func newEditingKeyMap() editingKeyMap {
	return editingKeyMap{
		Newline: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "new line"),
		),
		Done: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "done"),
		),
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
	}
}
