package viz

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding the app reacts to outside text inputs.
type KeyMap struct {
	NextTab       key.Binding
	PrevTab       key.Binding
	Play          key.Binding
	Step          key.Binding
	Reset         key.Binding
	Speed         key.Binding
	Field         key.Binding
	Target        key.Binding
	Suggest       key.Binding
	Add           key.Binding
	Delete        key.Binding
	Restore       key.Binding
	Up            key.Binding
	Down          key.Binding
	Theme         key.Binding
	Help          key.Binding
	Quit          key.Binding
	Submit        key.Binding
	Cancel        key.Binding
	NextFormField key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		NextTab:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next view")),
		PrevTab:       key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "previous view")),
		Play:          key.NewBinding(key.WithKeys(" ", "p"), key.WithHelp("space", "play/pause")),
		Step:          key.NewBinding(key.WithKeys("n", "right", "l"), key.WithHelp("→/n", "step")),
		Reset:         key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reset")),
		Speed:         key.NewBinding(key.WithKeys("s"), key.WithHelp("s", "speed")),
		Field:         key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "field")),
		Target:        key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "target")),
		Suggest:       key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "next suggestion")),
		Add:           key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add item")),
		Delete:        key.NewBinding(key.WithKeys("d", "delete"), key.WithHelp("d", "delete item")),
		Restore:       key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "restore sample")),
		Up:            key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:          key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Theme:         key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "theme")),
		Help:          key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:          key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Submit:        key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Cancel:        key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		NextFormField: key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab", "next input")),
	}
}

func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.NextTab, k.Play, k.Step, k.Reset, k.Help, k.Quit}
}

func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.NextTab, k.PrevTab, k.Theme, k.Help, k.Quit},
		{k.Play, k.Step, k.Reset, k.Speed, k.Field, k.Target, k.Suggest},
		{k.Up, k.Down, k.Add, k.Delete, k.Restore},
	}
}

