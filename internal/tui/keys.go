package tui

import "github.com/charmbracelet/bubbles/key"

// keyMap holds the dashboard key bindings.
type keyMap struct {
	Quit       key.Binding
	Help       key.Binding
	Refresh    key.Binding
	NextPanel  key.Binding
	PrevPanel  key.Binding
	Up         key.Binding
	Down       key.Binding
	Enter      key.Binding
	Commit     key.Binding
	NewBranch  key.Binding
	StageAll   key.Binding
	AddRemote  key.Binding
	Diff       key.Binding
	DiffFile   key.Binding
	Log        key.Binding
	RemoteInfo key.Binding
	Push       key.Binding
	Pull       key.Binding
	Editor     key.Binding
	Menu       key.Binding
	Settings   key.Binding
	Copy       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Quit:       key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Help:       key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Refresh:    key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		NextPanel:  key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next panel")),
		PrevPanel:  key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev panel")),
		Up:         key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "move up")),
		Down:       key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "move down")),
		Enter:      key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "act on selection")),
		Commit:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "commit message")),
		NewBranch:  key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "new branch")),
		StageAll:   key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "stage all")),
		AddRemote:  key.NewBinding(key.WithKeys("A"), key.WithHelp("A", "add remote")),
		Diff:       key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "repo diff")),
		DiffFile:   key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "file diff")),
		Log:        key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "branch log")),
		RemoteInfo: key.NewBinding(key.WithKeys("i"), key.WithHelp("i", "remote info")),
		Push:       key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "push branch")),
		Pull:       key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "pull branch")),
		Editor:     key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "open editor")),
		Menu:       key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "control menu")),
		Settings:   key.NewBinding(key.WithKeys("S"), key.WithHelp("S", "settings")),
		Copy:       key.NewBinding(key.WithKeys("y"), key.WithHelp("y", "copy info panel")),
	}
}

// helpEntries returns the bindings in display order for the help overlay.
func (k keyMap) helpEntries() []key.Binding {
	return []key.Binding{
		k.NextPanel, k.Up, k.Down, k.Enter, k.Refresh,
		k.Commit, k.StageAll, k.NewBranch, k.AddRemote,
		k.Diff, k.DiffFile, k.Log, k.RemoteInfo,
		k.Push, k.Pull, k.Editor, k.Menu, k.Settings, k.Copy,
		k.Help, k.Quit,
	}
}
