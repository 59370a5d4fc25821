package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap holds every binding. It also serves bubbles/help.
type KeyMap struct {
	Confirm    key.Binding
	Next       key.Binding
	Prev       key.Binding
	Pick       key.Binding
	Clear      key.Binding
	Refocus    key.Binding
	Website    key.Binding
	Phone      key.Binding
	HelpPage   key.Binding
	Twitter    key.Binding
	Facebook   key.Binding
	LineUp     key.Binding
	LineDown   key.Binding
	PageUp     key.Binding
	PageDown   key.Binding
	Help       key.Binding
	LockedHelp key.Binding
	Quit       key.Binding
	ForceQuit  key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Confirm:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "select")),
		Next:       key.NewBinding(key.WithKeys("down", "ctrl+n"), key.WithHelp("↓", "next")),
		Prev:       key.NewBinding(key.WithKeys("up", "ctrl+p"), key.WithHelp("↑", "prev")),
		Pick:       key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "pick highlighted")),
		Clear:      key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "clear")),
		Refocus:    key.NewBinding(key.WithKeys("i", "/", "enter"), key.WithHelp("i", "edit search")),
		Website:    key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "website")),
		Phone:      key.NewBinding(key.WithKeys("p"), key.WithHelp("p", "call")),
		HelpPage:   key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "help page")),
		Twitter:    key.NewBinding(key.WithKeys("t"), key.WithHelp("t", "twitter")),
		Facebook:   key.NewBinding(key.WithKeys("f"), key.WithHelp("f", "facebook")),
		LineUp:     key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k", "scroll up")),
		LineDown:   key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j", "scroll down")),
		PageUp:     key.NewBinding(key.WithKeys("pgup"), key.WithHelp("pgup", "page up")),
		PageDown:   key.NewBinding(key.WithKeys("pgdown"), key.WithHelp("pgdn", "page down")),
		Help:       key.NewBinding(key.WithKeys("f1"), key.WithHelp("f1", "keys")),
		LockedHelp: key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "keys")),
		Quit:       key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),
		ForceQuit:  key.NewBinding(key.WithKeys("ctrl+c"), key.WithHelp("ctrl+c", "quit")),
	}
}

// SearchHelp is the short help shown while typing
func (k KeyMap) SearchHelp() []key.Binding {
	return []key.Binding{k.Confirm, k.Next, k.Pick, k.Clear, k.Help, k.ForceQuit}
}

// LockedShortHelp is the short help shown while a record is selected
func (k KeyMap) LockedShortHelp() []key.Binding {
	return []key.Binding{k.Refocus, k.Website, k.Phone, k.HelpPage, k.LockedHelp, k.Quit}
}
