package console

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap holds every binding the console reacts to
type KeyMap struct {
	// Global
	ForceQuit key.Binding

	// Main screen
	MenuConfig    key.Binding
	MenuService   key.Binding
	MenuNamespace key.Binding
	Up            key.Binding
	Down          key.Binding
	Add           key.Binding
	Edit          key.Binding
	Delete        key.Binding
	Refresh       key.Binding
	NextTab       key.Binding
	PrevTab       key.Binding
	Open          key.Binding
	Help          key.Binding
	Quit          key.Binding

	// Forms
	NextField key.Binding
	PrevField key.Binding
	Submit    key.Binding
	Cancel    key.Binding

	// Delete confirmation
	Yes key.Binding
	No  key.Binding

	// Config viewer
	Copy   key.Binding
	Scroll key.Binding
}

// DefaultKeyMap returns the standard bindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		MenuConfig: key.NewBinding(
			key.WithKeys("1"),
			key.WithHelp("1", "config"),
		),
		MenuService: key.NewBinding(
			key.WithKeys("2"),
			key.WithHelp("2", "service"),
		),
		MenuNamespace: key.NewBinding(
			key.WithKeys("3"),
			key.WithHelp("3", "namespace"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Edit: key.NewBinding(
			key.WithKeys("e"),
			key.WithHelp("e", "edit"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "refresh"),
		),
		NextTab: key.NewBinding(
			key.WithKeys("tab", "right"),
			key.WithHelp("tab/→", "next namespace"),
		),
		PrevTab: key.NewBinding(
			key.WithKeys("shift+tab", "left"),
			key.WithHelp("shift+tab/←", "prev namespace"),
		),
		Open: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "view"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "more"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "quit"),
		),
		NextField: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "next field"),
		),
		PrevField: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "prev field"),
		),
		Submit: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "save"),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Yes: key.NewBinding(
			key.WithKeys("y", "Y"),
			key.WithHelp("y", "delete"),
		),
		No: key.NewBinding(
			key.WithKeys("n", "N"),
			key.WithHelp("n", "keep"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy"),
		),
		Scroll: key.NewBinding(
			key.WithKeys("up", "down", "pgup", "pgdown"),
			key.WithHelp("↑↓/pgup/pgdn", "scroll"),
		),
	}
}

// bindingHelp adapts a fixed set of bindings to help.KeyMap
type bindingHelp struct {
	short []key.Binding
	full  [][]key.Binding
}

// ShortHelp returns keybindings to be shown in the mini help view
func (b bindingHelp) ShortHelp() []key.Binding {
	return b.short
}

// FullHelp returns keybindings for the expanded help view
func (b bindingHelp) FullHelp() [][]key.Binding {
	return b.full
}

// HelpFor returns the bindings active on screen with menu selected
func (k KeyMap) HelpFor(screen Screen, menu Menu) help.KeyMap {
	menus := []key.Binding{k.MenuConfig, k.MenuService, k.MenuNamespace}

	switch screen {
	case ScreenNamespaceAdd, ScreenNamespaceEdit:
		short := []key.Binding{k.NextField, k.Submit, k.Cancel}
		return bindingHelp{short: short, full: [][]key.Binding{{k.NextField, k.PrevField}, {k.Submit, k.Cancel}}}

	case ScreenNamespaceDeleteConfirm:
		short := []key.Binding{k.Yes, k.No, k.Cancel}
		return bindingHelp{short: short, full: [][]key.Binding{short}}

	case ScreenConfigView:
		back := key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "back"))
		short := []key.Binding{k.Scroll, k.Copy, back}
		return bindingHelp{short: short, full: [][]key.Binding{short}}
	}

	switch menu {
	case MenuNamespace:
		short := []key.Binding{k.Up, k.Down, k.Add, k.Edit, k.Delete, k.Help, k.Quit}
		return bindingHelp{
			short: short,
			full:  [][]key.Binding{menus, {k.Up, k.Down}, {k.Add, k.Edit, k.Delete, k.Refresh}, {k.Quit, k.ForceQuit}},
		}
	case MenuConfig:
		short := []key.Binding{k.Up, k.Down, k.NextTab, k.Open, k.Help, k.Quit}
		return bindingHelp{
			short: short,
			full:  [][]key.Binding{menus, {k.Up, k.Down}, {k.NextTab, k.PrevTab, k.Open, k.Refresh}, {k.Quit, k.ForceQuit}},
		}
	default:
		short := append(append([]key.Binding{}, menus...), k.Quit)
		return bindingHelp{short: short, full: [][]key.Binding{menus, {k.Quit, k.ForceQuit}}}
	}
}
