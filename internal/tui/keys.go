package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

type keyMap struct {
	// List mode.
	Toggle   key.Binding
	Delete   key.Binding
	Add      key.Binding
	MoveDown key.Binding
	MoveUp   key.Binding
	PickUp   key.Binding
	Quit     key.Binding

	// Move mode.
	TargetUp   key.Binding
	TargetDown key.Binding
	Drop       key.Binding

	// Add form.
	NextField key.Binding
	Submit    key.Binding

	Cancel    key.Binding
	ForceQuit key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Toggle:   key.NewBinding(key.WithKeys(" ", "x"), key.WithHelp("space/x", "toggle")),
		Delete:   key.NewBinding(key.WithKeys("d"), key.WithHelp("d", "delete")),
		Add:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add")),
		MoveDown: key.NewBinding(key.WithKeys("J"), key.WithHelp("J/K", "move")),
		MoveUp:   key.NewBinding(key.WithKeys("K")),
		PickUp:   key.NewBinding(key.WithKeys("m"), key.WithHelp("m", "pick up")),
		Quit:     key.NewBinding(key.WithKeys("q"), key.WithHelp("q", "quit")),

		TargetUp:   key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/↓", "choose spot")),
		TargetDown: key.NewBinding(key.WithKeys("down", "j")),
		Drop:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "drop")),

		NextField: key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "details")),
		Submit:    key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "save")),

		Cancel:    key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "cancel")),
		ForceQuit: key.NewBinding(key.WithKeys("ctrl+c")),
	}
}

// bindings adapts a fixed binding set to help.KeyMap.
type bindings []key.Binding

func (b bindings) ShortHelp() []key.Binding  { return b }
func (b bindings) FullHelp() [][]key.Binding { return [][]key.Binding{b} }

var _ help.KeyMap = bindings(nil)

func (k keyMap) forMode(md mode) bindings {
	switch md {
	case modeAdd:
		return bindings{k.NextField, k.Submit, k.Cancel}
	case modeMove:
		return bindings{k.TargetUp, k.Drop, k.Cancel}
	default:
		return bindings{k.Toggle, k.Delete, k.Add, k.MoveDown, k.PickUp, k.Quit}
	}
}
