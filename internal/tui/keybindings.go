package tui

import "github.com/charmbracelet/bubbles/key"

// GridKeyMap defines keybindings for the app grid. Plain characters go
// to the search input, so everything here uses arrows, control keys, or
// function keys.
type GridKeyMap struct {
	ForceQuit  key.Binding
	Suspend    key.Binding
	Escape     key.Binding
	Up         key.Binding
	Down       key.Binding
	Left       key.Binding
	Right      key.Binding
	Launch     key.Binding
	Menu       key.Binding
	PrevGroup  key.Binding
	NextGroup  key.Binding
	EditGroups key.Binding
}

// GridKeys are the bindings for the app grid.
var GridKeys = GridKeyMap{
	ForceQuit: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "quit"),
	),
	Suspend: key.NewBinding(
		key.WithKeys("ctrl+z"),
		key.WithHelp("ctrl+z", "suspend"),
	),
	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "clear/quit"),
	),
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right"),
		key.WithHelp("→", "right"),
	),
	Launch: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "launch"),
	),
	Menu: key.NewBinding(
		key.WithKeys("ctrl+o"),
		key.WithHelp("ctrl+o", "menu"),
	),
	PrevGroup: key.NewBinding(
		key.WithKeys("shift+tab", "ctrl+left"),
		key.WithHelp("shift+tab", "prev group"),
	),
	NextGroup: key.NewBinding(
		key.WithKeys("tab", "ctrl+right"),
		key.WithHelp("tab", "next group"),
	),
	EditGroups: key.NewBinding(
		key.WithKeys("ctrl+e"),
		key.WithHelp("ctrl+e", "edit groups"),
	),
}

// EditKeyMap defines keybindings for group edit mode.
type EditKeyMap struct {
	New    key.Binding
	Rename key.Binding
	Delete key.Binding
	Done   key.Binding
}

// EditKeys are the bindings for group edit mode.
var EditKeys = EditKeyMap{
	New: key.NewBinding(
		key.WithKeys("ctrl+n"),
		key.WithHelp("ctrl+n", "new group"),
	),
	Rename: key.NewBinding(
		key.WithKeys("f2"),
		key.WithHelp("f2", "rename"),
	),
	Delete: key.NewBinding(
		key.WithKeys("ctrl+d"),
		key.WithHelp("ctrl+d", "delete"),
	),
	Done: key.NewBinding(
		key.WithKeys("ctrl+e", "esc"),
		key.WithHelp("ctrl+e", "done"),
	),
}
