package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/appshelf/appshelf/internal/desktop"
	"github.com/appshelf/appshelf/internal/group"
)

// menuKind tags what a context menu item does.
type menuKind int

const (
	menuLaunch menuKind = iota
	menuAction
	menuRemove
)

type menuItem struct {
	label  string
	kind   menuKind
	action int // index into entry.Actions for menuAction
}

// entryMenu is the context menu open on one entry tile.
type entryMenu struct {
	entry  desktop.Entry
	items  []menuItem
	cursor int
}

// openMenu opens the context menu for the entry under the cursor.
func (m *Model) openMenu() {
	if m.cursor >= len(m.visible) {
		return
	}

	entry := m.visible[m.cursor]
	items := []menuItem{{label: "Launch", kind: menuLaunch}}

	for i, a := range entry.Actions {
		items = append(items, menuItem{label: a.Name, kind: menuAction, action: i})
	}

	if m.curGroup > 0 {
		g, _ := m.Library.At(m.curGroup)
		items = append(items, menuItem{label: "Remove from " + g.Name, kind: menuRemove})
	}

	m.menu = &entryMenu{entry: entry, items: items}
}

func (m Model) updateMenu(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	menu := m.menu

	switch msg.String() {
	case "esc":
		m.menu = nil
	case "up":
		if menu.cursor > 0 {
			menu.cursor--
		}
	case "down":
		if menu.cursor < len(menu.items)-1 {
			menu.cursor++
		}
	case "enter":
		item := menu.items[menu.cursor]
		m.menu = nil

		switch item.kind {
		case menuLaunch:
			return m, m.launchCmd(menu.entry)
		case menuAction:
			action := menu.entry.Actions[item.action]
			entry := menu.entry

			return m, func() tea.Msg {
				return launchedMsg{err: desktop.LaunchAction(entry, action, nil)}
			}
		case menuRemove:
			m.Library.RemoveEntry(m.curGroup, menu.entry.ID)
			group.Save(m.Settings.LibraryPath, m.Library)

			return m, m.requestRecompute()
		}
	}

	return m, nil
}
