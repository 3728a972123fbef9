package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// View renders the panel: search bar, optional recent strip, app grid,
// group row, help line. Tiles are fixed-size so rendered cells line up
// with the drag-and-drop hit boxes.
func (m Model) View() string {
	var b strings.Builder

	b.WriteString(SearchStyle.Render(m.search.View()))
	b.WriteString("\n\n")

	if m.showRecent() {
		b.WriteString(RecentStyle.Render("Recent: " + strings.Join(m.recentNames(), ", ")))
		b.WriteString("\n")
	}

	b.WriteString(m.viewGrid())
	b.WriteString(m.viewGroups())
	b.WriteString("\n")
	b.WriteString(m.viewHelp())

	if m.menu != nil {
		b.WriteString("\n")
		b.WriteString(m.viewMenu())
	}

	return b.String()
}

func (m Model) recentNames() []string {
	var names []string
	for _, id := range m.recent {
		if e, ok := m.entryByID(id); ok {
			names = append(names, e.Name)
		}
	}

	return names
}

func (m Model) viewGrid() string {
	cols := m.Settings.Columns
	rows := m.gridRows()

	var out strings.Builder
	for row := range rows {
		var tiles []string
		for col := range cols {
			i := (m.scroll+row)*cols + col
			if i >= len(m.visible) {
				break
			}
			tiles = append(tiles, m.viewTile(i))
		}
		if len(tiles) == 0 {
			out.WriteString(strings.Repeat("\n", tileHeight))

			continue
		}
		out.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, tiles...))
		out.WriteString("\n")
	}

	return out.String()
}

func (m Model) viewTile(i int) string {
	e := m.visible[i]

	name := e.Name
	if e.ShowSource {
		name += " (" + e.Source.String() + ")"
	}
	if len(name) > tileWidth-2 {
		name = name[:tileWidth-5] + "..."
	}

	label := "󰀻\n" + name
	if !e.Draggable() {
		label = "󰀻\n" + name + "\n" + TileSourceStyle.Render("pinned")
	}

	style := TileStyle
	switch {
	case m.bus.Dragging() && e.ID == m.dragEntryID:
		style = DraggingTileStyle
	case i == m.cursor:
		style = SelectedTileStyle
	}

	return style.Render(label)
}

func (m Model) viewGroups() string {
	var tiles []string
	for i := range m.Library.Len() {
		g, _ := m.Library.At(i)

		style := GroupStyle
		switch {
		case i == m.dropHover:
			style = DropGroupStyle
		case m.editMode && i == m.curGroup:
			style = EditGroupStyle
		case i == m.curGroup:
			style = SelectedGroupStyle
		}

		glyph := "󰉋"
		if i == 0 {
			glyph = "󰋜"
		}

		name := g.Name
		if m.editingName && i == m.renameIdx {
			name = m.nameInput.View()
		}

		tiles = append(tiles, style.Render(glyph+"\n"+name))
	}

	// A group being created renders as a phantom tile at the end.
	if m.editingName && m.renameIdx < 0 {
		tiles = append(tiles, EditGroupStyle.Render("󰉋\n"+m.nameInput.View()))
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, tiles...)
}

func (m Model) viewHelp() string {
	if m.editingName {
		return HelpStyle.Render("enter save · esc cancel")
	}
	if m.editMode {
		return HelpStyle.Render("ctrl+n new · f2 rename · ctrl+d delete · ctrl+e done")
	}

	return HelpStyle.Render("tab group · enter launch · ctrl+o menu · ctrl+e edit · esc clear/quit")
}

func (m Model) viewMenu() string {
	var lines []string
	for i, item := range m.menu.items {
		style := MenuItemStyle
		if i == m.menu.cursor {
			style = SelectedMenuItemStyle
		}
		lines = append(lines, style.Render(item.label))
	}

	return MenuStyle.Render(strings.Join(lines, "\n"))
}
