package tui

import (
	"log/slog"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/appshelf/appshelf/internal/desktop"
	"github.com/appshelf/appshelf/internal/dnd"
	"github.com/appshelf/appshelf/internal/group"
)

// Update advances the panel by one message.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.clampCursor()
		m.syncWidgets()

		return m, nil

	case entriesLoadedMsg:
		m.entries = msg
		m.clampCursor()

		return m, m.requestRecompute()

	case recentLoadedMsg:
		m.recent = msg
		m.syncWidgets()

		return m, nil

	case recomputedMsg:
		m.recomputing = false
		m.visible = msg.visible
		m.clampCursor()
		m.syncWidgets()

		// The landed result may be stale: converge to the latest input.
		if m.recomputeQ || msg.search != m.search.Value() || msg.group != m.curGroup {
			m.recomputeQ = false

			return m, m.requestRecompute()
		}

		return m, nil

	case launchedMsg:
		if msg.err != nil {
			slog.Error("launching application", "error", msg.err)
		}

		return m, m.recentCmd()

	case tea.BlurMsg:
		return m.resetOnFocusLoss()

	case tea.MouseMsg:
		return m.updateMouse(msg)

	case tea.KeyMsg:
		return m.updateKeys(msg)
	}

	return m, nil
}

// resetOnFocusLoss abandons any in-progress offer or drag and returns
// every piece of visible state (search, edit mode, menu) to defaults.
func (m Model) resetOnFocusLoss() (tea.Model, tea.Cmd) {
	m.handleNotes(m.bus.CancelDrag())
	m.menu = nil
	m.editMode = false
	m.editingName = false
	m.search.SetValue("")
	m.cursor = 0
	m.scroll = 0
	m.pressedTile = -1
	m.dropHover = -1

	return m, m.requestRecompute()
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	p := dnd.Point{X: float64(msg.X), Y: float64(msg.Y)}

	switch msg.Action {
	case tea.MouseActionPress:
		if msg.Button == tea.MouseButtonRight {
			if i := m.tileAt(p); i >= 0 {
				m.cursor = i
				m.openMenu()
			}

			return m, nil
		}
		if msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		m.menu = nil
		if i := m.tileAt(p); i >= 0 {
			m.cursor = i
			m.pressedTile = i
			if m.visible[i].Draggable() {
				m.dragFromGroup = m.curGroup
				m.dragEntryID = m.visible[i].ID
				m.dragApplied = false
				m.bus.Press(m.sources[i], p)
			}

			return m, nil
		}
		if g := m.groupAt(p); g >= 0 {
			m.curGroup = g
			m.cursor = 0
			m.scroll = 0

			return m, m.requestRecompute()
		}

		return m, nil

	case tea.MouseActionMotion:
		m.handleNotes(m.bus.Motion(p))

		return m, nil

	case tea.MouseActionRelease:
		wasDragging := m.bus.Dragging()
		cmd := m.handleNotes(m.bus.Release(p))
		pressed := m.pressedTile
		m.pressedTile = -1

		// A press that never promoted into a drag is a click.
		if !wasDragging && pressed >= 0 && pressed < len(m.visible) &&
			m.sources[pressed].Bounds.Contains(p) {
			return m, m.launchCmd(m.visible[pressed])
		}

		return m, cmd
	}

	return m, nil
}

// handleNotes applies the application-level drag notifications produced
// by one pointer event. Returns a recompute command when the group
// model changed.
func (m *Model) handleNotes(notes []dnd.Note) tea.Cmd {
	changed := false

	for _, n := range notes {
		switch n := n.(type) {
		case dnd.NoteOfferStarted:
			m.dropHover = n.Index
		case dnd.NoteOfferLeft:
			if m.dropHover == n.Index {
				m.dropHover = -1
			}
		case dnd.NoteDrop:
			entry, ok := m.entryByPath(n.Path)
			if !ok {
				// Payload decoded to a file outside the current scan;
				// the drop is dropped entirely.
				continue
			}
			m.Library.AddEntry(n.Index, entry.ID)
			m.dragApplied = true
			changed = true
		case dnd.NoteFinish:
			if n.IsMove && m.dragApplied {
				m.Library.RemoveEntry(m.dragFromGroup, m.dragEntryID)
				changed = true
			}
			m.dropHover = -1
		case dnd.NoteCancel:
			m.dropHover = -1
		}
	}

	if !changed {
		return nil
	}

	group.Save(m.Settings.LibraryPath, m.Library)

	return m.requestRecompute()
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, GridKeys.ForceQuit) {
		return m, tea.Quit
	}
	if key.Matches(msg, GridKeys.Suspend) {
		return m, tea.Suspend
	}

	if m.menu != nil {
		return m.updateMenu(msg)
	}

	if m.editingName {
		return m.updateNameInput(msg)
	}

	if m.editMode {
		return m.updateEditMode(msg)
	}

	return m.updateGrid(msg)
}

func (m Model) updateGrid(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	cols := m.Settings.Columns

	switch {
	case key.Matches(msg, GridKeys.Escape):
		if m.bus.Dragging() {
			m.handleNotes(m.bus.CancelDrag())

			return m, nil
		}
		if m.search.Value() != "" {
			m.search.SetValue("")

			return m, m.requestRecompute()
		}

		return m, tea.Quit

	case key.Matches(msg, GridKeys.Up):
		m.cursor -= cols
		m.clampCursor()
	case key.Matches(msg, GridKeys.Down):
		m.cursor += cols
		m.clampCursor()
	case key.Matches(msg, GridKeys.Left):
		m.cursor--
		m.clampCursor()
	case key.Matches(msg, GridKeys.Right):
		m.cursor++
		m.clampCursor()

	case key.Matches(msg, GridKeys.PrevGroup):
		m.curGroup = (m.curGroup - 1 + m.Library.Len()) % m.Library.Len()
		m.cursor = 0
		m.scroll = 0

		return m, m.requestRecompute()
	case key.Matches(msg, GridKeys.NextGroup):
		m.curGroup = (m.curGroup + 1) % m.Library.Len()
		m.cursor = 0
		m.scroll = 0

		return m, m.requestRecompute()

	case key.Matches(msg, GridKeys.Launch):
		if m.cursor < len(m.visible) {
			return m, m.launchCmd(m.visible[m.cursor])
		}
	case key.Matches(msg, GridKeys.Menu):
		m.openMenu()
	case key.Matches(msg, GridKeys.EditGroups):
		m.editMode = true

	default:
		var cmd tea.Cmd
		before := m.search.Value()
		m.search, cmd = m.search.Update(msg)
		if m.search.Value() != before {
			return m, tea.Batch(cmd, m.requestRecompute())
		}

		return m, cmd
	}

	return m, nil
}

func (m Model) updateEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, EditKeys.Done):
		m.editMode = false
	case key.Matches(msg, EditKeys.New):
		m.renameIdx = -1
		m.editingName = true
		m.nameInput.SetValue("")
		m.nameInput.Focus()
	case key.Matches(msg, EditKeys.Rename):
		// Index 0 can never be renamed.
		if m.curGroup > 0 {
			m.renameIdx = m.curGroup
			g, _ := m.Library.At(m.curGroup)
			m.editingName = true
			m.nameInput.SetValue(g.Name)
			m.nameInput.Focus()
		}
	case key.Matches(msg, EditKeys.Delete):
		if m.curGroup > 0 {
			m.Library.Remove(m.curGroup)
			group.Save(m.Settings.LibraryPath, m.Library)
			m.curGroup = 0
			m.syncWidgets()

			return m, m.requestRecompute()
		}
	case key.Matches(msg, GridKeys.PrevGroup), key.Matches(msg, GridKeys.Left):
		m.curGroup = (m.curGroup - 1 + m.Library.Len()) % m.Library.Len()

		return m, m.requestRecompute()
	case key.Matches(msg, GridKeys.NextGroup), key.Matches(msg, GridKeys.Right):
		m.curGroup = (m.curGroup + 1) % m.Library.Len()

		return m, m.requestRecompute()
	}

	return m, nil
}

func (m Model) updateNameInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		name := m.nameInput.Value()
		if m.renameIdx < 0 {
			if name != "" {
				m.Library.Add(name)
				m.curGroup = m.Library.Len() - 1
			}
		} else {
			m.Library.SetName(m.renameIdx, name)
		}
		group.Save(m.Settings.LibraryPath, m.Library)
		m.editingName = false
		m.syncWidgets()

		return m, m.requestRecompute()
	case "esc":
		m.editingName = false

		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)

	return m, cmd
}

func (m *Model) launchCmd(entry desktop.Entry) tea.Cmd {
	store := m.History

	return func() tea.Msg {
		err := desktop.Launch(entry, nil)
		if err == nil && store != nil {
			if rerr := store.RecordLaunch(entry.ID); rerr != nil {
				slog.Debug("recording launch", "entry", entry.ID, "error", rerr)
			}
		}

		return launchedMsg{err: err}
	}
}
