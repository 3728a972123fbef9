package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/appshelf/appshelf/internal/desktop"
	"github.com/appshelf/appshelf/internal/dnd"
	"github.com/appshelf/appshelf/internal/group"
	"github.com/appshelf/appshelf/internal/history"
	"github.com/appshelf/appshelf/internal/settings"
)

// Fixed tile geometry, in terminal cells. Rendering and drag-and-drop
// hit testing share these numbers.
const (
	tileWidth   = 20
	tileHeight  = 4
	groupWidth  = 16
	groupHeight = 3
)

// Model is the panel state. All mutation happens synchronously in
// Update; background commands only carry immutable snapshots.
type Model struct {
	Settings settings.Settings
	Library  *group.Library
	History  *history.Store // may be nil when the store failed to open

	entries []desktop.Entry // full scan, replaced atomically
	visible []desktop.Entry // filtered list for the current group/search
	recent  []string        // recently launched ids for the Home strip

	curGroup int
	cursor   int
	scroll   int // first visible grid row
	search   textinput.Model

	editMode    bool
	nameInput   textinput.Model
	editingName bool
	renameIdx   int // combined group index being renamed, -1 = new group

	menu *entryMenu

	// At most one filtered-list recompute runs at a time; when the
	// in-flight one lands with stale inputs a fresh one starts, so the
	// view converges to the latest input (last-write-wins).
	recomputing bool
	recomputeQ  bool

	// Drag state for the gesture in flight.
	sources       []*dnd.Source
	targets       []*dnd.Target
	bus           dnd.Bus
	pressedTile   int // tile index of the current press, -1 if none
	dragFromGroup int
	dragEntryID   string
	dragApplied   bool
	dropHover     int // group tile currently claiming the offer, -1 if none

	width  int
	height int
}

// Messages delivered back into the update loop.
type (
	entriesLoadedMsg []desktop.Entry
	recentLoadedMsg  []string
	recomputedMsg    struct {
		group   int
		search  string
		visible []desktop.Entry
	}
	launchedMsg struct{ err error }
)

// NewModel builds the initial panel model.
func NewModel(s settings.Settings, lib *group.Library, store *history.Store) Model {
	search := textinput.New()
	search.Placeholder = "Search applications"
	search.Prompt = "> "
	search.Focus()

	name := textinput.New()
	name.Prompt = "name: "
	name.CharLimit = 48

	return Model{
		Settings:    s,
		Library:     lib,
		History:     store,
		search:      search,
		nameInput:   name,
		pressedTile: -1,
		dropHover:   -1,
		renameIdx:   -1,
		width:       100,
		height:      40,
	}
}

// Init starts the desktop entry scan and the recent-launch lookup.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.scanCmd(), m.recentCmd())
}

func (m Model) scanCmd() tea.Cmd {
	dirs := m.Settings.ScanDirs

	return func() tea.Msg {
		return entriesLoadedMsg(desktop.Scan(dirs))
	}
}

func (m Model) recentCmd() tea.Cmd {
	store := m.History
	limit := m.Settings.RecentCount
	if store == nil || limit == 0 {
		return nil
	}

	return func() tea.Msg {
		ids, err := store.Recent(limit)
		if err != nil {
			return recentLoadedMsg(nil)
		}

		return recentLoadedMsg(ids)
	}
}

// requestRecompute dispatches the filtered-list recomputation to a
// background command, bounded to one in flight.
func (m *Model) requestRecompute() tea.Cmd {
	if m.recomputing {
		m.recomputeQ = true

		return nil
	}

	m.recomputing = true
	groups := m.Library.Snapshot()
	idx := m.curGroup
	search := m.search.Value()
	entries := m.entries

	return func() tea.Msg {
		return recomputedMsg{
			group:   idx,
			search:  search,
			visible: group.Filtered(groups, idx, search, entries),
		}
	}
}

// entryByID finds an entry in the current scan.
func (m *Model) entryByID(id string) (desktop.Entry, bool) {
	for _, e := range m.entries {
		if e.ID == id {
			return e, true
		}
	}

	return desktop.Entry{}, false
}

// entryByPath finds the entry whose origin file matches a decoded drag
// payload.
func (m *Model) entryByPath(path string) (desktop.Entry, bool) {
	for _, e := range m.entries {
		if e.Path == path {
			return e, true
		}
	}

	return desktop.Entry{}, false
}

// gridTop returns the first grid row, below the search bar and the
// optional recent strip.
func (m *Model) gridTop() int {
	top := 2
	if m.showRecent() {
		top++
	}

	return top
}

func (m *Model) showRecent() bool {
	return m.curGroup == 0 && m.search.Value() == "" && len(m.recent) > 0
}

// gridRows returns how many tile rows fit between the search bar and
// the group row.
func (m *Model) gridRows() int {
	rows := (m.height - m.gridTop() - groupHeight - 1) / tileHeight
	if rows < 1 {
		rows = 1
	}

	return rows
}

// groupRowTop returns the row the group tiles start at.
func (m *Model) groupRowTop() int {
	return m.gridTop() + m.gridRows()*tileHeight
}

// syncWidgets rebuilds the drag sources and drop targets to match the
// current visible list and group list, updating layout bounds used for
// hit testing. Target machines persist across layout as long as the
// group count is unchanged, so an offer in flight keeps its state.
func (m *Model) syncWidgets() {
	cols := m.Settings.Columns

	m.sources = make([]*dnd.Source, len(m.visible))
	for i, e := range m.visible {
		src := &dnd.Source{Bounds: m.tileBounds(i, cols), Icon: e.Icon}
		if e.Draggable() {
			src.Payload = dnd.EncodePath(e.Path)
		}
		m.sources[i] = src
	}

	if len(m.targets) != m.Library.Len() {
		m.targets = make([]*dnd.Target, m.Library.Len())
		for i := range m.targets {
			m.targets[i] = &dnd.Target{}
		}
		m.bus.Targets = m.targets
	}
	for i, t := range m.targets {
		t.Bounds = m.groupBounds(i)
	}
}

func (m *Model) tileBounds(i, cols int) dnd.Rect {
	row := i/cols - m.scroll
	col := i % cols

	// Scrolled-off tiles get an empty rectangle so they can never claim
	// a pointer event.
	if row < 0 || row >= m.gridRows() {
		return dnd.Rect{}
	}

	return dnd.Rect{
		X: float64(col * tileWidth),
		Y: float64(m.gridTop() + row*tileHeight),
		W: tileWidth,
		H: tileHeight,
	}
}

func (m *Model) groupBounds(i int) dnd.Rect {
	return dnd.Rect{
		X: float64(i * groupWidth),
		Y: float64(m.groupRowTop()),
		W: groupWidth,
		H: groupHeight,
	}
}

// tileAt returns the visible tile index under a point, or -1.
func (m *Model) tileAt(p dnd.Point) int {
	for i := range m.visible {
		if m.sources[i].Bounds.Contains(p) {
			return i
		}
	}

	return -1
}

// groupAt returns the group tile index under a point, or -1.
func (m *Model) groupAt(p dnd.Point) int {
	for i, t := range m.targets {
		if t.Bounds.Contains(p) {
			return i
		}
	}

	return -1
}

// clampCursor keeps the cursor on the visible list and scrolls the grid
// to keep it on screen.
func (m *Model) clampCursor() {
	if m.cursor >= len(m.visible) {
		m.cursor = len(m.visible) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}

	if len(m.visible) == 0 {
		m.scroll = 0

		return
	}

	row := m.cursor / m.Settings.Columns
	if row < m.scroll {
		m.scroll = row
	}
	if row >= m.scroll+m.gridRows() {
		m.scroll = row - m.gridRows() + 1
	}
}
