package tui

import (
	"regexp"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/sebdah/goldie/v2"

	"github.com/appshelf/appshelf/internal/desktop"
	"github.com/appshelf/appshelf/internal/group"
	"github.com/appshelf/appshelf/internal/settings"
)

// TestView_Snapshots tests the rendered panel in various states using
// golden file snapshots.
func TestView_Snapshots(t *testing.T) {
	tests := []struct {
		name      string
		setupFunc func(*Model)
	}{
		{"basic_grid", setupBasicGrid},
		{"search_active", setupSearchActive},
		{"edit_mode", setupEditMode},
		{"new_group", setupNewGroup},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Force ASCII color profile for consistent rendering
			lipgloss.SetColorProfile(termenv.Ascii)

			m := snapshotModel()
			tt.setupFunc(&m)
			m.syncWidgets()

			output := m.View()

			plainText := stripAnsiCodes(output)
			normalized := normalizeOutput(plainText)

			g := goldie.New(t)
			g.Assert(t, tt.name, []byte(normalized))
		})
	}
}

// snapshotModel builds a model with a fixed library and scan so the
// rendered output is fully deterministic.
func snapshotModel() Model {
	lib := group.NewLibrary([]group.Group{
		{Name: "Office", Filter: group.Filter{Kind: group.FilterCategories, Categories: []string{"Office"}}},
		{Name: "Games", Filter: group.Filter{Kind: group.FilterCategories, Categories: []string{"Game"}}},
	})

	m := NewModel(settings.Settings{Columns: 3}, lib, nil)
	m.entries = []desktop.Entry{
		{ID: "radio", Name: "Radio", Categories: []string{"Audio"}, Path: "/apps/radio.desktop"},
		{ID: "writer", Name: "Writer", Categories: []string{"Office"}, Path: "/apps/writer.desktop"},
		{ID: "chess", Name: "Chess", Categories: []string{"Game"}, Path: "/apps/chess.desktop"},
	}

	return m
}

func (m *Model) recomputeNow() {
	m.visible = group.Filtered(m.Library.Snapshot(), m.curGroup, m.search.Value(), m.entries)
}

func setupBasicGrid(m *Model) {
	m.recomputeNow()
}

func setupSearchActive(m *Model) {
	m.search.SetValue("e")
	m.recomputeNow()
}

func setupEditMode(m *Model) {
	m.editMode = true
	m.recomputeNow()
}

func setupNewGroup(m *Model) {
	m.editMode = true
	m.editingName = true
	m.renameIdx = -1
	m.nameInput.SetValue("")
	m.nameInput.Focus()
	m.recomputeNow()
}

// ansiRegex matches ANSI escape sequences for color and formatting.
var ansiRegex = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

func stripAnsiCodes(s string) string {
	return ansiRegex.ReplaceAllString(s, "")
}

// normalizeOutput normalizes terminal output for consistent comparison:
// collapses runs of whitespace within each line (alignment padding is a
// styling concern, not what these snapshots pin), and removes trailing
// empty lines.
func normalizeOutput(s string) string {
	lines := strings.Split(s, "\n")

	for i, line := range lines {
		lines[i] = strings.Join(strings.Fields(line), " ")
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}

	return strings.Join(lines, "\n")
}
