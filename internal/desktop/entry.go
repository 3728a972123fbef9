// Package desktop loads and represents freedesktop desktop entries.
package desktop

import (
	"strings"
)

// EntryAction is a named sub-command declared by a desktop entry
// (the [Desktop Action ...] groups of the file).
type EntryAction struct {
	Name string
	Exec string
}

// Entry is the in-memory representation of one launchable application.
// Entries are immutable once loaded; a fresh scan replaces the whole
// collection atomically.
type Entry struct {
	// ID is the desktop file id (file name without the .desktop suffix).
	ID string
	// Name is the display name.
	Name string
	// Exec is the raw command line, possibly containing %-placeholders.
	Exec string
	// Icon is the icon name or path, may be empty.
	Icon string
	// Categories are the free-form category tags.
	Categories []string
	// Path is the origin file. Entries without a path are not draggable.
	Path string
	// Actions are the named sub-commands.
	Actions []EntryAction

	// Source is the provenance of the origin file.
	Source Source
	// ShowSource marks entries whose name or id collides with a neighbor
	// after the name sort, so the UI can disambiguate them.
	ShowSource bool
}

// Draggable reports whether the entry can be dragged between groups.
// Only entries backed by an origin file can be serialized as a drag payload.
func (e Entry) Draggable() bool {
	return e.Path != ""
}

// HasCategory reports whether the entry carries the given category,
// compared case-insensitively.
func (e Entry) HasCategory(category string) bool {
	for _, c := range e.Categories {
		if strings.EqualFold(c, category) {
			return true
		}
	}

	return false
}

// Matches reports whether the entry's name or any of its categories
// contains the search text, compared case-insensitively.
func (e Entry) Matches(search string) bool {
	if search == "" {
		return true
	}

	search = strings.ToLower(search)
	if strings.Contains(strings.ToLower(e.Name), search) {
		return true
	}

	for _, c := range e.Categories {
		if strings.Contains(strings.ToLower(c), search) {
			return true
		}
	}

	return false
}
