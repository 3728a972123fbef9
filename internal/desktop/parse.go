package desktop

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Sentinel errors for desktop entry parsing.
var (
	ErrNoDisplay    = errors.New("entry is marked NoDisplay")
	ErrMissingName  = errors.New("entry has no Name")
	ErrNotDesktop   = errors.New("not a desktop entry file")
	ErrEmptySection = errors.New("no [Desktop Entry] section")
)

const (
	mainSection         = "[Desktop Entry]"
	actionSectionPrefix = "[Desktop Action "
)

// Parse reads and decodes a single .desktop file. Entries flagged
// NoDisplay=true are rejected with ErrNoDisplay so scans can skip them.
func Parse(path string) (Entry, error) {
	if filepath.Ext(path) != ".desktop" {
		return Entry{}, fmt.Errorf("%s: %w", path, ErrNotDesktop)
	}

	data, err := os.ReadFile(path) //nolint:gosec // path comes from a directory scan
	if err != nil {
		return Entry{}, fmt.Errorf("reading desktop entry: %w", err)
	}

	entry, err := decode(string(data))
	if err != nil {
		return Entry{}, fmt.Errorf("%s: %w", path, err)
	}

	entry.ID = strings.TrimSuffix(filepath.Base(path), ".desktop")
	entry.Path = path
	entry.Source = sourceForPath(path)

	return entry, nil
}

// decode parses the key=value sections of a desktop entry. Declared
// actions that have no matching [Desktop Action X] section are dropped,
// matching how launchers treat dangling Actions= references.
func decode(content string) (Entry, error) {
	var entry Entry

	sawMain := false
	noDisplay := false
	declared := []string{}
	actions := map[string]*EntryAction{}

	section := ""
	var action *EntryAction

	for line := range strings.SplitSeq(content, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if strings.HasPrefix(line, "[") && strings.HasSuffix(line, "]") {
			section = line
			action = nil

			if section == mainSection {
				sawMain = true
			} else if name, ok := strings.CutPrefix(section, actionSectionPrefix); ok {
				name = strings.TrimSuffix(name, "]")
				a := &EntryAction{}
				actions[name] = a
				action = a
			}

			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		key = strings.TrimSpace(key)
		value = strings.TrimSpace(value)

		if action != nil {
			switch key {
			case "Name":
				action.Name = value
			case "Exec":
				action.Exec = value
			}

			continue
		}

		if section != mainSection {
			continue
		}

		switch key {
		case "Name":
			if entry.Name == "" {
				entry.Name = value
			}
		case "Exec":
			entry.Exec = value
		case "Icon":
			entry.Icon = value
		case "Categories":
			entry.Categories = splitList(value)
		case "Actions":
			declared = splitList(value)
		case "NoDisplay":
			noDisplay = strings.EqualFold(value, "true")
		}
	}

	if !sawMain {
		return Entry{}, ErrEmptySection
	}
	if noDisplay {
		return Entry{}, ErrNoDisplay
	}
	if entry.Name == "" {
		return Entry{}, ErrMissingName
	}

	for _, name := range declared {
		if a, ok := actions[name]; ok && a.Name != "" && a.Exec != "" {
			entry.Actions = append(entry.Actions, *a)
		}
	}

	return entry, nil
}

// splitList splits a semicolon-delimited desktop entry list, dropping
// empty elements (the format allows a trailing semicolon).
func splitList(value string) []string {
	var out []string
	for part := range strings.SplitSeq(value, ";") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}

	return out
}
