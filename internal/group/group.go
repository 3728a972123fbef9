// Package group decides which desktop entries belong to which library
// group and owns the persisted group definitions.
package group

import (
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/appshelf/appshelf/internal/desktop"
)

// FilterKind selects how a group claims entries.
type FilterKind string

// Filter kinds.
const (
	// FilterNone matches everything; reserved for the Home pseudo-group.
	FilterNone FilterKind = "none"
	// FilterCategories matches by category with include/exclude overrides.
	FilterCategories FilterKind = "categories"
)

// Filter decides membership for one group.
type Filter struct {
	Kind       FilterKind `yaml:"kind"`
	Categories []string   `yaml:"categories,omitempty"`
	// Include pins entry ids into the group regardless of category.
	Include []string `yaml:"include,omitempty"`
	// Exclude suppresses entry ids that would otherwise match by category.
	Exclude []string `yaml:"exclude,omitempty"`
}

// Group is one named bucket of desktop entries.
type Group struct {
	Name   string `yaml:"name"`
	Icon   string `yaml:"icon"`
	Filter Filter `yaml:"filter"`
}

// Home returns the index-0 pseudo-group. Its membership is derived from
// the other groups, never stored, and it can never be renamed or removed.
func Home() Group {
	return Group{Name: "Home", Icon: "user-home-symbolic", Filter: Filter{Kind: FilterNone}}
}

// Defaults returns the groups a fresh library is seeded with.
func Defaults() []Group {
	return []Group{
		{Name: "Office", Icon: "folder-symbolic", Filter: Filter{Kind: FilterCategories, Categories: []string{"Office"}}},
		{Name: "System", Icon: "folder-symbolic", Filter: Filter{Kind: FilterCategories, Categories: []string{"System"}}},
		{Name: "Utilities", Icon: "folder-symbolic", Filter: Filter{Kind: FilterCategories, Categories: []string{"Utility"}}},
	}
}

// claims reports whether the filter would show the entry with no search
// active: a category match not overridden by exclude, or a pinned include.
func (f Filter) claims(e desktop.Entry) bool {
	if f.Kind != FilterCategories {
		return false
	}

	if slices.Contains(f.Include, e.ID) {
		return true
	}

	if slices.Contains(f.Exclude, e.ID) {
		return false
	}

	for _, c := range f.Categories {
		if e.HasCategory(c) {
			return true
		}
	}

	return false
}

// Filtered computes the ordered visible list for one group.
//
// The Home pseudo-group (FilterNone) shows every entry claimed by no
// other group when search is empty; a non-empty search ignores that
// exclusivity and matches name or category substrings across all entries.
// A categories group shows its claimed entries, and search narrows within
// them. The result is ordered case-insensitively by display name.
//
// Filtered is a pure function of its inputs so it can run on a background
// task against a snapshot of the group list.
func Filtered(groups []Group, groupIndex int, search string, entries []desktop.Entry) []desktop.Entry {
	if groupIndex < 0 || groupIndex >= len(groups) {
		return nil
	}

	g := groups[groupIndex]
	var out []desktop.Entry

	for _, e := range entries {
		if matches(groups, g, groupIndex, search, e) {
			out = append(out, e)
		}
	}

	c := collate.New(language.Und, collate.IgnoreCase)
	c.Sort(byEntryName(out))

	return out
}

func matches(groups []Group, g Group, groupIndex int, search string, e desktop.Entry) bool {
	if g.Filter.Kind == FilterNone {
		if search != "" {
			return e.Matches(search)
		}

		// Home shows what no other group claims.
		for i, other := range groups {
			if i != groupIndex && other.Filter.claims(e) {
				return false
			}
		}

		return true
	}

	if !g.Filter.claims(e) {
		return false
	}

	return e.Matches(search)
}

type byEntryName []desktop.Entry

func (s byEntryName) Len() int           { return len(s) }
func (s byEntryName) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s byEntryName) Bytes(i int) []byte { return []byte(s[i].Name) }
