package group

import "slices"

// Library is the ordered list of groups. Index 0 is always the Home
// pseudo-group; everything after it comes from the persisted config.
// All mutation happens synchronously on the UI goroutine; background
// recomputation works against a Snapshot.
//
// Mutations with an out-of-range index are silent no-ops: UI-driven
// indices are derived from the current list and races resolve on the
// next recompute.
type Library struct {
	groups []Group
}

// NewLibrary builds a library from the persisted user groups.
func NewLibrary(user []Group) *Library {
	return &Library{groups: append([]Group{Home()}, user...)}
}

// Len returns the number of groups, Home included.
func (l *Library) Len() int {
	return len(l.groups)
}

// At returns the group at the combined index.
func (l *Library) At(i int) (Group, bool) {
	if i < 0 || i >= len(l.groups) {
		return Group{}, false
	}

	return l.groups[i], true
}

// Snapshot returns a deep copy of the combined group list, safe to hand
// to a background task while the UI keeps mutating the library.
func (l *Library) Snapshot() []Group {
	out := make([]Group, len(l.groups))
	for i, g := range l.groups {
		g.Filter.Categories = slices.Clone(g.Filter.Categories)
		g.Filter.Include = slices.Clone(g.Filter.Include)
		g.Filter.Exclude = slices.Clone(g.Filter.Exclude)
		out[i] = g
	}

	return out
}

// UserGroups returns the persistable groups (everything but Home).
func (l *Library) UserGroups() []Group {
	return l.Snapshot()[1:]
}

// AddEntry adds an entry to the group at the combined index.
//
// For a categories group the id is removed from the exclude list and
// pinned into the include list, idempotently. For Home (index 0) the id
// is instead pushed into every other group's exclude list: Home has no
// filter state of its own, so forcing exclusion everywhere else is what
// "return to Home" means.
func (l *Library) AddEntry(i int, id string) {
	if i < 0 || i >= len(l.groups) {
		return
	}

	if l.groups[i].Filter.Kind == FilterNone {
		for j := range l.groups {
			f := &l.groups[j].Filter
			if j == i || f.Kind != FilterCategories {
				continue
			}
			f.Include = remove(f.Include, id)
			f.Exclude = appendUnique(f.Exclude, id)
		}

		return
	}

	f := &l.groups[i].Filter
	f.Exclude = remove(f.Exclude, id)
	f.Include = appendUnique(f.Include, id)
}

// RemoveEntry takes an entry out of the group at the combined index:
// the id leaves the include list and lands on the exclude list, even if
// it was never included explicitly. This asymmetry is deliberate; see
// AddEntry for how Home membership is derived.
func (l *Library) RemoveEntry(i int, id string) {
	if i < 0 || i >= len(l.groups) || l.groups[i].Filter.Kind != FilterCategories {
		return
	}

	f := &l.groups[i].Filter
	f.Include = remove(f.Include, id)
	f.Exclude = appendUnique(f.Exclude, id)
}

// Add appends a new empty user group. Entries only join it via include
// pins (drag-and-drop), so it starts with no categories.
func (l *Library) Add(name string) {
	l.groups = append(l.groups, Group{
		Name:   name,
		Icon:   "folder-symbolic",
		Filter: Filter{Kind: FilterCategories},
	})
}

// Remove deletes the group at the combined index. Index 0 is guarded.
func (l *Library) Remove(i int) {
	if i <= 0 || i >= len(l.groups) {
		return
	}

	l.groups = slices.Delete(l.groups, i, i+1)
}

// SetName renames the group at the combined index. Index 0 is guarded.
func (l *Library) SetName(i int, name string) {
	if i <= 0 || i >= len(l.groups) || name == "" {
		return
	}

	l.groups[i].Name = name
}

func appendUnique(list []string, id string) []string {
	if slices.Contains(list, id) {
		return list
	}

	return append(list, id)
}

func remove(list []string, id string) []string {
	return slices.DeleteFunc(list, func(s string) bool { return s == id })
}
