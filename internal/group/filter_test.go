package group

import (
	"reflect"
	"testing"

	"github.com/appshelf/appshelf/internal/desktop"
)

func testGroups() []Group {
	return []Group{
		Home(),
		{Name: "Media", Filter: Filter{Kind: FilterCategories, Categories: []string{"AudioVideo"}}},
		{Name: "Office", Filter: Filter{Kind: FilterCategories, Categories: []string{"Office"}}},
	}
}

func testEntries() []desktop.Entry {
	return []desktop.Entry{
		{ID: "org.example.Player", Name: "Player", Categories: []string{"AudioVideo"}},
		{ID: "org.example.Text", Name: "Text Editor", Categories: []string{"Office", "TextEditor"}},
		{ID: "org.example.Game", Name: "Adventure", Categories: []string{"Game"}},
	}
}

func ids(entries []desktop.Entry) []string {
	var out []string
	for _, e := range entries {
		out = append(out, e.ID)
	}

	return out
}

func TestFilteredHome(t *testing.T) {
	t.Parallel()

	groups := testGroups()
	entries := testEntries()

	// Home shows only what no other group claims.
	got := ids(Filtered(groups, 0, "", entries))
	want := []string{"org.example.Game"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Filtered(Home) = %v, want %v", got, want)
	}

	// Running it again with unchanged state yields identical output.
	again := ids(Filtered(groups, 0, "", entries))
	if !reflect.DeepEqual(got, again) {
		t.Errorf("Filtered(Home) not stable: %v then %v", got, again)
	}

	// Search overrides group exclusivity on Home.
	got = ids(Filtered(groups, 0, "text", entries))
	want = []string{"org.example.Text"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Filtered(Home, text) = %v, want %v", got, want)
	}
}

func TestFilteredCategories(t *testing.T) {
	t.Parallel()

	groups := testGroups()
	entries := testEntries()

	tests := []struct {
		name   string
		group  int
		search string
		want   []string
	}{
		{"media by category", 1, "", []string{"org.example.Player"}},
		{"office by category", 2, "", []string{"org.example.Text"}},
		{"search narrows within group", 2, "text", []string{"org.example.Text"}},
		{"search does not widen group", 1, "text", nil},
		{"no match", 2, "zzz", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := ids(Filtered(groups, tt.group, tt.search, entries))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filtered(%d, %q) = %v, want %v", tt.group, tt.search, got, tt.want)
			}
		})
	}
}

func TestFilteredIncludeExclude(t *testing.T) {
	t.Parallel()

	groups := testGroups()
	entries := testEntries()

	// Include pins an entry that matches no category.
	groups[1].Filter.Include = []string{"org.example.Game"}
	got := ids(Filtered(groups, 1, "", entries))
	// "Adventure" sorts before "Player".
	if !reflect.DeepEqual(got, []string{"org.example.Game", "org.example.Player"}) {
		t.Errorf("include pin: Filtered = %v", got)
	}

	// Exclude suppresses a category match.
	groups[2].Filter.Exclude = []string{"org.example.Text"}
	if got := Filtered(groups, 2, "", entries); len(got) != 0 {
		t.Errorf("exclude: Filtered = %v, want empty", ids(got))
	}

	// Excluded from Office, the entry reappears on Home.
	homeIDs := ids(Filtered(groups, 0, "", entries))
	found := false
	for _, id := range homeIDs {
		if id == "org.example.Text" {
			found = true
		}
	}
	if !found {
		t.Errorf("excluded entry missing from Home: %v", homeIDs)
	}
}

// TestRemoveEntryNarrowsSearch pins the concrete scenario from the
// group-membership rules: once an entry is excluded, searching inside
// the group cannot resurface it.
func TestRemoveEntryNarrowsSearch(t *testing.T) {
	t.Parallel()

	lib := NewLibrary([]Group{
		{Name: "Extra", Filter: Filter{Kind: FilterCategories}},
		{Name: "Office", Filter: Filter{Kind: FilterCategories, Categories: []string{"Office"}}},
	})
	entry := desktop.Entry{ID: "org.example.Text", Name: "Text", Categories: []string{"Office", "TextEditor"}}
	entries := []desktop.Entry{entry}

	if got := Filtered(lib.Snapshot(), 2, "", entries); len(got) != 1 {
		t.Fatalf("precondition: entry should match Office, got %v", ids(got))
	}

	lib.RemoveEntry(2, "org.example.Text")

	if got := Filtered(lib.Snapshot(), 2, "", entries); len(got) != 0 {
		t.Errorf("after RemoveEntry: Filtered = %v, want empty", ids(got))
	}
	if got := Filtered(lib.Snapshot(), 2, "Office", entries); len(got) != 0 {
		t.Errorf("search must not resurface an excluded entry: %v", ids(got))
	}
}

func TestFilteredOrdering(t *testing.T) {
	t.Parallel()

	groups := []Group{Home()}
	entries := []desktop.Entry{
		{ID: "c", Name: "cherry"},
		{ID: "a", Name: "Apple"},
		{ID: "b", Name: "banana"},
	}

	got := ids(Filtered(groups, 0, "", entries))
	want := []string{"a", "b", "c"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ordering = %v, want %v (case-insensitive by name)", got, want)
	}
}

func TestFilteredOutOfRange(t *testing.T) {
	t.Parallel()

	if got := Filtered(testGroups(), 99, "", testEntries()); got != nil {
		t.Errorf("out-of-range group index should yield nil, got %v", ids(got))
	}
}
