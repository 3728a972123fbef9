package desktop

import (
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
)

// DefaultScanDirs returns the standard application directories, most
// specific first. Missing directories are fine; Scan skips them.
func DefaultScanDirs() []string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = ""
	}

	dirs := []string{}
	if home != "" {
		dirs = append(dirs,
			filepath.Join(home, ".local/share/applications"),
			filepath.Join(home, ".local/share/flatpak/exports/share/applications"),
			filepath.Join(home, ".nix-profile/share/applications"),
		)
	}

	return append(dirs,
		"/var/lib/flatpak/exports/share/applications",
		"/var/lib/snapd/desktop/applications",
		"/usr/share/applications",
		"/usr/local/share/applications",
	)
}

// Scan walks the given directories and parses every desktop entry found.
// A file that fails to parse is skipped; the scan never aborts as a whole.
// The result is sorted case-insensitively by display name and duplicate
// names are tagged with their provenance.
func Scan(dirs []string) []Entry {
	var entries []Entry
	seen := map[string]bool{}

	for _, dir := range dirs {
		err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
			if err != nil || d.IsDir() || !strings.HasSuffix(path, ".desktop") {
				return nil //nolint:nilerr // unreadable paths are skipped, not fatal
			}

			entry, err := Parse(path)
			if err != nil {
				if !errors.Is(err, ErrNoDisplay) {
					slog.Debug("skipping desktop entry", "path", path, "error", err)
				}

				return nil
			}

			// First scan dir wins for a given id, matching XDG precedence.
			if seen[entry.ID] {
				return nil
			}
			seen[entry.ID] = true
			entries = append(entries, entry)

			return nil
		})
		if err != nil {
			slog.Debug("scanning applications directory", "dir", dir, "error", err)
		}
	}

	SortByName(entries)
	TagDuplicates(entries)

	return entries
}

// SortByName orders entries case-insensitively by display name.
func SortByName(entries []Entry) {
	c := collate.New(language.Und, collate.IgnoreCase)
	c.Sort(byName(entries))
}

type byName []Entry

func (s byName) Len() int           { return len(s) }
func (s byName) Swap(i, j int)      { s[i], s[j] = s[j], s[i] }
func (s byName) Bytes(i int) []byte { return []byte(s[i].Name) }

// TagDuplicates flags entries whose normalized name or id repeats
// consecutively in the name-sorted list. The tag only disambiguates
// identical-looking tiles; it never affects group membership.
func TagDuplicates(entries []Entry) {
	for i := 1; i < len(entries); i++ {
		prev, cur := &entries[i-1], &entries[i]
		if strings.EqualFold(prev.Name, cur.Name) || prev.ID == cur.ID {
			prev.ShowSource = true
			cur.ShowSource = true
		}
	}
}
