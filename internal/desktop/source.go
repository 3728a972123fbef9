package desktop

import "strings"

// Source identifies where a desktop entry was installed from. It is used
// to disambiguate entries that look identical in the grid.
type Source int

// Entry provenance, derived from the origin path.
const (
	SourceOther Source = iota
	SourceLocal
	SourceSystem
	SourceFlatpak
	SourceSnap
	SourceNix
)

func (s Source) String() string {
	switch s {
	case SourceLocal:
		return "local"
	case SourceSystem:
		return "system"
	case SourceFlatpak:
		return "flatpak"
	case SourceSnap:
		return "snap"
	case SourceNix:
		return "nix"
	case SourceOther:
		return "other"
	}

	return "other"
}

func sourceForPath(path string) Source {
	switch {
	case strings.Contains(path, "/flatpak/"):
		return SourceFlatpak
	case strings.Contains(path, "/snapd/") || strings.Contains(path, "/snap/"):
		return SourceSnap
	case strings.Contains(path, "/nix/") || strings.Contains(path, ".nix-profile"):
		return SourceNix
	case strings.Contains(path, "/.local/share/"):
		return SourceLocal
	case strings.HasPrefix(path, "/usr/"):
		return SourceSystem
	}

	return SourceOther
}
