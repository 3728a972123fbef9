package group

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ConfigVersion is the current library file schema version.
const ConfigVersion = 1

// ErrUnsupportedVersion is returned when the library file was written by
// an incompatible schema.
var ErrUnsupportedVersion = errors.New("unsupported library version")

// Config is the persisted group library: the ordered user groups. Home is
// never stored; it is derived at load time.
type Config struct {
	Version int     `yaml:"version"`
	Groups  []Group `yaml:"groups"`
}

// DefaultConfigPath returns the library file location under the user
// config directory.
func DefaultConfigPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("getting config directory: %w", err)
	}

	return filepath.Join(dir, "appshelf", "library.yaml"), nil
}

// Load reads the group library from path. A missing or incompatible file
// falls back to the default groups with the error logged; the in-memory
// library is always usable.
func Load(path string) *Library {
	cfg, err := read(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Error("loading group library, using defaults", "path", path, "error", err)
		}

		return NewLibrary(Defaults())
	}

	return NewLibrary(cfg.Groups)
}

func read(path string) (*Config, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is the user's own config file
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing library file: %w", err)
	}

	if cfg.Version != ConfigVersion {
		return nil, fmt.Errorf("%w: %d (expected %d)", ErrUnsupportedVersion, cfg.Version, ConfigVersion)
	}

	for i := range cfg.Groups {
		if cfg.Groups[i].Filter.Kind == "" {
			cfg.Groups[i].Filter.Kind = FilterCategories
		}
	}

	return &cfg, nil
}

// Save writes the library's user groups back to path. Persistence is
// best-effort and fire-and-forget: on failure the error is logged and the
// in-memory library stays authoritative for the session.
func Save(path string, lib *Library) {
	if err := write(path, lib.UserGroups()); err != nil {
		slog.Error("saving group library", "path", path, "error", err)
	}
}

func write(path string, groups []Group) error {
	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	data, err := yaml.Marshal(Config{Version: ConfigVersion, Groups: groups})
	if err != nil {
		return fmt.Errorf("marshaling library: %w", err)
	}

	if err := os.WriteFile(path, data, 0600); err != nil {
		return fmt.Errorf("writing library: %w", err)
	}

	return nil
}
