// Package settings loads the panel's own configuration via viper:
// file, environment, and defaults. The group library is persisted
// separately by the group package.
package settings

import (
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"github.com/appshelf/appshelf/internal/desktop"
	"github.com/appshelf/appshelf/internal/group"
)

// Settings holds the panel configuration.
type Settings struct {
	// ScanDirs are the directories scanned for desktop entries.
	ScanDirs []string
	// Columns is the grid width in tiles.
	Columns int
	// RecentCount is how many recently-launched entries the Home view
	// surfaces; zero disables the strip.
	RecentCount int
	// LibraryPath is the group library file.
	LibraryPath string
	// HistoryPath is the launch history database.
	HistoryPath string
}

// Load reads settings from ~/.config/appshelf/config.yaml, the
// APPSHELF_* environment, and defaults, in that order of precedence.
func Load(cfgFile string) (Settings, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "appshelf"))
		v.SetConfigType("yaml")
		v.SetConfigName("config")
	}

	v.AutomaticEnv()
	v.SetEnvPrefix("APPSHELF")

	libraryPath, err := group.DefaultConfigPath()
	if err != nil {
		return Settings{}, err
	}

	historyPath := filepath.Join(filepath.Dir(libraryPath), "history.db")
	if dir, err := os.UserCacheDir(); err == nil {
		historyPath = filepath.Join(dir, "appshelf", "history.db")
	}

	v.SetDefault("scan_dirs", desktop.DefaultScanDirs())
	v.SetDefault("columns", 5)
	v.SetDefault("recent_count", 6)
	v.SetDefault("library_path", libraryPath)
	v.SetDefault("history_path", historyPath)

	// A missing config file is fine; env and defaults still apply.
	_ = v.ReadInConfig()

	s := Settings{
		ScanDirs:    v.GetStringSlice("scan_dirs"),
		Columns:     v.GetInt("columns"),
		RecentCount: v.GetInt("recent_count"),
		LibraryPath: v.GetString("library_path"),
		HistoryPath: v.GetString("history_path"),
	}

	if s.Columns < 1 {
		s.Columns = 1
	}

	return s, nil
}
