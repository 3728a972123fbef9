package tui

import (
	"fmt"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/appshelf/appshelf/internal/group"
	"github.com/appshelf/appshelf/internal/history"
	"github.com/appshelf/appshelf/internal/settings"
)

// Run starts the interactive panel.
func Run(s settings.Settings) error {
	lib := group.Load(s.LibraryPath)

	store, err := history.Open(s.HistoryPath)
	if err != nil {
		// Non-fatal: the recent strip won't populate, the panel still works.
		slog.Warn("opening launch history", "path", s.HistoryPath, "error", err)
		store = nil
	}
	defer func() {
		if store != nil {
			_ = store.Close()
		}
	}()

	model := NewModel(s, lib, store)

	p := tea.NewProgram(model,
		tea.WithAltScreen(),
		tea.WithMouseAllMotion(),
		tea.WithReportFocus(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("panel error: %w", err)
	}

	return nil
}

// IsTerminal checks if stdout is a terminal.
func IsTerminal() bool {
	fileInfo, err := os.Stdout.Stat()
	if err != nil {
		return false
	}

	return (fileInfo.Mode() & os.ModeCharDevice) != 0
}
