package tui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	primaryColor = lipgloss.Color("#7C3AED") // Purple
	accentColor  = lipgloss.Color("#F59E0B") // Amber
	dropColor    = lipgloss.Color("#10B981") // Green
	mutedColor   = lipgloss.Color("#6B7280") // Gray
	textColor    = lipgloss.Color("#F3F4F6") // Light gray

	// Search bar
	SearchStyle = lipgloss.NewStyle().
			Foreground(textColor).
			PaddingLeft(1)

	// Recent strip on the Home view
	RecentStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			PaddingLeft(1)

	// App tiles. Width/height are fixed so the rendered cells line up
	// with the hit-testing rectangles.
	TileStyle = lipgloss.NewStyle().
			Width(tileWidth).
			Height(tileHeight).
			Align(lipgloss.Center)

	SelectedTileStyle = TileStyle.
				Foreground(textColor).
				Background(primaryColor).
				Bold(true)

	DraggingTileStyle = TileStyle.
				Foreground(mutedColor).
				Italic(true)

	TileSourceStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	// Group tiles
	GroupStyle = lipgloss.NewStyle().
			Width(groupWidth).
			Height(groupHeight).
			Align(lipgloss.Center)

	SelectedGroupStyle = GroupStyle.
				Foreground(textColor).
				Background(primaryColor).
				Bold(true)

	DropGroupStyle = GroupStyle.
			Foreground(textColor).
			Background(dropColor).
			Bold(true)

	EditGroupStyle = GroupStyle.
			Foreground(accentColor)

	// Context menu
	MenuStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(primaryColor).
			Padding(0, 1)

	MenuItemStyle = lipgloss.NewStyle().
			Padding(0, 1)

	SelectedMenuItemStyle = lipgloss.NewStyle().
				Foreground(textColor).
				Background(primaryColor).
				Padding(0, 1)

	// Help line
	HelpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			PaddingLeft(1)
)
