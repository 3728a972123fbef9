// Package main provides the CLI entry point for appshelf.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/appshelf/appshelf/internal/desktop"
	"github.com/appshelf/appshelf/internal/group"
	"github.com/appshelf/appshelf/internal/settings"
	"github.com/appshelf/appshelf/internal/tui"
)

var version = "dev"

var (
	cfgFile string
	verbose bool
	logFile *os.File
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "appshelf",
		Version: version,
		Short:   "Application launcher panel for the terminal",
		Long: `appshelf lists your installed applications, organizes them into
groups, and launches them. Drag entries between group tiles with the
mouse to reorganize; search narrows the current group.

The group library lives in ~/.config/appshelf/library.yaml and is
rewritten after every change.

Run without arguments to start the interactive panel.`,
		RunE: runPanel,
		PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
			if verbose {
				logWriter := os.Stderr
				// The panel owns the terminal; verbose logs go to a file
				// so they don't corrupt the display.
				if tui.IsTerminal() {
					logPath := filepath.Join(os.TempDir(), "appshelf.log")
					f, err := os.Create(logPath)
					if err == nil {
						logFile = f
						logWriter = f
						fmt.Fprintf(os.Stderr, "Verbose logs: %s\n", logPath)
					}
				}
				slog.SetDefault(slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
					Level: slog.LevelDebug,
				})))
			}

			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if logFile != nil {
				_ = logFile.Close()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default ~/.config/appshelf/config.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(listCmd(), launchCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func runPanel(_ *cobra.Command, _ []string) error {
	s, err := settings.Load(cfgFile)
	if err != nil {
		return err
	}

	return tui.Run(s)
}

func listCmd() *cobra.Command {
	var groupIndex int
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the entries of a group without starting the panel",
		RunE: func(_ *cobra.Command, _ []string) error {
			s, err := settings.Load(cfgFile)
			if err != nil {
				return err
			}

			lib := group.Load(s.LibraryPath)
			entries := desktop.Scan(s.ScanDirs)

			for _, e := range group.Filtered(lib.Snapshot(), groupIndex, search, entries) {
				if e.ShowSource {
					fmt.Printf("%s\t%s (%s)\n", e.ID, e.Name, e.Source)
				} else {
					fmt.Printf("%s\t%s\n", e.ID, e.Name)
				}
			}

			return nil
		},
	}

	cmd.Flags().IntVarP(&groupIndex, "group", "g", 0, "group index (0 = Home)")
	cmd.Flags().StringVarP(&search, "search", "s", "", "search text")

	return cmd
}

func launchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "launch <entry-id>",
		Short: "Launch an application by desktop entry id",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			s, err := settings.Load(cfgFile)
			if err != nil {
				return err
			}

			for _, e := range desktop.Scan(s.ScanDirs) {
				if e.ID == args[0] {
					return desktop.Launch(e, nil)
				}
			}

			return fmt.Errorf("no desktop entry with id %q", args[0])
		},
	}
}
