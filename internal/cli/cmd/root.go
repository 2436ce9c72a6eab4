// Package cmd provides Cobra CLI commands for dockyard.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/cli"
	"github.com/bnema/dockyard/internal/domain/build"
	"github.com/bnema/dockyard/internal/editor"
)

var (
	app        *cli.App
	buildInfo  build.Info
	editorName string
	rootCmd    = &cobra.Command{
		Use:   "dockyard",
		Short: "Docking layouts for the sprite, video and image editors",
		Long: `Dockyard - a docking and split-pane layout engine.

Each editor owns a tree of resizable split panes plus a set of floating
windows that can be dragged, snapped and docked back into the tree. Layouts
are saved automatically and restored on the next start.

Features:
  - Nested horizontal and vertical splits with minimum pane sizes
  - Floating windows with snapping, minimizing and stacking
  - Drag a window onto a pane edge to dock it
  - Layouts stored per editor in a local SQLite database

Use 'dockyard run' to open the interactive shell, or explore the
subcommands to inspect, export and reset stored layouts.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			// Skip initialization for commands that don't need app context
			switch cmd.Name() {
			case "help", "completion", "about", "validate":
				return nil
			}

			var err error
			app, err = cli.NewApp(cli.Options{LogToFile: cmd.Name() == "run"})
			if err != nil {
				return fmt.Errorf("initialize app: %w", err)
			}
			app.BuildInfo = buildInfo
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if app != nil {
				_ = app.Close()
			}
		},
	}
)

func init() {
	rootCmd.PersistentFlags().StringVarP(&editorName, "editor", "e", string(editor.Video),
		"editor whose layout to use (sprite, video, image)")
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// GetApp returns the initialized app (for use by subcommands).
func GetApp() *cli.App {
	return app
}

// SetBuildInfo sets the build information (called from main.go before Execute).
// It also enables `dockyard --version`.
func SetBuildInfo(info build.Info) {
	buildInfo = info
	rootCmd.Version = info.String()
}

func requireApp() (*cli.App, error) {
	a := GetApp()
	if a == nil {
		return nil, fmt.Errorf("app not initialized")
	}
	return a, nil
}

func selectedEditor() (editor.Preset, error) {
	return editor.Lookup(editorName)
}
