package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/cli/model"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/logging"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the interactive layout shell",
	Long: `Open an editor's layout in the terminal. Panes and floating windows are
drawn at eight by sixteen pixels per cell; drag title bars and pane borders
with the mouse, or use the keys listed under ?. The layout is saved while you
work and once more on exit. Logs go to the log file.

Examples:
  dockyard run
  dockyard run --editor sprite`,
	RunE: runRun,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runRun(_ *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	preset, err := selectedEditor()
	if err != nil {
		return err
	}
	ctx := logging.WithComponent(app.Ctx(), "shell")
	log := logging.FromContext(ctx)

	coord := app.Engine.NewCoordinator(ctx, preset)

	app.ConfigManager.OnConfigChange(func(cfg *config.Config) {
		log.Info().
			Str("gesture_policy", string(cfg.Layout.GesturePolicy)).
			Msg("config reloaded, layout settings apply on next run")
	})
	if err := app.ConfigManager.Watch(); err != nil {
		log.Warn().Err(err).Msg("config watch unavailable")
	}

	p := tea.NewProgram(
		model.NewLayoutModel(ctx, coord, preset, app.Theme),
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
		tea.WithContext(ctx),
	)
	_, runErr := p.Run()

	if err := coord.Close(ctx); err != nil {
		log.Error().Err(err).Msg("failed to save layout on exit")
		if runErr == nil {
			return fmt.Errorf("save layout: %w", err)
		}
	}
	if runErr != nil {
		return fmt.Errorf("run shell: %w", runErr)
	}
	return nil
}
