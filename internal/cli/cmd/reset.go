package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/domain/entity"
)

var (
	resetPurge bool
	resetYes   bool
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Restore an editor's default layout",
	Long: `Store the default layout of an editor, discarding its panes, sizes and
floating windows. With --purge the stored layout is deleted instead, and the
default is used until the next save.

Examples:
  dockyard reset --editor image
  dockyard reset --editor video --purge`,
	RunE: runReset,
}

func init() {
	rootCmd.AddCommand(resetCmd)
	resetCmd.Flags().BoolVar(&resetPurge, "purge", false, "delete the stored layout instead of storing the default")
	resetCmd.Flags().BoolVarP(&resetYes, "yes", "y", false, "skip confirmation prompt")
}

func runReset(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	preset, err := selectedEditor()
	if err != nil {
		return err
	}

	if !resetYes {
		confirmed, err := confirm(app.Theme, fmt.Sprintf("Reset the layout of the %s?", preset.Title))
		if err != nil {
			return err
		}
		if !confirmed {
			fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Subtle.Render("Nothing changed"))
			return nil
		}
	}

	ctx := app.Ctx()
	if resetPurge {
		if err := app.Engine.PersistUC.Reset(ctx, preset.StorageKey); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.SuccessStyle.Render(fmt.Sprintf("Removed stored layout of %s", preset.Title)))
		return nil
	}

	state := entity.NewLayoutState(preset.DefaultLayout())
	if err := app.Engine.PersistUC.Save(ctx, preset.StorageKey, state); err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), app.Theme.SuccessStyle.Render(fmt.Sprintf("Restored default layout of %s", preset.Title)))
	return nil
}

func confirm(theme *styles.Theme, message string) (bool, error) {
	final, err := tea.NewProgram(styles.NewConfirm(theme, message)).Run()
	if err != nil {
		return false, fmt.Errorf("confirmation: %w", err)
	}
	return final.(styles.ConfirmModel).Result(), nil
}
