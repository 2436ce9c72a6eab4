package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/cli/styles"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print an editor's layout tree",
	Long: `Print the stored layout of an editor as a tree, with split sizes and
floating windows. The default layout is shown when nothing is stored or the
stored layout is rejected.

Examples:
  dockyard show
  dockyard show --editor sprite`,
	RunE: runShow,
}

func init() {
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	preset, err := selectedEditor()
	if err != nil {
		return err
	}

	out := app.Engine.PersistUC.Load(app.Ctx(), preset.StorageKey, preset.DefaultLayout())
	source := "stored"
	if out.FromDefault {
		source = "default"
	}

	reg := preset.NewRegistry()
	renderer := styles.NewLayoutRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(preset.Title, source, out.State, reg.GetPanelTitle))
	return nil
}
