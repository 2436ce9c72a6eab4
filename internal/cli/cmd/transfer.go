package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/domain/entity"
)

var exportOutput string

var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write an editor's layout document as JSON",
	Long: `Write the layout document that would be stored for an editor. The
default layout is exported when nothing usable is stored.

Examples:
  dockyard export --editor sprite > sprite.json
  dockyard export --editor video -o video.json`,
	RunE: runExport,
}

var importCmd = &cobra.Command{
	Use:   "import [file]",
	Short: "Store a layout document read from a file or stdin",
	Long: `Validate a layout document and store it for an editor. The document's
own storage key is ignored; the layout is stored under the selected editor.

Examples:
  dockyard import --editor sprite sprite.json
  dockyard export -e video | dockyard import -e video`,
	Args: cobra.MaximumNArgs(1),
	RunE: runImport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(importCmd)
	exportCmd.Flags().StringVarP(&exportOutput, "output", "o", "", "write to file instead of stdout")
}

func runExport(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	preset, err := selectedEditor()
	if err != nil {
		return err
	}

	snap := app.Engine.PersistUC.Export(app.Ctx(), preset.StorageKey, preset.DefaultLayout())
	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("encode layout: %w", err)
	}
	data = append(data, '\n')

	if exportOutput == "" {
		_, err = cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(exportOutput, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", exportOutput, err)
	}
	return nil
}

func runImport(cmd *cobra.Command, args []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}
	preset, err := selectedEditor()
	if err != nil {
		return err
	}

	var data []byte
	if len(args) == 1 && args[0] != "-" {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(cmd.InOrStdin())
	}
	if err != nil {
		return fmt.Errorf("read layout: %w", err)
	}

	var snap entity.LayoutSnapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("decode layout: %w", err)
	}
	if err := app.Engine.PersistUC.Import(app.Ctx(), preset.StorageKey, &snap); err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), app.Theme.SuccessStyle.Render(
		fmt.Sprintf("Imported %d panels and %d floating windows into %s",
			snap.PanelCount(), len(snap.FloatingWindows), preset.Title)))
	return nil
}
