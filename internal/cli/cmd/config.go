package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/cli/styles"
	"github.com/bnema/dockyard/internal/infrastructure/config"
)

var (
	configKeysJSON    bool
	configKeysSection string
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect configuration",
	Long:  `Show where configuration lives, validate it, and list every setting.`,
}

var configPathCmd = &cobra.Command{
	Use:   "path",
	Short: "Show config, schema and database paths",
	RunE:  runConfigPath,
}

var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check config.toml for errors",
	Long: `Load config.toml and report every invalid setting. A missing config
file is created with defaults.`,
	RunE: runConfigValidate,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List every setting with its type and default",
	Long: `List every configuration key grouped by section.

Examples:
  dockyard config keys
  dockyard config keys --section Layout
  dockyard config keys --json`,
	RunE: runConfigKeys,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configPathCmd)
	configCmd.AddCommand(configValidateCmd)
	configCmd.AddCommand(configKeysCmd)
	configKeysCmd.Flags().BoolVar(&configKeysJSON, "json", false, "print keys as JSON")
	configKeysCmd.Flags().StringVar(&configKeysSection, "section", "", "only list keys of one section")
}

func runConfigPath(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	configFile := app.ConfigManager.GetConfigFile()
	schemaFile := filepath.Join(filepath.Dir(configFile), "config.schema.json")
	renderer := styles.NewConfigRenderer(app.Theme)
	fmt.Fprintln(cmd.OutOrStdout(), renderer.RenderPaths(configFile, schemaFile, app.Engine.DatabasePath()))
	return nil
}

// runConfigValidate loads the config itself: app initialization would fail on
// the very errors it is meant to report.
func runConfigValidate(cmd *cobra.Command, _ []string) error {
	renderer := styles.NewConfigRenderer(styles.NewTheme())
	out := cmd.OutOrStdout()

	mgr, err := config.NewManager()
	if err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return err
	}
	if err := mgr.Load(); err != nil {
		fmt.Fprintln(out, renderer.RenderError(err))
		return fmt.Errorf("invalid configuration")
	}
	fmt.Fprintln(out, renderer.RenderValid(mgr.GetConfigFile()))
	return nil
}

func runConfigKeys(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	result, err := app.Engine.SchemaUC.Execute(app.Ctx(), usecase.GetConfigSchemaInput{Section: configKeysSection})
	if err != nil {
		return err
	}

	renderer := styles.NewConfigSchemaRenderer(app.Theme)
	if configKeysJSON {
		data, err := renderer.RenderJSON(result.Keys)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), data)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), renderer.Render(result.Keys))
	return nil
}
