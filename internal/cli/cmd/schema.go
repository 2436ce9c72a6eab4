package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/infrastructure/config"
)

var schemaConfig bool

var schemaCmd = &cobra.Command{
	Use:   "schema",
	Short: "Print the JSON schema of the layout document",
	Long: `Print the JSON schema of the layout document written by export and read
by import. With --config the schema of config.toml is printed instead.

Examples:
  dockyard schema > layout.schema.json
  dockyard schema --config`,
	RunE: runSchema,
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	schemaCmd.Flags().BoolVar(&schemaConfig, "config", false, "print the config.toml schema")
}

func runSchema(cmd *cobra.Command, _ []string) error {
	app, err := requireApp()
	if err != nil {
		return err
	}

	var data []byte
	if schemaConfig {
		data, err = config.ConfigSchema()
	} else {
		data, err = app.Engine.SchemaUC.LayoutSchema(app.Ctx())
	}
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), string(data))
	return nil
}
