package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/bnema/dockyard/internal/cli/styles"
)

var aboutShort bool

var aboutCmd = &cobra.Command{
	Use:   "about",
	Short: "Show version and build information",
	Long:  `Display version, commit, build date, Go version and where the project lives.`,
	RunE:  runAbout,
}

func init() {
	aboutCmd.Flags().BoolVar(&aboutShort, "short", false, "print only the version line")
	rootCmd.AddCommand(aboutCmd)
}

// about skips app initialization, so it builds its own theme.
func runAbout(cmd *cobra.Command, _ []string) error {
	if aboutShort {
		fmt.Fprintln(cmd.OutOrStdout(), buildInfo.String())
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), styles.NewAboutRenderer(styles.NewTheme()).Render(buildInfo))
	return nil
}
