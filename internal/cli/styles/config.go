package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfigRenderer renders `dockyard config` output.
type ConfigRenderer struct {
	theme *Theme
}

// NewConfigRenderer creates a new config renderer with the given theme.
func NewConfigRenderer(theme *Theme) *ConfigRenderer {
	return &ConfigRenderer{theme: theme}
}

// RenderPaths lists where the config, its schema and the layout database live.
func (r *ConfigRenderer) RenderPaths(configFile, schemaFile, databaseFile string) string {
	rows := []infoRow{
		{IconConfig, "Config", configFile},
		{IconInfo, "Schema", schemaFile},
		{IconDatabase, "Database", databaseFile},
	}
	return "\n" + indent(r.theme.renderRows(rows, r.theme.Normal)) + "\n"
}

// RenderValid reports that path passed validation.
func (r *ConfigRenderer) RenderValid(path string) string {
	ok := lipgloss.NewStyle().Foreground(r.theme.Success)
	return fmt.Sprintf("\n  %s %s\n  %s Config is valid\n",
		ok.Render(IconConfig), r.theme.Subtle.Render(path), ok.Render(IconCheck))
}

// RenderError renders a config error. Validation errors carry one problem
// per line; each becomes a bullet.
func (r *ConfigRenderer) RenderError(err error) string {
	bad := lipgloss.NewStyle().Foreground(r.theme.Error)
	lines := strings.Split(strings.TrimSpace(err.Error()), "\n")

	var b strings.Builder
	fmt.Fprintf(&b, "\n  %s Config error: %s\n", bad.Render(IconX), strings.TrimSpace(lines[0]))
	for _, line := range lines[1:] {
		line = strings.TrimLeft(strings.TrimSpace(line), "-• ")
		if line != "" {
			fmt.Fprintf(&b, "    %s %s\n", bad.Render("•"), line)
		}
	}
	return b.String()
}

func indent(s string) string {
	return "  " + strings.ReplaceAll(s, "\n", "\n  ")
}
