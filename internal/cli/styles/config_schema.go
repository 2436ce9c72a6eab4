package styles

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// configSectionOrder is the display order of config sections. Sections not
// listed are appended alphabetically.
var configSectionOrder = []string{"Logging", "Database", "Layout", "Gestures"}

// ConfigSchemaRenderer renders configuration schema information.
type ConfigSchemaRenderer struct {
	theme *Theme
}

// NewConfigSchemaRenderer creates a new ConfigSchemaRenderer.
func NewConfigSchemaRenderer(theme *Theme) *ConfigSchemaRenderer {
	return &ConfigSchemaRenderer{theme: theme}
}

// Render renders the keys grouped by section, one box per section.
func (r *ConfigSchemaRenderer) Render(keys []entity.ConfigKeyInfo) string {
	if len(keys) == 0 {
		return r.theme.Subtle.Render("No configuration keys found")
	}

	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)
	parts := []string{
		fmt.Sprintf("%s %s", iconStyle.Render(IconConfig), r.theme.Title.Render("Config Schema Reference")),
		"",
	}

	sections, order := groupBySection(keys)
	for _, name := range order {
		parts = append(parts, r.renderSection(name, sections[name]), "")
	}
	return strings.Join(parts, "\n")
}

// RenderJSON renders the keys as indented JSON.
func (*ConfigSchemaRenderer) RenderJSON(keys []entity.ConfigKeyInfo) (string, error) {
	data, err := json.MarshalIndent(keys, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal schema: %w", err)
	}
	return string(data), nil
}

func groupBySection(keys []entity.ConfigKeyInfo) (map[string][]entity.ConfigKeyInfo, []string) {
	sections := make(map[string][]entity.ConfigKeyInfo)
	var extra []string
	for _, key := range keys {
		if _, ok := sections[key.Section]; !ok && !knownSection(key.Section) {
			extra = append(extra, key.Section)
		}
		sections[key.Section] = append(sections[key.Section], key)
	}

	order := make([]string, 0, len(sections))
	for _, name := range configSectionOrder {
		if _, ok := sections[name]; ok {
			order = append(order, name)
		}
	}
	sort.Strings(extra)
	return sections, append(order, extra...)
}

func knownSection(name string) bool {
	for _, s := range configSectionOrder {
		if s == name {
			return true
		}
	}
	return false
}

func (r *ConfigSchemaRenderer) renderSection(name string, keys []entity.ConfigKeyInfo) string {
	lines := []string{r.theme.Highlight.Render(name)}
	for _, key := range keys {
		lines = append(lines, r.renderKey(key))
	}
	return r.theme.Box.PaddingTop(0).Render(strings.Join(lines, "\n"))
}

func (r *ConfigSchemaRenderer) renderKey(key entity.ConfigKeyInfo) string {
	defaultStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	out := fmt.Sprintf("%s  %s  %s\n  %s",
		r.theme.Normal.Bold(true).Render(key.Key),
		r.theme.Subtle.Render(key.Type),
		defaultStyle.Render(key.Default),
		r.theme.Subtle.Render(key.Description),
	)
	if key.Env != "" {
		out += "\n  " + r.theme.Subtle.Render("Env: "+key.Env)
	}
	switch {
	case len(key.Values) > 0:
		out += "\n  " + r.theme.Normal.Render("Values: "+strings.Join(key.Values, ", "))
	case key.Range != "":
		out += "\n  " + r.theme.Normal.Render("Range: "+key.Range)
	}
	return out
}
