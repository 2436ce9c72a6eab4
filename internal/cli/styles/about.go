package styles

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockyard/internal/domain/build"
)

// AboutRenderer renders build info next to a small logo.
type AboutRenderer struct {
	theme *Theme
}

// NewAboutRenderer creates a new about renderer with the given theme.
func NewAboutRenderer(theme *Theme) *AboutRenderer {
	return &AboutRenderer{theme: theme}
}

// Two docked panels and a floating window.
const aboutLogo = `┌───┬──┐
│   │▄▄│
│   ├──┤
│   │  │
└───┴──┘`

// Render renders build info with the logo on the left.
func (r *AboutRenderer) Render(info build.Info) string {
	logo := lipgloss.NewStyle().
		Foreground(r.theme.Accent).
		Bold(true).
		MarginTop(1).
		MarginLeft(2).
		Render(aboutLogo)

	version := info.Version
	if info.IsDev() {
		version += r.theme.Subtle.Render(" (development build)")
	}
	rows := []infoRow{
		{IconVersion, "Version", version},
		{IconGitBranch, "Commit", info.Commit},
		{IconCalendar, "Built", info.BuildDate},
		{IconGo, "Go", info.GoVersion},
		{},
		{IconGithub, build.RepoURL, ""},
		{IconHeart, "Made by", strings.Join(build.Authors, ", ")},
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, logo, "   ", r.theme.renderRows(rows, r.theme.Highlight))
}

// infoRow is one "icon label value" line; the zero value is a blank line.
type infoRow struct {
	icon, label, value string
}

func (t *Theme) renderRows(rows []infoRow, valueStyle lipgloss.Style) string {
	iconStyle := lipgloss.NewStyle().Foreground(t.Accent)
	width := 0
	for _, row := range rows {
		if row.value != "" {
			width = max(width, lipgloss.Width(row.label))
		}
	}

	lines := make([]string, 0, len(rows))
	for _, row := range rows {
		switch {
		case row.icon == "" && row.label == "":
			lines = append(lines, "")
		case row.value == "":
			lines = append(lines, iconStyle.Render(row.icon)+" "+t.Subtle.Render(row.label))
		default:
			label := t.Subtle.Width(width).Render(row.label)
			lines = append(lines, iconStyle.Render(row.icon)+" "+label+" "+valueStyle.Render(row.value))
		}
	}
	return strings.Join(lines, "\n")
}
