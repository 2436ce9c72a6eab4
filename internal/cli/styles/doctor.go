package styles

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// DoctorRenderer renders the result of checking every stored editor layout.
type DoctorRenderer struct {
	theme *Theme
}

// NewDoctorRenderer creates a new doctor renderer.
func NewDoctorRenderer(theme *Theme) *DoctorRenderer {
	return &DoctorRenderer{theme: theme}
}

// DoctorReport is the outcome of one doctor run.
type DoctorReport struct {
	OverallOK    bool
	Version      string
	DatabasePath string
	ConfigFile   string
	Editors      []DoctorEditorCheck
}

// DoctorEditorCheck describes one editor's stored layout.
type DoctorEditorCheck struct {
	Editor        string
	StorageKey    string
	Stored        bool
	FromDefault   bool
	PanelCount    int
	FloatingCount int
	Error         string
}

// OK reports whether the stored layout is usable as is.
func (c DoctorEditorCheck) OK() bool {
	return c.Error == "" && (!c.Stored || !c.FromDefault)
}

// Render renders the report.
func (r *DoctorRenderer) Render(report DoctorReport) string {
	lines := []string{r.renderHeader(report.OverallOK), ""}

	var rows []infoRow
	if report.Version != "" {
		rows = append(rows, infoRow{IconVersion, "Version", report.Version})
	}
	if report.ConfigFile != "" {
		rows = append(rows, infoRow{IconConfig, "Config", report.ConfigFile})
	}
	if report.DatabasePath != "" {
		rows = append(rows, infoRow{IconDatabase, "Database", report.DatabasePath})
	}
	if len(rows) > 0 {
		lines = append(lines, indent(r.theme.renderRows(rows, r.theme.Normal)))
	}
	lines = append(lines, "")

	for _, c := range report.Editors {
		lines = append(lines, r.renderEditor(c))
	}
	return strings.Join(lines, "\n")
}

func (r *DoctorRenderer) renderHeader(ok bool) string {
	title := r.theme.Title.Render("Layout doctor")
	status := r.theme.SuccessStyle.Render("all layouts healthy")
	if !ok {
		status = r.theme.ErrorStyle.Render("problems found")
	}
	return fmt.Sprintf("%s %s  %s", r.icon(IconDoctor, r.theme.Accent), title, status)
}

func (r *DoctorRenderer) renderEditor(c DoctorEditorCheck) string {
	var icon, detail string
	switch {
	case c.Error != "":
		icon = r.icon(IconX, r.theme.Error)
		detail = r.theme.ErrorStyle.Render(c.Error)
	case !c.Stored:
		icon = r.icon(IconInfo, r.theme.Muted)
		detail = r.theme.Subtle.Render("nothing stored, default layout in use")
	case c.FromDefault:
		icon = r.icon(IconWarning, r.theme.Warning)
		detail = r.theme.WarningStyle.Render("stored layout rejected, default layout in use")
	default:
		icon = r.icon(IconCheck, r.theme.Success)
		detail = fmt.Sprintf("%d panels, %d floating", c.PanelCount, c.FloatingCount)
	}
	return fmt.Sprintf("  %s %-8s %s  %s",
		icon,
		c.Editor,
		r.theme.Subtle.Render(c.StorageKey),
		detail,
	)
}

func (*DoctorRenderer) icon(icon string, color lipgloss.Color) string {
	return lipgloss.NewStyle().Foreground(color).Render(icon)
}
