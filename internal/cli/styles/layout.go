package styles

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// LayoutRenderer prints a layout state as an indented tree.
type LayoutRenderer struct {
	theme *Theme
}

// NewLayoutRenderer creates a new layout renderer.
func NewLayoutRenderer(theme *Theme) *LayoutRenderer {
	return &LayoutRenderer{theme: theme}
}

// TitleFunc resolves a panel title.
type TitleFunc func(entity.PanelID) string

// Render renders the tree and the floating windows of state. source names
// where the state came from, for example "stored" or "default".
func (r *LayoutRenderer) Render(title, source string, state entity.LayoutState, titles TitleFunc) string {
	iconStyle := lipgloss.NewStyle().Foreground(r.theme.Accent)

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%s %s %s\n\n",
		iconStyle.Render(IconTree), r.theme.Title.Render(title), r.theme.BadgeMuted.Render(source)))

	r.renderNode(&sb, state.Root, "", "", titles)

	if len(state.FloatingWindows) > 0 {
		sb.WriteString(fmt.Sprintf("\n%s %s\n", iconStyle.Render(IconWindow), r.theme.Subtitle.Render("Floating windows")))
		for _, w := range state.FloatingWindows {
			sb.WriteString("  " + r.renderWindow(w, titles) + "\n")
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

func (r *LayoutRenderer) renderNode(sb *strings.Builder, node *entity.LayoutNode, prefix, size string, titles TitleFunc) {
	if node == nil {
		return
	}
	if size != "" {
		size = r.theme.Subtle.Render(size) + " "
	}
	if node.IsPanel() {
		label := string(node.PanelID)
		if titles != nil {
			label = titles(node.PanelID)
		}
		sb.WriteString(fmt.Sprintf("%s%s%s %s\n", prefix, size, r.theme.Normal.Render(label), r.theme.Subtle.Render(string(node.PanelID))))
		return
	}

	sb.WriteString(fmt.Sprintf("%s%s%s %s\n", prefix, size,
		r.theme.Highlight.Render(string(node.Direction)), r.theme.Subtle.Render(node.ID)))

	childPrefix := strings.NewReplacer("├─ ", "│  ", "└─ ", "   ").Replace(prefix)
	for i, child := range node.Children {
		branch := "├─ "
		if i == len(node.Children)-1 {
			branch = "└─ "
		}
		childSize := ""
		if i < len(node.Sizes) {
			childSize = formatPercent(node.Sizes[i])
		}
		r.renderNode(sb, child, childPrefix+branch, childSize, titles)
	}
}

func (r *LayoutRenderer) renderWindow(w entity.FloatingWindow, titles TitleFunc) string {
	label := string(w.PanelID)
	if titles != nil {
		label = titles(w.PanelID)
	}
	state := ""
	if w.IsMinimized {
		state = " " + r.theme.BadgeMuted.Render("minimized")
	}
	return fmt.Sprintf("%s %s at %.0f,%.0f size %.0fx%.0f z%d%s",
		r.theme.Normal.Render(label),
		r.theme.Subtle.Render(w.ID),
		w.Position.X, w.Position.Y,
		w.Size.Width, w.Size.Height,
		w.ZIndex,
		state,
	)
}

func formatPercent(v float64) string {
	return strconv.FormatFloat(math.Round(v*10)/10, 'f', -1, 64) + "%"
}
