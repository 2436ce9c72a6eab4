// Package geometry places a layout tree inside a viewport and answers the
// measurement queries the layout engine asks during gestures.
package geometry

import (
	"github.com/bnema/dockyard/internal/domain/entity"
)

// DefaultHandleSize is the hit thickness of a resize handle in pixels.
const DefaultHandleSize = 6

// Options tunes the measurement pass.
type Options struct {
	// HandleSize is the hit thickness of resize handles. Handles straddle the
	// boundary between two children and take no space from them.
	HandleSize float64
}

type splitGeometry struct {
	rect      entity.Rect
	direction entity.SplitDirection
}

// Geometry is the result of one measurement pass. It is immutable and
// implements port.GeometryProvider.
type Geometry struct {
	viewport   entity.Rect
	panels     []entity.PanelRect
	panelIndex map[entity.PanelID]int
	splits     map[string]splitGeometry
	handles    []entity.HandleRect
}

// Measure computes the rectangle of every split, panel and resize handle of
// root laid out inside viewport. Children share their parent's main axis
// according to Sizes and span the full cross axis.
func Measure(root *entity.LayoutNode, viewport entity.Rect, opts Options) *Geometry {
	if opts.HandleSize <= 0 {
		opts.HandleSize = DefaultHandleSize
	}
	g := &Geometry{
		viewport:   viewport,
		panelIndex: make(map[entity.PanelID]int),
		splits:     make(map[string]splitGeometry),
	}
	g.measureNode(root, viewport, opts)
	return g
}

func (g *Geometry) measureNode(node *entity.LayoutNode, rect entity.Rect, opts Options) {
	switch {
	case node == nil:
		return
	case node.IsPanel():
		g.panelIndex[node.PanelID] = len(g.panels)
		g.panels = append(g.panels, entity.PanelRect{PanelID: node.PanelID, NodeID: node.ID, Rect: rect})
	case node.IsSplit():
		g.measureSplit(node, rect, opts)
	}
}

func (g *Geometry) measureSplit(node *entity.LayoutNode, rect entity.Rect, opts Options) {
	g.splits[node.ID] = splitGeometry{rect: rect, direction: node.Direction}

	horizontal := node.Direction == entity.SplitHorizontal
	main, origin := rect.H, rect.Y
	if horizontal {
		main, origin = rect.W, rect.X
	}

	// Offsets come from the running percentage so the last child ends exactly
	// on the container edge.
	var acc float64
	total := entity.SumSizes(node.Sizes)
	if total <= 0 {
		total = 100
	}
	childRects := make([]entity.Rect, len(node.Children))
	for i := range node.Children {
		start := origin + main*acc/total
		if i < len(node.Sizes) {
			acc += node.Sizes[i]
		}
		end := origin + main*acc/total
		if i == len(node.Children)-1 {
			end = origin + main
		}

		childRects[i] = rect
		if horizontal {
			childRects[i].X, childRects[i].W = start, end-start
		} else {
			childRects[i].Y, childRects[i].H = start, end-start
		}

		if i < len(node.Children)-1 {
			g.handles = append(g.handles, handleAt(node, i, rect, end, opts.HandleSize))
		}
	}

	for i, child := range node.Children {
		g.measureNode(child, childRects[i], opts)
	}
}

func handleAt(node *entity.LayoutNode, index int, rect entity.Rect, boundary, size float64) entity.HandleRect {
	h := entity.HandleRect{SplitID: node.ID, HandleIndex: index, Direction: node.Direction}
	if node.Direction == entity.SplitHorizontal {
		h.Rect = entity.Rect{X: boundary - size/2, Y: rect.Y, W: size, H: rect.H}
	} else {
		h.Rect = entity.Rect{X: rect.X, Y: boundary - size/2, W: rect.W, H: size}
	}
	return h
}

// Viewport returns the rectangle the tree was measured in.
func (g *Geometry) Viewport() entity.Rect {
	return g.viewport
}

// ContainerSize returns the main-axis size of a split container.
func (g *Geometry) ContainerSize(splitID string) (float64, bool) {
	s, ok := g.splits[splitID]
	if !ok {
		return 0, false
	}
	if s.direction == entity.SplitHorizontal {
		return s.rect.W, true
	}
	return s.rect.H, true
}

// SplitRect returns the rectangle of a split container.
func (g *Geometry) SplitRect(splitID string) (entity.Rect, bool) {
	s, ok := g.splits[splitID]
	return s.rect, ok
}

// PanelRects returns the rectangles of every embedded panel in tree order.
func (g *Geometry) PanelRects() []entity.PanelRect {
	out := make([]entity.PanelRect, len(g.panels))
	copy(out, g.panels)
	return out
}

// PanelRect returns the rectangle of one embedded panel.
func (g *Geometry) PanelRect(panelID entity.PanelID) (entity.Rect, bool) {
	i, ok := g.panelIndex[panelID]
	if !ok {
		return entity.Rect{}, false
	}
	return g.panels[i].Rect, true
}

// PanelAt returns the embedded panel under p.
func (g *Geometry) PanelAt(p entity.Point) (entity.PanelRect, bool) {
	for _, r := range g.panels {
		if r.Rect.Contains(p) {
			return r, true
		}
	}
	return entity.PanelRect{}, false
}

// Handles returns every resize handle, outer splits first.
func (g *Geometry) Handles() []entity.HandleRect {
	out := make([]entity.HandleRect, len(g.handles))
	copy(out, g.handles)
	return out
}

// HandleAt returns the handle under p. Nested handles win over their
// ancestors' because they are measured later.
func (g *Geometry) HandleAt(p entity.Point) (entity.HandleRect, bool) {
	for i := len(g.handles) - 1; i >= 0; i-- {
		if g.handles[i].Rect.Contains(p) {
			return g.handles[i], true
		}
	}
	return entity.HandleRect{}, false
}
