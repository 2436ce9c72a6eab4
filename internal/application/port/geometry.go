package port

import "github.com/bnema/dockyard/internal/domain/entity"

// GeometryProvider measures where the UI layer placed the layout.
// Implemented by the UI layer; the engine only reads from it.
type GeometryProvider interface {
	// ContainerSize returns the main-axis pixel size of a split container.
	ContainerSize(splitID string) (float64, bool)
	// PanelRects returns the rectangles of every visible embedded panel.
	PanelRects() []entity.PanelRect
	// PanelRect returns the rectangle of one embedded panel.
	PanelRect(panelID entity.PanelID) (entity.Rect, bool)
}
