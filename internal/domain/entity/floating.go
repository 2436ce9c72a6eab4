package entity

// Point is a position in pixels relative to the application shell.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Size is a width/height pair in pixels.
type Size struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// SnapEdge names the window edge a snap aligns.
type SnapEdge string

const (
	SnapEdgeLeft   SnapEdge = "left"
	SnapEdgeRight  SnapEdge = "right"
	SnapEdgeTop    SnapEdge = "top"
	SnapEdgeBottom SnapEdge = "bottom"
)

// SnapInfo is a non-committing alignment hint for a floating window.
// A nil axis pointer means no candidate on that axis.
type SnapInfo struct {
	X       *float64 `json:"x,omitempty"` // Suggested position.x
	Y       *float64 `json:"y,omitempty"` // Suggested position.y
	EdgeX   SnapEdge `json:"edge_x,omitempty"`
	EdgeY   SnapEdge `json:"edge_y,omitempty"`
	TargetX string   `json:"target_x,omitempty"` // Panel or window aligned against horizontally
	TargetY string   `json:"target_y,omitempty"`
}

// Empty reports whether the hint suggests nothing.
func (s *SnapInfo) Empty() bool {
	return s == nil || (s.X == nil && s.Y == nil)
}

// FloatingWindow is a panel rendered outside the split tree.
type FloatingWindow struct {
	ID                string    `json:"id"`
	PanelID           PanelID   `json:"panel_id"`
	Position          Point     `json:"position"`
	Size              Size      `json:"size"`
	IsMinimized       bool      `json:"is_minimized"`
	SnapInfo          *SnapInfo `json:"snap_info,omitempty"`
	MinimizedPosition *Point    `json:"minimized_position,omitempty"`
	ZIndex            int       `json:"z_index"`
}

// Rect returns the window's current on-screen rectangle.
// A minimized window only occupies its title bar at its minimized position.
func (w FloatingWindow) Rect(titleBarHeight float64) Rect {
	if w.IsMinimized {
		pos := w.Position
		if w.MinimizedPosition != nil {
			pos = *w.MinimizedPosition
		}
		return Rect{X: pos.X, Y: pos.Y, W: w.Size.Width, H: titleBarHeight}
	}
	return Rect{X: w.Position.X, Y: w.Position.Y, W: w.Size.Width, H: w.Size.Height}
}
