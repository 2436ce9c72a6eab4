package entity

// Rect is an axis-aligned rectangle in pixels.
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x coordinate of the right edge.
func (r Rect) Right() float64 { return r.X + r.W }

// Bottom returns the y coordinate of the bottom edge.
func (r Rect) Bottom() float64 { return r.Y + r.H }

// Contains reports whether the point lies inside the rectangle (edges inclusive).
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.Right() && p.Y >= r.Y && p.Y <= r.Bottom()
}

// Center returns the center point of the rectangle.
func (r Rect) Center() Point {
	return Point{X: r.X + r.W/2, Y: r.Y + r.H/2}
}

// PanelRect is an embedded panel's screen rectangle.
// Used for drop-target hit testing, undock placement and snapping.
type PanelRect struct {
	PanelID PanelID
	NodeID  string
	Rect    Rect
}

// HandleRect is the hit area of a resize handle between two split children.
type HandleRect struct {
	SplitID     string
	HandleIndex int // Handle sits between Children[HandleIndex] and Children[HandleIndex+1]
	Direction   SplitDirection
	Rect        Rect
}
