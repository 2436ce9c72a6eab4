package entity

// DropPosition is the edge of a panel a floating window docks against.
type DropPosition string

const (
	DropLeft   DropPosition = "left"
	DropRight  DropPosition = "right"
	DropTop    DropPosition = "top"
	DropBottom DropPosition = "bottom"
	DropCenter DropPosition = "center"
)

// SplitDirection returns the split axis implied by docking on this edge.
func (p DropPosition) SplitDirection() SplitDirection {
	switch p {
	case DropTop, DropBottom:
		return SplitVertical
	default:
		return SplitHorizontal
	}
}

// InsertsBefore reports whether the new panel goes before the target.
func (p DropPosition) InsertsBefore() bool {
	return p == DropLeft || p == DropTop
}

// Valid reports whether p is a known position.
func (p DropPosition) Valid() bool {
	switch p {
	case DropLeft, DropRight, DropTop, DropBottom, DropCenter:
		return true
	}
	return false
}

// DropTarget is the candidate dock location during a drag.
type DropTarget struct {
	PanelID  PanelID      `json:"panel_id"`
	Position DropPosition `json:"position"`
}

// ResizeState describes an active resize gesture.
// ActualContainerSize is measured once when the gesture starts.
type ResizeState struct {
	SplitID             string         `json:"split_id"`
	HandleIndex         int            `json:"handle_index"`
	StartPosition       float64        `json:"start_position"`
	Direction           SplitDirection `json:"direction"`
	ActualContainerSize float64        `json:"actual_container_size"`
	StartSizes          []float64      `json:"start_sizes"`
}
