// Package overlay computes the decorations drawn on top of the layout while a
// gesture is in progress.
package overlay

import "github.com/bnema/dockyard/internal/domain/entity"

// DropHighlight returns the rectangle to highlight for the current drop
// target: the half of the target panel on the target edge, or the whole panel
// for a center drop. It returns false when nothing should be drawn.
func DropHighlight(isDragging bool, target *entity.DropTarget, rects []entity.PanelRect) (entity.Rect, bool) {
	if !isDragging || target == nil {
		return entity.Rect{}, false
	}

	for _, pr := range rects {
		if pr.PanelID != target.PanelID {
			continue
		}
		r := pr.Rect
		switch target.Position {
		case entity.DropLeft:
			r.W /= 2
		case entity.DropRight:
			r.X += r.W / 2
			r.W /= 2
		case entity.DropTop:
			r.H /= 2
		case entity.DropBottom:
			r.Y += r.H / 2
			r.H /= 2
		case entity.DropCenter:
		default:
			return entity.Rect{}, false
		}
		return r, true
	}
	return entity.Rect{}, false
}

// ResizeGuide returns the line along which the active resize handle sits.
// The guide spans the split's cross axis.
func ResizeGuide(state *entity.ResizeState, handles []entity.HandleRect) (entity.HandleRect, bool) {
	if state == nil {
		return entity.HandleRect{}, false
	}
	for _, h := range handles {
		if h.SplitID == state.SplitID && h.HandleIndex == state.HandleIndex {
			return h, true
		}
	}
	return entity.HandleRect{}, false
}
