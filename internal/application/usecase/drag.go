package usecase

import (
	"context"
	"math"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

// Default edge zone used for drop-target hit testing.
const (
	DefaultEdgeThresholdPct   = 0.10
	DefaultEdgeThresholdMaxPx = 60.0
)

// DragSession is an in-progress floating window drag.
type DragSession struct {
	WindowID string
	// Offset is the pointer position relative to the visible window origin
	// at grab time.
	Offset entity.Point
	// Origin is the visible window origin at grab time, restored on Cancel.
	Origin entity.Point
	// Minimized drags move the title bar's MinimizedPosition, not Position.
	Minimized bool
}

// DragOutcome tells how a drag ended.
type DragOutcome string

const (
	DragOutcomeDocked  DragOutcome = "docked"
	DragOutcomeSnapped DragOutcome = "snapped"
	DragOutcomeFloated DragOutcome = "floated"
)

// DragUseCase runs the Idle -> Dragging -> {Docking | Snapped | Idle} state
// machine for floating window title bar drags.
type DragUseCase struct {
	layout      *ManageLayoutUseCase
	floating    *FloatingWindowsUseCase
	edgePct     float64
	edgeMaxPx   float64
	snapEnabled bool
}

// DragOptions tunes drop-target hit testing.
type DragOptions struct {
	EdgeThresholdPct   float64
	EdgeThresholdMaxPx float64
	DisableSnap        bool
}

// NewDragUseCase creates a new drag use case.
func NewDragUseCase(layout *ManageLayoutUseCase, floating *FloatingWindowsUseCase, opts DragOptions) *DragUseCase {
	if opts.EdgeThresholdPct <= 0 {
		opts.EdgeThresholdPct = DefaultEdgeThresholdPct
	}
	if opts.EdgeThresholdMaxPx <= 0 {
		opts.EdgeThresholdMaxPx = DefaultEdgeThresholdMaxPx
	}
	return &DragUseCase{
		layout:      layout,
		floating:    floating,
		edgePct:     opts.EdgeThresholdPct,
		edgeMaxPx:   opts.EdgeThresholdMaxPx,
		snapEnabled: !opts.DisableSnap,
	}
}

// Start grabs the window's title bar at pointer. The window is raised and the
// state enters Dragging.
func (uc *DragUseCase) Start(ctx context.Context, state entity.LayoutState, windowID string, pointer entity.Point) (entity.LayoutState, *DragSession, error) {
	if state.IsDragging || state.ResizeState != nil {
		return state, nil, ErrGestureActive
	}
	idx := state.FindWindow(windowID)
	if idx < 0 {
		logging.FromContext(ctx).Debug().Str("window_id", windowID).Msg("drag ignored: window not found")
		return state, nil, nil
	}

	window := state.FloatingWindows[idx]
	visible := window.Rect(uc.floating.TitleBarHeight())
	origin := entity.Point{X: visible.X, Y: visible.Y}
	session := &DragSession{
		WindowID:  windowID,
		Offset:    entity.Point{X: pointer.X - origin.X, Y: pointer.Y - origin.Y},
		Origin:    origin,
		Minimized: window.IsMinimized,
	}

	state = uc.floating.Focus(ctx, state, windowID)
	state.IsDragging = true
	state.DropTarget = nil

	logging.FromContext(ctx).Debug().
		Str("window_id", windowID).
		Str("panel_id", string(window.PanelID)).
		Msg("drag started")
	return state, session, nil
}

// Update moves the dragged window under the pointer and recomputes the drop
// target from the current panel rectangles. While no drop target is proposed
// the window's snap hint is refreshed.
func (uc *DragUseCase) Update(
	ctx context.Context,
	state entity.LayoutState,
	session *DragSession,
	pointer entity.Point,
	geometry port.GeometryProvider,
) entity.LayoutState {
	if session == nil || !state.IsDragging {
		return state
	}
	if state.FindWindow(session.WindowID) < 0 {
		// The window was closed or docked by another path mid-gesture.
		state.IsDragging = false
		state.DropTarget = nil
		return state
	}

	state = uc.moveTo(ctx, state, session, entity.Point{
		X: pointer.X - session.Offset.X,
		Y: pointer.Y - session.Offset.Y,
	})

	var rects []entity.PanelRect
	if geometry != nil {
		rects = geometry.PanelRects()
	}
	state.DropTarget = uc.ComputeDropTarget(pointer, rects, state.DropTarget)

	if uc.snapEnabled {
		if state.DropTarget == nil {
			state = uc.floating.ComputeSnap(ctx, state, session.WindowID, rects)
		} else {
			state = uc.floating.ClearSnap(ctx, state, session.WindowID)
		}
	}
	return state
}

// End releases the drag. A pending drop target docks the window; otherwise a
// pending snap hint is applied; otherwise the window stays where it was released.
// All gesture state is cleared on every path.
func (uc *DragUseCase) End(ctx context.Context, state entity.LayoutState, session *DragSession) (entity.LayoutState, DragOutcome) {
	target := state.DropTarget
	state.IsDragging = false
	state.DropTarget = nil
	if session == nil {
		return state, DragOutcomeFloated
	}

	idx := state.FindWindow(session.WindowID)
	if idx < 0 {
		return state, DragOutcomeFloated
	}

	if target != nil {
		before := state.Root
		state = uc.layout.DockWindow(ctx, state, session.WindowID, target.PanelID, target.Position)
		if state.Root != before {
			return state, DragOutcomeDocked
		}
	}

	if !state.FloatingWindows[idx].SnapInfo.Empty() {
		state = uc.floating.ApplySnap(ctx, state, session.WindowID)
		return state, DragOutcomeSnapped
	}

	logging.FromContext(ctx).Debug().Str("window_id", session.WindowID).Msg("drag released without dock")
	return state, DragOutcomeFloated
}

// Cancel aborts the drag after a lost pointer capture. The window returns to
// where the drag started and no dock happens.
func (uc *DragUseCase) Cancel(ctx context.Context, state entity.LayoutState, session *DragSession) entity.LayoutState {
	state.IsDragging = false
	state.DropTarget = nil
	if session == nil || state.FindWindow(session.WindowID) < 0 {
		return state
	}
	state = uc.moveTo(ctx, state, session, session.Origin)
	state = uc.floating.ClearSnap(ctx, state, session.WindowID)

	logging.FromContext(ctx).Debug().Str("window_id", session.WindowID).Msg("drag cancelled")
	return state
}

// moveTo places the visible part of the dragged window at pos.
func (uc *DragUseCase) moveTo(ctx context.Context, state entity.LayoutState, session *DragSession, pos entity.Point) entity.LayoutState {
	if session.Minimized {
		return uc.floating.SetMinimizedPosition(ctx, state, session.WindowID, pos)
	}
	return uc.floating.SetPosition(ctx, state, session.WindowID, pos)
}

// ComputeDropTarget hit-tests pointer against the embedded panel rectangles.
//
// Inside a panel, the nearest edge whose distance is within
// min(pct of the panel dimension, max px) becomes the target; inside a panel
// but away from every edge the target is cleared. A pointer outside every
// panel keeps previous.
func (uc *DragUseCase) ComputeDropTarget(pointer entity.Point, rects []entity.PanelRect, previous *entity.DropTarget) *entity.DropTarget {
	for _, pr := range rects {
		r := pr.Rect
		if !r.Contains(pointer) {
			continue
		}
		thresholdX := math.Min(r.W*uc.edgePct, uc.edgeMaxPx)
		thresholdY := math.Min(r.H*uc.edgePct, uc.edgeMaxPx)

		best := math.Inf(1)
		var position entity.DropPosition
		for _, e := range []struct {
			position  entity.DropPosition
			distance  float64
			threshold float64
		}{
			{entity.DropLeft, pointer.X - r.X, thresholdX},
			{entity.DropRight, r.Right() - pointer.X, thresholdX},
			{entity.DropTop, pointer.Y - r.Y, thresholdY},
			{entity.DropBottom, r.Bottom() - pointer.Y, thresholdY},
		} {
			if e.distance <= e.threshold && e.distance < best {
				best = e.distance
				position = e.position
			}
		}
		if position == "" {
			return nil
		}
		return &entity.DropTarget{PanelID: pr.PanelID, Position: position}
	}
	return previous
}
