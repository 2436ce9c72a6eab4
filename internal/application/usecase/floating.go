package usecase

import (
	"context"
	"math"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

const (
	// DefaultSnapTolerance is the pixel distance under which an edge snaps.
	DefaultSnapTolerance = 12.0
	// DefaultTitleBarHeight is the height of a minimized window.
	DefaultTitleBarHeight = 28.0

	minFloatingWidth  = 120.0
	minFloatingHeight = 60.0
)

// FloatingWindowsUseCase manages position, size, minimize and z-order state of
// undocked windows, and computes snap hints.
type FloatingWindowsUseCase struct {
	idGenerator    IDGenerator
	registry       port.PanelRegistry
	defaultSize    entity.Size
	offset         float64
	snapTolerance  float64
	titleBarHeight float64
}

// FloatingWindowsOptions configures window placement and snapping.
type FloatingWindowsOptions struct {
	DefaultSize    entity.Size
	Offset         float64
	SnapTolerance  float64
	TitleBarHeight float64
}

// NewFloatingWindowsUseCase creates a new floating window use case.
func NewFloatingWindowsUseCase(idGenerator IDGenerator, registry port.PanelRegistry, opts FloatingWindowsOptions) *FloatingWindowsUseCase {
	if opts.DefaultSize.Width <= 0 || opts.DefaultSize.Height <= 0 {
		opts.DefaultSize = entity.Size{Width: DefaultFloatingWidth, Height: DefaultFloatingHeight}
	}
	if opts.Offset <= 0 {
		opts.Offset = DefaultFloatingOffset
	}
	if opts.SnapTolerance <= 0 {
		opts.SnapTolerance = DefaultSnapTolerance
	}
	if opts.TitleBarHeight <= 0 {
		opts.TitleBarHeight = DefaultTitleBarHeight
	}
	return &FloatingWindowsUseCase{
		idGenerator:    idGenerator,
		registry:       registry,
		defaultSize:    opts.DefaultSize,
		offset:         opts.Offset,
		snapTolerance:  opts.SnapTolerance,
		titleBarHeight: opts.TitleBarHeight,
	}
}

// TitleBarHeight returns the configured title bar height.
func (uc *FloatingWindowsUseCase) TitleBarHeight() float64 {
	return uc.titleBarHeight
}

// Open appends a floating window for panelID. When position is nil the window
// cascades from the top-left corner. Panels that are already embedded or
// floating are left alone.
func (uc *FloatingWindowsUseCase) Open(ctx context.Context, state entity.LayoutState, panelID entity.PanelID, position *entity.Point) entity.LayoutState {
	log := logging.FromContext(ctx)

	if panelID == "" || state.HasPanel(panelID) {
		log.Debug().Str("panel_id", string(panelID)).Msg("open floating window ignored: panel already present")
		return state
	}

	pos := entity.Point{
		X: uc.offset * float64(len(state.FloatingWindows)+1),
		Y: uc.offset * float64(len(state.FloatingWindows)+1),
	}
	if position != nil {
		pos = *position
	}

	size := uc.defaultSize
	if uc.registry != nil {
		if s := uc.registry.GetPanelDefaultSize(panelID); s.Width > 0 && s.Height > 0 {
			size = s
		}
	}

	window := entity.FloatingWindow{
		ID:       uc.idGenerator(),
		PanelID:  panelID,
		Position: clampPoint(pos),
		Size:     clampSize(size),
		ZIndex:   state.TopZIndex() + 1,
	}
	state = state.WithWindows()
	state.FloatingWindows = append(state.FloatingWindows, window)

	log.Info().
		Str("panel_id", string(panelID)).
		Str("window_id", window.ID).
		Msg("floating window opened")
	return state
}

// Close removes a window entirely. Its content is discarded, not re-docked.
func (uc *FloatingWindowsUseCase) Close(ctx context.Context, state entity.LayoutState, windowID string) entity.LayoutState {
	idx := state.FindWindow(windowID)
	if idx < 0 {
		logging.FromContext(ctx).Debug().Str("window_id", windowID).Msg("close ignored: window not found")
		return state
	}
	panelID := state.FloatingWindows[idx].PanelID
	state = removeWindowAt(state, idx)

	logging.FromContext(ctx).Info().
		Str("window_id", windowID).
		Str("panel_id", string(panelID)).
		Msg("floating window closed")
	return state
}

// ToggleMinimize flips the minimized flag of a window.
func (uc *FloatingWindowsUseCase) ToggleMinimize(ctx context.Context, state entity.LayoutState, windowID string) entity.LayoutState {
	return uc.update(ctx, state, windowID, func(w *entity.FloatingWindow) {
		w.IsMinimized = !w.IsMinimized
		w.SnapInfo = nil
		logging.FromContext(ctx).Debug().
			Str("window_id", windowID).
			Bool("minimized", w.IsMinimized).
			Msg("floating window minimize toggled")
	})
}

// SetMinimizedPosition remembers where the window's title bar sits while minimized.
func (uc *FloatingWindowsUseCase) SetMinimizedPosition(ctx context.Context, state entity.LayoutState, windowID string, pos entity.Point) entity.LayoutState {
	return uc.update(ctx, state, windowID, func(w *entity.FloatingWindow) {
		p := clampPoint(pos)
		w.MinimizedPosition = &p
	})
}

// SetPosition moves a window. Coordinates are clamped to be non-negative.
func (uc *FloatingWindowsUseCase) SetPosition(ctx context.Context, state entity.LayoutState, windowID string, pos entity.Point) entity.LayoutState {
	return uc.update(ctx, state, windowID, func(w *entity.FloatingWindow) {
		w.Position = clampPoint(pos)
	})
}

// SetSize resizes a window, never below the minimum floating size.
func (uc *FloatingWindowsUseCase) SetSize(ctx context.Context, state entity.LayoutState, windowID string, size entity.Size) entity.LayoutState {
	return uc.update(ctx, state, windowID, func(w *entity.FloatingWindow) {
		w.Size = clampSize(size)
	})
}

// Focus raises a window above every other floating window.
func (uc *FloatingWindowsUseCase) Focus(ctx context.Context, state entity.LayoutState, windowID string) entity.LayoutState {
	idx := state.FindWindow(windowID)
	if idx < 0 {
		return state
	}
	top := state.TopZIndex()
	if state.FloatingWindows[idx].ZIndex == top && countZIndex(state, top) == 1 {
		return state
	}
	return uc.update(ctx, state, windowID, func(w *entity.FloatingWindow) {
		w.ZIndex = top + 1
	})
}

// ComputeSnap stores a snap hint on the window describing how to align it with
// nearby panel rectangles and other visible floating windows. The hint never
// moves the window; see ApplySnap.
func (uc *FloatingWindowsUseCase) ComputeSnap(ctx context.Context, state entity.LayoutState, windowID string, panels []entity.PanelRect) entity.LayoutState {
	idx := state.FindWindow(windowID)
	if idx < 0 {
		return state
	}
	window := state.FloatingWindows[idx]
	if window.IsMinimized {
		return state
	}

	targets := make([]SnapTarget, 0, len(panels)+len(state.FloatingWindows))
	for _, p := range panels {
		targets = append(targets, SnapTarget{ID: string(p.PanelID), Rect: p.Rect})
	}
	for _, other := range state.FloatingWindows {
		if other.ID == windowID || other.IsMinimized {
			continue
		}
		targets = append(targets, SnapTarget{ID: other.ID, Rect: other.Rect(uc.titleBarHeight)})
	}

	hint := SnapHint(window.Rect(uc.titleBarHeight), targets, uc.snapTolerance)
	if hint.Empty() && window.SnapInfo.Empty() {
		return state
	}
	return uc.update(ctx, state, windowID, func(w *entity.FloatingWindow) {
		if hint.Empty() {
			w.SnapInfo = nil
			return
		}
		w.SnapInfo = hint
	})
}

// ClearSnap drops a window's snap hint.
func (uc *FloatingWindowsUseCase) ClearSnap(ctx context.Context, state entity.LayoutState, windowID string) entity.LayoutState {
	idx := state.FindWindow(windowID)
	if idx < 0 || state.FloatingWindows[idx].SnapInfo == nil {
		return state
	}
	return uc.update(ctx, state, windowID, func(w *entity.FloatingWindow) {
		w.SnapInfo = nil
	})
}

// ApplySnap moves the window to its hinted position and clears the hint.
// Tree membership is never changed.
func (uc *FloatingWindowsUseCase) ApplySnap(ctx context.Context, state entity.LayoutState, windowID string) entity.LayoutState {
	idx := state.FindWindow(windowID)
	if idx < 0 || state.FloatingWindows[idx].SnapInfo.Empty() {
		return state
	}
	return uc.update(ctx, state, windowID, func(w *entity.FloatingWindow) {
		if w.SnapInfo.X != nil {
			w.Position.X = *w.SnapInfo.X
		}
		if w.SnapInfo.Y != nil {
			w.Position.Y = *w.SnapInfo.Y
		}
		w.Position = clampPoint(w.Position)
		logging.FromContext(ctx).Debug().
			Str("window_id", windowID).
			Str("target_x", w.SnapInfo.TargetX).
			Str("target_y", w.SnapInfo.TargetY).
			Msg("snap applied")
		w.SnapInfo = nil
	})
}

// update applies fn to a copy of the window and returns the new state.
func (uc *FloatingWindowsUseCase) update(ctx context.Context, state entity.LayoutState, windowID string, fn func(*entity.FloatingWindow)) entity.LayoutState {
	idx := state.FindWindow(windowID)
	if idx < 0 {
		logging.FromContext(ctx).Debug().Str("window_id", windowID).Msg("floating window update ignored: window not found")
		return state
	}
	state = state.WithWindows()
	fn(&state.FloatingWindows[idx])
	return state
}

// SnapTarget is a rectangle a floating window can align with.
type SnapTarget struct {
	ID   string
	Rect entity.Rect
}

// SnapHint computes alignment suggestions for rect against targets.
//
// Each axis is handled on its own. Horizontally the window's left or right
// edge may align with a target's left or right edge, provided the two overlap
// vertically; vertically the same with top and bottom edges. The nearest
// candidate within tolerance wins.
func SnapHint(rect entity.Rect, targets []SnapTarget, tolerance float64) *entity.SnapInfo {
	info := &entity.SnapInfo{}
	bestX, bestY := math.Inf(1), math.Inf(1)

	for _, t := range targets {
		if spansOverlap(rect.Y, rect.Bottom(), t.Rect.Y, t.Rect.Bottom()) {
			for _, c := range []struct {
				edge entity.SnapEdge
				from float64
				to   float64
			}{
				{entity.SnapEdgeLeft, rect.X, t.Rect.X},
				{entity.SnapEdgeLeft, rect.X, t.Rect.Right()},
				{entity.SnapEdgeRight, rect.Right(), t.Rect.X},
				{entity.SnapEdgeRight, rect.Right(), t.Rect.Right()},
			} {
				d := math.Abs(c.from - c.to)
				x := rect.X + (c.to - c.from)
				if d <= tolerance && d < bestX && x >= 0 {
					bestX = d
					info.X, info.EdgeX, info.TargetX = &x, c.edge, t.ID
				}
			}
		}
		if spansOverlap(rect.X, rect.Right(), t.Rect.X, t.Rect.Right()) {
			for _, c := range []struct {
				edge entity.SnapEdge
				from float64
				to   float64
			}{
				{entity.SnapEdgeTop, rect.Y, t.Rect.Y},
				{entity.SnapEdgeTop, rect.Y, t.Rect.Bottom()},
				{entity.SnapEdgeBottom, rect.Bottom(), t.Rect.Y},
				{entity.SnapEdgeBottom, rect.Bottom(), t.Rect.Bottom()},
			} {
				d := math.Abs(c.from - c.to)
				y := rect.Y + (c.to - c.from)
				if d <= tolerance && d < bestY && y >= 0 {
					bestY = d
					info.Y, info.EdgeY, info.TargetY = &y, c.edge, t.ID
				}
			}
		}
	}
	return info
}

func spansOverlap(a0, a1, b0, b1 float64) bool {
	return a0 <= b1 && b0 <= a1
}

func clampSize(s entity.Size) entity.Size {
	s.Width = math.Max(s.Width, minFloatingWidth)
	s.Height = math.Max(s.Height, minFloatingHeight)
	return s
}

func countZIndex(state entity.LayoutState, z int) int {
	n := 0
	for _, w := range state.FloatingWindows {
		if w.ZIndex == z {
			n++
		}
	}
	return n
}
