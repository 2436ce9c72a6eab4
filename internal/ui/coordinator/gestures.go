package coordinator

import (
	"context"
	"errors"

	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
)

// StartResize begins dragging the handle after child handleIndex of splitID.
// startPos is the pointer coordinate along the split's main axis. It reports
// whether the gesture started.
func (c *LayoutCoordinator) StartResize(ctx context.Context, splitID string, handleIndex int, startPos float64) bool {
	started := false
	c.apply(ctx, EventGestureChanged, func(ctx context.Context, s entity.LayoutState) entity.LayoutState {
		if c.geometry == nil {
			c.logger.Debug().Str("split_id", splitID).Msg("resize ignored: layout not measured")
			return s
		}
		size, ok := c.geometry.ContainerSize(splitID)
		if !ok {
			c.logger.Debug().Str("split_id", splitID).Msg("resize ignored: container not measured")
			return s
		}

		s, ok = c.resolveConflictLocked(ctx, s, "resize")
		if !ok {
			return s
		}

		next, err := c.resizeUC.Start(ctx, s, usecase.StartResizeInput{
			SplitID:       splitID,
			HandleIndex:   handleIndex,
			StartPosition: startPos,
			ContainerSize: size,
		})
		if err != nil {
			c.logger.Debug().Err(err).Str("split_id", splitID).Msg("resize not started")
			return s
		}
		started = true
		return next
	})
	return started
}

// UpdateResize moves the active handle to pos, measured on the same axis as
// the start position.
func (c *LayoutCoordinator) UpdateResize(ctx context.Context, pos float64) {
	c.apply(ctx, EventGestureChanged, func(ctx context.Context, s entity.LayoutState) entity.LayoutState {
		if s.ResizeState == nil {
			return s
		}
		next, err := c.resizeUC.UpdateAbsolute(ctx, s, pos-s.ResizeState.StartPosition)
		if err != nil {
			return s
		}
		return next
	})
}

// EndResize commits the active resize.
func (c *LayoutCoordinator) EndResize(ctx context.Context) {
	c.apply(ctx, EventLayoutChanged, func(ctx context.Context, s entity.LayoutState) entity.LayoutState {
		next, err := c.resizeUC.End(ctx, s)
		if err != nil {
			return s
		}
		return next
	})
}

// CancelResize restores the sizes the active resize started from.
func (c *LayoutCoordinator) CancelResize(ctx context.Context) {
	c.apply(ctx, EventLayoutChanged, func(ctx context.Context, s entity.LayoutState) entity.LayoutState {
		return c.resizeUC.Cancel(ctx, s)
	})
}

// StartDrag grabs the title bar of a floating window at pointer. It reports
// whether the gesture started.
func (c *LayoutCoordinator) StartDrag(ctx context.Context, windowID string, pointer entity.Point) bool {
	started := false
	c.apply(ctx, EventGestureChanged, func(ctx context.Context, s entity.LayoutState) entity.LayoutState {
		if s.FindWindow(windowID) < 0 {
			c.logger.Debug().Str("window_id", windowID).Msg("drag ignored: window not found")
			return s
		}

		s, ok := c.resolveConflictLocked(ctx, s, "drag")
		if !ok {
			return s
		}

		next, session, err := c.dragUC.Start(ctx, s, windowID, pointer)
		if err != nil || session == nil {
			return s
		}
		c.drag = session
		started = true
		return next
	})
	return started
}

// UpdateDrag moves the dragged window under pointer and refreshes the drop
// target and snap hint.
func (c *LayoutCoordinator) UpdateDrag(ctx context.Context, pointer entity.Point) {
	c.apply(ctx, EventGestureChanged, func(ctx context.Context, s entity.LayoutState) entity.LayoutState {
		if c.drag == nil {
			return s
		}
		next := c.dragUC.Update(ctx, s, c.drag, pointer, c.geometry)
		if !next.IsDragging {
			// The window disappeared mid-gesture.
			c.drag = nil
		}
		return next
	})
}

// EndDrag releases the dragged window and reports what happened to it.
func (c *LayoutCoordinator) EndDrag(ctx context.Context) usecase.DragOutcome {
	outcome := usecase.DragOutcomeFloated
	c.apply(ctx, EventLayoutChanged, func(ctx context.Context, s entity.LayoutState) entity.LayoutState {
		if c.drag == nil && !s.IsDragging {
			return s
		}
		var next entity.LayoutState
		next, outcome = c.dragUC.End(ctx, s, c.drag)
		c.drag = nil
		return next
	})
	return outcome
}

// CancelDrag returns the dragged window to where the drag started.
func (c *LayoutCoordinator) CancelDrag(ctx context.Context) {
	c.apply(ctx, EventLayoutChanged, func(ctx context.Context, s entity.LayoutState) entity.LayoutState {
		if c.drag == nil && !s.IsDragging {
			return s
		}
		next := c.dragUC.Cancel(ctx, s, c.drag)
		c.drag = nil
		return next
	})
}

// CancelGesture abandons whatever gesture is running. The state is always
// Idle afterwards, even if the gesture bookkeeping was inconsistent.
func (c *LayoutCoordinator) CancelGesture(ctx context.Context) {
	c.apply(ctx, EventLayoutChanged, func(ctx context.Context, s entity.LayoutState) entity.LayoutState {
		if s.IsSettled() && c.drag == nil {
			return s
		}
		if s.ResizeState != nil {
			s = c.resizeUC.Cancel(ctx, s)
		}
		if c.drag != nil || s.IsDragging {
			s = c.dragUC.Cancel(ctx, s, c.drag)
			c.drag = nil
		}
		s.IsDragging = false
		s.DropTarget = nil
		s.ResizeState = nil
		return s
	})
}

// IsGestureActive reports whether a drag or resize is running.
func (c *LayoutCoordinator) IsGestureActive() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.state.IsSettled()
}

// resolveConflictLocked applies the gesture policy when a new gesture starts
// while another is running. It returns false when the new gesture must be
// dropped. Must be called with c.mu held.
func (c *LayoutCoordinator) resolveConflictLocked(ctx context.Context, s entity.LayoutState, starting string) (entity.LayoutState, bool) {
	if s.IsSettled() {
		return s, true
	}
	if c.gesturePolicy != GesturePolicyForceEnd {
		c.logger.Debug().
			Str("starting", starting).
			Str("policy", string(c.gesturePolicy)).
			Msg("gesture ignored: another gesture is active")
		return s, false
	}

	if s.ResizeState != nil {
		next, err := c.resizeUC.End(ctx, s)
		if err != nil && !errors.Is(err, usecase.ErrNoGesture) {
			return s, false
		}
		s = next
	}
	if s.IsDragging {
		s, _ = c.dragUC.End(ctx, s, c.drag)
		c.drag = nil
	}
	if c.snapshot != nil {
		// The new gesture's end marks dirty again; this covers a start that fails.
		c.snapshot.MarkDirty()
	}
	c.logger.Debug().Str("starting", starting).Msg("running gesture force-ended")
	return s, true
}
