// Package coordinator owns the live layout state of one editor and routes UI
// input to the layout use cases.
package coordinator

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/infrastructure/snapshot"
	"github.com/bnema/dockyard/internal/logging"
)

// GesturePolicy decides what happens when a gesture starts while another is active.
type GesturePolicy string

const (
	// GesturePolicyIgnore drops the new gesture.
	GesturePolicyIgnore GesturePolicy = "ignore"
	// GesturePolicyForceEnd commits the running gesture, then starts the new one.
	GesturePolicyForceEnd GesturePolicy = "force_end"
)

// Config wires a coordinator for one editor.
type Config struct {
	StorageKey    entity.StorageKey
	DefaultLayout *entity.LayoutNode
	Registry      port.PanelRegistry

	LayoutUC   *usecase.ManageLayoutUseCase
	ResizeUC   *usecase.ResizeUseCase
	FloatingUC *usecase.FloatingWindowsUseCase
	DragUC     *usecase.DragUseCase
	PersistUC  *usecase.LayoutPersistenceUseCase

	SnapshotIntervalMs int
	GesturePolicy      GesturePolicy
	// DisableSnap stops keyboard moves from proposing snap hints.
	DisableSnap bool
}

// LayoutCoordinator is the single owner of an editor's LayoutState. Every
// mutation goes through a use case, replaces the state, then notifies
// subscribers outside the lock.
type LayoutCoordinator struct {
	storageKey    entity.StorageKey
	defaultLayout *entity.LayoutNode
	registry      port.PanelRegistry

	layoutUC   *usecase.ManageLayoutUseCase
	resizeUC   *usecase.ResizeUseCase
	floatingUC *usecase.FloatingWindowsUseCase
	dragUC     *usecase.DragUseCase

	snapshot      *snapshot.Service
	gesturePolicy GesturePolicy
	snapEnabled   bool
	logger        zerolog.Logger

	mu          sync.Mutex
	state       entity.LayoutState
	geometry    port.GeometryProvider
	drag        *usecase.DragSession
	listeners   map[int]Listener
	nextID      int
	unsubscribe func()
	closed      bool
	fromDefault bool
}

// New loads the persisted layout for cfg.StorageKey, falling back to the
// default, and starts debounced persistence.
func New(ctx context.Context, cfg Config) *LayoutCoordinator {
	ctx = logging.WithStorageKey(logging.WithComponent(ctx, "layout-coordinator"), string(cfg.StorageKey))
	log := logging.FromContext(ctx)

	if cfg.GesturePolicy == "" {
		cfg.GesturePolicy = GesturePolicyIgnore
	}

	c := &LayoutCoordinator{
		storageKey:    cfg.StorageKey,
		defaultLayout: cfg.DefaultLayout,
		registry:      cfg.Registry,
		layoutUC:      cfg.LayoutUC,
		resizeUC:      cfg.ResizeUC,
		floatingUC:    cfg.FloatingUC,
		dragUC:        cfg.DragUC,
		gesturePolicy: cfg.GesturePolicy,
		snapEnabled:   !cfg.DisableSnap,
		logger:        *log,
		listeners:     make(map[int]Listener),
	}

	if cfg.PersistUC != nil {
		out := cfg.PersistUC.Load(ctx, cfg.StorageKey, cfg.DefaultLayout)
		c.state = out.State
		c.fromDefault = out.FromDefault
		c.snapshot = snapshot.NewService(cfg.PersistUC, c, cfg.SnapshotIntervalMs)
		c.snapshot.Start(ctx)
	} else {
		c.state = entity.NewLayoutState(cfg.DefaultLayout.Clone())
		c.fromDefault = true
	}

	if source, ok := cfg.Registry.(port.PanelUpdateSource); ok {
		c.unsubscribe = source.SubscribeToPanelUpdates(c.onPanelUpdated)
	}

	log.Info().
		Bool("from_default", c.fromDefault).
		Int("panel_count", len(entity.PanelIDs(c.state.Root))).
		Int("floating_count", len(c.state.FloatingWindows)).
		Msg("layout coordinator ready")
	return c
}

// GetLayoutState returns the current state. Callers must treat it as read-only.
func (c *LayoutCoordinator) GetLayoutState() entity.LayoutState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// GetStorageKey returns the key the layout is persisted under.
func (c *LayoutCoordinator) GetStorageKey() entity.StorageKey {
	return c.storageKey
}

// Registry returns the editor's panel registry.
func (c *LayoutCoordinator) Registry() port.PanelRegistry {
	return c.registry
}

// LoadedFromDefault reports whether the session started from the default
// layout because nothing usable was stored.
func (c *LayoutCoordinator) LoadedFromDefault() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fromDefault
}

// TitleBarHeight returns the floating window title bar height.
func (c *LayoutCoordinator) TitleBarHeight() float64 {
	if c.floatingUC == nil {
		return usecase.DefaultTitleBarHeight
	}
	return c.floatingUC.TitleBarHeight()
}

// SetGeometry records the latest measurement of the rendered layout. The UI
// layer calls it after every layout pass.
func (c *LayoutCoordinator) SetGeometry(g port.GeometryProvider) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.geometry = g
}

// AddPanel inserts newPanelID next to targetPanelID.
func (c *LayoutCoordinator) AddPanel(ctx context.Context, targetPanelID, newPanelID entity.PanelID, position entity.DropPosition) {
	c.apply(ctx, EventLayoutChanged, func(ctx context.Context, s entity.LayoutState) entity.LayoutState {
		return c.layoutUC.AddPanel(ctx, s, targetPanelID, newPanelID, position)
	})
}

// RemovePanel deletes an embedded panel by node or panel id.
func (c *LayoutCoordinator) RemovePanel(ctx context.Context, ref string) {
	c.apply(ctx, EventLayoutChanged, func(ctx context.Context, s entity.LayoutState) entity.LayoutState {
		return c.layoutUC.RemovePanel(ctx, s, ref)
	})
}

// DockWindow moves a floating window into the tree.
func (c *LayoutCoordinator) DockWindow(ctx context.Context, windowID string, targetPanelID entity.PanelID, position entity.DropPosition) {
	c.apply(ctx, EventLayoutChanged, func(ctx context.Context, s entity.LayoutState) entity.LayoutState {
		return c.layoutUC.DockWindow(ctx, s, windowID, targetPanelID, position)
	})
}

// UndockPanel turns an embedded panel into a floating window placed near its
// last measured rectangle.
func (c *LayoutCoordinator) UndockPanel(ctx context.Context, ref string) {
	c.apply(ctx, EventLayoutChanged, func(ctx context.Context, s entity.LayoutState) entity.LayoutState {
		return c.layoutUC.UndockPanel(ctx, s, ref, c.geometry)
	})
}

// ResetLayout restores the default layout and closes every floating window.
// A running gesture is abandoned.
func (c *LayoutCoordinator) ResetLayout(ctx context.Context) {
	c.apply(ctx, EventLayoutChanged, func(ctx context.Context, _ entity.LayoutState) entity.LayoutState {
		c.drag = nil
		return c.layoutUC.ResetLayout(ctx, c.defaultLayout)
	})
}

// OpenFloatingWindow opens panelID in a new floating window.
func (c *LayoutCoordinator) OpenFloatingWindow(ctx context.Context, panelID entity.PanelID, position *entity.Point) {
	c.apply(ctx, EventLayoutChanged, func(ctx context.Context, s entity.LayoutState) entity.LayoutState {
		return c.floatingUC.Open(ctx, s, panelID, position)
	})
}

// CloseFloatingWindow discards a floating window.
func (c *LayoutCoordinator) CloseFloatingWindow(ctx context.Context, windowID string) {
	c.apply(ctx, EventLayoutChanged, func(ctx context.Context, s entity.LayoutState) entity.LayoutState {
		if c.drag != nil && c.drag.WindowID == windowID {
			s = c.dragUC.Cancel(ctx, s, c.drag)
			c.drag = nil
		}
		return c.floatingUC.Close(ctx, s, windowID)
	})
}

// ToggleMinimize minimizes or restores a floating window.
func (c *LayoutCoordinator) ToggleMinimize(ctx context.Context, windowID string) {
	c.apply(ctx, EventLayoutChanged, func(ctx context.Context, s entity.LayoutState) entity.LayoutState {
		return c.floatingUC.ToggleMinimize(ctx, s, windowID)
	})
}

// SetMinimizedPosition sets where a minimized window's title bar sits.
func (c *LayoutCoordinator) SetMinimizedPosition(ctx context.Context, windowID string, pos entity.Point) {
	c.apply(ctx, EventLayoutChanged, func(ctx context.Context, s entity.LayoutState) entity.LayoutState {
		return c.floatingUC.SetMinimizedPosition(ctx, s, windowID, pos)
	})
}

// MoveFloatingWindow repositions a window outside of a drag, for example from
// the keyboard, and refreshes its snap hint.
func (c *LayoutCoordinator) MoveFloatingWindow(ctx context.Context, windowID string, pos entity.Point) {
	c.apply(ctx, EventLayoutChanged, func(ctx context.Context, s entity.LayoutState) entity.LayoutState {
		s = c.floatingUC.SetPosition(ctx, s, windowID, pos)
		if !c.snapEnabled {
			return s
		}
		return c.floatingUC.ComputeSnap(ctx, s, windowID, c.panelRectsLocked())
	})
}

// AcceptSnap moves a window onto its pending snap hint.
func (c *LayoutCoordinator) AcceptSnap(ctx context.Context, windowID string) {
	c.apply(ctx, EventLayoutChanged, func(ctx context.Context, s entity.LayoutState) entity.LayoutState {
		return c.floatingUC.ApplySnap(ctx, s, windowID)
	})
}

// ResizeFloatingWindow sets a window's size.
func (c *LayoutCoordinator) ResizeFloatingWindow(ctx context.Context, windowID string, size entity.Size) {
	c.apply(ctx, EventLayoutChanged, func(ctx context.Context, s entity.LayoutState) entity.LayoutState {
		return c.floatingUC.SetSize(ctx, s, windowID, size)
	})
}

// FocusWindow raises a floating window above the others.
func (c *LayoutCoordinator) FocusWindow(ctx context.Context, windowID string) {
	c.apply(ctx, EventLayoutChanged, func(ctx context.Context, s entity.LayoutState) entity.LayoutState {
		return c.floatingUC.Focus(ctx, s, windowID)
	})
}

// Flush writes any pending layout change immediately.
func (c *LayoutCoordinator) Flush(ctx context.Context) error {
	if c.snapshot == nil {
		return nil
	}
	return c.snapshot.SaveNow(ctx)
}

// Close ends any running gesture, flushes the pending save, detaches from the
// registry and drops every listener. The coordinator ignores input afterwards.
func (c *LayoutCoordinator) Close(ctx context.Context) error {
	c.CancelGesture(ctx)

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return nil
	}
	c.closed = true
	unsubscribe := c.unsubscribe
	c.unsubscribe = nil
	c.listeners = make(map[int]Listener)
	c.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}

	if c.snapshot != nil {
		if err := c.snapshot.Stop(ctx); err != nil {
			c.logger.Error().Err(err).Msg("failed to save layout on close")
			return err
		}
	}
	c.logger.Debug().Msg("layout coordinator closed")
	return nil
}

// apply runs fn under the lock and publishes the result. fn may read c.geometry
// and c.drag.
func (c *LayoutCoordinator) apply(
	ctx context.Context,
	kind EventKind,
	fn func(context.Context, entity.LayoutState) entity.LayoutState,
) entity.LayoutState {
	ctx = logging.WithContext(ctx, c.logger)

	c.mu.Lock()
	if c.closed {
		state := c.state
		c.mu.Unlock()
		return state
	}
	before := c.state
	next := fn(ctx, before)
	c.state = next
	c.mu.Unlock()

	if !stateChanged(before, next) {
		return next
	}
	c.publish(kind, next)
	return next
}

// publish persists settled layout changes and notifies subscribers.
func (c *LayoutCoordinator) publish(kind EventKind, state entity.LayoutState) {
	if kind == EventLayoutChanged && state.IsSettled() && c.snapshot != nil {
		c.snapshot.MarkDirty()
	}
	c.emit(Event{Kind: kind, State: state})
}

// panelRectsLocked must be called with c.mu held.
func (c *LayoutCoordinator) panelRectsLocked() []entity.PanelRect {
	if c.geometry == nil {
		return nil
	}
	return c.geometry.PanelRects()
}

// stateChanged reports whether b differs from a. Use cases return their input
// untouched on no-ops, so identity comparison is enough.
func stateChanged(a, b entity.LayoutState) bool {
	if a.Root != b.Root || a.IsDragging != b.IsDragging ||
		a.DropTarget != b.DropTarget || a.ResizeState != b.ResizeState {
		return true
	}
	if len(a.FloatingWindows) != len(b.FloatingWindows) {
		return true
	}
	return len(a.FloatingWindows) > 0 && &a.FloatingWindows[0] != &b.FloatingWindows[0]
}
