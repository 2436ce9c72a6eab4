package usecase

import (
	"context"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

// IDGenerator creates unique node and window identifiers.
type IDGenerator func() string

// Default floating window placement used when neither the registry nor the
// UI layer can provide one.
const (
	DefaultFloatingOffset = 24.0
	DefaultFloatingWidth  = 400.0
	DefaultFloatingHeight = 300.0
)

// ManageLayoutUseCase performs structural edits of the layout tree:
// inserting panels next to a target, removing panels, and converting between
// embedded panels and floating windows.
//
// Every operation takes a state and returns the resulting state. Operations
// naming an id that no longer exists return the input unchanged.
type ManageLayoutUseCase struct {
	idGenerator         IDGenerator
	registry            port.PanelRegistry
	defaultFloatingSize entity.Size
	floatingOffset      float64
}

// ManageLayoutOptions tunes undock placement.
type ManageLayoutOptions struct {
	DefaultFloatingSize entity.Size
	FloatingOffset      float64
}

// NewManageLayoutUseCase creates a new layout management use case.
func NewManageLayoutUseCase(idGenerator IDGenerator, registry port.PanelRegistry, opts ManageLayoutOptions) *ManageLayoutUseCase {
	if opts.DefaultFloatingSize.Width <= 0 || opts.DefaultFloatingSize.Height <= 0 {
		opts.DefaultFloatingSize = entity.Size{Width: DefaultFloatingWidth, Height: DefaultFloatingHeight}
	}
	if opts.FloatingOffset <= 0 {
		opts.FloatingOffset = DefaultFloatingOffset
	}
	return &ManageLayoutUseCase{
		idGenerator:         idGenerator,
		registry:            registry,
		defaultFloatingSize: opts.DefaultFloatingSize,
		floatingOffset:      opts.FloatingOffset,
	}
}

// AddPanel inserts newPanelID next to the embedded panel targetPanelID.
//
// When the target's parent split already runs along the axis implied by
// position, the new panel becomes a sibling and takes half of the target's
// share. Otherwise the target is wrapped in a new split of that axis with
// sizes [50, 50]. A center position docks like right.
func (uc *ManageLayoutUseCase) AddPanel(
	ctx context.Context,
	state entity.LayoutState,
	targetPanelID, newPanelID entity.PanelID,
	position entity.DropPosition,
) entity.LayoutState {
	log := logging.FromContext(ctx)

	if !position.Valid() {
		log.Debug().Str("position", string(position)).Msg("add panel ignored: invalid position")
		return state
	}
	if newPanelID == "" || state.HasPanel(newPanelID) {
		log.Debug().Str("panel_id", string(newPanelID)).Msg("add panel ignored: panel already present")
		return state
	}
	target := entity.FindPanel(state.Root, targetPanelID)
	if target == nil {
		log.Debug().Str("target_panel_id", string(targetPanelID)).Msg("add panel ignored: target not embedded")
		return state
	}
	if position == entity.DropCenter {
		position = entity.DropRight
	}

	newNode := entity.NewPanelNode(uc.idGenerator(), newPanelID)
	dir := position.SplitDirection()
	before := position.InsertsBefore()

	parent, idx := entity.FindParent(state.Root, target.ID)
	if parent != nil && parent.Direction == dir {
		children := make([]*entity.LayoutNode, 0, len(parent.Children)+1)
		sizes := make([]float64, 0, len(parent.Sizes)+1)
		share := parent.Sizes[idx] / 2
		for i, child := range parent.Children {
			size := parent.Sizes[i]
			if i == idx {
				size = share
				if before {
					children = append(children, newNode)
					sizes = append(sizes, share)
				}
			}
			children = append(children, child)
			sizes = append(sizes, size)
			if i == idx && !before {
				children = append(children, newNode)
				sizes = append(sizes, share)
			}
		}
		grown := entity.NewSplitNode(parent.ID, parent.Direction, children, sizes)
		state.Root = entity.ReplaceNode(state.Root, parent.ID, grown)

		log.Info().
			Str("panel_id", string(newPanelID)).
			Str("target_panel_id", string(targetPanelID)).
			Str("split_id", parent.ID).
			Str("position", string(position)).
			Msg("panel inserted into existing split")
		return state
	}

	children := []*entity.LayoutNode{target, newNode}
	if before {
		children = []*entity.LayoutNode{newNode, target}
	}
	wrapper := entity.NewSplitNode(uc.idGenerator(), dir, children, []float64{50, 50})
	state.Root = entity.ReplaceNode(state.Root, target.ID, wrapper)

	log.Info().
		Str("panel_id", string(newPanelID)).
		Str("target_panel_id", string(targetPanelID)).
		Str("split_id", wrapper.ID).
		Str("position", string(position)).
		Msg("panel docked in new split")
	return state
}

// RemovePanel deletes a panel leaf. The remaining siblings are renormalized
// to sum to 100 in proportion to their previous shares, and a split left with
// one child is replaced by that child. The last embedded panel is never removed.
//
// ref is a node id; a panel id is accepted as well.
func (uc *ManageLayoutUseCase) RemovePanel(ctx context.Context, state entity.LayoutState, ref string) entity.LayoutState {
	log := logging.FromContext(ctx)

	node := resolvePanelNode(state.Root, ref)
	if node == nil {
		log.Debug().Str("ref", ref).Msg("remove panel ignored: panel not found")
		return state
	}
	parent, idx := entity.FindParent(state.Root, node.ID)
	if parent == nil {
		log.Debug().Str("panel_id", string(node.PanelID)).Msg("remove panel ignored: last embedded panel")
		return state
	}

	children := make([]*entity.LayoutNode, 0, len(parent.Children)-1)
	sizes := make([]float64, 0, len(parent.Sizes)-1)
	for i, child := range parent.Children {
		if i == idx {
			continue
		}
		children = append(children, child)
		sizes = append(sizes, parent.Sizes[i])
	}

	var replacement *entity.LayoutNode
	if len(children) == 1 {
		replacement = children[0]
	} else {
		replacement = entity.NewSplitNode(parent.ID, parent.Direction, children, entity.NormalizeSizes(sizes))
	}
	state.Root = entity.ReplaceNode(state.Root, parent.ID, replacement)

	log.Info().
		Str("panel_id", string(node.PanelID)).
		Str("split_id", parent.ID).
		Bool("collapsed", len(children) == 1).
		Msg("panel removed")
	return state
}

// DockWindow moves a floating window into the tree next to targetPanelID.
// Unknown windows and targets that are not embedded leave the state unchanged.
func (uc *ManageLayoutUseCase) DockWindow(
	ctx context.Context,
	state entity.LayoutState,
	windowID string,
	targetPanelID entity.PanelID,
	position entity.DropPosition,
) entity.LayoutState {
	log := logging.FromContext(ctx)

	idx := state.FindWindow(windowID)
	if idx < 0 {
		log.Debug().Str("window_id", windowID).Msg("dock ignored: window not found")
		return state
	}
	if !state.IsEmbedded(targetPanelID) || !position.Valid() {
		log.Debug().
			Str("window_id", windowID).
			Str("target_panel_id", string(targetPanelID)).
			Msg("dock ignored: target not embedded")
		return state
	}

	window := state.FloatingWindows[idx]
	state = removeWindowAt(state, idx)
	state = uc.AddPanel(ctx, state, targetPanelID, window.PanelID, position)

	log.Info().
		Str("window_id", windowID).
		Str("panel_id", string(window.PanelID)).
		Msg("floating window docked")
	return state
}

// UndockPanel removes an embedded panel from the tree and opens it as a
// floating window. The window is placed offset from the panel's last known
// rectangle when geometry is available, and sized by the registry.
func (uc *ManageLayoutUseCase) UndockPanel(
	ctx context.Context,
	state entity.LayoutState,
	ref string,
	geometry port.GeometryProvider,
) entity.LayoutState {
	log := logging.FromContext(ctx)

	node := resolvePanelNode(state.Root, ref)
	if node == nil {
		log.Debug().Str("ref", ref).Msg("undock ignored: panel not found")
		return state
	}
	panelID := node.PanelID

	var (
		lastRect entity.Rect
		hasRect  bool
	)
	if geometry != nil {
		lastRect, hasRect = geometry.PanelRect(panelID)
	}

	before := state.Root
	state = uc.RemovePanel(ctx, state, node.ID)
	if state.Root == before {
		return state
	}

	position := entity.Point{
		X: uc.floatingOffset * float64(len(state.FloatingWindows)+1),
		Y: uc.floatingOffset * float64(len(state.FloatingWindows)+1),
	}
	if hasRect {
		position = entity.Point{X: lastRect.X + uc.floatingOffset, Y: lastRect.Y + uc.floatingOffset}
	}

	window := entity.FloatingWindow{
		ID:       uc.idGenerator(),
		PanelID:  panelID,
		Position: clampPoint(position),
		Size:     uc.floatingSizeFor(panelID),
		ZIndex:   state.TopZIndex() + 1,
	}
	state = state.WithWindows()
	state.FloatingWindows = append(state.FloatingWindows, window)

	log.Info().
		Str("panel_id", string(panelID)).
		Str("window_id", window.ID).
		Float64("x", window.Position.X).
		Float64("y", window.Position.Y).
		Msg("panel undocked")
	return state
}

// ResetLayout replaces the tree with a copy of the default layout and clears
// floating windows and any gesture state.
func (uc *ManageLayoutUseCase) ResetLayout(ctx context.Context, defaultLayout *entity.LayoutNode) entity.LayoutState {
	logging.FromContext(ctx).Info().Msg("layout reset to default")
	return entity.NewLayoutState(defaultLayout.Clone())
}

func (uc *ManageLayoutUseCase) floatingSizeFor(panelID entity.PanelID) entity.Size {
	if uc.registry != nil {
		size := uc.registry.GetPanelDefaultSize(panelID)
		if size.Width > 0 && size.Height > 0 {
			return size
		}
	}
	return uc.defaultFloatingSize
}

// resolvePanelNode finds a panel leaf by node id, falling back to panel id.
func resolvePanelNode(root *entity.LayoutNode, ref string) *entity.LayoutNode {
	if node := entity.FindNode(root, ref); node.IsPanel() {
		return node
	}
	return entity.FindPanel(root, entity.PanelID(ref))
}

func removeWindowAt(state entity.LayoutState, idx int) entity.LayoutState {
	windows := make([]entity.FloatingWindow, 0, len(state.FloatingWindows)-1)
	windows = append(windows, state.FloatingWindows[:idx]...)
	windows = append(windows, state.FloatingWindows[idx+1:]...)
	state.FloatingWindows = windows
	return state
}

func clampPoint(p entity.Point) entity.Point {
	if p.X < 0 {
		p.X = 0
	}
	if p.Y < 0 {
		p.Y = 0
	}
	return p
}
