package usecase

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

var (
	// ErrGestureActive is returned when a gesture starts while another one runs.
	ErrGestureActive = errors.New("another gesture is active")
	// ErrNoGesture is returned when a gesture update arrives with no gesture running.
	ErrNoGesture = errors.New("no gesture is active")
	// ErrNothingToResize is returned when the handle does not separate two children.
	ErrNothingToResize = errors.New("nothing to resize")
)

// DefaultMinPanelPx is the minimum panel size used when a panel declares none.
const DefaultMinPanelPx = 80.0

// ResizeUseCase turns pointer drags on split handles into size changes.
//
// State machine: Idle -> Resizing -> Idle. Sizes are always recomputed from the
// sizes captured at gesture start plus the total pointer delta, so dropped or
// coalesced pointer events cannot accumulate error.
type ResizeUseCase struct {
	defaultMinPx float64
}

// NewResizeUseCase creates a new resize use case.
func NewResizeUseCase(defaultMinPx float64) *ResizeUseCase {
	if defaultMinPx <= 0 {
		defaultMinPx = DefaultMinPanelPx
	}
	return &ResizeUseCase{defaultMinPx: defaultMinPx}
}

// StartResizeInput describes the handle grabbed by the pointer.
type StartResizeInput struct {
	SplitID     string
	HandleIndex int
	// StartPosition is the pointer coordinate along the split's main axis.
	StartPosition float64
	// ContainerSize is the measured main-axis pixel size of the split.
	ContainerSize float64
}

// Start enters the Resizing state. The container size is recorded once and
// reused for every update of the gesture.
func (uc *ResizeUseCase) Start(ctx context.Context, state entity.LayoutState, input StartResizeInput) (entity.LayoutState, error) {
	log := logging.FromContext(ctx)

	if state.ResizeState != nil || state.IsDragging {
		return state, ErrGestureActive
	}
	split := entity.FindNode(state.Root, input.SplitID)
	if !split.IsSplit() {
		return state, fmt.Errorf("%w: split %q not found", ErrNothingToResize, input.SplitID)
	}
	if input.HandleIndex < 0 || input.HandleIndex+1 >= len(split.Children) {
		return state, fmt.Errorf("%w: handle %d out of range", ErrNothingToResize, input.HandleIndex)
	}
	if input.ContainerSize <= 0 {
		return state, fmt.Errorf("%w: container not measured", ErrNothingToResize)
	}

	state.ResizeState = &entity.ResizeState{
		SplitID:             split.ID,
		HandleIndex:         input.HandleIndex,
		StartPosition:       input.StartPosition,
		Direction:           split.Direction,
		ActualContainerSize: input.ContainerSize,
		StartSizes:          append([]float64(nil), split.Sizes...),
	}

	log.Debug().
		Str("split_id", split.ID).
		Int("handle_index", input.HandleIndex).
		Float64("container_size", input.ContainerSize).
		Msg("resize started")
	return state, nil
}

// UpdateAbsolute applies totalDeltaPx, the pointer travel since Start, to the
// two children around the handle. Children never shrink below their minimum;
// a neighbor at its minimum passes the remaining delta to its own neighbor on
// the same side, and whatever is left is dropped.
func (uc *ResizeUseCase) UpdateAbsolute(ctx context.Context, state entity.LayoutState, totalDeltaPx float64) (entity.LayoutState, error) {
	rs := state.ResizeState
	if rs == nil {
		return state, ErrNoGesture
	}
	split := entity.FindNode(state.Root, rs.SplitID)
	if !split.IsSplit() || len(split.Children) != len(rs.StartSizes) {
		// The split changed under the gesture; nothing sensible to apply.
		logging.FromContext(ctx).Debug().Str("split_id", rs.SplitID).Msg("resize target vanished")
		return state, nil
	}

	mins := make([]float64, len(split.Children))
	for i, child := range split.Children {
		mins[i] = minSizePx(child, rs.Direction, uc.defaultMinPx) / rs.ActualContainerSize * 100
	}
	sizes := ApplyResizeDelta(rs.StartSizes, mins, rs.HandleIndex, totalDeltaPx/rs.ActualContainerSize*100)

	state.Root = entity.UpdateNodeSizes(state.Root, rs.SplitID, sizes)
	return state, nil
}

// End commits the current sizes and returns to Idle.
func (uc *ResizeUseCase) End(ctx context.Context, state entity.LayoutState) (entity.LayoutState, error) {
	rs := state.ResizeState
	if rs == nil {
		return state, ErrNoGesture
	}
	if split := entity.FindNode(state.Root, rs.SplitID); split.IsSplit() {
		state.Root = entity.UpdateNodeSizes(state.Root, rs.SplitID, split.Sizes)
		logging.FromContext(ctx).Info().
			Str("split_id", rs.SplitID).
			Floats64("sizes", split.Sizes).
			Msg("resize committed")
	}
	state.ResizeState = nil
	return state, nil
}

// Cancel restores the sizes captured at Start and returns to Idle.
func (uc *ResizeUseCase) Cancel(ctx context.Context, state entity.LayoutState) entity.LayoutState {
	rs := state.ResizeState
	if rs == nil {
		return state
	}
	state.Root = entity.UpdateNodeSizes(state.Root, rs.SplitID, rs.StartSizes)
	state.ResizeState = nil
	logging.FromContext(ctx).Debug().Str("split_id", rs.SplitID).Msg("resize cancelled")
	return state
}

// ApplyResizeDelta moves the boundary after handleIndex by deltaPct.
// Positive deltas grow sizes[handleIndex] and take space from the children to
// the right of the handle, nearest first; negative deltas do the mirror image.
// The returned slice is new and has the same sum as start.
func ApplyResizeDelta(start, mins []float64, handleIndex int, deltaPct float64) []float64 {
	sizes := append([]float64(nil), start...)
	if handleIndex < 0 || handleIndex+1 >= len(sizes) || deltaPct == 0 || math.IsNaN(deltaPct) {
		return sizes
	}

	requested := math.Abs(deltaPct)
	remaining := requested
	take := func(j int) {
		available := math.Max(0, sizes[j]-mins[j])
		taken := math.Min(available, remaining)
		sizes[j] -= taken
		remaining -= taken
	}

	if deltaPct > 0 {
		for j := handleIndex + 1; j < len(sizes) && remaining > 0; j++ {
			take(j)
		}
		sizes[handleIndex] += requested - remaining
	} else {
		for j := handleIndex; j >= 0 && remaining > 0; j-- {
			take(j)
		}
		sizes[handleIndex+1] += requested - remaining
	}
	return sizes
}

// minSizePx derives a node's minimum extent along dir.
// Splits along dir need room for all of their children; orthogonal splits
// need room for the largest child.
func minSizePx(node *entity.LayoutNode, dir entity.SplitDirection, defaultMin float64) float64 {
	if node.IsPanel() {
		if node.MinSize > 0 {
			return node.MinSize
		}
		return defaultMin
	}
	total, largest := 0.0, 0.0
	for _, child := range node.Children {
		m := minSizePx(child, dir, defaultMin)
		total += m
		largest = math.Max(largest, m)
	}
	if node.Direction == dir {
		return total
	}
	return largest
}
