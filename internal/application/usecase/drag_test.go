package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/application/port/mocks"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
)

func newDrag(t *testing.T) *usecase.DragUseCase {
	t.Helper()
	ids := sequentialIDs()
	layout := usecase.NewManageLayoutUseCase(ids, nil, usecase.ManageLayoutOptions{})
	floating := usecase.NewFloatingWindowsUseCase(ids, nil, usecase.FloatingWindowsOptions{})
	return usecase.NewDragUseCase(layout, floating, usecase.DragOptions{})
}

func videoPanelRects() []entity.PanelRect {
	return []entity.PanelRect{
		{PanelID: "preview", NodeID: "n-preview", Rect: entity.Rect{X: 0, Y: 0, W: 1000, H: 680}},
		{PanelID: "timeline", NodeID: "n-timeline", Rect: entity.Rect{X: 0, Y: 680, W: 1000, H: 320}},
	}
}

func draggableState() entity.LayoutState {
	state := entity.NewLayoutState(videoDefault())
	state.FloatingWindows = []entity.FloatingWindow{
		{ID: "w1", PanelID: "inspector", Position: entity.Point{X: 300, Y: 300}, Size: entity.Size{Width: 200, Height: 150}, ZIndex: 1},
		{ID: "w2", PanelID: "history", Position: entity.Point{X: 700, Y: 300}, Size: entity.Size{Width: 200, Height: 150}, ZIndex: 2},
	}
	return state
}

func TestComputeDropTarget(t *testing.T) {
	uc := newDrag(t)
	rects := []entity.PanelRect{{PanelID: "canvas", Rect: entity.Rect{X: 0, Y: 0, W: 1000, H: 500}}}
	previous := &entity.DropTarget{PanelID: "timeline", Position: entity.DropTop}

	tests := []struct {
		name    string
		pointer entity.Point
		want    *entity.DropTarget
	}{
		{name: "left edge", pointer: entity.Point{X: 30, Y: 250}, want: &entity.DropTarget{PanelID: "canvas", Position: entity.DropLeft}},
		{name: "right edge", pointer: entity.Point{X: 990, Y: 250}, want: &entity.DropTarget{PanelID: "canvas", Position: entity.DropRight}},
		{name: "top edge", pointer: entity.Point{X: 500, Y: 20}, want: &entity.DropTarget{PanelID: "canvas", Position: entity.DropTop}},
		{name: "bottom edge", pointer: entity.Point{X: 500, Y: 480}, want: &entity.DropTarget{PanelID: "canvas", Position: entity.DropBottom}},
		{name: "nearest edge wins in a corner", pointer: entity.Point{X: 20, Y: 10}, want: &entity.DropTarget{PanelID: "canvas", Position: entity.DropTop}},
		// Horizontal threshold is capped at 60px, vertical one is 10% of 500.
		{name: "beyond capped threshold", pointer: entity.Point{X: 70, Y: 250}, want: nil},
		{name: "center clears target", pointer: entity.Point{X: 500, Y: 250}, want: nil},
		{name: "outside keeps previous", pointer: entity.Point{X: 1200, Y: 250}, want: previous},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, uc.ComputeDropTarget(tt.pointer, rects, previous))
		})
	}
}

func TestComputeDropTarget_SmallPanelUsesPercentage(t *testing.T) {
	uc := newDrag(t)
	rects := []entity.PanelRect{{PanelID: "tools", Rect: entity.Rect{X: 0, Y: 0, W: 200, H: 100}}}

	assert.Nil(t, uc.ComputeDropTarget(entity.Point{X: 25, Y: 50}, rects, nil))
	assert.Equal(t, &entity.DropTarget{PanelID: "tools", Position: entity.DropLeft},
		uc.ComputeDropTarget(entity.Point{X: 15, Y: 50}, rects, nil))
}

func TestDrag_DockOnRelease(t *testing.T) {
	ctx := testCtx()
	uc := newDrag(t)
	geometry := mocks.NewMockGeometryProvider(t)
	geometry.EXPECT().PanelRects().Return(videoPanelRects())

	state, session, err := uc.Start(ctx, draggableState(), "w1", entity.Point{X: 310, Y: 305})
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.True(t, state.IsDragging)
	assert.Equal(t, entity.Point{X: 10, Y: 5}, session.Offset)
	assert.Equal(t, 3, state.FloatingWindows[0].ZIndex, "dragged window is raised")

	state = uc.Update(ctx, state, session, entity.Point{X: 20, Y: 340}, geometry)
	assert.Equal(t, entity.Point{X: 10, Y: 335}, state.FloatingWindows[0].Position)
	require.NotNil(t, state.DropTarget)
	assert.Equal(t, entity.DropTarget{PanelID: "preview", Position: entity.DropLeft}, *state.DropTarget)

	state, outcome := uc.End(ctx, state, session)
	require.NoError(t, state.Validate())

	assert.Equal(t, usecase.DragOutcomeDocked, outcome)
	assert.True(t, state.IsSettled())
	assert.Equal(t, -1, state.FindWindowByPanel("inspector"))
	node := entity.FindPanel(state.Root, "inspector")
	require.NotNil(t, node)
	parent, idx := entity.FindParent(state.Root, node.ID)
	assert.Equal(t, entity.SplitHorizontal, parent.Direction)
	assert.Equal(t, entity.PanelID("preview"), parent.Children[idx+1].PanelID)
}

func TestDrag_TransitKeepsLastCandidate(t *testing.T) {
	ctx := testCtx()
	uc := newDrag(t)
	geometry := mocks.NewMockGeometryProvider(t)
	geometry.EXPECT().PanelRects().Return([]entity.PanelRect{
		{PanelID: "preview", Rect: entity.Rect{X: 0, Y: 0, W: 400, H: 400}},
		{PanelID: "timeline", Rect: entity.Rect{X: 500, Y: 0, W: 400, H: 400}},
	})

	state, session, err := uc.Start(ctx, draggableState(), "w1", entity.Point{X: 300, Y: 300})
	require.NoError(t, err)

	state = uc.Update(ctx, state, session, entity.Point{X: 390, Y: 200}, geometry)
	require.NotNil(t, state.DropTarget)
	assert.Equal(t, entity.DropRight, state.DropTarget.Position)

	// The gap between panels keeps the candidate.
	state = uc.Update(ctx, state, session, entity.Point{X: 450, Y: 200}, geometry)
	require.NotNil(t, state.DropTarget)
	assert.Equal(t, entity.PanelID("preview"), state.DropTarget.PanelID)

	// The center of the next panel clears it.
	state = uc.Update(ctx, state, session, entity.Point{X: 650, Y: 200}, geometry)
	assert.Nil(t, state.DropTarget)

	state, outcome := uc.End(ctx, state, session)
	assert.Equal(t, usecase.DragOutcomeFloated, outcome)
	assert.True(t, state.IsSettled())
	assert.Equal(t, entity.Point{X: 650, Y: 200}, state.FloatingWindows[0].Position)
}

func TestDrag_SnapOnReleaseWithoutTarget(t *testing.T) {
	ctx := testCtx()
	uc := newDrag(t)
	geometry := mocks.NewMockGeometryProvider(t)
	geometry.EXPECT().PanelRects().Return([]entity.PanelRect{
		{PanelID: "preview", Rect: entity.Rect{X: 0, Y: 0, W: 400, H: 300}},
	})

	state := draggableState()
	state.FloatingWindows = state.FloatingWindows[:1]
	state.FloatingWindows[0].Position = entity.Point{X: 600, Y: 600}

	state, session, err := uc.Start(ctx, state, "w1", entity.Point{X: 610, Y: 610})
	require.NoError(t, err)

	state = uc.Update(ctx, state, session, entity.Point{X: 418, Y: 100}, geometry)
	assert.Nil(t, state.DropTarget)
	require.NotNil(t, state.FloatingWindows[0].SnapInfo)

	state, outcome := uc.End(ctx, state, session)
	assert.Equal(t, usecase.DragOutcomeSnapped, outcome)
	assert.Equal(t, entity.Point{X: 400, Y: 90}, state.FloatingWindows[0].Position)
	assert.Nil(t, state.FloatingWindows[0].SnapInfo)
	assert.True(t, state.IsSettled())
}

func TestDrag_CancelRestoresOrigin(t *testing.T) {
	ctx := testCtx()
	uc := newDrag(t)
	geometry := mocks.NewMockGeometryProvider(t)
	geometry.EXPECT().PanelRects().Return(videoPanelRects())

	state, session, err := uc.Start(ctx, draggableState(), "w1", entity.Point{X: 310, Y: 305})
	require.NoError(t, err)
	state = uc.Update(ctx, state, session, entity.Point{X: 20, Y: 340}, geometry)
	require.NotNil(t, state.DropTarget)

	state = uc.Cancel(ctx, state, session)

	assert.True(t, state.IsSettled())
	assert.Equal(t, entity.Point{X: 300, Y: 300}, state.FloatingWindows[0].Position)
	assert.Equal(t, []entity.PanelID{"preview", "timeline"}, entity.PanelIDs(state.Root))
}

func TestDrag_MinimizedMovesTitleBar(t *testing.T) {
	ctx := testCtx()
	uc := newDrag(t)

	minimized := draggableState()
	bar := entity.Point{X: 10, Y: 900}
	minimized.FloatingWindows[0].IsMinimized = true
	minimized.FloatingWindows[0].MinimizedPosition = &bar

	state, session, err := uc.Start(ctx, minimized, "w1", entity.Point{X: 20, Y: 905})
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, entity.Point{X: 10, Y: 5}, session.Offset)

	state = uc.Update(ctx, state, session, entity.Point{X: 220, Y: 805}, nil)
	w := state.FloatingWindows[0]
	assert.Equal(t, entity.Rect{X: 210, Y: 800, W: 200, H: usecase.DefaultTitleBarHeight}, w.Rect(usecase.DefaultTitleBarHeight))
	assert.Equal(t, entity.Point{X: 300, Y: 300}, w.Position, "the restored position is untouched")

	cancelled := uc.Cancel(ctx, state, session)
	assert.Equal(t, bar, *cancelled.FloatingWindows[0].MinimizedPosition)

	released, outcome := uc.End(ctx, state, session)
	assert.Equal(t, usecase.DragOutcomeFloated, outcome)
	assert.Equal(t, entity.Point{X: 210, Y: 800}, *released.FloatingWindows[0].MinimizedPosition)
	assert.True(t, released.IsSettled())
}

func TestDrag_StartGuards(t *testing.T) {
	ctx := testCtx()
	uc := newDrag(t)

	resizing := draggableState()
	resizing.ResizeState = &entity.ResizeState{SplitID: "root"}
	_, session, err := uc.Start(ctx, resizing, "w1", entity.Point{})
	assert.ErrorIs(t, err, usecase.ErrGestureActive)
	assert.Nil(t, session)

	state, session, err := uc.Start(ctx, draggableState(), "nope", entity.Point{})
	require.NoError(t, err)
	assert.Nil(t, session)
	assert.False(t, state.IsDragging)
}

func TestDrag_WindowRemovedMidGesture(t *testing.T) {
	ctx := testCtx()
	uc := newDrag(t)
	geometry := mocks.NewMockGeometryProvider(t)

	state, session, err := uc.Start(ctx, draggableState(), "w1", entity.Point{X: 310, Y: 305})
	require.NoError(t, err)
	state.FloatingWindows = state.FloatingWindows[1:]

	state = uc.Update(ctx, state, session, entity.Point{X: 20, Y: 340}, geometry)
	assert.True(t, state.IsSettled())

	state, outcome := uc.End(ctx, state, session)
	assert.Equal(t, usecase.DragOutcomeFloated, outcome)
	assert.True(t, state.IsSettled())
}
