package usecase_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/application/port/mocks"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
)

func newFloating(t *testing.T) (*usecase.FloatingWindowsUseCase, *mocks.MockPanelRegistry) {
	t.Helper()
	registry := mocks.NewMockPanelRegistry(t)
	uc := usecase.NewFloatingWindowsUseCase(sequentialIDs(), registry, usecase.FloatingWindowsOptions{})
	return uc, registry
}

func TestFloatingWindows_Open(t *testing.T) {
	ctx := testCtx()
	uc, registry := newFloating(t)
	registry.EXPECT().GetPanelDefaultSize(entity.PanelID("inspector")).Return(entity.Size{Width: 320, Height: 240})
	registry.EXPECT().GetPanelDefaultSize(entity.PanelID("history")).Return(entity.Size{})

	state := entity.NewLayoutState(videoDefault())
	state = uc.Open(ctx, state, "inspector", nil)
	state = uc.Open(ctx, state, "history", &entity.Point{X: -5, Y: 10})
	require.NoError(t, state.Validate())

	require.Len(t, state.FloatingWindows, 2)
	assert.Equal(t, entity.Point{X: 24, Y: 24}, state.FloatingWindows[0].Position)
	assert.Equal(t, entity.Size{Width: 320, Height: 240}, state.FloatingWindows[0].Size)
	assert.Equal(t, entity.Point{X: 0, Y: 10}, state.FloatingWindows[1].Position)
	assert.Equal(t, entity.Size{Width: usecase.DefaultFloatingWidth, Height: usecase.DefaultFloatingHeight},
		state.FloatingWindows[1].Size)
	assert.Equal(t, 2, state.FloatingWindows[1].ZIndex)
}

func TestFloatingWindows_OpenKeepsExclusivity(t *testing.T) {
	ctx := testCtx()
	uc, _ := newFloating(t)
	state := entity.NewLayoutState(videoDefault())
	state.FloatingWindows = []entity.FloatingWindow{{ID: "w1", PanelID: "inspector"}}

	assert.Equal(t, state, uc.Open(ctx, state, "preview", nil))
	assert.Equal(t, state, uc.Open(ctx, state, "inspector", nil))
}

func TestFloatingWindows_Setters(t *testing.T) {
	ctx := testCtx()
	uc, _ := newFloating(t)
	state := entity.NewLayoutState(videoDefault())
	state.FloatingWindows = []entity.FloatingWindow{
		{ID: "w1", PanelID: "inspector", Position: entity.Point{X: 50, Y: 50}, Size: entity.Size{Width: 300, Height: 200}, ZIndex: 1},
		{ID: "w2", PanelID: "history", ZIndex: 2},
	}
	before := state

	state = uc.SetPosition(ctx, state, "w1", entity.Point{X: -20, Y: 40})
	assert.Equal(t, entity.Point{X: 0, Y: 40}, state.FloatingWindows[0].Position)
	// Inputs are never mutated.
	assert.Equal(t, entity.Point{X: 50, Y: 50}, before.FloatingWindows[0].Position)

	state = uc.SetSize(ctx, state, "w1", entity.Size{Width: 10, Height: 500})
	assert.Equal(t, entity.Size{Width: 120, Height: 500}, state.FloatingWindows[0].Size)

	state = uc.ToggleMinimize(ctx, state, "w1")
	assert.True(t, state.FloatingWindows[0].IsMinimized)
	state = uc.SetMinimizedPosition(ctx, state, "w1", entity.Point{X: 0, Y: 700})
	assert.Equal(t, entity.Rect{X: 0, Y: 700, W: 120, H: usecase.DefaultTitleBarHeight},
		state.FloatingWindows[0].Rect(uc.TitleBarHeight()))
	state = uc.ToggleMinimize(ctx, state, "w1")
	assert.False(t, state.FloatingWindows[0].IsMinimized)

	state = uc.Focus(ctx, state, "w1")
	assert.Equal(t, 3, state.FloatingWindows[0].ZIndex)
	assert.Equal(t, state, uc.Focus(ctx, state, "w1"))

	state = uc.Close(ctx, state, "w2")
	require.Len(t, state.FloatingWindows, 1)
	assert.Equal(t, "w1", state.FloatingWindows[0].ID)

	// Unknown windows are ignored everywhere.
	assert.Equal(t, state, uc.Close(ctx, state, "nope"))
	assert.Equal(t, state, uc.SetPosition(ctx, state, "nope", entity.Point{}))
	assert.Equal(t, state, uc.ToggleMinimize(ctx, state, "nope"))
	assert.Equal(t, state, uc.Focus(ctx, state, "nope"))
	assert.Equal(t, state, uc.ApplySnap(ctx, state, "nope"))
}

func TestSnapHint(t *testing.T) {
	window := entity.Rect{X: 205, Y: 100, W: 100, H: 100}

	t.Run("left edge to panel right edge", func(t *testing.T) {
		hint := usecase.SnapHint(window, []usecase.SnapTarget{
			{ID: "canvas", Rect: entity.Rect{X: 0, Y: 0, W: 200, H: 400}},
		}, 12)

		require.NotNil(t, hint.X)
		assert.Equal(t, 200.0, *hint.X)
		assert.Equal(t, entity.SnapEdgeLeft, hint.EdgeX)
		assert.Equal(t, "canvas", hint.TargetX)
		assert.Nil(t, hint.Y)
	})

	t.Run("bottom edge to target top edge", func(t *testing.T) {
		hint := usecase.SnapHint(window, []usecase.SnapTarget{
			{ID: "w2", Rect: entity.Rect{X: 250, Y: 208, W: 100, H: 50}},
		}, 12)

		assert.Nil(t, hint.X)
		require.NotNil(t, hint.Y)
		assert.Equal(t, 108.0, *hint.Y)
		assert.Equal(t, entity.SnapEdgeBottom, hint.EdgeY)
		assert.Equal(t, "w2", hint.TargetY)
	})

	t.Run("nearest candidate wins", func(t *testing.T) {
		hint := usecase.SnapHint(window, []usecase.SnapTarget{
			{ID: "far", Rect: entity.Rect{X: 0, Y: 0, W: 195, H: 400}},
			{ID: "near", Rect: entity.Rect{X: 0, Y: 0, W: 203, H: 400}},
		}, 12)

		require.NotNil(t, hint.X)
		assert.Equal(t, 203.0, *hint.X)
		assert.Equal(t, "near", hint.TargetX)
	})

	t.Run("nothing within tolerance", func(t *testing.T) {
		hint := usecase.SnapHint(window, []usecase.SnapTarget{
			{ID: "canvas", Rect: entity.Rect{X: 0, Y: 0, W: 150, H: 400}},
		}, 12)
		assert.True(t, hint.Empty())
	})

	t.Run("no overlap no snap", func(t *testing.T) {
		hint := usecase.SnapHint(window, []usecase.SnapTarget{
			{ID: "canvas", Rect: entity.Rect{X: 0, Y: 500, W: 200, H: 100}},
		}, 12)
		assert.True(t, hint.Empty())
	})
}

func TestFloatingWindows_ComputeAndApplySnap(t *testing.T) {
	ctx := testCtx()
	uc, _ := newFloating(t)
	state := entity.NewLayoutState(videoDefault())
	state.FloatingWindows = []entity.FloatingWindow{
		{ID: "w1", PanelID: "inspector", Position: entity.Point{X: 205, Y: 100}, Size: entity.Size{Width: 150, Height: 100}},
		{ID: "w2", PanelID: "history", Position: entity.Point{X: 600, Y: 96}, Size: entity.Size{Width: 150, Height: 100}},
		{ID: "w3", PanelID: "layers", Position: entity.Point{X: 0, Y: 0}, Size: entity.Size{Width: 150, Height: 100}, IsMinimized: true},
	}
	panels := []entity.PanelRect{{PanelID: "preview", Rect: entity.Rect{X: 0, Y: 0, W: 200, H: 680}}}

	state = uc.ComputeSnap(ctx, state, "w1", panels)
	hint := state.FloatingWindows[0].SnapInfo
	require.NotNil(t, hint)
	require.NotNil(t, hint.X)
	assert.Equal(t, 200.0, *hint.X)
	assert.Equal(t, "preview", hint.TargetX)
	assert.Nil(t, hint.Y, "w2 does not overlap horizontally")

	state = uc.ApplySnap(ctx, state, "w1")
	assert.Equal(t, entity.Point{X: 200, Y: 100}, state.FloatingWindows[0].Position)
	assert.Nil(t, state.FloatingWindows[0].SnapInfo)
	assert.Equal(t, []entity.PanelID{"preview", "timeline"}, entity.PanelIDs(state.Root))

	// Minimized windows neither snap nor act as targets.
	assert.Equal(t, state, uc.ComputeSnap(ctx, state, "w3", panels))
}
