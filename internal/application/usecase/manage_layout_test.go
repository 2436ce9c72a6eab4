package usecase_test

import (
	"context"
	"fmt"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/application/port/mocks"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/logging"
)

func testCtx() context.Context {
	logger := logging.NewFromConfigValues("debug", "console")
	return logging.WithContext(context.Background(), logger)
}

// sequentialIDs returns a generator producing id-1, id-2, ...
func sequentialIDs() usecase.IDGenerator {
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("id-%d", n)
	}
}

func videoDefault() *entity.LayoutNode {
	return entity.NewSplitNode("root", entity.SplitVertical, []*entity.LayoutNode{
		entity.NewPanelNode("n-preview", "preview"),
		entity.NewPanelNode("n-timeline", "timeline"),
	}, []float64{68, 32})
}

func newManageLayout(t *testing.T) (*usecase.ManageLayoutUseCase, *mocks.MockPanelRegistry) {
	t.Helper()
	registry := mocks.NewMockPanelRegistry(t)
	uc := usecase.NewManageLayoutUseCase(sequentialIDs(), registry, usecase.ManageLayoutOptions{})
	return uc, registry
}

func TestManageLayout_AddPanelThenUndock(t *testing.T) {
	ctx := testCtx()
	uc, registry := newManageLayout(t)
	registry.EXPECT().GetPanelDefaultSize(entity.PanelID("inspector")).Return(entity.Size{Width: 320, Height: 240})

	state := entity.NewLayoutState(videoDefault())

	// The parent split is vertical, so docking on the right wraps preview.
	state = uc.AddPanel(ctx, state, "preview", "inspector", entity.DropRight)
	require.NoError(t, state.Validate())

	root := state.Root
	assert.Equal(t, entity.SplitVertical, root.Direction)
	assert.Equal(t, []float64{68, 32}, root.Sizes)
	wrapper := root.Children[0]
	require.True(t, wrapper.IsSplit())
	assert.Equal(t, entity.SplitHorizontal, wrapper.Direction)
	assert.Equal(t, []float64{50, 50}, wrapper.Sizes)
	assert.Equal(t, entity.PanelID("preview"), wrapper.Children[0].PanelID)
	assert.Equal(t, entity.PanelID("inspector"), wrapper.Children[1].PanelID)
	assert.Equal(t, entity.PanelID("timeline"), root.Children[1].PanelID)

	state = uc.UndockPanel(ctx, state, "inspector", nil)
	require.NoError(t, state.Validate())

	assert.Equal(t, []entity.PanelID{"preview", "timeline"}, entity.PanelIDs(state.Root))
	assert.Equal(t, []float64{68, 32}, state.Root.Sizes)
	require.Len(t, state.FloatingWindows, 1)
	window := state.FloatingWindows[0]
	assert.Equal(t, entity.PanelID("inspector"), window.PanelID)
	assert.Equal(t, entity.Size{Width: 320, Height: 240}, window.Size)
	assert.Equal(t, entity.Point{X: usecase.DefaultFloatingOffset, Y: usecase.DefaultFloatingOffset}, window.Position)
	assert.Equal(t, 1, window.ZIndex)
}

func TestManageLayout_AddPanelGrowsMatchingSplit(t *testing.T) {
	ctx := testCtx()
	uc, _ := newManageLayout(t)
	state := entity.NewLayoutState(videoDefault())

	state = uc.AddPanel(ctx, state, "timeline", "history", entity.DropBottom)
	require.NoError(t, state.Validate())

	assert.Equal(t, "root", state.Root.ID)
	assert.Equal(t, []entity.PanelID{"preview", "timeline", "history"}, entity.PanelIDs(state.Root))
	assert.Equal(t, []float64{68, 16, 16}, state.Root.Sizes)

	state = uc.AddPanel(ctx, state, "preview", "toolbar", entity.DropTop)
	assert.Equal(t, []entity.PanelID{"toolbar", "preview", "timeline", "history"}, entity.PanelIDs(state.Root))
	assert.Equal(t, []float64{34, 34, 16, 16}, state.Root.Sizes)
}

func TestManageLayout_AddPanelSideOrdering(t *testing.T) {
	tests := []struct {
		name     string
		position entity.DropPosition
		want     []entity.PanelID
		dir      entity.SplitDirection
	}{
		{name: "left", position: entity.DropLeft, want: []entity.PanelID{"new", "preview"}, dir: entity.SplitHorizontal},
		{name: "right", position: entity.DropRight, want: []entity.PanelID{"preview", "new"}, dir: entity.SplitHorizontal},
		{name: "center docks like right", position: entity.DropCenter, want: []entity.PanelID{"preview", "new"}, dir: entity.SplitHorizontal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc, _ := newManageLayout(t)
			state := uc.AddPanel(testCtx(), entity.NewLayoutState(videoDefault()), "preview", "new", tt.position)

			wrapper := state.Root.Children[0]
			require.True(t, wrapper.IsSplit())
			assert.Equal(t, tt.dir, wrapper.Direction)
			assert.Equal(t, tt.want, entity.PanelIDs(wrapper))
		})
	}
}

func TestManageLayout_AddPanelNoOps(t *testing.T) {
	ctx := testCtx()
	uc, _ := newManageLayout(t)
	state := entity.NewLayoutState(videoDefault())
	state.FloatingWindows = []entity.FloatingWindow{{ID: "w1", PanelID: "inspector"}}

	tests := []struct {
		name     string
		target   entity.PanelID
		newID    entity.PanelID
		position entity.DropPosition
	}{
		{name: "unknown target", target: "missing", newID: "x", position: entity.DropLeft},
		{name: "floating target", target: "inspector", newID: "x", position: entity.DropLeft},
		{name: "already embedded", target: "preview", newID: "timeline", position: entity.DropLeft},
		{name: "already floating", target: "preview", newID: "inspector", position: entity.DropLeft},
		{name: "invalid position", target: "preview", newID: "x", position: "diagonal"},
		{name: "empty id", target: "preview", newID: "", position: entity.DropLeft},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := uc.AddPanel(ctx, state, tt.target, tt.newID, tt.position)
			assert.Same(t, state.Root, got.Root)
			assert.Len(t, got.FloatingWindows, 1)
		})
	}
}

func TestManageLayout_RemovePanelRenormalizes(t *testing.T) {
	ctx := testCtx()
	uc, _ := newManageLayout(t)
	root := entity.NewSplitNode("root", entity.SplitHorizontal, []*entity.LayoutNode{
		entity.NewPanelNode("a", "a"),
		entity.NewPanelNode("b", "b"),
		entity.NewPanelNode("c", "c"),
	}, []float64{50, 30, 20})

	state := uc.RemovePanel(ctx, entity.NewLayoutState(root), "b")
	require.NoError(t, state.Validate())

	assert.Equal(t, []entity.PanelID{"a", "c"}, entity.PanelIDs(state.Root))
	assert.InDelta(t, 500.0/7, state.Root.Sizes[0], 1e-9)
	assert.InDelta(t, 200.0/7, state.Root.Sizes[1], 1e-9)
	assert.True(t, entity.SizesBalanced(state.Root.Sizes))
	// The input is untouched.
	assert.Len(t, root.Children, 3)
}

func TestManageLayout_RemovePanelCollapsesSingleChildSplit(t *testing.T) {
	ctx := testCtx()
	uc, _ := newManageLayout(t)
	inner := entity.NewSplitNode("inner", entity.SplitHorizontal, []*entity.LayoutNode{
		entity.NewPanelNode("n-canvas", "canvas"),
		entity.NewPanelNode("n-layers", "layers"),
	}, []float64{70, 30})
	root := entity.NewSplitNode("root", entity.SplitVertical, []*entity.LayoutNode{
		inner,
		entity.NewPanelNode("n-timeline", "timeline"),
	}, []float64{75, 25})

	state := uc.RemovePanel(ctx, entity.NewLayoutState(root), "layers")
	require.NoError(t, state.Validate())

	assert.Nil(t, entity.FindNode(state.Root, "inner"))
	assert.Equal(t, "n-canvas", state.Root.Children[0].ID)
	assert.Equal(t, []float64{75, 25}, state.Root.Sizes)

	// Removing one of two root children leaves a panel at the root.
	state = uc.RemovePanel(ctx, state, "n-timeline")
	require.NoError(t, state.Validate())
	assert.True(t, state.Root.IsPanel())
	assert.Equal(t, entity.PanelID("canvas"), state.Root.PanelID)
}

func TestManageLayout_RemovePanelNoOps(t *testing.T) {
	ctx := testCtx()
	uc, _ := newManageLayout(t)

	state := entity.NewLayoutState(videoDefault())
	assert.Equal(t, state, uc.RemovePanel(ctx, state, "nonexistent"))
	assert.Equal(t, state, uc.RemovePanel(ctx, state, "root"))

	single := entity.NewLayoutState(entity.NewPanelNode("only", "preview"))
	assert.Equal(t, single, uc.RemovePanel(ctx, single, "only"))
}

func TestManageLayout_DockUndockRoundTrip(t *testing.T) {
	ctx := testCtx()
	uc, registry := newManageLayout(t)
	registry.EXPECT().GetPanelDefaultSize(entity.PanelID("preview")).Return(entity.Size{})

	state := uc.AddPanel(ctx, entity.NewLayoutState(videoDefault()), "preview", "inspector", entity.DropRight)
	state = uc.UndockPanel(ctx, state, "preview", nil)
	require.Len(t, state.FloatingWindows, 1)
	assert.Equal(t, entity.Size{Width: usecase.DefaultFloatingWidth, Height: usecase.DefaultFloatingHeight},
		state.FloatingWindows[0].Size)
	assert.False(t, state.IsEmbedded("preview"))

	state = uc.DockWindow(ctx, state, state.FloatingWindows[0].ID, "timeline", entity.DropLeft)
	require.NoError(t, state.Validate())

	assert.Empty(t, state.FloatingWindows)
	node := entity.FindPanel(state.Root, "preview")
	require.NotNil(t, node)
	parent, idx := entity.FindParent(state.Root, node.ID)
	require.NotNil(t, parent)
	assert.Equal(t, entity.SplitHorizontal, parent.Direction)
	assert.Equal(t, entity.PanelID("timeline"), parent.Children[idx+1].PanelID)
}

func TestManageLayout_DockWindowNoOps(t *testing.T) {
	ctx := testCtx()
	uc, _ := newManageLayout(t)
	state := entity.NewLayoutState(videoDefault())
	state.FloatingWindows = []entity.FloatingWindow{{ID: "w1", PanelID: "inspector"}}

	got := uc.DockWindow(ctx, state, "nonexistent", "preview", entity.DropLeft)
	assert.Equal(t, state, got)

	got = uc.DockWindow(ctx, state, "w1", "missing", entity.DropLeft)
	assert.Equal(t, state, got)
}

func TestManageLayout_UndockUsesLastKnownRect(t *testing.T) {
	ctx := testCtx()
	uc, registry := newManageLayout(t)
	geometry := mocks.NewMockGeometryProvider(t)

	registry.EXPECT().GetPanelDefaultSize(entity.PanelID("timeline")).Return(entity.Size{Width: 640, Height: 200})
	geometry.EXPECT().PanelRect(entity.PanelID("timeline")).Return(entity.Rect{X: 10, Y: 500, W: 800, H: 200}, true)

	state := uc.UndockPanel(ctx, entity.NewLayoutState(videoDefault()), "n-timeline", geometry)

	require.Len(t, state.FloatingWindows, 1)
	assert.Equal(t, entity.Point{X: 34, Y: 524}, state.FloatingWindows[0].Position)
	assert.True(t, state.Root.IsPanel())
}

func TestManageLayout_UndockLastPanelIsRefused(t *testing.T) {
	uc, _ := newManageLayout(t)
	state := entity.NewLayoutState(entity.NewPanelNode("only", "preview"))

	got := uc.UndockPanel(testCtx(), state, "preview", nil)

	assert.Same(t, state.Root, got.Root)
	assert.Empty(t, got.FloatingWindows)
}

func TestManageLayout_ResetLayout(t *testing.T) {
	uc, _ := newManageLayout(t)
	def := videoDefault()

	state := uc.ResetLayout(testCtx(), def)

	assert.Equal(t, def, state.Root)
	assert.NotSame(t, def, state.Root)
	assert.Empty(t, state.FloatingWindows)
	assert.True(t, state.IsSettled())
}

func TestManageLayout_RandomEditsKeepInvariants(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewManageLayoutUseCase(sequentialIDs(), nil, usecase.ManageLayoutOptions{})
	rng := rand.New(rand.NewSource(42))
	positions := []entity.DropPosition{entity.DropLeft, entity.DropRight, entity.DropTop, entity.DropBottom, entity.DropCenter}

	state := entity.NewLayoutState(videoDefault())
	for i := 0; i < 500; i++ {
		embedded := entity.PanelIDs(state.Root)
		target := embedded[rng.Intn(len(embedded))]

		switch rng.Intn(4) {
		case 0:
			state = uc.AddPanel(ctx, state, target, entity.PanelID(fmt.Sprintf("p%d", i)), positions[rng.Intn(len(positions))])
		case 1:
			state = uc.RemovePanel(ctx, state, string(target))
		case 2:
			state = uc.UndockPanel(ctx, state, string(target), nil)
		case 3:
			if len(state.FloatingWindows) > 0 {
				w := state.FloatingWindows[rng.Intn(len(state.FloatingWindows))]
				state = uc.DockWindow(ctx, state, w.ID, target, positions[rng.Intn(len(positions))])
			}
		}
		require.NoError(t, state.Validate(), "step %d", i)
	}
}
