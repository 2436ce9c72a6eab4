package entity

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLayoutState_Validate(t *testing.T) {
	tests := []struct {
		name    string
		state   LayoutState
		wantErr string
	}{
		{
			name:  "valid default",
			state: NewLayoutState(videoDefault()),
		},
		{
			name:  "panel at root",
			state: NewLayoutState(NewPanelNode("only", "preview")),
		},
		{
			name:    "nil root",
			state:   LayoutState{},
			wantErr: "root is nil",
		},
		{
			name: "single child split",
			state: NewLayoutState(NewSplitNode("s", SplitHorizontal,
				[]*LayoutNode{NewPanelNode("a", "a")}, []float64{100})),
			wantErr: "want at least 2",
		},
		{
			name: "mismatched sizes",
			state: NewLayoutState(NewSplitNode("s", SplitHorizontal,
				[]*LayoutNode{NewPanelNode("a", "a"), NewPanelNode("b", "b")}, []float64{100})),
			wantErr: "1 sizes for 2 children",
		},
		{
			name: "sizes do not sum to 100",
			state: NewLayoutState(NewSplitNode("s", SplitHorizontal,
				[]*LayoutNode{NewPanelNode("a", "a"), NewPanelNode("b", "b")}, []float64{40, 40})),
			wantErr: "sum to 80.000",
		},
		{
			name: "panel embedded and floating",
			state: LayoutState{
				Root:            videoDefault(),
				FloatingWindows: []FloatingWindow{{ID: "w1", PanelID: "timeline"}},
			},
			wantErr: `panel "timeline" present in tree and floating`,
		},
		{
			name: "panel embedded twice",
			state: NewLayoutState(NewSplitNode("s", SplitHorizontal,
				[]*LayoutNode{NewPanelNode("a", "x"), NewPanelNode("b", "x")}, []float64{50, 50})),
			wantErr: `panel "x" embedded more than once`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.state.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestLayoutState_Lookups(t *testing.T) {
	state := LayoutState{
		Root: videoDefault(),
		FloatingWindows: []FloatingWindow{
			{ID: "w1", PanelID: "inspector", ZIndex: 3},
			{ID: "w2", PanelID: "history", ZIndex: 7},
		},
	}

	assert.Equal(t, 1, state.FindWindow("w2"))
	assert.Equal(t, -1, state.FindWindow("nope"))
	assert.Equal(t, 0, state.FindWindowByPanel("inspector"))
	assert.True(t, state.IsEmbedded("preview"))
	assert.False(t, state.IsEmbedded("inspector"))
	assert.True(t, state.HasPanel("inspector"))
	assert.False(t, state.HasPanel("missing"))
	assert.Equal(t, 7, state.TopZIndex())
	assert.True(t, state.IsSettled())
}

func TestLayoutSnapshot_RoundTripThroughJSON(t *testing.T) {
	state := LayoutState{
		Root: videoDefault(),
		FloatingWindows: []FloatingWindow{{
			ID: "w1", PanelID: "inspector",
			Position: Point{X: 10, Y: 20}, Size: Size{Width: 300, Height: 200},
			SnapInfo: &SnapInfo{EdgeX: SnapEdgeLeft},
		}},
		IsDragging: true,
	}

	data, err := json.Marshal(SnapshotFromState("video-editor-layout", state))
	require.NoError(t, err)

	var snap LayoutSnapshot
	require.NoError(t, json.Unmarshal(data, &snap))
	restored, err := snap.ToState()
	require.NoError(t, err)

	assert.Equal(t, state.Root, restored.Root)
	require.Len(t, restored.FloatingWindows, 1)
	assert.Nil(t, restored.FloatingWindows[0].SnapInfo)
	assert.False(t, restored.IsDragging)
	assert.Equal(t, 2, snap.PanelCount())
}

func TestLayoutSnapshot_ToStateRejectsVersionMismatch(t *testing.T) {
	snap := SnapshotFromState("k", NewLayoutState(videoDefault()))
	snap.Version = 99

	_, err := snap.ToState()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported layout version")
}

func TestFloatingWindow_RectWhenMinimized(t *testing.T) {
	w := FloatingWindow{
		Position: Point{X: 100, Y: 100},
		Size:     Size{Width: 300, Height: 200},
	}
	assert.Equal(t, Rect{X: 100, Y: 100, W: 300, H: 200}, w.Rect(24))

	w.IsMinimized = true
	assert.Equal(t, Rect{X: 100, Y: 100, W: 300, H: 24}, w.Rect(24))

	w.MinimizedPosition = &Point{X: 0, Y: 500}
	assert.Equal(t, Rect{X: 0, Y: 500, W: 300, H: 24}, w.Rect(24))
}
