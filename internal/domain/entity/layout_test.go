package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func videoDefault() *LayoutNode {
	return NewSplitNode("root", SplitVertical, []*LayoutNode{
		NewPanelNode("n-preview", "preview"),
		NewPanelNode("n-timeline", "timeline"),
	}, []float64{68, 32})
}

func nestedTree() *LayoutNode {
	inner := NewSplitNode("inner", SplitHorizontal, []*LayoutNode{
		NewPanelNode("n-canvas", "canvas"),
		NewPanelNode("n-layers", "layers"),
	}, []float64{70, 30})
	return NewSplitNode("root", SplitVertical, []*LayoutNode{
		inner,
		NewPanelNode("n-timeline", "timeline"),
	}, []float64{75, 25})
}

func TestFindNode(t *testing.T) {
	root := nestedTree()

	tests := []struct {
		name string
		id   string
		want string
	}{
		{name: "root", id: "root", want: "root"},
		{name: "nested split", id: "inner", want: "inner"},
		{name: "nested leaf", id: "n-layers", want: "n-layers"},
		{name: "missing", id: "nonexistent", want: ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FindNode(root, tt.id)
			if tt.want == "" {
				assert.Nil(t, got)
				return
			}
			require.NotNil(t, got)
			assert.Equal(t, tt.want, got.ID)
		})
	}
}

func TestFindNode_NilRoot(t *testing.T) {
	assert.Nil(t, FindNode(nil, "anything"))
}

func TestIsSplitNode(t *testing.T) {
	root := nestedTree()
	assert.True(t, IsSplitNode(root))
	assert.False(t, IsSplitNode(FindNode(root, "n-canvas")))
	assert.False(t, IsSplitNode(nil))
}

func TestFindParent(t *testing.T) {
	root := nestedTree()

	parent, idx := FindParent(root, "n-layers")
	require.NotNil(t, parent)
	assert.Equal(t, "inner", parent.ID)
	assert.Equal(t, 1, idx)

	parent, idx = FindParent(root, "root")
	assert.Nil(t, parent)
	assert.Equal(t, -1, idx)
}

func TestUpdateNodeSizes_CopiesOnlyThePath(t *testing.T) {
	root := nestedTree()
	timeline := FindNode(root, "n-timeline")

	updated := UpdateNodeSizes(root, "inner", []float64{40, 60})

	require.NotSame(t, root, updated)
	assert.Equal(t, []float64{40, 60}, FindNode(updated, "inner").Sizes)
	// The input tree is untouched.
	assert.Equal(t, []float64{70, 30}, FindNode(root, "inner").Sizes)
	// Untouched subtrees are shared.
	assert.Same(t, timeline, FindNode(updated, "n-timeline"))
}

func TestUpdateNodeSizes_NoOps(t *testing.T) {
	root := nestedTree()

	assert.Same(t, root, UpdateNodeSizes(root, "nonexistent", []float64{50, 50}))
	assert.Same(t, root, UpdateNodeSizes(root, "n-canvas", []float64{100}))
	assert.Same(t, root, UpdateNodeSizes(root, "inner", []float64{100}))
}

func TestNormalizeSizes(t *testing.T) {
	got := NormalizeSizes([]float64{30, 30})
	assert.InDelta(t, 50, got[0], 1e-9)
	assert.InDelta(t, 50, got[1], 1e-9)
	assert.True(t, SizesBalanced(got))

	got = NormalizeSizes([]float64{0, 0, 0})
	assert.InDelta(t, 100.0/3, got[0], 1e-9)
	assert.True(t, SizesBalanced(got))

	got = NormalizeSizes([]float64{20, 40, 20})
	assert.InDelta(t, 25, got[0], 1e-9)
	assert.InDelta(t, 50, got[1], 1e-9)
	assert.InDelta(t, 25, got[2], 1e-9)
}

func TestPanelIDs(t *testing.T) {
	assert.Equal(t, []PanelID{"canvas", "layers", "timeline"}, PanelIDs(nestedTree()))
	assert.Equal(t, 3, nestedTree().LeafCount())
}

func TestClone_IsDeep(t *testing.T) {
	root := nestedTree()
	clone := root.Clone()
	clone.Children[0].Sizes[0] = 1

	assert.Equal(t, 70.0, root.Children[0].Sizes[0])
	assert.NotSame(t, root.Children[1], clone.Children[1])
}

func TestDropPosition(t *testing.T) {
	assert.Equal(t, SplitHorizontal, DropLeft.SplitDirection())
	assert.Equal(t, SplitHorizontal, DropRight.SplitDirection())
	assert.Equal(t, SplitVertical, DropTop.SplitDirection())
	assert.Equal(t, SplitVertical, DropBottom.SplitDirection())
	assert.True(t, DropLeft.InsertsBefore())
	assert.True(t, DropTop.InsertsBefore())
	assert.False(t, DropBottom.InsertsBefore())
	assert.False(t, DropPosition("diagonal").Valid())
}
