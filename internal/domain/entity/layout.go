// Package entity contains domain entities representing the layout engine's core concepts.
// These entities are pure Go types with no infrastructure dependencies.
package entity

import "math"

// PanelID is the opaque key an editor uses to look up panel content.
type PanelID string

// NodeType discriminates the two kinds of layout tree nodes.
type NodeType string

const (
	NodeSplit NodeType = "split"
	NodePanel NodeType = "panel"
)

// SplitDirection indicates the main axis of a split container.
type SplitDirection string

const (
	SplitHorizontal SplitDirection = "horizontal" // Children laid out left to right
	SplitVertical   SplitDirection = "vertical"   // Children laid out top to bottom
)

// Orthogonal returns the other axis.
func (d SplitDirection) Orthogonal() SplitDirection {
	if d == SplitHorizontal {
		return SplitVertical
	}
	return SplitHorizontal
}

// SizeTolerance is the allowed floating-point drift when summing split sizes.
const SizeTolerance = 0.01

// LayoutNode is a node of the layout tree.
// It is either:
//   - Split node: Direction, Children and Sizes are set (len(Sizes) == len(Children))
//   - Panel node: PanelID is set, MinSize optionally set (pixels)
//
// Nodes are treated as immutable once they are part of a LayoutState;
// transforms copy the path they modify and share untouched subtrees.
type LayoutNode struct {
	ID        string         `json:"id"`
	Type      NodeType       `json:"type" jsonschema:"enum=split,enum=panel"`
	Direction SplitDirection `json:"direction,omitempty" jsonschema:"enum=horizontal,enum=vertical"`
	Children  []*LayoutNode  `json:"children,omitempty"`
	Sizes     []float64      `json:"sizes,omitempty"` // Percentages of the main axis
	PanelID   PanelID        `json:"panel_id,omitempty"`
	MinSize   float64        `json:"min_size,omitempty"` // Pixels, 0 means engine default
}

// NewPanelNode creates a leaf node for panelID.
func NewPanelNode(id string, panelID PanelID) *LayoutNode {
	return &LayoutNode{ID: id, Type: NodePanel, PanelID: panelID}
}

// NewSplitNode creates a split node. Sizes are copied.
func NewSplitNode(id string, dir SplitDirection, children []*LayoutNode, sizes []float64) *LayoutNode {
	return &LayoutNode{
		ID:        id,
		Type:      NodeSplit,
		Direction: dir,
		Children:  append([]*LayoutNode(nil), children...),
		Sizes:     append([]float64(nil), sizes...),
	}
}

// IsSplit returns true if this node is a split container.
func (n *LayoutNode) IsSplit() bool {
	return n != nil && n.Type == NodeSplit
}

// IsPanel returns true if this node is a panel leaf.
func (n *LayoutNode) IsPanel() bool {
	return n != nil && n.Type == NodePanel
}

// IsSplitNode is the discriminant check for a possibly nil node.
func IsSplitNode(node *LayoutNode) bool {
	return node.IsSplit()
}

// shallowCopy copies the node and its slices but shares the children themselves.
func (n *LayoutNode) shallowCopy() *LayoutNode {
	c := *n
	if n.Children != nil {
		c.Children = append([]*LayoutNode(nil), n.Children...)
	}
	if n.Sizes != nil {
		c.Sizes = append([]float64(nil), n.Sizes...)
	}
	return &c
}

// Clone returns a deep copy of the subtree.
func (n *LayoutNode) Clone() *LayoutNode {
	if n == nil {
		return nil
	}
	c := n.shallowCopy()
	for i, child := range c.Children {
		c.Children[i] = child.Clone()
	}
	return c
}

// Walk traverses the tree depth-first calling fn for each node.
// Returns early if fn returns false.
func (n *LayoutNode) Walk(fn func(*LayoutNode) bool) bool {
	if n == nil {
		return true
	}
	if !fn(n) {
		return false
	}
	for _, child := range n.Children {
		if !child.Walk(fn) {
			return false
		}
	}
	return true
}

// FindNode searches the tree for a node with the given ID.
func FindNode(root *LayoutNode, id string) *LayoutNode {
	var found *LayoutNode
	root.Walk(func(node *LayoutNode) bool {
		if node.ID == id {
			found = node
			return false
		}
		return true
	})
	return found
}

// FindPanel searches the tree for the panel node referencing panelID.
func FindPanel(root *LayoutNode, panelID PanelID) *LayoutNode {
	var found *LayoutNode
	root.Walk(func(node *LayoutNode) bool {
		if node.IsPanel() && node.PanelID == panelID {
			found = node
			return false
		}
		return true
	})
	return found
}

// FindParent returns the split containing the node with the given ID and the
// child index, or nil and -1 if the node is the root or absent.
func FindParent(root *LayoutNode, id string) (*LayoutNode, int) {
	var parent *LayoutNode
	index := -1
	root.Walk(func(node *LayoutNode) bool {
		for i, child := range node.Children {
			if child.ID == id {
				parent = node
				index = i
				return false
			}
		}
		return true
	})
	return parent, index
}

// PathTo returns the chain of nodes from root to the node with the given ID
// (inclusive), or nil when the node does not exist.
func PathTo(root *LayoutNode, id string) []*LayoutNode {
	if root == nil {
		return nil
	}
	if root.ID == id {
		return []*LayoutNode{root}
	}
	for _, child := range root.Children {
		if path := PathTo(child, id); path != nil {
			return append([]*LayoutNode{root}, path...)
		}
	}
	return nil
}

// PanelIDs returns every panel referenced by the tree in depth-first order.
func PanelIDs(root *LayoutNode) []PanelID {
	var ids []PanelID
	root.Walk(func(node *LayoutNode) bool {
		if node.IsPanel() {
			ids = append(ids, node.PanelID)
		}
		return true
	})
	return ids
}

// LeafCount returns the number of panel nodes in the tree.
func (n *LayoutNode) LeafCount() int {
	return len(PanelIDs(n))
}

// ReplaceNode returns a new tree in which the node with the given ID is
// replaced by replacement. Only the path to that node is copied.
// If the node does not exist, root is returned unchanged.
func ReplaceNode(root *LayoutNode, id string, replacement *LayoutNode) *LayoutNode {
	path := PathTo(root, id)
	if path == nil {
		return root
	}
	updated := replacement
	for i := len(path) - 2; i >= 0; i-- {
		parent := path[i].shallowCopy()
		for j, child := range parent.Children {
			if child.ID == path[i+1].ID {
				parent.Children[j] = updated
				break
			}
		}
		updated = parent
	}
	return updated
}

// UpdateNodeSizes replaces the sizes of the split with the given ID.
// The caller guarantees len(newSizes) matches the children count; a mismatch,
// an unknown ID or a non-split node returns root unchanged.
func UpdateNodeSizes(root *LayoutNode, splitID string, newSizes []float64) *LayoutNode {
	node := FindNode(root, splitID)
	if !node.IsSplit() || len(newSizes) != len(node.Children) {
		return root
	}
	updated := node.shallowCopy()
	updated.Sizes = append([]float64(nil), newSizes...)
	return ReplaceNode(root, splitID, updated)
}

// SumSizes returns the sum of the given sizes.
func SumSizes(sizes []float64) float64 {
	total := 0.0
	for _, s := range sizes {
		total += s
	}
	return total
}

// NormalizeSizes scales sizes proportionally so they sum to exactly 100.
// Sizes with a non-positive total are spread evenly.
func NormalizeSizes(sizes []float64) []float64 {
	out := make([]float64, len(sizes))
	if len(sizes) == 0 {
		return out
	}
	total := SumSizes(sizes)
	if total <= 0 || math.IsNaN(total) || math.IsInf(total, 0) {
		for i := range out {
			out[i] = 100 / float64(len(out))
		}
		return out
	}
	assigned := 0.0
	for i, s := range sizes {
		if i == len(sizes)-1 {
			out[i] = 100 - assigned
			break
		}
		out[i] = s / total * 100
		assigned += out[i]
	}
	return out
}

// SizesBalanced reports whether sizes sum to 100 within SizeTolerance.
func SizesBalanced(sizes []float64) bool {
	return math.Abs(SumSizes(sizes)-100) <= SizeTolerance
}
