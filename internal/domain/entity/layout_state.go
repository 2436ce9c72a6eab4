package entity

import (
	"errors"
	"fmt"
)

// LayoutState is the complete state of one editor's layout engine.
// Root is either a split or a panel node, never nil once initialized.
type LayoutState struct {
	Root            *LayoutNode
	FloatingWindows []FloatingWindow
	IsDragging      bool
	DropTarget      *DropTarget
	ResizeState     *ResizeState
}

// NewLayoutState creates a settled state rooted at root with no floating windows.
func NewLayoutState(root *LayoutNode) LayoutState {
	return LayoutState{Root: root, FloatingWindows: []FloatingWindow{}}
}

// WithWindows returns a copy of the state whose floating window slice can be
// modified without touching s.
func (s LayoutState) WithWindows() LayoutState {
	s.FloatingWindows = append([]FloatingWindow(nil), s.FloatingWindows...)
	return s
}

// FindWindow returns the index of the floating window with the given ID, or -1.
func (s LayoutState) FindWindow(windowID string) int {
	for i := range s.FloatingWindows {
		if s.FloatingWindows[i].ID == windowID {
			return i
		}
	}
	return -1
}

// FindWindowByPanel returns the index of the floating window showing panelID, or -1.
func (s LayoutState) FindWindowByPanel(panelID PanelID) int {
	for i := range s.FloatingWindows {
		if s.FloatingWindows[i].PanelID == panelID {
			return i
		}
	}
	return -1
}

// IsEmbedded reports whether panelID is a leaf of the tree.
func (s LayoutState) IsEmbedded(panelID PanelID) bool {
	return FindPanel(s.Root, panelID) != nil
}

// HasPanel reports whether panelID is embedded or floating.
func (s LayoutState) HasPanel(panelID PanelID) bool {
	return s.IsEmbedded(panelID) || s.FindWindowByPanel(panelID) >= 0
}

// IsSettled reports whether no gesture is in progress.
func (s LayoutState) IsSettled() bool {
	return !s.IsDragging && s.DropTarget == nil && s.ResizeState == nil
}

// TopZIndex returns the highest z-index among floating windows (0 when none).
func (s LayoutState) TopZIndex() int {
	top := 0
	for _, w := range s.FloatingWindows {
		if w.ZIndex > top {
			top = w.ZIndex
		}
	}
	return top
}

// Validate checks the structural invariants of the state:
// split arity and size conservation, unique node IDs, and panel exclusivity.
// All problems are reported together.
func (s LayoutState) Validate() error {
	var errs []error
	if s.Root == nil {
		return errors.New("layout root is nil")
	}
	errs = append(errs, ValidateTree(s.Root)...)

	seen := make(map[PanelID]string)
	for _, id := range PanelIDs(s.Root) {
		if _, dup := seen[id]; dup {
			errs = append(errs, fmt.Errorf("panel %q embedded more than once", id))
		}
		seen[id] = "tree"
	}
	windowIDs := make(map[string]bool)
	for _, w := range s.FloatingWindows {
		if w.ID == "" {
			errs = append(errs, fmt.Errorf("floating window for panel %q has empty id", w.PanelID))
		}
		if windowIDs[w.ID] {
			errs = append(errs, fmt.Errorf("floating window id %q duplicated", w.ID))
		}
		windowIDs[w.ID] = true
		if w.PanelID == "" {
			errs = append(errs, fmt.Errorf("floating window %q has empty panel id", w.ID))
			continue
		}
		if where, dup := seen[w.PanelID]; dup {
			errs = append(errs, fmt.Errorf("panel %q present in %s and floating", w.PanelID, where))
		}
		seen[w.PanelID] = "floating windows"
	}
	return errors.Join(errs...)
}

// ValidateTree checks split arity, size arrays and node identity for a subtree.
func ValidateTree(root *LayoutNode) []error {
	var errs []error
	ids := make(map[string]bool)
	root.Walk(func(node *LayoutNode) bool {
		if node.ID == "" {
			errs = append(errs, errors.New("node with empty id"))
		} else if ids[node.ID] {
			errs = append(errs, fmt.Errorf("node id %q duplicated", node.ID))
		}
		ids[node.ID] = true

		switch node.Type {
		case NodeSplit:
			if node.Direction != SplitHorizontal && node.Direction != SplitVertical {
				errs = append(errs, fmt.Errorf("split %q has invalid direction %q", node.ID, node.Direction))
			}
			if len(node.Children) < 2 {
				errs = append(errs, fmt.Errorf("split %q has %d children, want at least 2", node.ID, len(node.Children)))
			}
			if len(node.Sizes) != len(node.Children) {
				errs = append(errs, fmt.Errorf("split %q has %d sizes for %d children", node.ID, len(node.Sizes), len(node.Children)))
			} else if !SizesBalanced(node.Sizes) {
				errs = append(errs, fmt.Errorf("split %q sizes sum to %.3f, want 100", node.ID, SumSizes(node.Sizes)))
			}
			for i, child := range node.Children {
				if child == nil {
					errs = append(errs, fmt.Errorf("split %q has nil child at %d", node.ID, i))
				}
			}
		case NodePanel:
			if node.PanelID == "" {
				errs = append(errs, fmt.Errorf("panel node %q has empty panel id", node.ID))
			}
			if len(node.Children) > 0 {
				errs = append(errs, fmt.Errorf("panel node %q has children", node.ID))
			}
		default:
			errs = append(errs, fmt.Errorf("node %q has unknown type %q", node.ID, node.Type))
		}
		return true
	})
	return errs
}
