package entity

import (
	"fmt"
	"time"
)

// LayoutSnapshotVersion is the current schema version of the persisted layout.
// Increment when making breaking changes to the serialization format.
const LayoutSnapshotVersion = 1

// StorageKey identifies one editor's persisted layout.
type StorageKey string

// LayoutSnapshot is the persisted document for one storage key.
// Transient gesture state is never persisted.
type LayoutSnapshot struct {
	Version         int              `json:"version"`
	StorageKey      StorageKey       `json:"storage_key"`
	Root            *LayoutNode      `json:"root"`
	FloatingWindows []FloatingWindow `json:"floating_windows"`
	SavedAt         time.Time        `json:"saved_at"`
}

// SnapshotFromState captures the persistent part of a layout state.
// Snap hints are transient and dropped.
func SnapshotFromState(key StorageKey, state LayoutState) *LayoutSnapshot {
	windows := make([]FloatingWindow, 0, len(state.FloatingWindows))
	for _, w := range state.FloatingWindows {
		w.SnapInfo = nil
		windows = append(windows, w)
	}
	return &LayoutSnapshot{
		Version:         LayoutSnapshotVersion,
		StorageKey:      key,
		Root:            state.Root.Clone(),
		FloatingWindows: windows,
		SavedAt:         time.Now(),
	}
}

// ToState converts a snapshot into a settled layout state after checking its
// version and structural invariants.
func (s *LayoutSnapshot) ToState() (LayoutState, error) {
	if s == nil {
		return LayoutState{}, fmt.Errorf("snapshot is nil")
	}
	if s.Version != LayoutSnapshotVersion {
		return LayoutState{}, fmt.Errorf("unsupported layout version %d (want %d)", s.Version, LayoutSnapshotVersion)
	}
	state := LayoutState{Root: s.Root, FloatingWindows: s.FloatingWindows}
	if state.FloatingWindows == nil {
		state.FloatingWindows = []FloatingWindow{}
	}
	if err := state.Validate(); err != nil {
		return LayoutState{}, fmt.Errorf("invalid layout: %w", err)
	}
	return state, nil
}

// PanelCount returns the number of embedded panels.
func (s *LayoutSnapshot) PanelCount() int {
	if s == nil {
		return 0
	}
	return s.Root.LeafCount()
}
