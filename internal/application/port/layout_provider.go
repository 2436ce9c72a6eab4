package port

import "github.com/bnema/dockyard/internal/domain/entity"

// LayoutStateProvider provides access to the current layout for persistence.
// Implemented by the UI layer to allow the snapshot service to read state.
type LayoutStateProvider interface {
	// GetLayoutState returns the current layout state.
	GetLayoutState() entity.LayoutState
	// GetStorageKey returns the key the layout is persisted under.
	GetStorageKey() entity.StorageKey
}
