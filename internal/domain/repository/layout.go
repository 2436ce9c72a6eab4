package repository

import (
	"context"

	"github.com/bnema/dockyard/internal/domain/entity"
)

// LayoutRepository persists layout snapshots, one per storage key.
type LayoutRepository interface {
	// Save stores or replaces the snapshot for snapshot.StorageKey.
	Save(ctx context.Context, snapshot *entity.LayoutSnapshot) error

	// Get returns the snapshot stored under key.
	// Returns nil and no error when nothing is stored.
	// A document that cannot be decoded is reported as an error.
	Get(ctx context.Context, key entity.StorageKey) (*entity.LayoutSnapshot, error)

	// Delete removes the snapshot stored under key.
	Delete(ctx context.Context, key entity.StorageKey) error

	// ListKeys returns every storage key with a stored snapshot.
	ListKeys(ctx context.Context) ([]entity.StorageKey, error)
}
