package usecase

import (
	"context"
	"fmt"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/repository"
	"github.com/bnema/dockyard/internal/logging"
)

// LayoutPersistenceUseCase reads and writes the persisted layout of one
// editor. Load never fails: anything unreadable falls back to the default.
type LayoutPersistenceUseCase struct {
	repo repository.LayoutRepository
}

// NewLayoutPersistenceUseCase creates a new LayoutPersistenceUseCase.
func NewLayoutPersistenceUseCase(repo repository.LayoutRepository) *LayoutPersistenceUseCase {
	return &LayoutPersistenceUseCase{repo: repo}
}

// LoadOutput describes where a loaded layout came from.
type LoadOutput struct {
	State entity.LayoutState
	// FromDefault is true when the stored layout was missing or rejected.
	FromDefault bool
}

// Load returns the stored layout for key. A missing document, a storage error,
// a version mismatch or a structurally invalid tree all yield a copy of
// defaultLayout with no floating windows.
func (uc *LayoutPersistenceUseCase) Load(ctx context.Context, key entity.StorageKey, defaultLayout *entity.LayoutNode) LoadOutput {
	log := logging.FromContext(ctx)
	fallback := LoadOutput{State: entity.NewLayoutState(defaultLayout.Clone()), FromDefault: true}

	if uc.repo == nil {
		return fallback
	}

	snap, err := uc.repo.Get(ctx, key)
	if err != nil {
		log.Warn().Err(err).Str("storage_key", string(key)).Msg("failed to read stored layout, using default")
		return fallback
	}
	if snap == nil {
		log.Debug().Str("storage_key", string(key)).Msg("no stored layout, using default")
		return fallback
	}

	state, err := snap.ToState()
	if err != nil {
		log.Warn().Err(err).Str("storage_key", string(key)).Msg("stored layout rejected, using default")
		return fallback
	}

	log.Debug().
		Str("storage_key", string(key)).
		Int("panel_count", snap.PanelCount()).
		Int("floating_count", len(state.FloatingWindows)).
		Msg("layout loaded")
	return LoadOutput{State: state}
}

// Save persists the settled part of state under key.
func (uc *LayoutPersistenceUseCase) Save(ctx context.Context, key entity.StorageKey, state entity.LayoutState) error {
	log := logging.FromContext(ctx)

	if key == "" {
		return fmt.Errorf("storage key required")
	}
	if state.Root == nil {
		return fmt.Errorf("layout root is nil")
	}
	if uc.repo == nil {
		return nil
	}

	snap := entity.SnapshotFromState(key, state)
	log.Debug().
		Str("storage_key", string(key)).
		Int("panel_count", snap.PanelCount()).
		Int("floating_count", len(snap.FloatingWindows)).
		Msg("saving layout")

	if err := uc.repo.Save(ctx, snap); err != nil {
		return fmt.Errorf("save layout %s: %w", key, err)
	}
	return nil
}

// Export returns the document that Save would write, without writing it.
func (uc *LayoutPersistenceUseCase) Export(ctx context.Context, key entity.StorageKey, defaultLayout *entity.LayoutNode) *entity.LayoutSnapshot {
	out := uc.Load(ctx, key, defaultLayout)
	return entity.SnapshotFromState(key, out.State)
}

// Import validates a document and stores it under key.
func (uc *LayoutPersistenceUseCase) Import(ctx context.Context, key entity.StorageKey, snap *entity.LayoutSnapshot) error {
	state, err := snap.ToState()
	if err != nil {
		return fmt.Errorf("import layout: %w", err)
	}
	return uc.Save(ctx, key, state)
}

// Reset removes the stored layout so the next Load yields the default.
func (uc *LayoutPersistenceUseCase) Reset(ctx context.Context, key entity.StorageKey) error {
	if uc.repo == nil {
		return nil
	}
	if err := uc.repo.Delete(ctx, key); err != nil {
		return fmt.Errorf("delete layout %s: %w", key, err)
	}
	logging.FromContext(ctx).Info().Str("storage_key", string(key)).Msg("stored layout removed")
	return nil
}
