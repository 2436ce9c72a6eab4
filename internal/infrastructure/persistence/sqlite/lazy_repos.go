package sqlite

import (
	"context"
	"sync"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/repository"
)

// LazyLayoutRepository builds the layout repository on the first call that
// needs the database.
type LazyLayoutRepository struct {
	provider port.DatabaseProvider

	mu    sync.Mutex
	inner repository.LayoutRepository
}

// NewLazyLayoutRepository wraps provider in a layout repository.
func NewLazyLayoutRepository(provider port.DatabaseProvider) repository.LayoutRepository {
	return &LazyLayoutRepository{provider: provider}
}

func (r *LazyLayoutRepository) repo(ctx context.Context) (repository.LayoutRepository, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.inner != nil {
		return r.inner, nil
	}
	db, err := r.provider.DB(ctx)
	if err != nil {
		return nil, err
	}
	r.inner = NewLayoutRepository(db)
	return r.inner, nil
}

func (r *LazyLayoutRepository) Save(ctx context.Context, snapshot *entity.LayoutSnapshot) error {
	repo, err := r.repo(ctx)
	if err != nil {
		return err
	}
	return repo.Save(ctx, snapshot)
}

func (r *LazyLayoutRepository) Get(ctx context.Context, key entity.StorageKey) (*entity.LayoutSnapshot, error) {
	repo, err := r.repo(ctx)
	if err != nil {
		return nil, err
	}
	return repo.Get(ctx, key)
}

func (r *LazyLayoutRepository) Delete(ctx context.Context, key entity.StorageKey) error {
	repo, err := r.repo(ctx)
	if err != nil {
		return err
	}
	return repo.Delete(ctx, key)
}

func (r *LazyLayoutRepository) ListKeys(ctx context.Context) ([]entity.StorageKey, error) {
	repo, err := r.repo(ctx)
	if err != nil {
		return nil, err
	}
	return repo.ListKeys(ctx)
}
