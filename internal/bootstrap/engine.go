// Package bootstrap wires the layout engine for one process: configuration,
// persistence and one coordinator per editor.
package bootstrap

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/repository"
	"github.com/bnema/dockyard/internal/editor"
	"github.com/bnema/dockyard/internal/infrastructure/config"
	"github.com/bnema/dockyard/internal/infrastructure/persistence/sqlite"
	"github.com/bnema/dockyard/internal/logging"
	"github.com/bnema/dockyard/internal/ui/coordinator"
)

// Engine holds the process-wide collaborators shared by every editor.
type Engine struct {
	Config    config.Config
	Repo      repository.LayoutRepository
	PersistUC *usecase.LayoutPersistenceUseCase
	SchemaUC  *usecase.GetConfigSchemaUseCase

	db port.DatabaseProvider
}

// NewEngine prepares an engine backed by the SQLite database at
// in.Database.Path, or the XDG data location when that is empty.
// The database is opened on first use.
func NewEngine(ctx context.Context, in *config.Config) (*Engine, error) {
	cfg := *in
	if cfg.Database.Path == "" {
		path, err := config.GetDatabaseFile()
		if err != nil {
			return nil, fmt.Errorf("resolve database path: %w", err)
		}
		cfg.Database.Path = path
	}
	db := sqlite.NewLazyDB(cfg.Database.Path)
	e := NewEngineWithRepository(&cfg, sqlite.NewLazyLayoutRepository(db))
	e.db = db

	logging.FromContext(ctx).Debug().Str("database", cfg.Database.Path).Msg("engine prepared")
	return e, nil
}

// NewEngineWithRepository prepares an engine on top of an existing repository.
func NewEngineWithRepository(cfg *config.Config, repo repository.LayoutRepository) *Engine {
	return &Engine{
		Config:    *cfg,
		Repo:      repo,
		PersistUC: usecase.NewLayoutPersistenceUseCase(repo),
		SchemaUC:  usecase.NewGetConfigSchemaUseCase(config.NewSchemaProvider(), config.NewLayoutSchemaGenerator()),
	}
}

// NewIDGenerator returns a generator of random node and window ids.
func NewIDGenerator() usecase.IDGenerator {
	return uuid.NewString
}

// NewCoordinator builds the use cases for preset from the engine config and
// returns a coordinator that owns the preset's layout.
func (e *Engine) NewCoordinator(ctx context.Context, preset editor.Preset) *coordinator.LayoutCoordinator {
	return e.newCoordinator(ctx, preset, NewIDGenerator())
}

func (e *Engine) newCoordinator(ctx context.Context, preset editor.Preset, ids usecase.IDGenerator) *coordinator.LayoutCoordinator {
	lc := e.Config.Layout
	reg := preset.NewRegistry()

	floatingSize := entity.Size{Width: float64(lc.DefaultFloatingWidth), Height: float64(lc.DefaultFloatingHeight)}
	if preset.DefaultFloatingSize.Width > 0 && preset.DefaultFloatingSize.Height > 0 {
		floatingSize = preset.DefaultFloatingSize
	}

	layoutUC := usecase.NewManageLayoutUseCase(ids, reg, usecase.ManageLayoutOptions{
		DefaultFloatingSize: floatingSize,
		FloatingOffset:      float64(lc.FloatingOffsetPx),
	})
	floatingUC := usecase.NewFloatingWindowsUseCase(ids, reg, usecase.FloatingWindowsOptions{
		DefaultSize:   floatingSize,
		Offset:        float64(lc.FloatingOffsetPx),
		SnapTolerance: float64(lc.SnapTolerancePx),
	})
	disableSnap := lc.SnapTolerancePx == 0
	dragUC := usecase.NewDragUseCase(layoutUC, floatingUC, usecase.DragOptions{
		EdgeThresholdPct:   lc.EdgeThresholdPct,
		EdgeThresholdMaxPx: float64(lc.EdgeThresholdMaxPx),
		DisableSnap:        disableSnap,
	})

	return coordinator.New(ctx, coordinator.Config{
		StorageKey:         preset.StorageKey,
		DefaultLayout:      preset.DefaultLayout(),
		Registry:           reg,
		LayoutUC:           layoutUC,
		ResizeUC:           usecase.NewResizeUseCase(float64(lc.DefaultMinPanelPx)),
		FloatingUC:         floatingUC,
		DragUC:             dragUC,
		PersistUC:          e.PersistUC,
		SnapshotIntervalMs: lc.SnapshotIntervalMs,
		GesturePolicy:      gesturePolicy(lc.GesturePolicy),
		DisableSnap:        disableSnap,
	})
}

func gesturePolicy(p config.GesturePolicy) coordinator.GesturePolicy {
	if p == config.GesturePolicyForceEnd {
		return coordinator.GesturePolicyForceEnd
	}
	return coordinator.GesturePolicyIgnore
}

// DatabasePath returns the SQLite file, or "" for engines built on another repository.
func (e *Engine) DatabasePath() string {
	if e.db == nil {
		return ""
	}
	return e.db.Path()
}

// Close releases the database if it was opened.
func (e *Engine) Close() error {
	if e.db == nil {
		return nil
	}
	return e.db.Close()
}
