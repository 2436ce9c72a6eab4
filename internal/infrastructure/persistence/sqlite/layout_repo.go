package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/repository"
	"github.com/bnema/dockyard/internal/logging"
)

const (
	upsertLayoutSQL = `
INSERT INTO layouts (storage_key, version, layout_json, panel_count, floating_count, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(storage_key) DO UPDATE SET
    version = excluded.version,
    layout_json = excluded.layout_json,
    panel_count = excluded.panel_count,
    floating_count = excluded.floating_count,
    updated_at = excluded.updated_at`
	getLayoutSQL    = `SELECT layout_json FROM layouts WHERE storage_key = ?`
	deleteLayoutSQL = `DELETE FROM layouts WHERE storage_key = ?`
	listKeysSQL     = `SELECT storage_key FROM layouts ORDER BY storage_key`
)

type layoutRepo struct {
	db *sql.DB
}

// NewLayoutRepository creates a new layout repository.
func NewLayoutRepository(db *sql.DB) repository.LayoutRepository {
	return &layoutRepo{db: db}
}

// Save stores or replaces the snapshot for its storage key.
func (r *layoutRepo) Save(ctx context.Context, snapshot *entity.LayoutSnapshot) error {
	log := logging.FromContext(ctx)
	if snapshot == nil {
		return errors.New("layout snapshot cannot be nil")
	}
	if snapshot.StorageKey == "" {
		return errors.New("layout snapshot has no storage key")
	}

	layoutJSON, err := json.Marshal(snapshot)
	if err != nil {
		log.Error().Err(err).Msg("failed to marshal layout snapshot")
		return err
	}

	savedAt := snapshot.SavedAt
	if savedAt.IsZero() {
		savedAt = time.Now()
	}

	log.Debug().
		Str("storage_key", string(snapshot.StorageKey)).
		Int("panel_count", snapshot.PanelCount()).
		Int("floating_count", len(snapshot.FloatingWindows)).
		Msg("saving layout snapshot")

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin layout transaction: %w", err)
	}
	defer func() {
		if rollbackErr := tx.Rollback(); rollbackErr != nil && !errors.Is(rollbackErr, sql.ErrTxDone) {
			log.Debug().Err(rollbackErr).Msg("layout rollback reported non-terminal error")
		}
	}()

	if _, err := tx.ExecContext(ctx, upsertLayoutSQL,
		string(snapshot.StorageKey),
		snapshot.Version,
		string(layoutJSON),
		snapshot.PanelCount(),
		len(snapshot.FloatingWindows),
		savedAt.UTC(),
	); err != nil {
		return fmt.Errorf("upsert layout: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit layout transaction: %w", err)
	}
	return nil
}

// Get returns the snapshot stored under key, or nil when nothing is stored.
func (r *layoutRepo) Get(ctx context.Context, key entity.StorageKey) (*entity.LayoutSnapshot, error) {
	var layoutJSON string
	err := r.db.QueryRowContext(ctx, getLayoutSQL, string(key)).Scan(&layoutJSON)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("query layout: %w", err)
	}

	var snapshot entity.LayoutSnapshot
	if err := json.Unmarshal([]byte(layoutJSON), &snapshot); err != nil {
		logging.FromContext(ctx).Error().Err(err).
			Str("storage_key", string(key)).
			Msg("failed to unmarshal layout snapshot")
		return nil, fmt.Errorf("decode layout %s: %w", key, err)
	}
	return &snapshot, nil
}

// Delete removes the snapshot stored under key.
func (r *layoutRepo) Delete(ctx context.Context, key entity.StorageKey) error {
	logging.FromContext(ctx).Debug().Str("storage_key", string(key)).Msg("deleting layout snapshot")
	if _, err := r.db.ExecContext(ctx, deleteLayoutSQL, string(key)); err != nil {
		return fmt.Errorf("delete layout: %w", err)
	}
	return nil
}

// ListKeys returns every storage key with a stored snapshot.
func (r *layoutRepo) ListKeys(ctx context.Context) ([]entity.StorageKey, error) {
	rows, err := r.db.QueryContext(ctx, listKeysSQL)
	if err != nil {
		return nil, fmt.Errorf("list layouts: %w", err)
	}
	defer rows.Close()

	var keys []entity.StorageKey
	for rows.Next() {
		var key string
		if err := rows.Scan(&key); err != nil {
			return nil, fmt.Errorf("scan layout key: %w", err)
		}
		keys = append(keys, entity.StorageKey(key))
	}
	return keys, rows.Err()
}
