// Package port defines interfaces for infrastructure adapters.
package port

import (
	"context"
	"database/sql"
)

// DatabaseProvider hands out the layout database, opening it on first use.
type DatabaseProvider interface {
	DB(ctx context.Context) (*sql.DB, error)
	Close() error

	// IsInitialized reports whether DB has opened the database successfully.
	IsInitialized() bool

	// Path is the database file, shown by `dockyard config path` and doctor.
	Path() string
}
