package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"sync"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/logging"
)

var errDatabaseClosed = errors.New("layout database closed")

// LazyDB opens the layout database the first time a command needs it, so
// `dockyard about` or `schema` never pay for the WASM driver and migrations.
// A failed open is remembered; later calls return the same error.
type LazyDB struct {
	path string

	mu     sync.Mutex
	db     *sql.DB
	err    error
	opened bool
}

var _ port.DatabaseProvider = (*LazyDB)(nil)

// NewLazyDB returns a provider for the database at path.
func NewLazyDB(path string) *LazyDB {
	return &LazyDB{path: path}
}

// DB returns the open database.
func (l *LazyDB) DB(ctx context.Context) (*sql.DB, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !l.opened {
		l.opened = true
		log := logging.FromContext(ctx)
		log.Debug().Str("path", l.path).Msg("opening layout database")
		l.db, l.err = NewConnection(ctx, l.path)
		if l.err != nil {
			log.Error().Err(l.err).Str("path", l.path).Msg("layout database unavailable")
		}
	}
	if l.err != nil {
		return nil, fmt.Errorf("layout database: %w", l.err)
	}
	return l.db, nil
}

// Close closes the database if it was opened. Later DB calls fail.
func (l *LazyDB) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.opened = true
	if l.db == nil {
		if l.err == nil {
			l.err = errDatabaseClosed
		}
		return nil
	}
	db := l.db
	l.db, l.err = nil, errDatabaseClosed
	return db.Close()
}

// IsInitialized reports whether the database is open.
func (l *LazyDB) IsInitialized() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.db != nil
}

// Path returns the database file.
func (l *LazyDB) Path() string {
	return l.path
}
