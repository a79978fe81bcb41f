// Package store persists gradings, rubric data and feedback in a SQL database.
package store

import (
	"context"
	"database/sql"
	"fmt"
	"sync"

	"github.com/4NDR3-S01/ExposIA/internal/contract"
	"github.com/4NDR3-S01/ExposIA/schema"
	_ "github.com/go-sql-driver/mysql" // MySQL driver
	_ "github.com/jackc/pgx/v5/stdlib" // PostgreSQL driver
	_ "modernc.org/sqlite"             // SQLite driver
)

// StoreManager holds the process-wide grading store.
type StoreManager struct {
	sync.RWMutex // Protects the store pointer during initialization
	store        contract.Store
}

var _ contract.StoreManager = &StoreManager{} // Compile-time check

// GetStore returns the grading store.
func (mgr *StoreManager) GetStore() contract.Store {
	mgr.RLock()
	defer mgr.RUnlock()
	return mgr.store
}

// SQLStore implements every store port on top of database/sql.
type SQLStore struct {
	db         *sql.DB
	backend    schema.DatabaseBackend
	driverName string
	connStr    string
}

var _ contract.Store = &SQLStore{} // Compile-time check

// driverFor maps a backend to its registered database/sql driver name.
func driverFor(backend schema.DatabaseBackend) (string, error) {
	switch backend {
	case schema.SQLiteBackend:
		return "sqlite", nil
	case schema.MySQLBackend:
		return "mysql", nil
	case schema.PostgreSQLBackend:
		return "pgx", nil
	default:
		return "", fmt.Errorf("unsupported db backend: %s. Must be sqlite, mysql or postgresql", backend)
	}
}

// NewSQLStore opens the database for the backend and creates the grading tables.
func NewSQLStore(ctx context.Context, backend schema.DatabaseBackend, connStr string) (*SQLStore, error) {
	driverName, err := driverFor(backend)
	if err != nil {
		return nil, err
	}

	dsn := connStr
	if backend == schema.SQLiteBackend && dsn == "" {
		dsn = contract.GetDBFilePath()
	}

	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s database: %w", backend, err)
	}
	if backend == schema.SQLiteBackend {
		// Limit SQLite to a single open connection to avoid "database is locked" errors
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		var connDetail string
		switch backend {
		case schema.MySQLBackend:
			connDetail = "Check connection format: user:password@tcp(host:port)/dbname"
		case schema.PostgreSQLBackend:
			connDetail = "Check connection format: host=localhost port=5432 user=postgres dbname=mydb"
		default:
			connDetail = "Ensure the directory is writable."
		}
		return nil, fmt.Errorf("failed to connect to %s database: %w. %s", backend, err, connDetail)
	}

	if err := createTables(ctx, db, backend); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create grading tables: %w", err)
	}

	return &SQLStore{
		db:         db,
		backend:    backend,
		driverName: driverName,
		connStr:    connStr,
	}, nil
}

// Backend returns the database backend of the store.
func (s *SQLStore) Backend() schema.DatabaseBackend {
	return s.backend
}

// Close closes the underlying DB connection.
func (s *SQLStore) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}
