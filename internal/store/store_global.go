package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"sync"

	"github.com/4NDR3-S01/ExposIA/schema"
)

// Global Manager instance for main logic.
var (
	Manager   = &StoreManager{}
	initOnce  sync.Once
	closeOnce sync.Once
)

// InitStores initializes the global store manager.
func InitStores(ctx context.Context, backend schema.DatabaseBackend, connStr string) error {
	var initErr error

	initOnce.Do(func() {
		s, err := NewSQLStore(ctx, backend, connStr)
		if err != nil {
			initErr = fmt.Errorf("failed to initialize grading store: %w", err)
			return
		}

		Manager.Lock()
		defer Manager.Unlock()
		Manager.store = s
	})

	return initErr
}

// CloseStores should be called on application shutdown.
func CloseStores() {
	closeOnce.Do(func() {
		Manager.Lock()
		defer Manager.Unlock()
		if Manager.store != nil {
			_ = Manager.store.Close()
		}
	})
}

// ClearStore removes all grading data for the specified backend.
// For SQLite, it deletes the database file.
// For SQL backends (MySQL/PostgreSQL), it drops the grading tables.
func ClearStore(backend schema.DatabaseBackend, dbFilePath, connStr string) error {
	switch backend {
	case schema.SQLiteBackend:
		if dbFilePath == "" {
			return fmt.Errorf("dbFilePath cannot be empty for SQLite backend")
		}
		// Remove the file; ignore if it doesn't exist
		if err := os.Remove(dbFilePath); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to remove SQLite database file %s: %w", dbFilePath, err)
		}
		return nil

	case schema.MySQLBackend, schema.PostgreSQLBackend:
		driverName, _ := driverFor(backend)
		return dropSQLTables(driverName, backend, connStr)

	default:
		return fmt.Errorf("unsupported db backend for clearing: %s", backend)
	}
}

// dropSQLTables connects to the SQL database and drops every grading table.
func dropSQLTables(driverName string, backend schema.DatabaseBackend, connStr string) error {
	db, err := sql.Open(driverName, connStr)
	if err != nil {
		return fmt.Errorf("failed to connect to %s database: %w", driverName, err)
	}
	defer func() { _ = db.Close() }()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping %s database: %w", driverName, err)
	}

	for i := len(allTables) - 1; i >= 0; i-- {
		query := fmt.Sprintf("DROP TABLE IF EXISTS %s", quoteTableName(allTables[i], backend))
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", allTables[i], err)
		}
	}
	return nil
}
