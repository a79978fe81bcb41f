package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/4NDR3-S01/ExposIA/internal/contract"
	"github.com/4NDR3-S01/ExposIA/schema"
)

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}

// insert adds a row and returns its generated id.
func (s *SQLStore) insert(ctx context.Context, table string, cols []string, args ...any) (int64, error) {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (%s)`,
		quoteTableName(table, s.backend), strings.Join(cols, ", "), placeholders(len(cols)))

	var id int64
	switch s.backend {
	case schema.PostgreSQLBackend:
		err := s.db.QueryRowContext(ctx, rebind(query+" RETURNING id", s.backend), args...).Scan(&id)
		if err != nil {
			return 0, fmt.Errorf("failed to insert into %s: %w", table, err)
		}
	default: // SQLite and MySQL
		result, err := s.db.ExecContext(ctx, query, args...)
		if err != nil {
			return 0, fmt.Errorf("failed to insert into %s: %w", table, err)
		}
		id, err = result.LastInsertId()
		if err != nil {
			return 0, fmt.Errorf("failed to read id for %s: %w", table, err)
		}
	}
	return id, nil
}

// update overwrites every listed column of the row with the given id.
func (s *SQLStore) update(ctx context.Context, table string, id int64, cols []string, args ...any) error {
	sets := make([]string, len(cols))
	for i, col := range cols {
		sets[i] = col + " = ?"
	}
	query := fmt.Sprintf(`UPDATE %s SET %s WHERE id = ?`, quoteTableName(table, s.backend), strings.Join(sets, ", "))
	if _, err := s.db.ExecContext(ctx, rebind(query, s.backend), append(args, id)...); err != nil {
		return fmt.Errorf("failed to update %s %d: %w", table, id, err)
	}
	return nil
}

// deleteWhere removes every row of table matching column = value.
func (s *SQLStore) deleteWhere(ctx context.Context, ex execer, table, column string, value int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`, quoteTableName(table, s.backend), column)
	if _, err := ex.ExecContext(ctx, rebind(query, s.backend), value); err != nil {
		return fmt.Errorf("failed to delete from %s: %w", table, err)
	}
	return nil
}

// selectQuery builds a SELECT over the given columns with an optional WHERE clause.
func (s *SQLStore) selectQuery(table string, cols []string, where string) string {
	query := fmt.Sprintf(`SELECT %s FROM %s`, strings.Join(cols, ", "), quoteTableName(table, s.backend))
	if where != "" {
		query += " WHERE " + where
	}
	return rebind(query+" ORDER BY id", s.backend)
}

// notFoundOr maps a missing row to a NotFoundError and wraps any other failure.
func notFoundOr(err error, entity string, id int64) error {
	if errors.Is(err, sql.ErrNoRows) {
		return &contract.NotFoundError{Entity: entity, ID: id}
	}
	return fmt.Errorf("failed to load %s %d: %w", entity, id, err)
}

// queryAll runs a SELECT and hands every row to scan.
func (s *SQLStore) queryAll(ctx context.Context, table string, cols []string, where string, scan func(rowScanner) error, args ...any) error {
	rows, err := s.db.QueryContext(ctx, s.selectQuery(table, cols, where), args...)
	if err != nil {
		return fmt.Errorf("failed to query %s: %w", table, err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		if err := scan(rows); err != nil {
			return fmt.Errorf("failed to scan %s row: %w", table, err)
		}
	}
	return rows.Err()
}
