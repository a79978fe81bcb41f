package store

import (
	"context"
	"database/sql"
	"fmt"
	"io"

	"github.com/4NDR3-S01/ExposIA/schema"
)

// GetStatus returns status information about the grading store.
func (s *SQLStore) GetStatus(ctx context.Context) (schema.StoreStatus, error) {
	status := schema.StoreStatus{
		Backend:    string(s.backend),
		Connected:  s.db != nil,
		TableSizes: make(map[string]int64),
	}
	if s.db == nil {
		return status, nil
	}
	if err := s.db.PingContext(ctx); err != nil {
		status.Connected = false
		return status, nil
	}

	for _, table := range allTables {
		var count int64
		query := fmt.Sprintf("SELECT COUNT(*) FROM %s", quoteTableName(table, s.backend))
		if err := s.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
			return status, fmt.Errorf("failed to count rows in %s: %w", table, err)
		}
		status.TableSizes[table] = count
	}
	status.TotalGradings = int(status.TableSizes[gradingsTable])
	if status.TotalGradings == 0 {
		return status, nil
	}

	var lastID sql.NullInt64
	query := fmt.Sprintf("SELECT MAX(id), MAX(created_at) FROM %s", quoteTableName(gradingsTable, s.backend))
	if err := s.db.QueryRowContext(ctx, query).Scan(&lastID, timeScanner{&status.LastGradingTime}); err != nil {
		return status, fmt.Errorf("failed to get last grading: %w", err)
	}
	status.LastGradingID = lastID.Int64

	return status, nil
}

// PrintStoreStatus prints store status information.
func PrintStoreStatus(w io.Writer, status schema.StoreStatus) {
	_, _ = fmt.Fprintf(w, "Store Backend: %s\n", status.Backend)
	_, _ = fmt.Fprintf(w, "Connected: %t\n", status.Connected)
	if !status.Connected {
		return
	}
	_, _ = fmt.Fprintf(w, "Total Gradings: %d\n", status.TotalGradings)
	if status.TotalGradings > 0 {
		_, _ = fmt.Fprintf(w, "Last Grading ID: %d\n", status.LastGradingID)
		_, _ = fmt.Fprintf(w, "Last Grading: %s\n", status.LastGradingTime.Format("2006-01-02 15:04:05"))
	}
	_, _ = fmt.Fprintln(w, "Table Sizes:")
	for _, table := range allTables {
		if size, ok := status.TableSizes[table]; ok {
			_, _ = fmt.Fprintf(w, "  %s: %d rows\n", table, size)
		}
	}
}
