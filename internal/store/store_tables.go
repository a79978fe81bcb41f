package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/4NDR3-S01/ExposIA/schema"
)

// Table names for grading storage.
const (
	criteriaTable        = "grading_criteria"
	idealParametersTable = "grading_ideal_parameters"
	gradingsTable        = "gradings"
	detailScoresTable    = "grading_detail_scores"
	feedbackTable        = "grading_feedback"
)

// allTables lists every table in dependency order.
var allTables = []string{criteriaTable, idealParametersTable, gradingsTable, detailScoresTable, feedbackTable}

// createTables creates every grading table and index for the backend.
func createTables(ctx context.Context, db *sql.DB, backend schema.DatabaseBackend) error {
	for _, table := range allTables {
		if err := validateTableName(table); err != nil {
			return err
		}
		for _, query := range getCreateTableQueries(table, backend) {
			if _, err := db.ExecContext(ctx, query); err != nil {
				return fmt.Errorf("failed to create table %s: %w", table, err)
			}
		}
	}
	return nil
}

// getCreateTableQueries returns the statements creating one table for the given backend.
func getCreateTableQueries(table string, backend schema.DatabaseBackend) []string {
	quoted := quoteTableName(table, backend)
	switch table {
	case criteriaTable:
		return []string{getCreateCriteriaQuery(quoted, backend)}
	case idealParametersTable:
		return []string{getCreateIdealParametersQuery(quoted, backend)}
	case gradingsTable:
		return []string{getCreateGradingsQuery(quoted, backend)}
	case detailScoresTable:
		return withGradingIndex(getCreateDetailScoresQuery(quoted, backend), table, backend)
	case feedbackTable:
		return withGradingIndex(getCreateFeedbackQuery(quoted, backend), table, backend)
	}
	return nil
}

// withGradingIndex appends the grading_id index for backends that cannot declare it inline.
func withGradingIndex(create, table string, backend schema.DatabaseBackend) []string {
	if backend == schema.MySQLBackend {
		return []string{create}
	}
	index := fmt.Sprintf(`CREATE INDEX IF NOT EXISTS %s ON %s (grading_id)`,
		quoteTableName("idx_"+table+"_grading", backend), quoteTableName(table, backend))
	return []string{create, index}
}

func getCreateCriteriaQuery(quoted string, backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id BIGINT AUTO_INCREMENT PRIMARY KEY,
				name VARCHAR(255) NOT NULL,
				description TEXT NOT NULL,
				weight DOUBLE NOT NULL
			);
		`, quoted)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id BIGSERIAL PRIMARY KEY,
				name TEXT NOT NULL,
				description TEXT NOT NULL,
				weight DOUBLE PRECISION NOT NULL
			);
		`, quoted)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				name TEXT NOT NULL,
				description TEXT NOT NULL,
				weight REAL NOT NULL
			);
		`, quoted)
	}
}

func getCreateIdealParametersQuery(quoted string, backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id BIGINT AUTO_INCREMENT PRIMARY KEY,
				clarity_target DOUBLE NOT NULL,
				speed_target DOUBLE NOT NULL,
				pause_count_target INT NOT NULL,
				extra_params TEXT NOT NULL
			);
		`, quoted)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id BIGSERIAL PRIMARY KEY,
				clarity_target DOUBLE PRECISION NOT NULL,
				speed_target DOUBLE PRECISION NOT NULL,
				pause_count_target INTEGER NOT NULL,
				extra_params TEXT NOT NULL
			);
		`, quoted)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				clarity_target REAL NOT NULL,
				speed_target REAL NOT NULL,
				pause_count_target INTEGER NOT NULL,
				extra_params TEXT NOT NULL
			);
		`, quoted)
	}
}

func getCreateGradingsQuery(quoted string, backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id BIGINT AUTO_INCREMENT PRIMARY KEY,
				recording_id BIGINT NOT NULL,
				user_id BIGINT,
				global_score DOUBLE NOT NULL,
				global_observation TEXT NOT NULL,
				grading_type VARCHAR(16) NOT NULL,
				created_at DATETIME(6) NOT NULL,
				ideal_parameter_id BIGINT
			);
		`, quoted)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id BIGSERIAL PRIMARY KEY,
				recording_id BIGINT NOT NULL,
				user_id BIGINT,
				global_score DOUBLE PRECISION NOT NULL,
				global_observation TEXT NOT NULL,
				grading_type TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL,
				ideal_parameter_id BIGINT
			);
		`, quoted)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				recording_id INTEGER NOT NULL,
				user_id INTEGER,
				global_score REAL NOT NULL,
				global_observation TEXT NOT NULL,
				grading_type TEXT NOT NULL,
				created_at TEXT NOT NULL,
				ideal_parameter_id INTEGER
			);
		`, quoted)
	}
}

func getCreateDetailScoresQuery(quoted string, backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id BIGINT AUTO_INCREMENT PRIMARY KEY,
				grading_id BIGINT NOT NULL,
				criterion_id BIGINT NOT NULL,
				score DOUBLE NOT NULL,
				comment TEXT NOT NULL,
				fragment_id BIGINT,
				slide_id BIGINT,
				INDEX idx_grading_detail_scores_grading (grading_id)
			);
		`, quoted)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id BIGSERIAL PRIMARY KEY,
				grading_id BIGINT NOT NULL,
				criterion_id BIGINT NOT NULL,
				score DOUBLE PRECISION NOT NULL,
				comment TEXT NOT NULL,
				fragment_id BIGINT,
				slide_id BIGINT
			);
		`, quoted)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				grading_id INTEGER NOT NULL,
				criterion_id INTEGER NOT NULL,
				score REAL NOT NULL,
				comment TEXT NOT NULL,
				fragment_id INTEGER,
				slide_id INTEGER
			);
		`, quoted)
	}
}

func getCreateFeedbackQuery(quoted string, backend schema.DatabaseBackend) string {
	switch backend {
	case schema.MySQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id BIGINT AUTO_INCREMENT PRIMARY KEY,
				grading_id BIGINT NOT NULL,
				observation TEXT NOT NULL,
				author VARCHAR(255) NOT NULL,
				created_at DATETIME(6) NOT NULL,
				INDEX idx_grading_feedback_grading (grading_id)
			);
		`, quoted)

	case schema.PostgreSQLBackend:
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id BIGSERIAL PRIMARY KEY,
				grading_id BIGINT NOT NULL,
				observation TEXT NOT NULL,
				author TEXT NOT NULL,
				created_at TIMESTAMPTZ NOT NULL
			);
		`, quoted)

	default: // SQLite
		return fmt.Sprintf(`
			CREATE TABLE IF NOT EXISTS %s (
				id INTEGER PRIMARY KEY AUTOINCREMENT,
				grading_id INTEGER NOT NULL,
				observation TEXT NOT NULL,
				author TEXT NOT NULL,
				created_at TEXT NOT NULL
			);
		`, quoted)
	}
}
