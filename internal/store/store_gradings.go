package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/4NDR3-S01/ExposIA/schema"
)

var gradingColumns = []string{
	"recording_id", "user_id", "global_score", "global_observation", "grading_type", "created_at", "ideal_parameter_id",
}

var gradingSelectColumns = append([]string{"id"}, gradingColumns...)

func (s *SQLStore) gradingArgs(g schema.Grading) []any {
	return []any{
		g.RecordingID, nullableInt64(g.UserID), g.GlobalScore, g.GlobalObservation,
		string(g.Type), formatTime(g.CreatedAt, s.backend), nullableInt64(g.IdealParameterID),
	}
}

func scanGrading(row rowScanner) (schema.Grading, error) {
	var (
		g         schema.Grading
		userID    sql.NullInt64
		idealID   sql.NullInt64
		gradeType string
	)
	err := row.Scan(&g.ID, &g.RecordingID, &userID, &g.GlobalScore, &g.GlobalObservation,
		&gradeType, timeScanner{&g.CreatedAt}, &idealID)
	if err != nil {
		return schema.Grading{}, err
	}
	g.UserID = int64Ptr(userID)
	g.IdealParameterID = int64Ptr(idealID)
	g.Type = schema.GradingType(gradeType)
	return g, nil
}

// SaveGrading inserts the grading when its id is zero and replaces it otherwise.
func (s *SQLStore) SaveGrading(ctx context.Context, g schema.Grading) (schema.Grading, error) {
	if g.ID == 0 {
		id, err := s.insert(ctx, gradingsTable, gradingColumns, s.gradingArgs(g)...)
		if err != nil {
			return schema.Grading{}, err
		}
		g.ID = id
		return g, nil
	}
	if err := s.update(ctx, gradingsTable, g.ID, gradingColumns, s.gradingArgs(g)...); err != nil {
		return schema.Grading{}, err
	}
	return g, nil
}

// FindGrading loads one grading by id.
func (s *SQLStore) FindGrading(ctx context.Context, id int64) (schema.Grading, error) {
	row := s.db.QueryRowContext(ctx, s.selectQuery(gradingsTable, gradingSelectColumns, "id = ?"), id)
	g, err := scanGrading(row)
	if err != nil {
		return schema.Grading{}, notFoundOr(err, "grading", id)
	}
	return g, nil
}

// ListGradings returns every grading ordered by id.
func (s *SQLStore) ListGradings(ctx context.Context) ([]schema.Grading, error) {
	var out []schema.Grading
	err := s.queryAll(ctx, gradingsTable, gradingSelectColumns, "", func(row rowScanner) error {
		g, err := scanGrading(row)
		if err != nil {
			return err
		}
		out = append(out, g)
		return nil
	})
	return out, err
}

// DeleteGrading removes a grading with its detail scores and feedback in one transaction.
// Deleting a missing grading is not an error.
func (s *SQLStore) DeleteGrading(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin delete of grading %d: %w", id, err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := s.deleteWhere(ctx, tx, detailScoresTable, "grading_id", id); err != nil {
		return err
	}
	if err := s.deleteWhere(ctx, tx, feedbackTable, "grading_id", id); err != nil {
		return err
	}
	if err := s.deleteWhere(ctx, tx, gradingsTable, "id", id); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit delete of grading %d: %w", id, err)
	}
	return nil
}
