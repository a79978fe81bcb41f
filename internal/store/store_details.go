package store

import (
	"context"
	"database/sql"

	"github.com/4NDR3-S01/ExposIA/schema"
)

var detailColumns = []string{"grading_id", "criterion_id", "score", "comment", "fragment_id", "slide_id"}

var detailSelectColumns = append([]string{"id"}, detailColumns...)

func detailArgs(d schema.DetailScore) []any {
	return []any{d.GradingID, d.CriterionID, d.Score, d.Comment, nullableInt64(d.FragmentID), nullableInt64(d.SlideID)}
}

func scanDetailScore(row rowScanner) (schema.DetailScore, error) {
	var (
		d          schema.DetailScore
		fragmentID sql.NullInt64
		slideID    sql.NullInt64
	)
	if err := row.Scan(&d.ID, &d.GradingID, &d.CriterionID, &d.Score, &d.Comment, &fragmentID, &slideID); err != nil {
		return schema.DetailScore{}, err
	}
	d.FragmentID = int64Ptr(fragmentID)
	d.SlideID = int64Ptr(slideID)
	return d, nil
}

// SaveDetailScore inserts the detail score when its id is zero and replaces it otherwise.
func (s *SQLStore) SaveDetailScore(ctx context.Context, d schema.DetailScore) (schema.DetailScore, error) {
	if d.ID == 0 {
		id, err := s.insert(ctx, detailScoresTable, detailColumns, detailArgs(d)...)
		if err != nil {
			return schema.DetailScore{}, err
		}
		d.ID = id
		return d, nil
	}
	if err := s.update(ctx, detailScoresTable, d.ID, detailColumns, detailArgs(d)...); err != nil {
		return schema.DetailScore{}, err
	}
	return d, nil
}

// FindDetailScore loads one detail score by id.
func (s *SQLStore) FindDetailScore(ctx context.Context, id int64) (schema.DetailScore, error) {
	row := s.db.QueryRowContext(ctx, s.selectQuery(detailScoresTable, detailSelectColumns, "id = ?"), id)
	d, err := scanDetailScore(row)
	if err != nil {
		return schema.DetailScore{}, notFoundOr(err, "detail score", id)
	}
	return d, nil
}

// ListDetailScores returns every detail score ordered by id.
func (s *SQLStore) ListDetailScores(ctx context.Context) ([]schema.DetailScore, error) {
	return s.listDetailScores(ctx, "")
}

// ListDetailScoresByGrading returns the detail scores of one grading in insertion order.
func (s *SQLStore) ListDetailScoresByGrading(ctx context.Context, gradingID int64) ([]schema.DetailScore, error) {
	return s.listDetailScores(ctx, "grading_id = ?", gradingID)
}

func (s *SQLStore) listDetailScores(ctx context.Context, where string, args ...any) ([]schema.DetailScore, error) {
	var out []schema.DetailScore
	err := s.queryAll(ctx, detailScoresTable, detailSelectColumns, where, func(row rowScanner) error {
		d, err := scanDetailScore(row)
		if err != nil {
			return err
		}
		out = append(out, d)
		return nil
	}, args...)
	return out, err
}

// DeleteDetailScore removes one detail score. Deleting a missing row is not an error.
func (s *SQLStore) DeleteDetailScore(ctx context.Context, id int64) error {
	return s.deleteWhere(ctx, s.db, detailScoresTable, "id", id)
}
