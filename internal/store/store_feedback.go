package store

import (
	"context"

	"github.com/4NDR3-S01/ExposIA/schema"
)

var feedbackColumns = []string{"grading_id", "observation", "author", "created_at"}

var feedbackSelectColumns = append([]string{"id"}, feedbackColumns...)

func scanFeedback(row rowScanner) (schema.FeedbackEntry, error) {
	var f schema.FeedbackEntry
	if err := row.Scan(&f.ID, &f.GradingID, &f.Observation, &f.Author, timeScanner{&f.CreatedAt}); err != nil {
		return schema.FeedbackEntry{}, err
	}
	return f, nil
}

// SaveFeedback appends a feedback entry. Feedback is never rewritten, so the id is always generated.
func (s *SQLStore) SaveFeedback(ctx context.Context, f schema.FeedbackEntry) (schema.FeedbackEntry, error) {
	id, err := s.insert(ctx, feedbackTable, feedbackColumns,
		f.GradingID, f.Observation, f.Author, formatTime(f.CreatedAt, s.backend))
	if err != nil {
		return schema.FeedbackEntry{}, err
	}
	f.ID = id
	return f, nil
}

// FindFeedback loads one feedback entry by id.
func (s *SQLStore) FindFeedback(ctx context.Context, id int64) (schema.FeedbackEntry, error) {
	row := s.db.QueryRowContext(ctx, s.selectQuery(feedbackTable, feedbackSelectColumns, "id = ?"), id)
	f, err := scanFeedback(row)
	if err != nil {
		return schema.FeedbackEntry{}, notFoundOr(err, "feedback", id)
	}
	return f, nil
}

// ListFeedback returns every feedback entry ordered by id.
func (s *SQLStore) ListFeedback(ctx context.Context) ([]schema.FeedbackEntry, error) {
	return s.listFeedback(ctx, "")
}

// ListFeedbackByGrading returns the feedback of one grading in append order.
func (s *SQLStore) ListFeedbackByGrading(ctx context.Context, gradingID int64) ([]schema.FeedbackEntry, error) {
	return s.listFeedback(ctx, "grading_id = ?", gradingID)
}

func (s *SQLStore) listFeedback(ctx context.Context, where string, args ...any) ([]schema.FeedbackEntry, error) {
	var out []schema.FeedbackEntry
	err := s.queryAll(ctx, feedbackTable, feedbackSelectColumns, where, func(row rowScanner) error {
		f, err := scanFeedback(row)
		if err != nil {
			return err
		}
		out = append(out, f)
		return nil
	}, args...)
	return out, err
}
