package core

import (
	"context"
	"strings"

	"github.com/4NDR3-S01/ExposIA/internal/contract"
	"github.com/4NDR3-S01/ExposIA/schema"
)

// AddFeedback appends a feedback entry to an existing grading.
// A zero timestamp is replaced by the current time.
func (s *Service) AddFeedback(ctx context.Context, f schema.FeedbackEntry) (schema.FeedbackEntry, error) {
	if strings.TrimSpace(f.Observation) == "" {
		return schema.FeedbackEntry{}, &contract.ValidationError{Field: "observation", Reason: "cannot be empty"}
	}
	if _, err := s.store.FindGrading(ctx, f.GradingID); err != nil {
		return schema.FeedbackEntry{}, persistErr("load grading", err)
	}
	f.ID = 0
	if f.CreatedAt.IsZero() {
		f.CreatedAt = s.now()
	}
	saved, err := s.store.SaveFeedback(ctx, f)
	return saved, persistErr("save feedback", err)
}

// GetFeedback returns one feedback entry.
func (s *Service) GetFeedback(ctx context.Context, id int64) (schema.FeedbackEntry, error) {
	f, err := s.store.FindFeedback(ctx, id)
	return f, persistErr("load feedback", err)
}

// ListFeedback returns every feedback entry.
func (s *Service) ListFeedback(ctx context.Context) ([]schema.FeedbackEntry, error) {
	out, err := s.store.ListFeedback(ctx)
	return out, persistErr("list feedback", err)
}

// ListFeedbackByGrading returns the feedback of one existing grading in append order.
func (s *Service) ListFeedbackByGrading(ctx context.Context, gradingID int64) ([]schema.FeedbackEntry, error) {
	if _, err := s.store.FindGrading(ctx, gradingID); err != nil {
		return nil, persistErr("load grading", err)
	}
	out, err := s.store.ListFeedbackByGrading(ctx, gradingID)
	return out, persistErr("list feedback", err)
}
