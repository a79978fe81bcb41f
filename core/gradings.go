package core

import (
	"context"
	"fmt"

	"github.com/4NDR3-S01/ExposIA/core/algo"
	"github.com/4NDR3-S01/ExposIA/internal/contract"
	"github.com/4NDR3-S01/ExposIA/schema"
)

// CreateGrading stores a new grading and announces it with a grading.created event.
// An ideal parameter id that does not resolve is dropped rather than rejected.
func (s *Service) CreateGrading(ctx context.Context, g schema.Grading) (schema.Grading, error) {
	if err := s.prepareGrading(ctx, &g); err != nil {
		return schema.Grading{}, err
	}
	g.ID = 0
	if g.CreatedAt.IsZero() {
		g.CreatedAt = s.now()
	}

	saved, err := s.store.SaveGrading(ctx, g)
	if err != nil {
		return schema.Grading{}, persistErr("create grading", err)
	}

	var userID any
	if saved.UserID != nil {
		userID = *saved.UserID
	}
	s.notifier.Notify(ctx, schema.EventGradingCreated, map[string]any{
		"id":          saved.ID,
		"recordingId": saved.RecordingID,
		"userId":      userID,
		"globalScore": saved.GlobalScore,
	})
	return saved, nil
}

// UpdateGrading replaces every field of an existing grading.
// A zero creation time keeps the stored one.
func (s *Service) UpdateGrading(ctx context.Context, id int64, g schema.Grading) (schema.Grading, error) {
	existing, err := s.store.FindGrading(ctx, id)
	if err != nil {
		return schema.Grading{}, persistErr("load grading", err)
	}
	if err := s.prepareGrading(ctx, &g); err != nil {
		return schema.Grading{}, err
	}
	g.ID = id
	if g.CreatedAt.IsZero() {
		g.CreatedAt = existing.CreatedAt
	}

	saved, err := s.store.SaveGrading(ctx, g)
	if err != nil {
		return schema.Grading{}, persistErr("update grading", err)
	}
	return saved, nil
}

// DeleteGrading removes a grading with its detail scores and feedback.
// Deleting an unknown grading succeeds.
func (s *Service) DeleteGrading(ctx context.Context, id int64) error {
	return persistErr("delete grading", s.store.DeleteGrading(ctx, id))
}

// GetGrading returns a grading with its detail scores and feedback.
func (s *Service) GetGrading(ctx context.Context, id int64) (schema.GradingAggregate, error) {
	g, err := s.store.FindGrading(ctx, id)
	if err != nil {
		return schema.GradingAggregate{}, persistErr("load grading", err)
	}
	details, err := s.store.ListDetailScoresByGrading(ctx, id)
	if err != nil {
		return schema.GradingAggregate{}, persistErr("load detail scores", err)
	}
	feedback, err := s.store.ListFeedbackByGrading(ctx, id)
	if err != nil {
		return schema.GradingAggregate{}, persistErr("load feedback", err)
	}
	if details == nil {
		details = []schema.DetailScore{}
	}
	if feedback == nil {
		feedback = []schema.FeedbackEntry{}
	}
	return schema.GradingAggregate{Grading: g, Details: details, Feedback: feedback}, nil
}

// ListGradings returns every grading.
func (s *Service) ListGradings(ctx context.Context) ([]schema.Grading, error) {
	out, err := s.store.ListGradings(ctx)
	return out, persistErr("list gradings", err)
}

// prepareGrading validates a grading and resolves its optional ideal parameter reference.
func (s *Service) prepareGrading(ctx context.Context, g *schema.Grading) error {
	if g.Type == "" {
		g.Type = schema.ManualGrading
	}
	if _, ok := schema.ValidGradingTypes[g.Type]; !ok {
		return &contract.ValidationError{Field: "type", Reason: fmt.Sprintf("unknown grading type %q", g.Type)}
	}
	if !algo.IsFiniteScore(g.GlobalScore) {
		return &contract.ValidationError{Field: "globalScore", Reason: "must be a finite number"}
	}
	if g.IdealParameterID == nil {
		return nil
	}
	if _, err := s.store.FindIdealParameters(ctx, *g.IdealParameterID); err != nil {
		if !contract.IsNotFound(err) {
			return persistErr("load ideal parameters", err)
		}
		g.IdealParameterID = nil
	}
	return nil
}
