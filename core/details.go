package core

import (
	"context"
	"fmt"

	"github.com/4NDR3-S01/ExposIA/core/algo"
	"github.com/4NDR3-S01/ExposIA/internal/contract"
	"github.com/4NDR3-S01/ExposIA/schema"
)

// checkDetailScore enforces the references of a detail score and that a grading
// scores each criterion at most once. selfID is the id being updated, or zero.
func (s *Service) checkDetailScore(ctx context.Context, d schema.DetailScore, selfID int64) error {
	if !algo.IsFiniteScore(d.Score) {
		return &contract.ValidationError{Field: "score", Reason: "must be a finite number"}
	}
	if _, err := s.store.FindGrading(ctx, d.GradingID); err != nil {
		return persistErr("load grading", err)
	}
	if _, err := s.store.FindCriterion(ctx, d.CriterionID); err != nil {
		return persistErr("load criterion", err)
	}

	siblings, err := s.store.ListDetailScoresByGrading(ctx, d.GradingID)
	if err != nil {
		return persistErr("load detail scores", err)
	}
	for _, other := range siblings {
		if other.ID != selfID && other.CriterionID == d.CriterionID {
			return &contract.ValidationError{
				Field:  "criterionId",
				Reason: fmt.Sprintf("grading %d already scores criterion %d in detail score %d", d.GradingID, d.CriterionID, other.ID),
			}
		}
	}
	return nil
}

// CreateDetailScore stores a new detail score.
func (s *Service) CreateDetailScore(ctx context.Context, d schema.DetailScore) (schema.DetailScore, error) {
	if err := s.checkDetailScore(ctx, d, 0); err != nil {
		return schema.DetailScore{}, err
	}
	d.ID = 0
	saved, err := s.store.SaveDetailScore(ctx, d)
	return saved, persistErr("create detail score", err)
}

// UpdateDetailScore replaces an existing detail score.
func (s *Service) UpdateDetailScore(ctx context.Context, id int64, d schema.DetailScore) (schema.DetailScore, error) {
	if _, err := s.store.FindDetailScore(ctx, id); err != nil {
		return schema.DetailScore{}, persistErr("load detail score", err)
	}
	if err := s.checkDetailScore(ctx, d, id); err != nil {
		return schema.DetailScore{}, err
	}
	d.ID = id
	saved, err := s.store.SaveDetailScore(ctx, d)
	return saved, persistErr("update detail score", err)
}

// GetDetailScore returns one detail score.
func (s *Service) GetDetailScore(ctx context.Context, id int64) (schema.DetailScore, error) {
	d, err := s.store.FindDetailScore(ctx, id)
	return d, persistErr("load detail score", err)
}

// ListDetailScores returns every detail score.
func (s *Service) ListDetailScores(ctx context.Context) ([]schema.DetailScore, error) {
	out, err := s.store.ListDetailScores(ctx)
	return out, persistErr("list detail scores", err)
}

// ListDetailScoresByGrading returns the detail scores of one existing grading.
func (s *Service) ListDetailScoresByGrading(ctx context.Context, gradingID int64) ([]schema.DetailScore, error) {
	if _, err := s.store.FindGrading(ctx, gradingID); err != nil {
		return nil, persistErr("load grading", err)
	}
	out, err := s.store.ListDetailScoresByGrading(ctx, gradingID)
	return out, persistErr("list detail scores", err)
}

// DeleteDetailScore removes one detail score. Deleting an unknown id succeeds.
func (s *Service) DeleteDetailScore(ctx context.Context, id int64) error {
	return persistErr("delete detail score", s.store.DeleteDetailScore(ctx, id))
}
