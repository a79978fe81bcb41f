package core

import (
	"context"
	"fmt"
	"strings"

	"github.com/4NDR3-S01/ExposIA/core/algo"
	"github.com/4NDR3-S01/ExposIA/internal/contract"
	"github.com/4NDR3-S01/ExposIA/schema"
)

func validateCriterion(c schema.Criterion) error {
	if strings.TrimSpace(c.Name) == "" {
		return &contract.ValidationError{Field: "name", Reason: "cannot be empty"}
	}
	if !algo.IsFiniteScore(c.Weight) || c.Weight < 0 {
		return &contract.ValidationError{Field: "weight", Reason: "must be a non-negative finite number"}
	}
	return nil
}

// CreateCriterion stores a new rubric criterion.
func (s *Service) CreateCriterion(ctx context.Context, c schema.Criterion) (schema.Criterion, error) {
	if err := validateCriterion(c); err != nil {
		return schema.Criterion{}, err
	}
	c.ID = 0
	saved, err := s.store.SaveCriterion(ctx, c)
	return saved, persistErr("create criterion", err)
}

// UpdateCriterion replaces an existing criterion.
func (s *Service) UpdateCriterion(ctx context.Context, id int64, c schema.Criterion) (schema.Criterion, error) {
	if _, err := s.store.FindCriterion(ctx, id); err != nil {
		return schema.Criterion{}, persistErr("load criterion", err)
	}
	if err := validateCriterion(c); err != nil {
		return schema.Criterion{}, err
	}
	c.ID = id
	saved, err := s.store.SaveCriterion(ctx, c)
	return saved, persistErr("update criterion", err)
}

// GetCriterion returns one criterion.
func (s *Service) GetCriterion(ctx context.Context, id int64) (schema.Criterion, error) {
	c, err := s.store.FindCriterion(ctx, id)
	return c, persistErr("load criterion", err)
}

// ListCriteria returns every criterion.
func (s *Service) ListCriteria(ctx context.Context) ([]schema.Criterion, error) {
	out, err := s.store.ListCriteria(ctx)
	return out, persistErr("list criteria", err)
}

// DeleteCriterion removes a criterion that no detail score refers to.
func (s *Service) DeleteCriterion(ctx context.Context, id int64) error {
	details, err := s.store.ListDetailScores(ctx)
	if err != nil {
		return persistErr("list detail scores", err)
	}
	for _, d := range details {
		if d.CriterionID == id {
			return &contract.ValidationError{
				Field:  "criterion",
				Reason: fmt.Sprintf("criterion %d is still scored by detail score %d", id, d.ID),
			}
		}
	}
	return persistErr("delete criterion", s.store.DeleteCriterion(ctx, id))
}

func validateIdealParameters(p schema.IdealParameterSet) error {
	if !algo.IsFiniteScore(p.ClarityTarget) {
		return &contract.ValidationError{Field: "clarityTarget", Reason: "must be a finite number"}
	}
	if !algo.IsFiniteScore(p.SpeedTarget) {
		return &contract.ValidationError{Field: "speedTarget", Reason: "must be a finite number"}
	}
	if p.PauseCountTarget < 0 {
		return &contract.ValidationError{Field: "pauseCountTarget", Reason: "cannot be negative"}
	}
	return nil
}

// CreateIdealParameters stores a new ideal parameter set.
func (s *Service) CreateIdealParameters(ctx context.Context, p schema.IdealParameterSet) (schema.IdealParameterSet, error) {
	if err := validateIdealParameters(p); err != nil {
		return schema.IdealParameterSet{}, err
	}
	p.ID = 0
	saved, err := s.store.SaveIdealParameters(ctx, p)
	return saved, persistErr("create ideal parameters", err)
}

// UpdateIdealParameters replaces an existing ideal parameter set.
func (s *Service) UpdateIdealParameters(ctx context.Context, id int64, p schema.IdealParameterSet) (schema.IdealParameterSet, error) {
	if _, err := s.store.FindIdealParameters(ctx, id); err != nil {
		return schema.IdealParameterSet{}, persistErr("load ideal parameters", err)
	}
	if err := validateIdealParameters(p); err != nil {
		return schema.IdealParameterSet{}, err
	}
	p.ID = id
	saved, err := s.store.SaveIdealParameters(ctx, p)
	return saved, persistErr("update ideal parameters", err)
}

// GetIdealParameters returns one ideal parameter set.
func (s *Service) GetIdealParameters(ctx context.Context, id int64) (schema.IdealParameterSet, error) {
	p, err := s.store.FindIdealParameters(ctx, id)
	return p, persistErr("load ideal parameters", err)
}

// ListIdealParameters returns every ideal parameter set.
func (s *Service) ListIdealParameters(ctx context.Context) ([]schema.IdealParameterSet, error) {
	out, err := s.store.ListIdealParameters(ctx)
	return out, persistErr("list ideal parameters", err)
}

// DeleteIdealParameters removes an ideal parameter set. Gradings pointing at it keep the id.
func (s *Service) DeleteIdealParameters(ctx context.Context, id int64) error {
	return persistErr("delete ideal parameters", s.store.DeleteIdealParameters(ctx, id))
}
