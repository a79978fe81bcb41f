package store

import (
	"context"

	"github.com/4NDR3-S01/ExposIA/schema"
)

var (
	criterionColumns       = []string{"name", "description", "weight"}
	criterionSelectColumns = append([]string{"id"}, criterionColumns...)

	idealColumns       = []string{"clarity_target", "speed_target", "pause_count_target", "extra_params"}
	idealSelectColumns = append([]string{"id"}, idealColumns...)
)

func scanCriterion(row rowScanner) (schema.Criterion, error) {
	var c schema.Criterion
	err := row.Scan(&c.ID, &c.Name, &c.Description, &c.Weight)
	return c, err
}

func scanIdealParameters(row rowScanner) (schema.IdealParameterSet, error) {
	var p schema.IdealParameterSet
	err := row.Scan(&p.ID, &p.ClarityTarget, &p.SpeedTarget, &p.PauseCountTarget, &p.Extra)
	return p, err
}

// SaveCriterion inserts the criterion when its id is zero and replaces it otherwise.
func (s *SQLStore) SaveCriterion(ctx context.Context, c schema.Criterion) (schema.Criterion, error) {
	args := []any{c.Name, c.Description, c.Weight}
	if c.ID == 0 {
		id, err := s.insert(ctx, criteriaTable, criterionColumns, args...)
		if err != nil {
			return schema.Criterion{}, err
		}
		c.ID = id
		return c, nil
	}
	if err := s.update(ctx, criteriaTable, c.ID, criterionColumns, args...); err != nil {
		return schema.Criterion{}, err
	}
	return c, nil
}

// FindCriterion loads one criterion by id.
func (s *SQLStore) FindCriterion(ctx context.Context, id int64) (schema.Criterion, error) {
	row := s.db.QueryRowContext(ctx, s.selectQuery(criteriaTable, criterionSelectColumns, "id = ?"), id)
	c, err := scanCriterion(row)
	if err != nil {
		return schema.Criterion{}, notFoundOr(err, "criterion", id)
	}
	return c, nil
}

// ListCriteria returns every criterion ordered by id.
func (s *SQLStore) ListCriteria(ctx context.Context) ([]schema.Criterion, error) {
	var out []schema.Criterion
	err := s.queryAll(ctx, criteriaTable, criterionSelectColumns, "", func(row rowScanner) error {
		c, err := scanCriterion(row)
		if err != nil {
			return err
		}
		out = append(out, c)
		return nil
	})
	return out, err
}

// DeleteCriterion removes one criterion. Deleting a missing row is not an error.
func (s *SQLStore) DeleteCriterion(ctx context.Context, id int64) error {
	return s.deleteWhere(ctx, s.db, criteriaTable, "id", id)
}

// SaveIdealParameters inserts the parameter set when its id is zero and replaces it otherwise.
func (s *SQLStore) SaveIdealParameters(ctx context.Context, p schema.IdealParameterSet) (schema.IdealParameterSet, error) {
	args := []any{p.ClarityTarget, p.SpeedTarget, p.PauseCountTarget, p.Extra}
	if p.ID == 0 {
		id, err := s.insert(ctx, idealParametersTable, idealColumns, args...)
		if err != nil {
			return schema.IdealParameterSet{}, err
		}
		p.ID = id
		return p, nil
	}
	if err := s.update(ctx, idealParametersTable, p.ID, idealColumns, args...); err != nil {
		return schema.IdealParameterSet{}, err
	}
	return p, nil
}

// FindIdealParameters loads one ideal parameter set by id.
func (s *SQLStore) FindIdealParameters(ctx context.Context, id int64) (schema.IdealParameterSet, error) {
	row := s.db.QueryRowContext(ctx, s.selectQuery(idealParametersTable, idealSelectColumns, "id = ?"), id)
	p, err := scanIdealParameters(row)
	if err != nil {
		return schema.IdealParameterSet{}, notFoundOr(err, "ideal parameters", id)
	}
	return p, nil
}

// ListIdealParameters returns every ideal parameter set ordered by id.
func (s *SQLStore) ListIdealParameters(ctx context.Context) ([]schema.IdealParameterSet, error) {
	var out []schema.IdealParameterSet
	err := s.queryAll(ctx, idealParametersTable, idealSelectColumns, "", func(row rowScanner) error {
		p, err := scanIdealParameters(row)
		if err != nil {
			return err
		}
		out = append(out, p)
		return nil
	})
	return out, err
}

// DeleteIdealParameters removes one ideal parameter set. Deleting a missing row is not an error.
func (s *SQLStore) DeleteIdealParameters(ctx context.Context, id int64) error {
	return s.deleteWhere(ctx, s.db, idealParametersTable, "id", id)
}
