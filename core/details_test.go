package core

import (
	"context"
	"testing"

	"github.com/4NDR3-S01/ExposIA/internal/contract"
	"github.com/4NDR3-S01/ExposIA/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetailScoreCRUD(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	sd := seedGrading(t, st)
	svc := NewService(st)

	other, err := svc.CreateCriterion(ctx, schema.Criterion{Name: "Pace", Weight: 0.5})
	require.NoError(t, err)

	t.Run("create", func(t *testing.T) {
		d, err := svc.CreateDetailScore(ctx, schema.DetailScore{
			GradingID: sd.grading.ID, CriterionID: other.ID, Score: 40, SlideID: schema.Int64Ptr(2),
		})
		require.NoError(t, err)
		assert.NotZero(t, d.ID)

		byGrading, err := svc.ListDetailScoresByGrading(ctx, sd.grading.ID)
		require.NoError(t, err)
		assert.Len(t, byGrading, 2)
	})

	t.Run("duplicate criterion rejected", func(t *testing.T) {
		_, err := svc.CreateDetailScore(ctx, schema.DetailScore{GradingID: sd.grading.ID, CriterionID: sd.criterion.ID, Score: 10})
		assert.True(t, contract.IsValidation(err))
	})

	t.Run("missing references", func(t *testing.T) {
		_, err := svc.CreateDetailScore(ctx, schema.DetailScore{GradingID: 999, CriterionID: sd.criterion.ID})
		assert.True(t, contract.IsNotFound(err))
		_, err = svc.CreateDetailScore(ctx, schema.DetailScore{GradingID: sd.grading.ID, CriterionID: 999})
		assert.True(t, contract.IsNotFound(err))
		_, err = svc.ListDetailScoresByGrading(ctx, 999)
		assert.True(t, contract.IsNotFound(err))
	})

	t.Run("update keeps its own criterion", func(t *testing.T) {
		d := sd.detail
		d.Score = 95
		d.Comment = "excellent"
		updated, err := svc.UpdateDetailScore(ctx, sd.detail.ID, d)
		require.NoError(t, err)
		assert.Equal(t, 95.0, updated.Score)

		got, err := svc.GetDetailScore(ctx, sd.detail.ID)
		require.NoError(t, err)
		assert.Equal(t, "excellent", got.Comment)

		d.CriterionID = other.ID
		_, err = svc.UpdateDetailScore(ctx, sd.detail.ID, d)
		assert.True(t, contract.IsValidation(err), "moving onto an already scored criterion is rejected")

		_, err = svc.UpdateDetailScore(ctx, 999, d)
		assert.True(t, contract.IsNotFound(err))
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, svc.DeleteDetailScore(ctx, sd.detail.ID))
		require.NoError(t, svc.DeleteDetailScore(ctx, sd.detail.ID))
		_, err := svc.GetDetailScore(ctx, sd.detail.ID)
		assert.True(t, contract.IsNotFound(err))

		all, err := svc.ListDetailScores(ctx)
		require.NoError(t, err)
		assert.Len(t, all, 1)
	})
}
