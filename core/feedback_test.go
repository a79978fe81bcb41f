package core

import (
	"context"
	"testing"

	"github.com/4NDR3-S01/ExposIA/internal/contract"
	"github.com/4NDR3-S01/ExposIA/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddFeedback(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)
	sd := seedGrading(t, st)
	svc := NewService(st, WithClock(fixedClock))

	_, err := svc.AddFeedback(ctx, schema.FeedbackEntry{GradingID: sd.grading.ID, Observation: ""})
	assert.True(t, contract.IsValidation(err))
	_, err = svc.AddFeedback(ctx, schema.FeedbackEntry{GradingID: 404, Observation: "lost"})
	assert.True(t, contract.IsNotFound(err))

	for _, obs := range []string{"first", "second"} {
		_, err := svc.AddFeedback(ctx, schema.FeedbackEntry{GradingID: sd.grading.ID, Observation: obs, Author: "reviewer"})
		require.NoError(t, err)
	}

	entries, err := svc.ListFeedbackByGrading(ctx, sd.grading.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, "first", entries[0].Observation)
	assert.Equal(t, "second", entries[1].Observation)

	got, err := svc.GetFeedback(ctx, entries[1].ID)
	require.NoError(t, err)
	assert.Equal(t, "reviewer", got.Author)

	all, err := svc.ListFeedback(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)

	_, err = svc.ListFeedbackByGrading(ctx, 404)
	assert.True(t, contract.IsNotFound(err))
	_, err = svc.GetFeedback(ctx, 404)
	assert.True(t, contract.IsNotFound(err))
}
