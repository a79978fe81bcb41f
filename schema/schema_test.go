package schema

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAIGradingPayloadDecode(t *testing.T) {
	raw := `{
		"gradingId": 7,
		"globalScore": 80.5,
		"globalObservation": null,
		"details": [{"criterionId": 1, "score": 90, "comment": "clear"}, {"criterionId": 2, "score": 40, "comment": null}],
		"feedback": null
	}`

	var p AIGradingPayload
	require.NoError(t, json.Unmarshal([]byte(raw), &p))

	assert.Equal(t, int64(7), p.GradingID)
	assert.Equal(t, 80.5, p.GlobalScore)
	assert.Nil(t, p.GlobalObservation)
	require.Len(t, p.Details, 2)
	require.NotNil(t, p.Details[0].Comment)
	assert.Equal(t, "clear", *p.Details[0].Comment)
	assert.Nil(t, p.Details[1].Comment)
	assert.Nil(t, p.Feedback)
}

func TestGradingAggregateDetailFor(t *testing.T) {
	agg := GradingAggregate{
		Details: []DetailScore{
			{ID: 1, CriterionID: 3, Score: 50},
			{ID: 2, CriterionID: 3, Score: 70},
			{ID: 3, CriterionID: 4, Score: 10},
		},
	}

	d, ok := agg.DetailFor(3)
	assert.True(t, ok)
	assert.Equal(t, int64(1), d.ID, "first match wins")

	_, ok = agg.DetailFor(99)
	assert.False(t, ok)
}

func TestGradingIsAutomated(t *testing.T) {
	assert.True(t, Grading{}.IsAutomated())
	assert.False(t, Grading{UserID: Int64Ptr(4)}.IsAutomated())
}
