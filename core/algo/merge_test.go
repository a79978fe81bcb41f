package algo

import (
	"math"
	"testing"

	"github.com/4NDR3-S01/ExposIA/schema"
	"github.com/stretchr/testify/assert"
)

func TestMergeDetailScore(t *testing.T) {
	tests := []struct {
		name     string
		existing float64
		ai       float64
		expected float64
	}{
		{"exact mean", 60, 90, 75},
		{"half rounds up", 60, 61, 61},
		{"below half rounds down", 60, 60.8, 60},
		{"negative half rounds away from zero", -1, -2, -2},
		{"zero", 0, 0, 0},
		{"full marks", 100, 100, 100},
		{"fractional inputs", 72.4, 73.7, 73},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, MergeDetailScore(tt.existing, tt.ai))
		})
	}
}

func TestMergeGlobalScore(t *testing.T) {
	assert.Equal(t, 75.0, MergeGlobalScore(70, 80))
	assert.Equal(t, 72.5, MergeGlobalScore(70, 75))
	assert.InDelta(t, 50.05, MergeGlobalScore(50, 50.1), 1e-9)
}

func TestMergeNearFloatLimits(t *testing.T) {
	assert.Equal(t, math.MaxFloat64, MergeGlobalScore(math.MaxFloat64, math.MaxFloat64))
	assert.Equal(t, -math.MaxFloat64, MergeGlobalScore(-math.MaxFloat64, -math.MaxFloat64))
	assert.Equal(t, math.MaxFloat64, MergeDetailScore(math.MaxFloat64, math.MaxFloat64))
	assert.Equal(t, 0.0, MergeGlobalScore(math.MaxFloat64, -math.MaxFloat64))
}

func TestMergeIsNotIdempotent(t *testing.T) {
	once := MergeDetailScore(60, 90)
	twice := MergeDetailScore(once, 90)
	assert.Equal(t, 75.0, once)
	assert.Equal(t, 83.0, twice)

	g1 := MergeGlobalScore(70, 80)
	g2 := MergeGlobalScore(g1, 80)
	assert.Equal(t, 77.5, g2)
}

func TestFindDetailIndex(t *testing.T) {
	details := []schema.DetailScore{
		{ID: 1, CriterionID: 5},
		{ID: 2, CriterionID: 6},
		{ID: 3, CriterionID: 5},
	}
	assert.Equal(t, 0, FindDetailIndex(details, 5), "first match wins")
	assert.Equal(t, 1, FindDetailIndex(details, 6))
	assert.Equal(t, -1, FindDetailIndex(details, 7))
	assert.Equal(t, -1, FindDetailIndex(nil, 5))
}

func TestIsFiniteScore(t *testing.T) {
	assert.True(t, IsFiniteScore(0))
	assert.True(t, IsFiniteScore(-12.5))
	assert.False(t, IsFiniteScore(math.NaN()))
	assert.False(t, IsFiniteScore(math.Inf(1)))
	assert.False(t, IsFiniteScore(math.Inf(-1)))
}

func TestWeightedScore(t *testing.T) {
	criteria := []schema.Criterion{
		{ID: 1, Weight: 3},
		{ID: 2, Weight: 1},
		{ID: 3, Weight: 0},
	}
	details := []schema.DetailScore{
		{CriterionID: 1, Score: 80},
		{CriterionID: 2, Score: 40},
		{CriterionID: 3, Score: 0},
		{CriterionID: 9, Score: 100},
	}

	score, ok := WeightedScore(details, criteria)
	assert.True(t, ok)
	assert.Equal(t, 70.0, score)

	_, ok = WeightedScore(details[2:], criteria)
	assert.False(t, ok)
}

func TestRankGradings(t *testing.T) {
	gradings := []schema.Grading{
		{ID: 1, GlobalScore: 50},
		{ID: 2, GlobalScore: 90},
		{ID: 3, GlobalScore: 70},
		{ID: 4, GlobalScore: 90},
	}

	ranked := RankGradings(gradings, 3)
	assert.Len(t, ranked, 3)
	assert.Equal(t, []int64{2, 4, 3}, []int64{ranked[0].ID, ranked[1].ID, ranked[2].ID})

	all := RankGradings([]schema.Grading{{ID: 1, GlobalScore: 1}, {ID: 2, GlobalScore: 2}}, 0)
	assert.Len(t, all, 2)
	assert.Equal(t, int64(2), all[0].ID)
}
