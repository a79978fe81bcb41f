// Package algo has the pure scoring math used when reconciling gradings.
package algo

import (
	"math"
	"sort"

	"github.com/4NDR3-S01/ExposIA/schema"
)

// MergeDetailScore averages a stored detail score with an AI score and rounds
// the mean to the nearest integer, with halves rounded away from zero.
func MergeDetailScore(existing, ai float64) float64 {
	return math.Round(mean(existing, ai))
}

// MergeGlobalScore averages the stored global score with the AI global score.
// The result is not rounded.
func MergeGlobalScore(existing, ai float64) float64 {
	return mean(existing, ai)
}

// mean halves each operand only when the sum leaves the float64 range.
func mean(a, b float64) float64 {
	if m := (a + b) / 2; !math.IsInf(m, 0) {
		return m
	}
	return a/2 + b/2
}

// FindDetailIndex returns the index of the first detail scoring criterionID, or -1.
func FindDetailIndex(details []schema.DetailScore, criterionID int64) int {
	for i := range details {
		if details[i].CriterionID == criterionID {
			return i
		}
	}
	return -1
}

// IsFiniteScore reports whether a score can take part in arithmetic.
func IsFiniteScore(score float64) bool {
	return !math.IsNaN(score) && !math.IsInf(score, 0)
}

// WeightedScore returns the weight-normalized mean of the detail scores.
// Details whose criterion is unknown or has a non-positive weight are ignored.
// The second result is false when no detail carries weight.
func WeightedScore(details []schema.DetailScore, criteria []schema.Criterion) (float64, bool) {
	weights := make(map[int64]float64, len(criteria))
	for _, c := range criteria {
		weights[c.ID] = c.Weight
	}

	var sum, total float64
	for _, d := range details {
		w, ok := weights[d.CriterionID]
		if !ok || w <= 0 {
			continue
		}
		sum += d.Score * w
		total += w
	}
	if total == 0 {
		return 0, false
	}
	return sum / total, true
}

// RankGradings sorts gradings by global score in descending order
// and returns the top 'limit' gradings. A non-positive limit keeps all of them.
func RankGradings(gradings []schema.Grading, limit int) []schema.Grading {
	sort.SliceStable(gradings, func(i, j int) bool {
		return gradings[i].GlobalScore > gradings[j].GlobalScore
	})
	if limit > 0 && len(gradings) > limit {
		return gradings[:limit]
	}
	return gradings
}
