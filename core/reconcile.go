package core

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/4NDR3-S01/ExposIA/core/algo"
	"github.com/4NDR3-S01/ExposIA/internal/contract"
	"github.com/4NDR3-S01/ExposIA/schema"
)

// Reconcile merges an AI grading into the stored grading identified by gradingID.
//
// Every AI detail is averaged into the first stored detail for the same criterion;
// entries without a stored counterpart are skipped. Merged values are checked before
// the first write, then each touched detail is persisted in payload order. The global
// score becomes the mean of the stored and AI values, feedback is appended in payload
// order, and a grading.ai.applied notification is attempted last. Writes are not
// transactional: a failure part way leaves the earlier writes in place.
func (s *Service) Reconcile(ctx context.Context, gradingID int64, payload schema.AIGradingPayload) (agg schema.GradingAggregate, err error) {
	start := time.Now()
	defer func() { s.observer.RecordReconcile(time.Since(start), err) }()

	if err := validateAIPayload(gradingID, payload); err != nil {
		return schema.GradingAggregate{}, err
	}

	grading, err := s.store.FindGrading(ctx, gradingID)
	if err != nil {
		return schema.GradingAggregate{}, persistErr("load grading", err)
	}
	details, err := s.store.ListDetailScoresByGrading(ctx, gradingID)
	if err != nil {
		return schema.GradingAggregate{}, persistErr("load detail scores", err)
	}

	var touched []int
	for _, ai := range payload.Details {
		i := algo.FindDetailIndex(details, ai.CriterionID)
		if i < 0 {
			continue
		}
		details[i].Score = algo.MergeDetailScore(details[i].Score, ai.Score)
		if ai.Comment != nil && *ai.Comment != "" {
			details[i].Comment = *ai.Comment
		}
		if !slices.Contains(touched, i) {
			touched = append(touched, i)
		}
	}
	grading.GlobalScore = algo.MergeGlobalScore(grading.GlobalScore, payload.GlobalScore)
	if payload.GlobalObservation != nil && *payload.GlobalObservation != "" {
		grading.GlobalObservation = *payload.GlobalObservation
	}
	if err := validateMerged(grading, details, touched); err != nil {
		return schema.GradingAggregate{}, err
	}

	for _, i := range touched {
		if _, err := s.store.SaveDetailScore(ctx, details[i]); err != nil {
			return schema.GradingAggregate{}, persistErr(fmt.Sprintf("save detail score %d", details[i].ID), err)
		}
	}
	grading, err = s.store.SaveGrading(ctx, grading)
	if err != nil {
		return schema.GradingAggregate{}, persistErr("save grading", err)
	}

	appliedAt := s.now()
	for _, fb := range payload.Feedback {
		entry := schema.FeedbackEntry{
			GradingID:   grading.ID,
			Observation: fb.Observation,
			Author:      fb.Author,
			CreatedAt:   appliedAt,
		}
		if _, err := s.store.SaveFeedback(ctx, entry); err != nil {
			return schema.GradingAggregate{}, persistErr("save feedback", err)
		}
	}

	reloaded, err := s.store.ListDetailScoresByGrading(ctx, grading.ID)
	if err != nil {
		return schema.GradingAggregate{}, persistErr("reload detail scores", err)
	}

	s.notifier.Notify(ctx, schema.EventGradingAIApplied, map[string]any{
		"id":           grading.ID,
		"recordingId":  grading.RecordingID,
		"finalScore":   grading.GlobalScore,
		"detailsCount": len(payload.Details),
	})

	if reloaded == nil {
		reloaded = []schema.DetailScore{}
	}
	return schema.GradingAggregate{Grading: grading, Details: reloaded}, nil
}

// validateMerged rejects merged scores that left the finite range, which only happens
// when a stored score was already unusable.
func validateMerged(grading schema.Grading, details []schema.DetailScore, touched []int) error {
	for _, i := range touched {
		if !algo.IsFiniteScore(details[i].Score) {
			return &contract.ValidationError{
				Field:  fmt.Sprintf("details[%d].score", details[i].ID),
				Reason: "merged score is not a finite number",
			}
		}
	}
	if !algo.IsFiniteScore(grading.GlobalScore) {
		return &contract.ValidationError{Field: "globalScore", Reason: "merged score is not a finite number"}
	}
	return nil
}

// validateAIPayload rejects payloads that cannot be merged, before anything is read or written.
func validateAIPayload(gradingID int64, payload schema.AIGradingPayload) error {
	if payload.GradingID != 0 && payload.GradingID != gradingID {
		return &contract.ValidationError{
			Field:  "gradingId",
			Reason: fmt.Sprintf("payload targets grading %d but %d was requested", payload.GradingID, gradingID),
		}
	}
	if !algo.IsFiniteScore(payload.GlobalScore) {
		return &contract.ValidationError{Field: "globalScore", Reason: "must be a finite number"}
	}
	for i, d := range payload.Details {
		if !algo.IsFiniteScore(d.Score) {
			return &contract.ValidationError{Field: fmt.Sprintf("details[%d].score", i), Reason: "must be a finite number"}
		}
	}
	return nil
}
