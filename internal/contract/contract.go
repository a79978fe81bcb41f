// Package contract provides interfaces and shared utilities for the grading service's internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/4NDR3-S01/ExposIA/schema"
)

// GradingStore persists gradings.
type GradingStore interface {
	SaveGrading(ctx context.Context, g schema.Grading) (schema.Grading, error)
	FindGrading(ctx context.Context, id int64) (schema.Grading, error)
	ListGradings(ctx context.Context) ([]schema.Grading, error)
	// DeleteGrading removes the grading with its detail scores and feedback.
	DeleteGrading(ctx context.Context, id int64) error
}

// DetailScoreStore persists per-criterion detail scores.
type DetailScoreStore interface {
	SaveDetailScore(ctx context.Context, d schema.DetailScore) (schema.DetailScore, error)
	FindDetailScore(ctx context.Context, id int64) (schema.DetailScore, error)
	ListDetailScores(ctx context.Context) ([]schema.DetailScore, error)
	ListDetailScoresByGrading(ctx context.Context, gradingID int64) ([]schema.DetailScore, error)
	DeleteDetailScore(ctx context.Context, id int64) error
}

// FeedbackStore persists feedback entries. Entries are append-only.
type FeedbackStore interface {
	SaveFeedback(ctx context.Context, f schema.FeedbackEntry) (schema.FeedbackEntry, error)
	FindFeedback(ctx context.Context, id int64) (schema.FeedbackEntry, error)
	ListFeedback(ctx context.Context) ([]schema.FeedbackEntry, error)
	ListFeedbackByGrading(ctx context.Context, gradingID int64) ([]schema.FeedbackEntry, error)
}

// CriterionStore persists rubric criteria.
type CriterionStore interface {
	SaveCriterion(ctx context.Context, c schema.Criterion) (schema.Criterion, error)
	FindCriterion(ctx context.Context, id int64) (schema.Criterion, error)
	ListCriteria(ctx context.Context) ([]schema.Criterion, error)
	DeleteCriterion(ctx context.Context, id int64) error
}

// IdealParameterStore persists ideal parameter sets.
type IdealParameterStore interface {
	SaveIdealParameters(ctx context.Context, p schema.IdealParameterSet) (schema.IdealParameterSet, error)
	FindIdealParameters(ctx context.Context, id int64) (schema.IdealParameterSet, error)
	ListIdealParameters(ctx context.Context) ([]schema.IdealParameterSet, error)
	DeleteIdealParameters(ctx context.Context, id int64) error
}

// Store combines every persistence port behind one handle.
// This allows the whole storage layer to be mocked for testing.
type Store interface {
	GradingStore
	DetailScoreStore
	FeedbackStore
	CriterionStore
	IdealParameterStore
	GetStatus(ctx context.Context) (schema.StoreStatus, error)
	Close() error
}

// StoreManager defines the interface for managing the grading store.
type StoreManager interface {
	GetStore() Store
}

// Notifier delivers best-effort event notifications.
// Implementations must swallow every failure.
type Notifier interface {
	Notify(ctx context.Context, event string, payload map[string]any)
}

// Observer records operational measurements.
type Observer interface {
	RecordReconcile(elapsed time.Duration, err error)
	RecordNotification(event string, err error)
}
