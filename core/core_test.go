package core

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/4NDR3-S01/ExposIA/internal/store"
	"github.com/4NDR3-S01/ExposIA/schema"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

func newTestStore(t *testing.T) *store.SQLStore {
	t.Helper()
	s, err := store.NewSQLStore(context.Background(), schema.SQLiteBackend, filepath.Join(t.TempDir(), "grading.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	return s
}

// seed stores one criterion and one grading scored 70 with a detail of 60 on that criterion.
type seed struct {
	criterion schema.Criterion
	grading   schema.Grading
	detail    schema.DetailScore
}

func seedGrading(t *testing.T, s *store.SQLStore) seed {
	t.Helper()
	ctx := context.Background()

	c, err := s.SaveCriterion(ctx, schema.Criterion{Name: "Clarity", Description: "speaks clearly", Weight: 1})
	require.NoError(t, err)
	g, err := s.SaveGrading(ctx, schema.Grading{
		RecordingID:       100,
		UserID:            schema.Int64Ptr(8),
		GlobalScore:       70,
		GlobalObservation: "manual review",
		Type:              schema.ManualGrading,
		CreatedAt:         fixedNow.Add(-24 * time.Hour),
	})
	require.NoError(t, err)
	d, err := s.SaveDetailScore(ctx, schema.DetailScore{GradingID: g.ID, CriterionID: c.ID, Score: 60, Comment: "ok"})
	require.NoError(t, err)
	return seed{criterion: c, grading: g, detail: d}
}

type recordingObserver struct {
	mu         sync.Mutex
	reconciles []error
}

func (o *recordingObserver) RecordReconcile(_ time.Duration, err error) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.reconciles = append(o.reconciles, err)
}

func (o *recordingObserver) RecordNotification(string, error) {}
