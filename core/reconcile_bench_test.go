package core

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/4NDR3-S01/ExposIA/internal/store"
	"github.com/4NDR3-S01/ExposIA/schema"
)

func BenchmarkReconcile(b *testing.B) {
	ctx := context.Background()
	st, err := store.NewSQLStore(ctx, schema.SQLiteBackend, filepath.Join(b.TempDir(), "bench.db"))
	if err != nil {
		b.Fatal(err)
	}
	defer func() { _ = st.Close() }()

	svc := NewService(st, WithClock(fixedClock))
	grading, err := st.SaveGrading(ctx, schema.Grading{RecordingID: 1, GlobalScore: 50, Type: schema.ManualGrading, CreatedAt: fixedNow})
	if err != nil {
		b.Fatal(err)
	}
	payload := schema.AIGradingPayload{GlobalScore: 50}
	for i := range 5 {
		c, err := st.SaveCriterion(ctx, schema.Criterion{Name: "criterion", Weight: 1})
		if err != nil {
			b.Fatal(err)
		}
		if _, err := st.SaveDetailScore(ctx, schema.DetailScore{GradingID: grading.ID, CriterionID: c.ID, Score: float64(10 * i)}); err != nil {
			b.Fatal(err)
		}
		payload.Details = append(payload.Details, schema.AIDetailScore{CriterionID: c.ID, Score: 50})
	}

	for b.Loop() {
		if _, err := svc.Reconcile(ctx, grading.ID, payload); err != nil {
			b.Fatal(err)
		}
	}
}
