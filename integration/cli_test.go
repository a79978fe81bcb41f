//go:build basic

// Package integration contains integration tests for the grading CLI.
// These tests are excluded from normal test runs due to build tags.
// To run these tests: go test -tags basic ./integration
package integration

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"testing"

	"github.com/4NDR3-S01/ExposIA/internal/store"
	"github.com/4NDR3-S01/ExposIA/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestReconcileCommand seeds a SQLite store, reconciles through the CLI and checks the
// stored result together with the notification that was sent.
func TestReconcileCommand(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	dbPath := filepath.Join(dir, "grading.db")

	st, err := store.NewSQLStore(ctx, schema.SQLiteBackend, dbPath)
	require.NoError(t, err)
	c, err := st.SaveCriterion(ctx, schema.Criterion{Name: "Clarity", Weight: 1})
	require.NoError(t, err)
	g, err := st.SaveGrading(ctx, schema.Grading{RecordingID: 100, UserID: schema.Int64Ptr(8), GlobalScore: 70, Type: schema.ManualGrading})
	require.NoError(t, err)
	_, err = st.SaveDetailScore(ctx, schema.DetailScore{GradingID: g.ID, CriterionID: c.ID, Score: 60})
	require.NoError(t, err)
	require.NoError(t, st.Close())

	var (
		mu     sync.Mutex
		bodies [][]byte
	)
	listener := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		bodies = append(bodies, body)
		mu.Unlock()
		w.WriteHeader(http.StatusOK)
	}))
	defer listener.Close()

	payloadPath := filepath.Join(dir, "ai.json")
	payload := `{"globalScore": 80, "details": [{"criterionId": ` + strconv.FormatInt(c.ID, 10) + `, "score": 90, "comment": "clear"}], "feedback": [{"observation": "Good tone", "author": "ai"}]}`
	require.NoError(t, os.WriteFile(payloadPath, []byte(payload), 0o644))

	t.Setenv("GRADING_DB_BACKEND", "sqlite")
	t.Setenv("GRADING_DB_CONNECT", dbPath)
	t.Setenv("GRADING_NOTIFY_URL", listener.URL)

	out, err := runGradingCommand(t, "reconcile", strconv.FormatInt(g.ID, 10), "--file", payloadPath, "--output", "json")
	require.NoError(t, err)

	var agg schema.GradingAggregate
	require.NoError(t, json.Unmarshal([]byte(out), &agg), out)
	assert.Equal(t, 75.0, agg.GlobalScore)
	require.Len(t, agg.Details, 1)
	assert.Equal(t, 75.0, agg.Details[0].Score)

	mu.Lock()
	require.Len(t, bodies, 1)
	var envelope struct {
		Event   string         `json:"event"`
		Payload map[string]any `json:"payload"`
	}
	require.NoError(t, json.Unmarshal(bodies[0], &envelope))
	mu.Unlock()
	assert.Equal(t, schema.EventGradingAIApplied, envelope.Event)
	assert.Equal(t, float64(1), envelope.Payload["detailsCount"])

	out, err = runGradingCommand(t, "show", strconv.FormatInt(g.ID, 10))
	require.NoError(t, err)
	assert.Contains(t, out, "Good tone")

	_, err = runGradingCommand(t, "export", "--output-file", filepath.Join(dir, "backup"))
	require.NoError(t, err)
	assert.FileExists(t, filepath.Join(dir, "backup.gradings.parquet"))

	_, err = runGradingCommand(t, "reconcile", "999", "--file", payloadPath)
	assert.Error(t, err)
}
