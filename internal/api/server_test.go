package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/4NDR3-S01/ExposIA/core"
	"github.com/4NDR3-S01/ExposIA/internal/metrics"
	"github.com/4NDR3-S01/ExposIA/internal/store"
	"github.com/4NDR3-S01/ExposIA/schema"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2024, 9, 1, 12, 0, 0, 0, time.UTC)

func newTestRouter(t *testing.T) (*gin.Engine, *prometheus.Registry) {
	t.Helper()
	st, err := store.NewSQLStore(context.Background(), schema.SQLiteBackend, filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })

	reg := prometheus.NewRegistry()
	observer, err := metrics.NewPrometheusObserver("grading", reg)
	require.NoError(t, err)

	svc := core.NewService(st,
		core.WithObserver(observer),
		core.WithClock(func() time.Time { return fixedNow }),
	)
	return NewRouter(svc, Options{Gatherer: reg}), reg
}

func doJSON(t *testing.T, router http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	switch b := body.(type) {
	case nil:
		reader = bytes.NewReader(nil)
	case string:
		reader = bytes.NewReader([]byte(b))
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestHealthz(t *testing.T) {
	router, _ := newTestRouter(t)
	rec := doJSON(t, router, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestReconcileFlow(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/criteria", schema.Criterion{Name: "Clarity", Weight: 1})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	criterion := decode[schema.Criterion](t, rec)

	rec = doJSON(t, router, http.MethodPost, "/api/gradings", schema.Grading{
		RecordingID: 100,
		UserID:      schema.Int64Ptr(8),
		GlobalScore: 70,
		Type:        schema.ManualGrading,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	grading := decode[schema.Grading](t, rec)
	assert.True(t, fixedNow.Equal(grading.CreatedAt))

	rec = doJSON(t, router, http.MethodPost, "/api/details", schema.DetailScore{
		GradingID:   grading.ID,
		CriterionID: criterion.ID,
		Score:       60,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	payload := schema.AIGradingPayload{
		GradingID:   grading.ID,
		GlobalScore: 80,
		Details:     []schema.AIDetailScore{{CriterionID: criterion.ID, Score: 90, Comment: schema.StringPtr("clear")}},
		Feedback:    []schema.AIFeedbackEntry{{Observation: "Good tone", Author: "ai"}},
	}
	rec = doJSON(t, router, http.MethodPost, "/api/gradings/1/ai", payload)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	agg := decode[schema.GradingAggregate](t, rec)
	assert.Equal(t, 75.0, agg.GlobalScore)
	require.Len(t, agg.Details, 1)
	assert.Equal(t, 75.0, agg.Details[0].Score)
	assert.Equal(t, "clear", agg.Details[0].Comment)

	rec = doJSON(t, router, http.MethodGet, "/api/gradings/1/feedback", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	feedback := decode[[]schema.FeedbackEntry](t, rec)
	require.Len(t, feedback, 1)
	assert.Equal(t, "Good tone", feedback[0].Observation)
	assert.True(t, fixedNow.Equal(feedback[0].CreatedAt))

	rec = doJSON(t, router, http.MethodGet, "/api/gradings/1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	full := decode[schema.GradingAggregate](t, rec)
	assert.Len(t, full.Feedback, 1)

	rec = doJSON(t, router, http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `grading_reconciliations_total{result="ok"} 1`)
}

func TestErrorMapping(t *testing.T) {
	router, _ := newTestRouter(t)

	tests := []struct {
		name   string
		method string
		path   string
		body   any
		status int
		errMsg string
	}{
		{name: "missing grading", method: http.MethodGet, path: "/api/gradings/999", status: http.StatusNotFound, errMsg: "grading 999 not found"},
		{name: "reconcile missing grading", method: http.MethodPost, path: "/api/gradings/999/ai", body: schema.AIGradingPayload{GlobalScore: 10}, status: http.StatusNotFound},
		{name: "bad id", method: http.MethodGet, path: "/api/gradings/abc", status: http.StatusBadRequest, errMsg: "invalid id"},
		{name: "malformed json", method: http.MethodPost, path: "/api/gradings", body: `{"recordingId":`, status: http.StatusBadRequest, errMsg: "invalid request body"},
		{name: "invalid criterion", method: http.MethodPost, path: "/api/criteria", body: schema.Criterion{Weight: 1}, status: http.StatusBadRequest, errMsg: "invalid name"},
		{name: "invalid grading type", method: http.MethodPost, path: "/api/gradings", body: map[string]any{"recordingId": 1, "type": "peer"}, status: http.StatusBadRequest},
		{name: "feedback for missing grading", method: http.MethodPost, path: "/api/feedback", body: schema.FeedbackEntry{GradingID: 42, Observation: "hi", Author: "x"}, status: http.StatusNotFound},
		{name: "missing feedback", method: http.MethodGet, path: "/api/feedback/7", status: http.StatusNotFound},
		{name: "missing ideal parameters", method: http.MethodPut, path: "/api/ideal-parameters/3", body: schema.IdealParameterSet{ClarityTarget: 1}, status: http.StatusNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, router, tt.method, tt.path, tt.body)
			assert.Equal(t, tt.status, rec.Code, rec.Body.String())
			body := decode[map[string]string](t, rec)
			assert.NotEmpty(t, body["error"])
			if tt.errMsg != "" {
				assert.Contains(t, body["error"], tt.errMsg)
			}
		})
	}
}

func TestDeleteGrading(t *testing.T) {
	router, _ := newTestRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/api/gradings", schema.Grading{RecordingID: 5, GlobalScore: 40})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	grading := decode[schema.Grading](t, rec)
	assert.Equal(t, schema.ManualGrading, grading.Type)

	rec = doJSON(t, router, http.MethodDelete, "/api/gradings/1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// idempotent
	rec = doJSON(t, router, http.MethodDelete, "/api/gradings/1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/api/gradings/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestEmptyListsAreArrays(t *testing.T) {
	router, _ := newTestRouter(t)
	for _, path := range []string{"/api/gradings", "/api/criteria", "/api/ideal-parameters", "/api/details", "/api/feedback"} {
		rec := doJSON(t, router, http.MethodGet, path, nil)
		assert.Equal(t, http.StatusOK, rec.Code, path)
		assert.Equal(t, "[]", strings.TrimSpace(rec.Body.String()), path)
	}
}

func TestStoreFailureIsInternalError(t *testing.T) {
	ms := &store.MockStore{}
	ms.On("ListGradings", mock.Anything).Return(nil, errors.New("connection reset"))

	router := NewRouter(core.NewService(ms), Options{Gatherer: prometheus.NewRegistry()})
	rec := doJSON(t, router, http.MethodGet, "/api/gradings", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	body := decode[map[string]string](t, rec)
	assert.Contains(t, body["error"], "connection reset")
	ms.AssertExpectations(t)
}
