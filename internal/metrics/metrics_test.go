package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/4NDR3-S01/ExposIA/internal/contract"
	promclient "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPrometheusObserverRecords(t *testing.T) {
	reg := promclient.NewRegistry()
	o, err := NewPrometheusObserver("", reg)
	require.NoError(t, err)

	o.RecordReconcile(10*time.Millisecond, nil)
	o.RecordReconcile(5*time.Millisecond, &contract.NotFoundError{Entity: "grading", ID: 1})
	o.RecordReconcile(5*time.Millisecond, &contract.ValidationError{Field: "score", Reason: "nan"})
	o.RecordReconcile(5*time.Millisecond, errors.New("boom"))
	o.RecordNotification("grading.created", nil)
	o.RecordNotification("grading.created", errors.New("refused"))
	o.RecordNotification("grading.created", errors.New("refused"))

	assert.Equal(t, 1.0, testutil.ToFloat64(o.reconciliations.WithLabelValues(ResultOK)))
	assert.Equal(t, 1.0, testutil.ToFloat64(o.reconciliations.WithLabelValues(ResultNotFound)))
	assert.Equal(t, 1.0, testutil.ToFloat64(o.reconciliations.WithLabelValues(ResultInvalid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(o.reconciliations.WithLabelValues(ResultError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(o.notifications.WithLabelValues("grading.created", ResultDelivered)))
	assert.Equal(t, 2.0, testutil.ToFloat64(o.notifications.WithLabelValues("grading.created", ResultFailed)))

	count, err := testutil.GatherAndCount(reg, "grading_reconcile_duration_seconds")
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestPrometheusObserverReusesRegisteredCollectors(t *testing.T) {
	reg := promclient.NewRegistry()
	first, err := NewPrometheusObserver("test", reg)
	require.NoError(t, err)
	second, err := NewPrometheusObserver("test", reg)
	require.NoError(t, err)

	first.RecordNotification("e", nil)
	second.RecordNotification("e", nil)
	assert.Equal(t, 2.0, testutil.ToFloat64(first.notifications.WithLabelValues("e", ResultDelivered)))
}

func TestNilAndNopObservers(t *testing.T) {
	var o *PrometheusObserver
	assert.NotPanics(t, func() {
		o.RecordReconcile(time.Second, nil)
		o.RecordNotification("e", nil)
		NopObserver{}.RecordReconcile(time.Second, nil)
		NopObserver{}.RecordNotification("e", errors.New("x"))
	})
}
