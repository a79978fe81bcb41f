// Package metrics exports grading service measurements to Prometheus.
package metrics

import (
	"errors"
	"fmt"
	"time"

	"github.com/4NDR3-S01/ExposIA/internal/contract"
	promclient "github.com/prometheus/client_golang/prometheus"
)

// DefaultNamespace prefixes every metric name.
const DefaultNamespace = "grading"

// Reconciliation and notification outcome labels.
const (
	ResultOK        = "ok"
	ResultNotFound  = "not_found"
	ResultInvalid   = "invalid"
	ResultError     = "error"
	ResultDelivered = "delivered"
	ResultFailed    = "failed"
)

// PrometheusObserver records reconciliations and notifications.
type PrometheusObserver struct {
	reconcileDuration promclient.Histogram
	reconciliations   *promclient.CounterVec
	notifications     *promclient.CounterVec
}

var _ contract.Observer = (*PrometheusObserver)(nil)

// NewPrometheusObserver registers the grading metrics with reg.
// Collectors already registered under the same names are reused.
func NewPrometheusObserver(namespace string, reg promclient.Registerer) (*PrometheusObserver, error) {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	if reg == nil {
		reg = promclient.DefaultRegisterer
	}

	duration, err := register(reg, promclient.NewHistogram(promclient.HistogramOpts{
		Namespace: namespace,
		Name:      "reconcile_duration_seconds",
		Help:      "Latency of AI grading reconciliations.",
		Buckets:   promclient.DefBuckets,
	}))
	if err != nil {
		return nil, fmt.Errorf("register reconcile histogram: %w", err)
	}
	reconciliations, err := register(reg, promclient.NewCounterVec(promclient.CounterOpts{
		Namespace: namespace,
		Name:      "reconciliations_total",
		Help:      "Count of AI grading reconciliations by result.",
	}, []string{"result"}))
	if err != nil {
		return nil, fmt.Errorf("register reconcile counter: %w", err)
	}
	notifications, err := register(reg, promclient.NewCounterVec(promclient.CounterOpts{
		Namespace: namespace,
		Name:      "notifications_total",
		Help:      "Count of notification attempts by event and result.",
	}, []string{"event", "result"}))
	if err != nil {
		return nil, fmt.Errorf("register notification counter: %w", err)
	}

	return &PrometheusObserver{
		reconcileDuration: duration,
		reconciliations:   reconciliations,
		notifications:     notifications,
	}, nil
}

// register adds c to reg, handing back the existing collector on a duplicate registration.
func register[T promclient.Collector](reg promclient.Registerer, c T) (T, error) {
	if err := reg.Register(c); err != nil {
		var are promclient.AlreadyRegisteredError
		if errors.As(err, &are) {
			if existing, ok := are.ExistingCollector.(T); ok {
				return existing, nil
			}
		}
		return c, err
	}
	return c, nil
}

// RecordReconcile tracks one reconciliation.
func (o *PrometheusObserver) RecordReconcile(elapsed time.Duration, err error) {
	if o == nil {
		return
	}
	o.reconcileDuration.Observe(elapsed.Seconds())
	o.reconciliations.WithLabelValues(reconcileResult(err)).Inc()
}

// RecordNotification tracks one notification attempt.
func (o *PrometheusObserver) RecordNotification(event string, err error) {
	if o == nil {
		return
	}
	result := ResultDelivered
	if err != nil {
		result = ResultFailed
	}
	o.notifications.WithLabelValues(event, result).Inc()
}

func reconcileResult(err error) string {
	switch {
	case err == nil:
		return ResultOK
	case contract.IsNotFound(err):
		return ResultNotFound
	case contract.IsValidation(err):
		return ResultInvalid
	default:
		return ResultError
	}
}

// NopObserver discards every measurement.
type NopObserver struct{}

var _ contract.Observer = NopObserver{}

// RecordReconcile does nothing.
func (NopObserver) RecordReconcile(time.Duration, error) {}

// RecordNotification does nothing.
func (NopObserver) RecordNotification(string, error) {}
