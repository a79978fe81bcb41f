// Package core has the grading reconciliation engine and the CRUD operations around it.
package core

import (
	"time"

	"github.com/4NDR3-S01/ExposIA/internal/contract"
	"github.com/4NDR3-S01/ExposIA/internal/metrics"
	"github.com/4NDR3-S01/ExposIA/internal/notify"
)

// Service coordinates the grading stores and the notifier.
// It holds no per-request state and is safe for concurrent use.
type Service struct {
	store    contract.Store
	notifier contract.Notifier
	observer contract.Observer
	now      func() time.Time
}

// Option customizes a Service.
type Option func(*Service)

// WithNotifier sets the notifier used for grading events.
func WithNotifier(n contract.Notifier) Option {
	return func(s *Service) { s.notifier = n }
}

// WithObserver sets the observer that records reconciliations.
func WithObserver(o contract.Observer) Option {
	return func(s *Service) { s.observer = o }
}

// WithClock overrides the clock used for timestamps.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// NewService builds a Service over the given store.
// Without options it notifies nobody and records nothing.
func NewService(store contract.Store, opts ...Option) *Service {
	s := &Service{
		store:    store,
		notifier: notify.Nop{},
		observer: metrics.NopObserver{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Store returns the underlying store.
func (s *Service) Store() contract.Store {
	return s.store
}

// persistErr wraps store failures, leaving not-found and validation errors untouched.
func persistErr(op string, err error) error {
	if err == nil || contract.IsNotFound(err) || contract.IsValidation(err) {
		return err
	}
	return &contract.PersistenceError{Op: op, Err: err}
}
