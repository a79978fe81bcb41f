// Package notify delivers best-effort grading event notifications over HTTP.
package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"maps"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/4NDR3-S01/ExposIA/internal/contract"
	"github.com/4NDR3-S01/ExposIA/internal/metrics"
	"github.com/4NDR3-S01/ExposIA/schema"
)

// Envelope is the JSON document posted for every event.
type Envelope struct {
	Event   string         `json:"event"`
	Payload map[string]any `json:"payload"`
}

// HTTPDispatcher posts one envelope per event to {baseURL}/notify.
// Every failure is logged and discarded.
type HTTPDispatcher struct {
	baseURL  string
	token    string
	timeout  time.Duration
	client   *http.Client
	observer contract.Observer
	now      func() time.Time
}

var _ contract.Notifier = &HTTPDispatcher{} // Compile-time check

// Option customizes an HTTPDispatcher.
type Option func(*HTTPDispatcher)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(d *HTTPDispatcher) { d.client = c }
}

// WithObserver records every delivery attempt.
func WithObserver(o contract.Observer) Option {
	return func(d *HTTPDispatcher) { d.observer = o }
}

// WithClock overrides the clock used for envelope timestamps.
func WithClock(now func() time.Time) Option {
	return func(d *HTTPDispatcher) { d.now = now }
}

// NewHTTPDispatcher builds a dispatcher for the given endpoint.
// A non-positive timeout falls back to contract.DefaultNotifyTimeout.
func NewHTTPDispatcher(baseURL, token string, timeout time.Duration, opts ...Option) *HTTPDispatcher {
	if timeout <= 0 {
		timeout = contract.DefaultNotifyTimeout
	}
	d := &HTTPDispatcher{
		baseURL:  strings.TrimRight(baseURL, "/"),
		token:    token,
		timeout:  timeout,
		observer: metrics.NopObserver{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.client == nil {
		d.client = &http.Client{Timeout: d.timeout}
	}
	return d
}

// New returns the notifier described by cfg, or a Nop notifier when no URL is configured.
func New(cfg *contract.Config, opts ...Option) contract.Notifier {
	if cfg == nil || cfg.NotifyURL == "" {
		return Nop{}
	}
	return NewHTTPDispatcher(cfg.NotifyURL, cfg.NotifyToken, cfg.NotifyTimeout, opts...)
}

// Notify sends the event synchronously. It never fails from the caller's point of view.
func (d *HTTPDispatcher) Notify(ctx context.Context, event string, payload map[string]any) {
	err := d.send(ctx, event, payload)
	d.observer.RecordNotification(event, err)
	if err != nil {
		contract.LogWarn(fmt.Sprintf("sending notification %s", event), err)
	}
}

// BuildEnvelope copies the caller payload and stamps it with the time and source.
func BuildEnvelope(event string, payload map[string]any, at time.Time) Envelope {
	body := make(map[string]any, len(payload)+2)
	maps.Copy(body, payload)
	body["timestamp"] = at.UTC().Format(time.RFC3339Nano)
	body["source"] = schema.NotificationSource
	return Envelope{Event: event, Payload: body}
}

func (d *HTTPDispatcher) send(ctx context.Context, event string, payload map[string]any) error {
	data, err := json.Marshal(BuildEnvelope(event, payload, d.now()))
	if err != nil {
		return &contract.NotificationError{Event: event, Err: fmt.Errorf("encode envelope: %w", err)}
	}

	// The mutation already happened; a caller disconnect must not drop the notification.
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), d.timeout)
	defer cancel()

	endpoint := d.baseURL + "/notify?token=" + url.QueryEscape(d.token)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(data))
	if err != nil {
		return &contract.NotificationError{Event: event, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")
	if d.token != "" {
		req.Header.Set("Authorization", "Bearer "+d.token)
	}

	resp, err := d.client.Do(req)
	if err != nil {
		return &contract.NotificationError{Event: event, Err: err}
	}
	defer func() {
		_, _ = io.Copy(io.Discard, resp.Body)
		_ = resp.Body.Close()
	}()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &contract.NotificationError{Event: event, StatusCode: resp.StatusCode}
	}
	return nil
}

// Nop drops every notification.
type Nop struct{}

var _ contract.Notifier = Nop{}

// Notify does nothing.
func (Nop) Notify(context.Context, string, map[string]any) {}
