package llm

import (
	"context"
	"fmt"
	"io"
	"time"
)

// CallEvent records metadata about a single provider invocation.
type CallEvent struct {
	Purpose      string
	Model        string
	LatencyMs    int64
	InputTokens  int
	OutputTokens int
	Success      bool
	ErrorMessage string
}

// Observer receives CallEvents for logging. Implementations must not
// block the request path.
type Observer interface {
	OnCallComplete(event CallEvent)
}

// LogObserver writes one line per call to an io.Writer.
type LogObserver struct {
	w io.Writer
}

// NewLogObserver creates an Observer that logs to w.
func NewLogObserver(w io.Writer) *LogObserver {
	return &LogObserver{w: w}
}

func (o *LogObserver) OnCallComplete(event CallEvent) {
	ts := time.Now().UTC().Format(time.RFC3339)
	status := "ok"
	if !event.Success {
		status = "err: " + event.ErrorMessage
	}
	fmt.Fprintf(o.w, "[%s] llm_call purpose=%s model=%s latency_ms=%d in=%d out=%d status=%s\n",
		ts, event.Purpose, event.Model, event.LatencyMs,
		event.InputTokens, event.OutputTokens, status)
}

// NoopObserver discards all events.
type NoopObserver struct{}

func (NoopObserver) OnCallComplete(CallEvent) {}

// ObservedProvider is a decorator that reports every call to an Observer.
type ObservedProvider struct {
	inner Provider
	obs   Observer
}

// WithObserver wraps a Provider with call observation.
func WithObserver(p Provider, obs Observer) Provider {
	return &ObservedProvider{inner: p, obs: obs}
}

func (o *ObservedProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()

	resp, err := o.inner.Generate(ctx, req)

	event := CallEvent{
		Purpose:   PurposeFrom(ctx),
		Model:     o.inner.ModelID(),
		LatencyMs: time.Since(start).Milliseconds(),
		Success:   err == nil,
	}
	if resp != nil {
		event.Model = resp.Model
		event.InputTokens = resp.Usage.InputTokens
		event.OutputTokens = resp.Usage.OutputTokens
	}
	if err != nil {
		event.ErrorMessage = err.Error()
	}
	o.obs.OnCallComplete(event)

	return resp, err
}

func (o *ObservedProvider) ModelID() string {
	return o.inner.ModelID()
}
