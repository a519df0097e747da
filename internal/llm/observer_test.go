package llm

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureObserver struct {
	events []CallEvent
}

func (c *captureObserver) OnCallComplete(e CallEvent) {
	c.events = append(c.events, e)
}

func TestObservedProviderReportsSuccess(t *testing.T) {
	mock := NewMockProvider(MockResponse{
		Content: json.RawMessage(`{}`),
		Usage:   Usage{InputTokens: 11, OutputTokens: 7},
	})
	obs := &captureObserver{}
	p := WithObserver(mock, obs)

	ctx := WithPurpose(context.Background(), "action-plan")
	_, err := p.Generate(ctx, Request{})
	require.NoError(t, err)

	require.Len(t, obs.events, 1)
	e := obs.events[0]
	assert.True(t, e.Success)
	assert.Equal(t, "action-plan", e.Purpose)
	assert.Equal(t, 11, e.InputTokens)
	assert.Equal(t, 7, e.OutputTokens)
}

func TestObservedProviderReportsFailure(t *testing.T) {
	mock := NewMockProvider(MockResponse{Err: errors.New("quota exceeded")})
	obs := &captureObserver{}
	p := WithObserver(mock, obs)

	_, err := p.Generate(context.Background(), Request{})
	require.Error(t, err)

	require.Len(t, obs.events, 1)
	e := obs.events[0]
	assert.False(t, e.Success)
	assert.Contains(t, e.ErrorMessage, "quota exceeded")
}

func TestLogObserverFormat(t *testing.T) {
	var buf strings.Builder
	o := NewLogObserver(&buf)

	o.OnCallComplete(CallEvent{
		Purpose:      "action-plan",
		Model:        "mock",
		LatencyMs:    42,
		InputTokens:  11,
		OutputTokens: 7,
		Success:      true,
	})

	line := buf.String()
	for _, want := range []string{"llm_call", "purpose=action-plan", "model=mock", "latency_ms=42", "in=11", "out=7", "status=ok"} {
		assert.Contains(t, line, want)
	}
	assert.True(t, strings.HasSuffix(line, "\n"))
}

func TestNoopObserverIsSilent(t *testing.T) {
	// Compile-level check that the no-op satisfies the interface and a
	// call on it does nothing observable.
	var obs Observer = NoopObserver{}
	obs.OnCallComplete(CallEvent{Purpose: "action-plan"})
}
