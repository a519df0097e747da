package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func fastRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts: 3,
		InitialWait: time.Millisecond,
		MaxWait:     10 * time.Millisecond,
		Multiplier:  2.0,
	}
}

func planPayload() MockResponse {
	return MockResponse{Content: json.RawMessage(`{"priorityAreas":["Energy efficiency"]}`)}
}

func downErr() MockResponse {
	return MockResponse{Err: &ErrProviderUnavailable{Err: errors.New("down")}}
}

func TestRetryCallCounts(t *testing.T) {
	tests := []struct {
		name      string
		responses []MockResponse
		wantCalls int
		wantErr   bool
	}{
		{
			name:      "first attempt succeeds",
			responses: []MockResponse{planPayload()},
			wantCalls: 1,
		},
		{
			name:      "transient outage then success",
			responses: []MockResponse{downErr(), planPayload()},
			wantCalls: 2,
		},
		{
			name:      "all attempts exhausted",
			responses: []MockResponse{downErr(), downErr(), downErr()},
			wantCalls: 3,
			wantErr:   true,
		},
		{
			name: "truncation is terminal",
			responses: []MockResponse{
				{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{}`)}},
			},
			wantCalls: 1,
			wantErr:   true,
		},
		{
			name: "malformed output gets one more attempt",
			responses: []MockResponse{
				{Err: &ErrInvalidResponse{Err: errors.New("bad json")}},
				{Err: &ErrInvalidResponse{Err: errors.New("bad json")}},
				planPayload(), // Never reached.
			},
			wantCalls: 2,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mock := NewMockProvider(tt.responses...)
			p := WithRetry(mock, fastRetryConfig())

			_, err := p.Generate(context.Background(), Request{})
			if (err != nil) != tt.wantErr {
				t.Fatalf("Generate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if mock.CallCount() != tt.wantCalls {
				t.Fatalf("calls = %d, want %d", mock.CallCount(), tt.wantCalls)
			}
		})
	}
}

func TestRetryKeepsErrorType(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrMaxTokensExceeded{Content: json.RawMessage(`{}`)}},
	)
	p := WithRetry(mock, fastRetryConfig())

	_, err := p.Generate(context.Background(), Request{})
	var truncated *ErrMaxTokensExceeded
	if !errors.As(err, &truncated) {
		t.Fatalf("expected ErrMaxTokensExceeded, got %T", err)
	}
}

func TestRetryHonorsRetryAfter(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Err: &ErrRateLimit{RetryAfter: time.Millisecond, Err: errors.New("429")}},
		planPayload(),
	)
	p := WithRetry(mock, fastRetryConfig())

	resp, err := p.Generate(context.Background(), Request{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"priorityAreas":["Energy efficiency"]}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if mock.CallCount() != 2 {
		t.Fatalf("calls = %d, want 2", mock.CallCount())
	}
}

func TestRetryStopsOnCancelledContext(t *testing.T) {
	mock := NewMockProvider(downErr(), downErr(), planPayload())
	p := WithRetry(mock, fastRetryConfig())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := p.Generate(ctx, Request{}); err == nil {
		t.Fatal("expected error after cancellation")
	}
}

func TestRetryModelIDDelegates(t *testing.T) {
	p := WithRetry(NewMockProvider(), fastRetryConfig())
	if p.ModelID() != "mock" {
		t.Fatalf("model = %q, want %q", p.ModelID(), "mock")
	}
}

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want retryDecision
	}{
		{"cancelled context", context.Canceled, retryNever},
		{"deadline exceeded", context.DeadlineExceeded, retryNever},
		{"truncation", &ErrMaxTokensExceeded{}, retryNever},
		{"invalid response", &ErrInvalidResponse{Err: errors.New("bad")}, retryOnce},
		{"rate limit", &ErrRateLimit{Err: errors.New("429")}, retryTransient},
		{"outage", &ErrProviderUnavailable{}, retryTransient},
		{"plain network error", errors.New("connection reset"), retryTransient},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := classify(tt.err); got != tt.want {
				t.Fatalf("classify(%v) = %d, want %d", tt.err, got, tt.want)
			}
		})
	}
}
