package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
)

func newTestAnthropicProvider(t *testing.T, handler http.HandlerFunc) *AnthropicProvider {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client := anthropic.NewClient(
		option.WithAPIKey("test-key"),
		option.WithBaseURL(server.URL),
	)
	return &AnthropicProvider{
		client: &client,
		model:  "claude-sonnet-4-20250514",
	}
}

func TestAnthropicProviderGenerate(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"id":   "msg_test",
			"type": "message",
			"role": "assistant",
			"content": []map[string]any{
				{"type": "text", "text": `{"priorityAreas":["Energy efficiency"]}`},
			},
			"model":       "claude-sonnet-4-20250514",
			"stop_reason": "end_turn",
			"usage": map[string]any{
				"input_tokens":  50,
				"output_tokens": 30,
			},
		})
	}

	p := newTestAnthropicProvider(t, handler)
	resp, err := p.Generate(context.Background(), Request{
		System:    "You are a climate strategy consultant.",
		Prompt:    "Generate an action plan.",
		MaxTokens: 256,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(resp.Content) != `{"priorityAreas":["Energy efficiency"]}` {
		t.Fatalf("unexpected content: %s", resp.Content)
	}
	if resp.Usage.InputTokens != 50 {
		t.Fatalf("input tokens = %d, want 50", resp.Usage.InputTokens)
	}
	if resp.Usage.TotalTokens != 80 {
		t.Fatalf("total tokens = %d, want 80", resp.Usage.TotalTokens)
	}
	if resp.StopReason != "end" {
		t.Fatalf("stop reason = %q, want %q", resp.StopReason, "end")
	}
}

func TestAnthropicProviderErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		errType string
		wantErr any
	}{
		{
			name:    "rate limit",
			status:  http.StatusTooManyRequests,
			errType: "rate_limit_error",
			wantErr: new(*ErrRateLimit),
		},
		{
			name:    "server error",
			status:  http.StatusInternalServerError,
			errType: "api_error",
			wantErr: new(*ErrProviderUnavailable),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(tt.status)
				json.NewEncoder(w).Encode(map[string]any{
					"type": "error",
					"error": map[string]any{
						"type":    tt.errType,
						"message": "upstream failure",
					},
				})
			}

			p := newTestAnthropicProvider(t, handler)
			_, err := p.Generate(context.Background(), Request{Prompt: "test", MaxTokens: 100})
			if err == nil {
				t.Fatal("expected error")
			}
			if !errors.As(err, tt.wantErr) {
				t.Fatalf("error type = %T (%v)", err, err)
			}
		})
	}
}

func TestAnthropicProviderModelID(t *testing.T) {
	p := &AnthropicProvider{model: "claude-sonnet-4-20250514"}
	if p.ModelID() != "claude-sonnet-4-20250514" {
		t.Fatalf("model = %q, want %q", p.ModelID(), "claude-sonnet-4-20250514")
	}
}

func TestAnthropicModelMapping(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"claude-sonnet", "claude-sonnet-4-20250514"},
		{"claude-haiku", "claude-haiku-4-5-20251001"},
		{"claude-sonnet-4-20250514", "claude-sonnet-4-20250514"}, // Pass-through
	}
	for _, tt := range tests {
		got := resolveModel(tt.input, anthropicModels)
		if got != tt.expected {
			t.Errorf("resolveModel(%q) = %q, want %q", tt.input, got, tt.expected)
		}
	}
}
