package llm

import "testing"

func TestNewOpenRouterProvider(t *testing.T) {
	tests := []struct {
		name      string
		cfg       OpenRouterConfig
		wantErr   bool
		wantModel string
	}{
		{
			name:      "vendor-prefixed model passes through",
			cfg:       OpenRouterConfig{APIKey: "sk-or-test", Model: "google/gemini-2.5-flash"},
			wantModel: "google/gemini-2.5-flash",
		},
		{
			name:      "anthropic-routed model passes through",
			cfg:       OpenRouterConfig{APIKey: "sk-or-test", Model: "anthropic/claude-3-haiku"},
			wantModel: "anthropic/claude-3-haiku",
		},
		{
			name: "custom base URL accepted",
			cfg: OpenRouterConfig{
				APIKey:  "sk-or-test",
				Model:   "meta-llama/llama-3-8b",
				BaseURL: "https://gateway.example.com/v1",
			},
			wantModel: "meta-llama/llama-3-8b",
		},
		{
			name:    "missing API key rejected",
			cfg:     OpenRouterConfig{Model: "google/gemini-2.5-flash"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p, err := NewOpenRouterProvider(tt.cfg)
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewOpenRouterProvider() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil {
				return
			}
			if p.ModelID() != tt.wantModel {
				t.Errorf("model = %q, want %q", p.ModelID(), tt.wantModel)
			}
		})
	}
}
