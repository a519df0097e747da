package plan

// Config tunes plan generation.
type Config struct {
	MaxTokens   int
	Temperature float64
}

// DefaultConfig returns the production settings.
func DefaultConfig() Config {
	return Config{
		MaxTokens:   2048,
		Temperature: 0.5,
	}
}
