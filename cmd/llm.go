package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/resonancehq/climatecheck/internal/llm"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the plan generation backend",
}

var llmStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show which provider credentials are configured",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, ok := llm.DiscoverConfig()
		if !ok {
			fmt.Println("No provider credentials found.")
			fmt.Println("Set GEMINI_API_KEY, OPENAI_API_KEY, ANTHROPIC_API_KEY, or OPENROUTER_API_KEY.")
			fmt.Println("The assessment still works; the action plan falls back to general recommendations.")
			return nil
		}

		model := ""
		switch cfg.Provider {
		case "gemini":
			model = cfg.Gemini.Model
		case "openai":
			model = cfg.OpenAI.Model
		case "anthropic":
			model = cfg.Anthropic.Model
		case "openrouter":
			model = cfg.OpenRouter.Model
		}

		fmt.Printf("Provider: %s\n", cfg.Provider)
		fmt.Printf("Model:    %s\n", model)
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("configuration invalid: %w", err)
		}
		fmt.Println("Configuration OK.")
		return nil
	},
}

func init() {
	llmCmd.AddCommand(llmStatusCmd)
}
