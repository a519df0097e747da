package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/resonancehq/climatecheck/internal/app"
	"github.com/resonancehq/climatecheck/internal/assessment"
	"github.com/resonancehq/climatecheck/internal/llm"
	"github.com/resonancehq/climatecheck/internal/plan"
)

var rootCmd = &cobra.Command{
	Use:   "climatecheck",
	Short: "Climate tech readiness self-assessment",
	Long: "ClimateCheck — terminal questionnaire that scores your company's readiness\n" +
		"to adopt climate technology and generates a personalized action plan.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runAssessment(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("llm-log", "", "Append one-line LLM call records to this file (overrides CLIMATECHECK_LLM_LOG)")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(bankCmd)
	rootCmd.AddCommand(llmCmd)
}

func runAssessment(cmd *cobra.Command) error {
	ctx := context.Background()

	bank := assessment.DefaultBank()
	if err := assessment.ValidateBank(bank); err != nil {
		return fmt.Errorf("question bank: %w", err)
	}

	obs, closeObs, err := buildObserver(cmd)
	if err != nil {
		return err
	}
	if closeObs != nil {
		defer closeObs()
	}

	// No credentials is fine; the plan service falls back to general
	// recommendations.
	var provider llm.Provider
	if cfg, ok := llm.DiscoverConfig(); ok {
		provider, err = llm.NewProvider(ctx, cfg, obs)
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider unavailable:", err)
		}
	}

	return app.Run(app.Options{
		State: assessment.NewState(bank),
		Plans: plan.NewService(provider, plan.DefaultConfig()),
	})
}

// buildObserver resolves the LLM call log destination from --llm-log,
// then CLIMATECHECK_LLM_LOG. Returns a closer when a file was opened.
func buildObserver(cmd *cobra.Command) (llm.Observer, func() error, error) {
	path, _ := cmd.Flags().GetString("llm-log")
	if path == "" {
		path = os.Getenv("CLIMATECHECK_LLM_LOG")
	}
	if path == "" {
		return llm.NoopObserver{}, nil, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open llm log: %w", err)
	}
	return llm.NewLogObserver(f), f.Close, nil
}
