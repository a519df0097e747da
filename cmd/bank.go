package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/resonancehq/climatecheck/internal/assessment"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect the question bank",
}

var bankCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate question bank point totals",
	RunE: func(cmd *cobra.Command, args []string) error {
		bank := assessment.DefaultBank()
		if err := assessment.ValidateBank(bank); err != nil {
			return err
		}
		fmt.Printf("Question bank OK: %d sections, %d questions, %d points\n",
			len(bank.Sections), bank.TotalQuestions(), bank.TotalMaxPoints())
		return nil
	},
}

var bankListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sections and questions with their point values",
	RunE: func(cmd *cobra.Command, args []string) error {
		bank := assessment.DefaultBank()
		for _, section := range bank.Sections {
			fmt.Printf("%s — %s (%d pts)\n", section.ID, section.Title, section.MaxPoints)
			for _, q := range section.Questions {
				kind := "single"
				if q.Kind == assessment.MultiSelect {
					kind = "multi"
				}
				fmt.Printf("  %-6s [%-6s] %s (max %d)\n", q.ID, kind, q.Text, q.MaxPoints)
			}
			fmt.Println(strings.Repeat("─", 72))
		}
		return nil
	},
}

func init() {
	bankCmd.AddCommand(bankCheckCmd)
	bankCmd.AddCommand(bankListCmd)
}
