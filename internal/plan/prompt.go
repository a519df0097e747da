package plan

import (
	"fmt"
	"strings"

	"github.com/resonancehq/climatecheck/internal/assessment"
	"github.com/resonancehq/climatecheck/internal/scoring"
)

const planSystemPrompt = `You are a world-class climate technology strategy consultant for Resonance. A company has completed a climate tech readiness assessment. Based on their profile and scores, generate a personalized and actionable plan.`

// buildPlanUserMessage serializes the profile and a human-readable score
// summary into the generation instruction.
func buildPlanUserMessage(bank *assessment.Bank, profile assessment.CompanyProfile, scores scoring.Scores) string {
	var b strings.Builder

	b.WriteString("Company Profile:\n")
	b.WriteString(fmt.Sprintf("- Contact Person: %s, %s\n", profile.UserName, profile.UserRole))
	b.WriteString(fmt.Sprintf("- Company Name: %s\n", profile.CompanyName))
	b.WriteString(fmt.Sprintf("- Industry: %s\n", profile.Industry))
	b.WriteString(fmt.Sprintf("- Size: %s\n", profile.CompanySize))
	b.WriteString(fmt.Sprintf("- Primary Goal: %s\n", profile.PrimaryGoal))
	b.WriteString(fmt.Sprintf("- Desired Implementation Timeframe: %s\n", profile.Timeframe))
	b.WriteString(fmt.Sprintf("- Geographic Scope: %s\n", profile.GeographicScope))
	if strings.TrimSpace(profile.Initiatives) != "" {
		b.WriteString(fmt.Sprintf("- Current Climate Initiatives: %s\n", profile.Initiatives))
	}

	b.WriteString("\nAssessment Scores:\n")
	for _, sec := range bank.Sections {
		s := scores[sec.ID]
		b.WriteString(fmt.Sprintf("- %s: %d/%d points\n", sec.Title, s.RawScore, s.MaxScore))
	}

	total := scores.Total()
	b.WriteString(fmt.Sprintf("\nTotal Score: %d/%d\n", total.RawScore, total.MaxScore))

	b.WriteString(`
Task:
Generate a JSON object that provides a strategic action plan. The tone should be encouraging, professional, and clear.
The actions should be concrete and specific. For example, instead of "Improve R&D", suggest "Form a partnership with a local university's engineering department to co-develop a pilot project in [relevant tech area]".
Focus on the lowest-scoring areas as priorities.`)

	return b.String()
}
