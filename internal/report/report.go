// Package report renders completed assessment results: a plain-text
// summary, a one-page PDF export, and a pre-filled email draft.
package report

import (
	"fmt"
	"strings"

	"github.com/resonancehq/climatecheck/internal/assessment"
	"github.com/resonancehq/climatecheck/internal/plan"
	"github.com/resonancehq/climatecheck/internal/scoring"
)

// Report bundles everything the renderers need.
type Report struct {
	Bank    *assessment.Bank
	Profile assessment.CompanyProfile
	Scores  scoring.Scores
	Level   scoring.ReadinessLevel
	Plan    plan.Result
}

// planSection pairs a heading with its recommendation list, in display
// order. Empty lists are skipped by every renderer.
type planSection struct {
	Heading string
	Items   []string
}

func planSections(p plan.ActionPlan) []planSection {
	return []planSection{
		{"Priority Areas", p.PriorityAreas},
		{"Immediate Actions (0-6 months)", p.ImmediateActions},
		{"Short-Term Actions (6-18 months)", p.ShortTermActions},
		{"Long-Term Actions (18+ months)", p.LongTermActions},
		{"Industry-Specific Recommendations", p.IndustrySpecific},
		{"Goal-Specific Recommendations", p.GoalSpecific},
	}
}

// Text renders the full plain-text report: profile, per-section scores,
// readiness tier, and all non-empty plan sections.
func Text(r Report) string {
	var b strings.Builder

	total := r.Scores.Total()

	b.WriteString("Climate Tech Adoption Readiness Report\n")
	b.WriteString(strings.Repeat("=", 40) + "\n\n")

	b.WriteString(fmt.Sprintf("Company:   %s\n", r.Profile.CompanyName))
	b.WriteString(fmt.Sprintf("Contact:   %s, %s\n", r.Profile.UserName, r.Profile.UserRole))
	b.WriteString(fmt.Sprintf("Industry:  %s\n", r.Profile.Industry))
	b.WriteString(fmt.Sprintf("Size:      %s\n", r.Profile.CompanySize))
	b.WriteString(fmt.Sprintf("Goal:      %s\n\n", r.Profile.PrimaryGoal))

	b.WriteString(fmt.Sprintf("Overall Score: %d/%d - %s\n", total.RawScore, total.MaxScore, r.Level.Label))
	b.WriteString(r.Level.Description + "\n\n")

	b.WriteString("Section Scores\n")
	b.WriteString(strings.Repeat("-", 40) + "\n")
	for _, sec := range r.Bank.Sections {
		s := r.Scores[sec.ID]
		b.WriteString(fmt.Sprintf("%-38s %3d/%-3d (%d%%)\n", sec.Title, s.RawScore, s.MaxScore, s.Percentage))
	}
	b.WriteString("\n")

	if r.Plan.Fallback() {
		b.WriteString("Note: the action plan below is a fallback; AI-generated recommendations were unavailable.\n\n")
	}

	for _, ps := range planSections(r.Plan.Plan) {
		if len(ps.Items) == 0 {
			continue
		}
		b.WriteString(ps.Heading + "\n")
		for _, item := range ps.Items {
			b.WriteString("- " + item + "\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}
