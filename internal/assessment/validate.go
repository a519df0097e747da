package assessment

import (
	"fmt"
	"strings"
)

// totalBudget is the point scale the readiness tiers are defined on.
// Section budgets must sum to exactly this value.
const totalBudget = 100

// ValidateBank performs all structural checks on the question bank.
// Returns a combined error describing all problems found, or nil if valid.
func ValidateBank(b *Bank) error {
	var errs []string

	if len(b.Sections) == 0 {
		return fmt.Errorf("question bank has no sections")
	}

	sectionIDs := make(map[string]bool, len(b.Sections))
	questionIDs := make(map[string]bool)

	for _, sec := range b.Sections {
		if sectionIDs[sec.ID] {
			errs = append(errs, fmt.Sprintf("duplicate section ID: %q", sec.ID))
		}
		sectionIDs[sec.ID] = true

		// Empty sections would make the cursor's last-question check
		// ill-defined.
		if len(sec.Questions) == 0 {
			errs = append(errs, fmt.Sprintf("section %q has no questions", sec.ID))
			continue
		}

		sectionSum := 0
		for _, q := range sec.Questions {
			if questionIDs[q.ID] {
				errs = append(errs, fmt.Sprintf("duplicate question ID: %q", q.ID))
			}
			questionIDs[q.ID] = true

			if len(q.Options) == 0 {
				errs = append(errs, fmt.Sprintf("question %q has no options", q.ID))
				continue
			}

			achievable := maxAchievable(q)
			if q.MaxPoints != achievable {
				errs = append(errs, fmt.Sprintf(
					"question %q declares %d max points but %d are achievable",
					q.ID, q.MaxPoints, achievable))
			}
			sectionSum += q.MaxPoints
		}

		if sec.MaxPoints != sectionSum {
			errs = append(errs, fmt.Sprintf(
				"section %q declares %d max points but its questions sum to %d",
				sec.ID, sec.MaxPoints, sectionSum))
		}
	}

	if total := b.TotalMaxPoints(); total != totalBudget {
		errs = append(errs, fmt.Sprintf(
			"section max points sum to %d, want %d (readiness tiers assume a 0-%d scale)",
			total, totalBudget, totalBudget))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid question bank:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}

// maxAchievable returns the highest score a well-formed answer can reach:
// the best single option for single-select, the sum of all options for
// multi-select.
func maxAchievable(q Question) int {
	if q.Kind == MultiSelect {
		sum := 0
		for _, opt := range q.Options {
			sum += opt.Points
		}
		return sum
	}
	best := 0
	for _, opt := range q.Options {
		if opt.Points > best {
			best = opt.Points
		}
	}
	return best
}
