// Package scoring derives section and total scores from recorded answers
// and maps the overall result to a readiness tier.
package scoring

import (
	"math"

	"github.com/resonancehq/climatecheck/internal/assessment"
)

// TotalKey indexes the synthetic all-sections entry in Scores.
const TotalKey = "total"

// SectionScore holds the derived score for one section (or the total).
type SectionScore struct {
	RawScore   int
	MaxScore   int
	Percentage int
}

// Scores maps section id (plus TotalKey) to derived scores. Recomputed on
// demand; never stored.
type Scores map[string]SectionScore

// Total returns the synthetic all-sections entry.
func (s Scores) Total() SectionScore {
	return s[TotalKey]
}

// Compute derives per-section and total scores from the bank and state.
// Pure: it reads the state and never mutates it.
//
// A section's max score comes from the bank's declared budget, not from
// how many questions were answered, so unanswered questions cost their
// full point value. Percentages round half away from zero (0.5 -> 1).
func Compute(bank *assessment.Bank, state *assessment.State) Scores {
	scores := make(Scores, len(bank.Sections)+1)

	totalRaw, totalMax := 0, 0
	for _, sec := range bank.Sections {
		raw := 0
		for _, a := range state.Answers(sec.ID) {
			raw += a.Points
		}
		totalRaw += raw
		totalMax += sec.MaxPoints

		scores[sec.ID] = SectionScore{
			RawScore:   raw,
			MaxScore:   sec.MaxPoints,
			Percentage: percentage(raw, sec.MaxPoints),
		}
	}

	scores[TotalKey] = SectionScore{
		RawScore:   totalRaw,
		MaxScore:   totalMax,
		Percentage: percentage(totalRaw, totalMax),
	}

	return scores
}

func percentage(raw, max int) int {
	if max <= 0 {
		return 0
	}
	return int(math.Round(float64(raw) / float64(max) * 100))
}
