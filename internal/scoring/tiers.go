package scoring

// ReadinessLevel is one of five qualitative tiers derived from the total
// score.
type ReadinessLevel struct {
	// MinScore is the inclusive lower bound on the 0-100 total scale.
	MinScore    int
	Label       string
	Description string
}

// readinessLevels is ordered highest tier first; Classify takes the first
// tier whose bound the score meets.
var readinessLevels = []ReadinessLevel{
	{
		MinScore:    90,
		Label:       "Climate Tech Leader",
		Description: "Your organization demonstrates exceptional readiness, positioning it to lead in the climate technology landscape. You have robust capabilities across all key areas.",
	},
	{
		MinScore:    70,
		Label:       "Climate Tech Adopter",
		Description: "Your organization has a strong foundation and is actively adopting climate technologies. There are targeted areas for improvement to achieve leadership status.",
	},
	{
		MinScore:    50,
		Label:       "Climate Tech Emerging",
		Description: "Your company shows moderate readiness but requires a more strategic and focused approach to unlock its full potential in climate tech.",
	},
	{
		MinScore:    30,
		Label:       "Climate Tech Developing",
		Description: "Your organization is in the early stages of its climate tech journey. Significant investment and foundational work are required.",
	},
	{
		MinScore:    0,
		Label:       "Climate Tech Starter",
		Description: "Your organization is at the very beginning. Foundational work is needed across all areas to build climate tech readiness.",
	},
}

// Levels returns all tiers, highest first.
func Levels() []ReadinessLevel {
	return readinessLevels
}

// Classify maps a total score on the 0-100 scale to its readiness tier.
// Bounds are inclusive: 90 is already a Leader, 89 an Adopter. Scores
// below zero land in the lowest tier.
func Classify(totalScore int) ReadinessLevel {
	for _, lvl := range readinessLevels {
		if totalScore >= lvl.MinScore {
			return lvl
		}
	}
	return readinessLevels[len(readinessLevels)-1]
}
