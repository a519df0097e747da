package plan

import "github.com/resonancehq/climatecheck/internal/llm"

// ActionPlanSchema defines the JSON schema for action plan generation.
// All six lists are required; the provider stack validates responses
// against this before they reach the parser.
var ActionPlanSchema = &llm.Schema{
	Name:        "action-plan",
	Description: "A strategic climate tech action plan derived from readiness assessment scores",
	Definition: map[string]any{
		"type": "object",
		"properties": map[string]any{
			"priorityAreas": map[string]any{
				"type":        "array",
				"description": "A list of the top 2-3 readiness sections that need the most attention based on the scores.",
				"items":       map[string]any{"type": "string"},
			},
			"immediateActions": map[string]any{
				"type":        "array",
				"description": "3-5 specific, actionable recommendations for the next 0-6 months to build a foundation.",
				"items":       map[string]any{"type": "string"},
			},
			"shortTermActions": map[string]any{
				"type":        "array",
				"description": "3-5 specific, actionable recommendations for the next 6-18 months to build capabilities and pilot solutions.",
				"items":       map[string]any{"type": "string"},
			},
			"longTermActions": map[string]any{
				"type":        "array",
				"description": "3-5 specific, actionable recommendations for 18+ months to scale solutions and achieve market leadership.",
				"items":       map[string]any{"type": "string"},
			},
			"industrySpecificRecommendations": map[string]any{
				"type":        "array",
				"description": "2-3 recommendations tailored to the company's specific industry.",
				"items":       map[string]any{"type": "string"},
			},
			"goalSpecificRecommendations": map[string]any{
				"type":        "array",
				"description": "2-3 recommendations tailored to helping the company achieve its stated primary goal.",
				"items":       map[string]any{"type": "string"},
			},
		},
		"required": []any{
			"priorityAreas",
			"immediateActions",
			"shortTermActions",
			"longTermActions",
			"industrySpecificRecommendations",
			"goalSpecificRecommendations",
		},
		"additionalProperties": false,
	},
}
