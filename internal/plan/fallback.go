package plan

// noCredentialsPlan is returned when no provider is configured. It fills
// only the priority areas and immediate actions; the other four lists are
// deliberately empty.
func noCredentialsPlan() ActionPlan {
	return ActionPlan{
		PriorityAreas: []string{
			"Action plan generation requires a configured API key",
		},
		ImmediateActions: []string{
			"Set GEMINI_API_KEY (or another supported provider key) to enable AI-powered recommendations.",
		},
	}
}

// failurePlan is returned when generation fails at runtime. Distinct
// wording from the no-credentials case, same shape.
func failurePlan() ActionPlan {
	return ActionPlan{
		PriorityAreas: []string{
			"The recommendation engine could not produce a plan",
		},
		ImmediateActions: []string{
			"The AI-powered recommendation engine encountered an error. Check your API key and network connection. Your scores above remain fully usable for manual planning.",
		},
	}
}
