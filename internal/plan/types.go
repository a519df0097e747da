// Package plan builds personalized action plans from a completed
// assessment, using a text-generation provider with deterministic
// fallbacks for missing credentials and runtime failures.
package plan

// ActionPlan groups recommendations by time horizon and specificity.
type ActionPlan struct {
	PriorityAreas    []string
	ImmediateActions []string
	ShortTermActions []string
	LongTermActions  []string
	IndustrySpecific []string
	GoalSpecific     []string
}

// Status tags how a plan was produced. The display layer branches on
// this tag; plan text is never inspected to detect failure.
type Status int

const (
	// StatusGenerated means the plan came from the provider.
	StatusGenerated Status = iota
	// StatusNoCredentials means no provider was configured; the plan is
	// the fixed configuration-missing fallback.
	StatusNoCredentials
	// StatusFailed means the provider call or response validation
	// failed; the plan is the fixed runtime-error fallback.
	StatusFailed
)

// String returns the status name for logs.
func (s Status) String() string {
	switch s {
	case StatusGenerated:
		return "generated"
	case StatusNoCredentials:
		return "no-credentials"
	case StatusFailed:
		return "failed"
	}
	return "unknown"
}

// Result is what a plan request resolves to. Every request resolves to a
// well-formed Result; failures surface only through Status.
type Result struct {
	Plan   ActionPlan
	Status Status

	// SessionID is the assessment session the plan was generated for.
	// Results arriving after a restart carry a stale id and are dropped.
	SessionID string

	// Err preserves the underlying failure for logging when Status is
	// StatusFailed. Never shown raw to the user.
	Err error
}

// Fallback reports whether the plan is one of the fixed fallbacks rather
// than generated output.
func (r Result) Fallback() bool {
	return r.Status != StatusGenerated
}
