package llm

import "context"

// purposeKey is the context key for the call purpose label.
type purposeKey struct{}

// WithPurpose labels the context so observers can attribute the call,
// e.g. "action-plan" for readiness plan generation.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey{}, purpose)
}

// PurposeFrom returns the purpose label, or "unknown" when the context
// was never labeled.
func PurposeFrom(ctx context.Context) string {
	p, ok := ctx.Value(purposeKey{}).(string)
	if !ok {
		return "unknown"
	}
	return p
}
