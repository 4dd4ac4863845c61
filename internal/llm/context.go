package llm

import "context"

type contextKey struct{}

var purposeKey contextKey

// WithPurpose tags the context with the high-level purpose of an LLM call
// ("case-gen", "interview", "evaluation"). The logging decorator records it
// on the request event.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the call purpose, or "unknown" if none was set.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return "unknown"
}
