package domain

import "context"

// ExtractionResult is the engine's internal suggestion shape produced from a
// free-text role description. Every field is optional: zero values mean the
// service did not suggest anything for that field, and the caller must leave
// the corresponding draft field untouched rather than overwrite it.
type ExtractionResult struct {
	Skills          []string
	Categories      []CategoryTags
	DurationMinutes int
	Difficulty      Difficulty
}

// ExtractionService defines the port for the AI Extraction Service: free
// text in, structured suggestions out. Implementations perform no local
// mutation; they only return data for the workflow to apply.
type ExtractionService interface {
	// ExtractRoleProfile extracts skills, category tag sets and optional
	// duration/difficulty suggestions from a role description. The
	// preferred categories steer the service toward the caller's existing
	// taxonomy. Failures are reported as CodeExtractionFailed domain
	// errors and are always retryable.
	ExtractRoleProfile(ctx context.Context, text string, preferredCategories []string) (*ExtractionResult, error)
}
