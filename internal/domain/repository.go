package domain

import "context"

// AssessmentRepository defines the port for the external record store that
// receives the promoted draft on explicit save. The engine hands over the
// full question bank contents and the chosen category groupings; the store's
// schema is the collaborator's concern.
type AssessmentRepository interface {
	SaveAssessment(ctx context.Context, assessment *Assessment) error
}
