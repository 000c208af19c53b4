package domain

import "context"

// GenerationBrief is the outbound payload for batch question generation,
// accumulated from the draft and its category tag sets.
type GenerationBrief struct {
	RoleTitle             string
	Brief                 string
	AssessmentType        string
	SkillLevel            string
	DurationMinutes       int
	FocusAreas            []string
	IncludeCodeChallenges bool
}

// GeneratedQuestion is one raw question candidate returned by the AI
// service. Ids and categories are assigned locally by the consumer.
type GeneratedQuestion struct {
	Question   string   `json:"question"`
	Type       string   `json:"type"`
	Options    []string `json:"options,omitempty"`
	Weight     int      `json:"weight,omitempty"`
	Difficulty string   `json:"difficulty,omitempty"`
}

// QuestionGenerationService defines the port for AI batch question
// generation. An empty result is not an error: the workflow recovers by
// seeding placeholder questions.
type QuestionGenerationService interface {
	GenerateQuestions(ctx context.Context, brief GenerationBrief) ([]GeneratedQuestion, error)
}
