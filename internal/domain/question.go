package domain

import "strings"

// QuestionKind enumerates the supported question formats
type QuestionKind string

const (
	KindMultipleChoice QuestionKind = "multiple_choice"
	KindText           QuestionKind = "text"
	KindCode           QuestionKind = "code"
	KindRating         QuestionKind = "rating"
)

// ParseQuestionKind normalizes a free-form kind string coming from the AI
// generation boundary. Unrecognized values default to a text question.
func ParseQuestionKind(s string) QuestionKind {
	switch strings.ToLower(strings.TrimSpace(strings.ReplaceAll(s, "-", "_"))) {
	case "multiple_choice", "mcq", "choice":
		return KindMultipleChoice
	case "code", "coding":
		return KindCode
	case "rating", "scale":
		return KindRating
	default:
		return KindText
	}
}

// Difficulty enumerates the supported difficulty tiers
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "beginner"
	DifficultyIntermediate Difficulty = "intermediate"
	DifficultyAdvanced     Difficulty = "advanced"
)

// ParseDifficulty normalizes a free-form difficulty string. The fallback is
// applied when the value does not name a known tier.
func ParseDifficulty(s string, fallback Difficulty) Difficulty {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "beginner", "easy", "junior":
		return DifficultyBeginner
	case "intermediate", "medium", "mid":
		return DifficultyIntermediate
	case "advanced", "hard", "senior":
		return DifficultyAdvanced
	default:
		return fallback
	}
}

// UncategorizedCategory is the sentinel category assigned when no tag set
// matches a question's text.
const UncategorizedCategory = "Uncategorized"

// Question represents a single authored test question
type Question struct {
	ID         string
	Kind       QuestionKind
	Prompt     string
	Options    []string // populated only for multiple_choice
	Weight     int      // positive integer, default 1
	Difficulty Difficulty
	Category   string
}

// NewQuestion creates a Question with engine defaults applied
func NewQuestion(id string, kind QuestionKind, prompt string, difficulty Difficulty) *Question {
	return &Question{
		ID:         id,
		Kind:       kind,
		Prompt:     prompt,
		Weight:     1,
		Difficulty: difficulty,
		Category:   UncategorizedCategory,
	}
}

// Validate validates the question
func (q *Question) Validate() error {
	if q.ID == "" {
		return NewInvalidInputError("question id is required")
	}
	if q.Weight < 1 {
		return NewInvalidInputError("question weight must be a positive integer")
	}
	if q.Kind != KindMultipleChoice && len(q.Options) > 0 {
		return NewInvalidInputError("options are only allowed on multiple choice questions")
	}
	return nil
}

// Clone returns a deep copy of the question. Snapshots (invitation previews)
// rely on this to stay immutable when the live bank is edited afterwards.
func (q *Question) Clone() *Question {
	clone := *q
	if q.Options != nil {
		clone.Options = append([]string(nil), q.Options...)
	}
	return &clone
}
