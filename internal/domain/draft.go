package domain

import "time"

// AuthoringStage identifies the current screen of the authoring workflow
type AuthoringStage string

const (
	// StageTemplate is the optional pre-stage offering starter templates.
	StageTemplate AuthoringStage = "template"
	StageDescribe AuthoringStage = "describe"
	StageAnalyze  AuthoringStage = "analyze"
	StageEditor   AuthoringStage = "editor"
	StageSummary  AuthoringStage = "summary"
)

// Previous returns the stage one step back. Stepping backward is always
// permitted and never discards data.
func (s AuthoringStage) Previous() AuthoringStage {
	switch s {
	case StageSummary:
		return StageEditor
	case StageEditor:
		return StageAnalyze
	case StageAnalyze:
		return StageDescribe
	case StageDescribe:
		return StageTemplate
	default:
		return s
	}
}

// OutlineBlock is a lightweight structure grouping assembled on the summary
// side-path ("MCQ", "Coding", "Debugging", ...). Blocks carry their own
// duration, weight and difficulty but are an outline, not full questions.
// The block list is append-only.
type OutlineBlock struct {
	ID              string
	Title           string
	DurationMinutes int
	Weight          int
	Difficulty      Difficulty
}

// AssessmentDraft is the in-progress, unsaved composition owned by exactly
// one authoring session. It is ephemeral: promoted to a persisted Assessment
// on explicit save, discarded on reset.
type AssessmentDraft struct {
	ID              string
	Title           string
	RoleTitle       string
	Description     string
	ExperienceTier  string
	DurationMinutes int
	Difficulty      Difficulty
	Skills          []string
	TagSet          *CategoryTagSet
	Bank            *QuestionBank
	Blocks          []OutlineBlock
	Stage           AuthoringStage

	// GenerationEpoch guards in-flight AI calls against stale application:
	// reset and backward navigation bump the epoch, and a completion whose
	// captured epoch no longer matches is dropped instead of applied.
	GenerationEpoch int64
}

// NewAssessmentDraft creates an empty draft at the template pre-stage
func NewAssessmentDraft(id string) *AssessmentDraft {
	return &AssessmentDraft{
		ID:         id,
		Difficulty: DifficultyIntermediate,
		TagSet:     NewCategoryTagSet(),
		Bank:       NewQuestionBank(),
		Stage:      StageTemplate,
	}
}

// HasRoleContext reports whether the describe stage collected enough input
// to run analysis: a role name or description text must be present.
func (d *AssessmentDraft) HasRoleContext() bool {
	return d.RoleTitle != "" || d.Description != ""
}

// AuthoringSession binds a session id to its draft. Sessions are independent
// of one another; there is no shared mutable state across sessions.
type AuthoringSession struct {
	ID        string
	Draft     *AssessmentDraft
	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewAuthoringSession creates a session owning a fresh draft
func NewAuthoringSession(id, draftID string) *AuthoringSession {
	now := time.Now()
	return &AuthoringSession{
		ID:        id,
		Draft:     NewAssessmentDraft(draftID),
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Assessment is the persisted record produced from a draft on explicit save.
// The record store's schema is owned by the storage collaborator; this shape
// is the opaque creation payload handed to it.
type Assessment struct {
	ID              string
	Title           string
	Description     string
	RoleTitle       string
	DurationMinutes int
	Difficulty      Difficulty
	Questions       []*Question
	Categories      []CategoryTags
	CreatedAt       time.Time
}
