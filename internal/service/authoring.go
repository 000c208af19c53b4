package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"skillforge/internal/domain"
	"skillforge/internal/dto"
	"skillforge/internal/util"

	"go.uber.org/zap"
)

// AuthoringService drives the multi-stage assessment composition workflow:
// describe -> analyze -> editor -> summary, with an optional template
// pre-stage. Each operation addresses one independent session.
type AuthoringService interface {
	StartSession() (*dto.SessionResponse, error)
	GetSession(sessionID string) (*dto.SessionResponse, error)
	ResetSession(sessionID string) (*dto.SessionResponse, error)

	SkipTemplate(sessionID string) (*dto.SessionResponse, error)
	ApplyTemplate(sessionID string, templateName string) (*dto.SessionResponse, error)
	StepBack(sessionID string) (*dto.SessionResponse, error)
	ToSummary(sessionID string) (*dto.SessionResponse, error)

	UpdateDraft(sessionID string, req *dto.UpdateDraftRequest) (*dto.SessionResponse, error)
	ImportDescription(ctx context.Context, sessionID string, files []domain.FilePayload) (*dto.SessionResponse, error)

	Analyze(ctx context.Context, sessionID string) (*dto.SessionResponse, error)
	BuildEditor(ctx context.Context, sessionID string) (*dto.SessionResponse, error)

	AddTag(sessionID, category, tag string) (*dto.SessionResponse, error)
	RemoveTag(sessionID, category, tag string) (*dto.SessionResponse, error)

	AddQuestion(sessionID string) (*dto.SessionResponse, error)
	UpdateQuestionField(sessionID, questionID, field string, value interface{}) (*dto.SessionResponse, error)
	RemoveQuestion(sessionID, questionID string) (*dto.SessionResponse, error)
	AddOption(sessionID, questionID, value string) (*dto.SessionResponse, error)
	UpdateOption(sessionID, questionID string, index int, value string) (*dto.SessionResponse, error)
	RemoveOption(sessionID, questionID string, index int) (*dto.SessionResponse, error)

	AddBlock(sessionID string, req *dto.BlockRequest) (*dto.SessionResponse, error)

	Save(ctx context.Context, sessionID string) (*dto.SaveResponse, error)

	// PreviewSnapshot deep-copies the assembled assessment for the
	// invitation issuer.
	PreviewSnapshot(sessionID string) (*PreviewSnapshot, error)
}

// PreviewSnapshot is the immutable view handed to the invitation issuer
type PreviewSnapshot struct {
	Title           string
	DurationMinutes int
	Questions       []*domain.Question
}

// sessionState wraps a session with its per-session mutex and async guard.
// The pending flag forbids re-entrant triggering of a stage's async action
// while one call is outstanding.
type sessionState struct {
	mu      sync.Mutex
	session *domain.AuthoringSession
	pending bool
}

// authoringService implements AuthoringService with an in-memory session
// arena. Sessions own independent drafts; the arena lock only protects the
// map itself.
type authoringService struct {
	mu       sync.RWMutex
	sessions map[string]*sessionState

	extractor     domain.ExtractionService
	generator     domain.QuestionGenerationService
	textExtractor domain.TextExtractor
	repo          domain.AssessmentRepository
	logger        *zap.Logger
}

// NewAuthoringService creates a new instance of authoringService
func NewAuthoringService(
	extractor domain.ExtractionService,
	generator domain.QuestionGenerationService,
	textExtractor domain.TextExtractor,
	repo domain.AssessmentRepository,
	logger *zap.Logger,
) AuthoringService {
	return &authoringService{
		sessions:      make(map[string]*sessionState),
		extractor:     extractor,
		generator:     generator,
		textExtractor: textExtractor,
		repo:          repo,
		logger:        logger,
	}
}

func (s *authoringService) state(sessionID string) (*sessionState, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	state, ok := s.sessions[sessionID]
	if !ok {
		return nil, domain.NewSessionNotFoundError(sessionID)
	}
	return state, nil
}

// StartSession implements AuthoringService
func (s *authoringService) StartSession() (*dto.SessionResponse, error) {
	session := domain.NewAuthoringSession(util.NewULID(), util.NewULID())
	state := &sessionState{session: session}

	s.mu.Lock()
	s.sessions[session.ID] = state
	s.mu.Unlock()

	s.logger.Info("Started authoring session", zap.String("session_id", session.ID))
	return toSessionResponse(session, false), nil
}

// GetSession implements AuthoringService
func (s *authoringService) GetSession(sessionID string) (*dto.SessionResponse, error) {
	state, err := s.state(sessionID)
	if err != nil {
		return nil, err
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	return toSessionResponse(state.session, state.pending), nil
}

// ResetSession discards the draft, tagger and bank and returns the session
// to the initial stage. Used both for cancel and for "create another". The
// generation epoch is carried forward so a late-arriving async response for
// the discarded draft is never applied.
func (s *authoringService) ResetSession(sessionID string) (*dto.SessionResponse, error) {
	state, err := s.state(sessionID)
	if err != nil {
		return nil, err
	}
	state.mu.Lock()
	defer state.mu.Unlock()

	oldEpoch := state.session.Draft.GenerationEpoch
	fresh := domain.NewAssessmentDraft(util.NewULID())
	fresh.GenerationEpoch = oldEpoch + 1
	state.session.Draft = fresh
	state.session.UpdatedAt = time.Now()

	s.logger.Info("Reset authoring session", zap.String("session_id", sessionID))
	return toSessionResponse(state.session, state.pending), nil
}

// SkipTemplate is the explicit shortcut from the optional pre-stage
// directly into describe.
func (s *authoringService) SkipTemplate(sessionID string) (*dto.SessionResponse, error) {
	state, err := s.state(sessionID)
	if err != nil {
		return nil, err
	}
	state.mu.Lock()
	defer state.mu.Unlock()

	draft := state.session.Draft
	if draft.Stage != domain.StageTemplate {
		return nil, domain.NewStageBlockedError(fmt.Sprintf("cannot skip template from stage %s", draft.Stage))
	}
	draft.Stage = domain.StageDescribe
	state.session.UpdatedAt = time.Now()
	return toSessionResponse(state.session, state.pending), nil
}

// ApplyTemplate seeds the draft from a starter template and advances into
// describe.
func (s *authoringService) ApplyTemplate(sessionID string, templateName string) (*dto.SessionResponse, error) {
	state, err := s.state(sessionID)
	if err != nil {
		return nil, err
	}
	state.mu.Lock()
	defer state.mu.Unlock()

	draft := state.session.Draft
	if draft.Stage != domain.StageTemplate {
		return nil, domain.NewStageBlockedError(fmt.Sprintf("cannot apply template from stage %s", draft.Stage))
	}
	tpl, ok := starterTemplates[templateName]
	if !ok {
		return nil, domain.NewNotFoundError(fmt.Sprintf("template not found: %s", templateName))
	}

	draft.RoleTitle = tpl.RoleTitle
	draft.Description = tpl.Description
	draft.TagSet.ReplaceAll(tpl.Categories)
	seeds := make([]*domain.Question, 0, len(tpl.Prompts))
	for _, prompt := range tpl.Prompts {
		q := domain.NewQuestion(util.NewULID(), domain.KindText, prompt, draft.Difficulty)
		q.Category = domain.ClassifyQuestion(prompt, draft.TagSet)
		seeds = append(seeds, q)
	}
	draft.Bank.InsertBatch(seeds, domain.InsertReplace)
	draft.Stage = domain.StageDescribe
	state.session.UpdatedAt = time.Now()

	s.logger.Info("Applied starter template",
		zap.String("session_id", sessionID),
		zap.String("template", templateName),
		zap.Int("num_seed_questions", len(seeds)))
	return toSessionResponse(state.session, state.pending), nil
}

// StepBack moves one stage backward. Always permitted and non-destructive:
// no draft data is discarded. The epoch bump makes any in-flight async call
// for the abandoned forward stage land as a no-op.
func (s *authoringService) StepBack(sessionID string) (*dto.SessionResponse, error) {
	state, err := s.state(sessionID)
	if err != nil {
		return nil, err
	}
	state.mu.Lock()
	defer state.mu.Unlock()

	draft := state.session.Draft
	draft.Stage = draft.Stage.Previous()
	draft.GenerationEpoch++
	state.session.UpdatedAt = time.Now()
	return toSessionResponse(state.session, state.pending), nil
}

// ToSummary moves from the editor to the read-only summary recap. The
// transition is unconditional; the summary renders current aggregate state.
func (s *authoringService) ToSummary(sessionID string) (*dto.SessionResponse, error) {
	state, err := s.state(sessionID)
	if err != nil {
		return nil, err
	}
	state.mu.Lock()
	defer state.mu.Unlock()

	draft := state.session.Draft
	if draft.Stage != domain.StageEditor {
		return nil, domain.NewStageBlockedError(fmt.Sprintf("cannot open summary from stage %s", draft.Stage))
	}
	draft.Stage = domain.StageSummary
	state.session.UpdatedAt = time.Now()
	return toSessionResponse(state.session, state.pending), nil
}

// UpdateDraft applies field-level draft edits; nil fields are left untouched
func (s *authoringService) UpdateDraft(sessionID string, req *dto.UpdateDraftRequest) (*dto.SessionResponse, error) {
	state, err := s.state(sessionID)
	if err != nil {
		return nil, err
	}
	state.mu.Lock()
	defer state.mu.Unlock()

	draft := state.session.Draft
	if req.Title != nil {
		draft.Title = *req.Title
	}
	if req.RoleTitle != nil {
		draft.RoleTitle = *req.RoleTitle
	}
	if req.Description != nil {
		draft.Description = *req.Description
	}
	if req.ExperienceTier != nil {
		draft.ExperienceTier = *req.ExperienceTier
	}
	if req.DurationMinutes != nil && *req.DurationMinutes > 0 {
		draft.DurationMinutes = *req.DurationMinutes
	}
	if req.Difficulty != nil {
		draft.Difficulty = domain.ParseDifficulty(*req.Difficulty, draft.Difficulty)
	}
	state.session.UpdatedAt = time.Now()
	return toSessionResponse(state.session, state.pending), nil
}

// ImportDescription runs uploaded files through the text-extraction service
// and appends the resulting plain text to the draft description. The call is
// a suspension point like analysis and generation: text arriving after a
// reset or backward navigation is dropped, not applied.
func (s *authoringService) ImportDescription(ctx context.Context, sessionID string, files []domain.FilePayload) (*dto.SessionResponse, error) {
	state, err := s.state(sessionID)
	if err != nil {
		return nil, err
	}

	state.mu.Lock()
	if state.pending {
		state.mu.Unlock()
		return nil, domain.NewOperationPendingError("file import is already in progress")
	}
	epoch := state.session.Draft.GenerationEpoch
	state.pending = true
	state.mu.Unlock()

	text, extractErr := s.textExtractor.ExtractText(ctx, files)

	state.mu.Lock()
	defer state.mu.Unlock()
	state.pending = false

	draft := state.session.Draft
	if draft.GenerationEpoch != epoch {
		s.logger.Info("Dropping stale imported text",
			zap.String("session_id", sessionID),
			zap.Int64("stale_epoch", epoch))
		return toSessionResponse(state.session, state.pending), nil
	}
	if extractErr != nil {
		return nil, domain.NewExtractionFailedError(extractErr)
	}

	if text != "" {
		if draft.Description == "" {
			draft.Description = text
		} else {
			draft.Description = draft.Description + "\n\n" + text
		}
	}
	state.session.UpdatedAt = time.Now()
	return toSessionResponse(state.session, state.pending), nil
}

// Analyze performs the describe -> analyze transition: it is guarded by the
// presence of a role name or description text, invokes the extraction
// service, and merges the returned suggestions into the draft without
// discarding unrelated fields. On failure the session remains in analyze
// awaiting a retry; prior state is preserved unchanged.
func (s *authoringService) Analyze(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	state, err := s.state(sessionID)
	if err != nil {
		return nil, err
	}

	state.mu.Lock()
	draft := state.session.Draft
	if state.pending {
		state.mu.Unlock()
		return nil, domain.NewOperationPendingError("analysis is already in progress")
	}
	if draft.Stage != domain.StageDescribe && draft.Stage != domain.StageAnalyze {
		state.mu.Unlock()
		return nil, domain.NewStageBlockedError(fmt.Sprintf("cannot analyze from stage %s", draft.Stage))
	}
	if !draft.HasRoleContext() {
		state.mu.Unlock()
		return nil, domain.NewStageBlockedError("a role name or description is required before analysis")
	}

	// Transition first: the UI shows analyze in its busy state while the
	// extraction call is outstanding.
	draft.Stage = domain.StageAnalyze
	text := describeText(draft)
	preferred := draft.TagSet.Categories()
	epoch := draft.GenerationEpoch
	state.pending = true
	state.mu.Unlock()

	result, extractErr := s.extractor.ExtractRoleProfile(ctx, text, preferred)

	state.mu.Lock()
	defer state.mu.Unlock()
	state.pending = false

	draft = state.session.Draft
	if draft.GenerationEpoch != epoch {
		// The session was reset or navigated while the call was in
		// flight; the response belongs to a discarded draft.
		s.logger.Info("Dropping stale extraction result",
			zap.String("session_id", sessionID),
			zap.Int64("stale_epoch", epoch))
		return toSessionResponse(state.session, state.pending), nil
	}
	if extractErr != nil {
		return nil, extractErr
	}

	// Merge: absent suggestion fields leave draft fields untouched.
	if len(result.Skills) > 0 {
		draft.Skills = result.Skills
	}
	if len(result.Categories) > 0 {
		draft.TagSet.ReplaceAll(result.Categories)
	}
	if result.DurationMinutes > 0 {
		draft.DurationMinutes = result.DurationMinutes
	}
	if result.Difficulty != "" {
		draft.Difficulty = result.Difficulty
	}
	state.session.UpdatedAt = time.Now()

	s.logger.Info("Merged extraction suggestions",
		zap.String("session_id", sessionID),
		zap.Int("num_skills", len(result.Skills)),
		zap.Int("num_categories", len(result.Categories)))
	return toSessionResponse(state.session, state.pending), nil
}

// BuildEditor performs the analyze -> editor transition: batch question
// generation in replace mode, each question classified against the current
// tag sets. Re-entry regenerates with the same replace semantics, which
// intentionally discards prior manual edits. A zero-question result is
// recovered by seeding one placeholder question per category so the editor
// is never empty after a successful transition.
func (s *authoringService) BuildEditor(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	state, err := s.state(sessionID)
	if err != nil {
		return nil, err
	}

	state.mu.Lock()
	draft := state.session.Draft
	if state.pending {
		state.mu.Unlock()
		return nil, domain.NewOperationPendingError("question generation is already in progress")
	}
	if draft.Stage != domain.StageAnalyze && draft.Stage != domain.StageEditor {
		state.mu.Unlock()
		return nil, domain.NewStageBlockedError(fmt.Sprintf("cannot build editor from stage %s", draft.Stage))
	}

	brief := domain.GenerationBrief{
		RoleTitle:             draft.RoleTitle,
		Brief:                 draft.Description,
		AssessmentType:        "technical",
		SkillLevel:            draft.ExperienceTier,
		DurationMinutes:       draft.DurationMinutes,
		FocusAreas:            draft.TagSet.Categories(),
		IncludeCodeChallenges: draft.Difficulty != domain.DifficultyBeginner,
	}
	epoch := draft.GenerationEpoch
	defaultDifficulty := draft.Difficulty
	state.pending = true
	state.mu.Unlock()

	candidates, genErr := s.generator.GenerateQuestions(ctx, brief)

	state.mu.Lock()
	defer state.mu.Unlock()
	state.pending = false

	draft = state.session.Draft
	if draft.GenerationEpoch != epoch {
		s.logger.Info("Dropping stale generation result",
			zap.String("session_id", sessionID),
			zap.Int64("stale_epoch", epoch))
		return toSessionResponse(state.session, state.pending), nil
	}
	if genErr != nil {
		return nil, genErr
	}

	questions := make([]*domain.Question, 0, len(candidates))
	for _, c := range candidates {
		q := &domain.Question{
			ID:         util.NewULID(),
			Kind:       domain.ParseQuestionKind(c.Type),
			Prompt:     c.Question,
			Weight:     c.Weight,
			Difficulty: domain.ParseDifficulty(c.Difficulty, defaultDifficulty),
			Category:   domain.ClassifyQuestion(c.Question, draft.TagSet),
		}
		if q.Weight < 1 {
			q.Weight = 1
		}
		if q.Kind == domain.KindMultipleChoice {
			q.Options = c.Options
		}
		questions = append(questions, q)
	}

	if len(questions) == 0 {
		questions = placeholderQuestions(draft, defaultDifficulty)
		s.logger.Warn("Generation returned no questions, seeding placeholders",
			zap.String("session_id", sessionID),
			zap.Int("num_placeholders", len(questions)))
	}

	draft.Bank.InsertBatch(questions, domain.InsertReplace)
	draft.Stage = domain.StageEditor
	state.session.UpdatedAt = time.Now()

	s.logger.Info("Built question editor",
		zap.String("session_id", sessionID),
		zap.Int("num_questions", draft.Bank.Len()))
	return toSessionResponse(state.session, state.pending), nil
}

// placeholderQuestions seeds one text question per category. With no
// categories at all, a single uncategorized placeholder keeps the editor
// non-empty.
func placeholderQuestions(draft *domain.AssessmentDraft, difficulty domain.Difficulty) []*domain.Question {
	categories := draft.TagSet.Categories()
	if len(categories) == 0 {
		q := domain.NewQuestion(util.NewULID(), domain.KindText,
			"Describe your most relevant experience for this role.", difficulty)
		return []*domain.Question{q}
	}
	questions := make([]*domain.Question, 0, len(categories))
	for _, category := range categories {
		q := domain.NewQuestion(util.NewULID(), domain.KindText,
			fmt.Sprintf("Describe your experience with %s.", category), difficulty)
		q.Category = category
		questions = append(questions, q)
	}
	return questions
}

// AddTag implements AuthoringService
func (s *authoringService) AddTag(sessionID, category, tag string) (*dto.SessionResponse, error) {
	state, err := s.state(sessionID)
	if err != nil {
		return nil, err
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	state.session.Draft.TagSet.AddTag(category, tag)
	state.session.UpdatedAt = time.Now()
	return toSessionResponse(state.session, state.pending), nil
}

// RemoveTag implements AuthoringService
func (s *authoringService) RemoveTag(sessionID, category, tag string) (*dto.SessionResponse, error) {
	state, err := s.state(sessionID)
	if err != nil {
		return nil, err
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	state.session.Draft.TagSet.RemoveTag(category, tag)
	state.session.UpdatedAt = time.Now()
	return toSessionResponse(state.session, state.pending), nil
}

// AddQuestion appends a blank manually-authored question with system
// defaults.
func (s *authoringService) AddQuestion(sessionID string) (*dto.SessionResponse, error) {
	state, err := s.state(sessionID)
	if err != nil {
		return nil, err
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	draft := state.session.Draft
	draft.Bank.InsertManual(util.NewULID(), draft.Difficulty)
	state.session.UpdatedAt = time.Now()
	return toSessionResponse(state.session, state.pending), nil
}

// UpdateQuestionField implements AuthoringService. Unknown question ids are
// benign no-ops (the UI may race edits against deletes).
func (s *authoringService) UpdateQuestionField(sessionID, questionID, field string, value interface{}) (*dto.SessionResponse, error) {
	state, err := s.state(sessionID)
	if err != nil {
		return nil, err
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	state.session.Draft.Bank.UpdateField(questionID, field, value)
	state.session.UpdatedAt = time.Now()
	return toSessionResponse(state.session, state.pending), nil
}

// RemoveQuestion implements AuthoringService
func (s *authoringService) RemoveQuestion(sessionID, questionID string) (*dto.SessionResponse, error) {
	state, err := s.state(sessionID)
	if err != nil {
		return nil, err
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	state.session.Draft.Bank.Remove(questionID)
	state.session.UpdatedAt = time.Now()
	return toSessionResponse(state.session, state.pending), nil
}

// AddOption implements AuthoringService
func (s *authoringService) AddOption(sessionID, questionID, value string) (*dto.SessionResponse, error) {
	state, err := s.state(sessionID)
	if err != nil {
		return nil, err
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	state.session.Draft.Bank.AddOption(questionID, value)
	state.session.UpdatedAt = time.Now()
	return toSessionResponse(state.session, state.pending), nil
}

// UpdateOption implements AuthoringService
func (s *authoringService) UpdateOption(sessionID, questionID string, index int, value string) (*dto.SessionResponse, error) {
	state, err := s.state(sessionID)
	if err != nil {
		return nil, err
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	state.session.Draft.Bank.UpdateOption(questionID, index, value)
	state.session.UpdatedAt = time.Now()
	return toSessionResponse(state.session, state.pending), nil
}

// RemoveOption implements AuthoringService
func (s *authoringService) RemoveOption(sessionID, questionID string, index int) (*dto.SessionResponse, error) {
	state, err := s.state(sessionID)
	if err != nil {
		return nil, err
	}
	state.mu.Lock()
	defer state.mu.Unlock()
	state.session.Draft.Bank.RemoveOption(questionID, index)
	state.session.UpdatedAt = time.Now()
	return toSessionResponse(state.session, state.pending), nil
}

// AddBlock appends one outline block to the summary side-path. The block
// list is append-only.
func (s *authoringService) AddBlock(sessionID string, req *dto.BlockRequest) (*dto.SessionResponse, error) {
	state, err := s.state(sessionID)
	if err != nil {
		return nil, err
	}
	state.mu.Lock()
	defer state.mu.Unlock()

	draft := state.session.Draft
	weight := req.Weight
	if weight < 1 {
		weight = 1
	}
	draft.Blocks = append(draft.Blocks, domain.OutlineBlock{
		ID:              util.NewULID(),
		Title:           req.Title,
		DurationMinutes: req.DurationMinutes,
		Weight:          weight,
		Difficulty:      domain.ParseDifficulty(req.Difficulty, draft.Difficulty),
	})
	state.session.UpdatedAt = time.Now()
	return toSessionResponse(state.session, state.pending), nil
}

// Save promotes the draft to a persisted assessment record via the external
// record store. The draft itself stays live for further editing.
func (s *authoringService) Save(ctx context.Context, sessionID string) (*dto.SaveResponse, error) {
	state, err := s.state(sessionID)
	if err != nil {
		return nil, err
	}

	state.mu.Lock()
	draft := state.session.Draft
	assessment := &domain.Assessment{
		ID:              util.NewULID(),
		Title:           draft.Title,
		Description:     draft.Description,
		RoleTitle:       draft.RoleTitle,
		DurationMinutes: draft.DurationMinutes,
		Difficulty:      draft.Difficulty,
		Questions:       draft.Bank.Snapshot(),
		Categories:      draft.TagSet.Snapshot(),
		CreatedAt:       time.Now(),
	}
	state.mu.Unlock()

	if err := s.repo.SaveAssessment(ctx, assessment); err != nil {
		return nil, domain.NewInternalError("Failed to save assessment", err)
	}

	s.logger.Info("Saved assessment",
		zap.String("session_id", sessionID),
		zap.String("assessment_id", assessment.ID),
		zap.Int("num_questions", len(assessment.Questions)))
	return &dto.SaveResponse{AssessmentID: assessment.ID}, nil
}

// PreviewSnapshot implements AuthoringService
func (s *authoringService) PreviewSnapshot(sessionID string) (*PreviewSnapshot, error) {
	state, err := s.state(sessionID)
	if err != nil {
		return nil, err
	}
	state.mu.Lock()
	defer state.mu.Unlock()

	draft := state.session.Draft
	return &PreviewSnapshot{
		Title:           draft.Title,
		DurationMinutes: draft.DurationMinutes,
		Questions:       draft.Bank.Snapshot(),
	}, nil
}

// describeText assembles the extraction input from the describe stage
func describeText(draft *domain.AssessmentDraft) string {
	if draft.RoleTitle == "" {
		return draft.Description
	}
	if draft.Description == "" {
		return draft.RoleTitle
	}
	return draft.RoleTitle + "\n\n" + draft.Description
}

// starterTemplate seeds a draft from the optional template pre-stage
type starterTemplate struct {
	RoleTitle   string
	Description string
	Categories  []domain.CategoryTags
	Prompts     []string
}

var starterTemplates = map[string]starterTemplate{
	"backend": {
		RoleTitle:   "Backend Engineer",
		Description: "Designs, builds and operates server-side services and data stores.",
		Categories: []domain.CategoryTags{
			{Name: "API Design", Tags: []string{"rest", "http", "endpoint", "api"}},
			{Name: "Databases", Tags: []string{"sql", "index", "transaction", "query"}},
			{Name: "Concurrency", Tags: []string{"goroutine", "lock", "race", "thread"}},
		},
		Prompts: []string{
			"Walk through how you would design a rate-limited public API.",
			"A query that was fast last month is slow today. How do you investigate?",
		},
	},
	"frontend": {
		RoleTitle:   "Frontend Engineer",
		Description: "Builds accessible, performant user interfaces for the web.",
		Categories: []domain.CategoryTags{
			{Name: "JavaScript", Tags: []string{"javascript", "typescript", "async", "promise"}},
			{Name: "Styling", Tags: []string{"css", "layout", "responsive", "flexbox"}},
			{Name: "Accessibility", Tags: []string{"aria", "accessibility", "screen reader", "contrast"}},
		},
		Prompts: []string{
			"How do you keep a large single-page application responsive as it grows?",
			"Describe your approach to making a data table accessible.",
		},
	},
}
