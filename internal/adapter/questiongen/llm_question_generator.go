package questiongen

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"skillforge/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

// LLMQuestionGenerator implements domain.QuestionGenerationService using a
// LangchainGo LLM. Candidates with no question text are skipped rather than
// failing the whole batch.
type LLMQuestionGenerator struct {
	llm    llms.Model
	logger *zap.Logger
}

// NewLLMQuestionGenerator creates a new instance of LLMQuestionGenerator.
func NewLLMQuestionGenerator(llm llms.Model, logger *zap.Logger) domain.QuestionGenerationService {
	return &LLMQuestionGenerator{llm: llm, logger: logger}
}

// GenerateQuestions implements domain.QuestionGenerationService
func (g *LLMQuestionGenerator) GenerateQuestions(ctx context.Context, brief domain.GenerationBrief) ([]domain.GeneratedQuestion, error) {
	codeNote := "Do not include code challenges."
	if brief.IncludeCodeChallenges {
		codeNote = `Include one or two "code" questions with a small practical task.`
	}

	prompt := fmt.Sprintf(`You are an expert technical assessment author. Create a bank of test questions for the role below.

Role title: %s
Brief: %s
Assessment type: %s
Skill level: %s
Target duration: %d minutes
Focus areas: [%s]
%s

For each question, provide the following information in JSON format:
1.  "question": the question text.
2.  "type": one of "multiple_choice", "text", "code", "rating".
3.  "options": for multiple_choice only, an array of 3-5 answer options.
4.  "weight": an integer from 1 to 5 reflecting importance.
5.  "difficulty": "beginner", "intermediate" or "advanced".

Ensure your entire response is a single JSON array of question objects.
Example for one question object:
{
  "question": "Which HTTP status code signals a conflict?",
  "type": "multiple_choice",
  "options": ["409", "404", "500", "302"],
  "weight": 2,
  "difficulty": "beginner"
}`,
		brief.RoleTitle, brief.Brief, brief.AssessmentType, brief.SkillLevel,
		brief.DurationMinutes, strings.Join(brief.FocusAreas, ", "), codeNote)

	raw, err := llms.GenerateFromSinglePrompt(ctx, g.llm, prompt)
	if err != nil {
		g.logger.Error("Question generation LLM call failed", zap.Error(err))
		return nil, domain.NewExtractionFailedError(err)
	}

	jsonStr, ok := extractJSONArray(raw)
	if !ok {
		g.logger.Error("Generation response contained no JSON array",
			zap.String("raw_response", raw))
		return nil, domain.NewExtractionFailedError(fmt.Errorf("no JSON array in LLM response"))
	}

	var candidates []domain.GeneratedQuestion
	if err := json.Unmarshal([]byte(jsonStr), &candidates); err != nil {
		g.logger.Error("Failed to unmarshal generated questions",
			zap.Error(err),
			zap.String("json_string", jsonStr))
		return nil, domain.NewExtractionFailedError(fmt.Errorf("failed to unmarshal LLM response: %w", err))
	}

	questions := make([]domain.GeneratedQuestion, 0, len(candidates))
	for _, c := range candidates {
		if strings.TrimSpace(c.Question) == "" {
			g.logger.Warn("Skipping generated candidate without question text")
			continue
		}
		questions = append(questions, c)
	}

	g.logger.Info("Generated question candidates",
		zap.Int("num_requested_focus_areas", len(brief.FocusAreas)),
		zap.Int("num_generated", len(questions)))
	return questions, nil
}

// extractJSONArray pulls the first top-level JSON array out of an LLM
// response, stripping reasoning tags and markdown fences.
func extractJSONArray(raw string) (string, bool) {
	cleaned := strings.TrimSpace(raw)
	if thinkStart := strings.Index(cleaned, "<think>"); thinkStart != -1 {
		if thinkEnd := strings.Index(cleaned, "</think>"); thinkEnd != -1 && thinkEnd > thinkStart {
			cleaned = strings.TrimSpace(cleaned[:thinkStart] + cleaned[thinkEnd+len("</think>"):])
		}
	}
	start := strings.Index(cleaned, "[")
	end := strings.LastIndex(cleaned, "]")
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return cleaned[start : end+1], true
}

var _ domain.QuestionGenerationService = (*LLMQuestionGenerator)(nil)
