package extraction

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"skillforge/internal/domain"

	"github.com/tmc/langchaingo/llms"
	"go.uber.org/zap"
)

// RoleProfileExtractor implements domain.ExtractionService on top of a
// LangchainGo LLM. It normalizes the model's JSON output into the engine's
// suggestion shape and tolerates partially filled responses.
type RoleProfileExtractor struct {
	llm    llms.Model
	logger *zap.Logger
}

// NewRoleProfileExtractor creates a new instance of RoleProfileExtractor.
func NewRoleProfileExtractor(llm llms.Model, logger *zap.Logger) domain.ExtractionService {
	return &RoleProfileExtractor{llm: llm, logger: logger}
}

// extractionResponse mirrors the JSON contract with the AI Extraction
// Service. Every field is optional.
type extractionResponse struct {
	Skills     []string `json:"skills"`
	Categories []struct {
		Name string   `json:"name"`
		Tags []string `json:"tags"`
	} `json:"categories"`
	DurationMinutes int    `json:"duration_minutes"`
	Difficulty      string `json:"difficulty"`
}

// ExtractRoleProfile implements domain.ExtractionService
func (e *RoleProfileExtractor) ExtractRoleProfile(ctx context.Context, text string, preferredCategories []string) (*domain.ExtractionResult, error) {
	prompt := fmt.Sprintf(`You are an assessment designer for a recruiting platform. Analyze the role description below and respond with ONLY a JSON object in the following format:
{
    "skills": ["skill1", "skill2"],
    "categories": [{"name": "Category Name", "tags": ["tag1", "tag2"]}],
    "duration_minutes": 30,
    "difficulty": "beginner|intermediate|advanced"
}

Role Description:
%s

Preferred category names (reuse these where they fit): [%s]

Rules:
1. skills lists the 3-8 most relevant skills for the role
2. each category groups related skills; tags are short lowercase phrases likely to appear in question text
3. duration_minutes is a realistic total assessment length
4. omit duration_minutes or difficulty if the description gives no signal`,
		text, strings.Join(preferredCategories, ", "))

	raw, err := llms.GenerateFromSinglePrompt(ctx, e.llm, prompt)
	if err != nil {
		e.logger.Error("Extraction LLM call failed", zap.Error(err))
		return nil, domain.NewExtractionFailedError(err)
	}

	jsonStr, ok := extractJSONObject(raw)
	if !ok {
		e.logger.Error("Extraction response contained no JSON object",
			zap.String("raw_response", raw))
		return nil, domain.NewExtractionFailedError(fmt.Errorf("no JSON object in LLM response"))
	}

	var resp extractionResponse
	if err := json.Unmarshal([]byte(jsonStr), &resp); err != nil {
		e.logger.Error("Failed to unmarshal extraction response",
			zap.Error(err),
			zap.String("json_string", jsonStr))
		return nil, domain.NewExtractionFailedError(fmt.Errorf("failed to unmarshal LLM response: %w", err))
	}

	result := &domain.ExtractionResult{
		Skills:          resp.Skills,
		DurationMinutes: resp.DurationMinutes,
		Difficulty:      domain.ParseDifficulty(resp.Difficulty, ""),
	}
	for _, c := range resp.Categories {
		if strings.TrimSpace(c.Name) == "" {
			continue
		}
		result.Categories = append(result.Categories, domain.CategoryTags{
			Name: strings.TrimSpace(c.Name),
			Tags: c.Tags,
		})
	}

	e.logger.Info("Extracted role profile",
		zap.Int("num_skills", len(result.Skills)),
		zap.Int("num_categories", len(result.Categories)),
		zap.Int("duration_minutes", result.DurationMinutes))
	return result, nil
}

// extractJSONObject pulls the first top-level JSON object out of an LLM
// response, stripping reasoning tags and markdown fences the model may wrap
// around it.
func extractJSONObject(raw string) (string, bool) {
	cleaned := strings.TrimSpace(raw)
	if thinkStart := strings.Index(cleaned, "<think>"); thinkStart != -1 {
		if thinkEnd := strings.Index(cleaned, "</think>"); thinkEnd != -1 && thinkEnd > thinkStart {
			cleaned = strings.TrimSpace(cleaned[:thinkStart] + cleaned[thinkEnd+len("</think>"):])
		}
	}
	start := strings.Index(cleaned, "{")
	end := strings.LastIndex(cleaned, "}")
	if start == -1 || end == -1 || end <= start {
		return "", false
	}
	return cleaned[start : end+1], true
}

var _ domain.ExtractionService = (*RoleProfileExtractor)(nil)
