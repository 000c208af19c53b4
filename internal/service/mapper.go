package service

import (
	"skillforge/internal/domain"
	"skillforge/internal/dto"
)

// toSessionResponse builds the full session view, recomputing aggregates
// from the current bank state. Must be called with the session lock held.
func toSessionResponse(session *domain.AuthoringSession, pending bool) *dto.SessionResponse {
	draft := session.Draft

	categories := make([]dto.CategoryTagsResponse, 0, draft.TagSet.Len())
	for _, set := range draft.TagSet.Snapshot() {
		categories = append(categories, dto.CategoryTagsResponse{Name: set.Name, Tags: set.Tags})
	}

	questions := make([]dto.QuestionResponse, 0, draft.Bank.Len())
	for _, q := range draft.Bank.Questions() {
		questions = append(questions, toQuestionResponse(q))
	}

	blocks := make([]dto.BlockResponse, 0, len(draft.Blocks))
	for _, b := range draft.Blocks {
		blocks = append(blocks, dto.BlockResponse{
			ID:              b.ID,
			Title:           b.Title,
			DurationMinutes: b.DurationMinutes,
			Weight:          b.Weight,
			Difficulty:      string(b.Difficulty),
		})
	}

	return &dto.SessionResponse{
		SessionID:  session.ID,
		Stage:      string(draft.Stage),
		Pending:    pending,
		Aggregates: toAggregatesResponse(domain.CalculateAggregates(draft.Bank)),
		Draft: dto.DraftResponse{
			Title:           draft.Title,
			RoleTitle:       draft.RoleTitle,
			Description:     draft.Description,
			ExperienceTier:  draft.ExperienceTier,
			DurationMinutes: draft.DurationMinutes,
			Difficulty:      string(draft.Difficulty),
			Skills:          draft.Skills,
			Categories:      categories,
			Questions:       questions,
			Blocks:          blocks,
		},
	}
}

func toQuestionResponse(q *domain.Question) dto.QuestionResponse {
	return dto.QuestionResponse{
		ID:         q.ID,
		Kind:       string(q.Kind),
		Prompt:     q.Prompt,
		Options:    q.Options,
		Weight:     q.Weight,
		Difficulty: string(q.Difficulty),
		Category:   q.Category,
	}
}

func toAggregatesResponse(agg domain.Aggregates) dto.AggregatesResponse {
	byCategory := make(map[string]dto.CategoryAggregateResponse, len(agg.ByCategory))
	for name, cat := range agg.ByCategory {
		byCategory[name] = dto.CategoryAggregateResponse{
			Count:            cat.Count,
			EstimatedMinutes: cat.EstimatedMinutes,
			Points:           cat.Points,
		}
	}
	return dto.AggregatesResponse{
		TotalPoints:            agg.TotalPoints,
		TotalQuestions:         agg.TotalQuestions,
		EstimatedMinutes:       agg.EstimatedMinutes,
		ExpectedAveragePercent: agg.ExpectedAveragePercent,
		ByCategory:             byCategory,
	}
}
