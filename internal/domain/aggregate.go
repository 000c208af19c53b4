package domain

// Scoring and timing constants. These are fixed business heuristics carried
// over from the product's authoring flow, kept in one place so their
// arbitrary nature is visible and swappable. They are not derived from a
// calibrated model and must not be "improved" piecemeal.
const (
	// PointsPerWeightUnit scales question weight into points.
	PointsPerWeightUnit = 10
	// MinutesPerQuestion is the per-question time estimate.
	MinutesPerQuestion = 2
	// MinAssessmentMinutes floors the whole-assessment time estimate.
	MinAssessmentMinutes = 5
	// MinCategoryMinutes floors the per-category time estimate.
	MinCategoryMinutes = 3
	// MinExpectedAveragePercent floors the expected average score proxy.
	MinExpectedAveragePercent = 40
)

// CategoryAggregate summarizes one category's share of the bank
type CategoryAggregate struct {
	Count            int `json:"count"`
	EstimatedMinutes int `json:"estimated_minutes"`
	Points           int `json:"points"`
}

// Aggregates are summary metrics derived purely from the current bank state.
// They are recomputed on every mutation, never cached or persisted.
type Aggregates struct {
	TotalPoints            int                          `json:"total_points"`
	TotalQuestions         int                          `json:"total_questions"`
	EstimatedMinutes       int                          `json:"estimated_minutes"`
	ExpectedAveragePercent int                          `json:"expected_average_percent"`
	ByCategory             map[string]CategoryAggregate `json:"by_category"`
}

// CalculateAggregates derives summary metrics from the bank:
//
//   - total points: sum of weights times PointsPerWeightUnit
//   - estimated minutes: MinutesPerQuestion per question, floored at
//     MinAssessmentMinutes
//   - expected average percent: 100 minus question count (more questions
//     imply a lower expected average), floored at MinExpectedAveragePercent
//   - per category: count, count*MinutesPerQuestion floored at
//     MinCategoryMinutes, and count*PointsPerWeightUnit
func CalculateAggregates(bank *QuestionBank) Aggregates {
	agg := Aggregates{
		ByCategory: make(map[string]CategoryAggregate),
	}
	if bank == nil {
		agg.EstimatedMinutes = MinAssessmentMinutes
		agg.ExpectedAveragePercent = 100
		return agg
	}

	counts := make(map[string]int)
	for _, q := range bank.Questions() {
		agg.TotalPoints += q.Weight * PointsPerWeightUnit
		counts[q.Category]++
	}
	agg.TotalQuestions = bank.Len()

	agg.EstimatedMinutes = agg.TotalQuestions * MinutesPerQuestion
	if agg.EstimatedMinutes < MinAssessmentMinutes {
		agg.EstimatedMinutes = MinAssessmentMinutes
	}

	agg.ExpectedAveragePercent = 100 - agg.TotalQuestions
	if agg.ExpectedAveragePercent < MinExpectedAveragePercent {
		agg.ExpectedAveragePercent = MinExpectedAveragePercent
	}

	for category, count := range counts {
		minutes := count * MinutesPerQuestion
		if minutes < MinCategoryMinutes {
			minutes = MinCategoryMinutes
		}
		agg.ByCategory[category] = CategoryAggregate{
			Count:            count,
			EstimatedMinutes: minutes,
			Points:           count * PointsPerWeightUnit,
		}
	}
	return agg
}
