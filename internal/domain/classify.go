package domain

import "strings"

// ClassifyQuestion assigns a category to a question by lowercase substring
// matching its text against each category's tags, in category insertion
// order. The first category with any matching tag wins.
//
// First-match-wins over insertion order is a deliberate determinism and
// simplicity trade-off: when tags overlap across categories the earlier
// category absorbs the question. No ranking heuristic is applied.
func ClassifyQuestion(questionText string, tags *CategoryTagSet) string {
	if tags == nil {
		return UncategorizedCategory
	}
	haystack := strings.ToLower(questionText)
	for _, category := range tags.Categories() {
		for _, tag := range tags.Tags(category) {
			if tag == "" {
				continue
			}
			if strings.Contains(haystack, strings.ToLower(tag)) {
				return category
			}
		}
	}
	return UncategorizedCategory
}
