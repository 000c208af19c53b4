package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClassifyQuestion_FirstMatchWinsOverInsertionOrder(t *testing.T) {
	set := NewCategoryTagSet()
	set.ReplaceAll([]CategoryTags{
		{Name: "A", Tags: []string{"foo"}},
		{Name: "B", Tags: []string{"foo", "bar"}},
	})

	// "foo" appears in both categories; A was inserted first and wins
	assert.Equal(t, "A", ClassifyQuestion("something about foo here", set))
	// "bar" only matches B
	assert.Equal(t, "B", ClassifyQuestion("raise the bar", set))
}

func TestClassifyQuestion_MatchingIsCaseInsensitiveSubstring(t *testing.T) {
	set := NewCategoryTagSet()
	set.AddTag("Databases", "SQL")

	assert.Equal(t, "Databases", ClassifyQuestion("Write a sql query that joins two tables", set))
	assert.Equal(t, "Databases", ClassifyQuestion("NoSQL stores differ how?", set))
}

func TestClassifyQuestion_NoMatchReturnsUncategorized(t *testing.T) {
	set := NewCategoryTagSet()
	set.AddTag("Databases", "sql")

	assert.Equal(t, UncategorizedCategory, ClassifyQuestion("Explain goroutines", set))
	assert.Equal(t, UncategorizedCategory, ClassifyQuestion("anything", NewCategoryTagSet()))
	assert.Equal(t, UncategorizedCategory, ClassifyQuestion("anything", nil))
}

func TestClassifyQuestion_IsDeterministic(t *testing.T) {
	set := NewCategoryTagSet()
	set.ReplaceAll([]CategoryTags{
		{Name: "A", Tags: []string{"shared"}},
		{Name: "B", Tags: []string{"shared"}},
		{Name: "C", Tags: []string{"shared"}},
	})

	for i := 0; i < 50; i++ {
		assert.Equal(t, "A", ClassifyQuestion("a shared term", set))
	}
}
