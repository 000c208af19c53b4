package domain

import "strings"

// CategoryTags pairs a category name with its descriptive tag strings.
// Used as the wire/snapshot shape for CategoryTagSet contents.
type CategoryTags struct {
	Name string   `json:"name"`
	Tags []string `json:"tags"`
}

// CategoryTagSet maps category names to user-curated tag strings. Category
// order is insertion order and drives the first-match-wins classifier, so
// it is preserved explicitly. All operations are total functions over local
// state; there are no error conditions.
type CategoryTagSet struct {
	order []string
	tags  map[string][]string
}

// NewCategoryTagSet creates an empty tag set
func NewCategoryTagSet() *CategoryTagSet {
	return &CategoryTagSet{tags: make(map[string][]string)}
}

// ReplaceAll discards the current contents and installs the given sets,
// preserving their order. Used after a fresh extraction. Tags are trimmed
// and de-duplicated case-sensitively; duplicate category names keep the
// first occurrence.
func (s *CategoryTagSet) ReplaceAll(sets []CategoryTags) {
	s.order = nil
	s.tags = make(map[string][]string)
	for _, set := range sets {
		name := strings.TrimSpace(set.Name)
		if name == "" {
			continue
		}
		if _, exists := s.tags[name]; !exists {
			s.order = append(s.order, name)
			s.tags[name] = nil
		}
		for _, tag := range set.Tags {
			s.addTag(name, tag)
		}
	}
}

// AddTag adds a tag to a category, creating the category at the end of the
// order if needed. The tag is trimmed; adding an empty string or an exact
// duplicate is a no-op.
func (s *CategoryTagSet) AddTag(category, tag string) []string {
	category = strings.TrimSpace(category)
	if category == "" {
		return nil
	}
	if _, exists := s.tags[category]; !exists {
		s.order = append(s.order, category)
		s.tags[category] = nil
	}
	s.addTag(category, tag)
	return s.Tags(category)
}

func (s *CategoryTagSet) addTag(category, tag string) {
	tag = strings.TrimSpace(tag)
	if tag == "" {
		return
	}
	for _, existing := range s.tags[category] {
		if existing == tag {
			return
		}
	}
	s.tags[category] = append(s.tags[category], tag)
}

// RemoveTag removes an exact tag match from a category; absent category or
// tag is a no-op. The category itself stays, even when emptied.
func (s *CategoryTagSet) RemoveTag(category, tag string) []string {
	existing, ok := s.tags[category]
	if !ok {
		return nil
	}
	kept := existing[:0]
	for _, t := range existing {
		if t != tag {
			kept = append(kept, t)
		}
	}
	s.tags[category] = kept
	return s.Tags(category)
}

// Categories returns the category names in insertion order
func (s *CategoryTagSet) Categories() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Tags returns a copy of the tag list for a category
func (s *CategoryTagSet) Tags(category string) []string {
	tags, ok := s.tags[category]
	if !ok {
		return nil
	}
	return append([]string(nil), tags...)
}

// Len returns the number of categories
func (s *CategoryTagSet) Len() int {
	return len(s.order)
}

// Snapshot returns the full contents in insertion order
func (s *CategoryTagSet) Snapshot() []CategoryTags {
	out := make([]CategoryTags, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, CategoryTags{
			Name: name,
			Tags: append([]string(nil), s.tags[name]...),
		})
	}
	return out
}
