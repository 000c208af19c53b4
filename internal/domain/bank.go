package domain

import "strings"

// InsertMode selects how a generated batch is applied to the bank
type InsertMode string

const (
	// InsertReplace discards the existing bank contents before inserting.
	// Regeneration always uses this mode: re-running analysis is the
	// authoritative regeneration point and intentionally drops manual edits.
	InsertReplace InsertMode = "replace"
	// InsertAppend preserves existing entries and adds the batch at the end.
	InsertAppend InsertMode = "append"
)

// Question field names accepted by UpdateField
const (
	FieldPrompt     = "prompt"
	FieldKind       = "kind"
	FieldWeight     = "weight"
	FieldDifficulty = "difficulty"
	FieldCategory   = "category"
)

// QuestionBank is the ordered, single source of truth for authored questions
// within one authoring session. Order is display order and is preserved for
// stable editing.
//
// The bank never fails on "not found" conditions: it is driven by a UI that
// may race edits against deletes, so absence is always a benign no-op.
type QuestionBank struct {
	questions []*Question
}

// NewQuestionBank creates an empty bank
func NewQuestionBank() *QuestionBank {
	return &QuestionBank{}
}

// Len returns the number of questions in the bank
func (b *QuestionBank) Len() int {
	return len(b.questions)
}

// Questions returns the questions in display order. The slice is a copy but
// the elements are shared; use Snapshot for an independent deep copy.
func (b *QuestionBank) Questions() []*Question {
	out := make([]*Question, len(b.questions))
	copy(out, b.questions)
	return out
}

// Snapshot returns a deep copy of the bank contents
func (b *QuestionBank) Snapshot() []*Question {
	out := make([]*Question, len(b.questions))
	for i, q := range b.questions {
		out[i] = q.Clone()
	}
	return out
}

// Find returns the question with the given id, or nil
func (b *QuestionBank) Find(id string) *Question {
	for _, q := range b.questions {
		if q.ID == id {
			return q
		}
	}
	return nil
}

// InsertBatch applies a generated batch in the given mode and returns the
// resulting full sequence.
func (b *QuestionBank) InsertBatch(questions []*Question, mode InsertMode) []*Question {
	if mode == InsertReplace {
		b.questions = nil
	}
	b.questions = append(b.questions, questions...)
	return b.Questions()
}

// InsertManual appends a blank question with system defaults: text kind,
// weight 1, the session's current default difficulty, and no category.
func (b *QuestionBank) InsertManual(id string, difficulty Difficulty) *Question {
	q := NewQuestion(id, KindText, "", difficulty)
	b.questions = append(b.questions, q)
	return q
}

// UpdateField updates a single field on the question with the given id.
// Updating an unknown id or an unknown field is a no-op; the same id updated
// twice after removal stays removed.
func (b *QuestionBank) UpdateField(id string, field string, value interface{}) {
	q := b.Find(id)
	if q == nil {
		return
	}
	switch field {
	case FieldPrompt:
		if s, ok := asString(value); ok {
			q.Prompt = s
		}
	case FieldKind:
		if s, ok := asString(value); ok {
			q.Kind = ParseQuestionKind(s)
			if q.Kind != KindMultipleChoice {
				q.Options = nil
			}
		}
	case FieldWeight:
		if n, ok := asInt(value); ok && n >= 1 {
			q.Weight = n
		}
	case FieldDifficulty:
		if s, ok := asString(value); ok {
			q.Difficulty = ParseDifficulty(s, q.Difficulty)
		}
	case FieldCategory:
		if s, ok := asString(value); ok {
			s = strings.TrimSpace(s)
			if s == "" {
				s = UncategorizedCategory
			}
			q.Category = s
		}
	}
}

// AddOption appends an option to a multiple choice question
func (b *QuestionBank) AddOption(id string, option string) {
	q := b.Find(id)
	if q == nil || q.Kind != KindMultipleChoice {
		return
	}
	q.Options = append(q.Options, option)
}

// UpdateOption replaces the option at index; out-of-range index is a no-op
func (b *QuestionBank) UpdateOption(id string, index int, value string) {
	q := b.Find(id)
	if q == nil || index < 0 || index >= len(q.Options) {
		return
	}
	q.Options[index] = value
}

// RemoveOption removes the option at index; out-of-range index is a no-op
func (b *QuestionBank) RemoveOption(id string, index int) {
	q := b.Find(id)
	if q == nil || index < 0 || index >= len(q.Options) {
		return
	}
	q.Options = append(q.Options[:index], q.Options[index+1:]...)
}

// Remove filters the id out of the bank; absent ids are a no-op
func (b *QuestionBank) Remove(id string) {
	kept := b.questions[:0]
	for _, q := range b.questions {
		if q.ID != id {
			kept = append(kept, q)
		}
	}
	b.questions = kept
}

// asString coerces JSON-decoded values into a string
func asString(value interface{}) (string, bool) {
	s, ok := value.(string)
	return s, ok
}

// asInt coerces JSON-decoded values into an int. fiber's body parser decodes
// untyped JSON numbers as float64.
func asInt(value interface{}) (int, bool) {
	switch v := value.(type) {
	case int:
		return v, true
	case int64:
		return int(v), true
	case float64:
		return int(v), true
	default:
		return 0, false
	}
}
