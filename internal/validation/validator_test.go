package validation

import (
	"testing"

	"skillforge/internal/domain"
	"skillforge/internal/util"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateSessionID(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateSessionID(util.NewULID()))

	errs := v.ValidateSessionID("")
	require.Len(t, errs, 1)
	assert.Equal(t, "session_id", errs[0].Field)

	errs = v.ValidateSessionID("not-a-ulid")
	require.Len(t, errs, 1)
	assert.Equal(t, "session_id", errs[0].Field)

	// ULIDs exclude the ambiguous letters I, L, O and U
	errs = v.ValidateSessionID("OIL0000000000000000000000U")
	assert.Len(t, errs, 1)
}

func TestValidateTagRequest(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateTagRequest("Databases", "sql"))

	errs := v.ValidateTagRequest("  ", "sql")
	require.Len(t, errs, 1)
	assert.Equal(t, "category", errs[0].Field)

	errs = v.ValidateTagRequest("", "")
	assert.Len(t, errs, 2)
}

func TestValidateUpdateFieldRequest(t *testing.T) {
	v := NewValidator()

	for _, field := range []string{
		domain.FieldPrompt, domain.FieldKind, domain.FieldWeight,
		domain.FieldDifficulty, domain.FieldCategory,
	} {
		assert.Empty(t, v.ValidateUpdateFieldRequest(field), field)
	}

	errs := v.ValidateUpdateFieldRequest("")
	require.Len(t, errs, 1)
	assert.Equal(t, "field", errs[0].Field)

	errs = v.ValidateUpdateFieldRequest("options")
	assert.Len(t, errs, 1)
}

func TestValidateBlockRequest(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateBlockRequest("Coding", 30))

	errs := v.ValidateBlockRequest("", 30)
	require.Len(t, errs, 1)
	assert.Equal(t, "title", errs[0].Field)

	assert.Len(t, v.ValidateBlockRequest("Coding", 0), 1)
	assert.Len(t, v.ValidateBlockRequest("Coding", 241), 1)
	assert.Empty(t, v.ValidateBlockRequest("Coding", 240))
}

func TestValidateToken(t *testing.T) {
	v := NewValidator()

	assert.Empty(t, v.ValidateToken(util.NewOpaqueToken()))

	errs := v.ValidateToken("")
	require.Len(t, errs, 1)
	assert.Equal(t, "token", errs[0].Field)

	assert.Len(t, v.ValidateToken("short"), 1)
	// uppercase hex is rejected: tokens are minted lowercase
	assert.Len(t, v.ValidateToken("DEADBEEFDEADBEEFDEADBEEFDEADBEEF"), 1)
}
