package validation

import (
	"regexp"
	"strings"

	"skillforge/internal/domain"
)

// Validator provides request validation functionality
type Validator struct{}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	return &Validator{}
}

// ValidateSessionID validates a session id path parameter
func (v *Validator) ValidateSessionID(sessionID string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(sessionID) == "" {
		errors = append(errors, domain.NewMissingFieldError("session_id"))
	} else if !isValidULID(sessionID) {
		errors = append(errors, domain.NewInvalidFormatError("session_id", sessionID))
	}

	return errors
}

// ValidateTagRequest validates an add/remove tag request
func (v *Validator) ValidateTagRequest(category, tag string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(category) == "" {
		errors = append(errors, domain.NewMissingFieldError("category"))
	}
	if strings.TrimSpace(tag) == "" {
		errors = append(errors, domain.NewMissingFieldError("tag"))
	}

	return errors
}

// ValidateUpdateFieldRequest validates a question field update
func (v *Validator) ValidateUpdateFieldRequest(field string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	switch field {
	case domain.FieldPrompt, domain.FieldKind, domain.FieldWeight,
		domain.FieldDifficulty, domain.FieldCategory:
	case "":
		errors = append(errors, domain.NewMissingFieldError("field"))
	default:
		errors = append(errors, domain.NewInvalidFormatError("field", field))
	}

	return errors
}

// ValidateBlockRequest validates an outline block request
func (v *Validator) ValidateBlockRequest(title string, durationMinutes int) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(title) == "" {
		errors = append(errors, domain.NewMissingFieldError("title"))
	}
	if durationMinutes < 1 || durationMinutes > 240 {
		errors = append(errors, domain.NewOutOfRangeError("duration_minutes", durationMinutes, 1, 240))
	}

	return errors
}

// ValidateToken validates an invitation token query parameter
func (v *Validator) ValidateToken(token string) domain.ValidationErrors {
	var errors domain.ValidationErrors

	if strings.TrimSpace(token) == "" {
		errors = append(errors, domain.NewMissingFieldError("token"))
	} else if !isValidToken(token) {
		errors = append(errors, domain.NewInvalidFormatError("token", token))
	}

	return errors
}

// Helper functions for validation

// isValidULID checks if the string is a valid ULID format
func isValidULID(s string) bool {
	if len(s) != 26 {
		return false
	}
	validULID := regexp.MustCompile(`^[0-9A-HJKMNP-TV-Z]{26}$`)
	return validULID.MatchString(s)
}

// isValidToken checks the opaque invitation token shape (32 hex chars)
func isValidToken(s string) bool {
	if len(s) != 32 {
		return false
	}
	validToken := regexp.MustCompile(`^[0-9a-f]{32}$`)
	return validToken.MatchString(s)
}
