package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StringSlice stores a string array as a JSON column
type StringSlice []string

// Value implements the driver.Valuer interface
func (s StringSlice) Value() (driver.Value, error) {
	if s == nil {
		return "[]", nil
	}
	jsonData, err := json.Marshal(s)
	if err != nil {
		return nil, err
	}
	return string(jsonData), nil
}

// Scan implements the sql.Scanner interface
func (s *StringSlice) Scan(value interface{}) error {
	if value == nil {
		*s = StringSlice{}
		return nil
	}

	var bytesToParse []byte
	switch v := value.(type) {
	case []byte:
		bytesToParse = v
	case string:
		bytesToParse = []byte(v)
	default:
		return errors.New("StringSlice Scan: unsupported type " + fmt.Sprintf("%T", value))
	}

	if len(bytesToParse) == 0 || string(bytesToParse) == "null" {
		*s = StringSlice{}
		return nil
	}
	return json.Unmarshal(bytesToParse, s)
}

// Assessment is the persisted assessment record
type Assessment struct {
	ID              string    `db:"id"`
	Title           string    `db:"title"`
	Description     string    `db:"description"`
	RoleTitle       string    `db:"role_title"`
	DurationMinutes int       `db:"duration_minutes"`
	Difficulty      string    `db:"difficulty"`
	CreatedAt       time.Time `db:"created_at"`
	UpdatedAt       time.Time `db:"updated_at"`
}

// AssessmentQuestion is one persisted question row; position preserves the
// bank's display order
type AssessmentQuestion struct {
	ID           string      `db:"id"`
	AssessmentID string      `db:"assessment_id"`
	Position     int         `db:"position"`
	Kind         string      `db:"kind"`
	Prompt       string      `db:"prompt"`
	Options      StringSlice `db:"options"`
	Weight       int         `db:"weight"`
	Difficulty   string      `db:"difficulty"`
	Category     string      `db:"category"`
}

// AssessmentCategory is one persisted category grouping with its tags
type AssessmentCategory struct {
	AssessmentID string      `db:"assessment_id"`
	Position     int         `db:"position"`
	Name         string      `db:"name"`
	Tags         StringSlice `db:"tags"`
}
