package repository

import (
	"context"
	"fmt"
	"time"

	"skillforge/internal/domain"
	"skillforge/internal/repository/models"

	"github.com/jmoiron/sqlx"
)

// AssessmentDatabaseAdapter implements domain.AssessmentRepository using sqlx.DB
type AssessmentDatabaseAdapter struct {
	db *sqlx.DB
}

// NewAssessmentDatabaseAdapter creates a new instance of AssessmentDatabaseAdapter
func NewAssessmentDatabaseAdapter(db *sqlx.DB) domain.AssessmentRepository {
	return &AssessmentDatabaseAdapter{db: db}
}

// SaveAssessment persists the promoted draft: the assessment row, the full
// question bank contents in display order, and the category groupings. All
// rows are written in one transaction.
func (a *AssessmentDatabaseAdapter) SaveAssessment(ctx context.Context, assessment *domain.Assessment) error {
	tx, err := a.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	now := time.Now()
	record := models.Assessment{
		ID:              assessment.ID,
		Title:           assessment.Title,
		Description:     assessment.Description,
		RoleTitle:       assessment.RoleTitle,
		DurationMinutes: assessment.DurationMinutes,
		Difficulty:      string(assessment.Difficulty),
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	const insertAssessment = `INSERT INTO assessments
		(id, title, description, role_title, duration_minutes, difficulty, created_at, updated_at)
	VALUES
		(:id, :title, :description, :role_title, :duration_minutes, :difficulty, :created_at, :updated_at)`
	if _, err := tx.NamedExecContext(ctx, insertAssessment, record); err != nil {
		return fmt.Errorf("failed to insert assessment: %w", err)
	}

	const insertQuestion = `INSERT INTO assessment_questions
		(id, assessment_id, position, kind, prompt, options, weight, difficulty, category)
	VALUES
		(:id, :assessment_id, :position, :kind, :prompt, :options, :weight, :difficulty, :category)`
	for i, q := range assessment.Questions {
		row := models.AssessmentQuestion{
			ID:           q.ID,
			AssessmentID: assessment.ID,
			Position:     i,
			Kind:         string(q.Kind),
			Prompt:       q.Prompt,
			Options:      models.StringSlice(q.Options),
			Weight:       q.Weight,
			Difficulty:   string(q.Difficulty),
			Category:     q.Category,
		}
		if _, err := tx.NamedExecContext(ctx, insertQuestion, row); err != nil {
			return fmt.Errorf("failed to insert question %s: %w", q.ID, err)
		}
	}

	const insertCategory = `INSERT INTO assessment_categories
		(assessment_id, position, name, tags)
	VALUES
		(:assessment_id, :position, :name, :tags)`
	for i, c := range assessment.Categories {
		row := models.AssessmentCategory{
			AssessmentID: assessment.ID,
			Position:     i,
			Name:         c.Name,
			Tags:         models.StringSlice(c.Tags),
		}
		if _, err := tx.NamedExecContext(ctx, insertCategory, row); err != nil {
			return fmt.Errorf("failed to insert category %s: %w", c.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit assessment: %w", err)
	}
	return nil
}

var _ domain.AssessmentRepository = (*AssessmentDatabaseAdapter)(nil)
