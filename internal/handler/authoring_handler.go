package handler

import (
	"skillforge/internal/domain"
	"skillforge/internal/dto"
	"skillforge/internal/service"
	"skillforge/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// AuthoringHandler handles authoring-session HTTP requests. Errors are
// returned to the centralized error middleware for mapping.
type AuthoringHandler struct {
	service   service.AuthoringService
	validator *validation.Validator
}

// NewAuthoringHandler creates a new AuthoringHandler instance
func NewAuthoringHandler(service service.AuthoringService, validator *validation.Validator) *AuthoringHandler {
	return &AuthoringHandler{
		service:   service,
		validator: validator,
	}
}

// StartSession handles POST /api/sessions
func (h *AuthoringHandler) StartSession(c *fiber.Ctx) error {
	resp, err := h.service.StartSession()
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// GetSession handles GET /api/sessions/:id
func (h *AuthoringHandler) GetSession(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}
	resp, err := h.service.GetSession(sessionID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ResetSession handles POST /api/sessions/:id/reset
func (h *AuthoringHandler) ResetSession(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}
	resp, err := h.service.ResetSession(sessionID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// SkipTemplate handles POST /api/sessions/:id/template/skip
func (h *AuthoringHandler) SkipTemplate(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}
	resp, err := h.service.SkipTemplate(sessionID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ApplyTemplate handles POST /api/sessions/:id/template/apply
func (h *AuthoringHandler) ApplyTemplate(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}
	var req struct {
		Name string `json:"name"`
	}
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	resp, err := h.service.ApplyTemplate(sessionID, req.Name)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// StepBack handles POST /api/sessions/:id/back
func (h *AuthoringHandler) StepBack(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}
	resp, err := h.service.StepBack(sessionID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// UpdateDraft handles PATCH /api/sessions/:id/draft
func (h *AuthoringHandler) UpdateDraft(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}
	var req dto.UpdateDraftRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	resp, err := h.service.UpdateDraft(sessionID, &req)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ImportDescription handles POST /api/sessions/:id/describe/files
func (h *AuthoringHandler) ImportDescription(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}
	var req dto.ExtractFilesRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if len(req.Files) == 0 {
		return domain.ValidationErrors{domain.NewMissingFieldError("files")}
	}
	files := make([]domain.FilePayload, 0, len(req.Files))
	for _, f := range req.Files {
		files = append(files, domain.FilePayload{
			Name:        f.Name,
			ContentType: f.ContentType,
			Data:        f.Data,
		})
	}
	resp, err := h.service.ImportDescription(c.Context(), sessionID, files)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// Analyze handles POST /api/sessions/:id/analyze
func (h *AuthoringHandler) Analyze(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}
	resp, err := h.service.Analyze(c.Context(), sessionID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// BuildEditor handles POST /api/sessions/:id/editor
func (h *AuthoringHandler) BuildEditor(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}
	resp, err := h.service.BuildEditor(c.Context(), sessionID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// ToSummary handles POST /api/sessions/:id/summary
func (h *AuthoringHandler) ToSummary(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}
	resp, err := h.service.ToSummary(sessionID)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// AddTag handles POST /api/sessions/:id/tags
func (h *AuthoringHandler) AddTag(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}
	var req dto.TagRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.ValidateTagRequest(req.Category, req.Tag); len(errs) > 0 {
		return errs
	}
	resp, err := h.service.AddTag(sessionID, req.Category, req.Tag)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// RemoveTag handles DELETE /api/sessions/:id/tags
func (h *AuthoringHandler) RemoveTag(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}
	var req dto.TagRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.ValidateTagRequest(req.Category, req.Tag); len(errs) > 0 {
		return errs
	}
	resp, err := h.service.RemoveTag(sessionID, req.Category, req.Tag)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// AddQuestion handles POST /api/sessions/:id/questions
func (h *AuthoringHandler) AddQuestion(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}
	resp, err := h.service.AddQuestion(sessionID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// UpdateQuestionField handles PATCH /api/sessions/:id/questions/:questionId
func (h *AuthoringHandler) UpdateQuestionField(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}
	var req dto.UpdateFieldRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.ValidateUpdateFieldRequest(req.Field); len(errs) > 0 {
		return errs
	}
	resp, err := h.service.UpdateQuestionField(sessionID, c.Params("questionId"), req.Field, req.Value)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// RemoveQuestion handles DELETE /api/sessions/:id/questions/:questionId
func (h *AuthoringHandler) RemoveQuestion(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}
	resp, err := h.service.RemoveQuestion(sessionID, c.Params("questionId"))
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// AddOption handles POST /api/sessions/:id/questions/:questionId/options
func (h *AuthoringHandler) AddOption(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}
	var req dto.AddOptionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	resp, err := h.service.AddOption(sessionID, c.Params("questionId"), req.Value)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// UpdateOption handles PATCH /api/sessions/:id/questions/:questionId/options
func (h *AuthoringHandler) UpdateOption(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}
	var req dto.UpdateOptionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	resp, err := h.service.UpdateOption(sessionID, c.Params("questionId"), req.Index, req.Value)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// RemoveOption handles DELETE /api/sessions/:id/questions/:questionId/options
func (h *AuthoringHandler) RemoveOption(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}
	var req dto.RemoveOptionRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	resp, err := h.service.RemoveOption(sessionID, c.Params("questionId"), req.Index)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}

// AddBlock handles POST /api/sessions/:id/blocks
func (h *AuthoringHandler) AddBlock(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}
	var req dto.BlockRequest
	if err := c.BodyParser(&req); err != nil {
		return domain.NewInvalidInputError("invalid request body")
	}
	if errs := h.validator.ValidateBlockRequest(req.Title, req.DurationMinutes); len(errs) > 0 {
		return errs
	}
	resp, err := h.service.AddBlock(sessionID, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Save handles POST /api/sessions/:id/save
func (h *AuthoringHandler) Save(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}
	resp, err := h.service.Save(c.Context(), sessionID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}
