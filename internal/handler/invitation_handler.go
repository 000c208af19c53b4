package handler

import (
	"skillforge/internal/service"
	"skillforge/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// InvitationHandler handles preview invitation HTTP requests
type InvitationHandler struct {
	service   service.InvitationService
	validator *validation.Validator
}

// NewInvitationHandler creates a new InvitationHandler instance
func NewInvitationHandler(service service.InvitationService, validator *validation.Validator) *InvitationHandler {
	return &InvitationHandler{
		service:   service,
		validator: validator,
	}
}

// IssuePreview handles POST /api/sessions/:id/invitations
func (h *InvitationHandler) IssuePreview(c *fiber.Ctx) error {
	sessionID := c.Params("id")
	if errs := h.validator.ValidateSessionID(sessionID); len(errs) > 0 {
		return errs
	}
	resp, err := h.service.IssuePreview(c.Context(), sessionID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(resp)
}

// Resolve handles GET /api/invitations/:token
func (h *InvitationHandler) Resolve(c *fiber.Ctx) error {
	token := c.Params("token")
	if errs := h.validator.ValidateToken(token); len(errs) > 0 {
		return errs
	}
	resp, err := h.service.Resolve(c.Context(), token)
	if err != nil {
		return err
	}
	return c.JSON(resp)
}
