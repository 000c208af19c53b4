package handler_test

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"skillforge/internal/domain"
	"skillforge/internal/dto"
	"skillforge/internal/handler"
	"skillforge/internal/middleware"
	"skillforge/internal/service"
	"skillforge/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testToken = "0123456789abcdef0123456789abcdef"

// MockInvitationService implements service.InvitationService
type MockInvitationService struct {
	IssuePreviewFunc func(ctx context.Context, sessionID string) (*dto.InvitationResponse, error)
	ResolveFunc      func(ctx context.Context, token string) (*dto.InvitationSnapshotResponse, error)
}

func (m *MockInvitationService) IssuePreview(ctx context.Context, sessionID string) (*dto.InvitationResponse, error) {
	if m.IssuePreviewFunc != nil {
		return m.IssuePreviewFunc(ctx, sessionID)
	}
	panic("MockInvitationService.IssuePreviewFunc not implemented")
}

func (m *MockInvitationService) Resolve(ctx context.Context, token string) (*dto.InvitationSnapshotResponse, error) {
	if m.ResolveFunc != nil {
		return m.ResolveFunc(ctx, token)
	}
	panic("MockInvitationService.ResolveFunc not implemented")
}

var _ service.InvitationService = (*MockInvitationService)(nil)

func setupInvitationApp(mockSvc *MockInvitationService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	h := handler.NewInvitationHandler(mockSvc, validation.NewValidator())

	api := app.Group("/api")
	api.Get("/invitations/:token", h.Resolve)
	api.Post("/sessions/:id/invitations", h.IssuePreview)
	return app
}

func TestIssuePreview(t *testing.T) {
	mockSvc := &MockInvitationService{
		IssuePreviewFunc: func(ctx context.Context, sessionID string) (*dto.InvitationResponse, error) {
			assert.Equal(t, testSessionID, sessionID)
			return &dto.InvitationResponse{
				Token: testToken,
				URL:   "https://assessments.example.com/take?token=" + testToken + "&duration=45",
			}, nil
		},
	}
	app := setupInvitationApp(mockSvc)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/api/sessions/"+testSessionID+"/invitations", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var body dto.InvitationResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testToken, body.Token)
	assert.Contains(t, body.URL, "duration=45")
}

func TestResolve(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockInvitationService{
			ResolveFunc: func(ctx context.Context, token string) (*dto.InvitationSnapshotResponse, error) {
				assert.Equal(t, testToken, token)
				return &dto.InvitationSnapshotResponse{
					Title:           "Backend Screen",
					DurationMinutes: 45,
					Questions: []dto.QuestionResponse{
						{ID: "q-1", Kind: string(domain.KindText), Prompt: "Explain index selectivity", Weight: 1},
					},
				}, nil
			},
		}
		app := setupInvitationApp(mockSvc)

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/invitations/"+testToken, nil))
		require.NoError(t, err)
		defer resp.Body.Close()

		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		var body dto.InvitationSnapshotResponse
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
		assert.Equal(t, "Backend Screen", body.Title)
		require.Len(t, body.Questions, 1)
	})

	t.Run("MalformedToken", func(t *testing.T) {
		app := setupInvitationApp(&MockInvitationService{})

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/invitations/short", nil))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("UnknownToken", func(t *testing.T) {
		mockSvc := &MockInvitationService{
			ResolveFunc: func(ctx context.Context, token string) (*dto.InvitationSnapshotResponse, error) {
				return nil, domain.NewTokenNotFoundError(token)
			},
		}
		app := setupInvitationApp(mockSvc)

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/invitations/"+testToken, nil))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}
