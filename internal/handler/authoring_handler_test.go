package handler_test

import (
	"bytes"
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

const testSessionID = "01HZXW5YB2M3N4P5Q6R7S8T9V0"

// --- Manual Mocks ---

// MockAuthoringService implements service.AuthoringService with overridable
// func fields; methods a test does not exercise panic.
type MockAuthoringService struct {
	StartSessionFunc        func() (*dto.SessionResponse, error)
	GetSessionFunc          func(sessionID string) (*dto.SessionResponse, error)
	UpdateDraftFunc         func(sessionID string, req *dto.UpdateDraftRequest) (*dto.SessionResponse, error)
	AnalyzeFunc             func(ctx context.Context, sessionID string) (*dto.SessionResponse, error)
	AddTagFunc              func(sessionID, category, tag string) (*dto.SessionResponse, error)
	UpdateQuestionFieldFunc func(sessionID, questionID, field string, value interface{}) (*dto.SessionResponse, error)
	SaveFunc                func(ctx context.Context, sessionID string) (*dto.SaveResponse, error)
}

func (m *MockAuthoringService) StartSession() (*dto.SessionResponse, error) {
	if m.StartSessionFunc != nil {
		return m.StartSessionFunc()
	}
	panic("MockAuthoringService.StartSessionFunc not implemented")
}

func (m *MockAuthoringService) GetSession(sessionID string) (*dto.SessionResponse, error) {
	if m.GetSessionFunc != nil {
		return m.GetSessionFunc(sessionID)
	}
	panic("MockAuthoringService.GetSessionFunc not implemented")
}

func (m *MockAuthoringService) ResetSession(sessionID string) (*dto.SessionResponse, error) {
	panic("MockAuthoringService.ResetSession not implemented")
}

func (m *MockAuthoringService) SkipTemplate(sessionID string) (*dto.SessionResponse, error) {
	panic("MockAuthoringService.SkipTemplate not implemented")
}

func (m *MockAuthoringService) ApplyTemplate(sessionID string, templateName string) (*dto.SessionResponse, error) {
	panic("MockAuthoringService.ApplyTemplate not implemented")
}

func (m *MockAuthoringService) StepBack(sessionID string) (*dto.SessionResponse, error) {
	panic("MockAuthoringService.StepBack not implemented")
}

func (m *MockAuthoringService) ToSummary(sessionID string) (*dto.SessionResponse, error) {
	panic("MockAuthoringService.ToSummary not implemented")
}

func (m *MockAuthoringService) UpdateDraft(sessionID string, req *dto.UpdateDraftRequest) (*dto.SessionResponse, error) {
	if m.UpdateDraftFunc != nil {
		return m.UpdateDraftFunc(sessionID, req)
	}
	panic("MockAuthoringService.UpdateDraftFunc not implemented")
}

func (m *MockAuthoringService) ImportDescription(ctx context.Context, sessionID string, files []domain.FilePayload) (*dto.SessionResponse, error) {
	panic("MockAuthoringService.ImportDescription not implemented")
}

func (m *MockAuthoringService) Analyze(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	if m.AnalyzeFunc != nil {
		return m.AnalyzeFunc(ctx, sessionID)
	}
	panic("MockAuthoringService.AnalyzeFunc not implemented")
}

func (m *MockAuthoringService) BuildEditor(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
	panic("MockAuthoringService.BuildEditor not implemented")
}

func (m *MockAuthoringService) AddTag(sessionID, category, tag string) (*dto.SessionResponse, error) {
	if m.AddTagFunc != nil {
		return m.AddTagFunc(sessionID, category, tag)
	}
	panic("MockAuthoringService.AddTagFunc not implemented")
}

func (m *MockAuthoringService) RemoveTag(sessionID, category, tag string) (*dto.SessionResponse, error) {
	panic("MockAuthoringService.RemoveTag not implemented")
}

func (m *MockAuthoringService) AddQuestion(sessionID string) (*dto.SessionResponse, error) {
	panic("MockAuthoringService.AddQuestion not implemented")
}

func (m *MockAuthoringService) UpdateQuestionField(sessionID, questionID, field string, value interface{}) (*dto.SessionResponse, error) {
	if m.UpdateQuestionFieldFunc != nil {
		return m.UpdateQuestionFieldFunc(sessionID, questionID, field, value)
	}
	panic("MockAuthoringService.UpdateQuestionFieldFunc not implemented")
}

func (m *MockAuthoringService) RemoveQuestion(sessionID, questionID string) (*dto.SessionResponse, error) {
	panic("MockAuthoringService.RemoveQuestion not implemented")
}

func (m *MockAuthoringService) AddOption(sessionID, questionID, value string) (*dto.SessionResponse, error) {
	panic("MockAuthoringService.AddOption not implemented")
}

func (m *MockAuthoringService) UpdateOption(sessionID, questionID string, index int, value string) (*dto.SessionResponse, error) {
	panic("MockAuthoringService.UpdateOption not implemented")
}

func (m *MockAuthoringService) RemoveOption(sessionID, questionID string, index int) (*dto.SessionResponse, error) {
	panic("MockAuthoringService.RemoveOption not implemented")
}

func (m *MockAuthoringService) AddBlock(sessionID string, req *dto.BlockRequest) (*dto.SessionResponse, error) {
	panic("MockAuthoringService.AddBlock not implemented")
}

func (m *MockAuthoringService) Save(ctx context.Context, sessionID string) (*dto.SaveResponse, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, sessionID)
	}
	panic("MockAuthoringService.SaveFunc not implemented")
}

func (m *MockAuthoringService) PreviewSnapshot(sessionID string) (*service.PreviewSnapshot, error) {
	panic("MockAuthoringService.PreviewSnapshot not implemented")
}

var _ service.AuthoringService = (*MockAuthoringService)(nil)

// --- Test App Setup ---

func setupTestApp(mockSvc *MockAuthoringService) *fiber.App {
	app := fiber.New(fiber.Config{ErrorHandler: middleware.ErrorHandler()})
	h := handler.NewAuthoringHandler(mockSvc, validation.NewValidator())

	api := app.Group("/api")
	sessions := api.Group("/sessions")
	sessions.Post("/", h.StartSession)
	sessions.Get("/:id", h.GetSession)
	sessions.Patch("/:id/draft", h.UpdateDraft)
	sessions.Post("/:id/analyze", h.Analyze)
	sessions.Post("/:id/tags", h.AddTag)
	sessions.Patch("/:id/questions/:questionId", h.UpdateQuestionField)
	sessions.Post("/:id/save", h.Save)
	return app
}

func sampleSessionResponse() *dto.SessionResponse {
	return &dto.SessionResponse{
		SessionID: testSessionID,
		Stage:     string(domain.StageDescribe),
	}
}

// --- Tests ---

func TestStartSession(t *testing.T) {
	mockSvc := &MockAuthoringService{
		StartSessionFunc: func() (*dto.SessionResponse, error) {
			resp := sampleSessionResponse()
			resp.Stage = string(domain.StageTemplate)
			return resp, nil
		},
	}
	app := setupTestApp(mockSvc)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/api/sessions/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var body dto.SessionResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, testSessionID, body.SessionID)
	assert.Equal(t, string(domain.StageTemplate), body.Stage)
}

func TestGetSession(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockAuthoringService{
			GetSessionFunc: func(sessionID string) (*dto.SessionResponse, error) {
				assert.Equal(t, testSessionID, sessionID)
				return sampleSessionResponse(), nil
			},
		}
		app := setupTestApp(mockSvc)

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/sessions/"+testSessionID, nil))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("InvalidSessionID", func(t *testing.T) {
		app := setupTestApp(&MockAuthoringService{})

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/sessions/not-a-ulid", nil))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockSvc := &MockAuthoringService{
			GetSessionFunc: func(sessionID string) (*dto.SessionResponse, error) {
				return nil, domain.NewSessionNotFoundError(sessionID)
			},
		}
		app := setupTestApp(mockSvc)

		resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/api/sessions/"+testSessionID, nil))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	})
}

func TestUpdateDraft(t *testing.T) {
	mockSvc := &MockAuthoringService{
		UpdateDraftFunc: func(sessionID string, req *dto.UpdateDraftRequest) (*dto.SessionResponse, error) {
			require.NotNil(t, req.Title)
			assert.Equal(t, "Backend Screen", *req.Title)
			assert.Nil(t, req.Description)
			return sampleSessionResponse(), nil
		},
	}
	app := setupTestApp(mockSvc)

	payload, _ := json.Marshal(map[string]string{"title": "Backend Screen"})
	req := httptest.NewRequest(fiber.MethodPatch, "/api/sessions/"+testSessionID+"/draft", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestAnalyze(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockAuthoringService{
			AnalyzeFunc: func(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
				resp := sampleSessionResponse()
				resp.Stage = string(domain.StageAnalyze)
				return resp, nil
			},
		}
		app := setupTestApp(mockSvc)

		resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/api/sessions/"+testSessionID+"/analyze", nil))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("Blocked", func(t *testing.T) {
		mockSvc := &MockAuthoringService{
			AnalyzeFunc: func(ctx context.Context, sessionID string) (*dto.SessionResponse, error) {
				return nil, domain.NewStageBlockedError("a role name or description is required before analysis")
			},
		}
		app := setupTestApp(mockSvc)

		resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/api/sessions/"+testSessionID+"/analyze", nil))
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	})
}

func TestAddTag_Validation(t *testing.T) {
	app := setupTestApp(&MockAuthoringService{})

	payload, _ := json.Marshal(dto.TagRequest{Category: "", Tag: "sql"})
	req := httptest.NewRequest(fiber.MethodPost, "/api/sessions/"+testSessionID+"/tags", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestUpdateQuestionField(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockSvc := &MockAuthoringService{
			UpdateQuestionFieldFunc: func(sessionID, questionID, field string, value interface{}) (*dto.SessionResponse, error) {
				assert.Equal(t, "q-1", questionID)
				assert.Equal(t, domain.FieldWeight, field)
				// untyped JSON numbers arrive as float64
				assert.Equal(t, float64(3), value)
				return sampleSessionResponse(), nil
			},
		}
		app := setupTestApp(mockSvc)

		payload, _ := json.Marshal(dto.UpdateFieldRequest{Field: domain.FieldWeight, Value: 3})
		req := httptest.NewRequest(fiber.MethodPatch, "/api/sessions/"+testSessionID+"/questions/q-1", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
	})

	t.Run("UnknownField", func(t *testing.T) {
		app := setupTestApp(&MockAuthoringService{})

		payload, _ := json.Marshal(dto.UpdateFieldRequest{Field: "options", Value: "x"})
		req := httptest.NewRequest(fiber.MethodPatch, "/api/sessions/"+testSessionID+"/questions/q-1", bytes.NewReader(payload))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req)
		require.NoError(t, err)
		resp.Body.Close()
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	})
}

func TestSave(t *testing.T) {
	mockSvc := &MockAuthoringService{
		SaveFunc: func(ctx context.Context, sessionID string) (*dto.SaveResponse, error) {
			return &dto.SaveResponse{AssessmentID: "01HZXW5YB2M3N4P5Q6R7S8T9V1"}, nil
		},
	}
	app := setupTestApp(mockSvc)

	resp, err := app.Test(httptest.NewRequest(fiber.MethodPost, "/api/sessions/"+testSessionID+"/save", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var body dto.SaveResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.NotEmpty(t, body.AssessmentID)
}
