package service

import (
	"context"
	"sync"
	"time"

	"skillforge/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockExtractionService struct {
	mock.Mock
}

func (m *MockExtractionService) ExtractRoleProfile(ctx context.Context, text string, preferredCategories []string) (*domain.ExtractionResult, error) {
	args := m.Called(ctx, text, preferredCategories)
	if result, ok := args.Get(0).(*domain.ExtractionResult); ok {
		return result, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockQuestionGenerationService struct {
	mock.Mock
}

func (m *MockQuestionGenerationService) GenerateQuestions(ctx context.Context, brief domain.GenerationBrief) ([]domain.GeneratedQuestion, error) {
	args := m.Called(ctx, brief)
	if questions, ok := args.Get(0).([]domain.GeneratedQuestion); ok {
		return questions, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockTextExtractor struct {
	mock.Mock
}

func (m *MockTextExtractor) ExtractText(ctx context.Context, files []domain.FilePayload) (string, error) {
	args := m.Called(ctx, files)
	return args.String(0), args.Error(1)
}

type MockAssessmentRepository struct {
	mock.Mock
}

func (m *MockAssessmentRepository) SaveAssessment(ctx context.Context, assessment *domain.Assessment) error {
	args := m.Called(ctx, assessment)
	return args.Error(0)
}

// memoryCache is an in-memory domain.Cache used by invitation tests
type memoryCache struct {
	mu      sync.Mutex
	entries map[string]string
}

func newMemoryCache() *memoryCache {
	return &memoryCache{entries: make(map[string]string)}
}

func (c *memoryCache) Get(ctx context.Context, key string) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.entries[key]
	if !ok {
		return "", domain.ErrCacheMiss
	}
	return value, nil
}

func (c *memoryCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *memoryCache) Delete(ctx context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
	return nil
}

func (c *memoryCache) Ping(ctx context.Context) error {
	return nil
}
