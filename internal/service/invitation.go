package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"skillforge/internal/cache"
	"skillforge/internal/domain"
	"skillforge/internal/dto"
	"skillforge/internal/util"

	"go.uber.org/zap"
)

// InvitationCachePrefix namespaces invitation snapshots in the store
const InvitationCachePrefix = "invitation"

// InvitationService mints opaque tokens bound to immutable snapshots of the
// assembled assessment, for shareable preview/take links. Tokens are never
// updated after creation: later edits to the live draft do not change what
// an already-issued token resolves to. Expiry, if any, is a property of the
// storage medium, not enforced here.
type InvitationService interface {
	IssuePreview(ctx context.Context, sessionID string) (*dto.InvitationResponse, error)
	Resolve(ctx context.Context, token string) (*dto.InvitationSnapshotResponse, error)
}

// invitationSnapshot is the serialized form stored per token
type invitationSnapshot struct {
	Title           string             `json:"title"`
	DurationMinutes int                `json:"duration_minutes"`
	Questions       []*domain.Question `json:"questions"`
}

type invitationService struct {
	authoring AuthoringService
	store     domain.Cache
	baseURL   string
	logger    *zap.Logger
}

// NewInvitationService creates a new instance of invitationService
func NewInvitationService(authoring AuthoringService, store domain.Cache, baseURL string, logger *zap.Logger) InvitationService {
	return &invitationService{
		authoring: authoring,
		store:     store,
		baseURL:   baseURL,
		logger:    logger,
	}
}

// IssuePreview implements InvitationService
func (s *invitationService) IssuePreview(ctx context.Context, sessionID string) (*dto.InvitationResponse, error) {
	preview, err := s.authoring.PreviewSnapshot(sessionID)
	if err != nil {
		return nil, err
	}

	snapshot := invitationSnapshot{
		Title:           preview.Title,
		DurationMinutes: preview.DurationMinutes,
		Questions:       preview.Questions,
	}
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return nil, domain.NewInternalError("Failed to serialize invitation snapshot", err)
	}

	token := util.NewOpaqueToken()
	key := cache.GenerateCacheKey(InvitationCachePrefix, "snapshot", token)
	if err := s.store.Set(ctx, key, string(payload), 0); err != nil {
		return nil, domain.NewInternalError("Failed to store invitation snapshot", err)
	}

	s.logger.Info("Issued preview invitation",
		zap.String("session_id", sessionID),
		zap.String("token", token),
		zap.Int("num_questions", len(snapshot.Questions)))

	return &dto.InvitationResponse{
		Token: token,
		URL:   fmt.Sprintf("%s/take?token=%s&duration=%d", s.baseURL, token, snapshot.DurationMinutes),
	}, nil
}

// Resolve implements InvitationService. An unknown token is a legitimate
// caller-visible outcome and maps to a not-found result.
func (s *invitationService) Resolve(ctx context.Context, token string) (*dto.InvitationSnapshotResponse, error) {
	key := cache.GenerateCacheKey(InvitationCachePrefix, "snapshot", token)
	payload, err := s.store.Get(ctx, key)
	if err != nil {
		if errors.Is(err, domain.ErrCacheMiss) {
			return nil, domain.NewTokenNotFoundError(token)
		}
		return nil, domain.NewInternalError("Failed to load invitation snapshot", err)
	}

	var snapshot invitationSnapshot
	if err := json.Unmarshal([]byte(payload), &snapshot); err != nil {
		return nil, domain.NewInternalError("Failed to deserialize invitation snapshot", err)
	}

	questions := make([]dto.QuestionResponse, 0, len(snapshot.Questions))
	for _, q := range snapshot.Questions {
		questions = append(questions, toQuestionResponse(q))
	}
	return &dto.InvitationSnapshotResponse{
		Title:           snapshot.Title,
		DurationMinutes: snapshot.DurationMinutes,
		Questions:       questions,
	}, nil
}
