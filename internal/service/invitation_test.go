package service

import (
	"context"
	"fmt"
	"testing"

	"skillforge/internal/domain"
	"skillforge/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testInvitationBaseURL = "https://assessments.example.com"

func newInvitationFixture(t *testing.T) (*authoringFixture, InvitationService) {
	t.Helper()
	f := newAuthoringFixture(t)
	return f, NewInvitationService(f.service, newMemoryCache(), testInvitationBaseURL, zap.NewNop())
}

func TestIssuePreview_TokenAndURL(t *testing.T) {
	f, invitations := newInvitationFixture(t)
	sessionID := f.startDescribing(t, "Backend Engineer")
	title := "Backend Screen"
	duration := 45
	_, err := f.service.UpdateDraft(sessionID, &dto.UpdateDraftRequest{Title: &title, DurationMinutes: &duration})
	require.NoError(t, err)

	resp, err := invitations.IssuePreview(context.Background(), sessionID)

	require.NoError(t, err)
	assert.Len(t, resp.Token, 32)
	assert.Equal(t, fmt.Sprintf("%s/take?token=%s&duration=45", testInvitationBaseURL, resp.Token), resp.URL)
}

func TestIssuePreview_SnapshotIsImmutable(t *testing.T) {
	f, invitations := newInvitationFixture(t)
	sessionID := f.startDescribing(t, "Backend Engineer")
	_, err := f.service.AddQuestion(sessionID)
	require.NoError(t, err)
	state, err := f.service.GetSession(sessionID)
	require.NoError(t, err)
	questionID := state.Draft.Questions[0].ID
	_, err = f.service.UpdateQuestionField(sessionID, questionID, domain.FieldPrompt, "original prompt")
	require.NoError(t, err)

	issued, err := invitations.IssuePreview(context.Background(), sessionID)
	require.NoError(t, err)

	// edits after issuance must not leak into the stored snapshot
	_, err = f.service.UpdateQuestionField(sessionID, questionID, domain.FieldPrompt, "edited afterwards")
	require.NoError(t, err)
	_, err = f.service.AddQuestion(sessionID)
	require.NoError(t, err)

	snapshot, err := invitations.Resolve(context.Background(), issued.Token)
	require.NoError(t, err)
	require.Len(t, snapshot.Questions, 1)
	assert.Equal(t, "original prompt", snapshot.Questions[0].Prompt)
}

func TestIssuePreview_TokensAreIndependent(t *testing.T) {
	f, invitations := newInvitationFixture(t)
	sessionID := f.startDescribing(t, "Backend Engineer")

	first, err := invitations.IssuePreview(context.Background(), sessionID)
	require.NoError(t, err)
	_, err = f.service.AddQuestion(sessionID)
	require.NoError(t, err)
	second, err := invitations.IssuePreview(context.Background(), sessionID)
	require.NoError(t, err)

	assert.NotEqual(t, first.Token, second.Token)

	firstSnapshot, err := invitations.Resolve(context.Background(), first.Token)
	require.NoError(t, err)
	secondSnapshot, err := invitations.Resolve(context.Background(), second.Token)
	require.NoError(t, err)
	assert.Empty(t, firstSnapshot.Questions)
	assert.Len(t, secondSnapshot.Questions, 1)
}

func TestIssuePreview_UnknownSession(t *testing.T) {
	_, invitations := newInvitationFixture(t)

	_, err := invitations.IssuePreview(context.Background(), "01JUNKJUNKJUNKJUNKJUNKJUNK")

	requireDomainCode(t, err, domain.CodeSessionNotFound)
}

func TestResolve_UnknownToken(t *testing.T) {
	_, invitations := newInvitationFixture(t)

	_, err := invitations.Resolve(context.Background(), "deadbeefdeadbeefdeadbeefdeadbeef")

	requireDomainCode(t, err, domain.CodeTokenNotFound)
}
