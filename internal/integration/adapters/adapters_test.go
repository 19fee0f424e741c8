package adapters

import (
	"context"
	"testing"
	"time"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kpi-dashboard/backend/internal/application/adapter"
	domainerror "github.com/kpi-dashboard/backend/internal/domain/error"
)

type stubClock struct{ now time.Time }

func (c *stubClock) Now() time.Time { return c.now }

func TestTokenService_RoundTrip(t *testing.T) {
	clock := &stubClock{now: time.Date(2025, time.May, 1, 9, 0, 0, 0, time.UTC)}
	svc := NewTokenService("segreto", time.Hour, clock)

	token, expiresAt, err := svc.GenerateToken(context.Background(), "operatore")
	require.NoError(t, err)
	assert.Equal(t, clock.now.Add(time.Hour), expiresAt)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "operatore", claims.Subject)
	assert.True(t, claims.ExpiresAt.Equal(expiresAt))
}

func TestTokenService_Expired(t *testing.T) {
	clock := &stubClock{now: time.Date(2025, time.May, 1, 9, 0, 0, 0, time.UTC)}
	svc := NewTokenService("segreto", time.Hour, clock)
	token, _, err := svc.GenerateToken(context.Background(), "operatore")
	require.NoError(t, err)

	clock.now = clock.now.Add(2 * time.Hour)
	_, err = svc.ValidateToken(context.Background(), token)

	assert.ErrorIs(t, err, domainerror.ErrExpiredToken)
}

func TestTokenService_WrongSecret(t *testing.T) {
	clock := &stubClock{now: time.Now().UTC()}
	token, _, err := NewTokenService("uno", time.Hour, clock).GenerateToken(context.Background(), "operatore")
	require.NoError(t, err)

	_, err = NewTokenService("due", time.Hour, clock).ValidateToken(context.Background(), token)

	assert.ErrorIs(t, err, domainerror.ErrInvalidToken)
}

func TestTokenService_MissingSecret(t *testing.T) {
	_, _, err := NewTokenService("", time.Hour, NewSystemClock()).GenerateToken(context.Background(), "operatore")

	assert.Error(t, err)
}

func TestGeminiChatModel_IsAvailable(t *testing.T) {
	assert.False(t, NewGeminiChatModel("", "").IsAvailable())
	assert.True(t, NewGeminiChatModel("key", "").IsAvailable())
	assert.Equal(t, defaultGeminiModel, NewGeminiChatModel("key", "").modelName)
}

func TestSplitConversation(t *testing.T) {
	history, last := splitConversation([]adapter.ChatMessage{
		{Role: adapter.ChatRoleUser, Content: "Ciao"},
		{Role: adapter.ChatRoleAssistant, Content: "Come posso aiutarti?"},
		{Role: adapter.ChatRoleUser, Content: "Riepilogo Sales"},
	})

	require.Len(t, history, 2)
	assert.Equal(t, "user", history[0].Role)
	assert.Equal(t, "model", history[1].Role)
	assert.Equal(t, []genai.Part{genai.Text("Come posso aiutarti?")}, history[1].Parts)
	assert.Equal(t, "Riepilogo Sales", last.Content)
}

func TestResponseText(t *testing.T) {
	_, err := responseText(&genai.GenerateContentResponse{})
	assert.Error(t, err)

	text, err := responseText(&genai.GenerateContentResponse{Candidates: []*genai.Candidate{{
		Content: &genai.Content{Parts: []genai.Part{genai.Text("Il "), genai.Text("fatturato")}},
	}}})
	require.NoError(t, err)
	assert.Equal(t, "Il fatturato", text)
}
