package session

import (
	"context"
	"testing"
	"time"

	"roulette_patterns/internal/middleware"
	"roulette_patterns/internal/model"
	"roulette_patterns/internal/repository/session_repo"
	"roulette_patterns/internal/service/pattern"
	"roulette_patterns/pkg/token"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type testJWTConfig struct{}

func (testJWTConfig) SessionTokenSecretKey() []byte { return []byte("test-secret") }
func (testJWTConfig) SessionTokenDuration() time.Duration { return 30 * time.Minute }

func TestOpenAndClose(t *testing.T) {
	ctx := context.Background()
	repo := session_repo.NewSessionRepository[*pattern.Analyzer](0)
	s := NewSessionService(repo, testJWTConfig{}, zap.NewNop())

	opened, err := s.Open(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, opened.ID)
	assert.WithinDuration(t, opened.CreatedAt.Add(30*time.Minute), opened.ExpiresAt, time.Second)

	claims, err := token.VerifyToken(opened.Token, testJWTConfig{}.SessionTokenSecretKey())
	require.NoError(t, err)
	assert.Equal(t, opened.ID, claims.ID)

	a, err := repo.Get(ctx, opened.ID)
	require.NoError(t, err)
	assert.Empty(t, a.Sequence())

	sessionCtx := middleware.WithSessionID(ctx, opened.ID)
	require.NoError(t, s.Close(sessionCtx))
	assert.ErrorIs(t, s.Close(sessionCtx), model.ErrSessionNotFound)
	assert.Error(t, s.Close(ctx))
}

func TestOpenGivesEachSessionItsOwnState(t *testing.T) {
	ctx := context.Background()
	repo := session_repo.NewSessionRepository[*pattern.Analyzer](0)
	s := NewSessionService(repo, testJWTConfig{}, zap.NewNop())

	first, err := s.Open(ctx)
	require.NoError(t, err)
	second, err := s.Open(ctx)
	require.NoError(t, err)
	require.NotEqual(t, first.ID, second.ID)

	a, _ := repo.Get(ctx, first.ID)
	require.NoError(t, a.AddOutcome(12))

	b, _ := repo.Get(ctx, second.ID)
	assert.Empty(t, b.Sequence())
}
