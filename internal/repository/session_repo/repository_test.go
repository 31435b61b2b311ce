package session_repo

import (
	"context"
	"testing"
	"time"

	"roulette_patterns/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepoCreateGetDelete(t *testing.T) {
	ctx := context.Background()
	r := NewSessionRepository[string](0)

	require.NoError(t, r.Create(ctx, &model.Session{ID: "a"}, "state-a"))
	assert.Error(t, r.Create(ctx, &model.Session{ID: "a"}, "other"))

	got, err := r.Get(ctx, "a")
	require.NoError(t, err)
	assert.Equal(t, "state-a", got)

	require.NoError(t, r.Delete(ctx, "a"))
	_, err = r.Get(ctx, "a")
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
	assert.ErrorIs(t, r.Delete(ctx, "a"), model.ErrSessionNotFound)
}

func TestRepoIdleExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	r := NewSessionRepository[int](time.Hour)
	r.now = func() time.Time { return now }

	require.NoError(t, r.Create(ctx, &model.Session{ID: "a"}, 1))
	require.NoError(t, r.Create(ctx, &model.Session{ID: "b"}, 2))

	// Обращение продлевает жизнь сессии
	now = now.Add(50 * time.Minute)
	_, err := r.Get(ctx, "a")
	require.NoError(t, err)

	now = now.Add(20 * time.Minute)
	assert.Equal(t, 1, r.Sweep(now))
	assert.Equal(t, 1, r.Len())

	_, err = r.Get(ctx, "b")
	assert.ErrorIs(t, err, model.ErrSessionNotFound)

	now = now.Add(2 * time.Hour)
	_, err = r.Get(ctx, "a")
	assert.ErrorIs(t, err, model.ErrSessionNotFound)
	assert.Equal(t, 0, r.Len())
}

func TestRepoHardExpiry(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

	r := NewSessionRepository[int](0)
	r.now = func() time.Time { return now }

	require.NoError(t, r.Create(ctx, &model.Session{ID: "a", ExpiresAt: now.Add(time.Minute)}, 1))

	_, err := r.Get(ctx, "a")
	require.NoError(t, err)

	assert.Equal(t, 1, r.Sweep(now.Add(2*time.Minute)))
}
