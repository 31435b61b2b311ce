package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionTokenRoundTrip(t *testing.T) {
	secret := []byte("secret")

	tok, err := GenerateSessionToken("session-1", secret, time.Now().Add(time.Hour))
	require.NoError(t, err)

	claims, err := VerifyToken(tok, secret)
	require.NoError(t, err)
	assert.Equal(t, "session-1", claims.ID)
}

func TestVerifyTokenRejects(t *testing.T) {
	secret := []byte("secret")

	t.Run("wrong secret", func(t *testing.T) {
		tok, err := GenerateSessionToken("s", secret, time.Now().Add(time.Hour))
		require.NoError(t, err)

		_, err = VerifyToken(tok, []byte("other"))
		assert.Error(t, err)
	})

	t.Run("expired", func(t *testing.T) {
		tok, err := GenerateSessionToken("s", secret, time.Now().Add(-time.Minute))
		require.NoError(t, err)

		_, err = VerifyToken(tok, secret)
		assert.Error(t, err)
	})

	t.Run("garbage", func(t *testing.T) {
		_, err := VerifyToken("not-a-token", secret)
		assert.Error(t, err)
	})

	t.Run("empty session id", func(t *testing.T) {
		tok, err := GenerateSessionToken("", secret, time.Now().Add(time.Hour))
		require.NoError(t, err)

		_, err = VerifyToken(tok, secret)
		assert.Error(t, err)
	})
}
