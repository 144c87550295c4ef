package token_test

import (
	"strings"
	"testing"
	"time"

	"github.com/HLPFLCG/HLPFL-INC/token"
	"github.com/stretchr/testify/require"
)

const testKey = "test-signing-key"

func TestManager_SignVerify(t *testing.T) {
	m, err := token.NewManager([]byte(testKey), 30*time.Minute)
	require.NoError(t, err)

	t.Run("round trip", func(t *testing.T) {
		signed, err := m.Sign("session-123")
		require.NoError(t, err)

		sessionID, err := m.Verify(signed)
		require.NoError(t, err)
		require.Equal(t, "session-123", sessionID)
	})

	t.Run("empty session ID rejected", func(t *testing.T) {
		_, err := m.Sign("")
		require.Error(t, err)
	})

	t.Run("garbage token fails", func(t *testing.T) {
		_, err := m.Verify("not-a-token")
		require.Error(t, err)
	})

	t.Run("tampered token fails", func(t *testing.T) {
		signed, err := m.Sign("session-123")
		require.NoError(t, err)

		parts := strings.Split(signed, ".")
		require.Len(t, parts, 3)
		tampered := parts[0] + "." + parts[1] + "." + strings.Repeat("A", len(parts[2]))

		_, err = m.Verify(tampered)
		require.Error(t, err)
	})

	t.Run("wrong key fails", func(t *testing.T) {
		other, err := token.NewManager([]byte("a-different-key"), 30*time.Minute)
		require.NoError(t, err)

		signed, err := other.Sign("session-123")
		require.NoError(t, err)

		_, err = m.Verify(signed)
		require.Error(t, err)
	})
}

func TestManager_Expiry(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	issuer, err := token.NewManager([]byte(testKey), 30*time.Minute,
		token.WithNowTime(func() time.Time { return now }))
	require.NoError(t, err)

	signed, err := issuer.Sign("session-123")
	require.NoError(t, err)

	t.Run("valid before expiry", func(t *testing.T) {
		verifier, err := token.NewManager([]byte(testKey), 30*time.Minute,
			token.WithNowTime(func() time.Time { return now.Add(29 * time.Minute) }))
		require.NoError(t, err)

		sessionID, err := verifier.Verify(signed)
		require.NoError(t, err)
		require.Equal(t, "session-123", sessionID)
	})

	t.Run("expired token fails", func(t *testing.T) {
		verifier, err := token.NewManager([]byte(testKey), 30*time.Minute,
			token.WithNowTime(func() time.Time { return now.Add(31 * time.Minute) }))
		require.NoError(t, err)

		_, err = verifier.Verify(signed)
		require.Error(t, err)
	})
}

func TestNewManager_Validation(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		_, err := token.NewManager(nil, time.Minute)
		require.Error(t, err)
	})

	t.Run("non-positive max age", func(t *testing.T) {
		_, err := token.NewManager([]byte(testKey), 0)
		require.Error(t, err)
	})
}
