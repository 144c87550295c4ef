package sessions_test

import (
	"testing"
	"time"

	"github.com/HLPFLCG/HLPFL-INC/auth/sessions"
	"github.com/stretchr/testify/require"
)

func TestInMemorySessionRepo(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	newSession := func(id string, expires time.Time) sessions.Session {
		return sessions.Session{
			ID:          id,
			Email:       "demo@hlpfl.org",
			DisplayName: "Demo Creator",
			Kind:        sessions.AccountDemo,
			CreatedAt:   now,
			ExpiresAt:   expires,
		}
	}

	t.Run("upsert and get", func(t *testing.T) {
		repo := sessions.NewInMemorySessionRepo()
		want := newSession("s-1", now.Add(30*time.Minute))

		require.NoError(t, repo.Upsert("s-1", want))

		got, err := repo.Get("s-1")
		require.NoError(t, err)
		require.Equal(t, want, got)
	})

	t.Run("get unknown session", func(t *testing.T) {
		repo := sessions.NewInMemorySessionRepo()

		_, err := repo.Get("missing")
		require.ErrorIs(t, err, sessions.ErrSessionNotFound)
	})

	t.Run("empty session ID rejected", func(t *testing.T) {
		repo := sessions.NewInMemorySessionRepo()

		require.Error(t, repo.Upsert("", newSession("", now)))
		_, err := repo.Get("")
		require.Error(t, err)
	})

	t.Run("delete removes session", func(t *testing.T) {
		repo := sessions.NewInMemorySessionRepo()
		require.NoError(t, repo.Upsert("s-1", newSession("s-1", now.Add(time.Hour))))

		require.NoError(t, repo.Delete("s-1"))

		_, err := repo.Get("s-1")
		require.ErrorIs(t, err, sessions.ErrSessionNotFound)
	})

	t.Run("delete absent session is not an error", func(t *testing.T) {
		repo := sessions.NewInMemorySessionRepo()
		require.NoError(t, repo.Delete("never-existed"))
	})

	t.Run("delete expired keeps live sessions", func(t *testing.T) {
		repo := sessions.NewInMemorySessionRepo()
		require.NoError(t, repo.Upsert("old", newSession("old", now.Add(-time.Minute))))
		require.NoError(t, repo.Upsert("live", newSession("live", now.Add(time.Hour))))

		require.NoError(t, repo.DeleteExpired(now))

		_, err := repo.Get("old")
		require.ErrorIs(t, err, sessions.ErrSessionNotFound)

		_, err = repo.Get("live")
		require.NoError(t, err)
	})
}

func TestSessionExpired(t *testing.T) {
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	t.Run("zero expiry never expires", func(t *testing.T) {
		require.False(t, sessions.Session{}.Expired(now))
	})

	t.Run("future expiry", func(t *testing.T) {
		s := sessions.Session{ExpiresAt: now.Add(time.Second)}
		require.False(t, s.Expired(now))
	})

	t.Run("past expiry", func(t *testing.T) {
		s := sessions.Session{ExpiresAt: now.Add(-time.Second)}
		require.True(t, s.Expired(now))
	})
}
