package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/HLPFLCG/HLPFL-INC/auth"
	"github.com/HLPFLCG/HLPFL-INC/auth/sessions"
	"github.com/stretchr/testify/require"
)

// testFixture holds the session gate and its repo with zero login delay and
// a pinned clock.
type testFixture struct {
	repo    *sessions.InMemorySessionRepo
	service *auth.Service
	now     time.Time
}

func setupTestFixture(t *testing.T) *testFixture {
	t.Helper()

	repo := sessions.NewInMemorySessionRepo()
	now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)

	service, err := auth.NewService(repo,
		auth.WithLoginDelay(0),
		auth.WithNowTime(func() time.Time { return now }),
	)
	require.NoError(t, err)

	return &testFixture{repo: repo, service: service, now: now}
}

func TestService_Login(t *testing.T) {
	ctx := context.Background()

	t.Run("demo credentials succeed", func(t *testing.T) {
		f := setupTestFixture(t)

		session, err := f.service.Login(ctx, "", "demo@hlpfl.org", "demo123")
		require.NoError(t, err)
		require.NotEmpty(t, session.ID)
		require.Equal(t, "demo@hlpfl.org", session.Email)
		require.Equal(t, "Demo Creator", session.DisplayName)
		require.Equal(t, sessions.AccountDemo, session.Kind)

		stored, err := f.repo.Get(session.ID)
		require.NoError(t, err)
		require.Equal(t, session, stored)
	})

	t.Run("email match is case-insensitive", func(t *testing.T) {
		f := setupTestFixture(t)

		_, err := f.service.Login(ctx, "", "Demo@HLPFL.org", "demo123")
		require.NoError(t, err)
	})

	t.Run("wrong password fails with generic error", func(t *testing.T) {
		f := setupTestFixture(t)

		_, err := f.service.Login(ctx, "", "demo@hlpfl.org", "wrong")
		require.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("unknown email fails with the same error", func(t *testing.T) {
		f := setupTestFixture(t)

		_, err := f.service.Login(ctx, "", "nobody@hlpfl.org", "demo123")
		require.ErrorIs(t, err, auth.ErrInvalidCredentials)
	})

	t.Run("failed login leaves no session behind", func(t *testing.T) {
		f := setupTestFixture(t)

		session, err := f.service.Login(ctx, "", "demo@hlpfl.org", "wrong")
		require.ErrorIs(t, err, auth.ErrInvalidCredentials)
		require.Empty(t, session.ID)

		_, err = f.service.Resume(session.ID)
		require.ErrorIs(t, err, auth.ErrNoSession)
	})

	t.Run("login while authenticated returns existing session", func(t *testing.T) {
		f := setupTestFixture(t)

		first, err := f.service.Login(ctx, "", "demo@hlpfl.org", "demo123")
		require.NoError(t, err)

		// Re-entrant login is a no-op success, even with bad credentials.
		again, err := f.service.Login(ctx, first.ID, "demo@hlpfl.org", "whatever")
		require.NoError(t, err)
		require.Equal(t, first, again)
	})

	t.Run("stale current session falls through to credential check", func(t *testing.T) {
		f := setupTestFixture(t)

		session, err := f.service.Login(ctx, "stale-session-id", "demo@hlpfl.org", "demo123")
		require.NoError(t, err)
		require.NotEqual(t, "stale-session-id", session.ID)
	})

	t.Run("cancelled context aborts the simulated delay", func(t *testing.T) {
		repo := sessions.NewInMemorySessionRepo()
		service, err := auth.NewService(repo, auth.WithLoginDelay(time.Minute))
		require.NoError(t, err)

		cancelled, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = service.Login(cancelled, "", "demo@hlpfl.org", "demo123")
		require.ErrorIs(t, err, context.Canceled)
	})
}

func TestService_Resume(t *testing.T) {
	ctx := context.Background()

	t.Run("resume restores a live session", func(t *testing.T) {
		f := setupTestFixture(t)

		session, err := f.service.Login(ctx, "", "demo@hlpfl.org", "demo123")
		require.NoError(t, err)

		restored, err := f.service.Resume(session.ID)
		require.NoError(t, err)
		require.Equal(t, session, restored)
	})

	t.Run("unknown ID resolves to logged-out", func(t *testing.T) {
		f := setupTestFixture(t)

		_, err := f.service.Resume("no-such-session")
		require.ErrorIs(t, err, auth.ErrNoSession)
	})

	t.Run("empty ID resolves to logged-out", func(t *testing.T) {
		f := setupTestFixture(t)

		_, err := f.service.Resume("")
		require.ErrorIs(t, err, auth.ErrNoSession)
	})

	t.Run("expired session resolves to logged-out and is removed", func(t *testing.T) {
		repo := sessions.NewInMemorySessionRepo()
		now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
		clock := now

		service, err := auth.NewService(repo,
			auth.WithLoginDelay(0),
			auth.WithNowTime(func() time.Time { return clock }),
		)
		require.NoError(t, err)

		session, err := service.Login(ctx, "", "demo@hlpfl.org", "demo123")
		require.NoError(t, err)

		clock = now.Add(31 * time.Minute)

		_, err = service.Resume(session.ID)
		require.ErrorIs(t, err, auth.ErrNoSession)

		_, err = repo.Get(session.ID)
		require.ErrorIs(t, err, sessions.ErrSessionNotFound)
	})

	t.Run("configured session lifetime is honored", func(t *testing.T) {
		repo := sessions.NewInMemorySessionRepo()
		now := time.Date(2026, 1, 15, 12, 0, 0, 0, time.UTC)
		clock := now

		service, err := auth.NewService(repo,
			auth.WithLoginDelay(0),
			auth.WithMaxSessionAge(120*time.Minute),
			auth.WithNowTime(func() time.Time { return clock }),
		)
		require.NoError(t, err)

		session, err := service.Login(ctx, "", "demo@hlpfl.org", "demo123")
		require.NoError(t, err)
		require.Equal(t, now.Add(120*time.Minute), session.ExpiresAt)

		// Well past the default lifetime but inside the configured one.
		clock = now.Add(31 * time.Minute)
		restored, err := service.Resume(session.ID)
		require.NoError(t, err)
		require.Equal(t, session.ID, restored.ID)

		clock = now.Add(121 * time.Minute)
		_, err = service.Resume(session.ID)
		require.ErrorIs(t, err, auth.ErrNoSession)
	})
}

func TestService_Logout(t *testing.T) {
	ctx := context.Background()

	t.Run("logout clears the stored session", func(t *testing.T) {
		f := setupTestFixture(t)

		session, err := f.service.Login(ctx, "", "demo@hlpfl.org", "demo123")
		require.NoError(t, err)

		require.NoError(t, f.service.Logout(session.ID))

		// A fresh restore after logout lands logged-out.
		_, err = f.service.Resume(session.ID)
		require.ErrorIs(t, err, auth.ErrNoSession)
	})

	t.Run("logout of unknown session succeeds", func(t *testing.T) {
		f := setupTestFixture(t)
		require.NoError(t, f.service.Logout("never-existed"))
		require.NoError(t, f.service.Logout(""))
	})
}
