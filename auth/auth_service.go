package auth

import (
	"context"
	"strings"
	"time"

	"github.com/HLPFLCG/HLPFL-INC/auth/sessions"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// The portal has exactly one account: the public demo credential shown on the
// login page. It is compared like a real credential (bcrypt hash, generic
// failure) so swapping in a real user store later changes wiring, not flow.
const (
	DemoEmail       = "demo@hlpfl.org"
	DemoPassword    = "demo123"
	demoDisplayName = "Demo Creator"
)

// Service is the session gate for the portal. It answers "who is logged in"
// for a session ID and transitions that state on login and logout.
type Service struct {
	sessions      sessions.Repo
	demoHash      []byte
	loginDelay    time.Duration    // simulated credential-check latency
	maxSessionAge time.Duration
	nowTime       func() time.Time // nowTime function (injectable for testing)
}

// ServiceOption defines a function type to modify the Service instance.
type ServiceOption func(*Service)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) ServiceOption {
	return func(s *Service) {
		s.nowTime = nowFunc
	}
}

// WithLoginDelay overrides the simulated login latency. Tests pass zero.
func WithLoginDelay(d time.Duration) ServiceOption {
	return func(s *Service) {
		s.loginDelay = d
	}
}

// WithMaxSessionAge sets the server-side session lifetime. Non-positive
// values keep the default.
func WithMaxSessionAge(d time.Duration) ServiceOption {
	return func(s *Service) {
		if d > 0 {
			s.maxSessionAge = d
		}
	}
}

// NewService initializes the session gate with its session repository.
// Optional configuration can be provided via options.
func NewService(sessionRepo sessions.Repo, options ...ServiceOption) (*Service, error) {
	if sessionRepo == nil {
		return nil, errors.New("[NewService] session repo is required")
	}

	demoHash, err := bcrypt.GenerateFromPassword([]byte(DemoPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Wrap(err, "[NewService] failed to hash demo credential")
	}

	service := &Service{
		sessions:      sessionRepo,
		demoHash:      demoHash,
		loginDelay:    500 * time.Millisecond,
		maxSessionAge: 30 * time.Minute,
		nowTime:       time.Now,
	}

	for _, opt := range options {
		opt(service)
	}

	return service, nil
}

// Login checks the submitted credentials against the demo account. On match
// it mints a demo session, stores it, and returns it. On mismatch it returns
// ErrInvalidCredentials and nothing else - callers cannot tell an unknown
// email from a wrong password.
//
// currentSessionID may carry the caller's existing session cookie value.
// Logging in while already authenticated is a no-op success returning the
// existing session unchanged.
//
// A fixed delay runs before the check so the demo feels like a network
// round trip; no actual I/O happens. The delay respects ctx cancellation.
func (s *Service) Login(ctx context.Context, currentSessionID, email, password string) (sessions.Session, error) {
	if err := s.simulateLatency(ctx); err != nil {
		return sessions.Session{}, err
	}

	// Already authenticated: keep the existing session.
	if currentSessionID != "" {
		if existing, err := s.Resume(currentSessionID); err == nil {
			return existing, nil
		}
	}

	if !strings.EqualFold(strings.TrimSpace(email), DemoEmail) {
		return sessions.Session{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(s.demoHash, []byte(password)); err != nil {
		return sessions.Session{}, ErrInvalidCredentials
	}

	now := s.nowTime()
	session := sessions.Session{
		ID:          uuid.New().String(),
		Email:       DemoEmail,
		DisplayName: demoDisplayName,
		Kind:        sessions.AccountDemo,
		CreatedAt:   now,
		ExpiresAt:   now.Add(s.maxSessionAge),
	}

	if err := s.sessions.Upsert(session.ID, session); err != nil {
		return sessions.Session{}, errors.Wrap(err, "[Service.Login] failed to store session")
	}

	return session, nil
}

// Resume resolves a stored session ID back to a live session. Unknown IDs
// and expired records both yield ErrNoSession; expired records are removed
// on the way out. A failed resume is always logged-out, never fatal.
func (s *Service) Resume(sessionID string) (sessions.Session, error) {
	if sessionID == "" {
		return sessions.Session{}, ErrNoSession
	}

	session, err := s.sessions.Get(sessionID)
	if err != nil {
		return sessions.Session{}, ErrNoSession
	}

	if session.Expired(s.nowTime()) {
		_ = s.sessions.Delete(sessionID)
		return sessions.Session{}, ErrNoSession
	}

	return session, nil
}

// Logout clears the stored session. Logging out an unknown or already
// cleared session succeeds; there is nothing to report to the user.
func (s *Service) Logout(sessionID string) error {
	if sessionID == "" {
		return nil
	}
	if err := s.sessions.Delete(sessionID); err != nil {
		return errors.Wrap(err, "[Service.Logout] failed to delete session")
	}
	return nil
}

func (s *Service) simulateLatency(ctx context.Context) error {
	if s.loginDelay <= 0 {
		return nil
	}

	timer := time.NewTimer(s.loginDelay)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return errors.Wrap(ctx.Err(), "[Service.Login] cancelled")
	case <-timer.C:
		return nil
	}
}
