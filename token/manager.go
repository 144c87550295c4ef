package token

import (
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// Manager signs and verifies the portal session cookie value. The cookie
// carries only a session ID; signing it means a tampered or hand-crafted
// cookie fails verification and the request resolves to logged-out.
type Manager struct {
	signingKey []byte
	maxAge     time.Duration
	nowTime    func() time.Time // nowTime function (injectable for testing)
}

// ManagerOption defines a function type to modify the Manager instance.
type ManagerOption func(*Manager)

// WithNowTime sets the now time function (primarily for testing)
func WithNowTime(nowFunc func() time.Time) ManagerOption {
	return func(m *Manager) {
		m.nowTime = nowFunc
	}
}

// NewManager creates a cookie token manager. maxAge bounds how long a signed
// cookie verifies, independent of the server-side session expiry.
func NewManager(signingKey []byte, maxAge time.Duration, options ...ManagerOption) (*Manager, error) {
	if len(signingKey) == 0 {
		return nil, errors.New("[NewManager] signing key is required")
	}
	if maxAge <= 0 {
		return nil, errors.New("[NewManager] maxAge must be positive")
	}

	m := &Manager{
		signingKey: signingKey,
		maxAge:     maxAge,
		nowTime:    time.Now,
	}

	for _, opt := range options {
		opt(m)
	}

	return m, nil
}

// Sign wraps a session ID in a signed token suitable for a cookie value.
func (m *Manager) Sign(sessionID string) (string, error) {
	if sessionID == "" {
		return "", errors.New("[Manager.Sign] sessionID is required")
	}

	now := m.nowTime()
	claims := jwtlib.MapClaims{
		"sub": sessionID,
		"iat": now.Unix(),
		"exp": now.Add(m.maxAge).Unix(),
		"jti": uuid.New().String(),
	}

	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString(m.signingKey)
	if err != nil {
		return "", errors.Wrap(err, "[Manager.Sign] failed to sign token")
	}
	return signed, nil
}

// Verify checks the token signature and expiry and returns the session ID it
// carries. Any defect at all yields an error; callers treat that as "no
// session", never as an authenticated state.
func (m *Manager) Verify(tokenString string) (string, error) {
	parsed, err := jwtlib.Parse(tokenString, func(t *jwtlib.Token) (any, error) {
		if _, ok := t.Method.(*jwtlib.SigningMethodHMAC); !ok {
			return nil, errors.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return m.signingKey, nil
	}, jwtlib.WithTimeFunc(m.nowTime))
	if err != nil {
		return "", errors.Wrap(err, "[Manager.Verify] parse")
	}

	claims, ok := parsed.Claims.(jwtlib.MapClaims)
	if !ok || !parsed.Valid {
		return "", errors.New("[Manager.Verify] invalid claims")
	}

	sessionID, err := claims.GetSubject()
	if err != nil || sessionID == "" {
		return "", errors.New("[Manager.Verify] missing subject")
	}
	return sessionID, nil
}
