package sessions

import (
	"errors"
	"time"
)

// ErrSessionNotFound is returned when a session ID has no live record.
var ErrSessionNotFound = errors.New("session not found")

// Repo defines the interface for portal session storage. The only
// implementation is in-memory; the interface exists so the session gate can
// be tested without touching real storage.
type Repo interface {
	// Upsert creates or updates a session
	Upsert(sessionID string, session Session) error

	// Get retrieves a session by ID
	Get(sessionID string) (Session, error)

	// Delete removes a session. Deleting an absent session is not an error.
	Delete(sessionID string) error

	// DeleteExpired removes sessions whose expiry is before cutoff
	DeleteExpired(cutoff time.Time) error
}
