package sessions

import "time"

// AccountKind distinguishes the hardcoded demo account from real creator
// accounts. Only demo sessions can currently be minted.
type AccountKind string

const (
	AccountDemo AccountKind = "demo"
	AccountReal AccountKind = "real"
)

// Session is the record of who is currently logged in to the portal.
// One record exists per browser session. Sessions live only in process
// memory; nothing survives a restart.
type Session struct {
	ID          string      // Unique session identifier (UUID)
	Email       string      // Account email
	DisplayName string      // Name shown in the portal header
	Kind        AccountKind // demo or real
	CreatedAt   time.Time   // When the session was minted
	ExpiresAt   time.Time   // Server-side expiry
}

// Expired reports whether the session has passed its server-side expiry.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && s.ExpiresAt.Before(now)
}
