package auth

import "errors"

var (
	// ErrInvalidCredentials is returned for any failed credential check. The
	// same error covers unknown emails and wrong passwords so the login form
	// can only ever surface one generic message.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrNoSession is returned when a session ID does not resolve to a live,
	// unexpired session.
	ErrNoSession = errors.New("no active session")
)
