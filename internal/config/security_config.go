package config

import (
	"strconv"
	"time"
)

type SecurityConfig interface {
	GetSessionSigningKey() []byte
	GetMaxSessionAge() time.Duration
	GetLoginDelay() time.Duration
}

type Security struct{}

var _ SecurityConfig = Security{}

// GetSessionSigningKey returns the HMAC key used to sign portal session
// cookies. The default is only suitable for local development.
func (Security) GetSessionSigningKey() []byte {
	return []byte(GetEnv("SESSION_SIGNING_KEY", "hlpfl-dev-session-key"))
}

func (Security) GetMaxSessionAge() time.Duration {
	minutes, err := strconv.Atoi(GetEnv("SESSION_TTL_MINUTES", "30"))
	if err != nil || minutes <= 0 {
		minutes = 30
	}
	return time.Duration(minutes) * time.Minute
}

// GetLoginDelay is the simulated latency applied to portal logins so the
// demo feels like a real credential check. Set LOGIN_DELAY_MS=0 to disable.
func (Security) GetLoginDelay() time.Duration {
	ms, err := strconv.Atoi(GetEnv("LOGIN_DELAY_MS", "500"))
	if err != nil || ms < 0 {
		ms = 500
	}
	return time.Duration(ms) * time.Millisecond
}
