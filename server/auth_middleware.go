package server

import (
	"context"
	"net/http"

	"github.com/HLPFLCG/HLPFL-INC/auth/sessions"
)

// ContextKey is a custom type for context keys to avoid collisions
type ContextKey string

// ContextKeySession stores the resolved portal session
const ContextKeySession ContextKey = "portal_session"

// RequireSessionAuth guards server-rendered portal routes. It resolves the
// session cookie on every request; any defect - missing cookie, bad
// signature, unknown or expired session - clears the cookie and redirects to
// the login page. Resolution never fails open to an authenticated state.
func (s *Server) RequireSessionAuth() func(http.HandlerFunc) http.HandlerFunc {
	return func(next http.HandlerFunc) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			session, ok := s.resolveSession(r)
			if !ok {
				s.clearSessionCookie(w, r)
				http.Redirect(w, r, RoutePortalLogin, http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, session)
			next(w, r.WithContext(ctx))
		}
	}
}

// resolveSession turns the request's session cookie into a live session.
// Corrupted cookie contents count as "no session", never as an error page.
func (s *Server) resolveSession(r *http.Request) (sessions.Session, bool) {
	cookie, err := r.Cookie(sessionCookieName)
	if err != nil || cookie.Value == "" {
		return sessions.Session{}, false
	}

	sessionID, err := s.cookies.Verify(cookie.Value)
	if err != nil {
		return sessions.Session{}, false
	}

	session, err := s.auth.Resume(sessionID)
	if err != nil {
		return sessions.Session{}, false
	}

	return session, true
}

// sessionFromContext retrieves the session injected by RequireSessionAuth.
func sessionFromContext(ctx context.Context) (sessions.Session, bool) {
	session, ok := ctx.Value(ContextKeySession).(sessions.Session)
	return session, ok
}
