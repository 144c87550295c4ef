package server

import (
	"net/http"
	"net/url"

	"github.com/HLPFLCG/HLPFL-INC/auth"
	"github.com/HLPFLCG/HLPFL-INC/auth/sessions"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"
)

// LoginPageHandler renders the portal login form. A failed submission bounces
// back here with the error message and the attempted email in the query
// string so the form can be re-filled.
func (s *Server) LoginPageHandler() http.HandlerFunc {
	tmpl, err := ParsePage("login.html")
	if err != nil {
		panic("Failed to parse login template: " + err.Error())
	}

	type loginPage struct {
		basePage
		Error     string
		Email     string
		DemoEmail string
	}

	return func(w http.ResponseWriter, r *http.Request) {
		if _, ok := s.resolveSession(r); ok {
			http.Redirect(w, r, RoutePortal, http.StatusSeeOther)
			return
		}

		s.renderPage(w, tmpl, loginPage{
			basePage:  s.basePage("Portal Login"),
			Error:     r.URL.Query().Get("error"),
			Email:     r.URL.Query().Get("email"),
			DemoEmail: auth.DemoEmail,
		})
	}
}

// LoginSubmissionHandler checks the submitted credentials and, on success,
// sets the signed session cookie and sends the visitor into the portal.
func (s *Server) LoginSubmissionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form submission", http.StatusBadRequest)
			return
		}

		email := r.PostFormValue("email")
		password := r.PostFormValue("password")

		var currentSessionID string
		if cookie, err := r.Cookie(sessionCookieName); err == nil {
			if id, err := s.cookies.Verify(cookie.Value); err == nil {
				currentSessionID = id
			}
		}

		session, err := s.auth.Login(r.Context(), currentSessionID, email, password)
		if err != nil {
			if errors.Is(err, auth.ErrInvalidCredentials) {
				s.redirectLoginError(w, r, err.Error(), email)
				return
			}
			log.Err(err).Msg("Login failed")
			http.Error(w, "Login failed", http.StatusInternalServerError)
			return
		}

		token, err := s.cookies.Sign(session.ID)
		if err != nil {
			log.Err(err).Msg("Failed to sign session token")
			http.Error(w, "Login failed", http.StatusInternalServerError)
			return
		}

		s.setSessionCookie(w, r, token)
		http.Redirect(w, r, RoutePortal, http.StatusSeeOther)
	}
}

// LogoutHandler ends the portal session. Logout always succeeds, even when
// the cookie was stale or missing.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if cookie, err := r.Cookie(sessionCookieName); err == nil {
			if sessionID, err := s.cookies.Verify(cookie.Value); err == nil {
				if err := s.auth.Logout(sessionID); err != nil {
					log.Err(err).Msg("Failed to delete session")
				}
			}
		}

		s.clearSessionCookie(w, r)
		http.Redirect(w, r, RouteIndex, http.StatusSeeOther)
	}
}

// PortalHandler renders the creator dashboard for the authenticated session.
func (s *Server) PortalHandler() http.HandlerFunc {
	tmpl, err := ParsePage("portal.html")
	if err != nil {
		panic("Failed to parse portal template: " + err.Error())
	}

	type portalPage struct {
		basePage
		DisplayName string
		Email       string
		DemoAccount bool
		Stats       []PortalStat
		Projects    []PortalProject
		Resources   []PortalResource
	}

	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := sessionFromContext(r.Context())
		if !ok {
			// RequireSessionAuth always runs first on this route.
			http.Redirect(w, r, RoutePortalLogin, http.StatusSeeOther)
			return
		}

		s.renderPage(w, tmpl, portalPage{
			basePage:    s.basePage("Portal"),
			DisplayName: session.DisplayName,
			Email:       session.Email,
			DemoAccount: session.Kind == sessions.AccountDemo,
			Stats:       portalStats,
			Projects:    portalProjects,
			Resources:   portalResources,
		})
	}
}

func (s *Server) redirectLoginError(w http.ResponseWriter, r *http.Request, message, email string) {
	query := url.Values{}
	query.Set("error", message)
	if email != "" {
		query.Set("email", email)
	}
	http.Redirect(w, r, RoutePortalLogin+"?"+query.Encode(), http.StatusSeeOther)
}
