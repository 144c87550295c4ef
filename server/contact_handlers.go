package server

import (
	"net/http"

	"github.com/HLPFLCG/HLPFL-INC/contact"
)

// ContactPageHandler renders the contact form.
func (s *Server) ContactPageHandler() http.HandlerFunc {
	tmpl, err := ParsePage("contact.html")
	if err != nil {
		panic("Failed to parse contact template: " + err.Error())
	}

	type contactPage struct {
		basePage
		Submitted bool
	}

	return func(w http.ResponseWriter, r *http.Request) {
		s.renderPage(w, tmpl, contactPage{
			basePage:  s.basePage("Contact"),
			Submitted: r.URL.Query().Get("sent") == "1",
		})
	}
}

// ContactSubmissionHandler hands the form off to the visitor's mail client.
// The redirect target is a mailto URL; once the browser follows it, this
// server is out of the loop - there is no delivery confirmation.
func (s *Server) ContactSubmissionHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}

		msg := contact.Message{
			Name:    r.FormValue("name"),
			Email:   r.FormValue("email"),
			Subject: r.FormValue("subject"),
			Body:    r.FormValue("message"),
		}

		http.Redirect(w, r, contact.MailtoURL(s.config.GetContactEmail(), msg), http.StatusSeeOther)
	}
}

// NewsletterPageHandler renders the signup form.
func (s *Server) NewsletterPageHandler() http.HandlerFunc {
	tmpl, err := ParsePage("newsletter.html")
	if err != nil {
		panic("Failed to parse newsletter template: " + err.Error())
	}

	type newsletterPage struct {
		basePage
		Subscribed bool
	}

	return func(w http.ResponseWriter, r *http.Request) {
		s.renderPage(w, tmpl, newsletterPage{
			basePage:   s.basePage("Newsletter"),
			Subscribed: r.URL.Query().Get("subscribed") == "1",
		})
	}
}

// NewsletterSignupHandler simulates a signup. Nothing is stored; the site
// has no subscriber list behind it.
func (s *Server) NewsletterSignupHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, "Invalid form data", http.StatusBadRequest)
			return
		}
		if r.FormValue("email") == "" {
			http.Redirect(w, r, RouteNewsletter, http.StatusSeeOther)
			return
		}
		http.Redirect(w, r, RouteNewsletter+"?subscribed=1", http.StatusSeeOther)
	}
}
