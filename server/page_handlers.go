package server

import (
	"html/template"
	"net/http"

	"github.com/HLPFLCG/HLPFL-INC/blog"
	"github.com/rs/zerolog/log"
)

const contentTypeHTML = "text/html; charset=utf-8"

// basePage carries the fields every page template expects.
type basePage struct {
	AppName      string
	Title        string
	ContactEmail string
}

func (s *Server) basePage(title string) basePage {
	return basePage{
		AppName:      s.config.GetAppName(),
		Title:        title,
		ContactEmail: s.config.GetContactEmail(),
	}
}

func (s *Server) renderPage(w http.ResponseWriter, tmpl *template.Template, data any) {
	w.Header().Set("Content-Type", contentTypeHTML)
	if err := tmpl.Execute(w, data); err != nil {
		log.Err(err).Str("template", tmpl.Name()).Msg("Failed to render page")
	}
}

// IndexHandler renders the home page
func (s *Server) IndexHandler() http.HandlerFunc {
	tmpl, err := ParsePage("index.html")
	if err != nil {
		panic("Failed to parse index template: " + err.Error())
	}

	type indexPage struct {
		basePage
		Services []Service
		Featured []blog.Post
	}

	return func(w http.ResponseWriter, r *http.Request) {
		s.renderPage(w, tmpl, indexPage{
			basePage: s.basePage("Empowering Creative Entrepreneurs"),
			Services: siteServices,
			Featured: s.posts.Featured(),
		})
	}
}

func (s *Server) AboutHandler() http.HandlerFunc {
	tmpl, err := ParsePage("about.html")
	if err != nil {
		panic("Failed to parse about template: " + err.Error())
	}

	type aboutPage struct {
		basePage
		Audiences []Audience
	}

	return func(w http.ResponseWriter, r *http.Request) {
		s.renderPage(w, tmpl, aboutPage{
			basePage:  s.basePage("About"),
			Audiences: siteAudiences,
		})
	}
}

func (s *Server) ServicesHandler() http.HandlerFunc {
	tmpl, err := ParsePage("services.html")
	if err != nil {
		panic("Failed to parse services template: " + err.Error())
	}

	type servicesPage struct {
		basePage
		Services  []Service
		Audiences []Audience
	}

	return func(w http.ResponseWriter, r *http.Request) {
		s.renderPage(w, tmpl, servicesPage{
			basePage:  s.basePage("Services"),
			Services:  siteServices,
			Audiences: siteAudiences,
		})
	}
}

func (s *Server) PrivacyHandler() http.HandlerFunc {
	tmpl, err := ParsePage("privacy.html")
	if err != nil {
		panic("Failed to parse privacy template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		s.renderPage(w, tmpl, s.basePage("Privacy Policy"))
	}
}

func (s *Server) TermsHandler() http.HandlerFunc {
	tmpl, err := ParsePage("terms.html")
	if err != nil {
		panic("Failed to parse terms template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		s.renderPage(w, tmpl, s.basePage("Terms of Service"))
	}
}

// NotFoundHandler renders the styled 404 page for any unknown path.
func (s *Server) NotFoundHandler() http.HandlerFunc {
	tmpl, err := ParsePage("not_found.html")
	if err != nil {
		panic("Failed to parse not found template: " + err.Error())
	}

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", contentTypeHTML)
		w.WriteHeader(http.StatusNotFound)
		if err := tmpl.Execute(w, s.basePage("Page Not Found")); err != nil {
			log.Err(err).Msg("Failed to render not found page")
		}
	}
}
