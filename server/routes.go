package server

import (
	"fmt"
	"log"
	"net/http"
	"strings"
)

func (s *Server) initRoutes() {
	// Site pages
	s.RegisterRouteHandler("GET /{$}", ChainMiddleware(s.IndexHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteAbout, ChainMiddleware(s.AboutHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteServices, ChainMiddleware(s.ServicesHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("GET "+RoutePrivacy, ChainMiddleware(s.PrivacyHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteTerms, ChainMiddleware(s.TermsHandler(), s.HTMLMiddleware()...))

	// Blog
	s.RegisterRouteHandler("GET "+RouteBlog, ChainMiddleware(s.BlogIndexHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteBlogPost, ChainMiddleware(s.BlogPostHandler(), s.HTMLMiddleware()...))

	// Contact + newsletter (mailto hand-off and simulated signup)
	s.RegisterRouteHandler("GET "+RouteContact, ChainMiddleware(s.ContactPageHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteContact, ChainMiddleware(s.ContactSubmissionHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteNewsletter, ChainMiddleware(s.NewsletterPageHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteNewsletter, ChainMiddleware(s.NewsletterSignupHandler(), s.HTMLMiddleware()...))

	// Store + cart API
	s.RegisterRouteHandler("GET "+RouteStore, ChainMiddleware(s.StorePageHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("GET "+RouteAPICart, ChainMiddleware(s.CartGetHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAPICartItems, ChainMiddleware(s.CartAddItemHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAPICartItemQuantity, ChainMiddleware(s.CartChangeQuantityHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("DELETE "+RouteAPICartItem, ChainMiddleware(s.CartRemoveItemHandler(), s.APIMiddleware()...))
	s.RegisterRouteHandler("POST "+RouteAPICartCheckout, ChainMiddleware(s.CartCheckoutHandler(), s.APIMiddleware()...))

	// Portal: login is open, the dashboard requires a session
	s.RegisterRouteHandler("GET "+RoutePortalLogin, ChainMiddleware(s.LoginPageHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("POST "+RoutePortalLogin, ChainMiddleware(s.LoginSubmissionHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("POST "+RoutePortalLogout, ChainMiddleware(s.LogoutHandler(), s.HTMLMiddleware()...))
	s.RegisterRouteHandler("GET "+RoutePortal, ChainMiddleware(s.PortalHandler(), s.HTMLMiddleware(s.RequireSessionAuth())...))

	// Static assets
	s.RegisterRouteHandler("GET "+RouteStaticCSS, ChainMiddleware(s.serveFileHandler(), append(s.HTMLMiddleware(), s.CacheMiddleware, s.CompressionMiddleware)...))
	s.RegisterRouteHandler("GET "+RouteStaticJS, ChainMiddleware(s.serveFileHandler(), append(s.HTMLMiddleware(), s.CacheMiddleware, s.CompressionMiddleware)...))

	// Everything else is a styled 404
	s.RegisterRouteHandler("GET /", ChainMiddleware(s.NotFoundHandler(), s.HTMLMiddleware()...))
}

func (s *Server) serveFileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		filePath := strings.TrimPrefix(r.URL.Path, "/")
		if filePath == "" {
			http.Error(w, "404 - Page Not Found", http.StatusNotFound)
			return
		}
		err := StreamFile(w, r, filePath)
		if err != nil {
			logError("GET", filePath, err.Error())
			http.Error(w, "404 - Page Not Found", http.StatusNotFound)
			return
		}
	}
}

func logError(method, path, error string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	errorString := Red + error + ResetColor
	log.Printf("[%-19s] %s %s\n", displayMethod, path, errorString)
}
