package server

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/HLPFLCG/HLPFL-INC/auth"
	"github.com/HLPFLCG/HLPFL-INC/blog"
	"github.com/HLPFLCG/HLPFL-INC/internal/config"
	"github.com/HLPFLCG/HLPFL-INC/store"
	"github.com/HLPFLCG/HLPFL-INC/token"
)

// Server serves every page of the site plus the cart API. Pages are rendered
// from embedded templates; all state lives in the injected repositories.
type Server struct {
	env        string // Environment (e.g. "DEV", "PROD")
	mux        *http.ServeMux
	routes     []string
	fileServer http.Handler
	config     config.Config
	auth       *auth.Service
	cookies    *token.Manager
	catalog    *store.Catalog
	posts      *blog.Library
	carts      store.CartRepo
}

func New(
	cfg config.Config,
	authService *auth.Service,
	cookieManager *token.Manager,
	catalog *store.Catalog,
	posts *blog.Library,
	cartRepo store.CartRepo,
) (*Server, error) {
	if authService == nil {
		return nil, fmt.Errorf("[Server New] auth service is required")
	}
	if cookieManager == nil {
		return nil, fmt.Errorf("[Server New] cookie manager is required")
	}
	if catalog == nil {
		return nil, fmt.Errorf("[Server New] catalog is required")
	}
	if posts == nil {
		return nil, fmt.Errorf("[Server New] blog library is required")
	}
	if cartRepo == nil {
		return nil, fmt.Errorf("[Server New] cart repo is required")
	}

	s := &Server{
		mux:     http.NewServeMux(),
		config:  cfg,
		auth:    authService,
		cookies: cookieManager,
		catalog: catalog,
		posts:   posts,
		carts:   cartRepo,
	}
	s.env = cfg.GetEnv()
	s.fileServer = FileServerHandler()

	s.initRoutes()
	s.logRoutes()

	return s, nil
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

func (s *Server) RegisterRouteHandler(pattern string, handler http.Handler) {
	s.routes = append(s.routes, pattern)
	s.mux.Handle(pattern, handler)
}

func (s *Server) RegisterRouteFunc(pattern string, handler func(http.ResponseWriter, *http.Request)) {
	s.routes = append(s.routes, pattern)
	s.mux.HandleFunc(pattern, handler)
}

func (s *Server) logRoutes() {
	if s.env != "DEV" {
		return // Skip logging in non-development environments
	}
	for _, route := range s.routes {
		parts := strings.SplitN(route, " ", 2)

		if len(parts) > 1 {
			logRoute(parts[0], parts[1])
		} else {
			logRoute("", parts[0])
		}
	}
}

func logRoute(method, path string) {
	var displayMethod string
	paddedMethod := fmt.Sprintf(" %-7s", method)
	if color, ok := methodColors[method]; ok {
		displayMethod = color + paddedMethod + ResetColor
	} else {
		displayMethod = Gray + paddedMethod + ResetColor
	}
	log.Printf("[%-19s] %s\n", displayMethod, path)
}

// Helper function to determine the scheme (http/https)
func getScheme(r *http.Request) string {
	if r.TLS != nil {
		return "https"
	}
	if scheme := r.Header.Get("X-Forwarded-Proto"); scheme != "" {
		return scheme
	}
	return "http"
}
