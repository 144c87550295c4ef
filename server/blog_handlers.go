package server

import (
	"net/http"

	"github.com/HLPFLCG/HLPFL-INC/blog"
)

// BlogIndexHandler lists every post, newest first.
func (s *Server) BlogIndexHandler() http.HandlerFunc {
	tmpl, err := ParsePage("blog.html")
	if err != nil {
		panic("Failed to parse blog template: " + err.Error())
	}

	type blogPage struct {
		basePage
		Posts []blog.Post
	}

	return func(w http.ResponseWriter, r *http.Request) {
		s.renderPage(w, tmpl, blogPage{
			basePage: s.basePage("Blog"),
			Posts:    s.posts.Posts(),
		})
	}
}

// BlogPostHandler renders a single article; unknown slugs get the 404 page.
func (s *Server) BlogPostHandler() http.HandlerFunc {
	tmpl, err := ParsePage("blog_post.html")
	if err != nil {
		panic("Failed to parse blog post template: " + err.Error())
	}

	type postPage struct {
		basePage
		Post blog.Post
	}

	notFound := s.NotFoundHandler()

	return func(w http.ResponseWriter, r *http.Request) {
		post, ok := s.posts.Get(r.PathValue("slug"))
		if !ok {
			notFound(w, r)
			return
		}

		s.renderPage(w, tmpl, postPage{
			basePage: s.basePage(post.Title),
			Post:     post,
		})
	}
}
