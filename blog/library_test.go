package blog_test

import (
	"strings"
	"testing"
	"time"

	"github.com/HLPFLCG/HLPFL-INC/blog"
	"github.com/stretchr/testify/require"
)

func TestNewLibrary(t *testing.T) {
	lib, err := blog.NewLibrary()
	require.NoError(t, err)

	t.Run("all posts load newest first", func(t *testing.T) {
		posts := lib.Posts()
		require.Len(t, posts, 4)
		for i := 1; i < len(posts); i++ {
			require.False(t, posts[i].Date.After(posts[i-1].Date))
		}
		require.Equal(t, "five-markets-beyond-salons-torres-chair", posts[0].Slug)
	})

	t.Run("get by slug", func(t *testing.T) {
		post, ok := lib.Get("hlpfl-launches-to-empower-creative-entrepreneurs")
		require.True(t, ok)
		require.Equal(t, "HLPFL Launches to Empower Creative Entrepreneurs", post.Title)
		require.Equal(t, blog.CategoryPressRelease, post.Category)
		require.Equal(t, "HLPFL Team", post.Author)
		require.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), post.Date)
		require.True(t, post.Featured)
	})

	t.Run("unknown slug", func(t *testing.T) {
		_, ok := lib.Get("no-such-post")
		require.False(t, ok)
	})

	t.Run("markdown renders to HTML", func(t *testing.T) {
		post, ok := lib.Get("why-commission-only-matters")
		require.True(t, ok)

		html := string(post.HTML)
		require.Contains(t, html, "<h2")
		require.Contains(t, html, "The Traditional Model is Broken")
		require.Contains(t, html, "<li>")
		require.NotContains(t, html, "## ")
	})

	t.Run("featured posts only", func(t *testing.T) {
		featured := lib.Featured()
		require.Len(t, featured, 2)
		for _, p := range featured {
			require.True(t, p.Featured)
		}
	})

	t.Run("display date format", func(t *testing.T) {
		post, ok := lib.Get("torres-entertainment-partnership-success-story")
		require.True(t, ok)
		require.Equal(t, "February 1, 2025", post.DisplayDate())
	})

	t.Run("excerpts are single line", func(t *testing.T) {
		for _, p := range lib.Posts() {
			require.NotEmpty(t, p.Excerpt)
			require.False(t, strings.Contains(strings.TrimSpace(p.Excerpt), "\n"))
		}
	})
}
