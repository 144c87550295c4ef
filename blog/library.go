package blog

import (
	"bytes"
	"embed"
	"html/template"
	"io/fs"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"
)

//go:embed content/*.md
var contentFiles embed.FS

const frontMatterDelimiter = "---"

// frontMatter is the YAML header on each article file.
type frontMatter struct {
	Slug     string `yaml:"slug"`
	Title    string `yaml:"title"`
	Excerpt  string `yaml:"excerpt"`
	Author   string `yaml:"author"`
	Date     string `yaml:"date"`
	Category string `yaml:"category"`
	Featured bool   `yaml:"featured"`
}

// Library holds every published post, rendered once at startup.
type Library struct {
	posts  []Post // newest first
	bySlug map[string]Post
}

// NewLibrary loads and renders the embedded articles.
func NewLibrary() (*Library, error) {
	md := goldmark.New(goldmark.WithExtensions(extension.GFM))

	names, err := fs.Glob(contentFiles, "content/*.md")
	if err != nil {
		return nil, errors.Wrap(err, "[NewLibrary] glob content")
	}
	if len(names) == 0 {
		return nil, errors.New("[NewLibrary] no articles found")
	}

	lib := &Library{bySlug: make(map[string]Post, len(names))}
	for _, name := range names {
		raw, err := fs.ReadFile(contentFiles, name)
		if err != nil {
			return nil, errors.Wrapf(err, "[NewLibrary] read %s", name)
		}

		post, err := parsePost(md, raw)
		if err != nil {
			return nil, errors.Wrapf(err, "[NewLibrary] parse %s", name)
		}

		if _, exists := lib.bySlug[post.Slug]; exists {
			return nil, errors.Errorf("[NewLibrary] duplicate slug %q", post.Slug)
		}
		lib.bySlug[post.Slug] = post
		lib.posts = append(lib.posts, post)
	}

	sort.Slice(lib.posts, func(i, j int) bool {
		return lib.posts[i].Date.After(lib.posts[j].Date)
	})

	return lib, nil
}

// Posts returns all articles, newest first.
func (l *Library) Posts() []Post {
	out := make([]Post, len(l.posts))
	copy(out, l.posts)
	return out
}

// Featured returns the articles flagged for the front page, newest first.
func (l *Library) Featured() []Post {
	var featured []Post
	for _, p := range l.posts {
		if p.Featured {
			featured = append(featured, p)
		}
	}
	return featured
}

// Get looks up a post by slug.
func (l *Library) Get(slug string) (Post, bool) {
	p, ok := l.bySlug[slug]
	return p, ok
}

func parsePost(md goldmark.Markdown, raw []byte) (Post, error) {
	meta, body, err := splitFrontMatter(string(raw))
	if err != nil {
		return Post{}, err
	}

	var fm frontMatter
	if err := yaml.Unmarshal([]byte(meta), &fm); err != nil {
		return Post{}, errors.Wrap(err, "front matter")
	}
	if fm.Slug == "" || fm.Title == "" {
		return Post{}, errors.New("front matter needs slug and title")
	}

	date, err := time.Parse("2006-01-02", fm.Date)
	if err != nil {
		return Post{}, errors.Wrapf(err, "date %q", fm.Date)
	}

	var rendered bytes.Buffer
	if err := md.Convert([]byte(body), &rendered); err != nil {
		return Post{}, errors.Wrap(err, "render markdown")
	}

	return Post{
		Slug:     fm.Slug,
		Title:    fm.Title,
		Excerpt:  fm.Excerpt,
		Author:   fm.Author,
		Date:     date,
		Category: Category(fm.Category),
		Featured: fm.Featured,
		// Article bodies are authored in-repo, never user input.
		HTML: template.HTML(rendered.String()),
	}, nil
}

func splitFrontMatter(raw string) (meta string, body string, err error) {
	trimmed := strings.TrimPrefix(raw, "\uFEFF")
	if !strings.HasPrefix(trimmed, frontMatterDelimiter+"\n") {
		return "", "", errors.New("missing front matter")
	}
	rest := trimmed[len(frontMatterDelimiter)+1:]
	idx := strings.Index(rest, "\n"+frontMatterDelimiter+"\n")
	if idx < 0 {
		return "", "", errors.New("unterminated front matter")
	}
	return rest[:idx], rest[idx+len(frontMatterDelimiter)+2:], nil
}
