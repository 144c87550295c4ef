package blog

import (
	"html/template"
	"time"
)

// Category buckets posts for the blog index filter.
type Category string

const (
	CategoryPressRelease Category = "press-release"
	CategoryCaseStudy    Category = "case-study"
	CategoryNews         Category = "news"
	CategoryGuide        Category = "guide"
)

// Post is one published article. Content is compiled into the binary;
// there is no CMS behind this.
type Post struct {
	Slug     string
	Title    string
	Excerpt  string
	Author   string
	Date     time.Time
	Category Category
	Featured bool
	HTML     template.HTML // rendered article body
}

// DisplayDate renders the publication date the way the blog pages show it.
func (p Post) DisplayDate() string {
	return p.Date.Format("January 2, 2006")
}
