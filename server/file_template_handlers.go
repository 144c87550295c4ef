package server

import (
	"embed"
	"html/template"
	"io/fs"

	"github.com/HLPFLCG/HLPFL-INC/store"
)

//go:embed templates/*
var templateFiles embed.FS

func TemplateFilesFS() fs.FS {
	subFS, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		panic("Failed to create templates sub filesystem: " + err.Error())
	}
	return subFS
}

var templateFuncs = template.FuncMap{
	"price": store.FormatCents,
}

// ParsePage parses a page template together with the shared layout. Pages
// define a "content" block that slots into layout.html.
func ParsePage(name string) (*template.Template, error) {
	return template.New("layout.html").
		Funcs(templateFuncs).
		ParseFS(TemplateFilesFS(), "layout.html", name)
}
