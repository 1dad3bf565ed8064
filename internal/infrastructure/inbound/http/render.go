package http_server

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/yuin/goldmark"

	model "blog-service/internal/domain/models"
	blog_http "blog-service/internal/infrastructure/inbound/http/blog"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	layoutTemplate = "templates/base.html"
	errorTemplate  = "error.html"
)

// Renderer holds one parsed template set per page, each layered on the
// shared layout.
type Renderer struct {
	pages map[string]*template.Template
}

func NewRenderer() (*Renderer, error) {
	funcs := template.FuncMap{
		"url":         blog_http.Reverse,
		"markdown":    renderMarkdown,
		"date":        formatDate,
		"add":         func(a, b int) int { return a + b },
		"index_error": fieldError,
	}

	files, err := fs.Glob(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("list templates: %w", err)
	}

	pages := make(map[string]*template.Template, len(files))
	for _, file := range files {
		if file == layoutTemplate {
			continue
		}
		name := path.Base(file)
		page, err := template.New(name).Funcs(funcs).ParseFS(templateFS, layoutTemplate, file)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}
		pages[name] = page
	}
	return &Renderer{pages: pages}, nil
}

func (r *Renderer) Render(w io.Writer, name string, data map[string]any) error {
	page, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("unknown template %q", name)
	}
	if err := page.ExecuteTemplate(w, "base", data); err != nil {
		return fmt.Errorf("execute template %s: %w", name, err)
	}
	return nil
}

func renderMarkdown(s string) template.HTML {
	var buf bytes.Buffer
	if err := goldmark.Convert([]byte(s), &buf); err != nil {
		return template.HTML(template.HTMLEscapeString(s))
	}
	return template.HTML(buf.String())
}

func formatDate(ts pgtype.Timestamptz) string {
	if !ts.Valid {
		return ""
	}
	return ts.Time.Format(model.DateJoinedLayout)
}

func fieldError(errs any, field string) string {
	if fieldErrors, ok := errs.(blog_http.FieldErrors); ok {
		return fieldErrors[field]
	}
	return ""
}
