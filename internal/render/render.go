// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package render provides HTML template rendering for the public blog
// pages. Pages render to a byte slice rather than straight to the
// response writer so the result can be stored in the page cache.
package render

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"

	"cruisecms/internal/models"
)

//go:embed templates/*.html
var templateFS embed.FS

// HomeData holds the data for the article index page.
type HomeData struct {
	Articles []models.Article
}

// ArticleData holds the data for a single published article page.
// Body is the sanitized HTML produced from the article's markdown.
type ArticleData struct {
	Article *models.Article
	Body    template.HTML
}

// Renderer handles template parsing and execution for public pages.
type Renderer struct {
	templates map[string]*template.Template
}

// New creates a Renderer by parsing all page templates from the embedded
// filesystem. Each page template is paired with the base layout.
func New() (*Renderer, error) {
	r := &Renderer{templates: make(map[string]*template.Template)}

	funcMap := template.FuncMap{
		// deref safely dereferences a string pointer for use in templates.
		"deref": func(s *string) string {
			if s == nil {
				return ""
			}
			return *s
		},
		"formatDate": func(t *time.Time) string {
			if t == nil {
				return ""
			}
			return t.Format("January 2, 2006")
		},
	}

	entries, err := templateFS.ReadDir("templates")
	if err != nil {
		return nil, fmt.Errorf("read embedded templates: %w", err)
	}

	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || name == "base.html" {
			continue
		}

		tmpl, err := template.New("base.html").Funcs(funcMap).ParseFS(
			templateFS, "templates/base.html", "templates/"+name,
		)
		if err != nil {
			return nil, fmt.Errorf("parse template %s: %w", name, err)
		}

		// Strip .html extension for the template name.
		r.templates[name[:len(name)-len(".html")]] = tmpl
	}

	return r, nil
}

// Page renders a named page template inside the base layout and returns
// the resulting HTML.
func (rn *Renderer) Page(name string, data any) ([]byte, error) {
	tmpl, ok := rn.templates[name]
	if !ok {
		return nil, fmt.Errorf("template %q not found", name)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "base.html", data); err != nil {
		return nil, fmt.Errorf("execute template %s: %w", name, err)
	}
	return buf.Bytes(), nil
}
