// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"html/template"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"cruisecms/internal/cache"
	"cruisecms/internal/markdown"
	"cruisecms/internal/render"
	"cruisecms/internal/store"
)

// Public groups the handlers for the public blog. Only published
// articles are reachable here; drafts return 404. Rendered pages are
// cached in Valkey when a page cache is configured.
type Public struct {
	articles  *store.ArticleStore
	renderer  *render.Renderer
	pageCache *cache.PageCache
}

// NewPublic creates a new Public handler group. pageCache may be nil.
func NewPublic(articles *store.ArticleStore, renderer *render.Renderer, pageCache *cache.PageCache) *Public {
	return &Public{articles: articles, renderer: renderer, pageCache: pageCache}
}

// Homepage lists published articles, most recently published first.
func (p *Public) Homepage(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	if p.pageCache != nil {
		if cached, ok := p.pageCache.Get(ctx, cache.HomepageKey()); ok {
			writeHTML(w, cached)
			return
		}
	}

	articles, err := p.articles.ListPublished()
	if err != nil {
		slog.Error("list published articles failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	html, err := p.renderer.Page("home", &render.HomeData{Articles: articles})
	if err != nil {
		slog.Error("render homepage failed", "error", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if p.pageCache != nil {
		p.pageCache.Set(ctx, cache.HomepageKey(), html)
	}
	writeHTML(w, html)
}

// Article renders a single published article by slug. The markdown body
// is converted to sanitized HTML at request time; the page cache keeps
// repeat renders off the hot path.
func (p *Public) Article(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	slugParam := chi.URLParam(r, "slug")

	if p.pageCache != nil {
		if cached, ok := p.pageCache.Get(ctx, cache.ArticleKey(slugParam)); ok {
			writeHTML(w, cached)
			return
		}
	}

	article, err := p.articles.FindPublishedBySlug(slugParam)
	if err != nil {
		slog.Error("find published article failed", "error", err, "slug", slugParam)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	if article == nil {
		http.NotFound(w, r)
		return
	}

	body, err := markdown.ToHTML(article.Content)
	if err != nil {
		slog.Error("render article markdown failed", "error", err, "slug", slugParam)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	page, err := p.renderer.Page("article", &render.ArticleData{
		Article: article,
		Body:    template.HTML(body),
	})
	if err != nil {
		slog.Error("render article page failed", "error", err, "slug", slugParam)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if p.pageCache != nil {
		p.pageCache.Set(ctx, cache.ArticleKey(slugParam), page)
	}
	writeHTML(w, page)
}

func writeHTML(w http.ResponseWriter, html []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(html)
}
