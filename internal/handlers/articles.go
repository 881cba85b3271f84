// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"

	"cruisecms/internal/markdown"
	"cruisecms/internal/models"
	"cruisecms/internal/slug"
)

// createArticleRequest is the body for POST /api/articles. Title, slug,
// and excerpt are optional; missing values are derived from the content.
type createArticleRequest struct {
	ShipID          uuid.UUID  `json:"ship_id"`
	TopicID         uuid.UUID  `json:"topic_id"`
	Title           string     `json:"title"`
	Slug            string     `json:"slug"`
	Content         string     `json:"content"`
	Excerpt         *string    `json:"excerpt"`
	FeaturedImageID *uuid.UUID `json:"featured_image_id"`
}

// ListArticles returns every article regardless of status, newest first.
func (a *API) ListArticles(w http.ResponseWriter, r *http.Request) {
	articles, err := a.articles.List()
	if err != nil {
		slog.Error("list articles failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load articles")
		return
	}
	if articles == nil {
		articles = []models.Article{}
	}
	writeJSON(w, http.StatusOK, articles)
}

// CreateArticle saves article content as a new draft. Title, slug, and
// excerpt are derived from the markdown content when the client omits
// them, the same derivation the generation flow uses. Every call creates
// a new row.
func (a *API) CreateArticle(w http.ResponseWriter, r *http.Request) {
	var req createArticleRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Content == "" {
		writeError(w, http.StatusBadRequest, "content is required")
		return
	}
	if req.ShipID == uuid.Nil || req.TopicID == uuid.Nil {
		writeError(w, http.StatusBadRequest, "ship_id and topic_id are required")
		return
	}

	ship, err := a.ships.FindByID(req.ShipID)
	if err != nil {
		slog.Error("find ship failed", "error", err, "ship_id", req.ShipID)
		writeError(w, http.StatusInternalServerError, "failed to load ship")
		return
	}
	if ship == nil {
		writeError(w, http.StatusNotFound, "ship not found")
		return
	}

	topic, err := a.topics.FindByID(req.TopicID)
	if err != nil {
		slog.Error("find topic failed", "error", err, "topic_id", req.TopicID)
		writeError(w, http.StatusInternalServerError, "failed to load topic")
		return
	}
	if topic == nil {
		writeError(w, http.StatusNotFound, "topic not found")
		return
	}

	if req.FeaturedImageID != nil {
		img, err := a.images.FindByID(*req.FeaturedImageID)
		if err != nil {
			slog.Error("find image failed", "error", err, "image_id", *req.FeaturedImageID)
			writeError(w, http.StatusInternalServerError, "failed to load image")
			return
		}
		if img == nil {
			writeError(w, http.StatusNotFound, "featured image not found")
			return
		}
	}

	if req.Title == "" {
		req.Title = markdown.ExtractTitle(req.Content)
	}
	if req.Slug == "" {
		req.Slug = slug.Generate(req.Title)
	}
	if req.Excerpt == nil {
		if ex := markdown.Excerpt(req.Content, markdown.DefaultExcerptLength); ex != "" {
			req.Excerpt = &ex
		}
	}

	if req.Title == "" || req.Slug == "" {
		writeError(w, http.StatusBadRequest, "could not derive a title from the content")
		return
	}

	created, err := a.articles.CreateDraft(&models.Article{
		ShipID:          req.ShipID,
		TopicID:         req.TopicID,
		Title:           req.Title,
		Slug:            req.Slug,
		Content:         req.Content,
		Excerpt:         req.Excerpt,
		FeaturedImageID: req.FeaturedImageID,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			writeError(w, http.StatusConflict, "an article with this slug already exists")
			return
		}
		slog.Error("create article failed", "error", err, "slug", req.Slug)
		writeError(w, http.StatusInternalServerError, "failed to save article")
		return
	}

	slog.Info("article draft created", "id", created.ID, "slug", created.Slug)
	writeJSON(w, http.StatusCreated, created)
}

// PublishArticle transitions a draft to published and invalidates the
// cached public pages for it.
func (a *API) PublishArticle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid article id")
		return
	}

	article, err := a.articles.Publish(id)
	if err != nil {
		slog.Error("publish article failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "failed to publish article")
		return
	}
	if article == nil {
		writeError(w, http.StatusNotFound, "article not found")
		return
	}

	if a.pageCache != nil {
		a.pageCache.InvalidateArticle(r.Context(), article.Slug)
	}
	slog.Info("article published", "id", article.ID, "slug", article.Slug)
	writeJSON(w, http.StatusOK, article)
}

// UnpublishArticle transitions a published article back to draft. The
// public page disappears as soon as the cache entry is invalidated.
func (a *API) UnpublishArticle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid article id")
		return
	}

	article, err := a.articles.Unpublish(id)
	if err != nil {
		slog.Error("unpublish article failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "failed to unpublish article")
		return
	}
	if article == nil {
		writeError(w, http.StatusNotFound, "article not found")
		return
	}

	if a.pageCache != nil {
		a.pageCache.InvalidateArticle(r.Context(), article.Slug)
	}
	slog.Info("article unpublished", "id", article.ID, "slug", article.Slug)
	writeJSON(w, http.StatusOK, article)
}

// DeleteArticle removes an article entirely.
func (a *API) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid article id")
		return
	}

	article, err := a.articles.FindByID(id)
	if err != nil {
		slog.Error("find article failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "failed to load article")
		return
	}
	if article == nil {
		writeError(w, http.StatusNotFound, "article not found")
		return
	}

	if err := a.articles.Delete(id); err != nil {
		slog.Error("delete article failed", "error", err, "id", id)
		writeError(w, http.StatusInternalServerError, "failed to delete article")
		return
	}

	// Drafts never reach the page cache, so only published articles need
	// their pages invalidated.
	if a.pageCache != nil && article.IsPublished() {
		a.pageCache.InvalidateArticle(r.Context(), article.Slug)
	}
	slog.Info("article deleted", "id", id, "slug", article.Slug)
	w.WriteHeader(http.StatusNoContent)
}
