// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"cruisecms/internal/models"
)

// ArticleStore handles all article-related database operations.
type ArticleStore struct {
	db *sql.DB
}

// NewArticleStore creates a new ArticleStore with the given database connection.
func NewArticleStore(db *sql.DB) *ArticleStore {
	return &ArticleStore{db: db}
}

const articleColumns = `id, ship_id, topic_id, title, slug, content, excerpt,
       featured_image_id, status, published_at, created_at, updated_at`

func scanArticle(row interface{ Scan(...any) error }, a *models.Article) error {
	return row.Scan(
		&a.ID, &a.ShipID, &a.TopicID, &a.Title, &a.Slug, &a.Content,
		&a.Excerpt, &a.FeaturedImageID, &a.Status, &a.PublishedAt,
		&a.CreatedAt, &a.UpdatedAt,
	)
}

// List returns all articles regardless of status, newest first.
// Used by the admin article overview.
func (s *ArticleStore) List() ([]models.Article, error) {
	rows, err := s.db.Query(`
		SELECT ` + articleColumns + `
		FROM articles
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("list articles: %w", err)
	}
	defer rows.Close()

	var articles []models.Article
	for rows.Next() {
		var a models.Article
		if err := scanArticle(rows, &a); err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// ListPublished returns all published articles with their ship and topic
// relations populated, most recently published first. Used by the public
// homepage.
func (s *ArticleStore) ListPublished() ([]models.Article, error) {
	rows, err := s.db.Query(`
		SELECT a.id, a.ship_id, a.topic_id, a.title, a.slug, a.content,
		       a.excerpt, a.featured_image_id, a.status, a.published_at,
		       a.created_at, a.updated_at,
		       s.name, s.cruise_line,
		       t.name, t.slug
		FROM articles a
		JOIN ships s ON s.id = a.ship_id
		JOIN topics t ON t.id = a.topic_id
		WHERE a.status = 'published'
		ORDER BY a.published_at DESC NULLS LAST
	`)
	if err != nil {
		return nil, fmt.Errorf("list published articles: %w", err)
	}
	defer rows.Close()

	var articles []models.Article
	for rows.Next() {
		var a models.Article
		ship := &models.Ship{}
		topic := &models.Topic{}
		if err := rows.Scan(
			&a.ID, &a.ShipID, &a.TopicID, &a.Title, &a.Slug, &a.Content,
			&a.Excerpt, &a.FeaturedImageID, &a.Status, &a.PublishedAt,
			&a.CreatedAt, &a.UpdatedAt,
			&ship.Name, &ship.CruiseLine,
			&topic.Name, &topic.Slug,
		); err != nil {
			return nil, fmt.Errorf("scan published article: %w", err)
		}
		ship.ID, topic.ID = a.ShipID, a.TopicID
		a.Ship, a.Topic = ship, topic
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

// FindByID retrieves an article by its UUID. Returns nil if not found.
func (s *ArticleStore) FindByID(id uuid.UUID) (*models.Article, error) {
	a := &models.Article{}
	err := scanArticle(s.db.QueryRow(`
		SELECT `+articleColumns+`
		FROM articles WHERE id = $1
	`, id), a)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find article by id: %w", err)
	}
	return a, nil
}

// FindPublishedBySlug retrieves a published article by slug with its ship,
// topic, and featured image relations populated. Draft articles are not
// visible through this method. Returns nil if not found.
func (s *ArticleStore) FindPublishedBySlug(slug string) (*models.Article, error) {
	a := &models.Article{}
	ship := &models.Ship{}
	topic := &models.Topic{}
	var imgURL, imgCaption, imgCredit sql.NullString

	err := s.db.QueryRow(`
		SELECT a.id, a.ship_id, a.topic_id, a.title, a.slug, a.content,
		       a.excerpt, a.featured_image_id, a.status, a.published_at,
		       a.created_at, a.updated_at,
		       s.name, s.cruise_line, s.year_built, s.capacity, s.gross_tonnage,
		       t.name, t.slug, t.description,
		       i.url, i.caption, i.credit
		FROM articles a
		JOIN ships s ON s.id = a.ship_id
		JOIN topics t ON t.id = a.topic_id
		LEFT JOIN images i ON i.id = a.featured_image_id
		WHERE a.slug = $1 AND a.status = 'published'
	`, slug).Scan(
		&a.ID, &a.ShipID, &a.TopicID, &a.Title, &a.Slug, &a.Content,
		&a.Excerpt, &a.FeaturedImageID, &a.Status, &a.PublishedAt,
		&a.CreatedAt, &a.UpdatedAt,
		&ship.Name, &ship.CruiseLine, &ship.YearBuilt, &ship.Capacity, &ship.GrossTonnage,
		&topic.Name, &topic.Slug, &topic.Description,
		&imgURL, &imgCaption, &imgCredit,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find published article by slug: %w", err)
	}

	ship.ID, topic.ID = a.ShipID, a.TopicID
	a.Ship, a.Topic = ship, topic
	if a.FeaturedImageID != nil && imgURL.Valid {
		a.FeaturedImage = &models.Image{
			ID:  *a.FeaturedImageID,
			URL: imgURL.String,
		}
		if imgCaption.Valid {
			a.FeaturedImage.Caption = &imgCaption.String
		}
		if imgCredit.Valid {
			a.FeaturedImage.Credit = &imgCredit.String
		}
	}
	return a, nil
}

// CreateDraft inserts a new article in draft status and returns it with
// the generated ID and timestamps. Every call creates a new row; there is
// no deduplication.
func (s *ArticleStore) CreateDraft(a *models.Article) (*models.Article, error) {
	result := &models.Article{}
	err := scanArticle(s.db.QueryRow(`
		INSERT INTO articles (ship_id, topic_id, title, slug, content,
		                      excerpt, featured_image_id, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, 'draft')
		RETURNING `+articleColumns+`
	`, a.ShipID, a.TopicID, a.Title, a.Slug, a.Content, a.Excerpt, a.FeaturedImageID,
	), result)
	if err != nil {
		return nil, fmt.Errorf("create article draft: %w", err)
	}
	return result, nil
}

// Publish transitions an article to published status, stamping
// published_at. Returns nil if the article does not exist.
func (s *ArticleStore) Publish(id uuid.UUID) (*models.Article, error) {
	result := &models.Article{}
	err := scanArticle(s.db.QueryRow(`
		UPDATE articles
		SET status = 'published', published_at = NOW(), updated_at = NOW()
		WHERE id = $1
		RETURNING `+articleColumns+`
	`, id), result)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("publish article: %w", err)
	}
	return result, nil
}

// Unpublish transitions an article back to draft status, clearing
// published_at. Returns nil if the article does not exist.
func (s *ArticleStore) Unpublish(id uuid.UUID) (*models.Article, error) {
	result := &models.Article{}
	err := scanArticle(s.db.QueryRow(`
		UPDATE articles
		SET status = 'draft', published_at = NULL, updated_at = NOW()
		WHERE id = $1
		RETURNING `+articleColumns+`
	`, id), result)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unpublish article: %w", err)
	}
	return result, nil
}

// Delete removes an article by ID.
func (s *ArticleStore) Delete(id uuid.UUID) error {
	_, err := s.db.Exec(`DELETE FROM articles WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	return nil
}
