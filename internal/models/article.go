// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// ArticleStatus represents the publishing state of an article.
type ArticleStatus string

const (
	ArticleStatusDraft     ArticleStatus = "draft"
	ArticleStatusPublished ArticleStatus = "published"
)

// Article is a generated travel article about one ship and one topic.
// Articles are created as drafts and only become visible on the public
// site once published. Slugs are unique.
type Article struct {
	ID              uuid.UUID     `json:"id"`
	ShipID          uuid.UUID     `json:"ship_id"`
	TopicID         uuid.UUID     `json:"topic_id"`
	Title           string        `json:"title"`
	Slug            string        `json:"slug"`
	Content         string        `json:"content"`
	Excerpt         *string       `json:"excerpt,omitempty"`
	FeaturedImageID *uuid.UUID    `json:"featured_image_id,omitempty"`
	Status          ArticleStatus `json:"status"`
	PublishedAt     *time.Time    `json:"published_at,omitempty"`
	CreatedAt       time.Time     `json:"created_at"`
	UpdatedAt       time.Time     `json:"updated_at"`

	// Relations populated by store methods that join, nil otherwise.
	Ship          *Ship  `json:"ship,omitempty"`
	Topic         *Topic `json:"topic,omitempty"`
	FeaturedImage *Image `json:"featured_image,omitempty"`
}

// IsPublished returns true if the article is in published status.
func (a *Article) IsPublished() bool {
	return a.Status == ArticleStatusPublished
}
