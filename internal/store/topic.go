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

// TopicStore handles all topic-related database operations.
type TopicStore struct {
	db *sql.DB
}

// NewTopicStore creates a new TopicStore with the given database connection.
func NewTopicStore(db *sql.DB) *TopicStore {
	return &TopicStore{db: db}
}

// List returns all topics ordered by name.
func (s *TopicStore) List() ([]models.Topic, error) {
	rows, err := s.db.Query(`
		SELECT id, name, slug, description, created_at
		FROM topics
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("list topics: %w", err)
	}
	defer rows.Close()

	var topics []models.Topic
	for rows.Next() {
		var topic models.Topic
		if err := rows.Scan(
			&topic.ID, &topic.Name, &topic.Slug, &topic.Description, &topic.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan topic: %w", err)
		}
		topics = append(topics, topic)
	}
	return topics, rows.Err()
}

// FindByID retrieves a topic by its UUID. Returns nil if not found.
func (s *TopicStore) FindByID(id uuid.UUID) (*models.Topic, error) {
	topic := &models.Topic{}
	err := s.db.QueryRow(`
		SELECT id, name, slug, description, created_at
		FROM topics WHERE id = $1
	`, id).Scan(
		&topic.ID, &topic.Name, &topic.Slug, &topic.Description, &topic.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find topic by id: %w", err)
	}
	return topic, nil
}

// FindBySlug retrieves a topic by its slug. Returns nil if not found.
func (s *TopicStore) FindBySlug(slug string) (*models.Topic, error) {
	topic := &models.Topic{}
	err := s.db.QueryRow(`
		SELECT id, name, slug, description, created_at
		FROM topics WHERE slug = $1
	`, slug).Scan(
		&topic.ID, &topic.Name, &topic.Slug, &topic.Description, &topic.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find topic by slug: %w", err)
	}
	return topic, nil
}
