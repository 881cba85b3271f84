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

// ReviewStore handles all review-related database operations.
type ReviewStore struct {
	db *sql.DB
}

// NewReviewStore creates a new ReviewStore with the given database connection.
func NewReviewStore(db *sql.DB) *ReviewStore {
	return &ReviewStore{db: db}
}

// ListByShip returns all reviews for a ship, newest first. This is the
// ordering the prompt builder receives.
func (s *ReviewStore) ListByShip(shipID uuid.UUID) ([]models.Review, error) {
	rows, err := s.db.Query(`
		SELECT id, ship_id, cruise_date, rating, reviewer_name, review_text,
		       categories, created_at, updated_at
		FROM reviews
		WHERE ship_id = $1
		ORDER BY created_at DESC
	`, shipID)
	if err != nil {
		return nil, fmt.Errorf("list reviews by ship: %w", err)
	}
	defer rows.Close()

	var reviews []models.Review
	for rows.Next() {
		var review models.Review
		if err := rows.Scan(
			&review.ID, &review.ShipID, &review.CruiseDate, &review.Rating,
			&review.ReviewerName, &review.ReviewText, &review.Categories,
			&review.CreatedAt, &review.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan review: %w", err)
		}
		reviews = append(reviews, review)
	}
	return reviews, rows.Err()
}
