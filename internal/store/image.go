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

// ImageStore handles all image-related database operations.
type ImageStore struct {
	db *sql.DB
}

// NewImageStore creates a new ImageStore with the given database connection.
func NewImageStore(db *sql.DB) *ImageStore {
	return &ImageStore{db: db}
}

// ListByShip returns all images for a ship, newest first.
func (s *ImageStore) ListByShip(shipID uuid.UUID) ([]models.Image, error) {
	rows, err := s.db.Query(`
		SELECT id, ship_id, review_id, url, caption, credit, created_at
		FROM images
		WHERE ship_id = $1
		ORDER BY created_at DESC
	`, shipID)
	if err != nil {
		return nil, fmt.Errorf("list images by ship: %w", err)
	}
	defer rows.Close()

	var images []models.Image
	for rows.Next() {
		var img models.Image
		if err := rows.Scan(
			&img.ID, &img.ShipID, &img.ReviewID, &img.URL,
			&img.Caption, &img.Credit, &img.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan image: %w", err)
		}
		images = append(images, img)
	}
	return images, rows.Err()
}

// FindByID retrieves an image by its UUID. Returns nil if not found.
func (s *ImageStore) FindByID(id uuid.UUID) (*models.Image, error) {
	img := &models.Image{}
	err := s.db.QueryRow(`
		SELECT id, ship_id, review_id, url, caption, credit, created_at
		FROM images WHERE id = $1
	`, id).Scan(
		&img.ID, &img.ShipID, &img.ReviewID, &img.URL,
		&img.Caption, &img.Credit, &img.CreatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find image by id: %w", err)
	}
	return img, nil
}
