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

// StyleGuideStore handles all style-guide-related database operations.
type StyleGuideStore struct {
	db *sql.DB
}

// NewStyleGuideStore creates a new StyleGuideStore with the given database connection.
func NewStyleGuideStore(db *sql.DB) *StyleGuideStore {
	return &StyleGuideStore{db: db}
}

const styleGuideColumns = `id, name, system_prompt, tone, structure_template,
       dos_and_donts, is_default, created_at, updated_at`

// List returns all style guides ordered by name.
func (s *StyleGuideStore) List() ([]models.StyleGuide, error) {
	rows, err := s.db.Query(`
		SELECT ` + styleGuideColumns + `
		FROM style_guides
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("list style guides: %w", err)
	}
	defer rows.Close()

	var guides []models.StyleGuide
	for rows.Next() {
		var guide models.StyleGuide
		if err := rows.Scan(
			&guide.ID, &guide.Name, &guide.SystemPrompt, &guide.Tone,
			&guide.StructureTemplate, &guide.DosAndDonts, &guide.IsDefault,
			&guide.CreatedAt, &guide.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan style guide: %w", err)
		}
		guides = append(guides, guide)
	}
	return guides, rows.Err()
}

// FindByID retrieves a style guide by its UUID. Returns nil if not found.
func (s *StyleGuideStore) FindByID(id uuid.UUID) (*models.StyleGuide, error) {
	guide := &models.StyleGuide{}
	err := s.db.QueryRow(`
		SELECT `+styleGuideColumns+`
		FROM style_guides WHERE id = $1
	`, id).Scan(
		&guide.ID, &guide.Name, &guide.SystemPrompt, &guide.Tone,
		&guide.StructureTemplate, &guide.DosAndDonts, &guide.IsDefault,
		&guide.CreatedAt, &guide.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find style guide by id: %w", err)
	}
	return guide, nil
}

// FindDefault retrieves the default style guide. Returns nil if none is
// marked as default. A partial unique index guarantees at most one.
func (s *StyleGuideStore) FindDefault() (*models.StyleGuide, error) {
	guide := &models.StyleGuide{}
	err := s.db.QueryRow(`
		SELECT ` + styleGuideColumns + `
		FROM style_guides WHERE is_default
	`).Scan(
		&guide.ID, &guide.Name, &guide.SystemPrompt, &guide.Tone,
		&guide.StructureTemplate, &guide.DosAndDonts, &guide.IsDefault,
		&guide.CreatedAt, &guide.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find default style guide: %w", err)
	}
	return guide, nil
}
