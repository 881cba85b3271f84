// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store contains the per-entity database access layers. Each store
// wraps a *sql.DB handed in at construction time, so tests can substitute
// their own connection. Find methods return (nil, nil) when no row matches.
package store

import (
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"cruisecms/internal/models"
)

// ShipStore handles all ship-related database operations.
type ShipStore struct {
	db *sql.DB
}

// NewShipStore creates a new ShipStore with the given database connection.
func NewShipStore(db *sql.DB) *ShipStore {
	return &ShipStore{db: db}
}

// List returns all ships ordered by name.
func (s *ShipStore) List() ([]models.Ship, error) {
	rows, err := s.db.Query(`
		SELECT id, name, cruise_line, year_built, capacity, gross_tonnage,
		       itineraries, created_at, updated_at
		FROM ships
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("list ships: %w", err)
	}
	defer rows.Close()

	var ships []models.Ship
	for rows.Next() {
		var ship models.Ship
		if err := rows.Scan(
			&ship.ID, &ship.Name, &ship.CruiseLine, &ship.YearBuilt,
			&ship.Capacity, &ship.GrossTonnage, &ship.Itineraries,
			&ship.CreatedAt, &ship.UpdatedAt,
		); err != nil {
			return nil, fmt.Errorf("scan ship: %w", err)
		}
		ships = append(ships, ship)
	}
	return ships, rows.Err()
}

// FindByID retrieves a ship by its UUID. Returns nil if not found.
func (s *ShipStore) FindByID(id uuid.UUID) (*models.Ship, error) {
	ship := &models.Ship{}
	err := s.db.QueryRow(`
		SELECT id, name, cruise_line, year_built, capacity, gross_tonnage,
		       itineraries, created_at, updated_at
		FROM ships WHERE id = $1
	`, id).Scan(
		&ship.ID, &ship.Name, &ship.CruiseLine, &ship.YearBuilt,
		&ship.Capacity, &ship.GrossTonnage, &ship.Itineraries,
		&ship.CreatedAt, &ship.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("find ship by id: %w", err)
	}
	return ship, nil
}
