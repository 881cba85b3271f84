// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the database entities for the cruise blog CMS.
// All optional columns are represented as pointers; JSONB columns use
// helper types implementing sql.Scanner and driver.Valuer.
package models

import (
	"time"

	"github.com/google/uuid"
)

// Ship represents a cruise ship that articles are written about.
// Ships are read-only inputs to article generation.
type Ship struct {
	ID           uuid.UUID  `json:"id"`
	Name         string     `json:"name"`
	CruiseLine   string     `json:"cruise_line"`
	YearBuilt    *int       `json:"year_built,omitempty"`
	Capacity     *int       `json:"capacity,omitempty"`
	GrossTonnage *int       `json:"gross_tonnage,omitempty"`
	Itineraries  StringList `json:"itineraries,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
