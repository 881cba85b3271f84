// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Review is a passenger review of a single ship. The overall rating is
// bounded 1-5 (enforced by a CHECK constraint); Categories optionally
// break the rating down per aspect (dining, cabins, entertainment...).
type Review struct {
	ID           uuid.UUID  `json:"id"`
	ShipID       uuid.UUID  `json:"ship_id"`
	CruiseDate   *time.Time `json:"cruise_date,omitempty"`
	Rating       int        `json:"rating"`
	ReviewerName *string    `json:"reviewer_name,omitempty"`
	ReviewText   string     `json:"review_text"`
	Categories   Categories `json:"categories,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
