// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// Image is a photo attached to a ship or a review, referenced by URL.
// Articles may point at one image as their featured image.
type Image struct {
	ID        uuid.UUID  `json:"id"`
	ShipID    *uuid.UUID `json:"ship_id,omitempty"`
	ReviewID  *uuid.UUID `json:"review_id,omitempty"`
	URL       string     `json:"url"`
	Caption   *string    `json:"caption,omitempty"`
	Credit    *string    `json:"credit,omitempty"`
	CreatedAt time.Time  `json:"created_at"`
}
