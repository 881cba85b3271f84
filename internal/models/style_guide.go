// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"time"

	"github.com/google/uuid"
)

// StyleGuide is a named bundle of writing instructions applied to article
// generation: a system prompt for the model, an optional structural
// template, and optional do/don't lists. At most one guide is the default
// (enforced by a partial unique index).
type StyleGuide struct {
	ID                uuid.UUID       `json:"id"`
	Name              string          `json:"name"`
	SystemPrompt      string          `json:"system_prompt"`
	Tone              *string         `json:"tone,omitempty"`
	StructureTemplate *string         `json:"structure_template,omitempty"`
	DosAndDonts       DosAndDontsJSON `json:"dos_and_donts,omitempty"`
	IsDefault         bool            `json:"is_default"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
}
