// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// StringList is a JSONB array of strings (e.g. a ship's itineraries).
// A NULL column scans to a nil slice.
type StringList []string

// Scan implements sql.Scanner for JSONB columns.
func (l *StringList) Scan(src any) error {
	if src == nil {
		*l = nil
		return nil
	}
	return scanJSON(l, src)
}

// Value implements driver.Valuer. Nil slices are stored as SQL NULL.
func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		return nil, nil
	}
	return json.Marshal(l)
}

// Categories maps a review category name to its sub-rating (e.g. "Food": 4).
type Categories map[string]float64

// Scan implements sql.Scanner for JSONB columns.
func (c *Categories) Scan(src any) error {
	if src == nil {
		*c = nil
		return nil
	}
	return scanJSON(c, src)
}

// Value implements driver.Valuer. Nil maps are stored as SQL NULL.
func (c Categories) Value() (driver.Value, error) {
	if c == nil {
		return nil, nil
	}
	return json.Marshal(c)
}

// DosAndDonts is a style guide's writing guideline lists.
type DosAndDonts struct {
	Dos   []string `json:"dos"`
	Donts []string `json:"donts"`
}

// DosAndDontsJSON wraps *DosAndDonts for JSONB scanning. The pointer stays
// nil when the column is NULL, so callers can distinguish "no guidelines"
// from empty lists.
type DosAndDontsJSON struct {
	*DosAndDonts
}

// Scan implements sql.Scanner for JSONB columns.
func (d *DosAndDontsJSON) Scan(src any) error {
	if src == nil {
		d.DosAndDonts = nil
		return nil
	}
	d.DosAndDonts = &DosAndDonts{}
	return scanJSON(d.DosAndDonts, src)
}

// Value implements driver.Valuer. A nil inner pointer is stored as SQL NULL.
func (d DosAndDontsJSON) Value() (driver.Value, error) {
	if d.DosAndDonts == nil {
		return nil, nil
	}
	return json.Marshal(d.DosAndDonts)
}

// scanJSON unmarshals a JSONB column value ([]byte or string) into dst.
func scanJSON(dst any, src any) error {
	switch v := src.(type) {
	case nil:
		return nil
	case []byte:
		return json.Unmarshal(v, dst)
	case string:
		return json.Unmarshal([]byte(v), dst)
	default:
		return fmt.Errorf("models: cannot scan %T into JSONB value", src)
	}
}
