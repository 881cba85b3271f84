package database

import (
	"database/sql"
	"fmt"
	"log/slog"
)

// Seed populates the database with initial development data: two ships
// with a handful of reviews each, a set of article topics, and a default
// style guide. It is a no-op if any ships already exist.
func Seed(db *sql.DB) error {
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM ships").Scan(&count); err != nil {
		return fmt.Errorf("seed check ships: %w", err)
	}

	if count > 0 {
		slog.Info("database already seeded, skipping")
		return nil
	}

	tx, err := db.Begin()
	if err != nil {
		return fmt.Errorf("seed begin: %w", err)
	}
	defer tx.Rollback()

	var wonderID, serenadeID string
	err = tx.QueryRow(`
		INSERT INTO ships (name, cruise_line, year_built, capacity, gross_tonnage, itineraries)
		VALUES ('Wonder of the Seas', 'Royal Caribbean', 2022, 5734, 236857,
		        '["Caribbean", "Mediterranean"]')
		RETURNING id
	`).Scan(&wonderID)
	if err != nil {
		return fmt.Errorf("seed insert ship: %w", err)
	}

	err = tx.QueryRow(`
		INSERT INTO ships (name, cruise_line, year_built, capacity, gross_tonnage, itineraries)
		VALUES ('Serenade of the Seas', 'Royal Caribbean', 2003, 2476, 90090,
		        '["Alaska", "Panama Canal"]')
		RETURNING id
	`).Scan(&serenadeID)
	if err != nil {
		return fmt.Errorf("seed insert ship: %w", err)
	}

	reviews := []struct {
		shipID     string
		date       string
		rating     int
		reviewer   string
		text       string
		categories string
	}{
		{wonderID, "2026-03-14", 5, "Ana",
			"The main dining room was spectacular every single night, and the specialty restaurants were worth every penny.",
			`{"Food": 5, "Service": 5, "Cabins": 4}`},
		{wonderID, "2026-01-08", 4, "Marcus",
			"Huge ship, never felt crowded except at the buffet on sea days. Kids loved the water slides.",
			`{"Food": 3.5, "Entertainment": 5, "Pools": 4.5}`},
		{wonderID, "2025-11-22", 3, "",
			"Beautiful ship but the elevators were slow and our balcony cabin felt dated.",
			`{"Cabins": 2.5, "Service": 4}`},
		{serenadeID, "2026-05-30", 5, "Priya",
			"Alaska from the Solarium with a coffee in hand, unbeatable. Crew remembered our names by day two.",
			`{"Service": 5, "Itinerary": 5}`},
		{serenadeID, "2025-08-17", 4, "Tom",
			"Smaller ship, which we preferred. Entertainment was hit and miss but the dining was consistently good.",
			`{"Food": 4, "Entertainment": 3}`},
	}

	for _, r := range reviews {
		reviewer := sql.NullString{String: r.reviewer, Valid: r.reviewer != ""}
		_, err := tx.Exec(`
			INSERT INTO reviews (ship_id, cruise_date, rating, reviewer_name, review_text, categories)
			VALUES ($1, $2, $3, $4, $5, $6)
		`, r.shipID, r.date, r.rating, reviewer, r.text, r.categories)
		if err != nil {
			return fmt.Errorf("seed insert review: %w", err)
		}
	}

	topics := []struct{ name, slug, description string }{
		{"Dining", "dining", "Restaurants, buffets, and specialty dining."},
		{"Cabins & Suites", "cabins-suites", "Stateroom categories, comfort, and value."},
		{"Entertainment", "entertainment", "Shows, music, and onboard activities."},
		{"Family Travel", "family-travel", "Cruising with kids and teens."},
	}
	for _, tp := range topics {
		_, err := tx.Exec(`
			INSERT INTO topics (name, slug, description) VALUES ($1, $2, $3)
		`, tp.name, tp.slug, tp.description)
		if err != nil {
			return fmt.Errorf("seed insert topic: %w", err)
		}
	}

	_, err = tx.Exec(`
		INSERT INTO style_guides (name, system_prompt, tone, structure_template, dos_and_donts, is_default)
		VALUES (
			'House Style',
			'You are a professional cruise travel writer. Write engaging, informative articles about cruise ships.',
			'warm and practical',
			E'1. Opening hook\n2. What reviewers loved\n3. What to watch out for\n4. Verdict',
			'{"dos": ["Be vivid", "Quote reviewer sentiment"], "donts": ["Avoid clichés", "No marketing superlatives"]}',
			TRUE
		)
	`)
	if err != nil {
		return fmt.Errorf("seed insert style guide: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("seed commit: %w", err)
	}

	slog.Info("database seeded with development fixtures",
		"ships", 2,
		"reviews", len(reviews),
		"topics", len(topics),
	)

	return nil
}
