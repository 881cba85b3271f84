// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// handler_test.go provides shared test infrastructure for handler
// integration tests. Tests are skipped when PostgreSQL is unavailable;
// the AI provider is always mocked.
package handlers

import (
	"context"
	"database/sql"
	"io"
	"net/http"
	"os"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"cruisecms/internal/ai"
	"cruisecms/internal/database"
	"cruisecms/internal/render"
	"cruisecms/internal/store"
)

// mockProvider implements ai.Provider with a scripted fragment sequence.
type mockProvider struct {
	fragments []string
	streamErr error // returned by Stream before anything is sent
	recvErr   error // returned by Recv after the fragments run out

	gotSystem string
	gotUser   string
}

func (m *mockProvider) Name() string { return "mock" }

func (m *mockProvider) Stream(_ context.Context, systemPrompt, userPrompt string) (ai.Stream, error) {
	m.gotSystem = systemPrompt
	m.gotUser = userPrompt
	if m.streamErr != nil {
		return nil, m.streamErr
	}
	return &mockStream{fragments: m.fragments, finalErr: m.recvErr}, nil
}

// mockStream yields scripted fragments, then finalErr or a clean io.EOF.
type mockStream struct {
	fragments []string
	finalErr  error
	pos       int
	closed    bool
}

func (s *mockStream) Recv() (string, error) {
	if s.pos < len(s.fragments) {
		text := s.fragments[s.pos]
		s.pos++
		return text, nil
	}
	if s.finalErr != nil {
		return "", s.finalErr
	}
	return "", io.EOF
}

func (s *mockStream) Close() error {
	s.closed = true
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

// testDB opens a connection to the test PostgreSQL and runs migrations.
func testDB(t *testing.T) *sql.DB {
	t.Helper()

	host := envOr("POSTGRES_HOST", "localhost")
	port := envOr("POSTGRES_PORT", "5432")
	user := envOr("POSTGRES_USER", "cruisecms")
	pass := envOr("POSTGRES_PASSWORD", "changeme")
	name := envOr("POSTGRES_DB", "cruisecms")
	dsn := "postgres://" + user + ":" + pass + "@" + host + ":" + port + "/" + name + "?sslmode=disable"

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		t.Skipf("skipping: cannot open DB: %v", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		t.Skipf("skipping: DB not reachable: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		db.Close()
		t.Fatalf("migrate: %v", err)
	}
	goose.SetBaseFS(nil)

	t.Cleanup(func() { db.Close() })
	return db
}

// testEnv holds all dependencies for handler integration tests. The page
// cache is nil so tests do not need Valkey.
type testEnv struct {
	DB       *sql.DB
	Provider *mockProvider
	API      *API
	Public   *Public
}

// newTestEnv creates a complete test environment with all handler
// dependencies and the given mocked provider.
func newTestEnv(t *testing.T, provider *mockProvider) *testEnv {
	t.Helper()

	db := testDB(t)

	renderer, err := render.New()
	if err != nil {
		t.Fatalf("render.New: %v", err)
	}

	ships := store.NewShipStore(db)
	reviews := store.NewReviewStore(db)
	images := store.NewImageStore(db)
	topics := store.NewTopicStore(db)
	styleGuides := store.NewStyleGuideStore(db)
	articles := store.NewArticleStore(db)

	return &testEnv{
		DB:       db,
		Provider: provider,
		API:      NewAPI(ships, reviews, images, topics, styleGuides, articles, provider, nil),
		Public:   NewPublic(articles, renderer, nil),
	}
}

// insertShip creates a ship row with one review and registers cleanup.
func insertShip(t *testing.T, db *sql.DB, name, reviewText string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(`
		INSERT INTO ships (name, cruise_line, year_built, capacity)
		VALUES ($1, 'Test Lines', 2020, 3000)
		RETURNING id
	`, name).Scan(&id)
	if err != nil {
		t.Fatalf("insert ship: %v", err)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM ships WHERE id = $1", id) })

	if reviewText != "" {
		if _, err := db.Exec(`
			INSERT INTO reviews (ship_id, rating, review_text, categories)
			VALUES ($1, 4, $2, '{"Food": 4.5}')
		`, id, reviewText); err != nil {
			t.Fatalf("insert review: %v", err)
		}
	}
	return id
}

// insertTopic creates a topic row and registers cleanup.
func insertTopic(t *testing.T, db *sql.DB, name, slug string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(`
		INSERT INTO topics (name, slug) VALUES ($1, $2) RETURNING id
	`, name, slug).Scan(&id)
	if err != nil {
		t.Fatalf("insert topic: %v", err)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM topics WHERE id = $1", id) })
	return id
}

// insertImage creates an image row for a ship and registers cleanup.
func insertImage(t *testing.T, db *sql.DB, shipID uuid.UUID, url string) uuid.UUID {
	t.Helper()

	var id uuid.UUID
	err := db.QueryRow(`
		INSERT INTO images (ship_id, url) VALUES ($1, $2) RETURNING id
	`, shipID, url).Scan(&id)
	if err != nil {
		t.Fatalf("insert image: %v", err)
	}
	t.Cleanup(func() { db.Exec("DELETE FROM images WHERE id = $1", id) })
	return id
}

// cleanArticles removes test articles by slug at test end.
func cleanArticles(t *testing.T, db *sql.DB, slugs ...string) {
	t.Helper()
	t.Cleanup(func() {
		for _, slug := range slugs {
			db.Exec("DELETE FROM articles WHERE slug = $1", slug)
		}
	})
}

// articleCount returns the number of article rows.
func articleCount(t *testing.T, db *sql.DB) int {
	t.Helper()
	var n int
	if err := db.QueryRow("SELECT COUNT(*) FROM articles").Scan(&n); err != nil {
		t.Fatalf("count articles: %v", err)
	}
	return n
}

// withChiURLParam adds a chi URL parameter to a request.
func withChiURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}
