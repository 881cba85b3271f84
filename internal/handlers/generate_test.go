// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
)

// generateBody builds the camelCase request body the operator frontend
// sends to POST /api/generate.
func generateBody(shipID, topicID uuid.UUID) string {
	return fmt.Sprintf(`{"shipId": %q, "topicId": %q}`, shipID, topicID)
}

func TestGenerateStreamsFragments(t *testing.T) {
	provider := &mockProvider{fragments: []string{"Hello", " ", "World"}}
	env := newTestEnv(t, provider)

	shipID := insertShip(t, env.DB, "Stream Test Ship", "Great buffet on deck five.")
	topicID := insertTopic(t, env.DB, "Stream Dining", "stream-dining")

	req := httptest.NewRequest(http.MethodPost, "/api/generate",
		strings.NewReader(generateBody(shipID, topicID)))
	rr := httptest.NewRecorder()
	env.API.Generate(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body %q)", rr.Code, rr.Body.String())
	}
	if got := rr.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/plain") {
		t.Errorf("Content-Type: got %q, want text/plain", got)
	}

	// Fragments arrive in order and concatenate to the full article text.
	if rr.Body.String() != "Hello World" {
		t.Errorf("body: got %q, want %q", rr.Body.String(), "Hello World")
	}
	if !rr.Flushed {
		t.Error("response should have been flushed per fragment")
	}

	// Generation must not persist anything; saving is a separate call.
	if strings.Contains(env.Provider.gotUser, "Hello World") {
		t.Error("sanity: prompt should not contain the output")
	}
}

func TestGeneratePromptIncludesInputs(t *testing.T) {
	provider := &mockProvider{fragments: []string{"ok"}}
	env := newTestEnv(t, provider)

	shipID := insertShip(t, env.DB, "Prompt Test Ship", "The kids club was outstanding.")
	topicID := insertTopic(t, env.DB, "Prompt Family", "prompt-family")

	req := httptest.NewRequest(http.MethodPost, "/api/generate",
		strings.NewReader(generateBody(shipID, topicID)))
	rr := httptest.NewRecorder()
	env.API.Generate(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}

	for _, want := range []string{
		"Prompt Test Ship",
		"Prompt Family",
		"The kids club was outstanding.",
		"Food: 4.5/5",
	} {
		if !strings.Contains(provider.gotUser, want) {
			t.Errorf("user prompt missing %q", want)
		}
	}
	if provider.gotSystem == "" {
		t.Error("system prompt should fall back to the default persona")
	}
}

func TestGenerateAcceptsFrontendKeyNames(t *testing.T) {
	provider := &mockProvider{fragments: []string{"ok"}}
	env := newTestEnv(t, provider)

	shipID := insertShip(t, env.DB, "Wire Shape Ship", "fine")
	topicID := insertTopic(t, env.DB, "Wire Shape", "wire-shape")

	// The exact body the frontend sends, spelled out rather than built by
	// a helper.
	body := fmt.Sprintf(`{"shipId": %q, "topicId": %q}`, shipID, topicID)
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
	rr := httptest.NewRecorder()
	env.API.Generate(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200 (body %q)", rr.Code, rr.Body.String())
	}
	if rr.Body.String() != "ok" {
		t.Errorf("body: got %q, want the generated text", rr.Body.String())
	}
}

func TestGenerateEmptyStream(t *testing.T) {
	// A stream can end cleanly without producing any text. The response
	// opened when the stream did, so this is a 200 with an empty body.
	provider := &mockProvider{}
	env := newTestEnv(t, provider)

	shipID := insertShip(t, env.DB, "Empty Stream Ship", "fine")
	topicID := insertTopic(t, env.DB, "Empty Stream", "empty-stream")

	req := httptest.NewRequest(http.MethodPost, "/api/generate",
		strings.NewReader(generateBody(shipID, topicID)))
	rr := httptest.NewRecorder()
	env.API.Generate(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	if got := rr.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/plain") {
		t.Errorf("Content-Type: got %q, want text/plain", got)
	}
	if rr.Body.Len() != 0 {
		t.Errorf("body: got %q, want empty", rr.Body.String())
	}
}

func TestGenerateValidation(t *testing.T) {
	env := newTestEnv(t, &mockProvider{fragments: []string{"x"}})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader("{"))
		rr := httptest.NewRecorder()
		env.API.Generate(rr, req)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("status: got %d, want 400", rr.Code)
		}
	})

	t.Run("missing ids", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader("{}"))
		rr := httptest.NewRecorder()
		env.API.Generate(rr, req)
		if rr.Code != http.StatusBadRequest {
			t.Errorf("status: got %d, want 400", rr.Code)
		}
	})
}

func TestGenerateUnknownShip(t *testing.T) {
	env := newTestEnv(t, &mockProvider{fragments: []string{"never sent"}})

	topicID := insertTopic(t, env.DB, "Orphan Topic", "orphan-topic")
	before := articleCount(t, env.DB)

	req := httptest.NewRequest(http.MethodPost, "/api/generate",
		strings.NewReader(generateBody(uuid.New(), topicID)))
	rr := httptest.NewRecorder()
	env.API.Generate(rr, req)

	if rr.Code != http.StatusNotFound {
		t.Errorf("status: got %d, want 404", rr.Code)
	}
	if after := articleCount(t, env.DB); after != before {
		t.Errorf("article rows changed from %d to %d; generation must not persist", before, after)
	}
}

func TestGenerateProviderFailsBeforeFirstByte(t *testing.T) {
	provider := &mockProvider{streamErr: errors.New("api key rejected")}
	env := newTestEnv(t, provider)

	shipID := insertShip(t, env.DB, "Fail Early Ship", "fine")
	topicID := insertTopic(t, env.DB, "Fail Early", "fail-early")

	req := httptest.NewRequest(http.MethodPost, "/api/generate",
		strings.NewReader(generateBody(shipID, topicID)))
	rr := httptest.NewRecorder()
	env.API.Generate(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Errorf("status: got %d, want 500", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "error") {
		t.Errorf("body should carry a JSON error, got %q", rr.Body.String())
	}
}

func TestGenerateMidStreamFailureAbortsConnection(t *testing.T) {
	provider := &mockProvider{
		fragments: []string{"partial text"},
		recvErr:   errors.New("stream cut"),
	}
	env := newTestEnv(t, provider)

	shipID := insertShip(t, env.DB, "Mid Fail Ship", "fine")
	topicID := insertTopic(t, env.DB, "Mid Fail", "mid-fail")

	req := httptest.NewRequest(http.MethodPost, "/api/generate",
		strings.NewReader(generateBody(shipID, topicID)))
	rr := httptest.NewRecorder()

	defer func() {
		rec := recover()
		if rec != http.ErrAbortHandler {
			t.Fatalf("recovered %v, want http.ErrAbortHandler", rec)
		}
		// The fragments sent before the failure are already on the wire.
		if rr.Body.String() != "partial text" {
			t.Errorf("body: got %q, want %q", rr.Body.String(), "partial text")
		}
		if rr.Code != http.StatusOK {
			t.Errorf("status: got %d, want the already-sent 200", rr.Code)
		}
	}()
	env.API.Generate(rr, req)
	t.Error("expected Generate to panic with http.ErrAbortHandler")
}

func TestGenerateUsesSelectedStyleGuide(t *testing.T) {
	provider := &mockProvider{fragments: []string{"styled"}}
	env := newTestEnv(t, provider)

	shipID := insertShip(t, env.DB, "Styled Ship", "fine")
	topicID := insertTopic(t, env.DB, "Styled Topic", "styled-topic")

	var guideID uuid.UUID
	err := env.DB.QueryRow(`
		INSERT INTO style_guides (name, system_prompt, dos_and_donts)
		VALUES ('Handler Guide', 'You are a salty old deckhand.',
		        '{"dos": ["Mention the sea"], "donts": ["Use brochure language"]}')
		RETURNING id
	`).Scan(&guideID)
	if err != nil {
		t.Fatalf("insert style guide: %v", err)
	}
	t.Cleanup(func() { env.DB.Exec("DELETE FROM style_guides WHERE id = $1", guideID) })

	body := fmt.Sprintf(`{"shipId": %q, "topicId": %q, "styleGuideId": %q}`,
		shipID, topicID, guideID)
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
	rr := httptest.NewRecorder()
	env.API.Generate(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status: got %d, want 200", rr.Code)
	}
	if provider.gotSystem != "You are a salty old deckhand." {
		t.Errorf("system prompt: got %q, want the guide persona", provider.gotSystem)
	}
	if !strings.Contains(provider.gotUser, "Mention the sea") {
		t.Error("user prompt should include the guide's DO items")
	}

	t.Run("unknown guide id", func(t *testing.T) {
		body := fmt.Sprintf(`{"shipId": %q, "topicId": %q, "styleGuideId": %q}`,
			shipID, topicID, uuid.New())
		req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(body))
		rr := httptest.NewRecorder()
		env.API.Generate(rr, req)
		if rr.Code != http.StatusNotFound {
			t.Errorf("status: got %d, want 404", rr.Code)
		}
	})
}
