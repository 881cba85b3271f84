// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"io"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"

	"cruisecms/internal/ai"
	"cruisecms/internal/models"
)

// generateRequest is the body for POST /api/generate. The keys are
// camelCase, unlike the snake_case article payloads; this is the shape
// the operator frontend has always sent. StyleGuideID is optional; when
// absent the default style guide is used if one exists.
type generateRequest struct {
	ShipID       uuid.UUID  `json:"shipId"`
	TopicID      uuid.UUID  `json:"topicId"`
	StyleGuideID *uuid.UUID `json:"styleGuideId"`
}

// Generate streams a freshly generated article to the client as chunked
// plain text. Nothing is persisted here; the client reviews the full text
// and saves it through POST /api/articles if it wants to keep it.
//
// Failures before the provider stream opens produce a normal error
// response. Once it opens the 200 and Content-Type go out immediately,
// so any later failure aborts the connection; the truncated body is the
// only signal the client gets.
func (a *API) Generate(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	var req generateRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.ShipID == uuid.Nil || req.TopicID == uuid.Nil {
		writeError(w, http.StatusBadRequest, "shipId and topicId are required")
		return
	}

	// The four inputs are independent rows; fetch them concurrently.
	var (
		wg      sync.WaitGroup
		ship    *models.Ship
		topic   *models.Topic
		reviews []models.Review
		guide   *models.StyleGuide

		shipErr, topicErr, reviewsErr, guideErr error
	)
	wg.Add(4)
	go func() {
		defer wg.Done()
		ship, shipErr = a.ships.FindByID(req.ShipID)
	}()
	go func() {
		defer wg.Done()
		topic, topicErr = a.topics.FindByID(req.TopicID)
	}()
	go func() {
		defer wg.Done()
		reviews, reviewsErr = a.reviews.ListByShip(req.ShipID)
	}()
	go func() {
		defer wg.Done()
		if req.StyleGuideID != nil {
			guide, guideErr = a.styleGuides.FindByID(*req.StyleGuideID)
		} else {
			guide, guideErr = a.styleGuides.FindDefault()
		}
	}()
	wg.Wait()

	for _, err := range []error{shipErr, topicErr, reviewsErr, guideErr} {
		if err != nil {
			slog.Error("generation input lookup failed", "error", err)
			writeError(w, http.StatusInternalServerError, "failed to load generation inputs")
			return
		}
	}
	if ship == nil {
		writeError(w, http.StatusNotFound, "ship not found")
		return
	}
	if topic == nil {
		writeError(w, http.StatusNotFound, "topic not found")
		return
	}
	if req.StyleGuideID != nil && guide == nil {
		writeError(w, http.StatusNotFound, "style guide not found")
		return
	}

	systemPrompt, userPrompt := ai.BuildArticlePrompt(ship, reviews, topic, guide)

	stream, err := a.provider.Stream(ctx, systemPrompt, userPrompt)
	if err != nil {
		slog.Error("start generation stream failed", "error", err, "provider", a.provider.Name())
		writeError(w, http.StatusInternalServerError, "article generation failed")
		return
	}
	defer stream.Close()

	flusher, ok := w.(http.Flusher)
	if !ok {
		slog.Error("response writer does not support streaming")
		writeError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	slog.Info("article generation started",
		"ship", ship.Name, "topic", topic.Name, "reviews", len(reviews),
		"provider", a.provider.Name())

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(http.StatusOK)

	for {
		text, err := stream.Recv()
		if err == io.EOF {
			return
		}
		if err != nil {
			if ctx.Err() != nil {
				slog.Info("client disconnected during generation", "ship", ship.Name)
				return
			}
			slog.Error("generation stream failed", "error", err)
			// The 200 status is already sent; breaking the connection is
			// the only way to tell the client the text is incomplete.
			panic(http.ErrAbortHandler)
		}
		if text == "" {
			continue
		}
		if _, err := io.WriteString(w, text); err != nil {
			slog.Info("client write failed during generation", "error", err)
			return
		}
		flusher.Flush()
	}
}
