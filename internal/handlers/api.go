// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"cruisecms/internal/ai"
	"cruisecms/internal/cache"
	"cruisecms/internal/models"
	"cruisecms/internal/store"
)

// API groups the operator-facing JSON endpoints. The page cache may be
// nil, in which case publish-state changes skip invalidation.
type API struct {
	ships       *store.ShipStore
	reviews     *store.ReviewStore
	images      *store.ImageStore
	topics      *store.TopicStore
	styleGuides *store.StyleGuideStore
	articles    *store.ArticleStore
	provider    ai.Provider
	pageCache   *cache.PageCache
}

// NewAPI creates a new API handler group.
func NewAPI(
	ships *store.ShipStore,
	reviews *store.ReviewStore,
	images *store.ImageStore,
	topics *store.TopicStore,
	styleGuides *store.StyleGuideStore,
	articles *store.ArticleStore,
	provider ai.Provider,
	pageCache *cache.PageCache,
) *API {
	return &API{
		ships:       ships,
		reviews:     reviews,
		images:      images,
		topics:      topics,
		styleGuides: styleGuides,
		articles:    articles,
		provider:    provider,
		pageCache:   pageCache,
	}
}

// ListShips returns all ships ordered by name.
func (a *API) ListShips(w http.ResponseWriter, r *http.Request) {
	ships, err := a.ships.List()
	if err != nil {
		slog.Error("list ships failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load ships")
		return
	}
	if ships == nil {
		ships = []models.Ship{}
	}
	writeJSON(w, http.StatusOK, ships)
}

// ListShipImages returns the images attached to a ship, newest first.
// The operator picks a featured image for an article from this list.
func (a *API) ListShipImages(w http.ResponseWriter, r *http.Request) {
	shipID, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid ship id")
		return
	}

	ship, err := a.ships.FindByID(shipID)
	if err != nil {
		slog.Error("find ship failed", "error", err, "ship_id", shipID)
		writeError(w, http.StatusInternalServerError, "failed to load ship")
		return
	}
	if ship == nil {
		writeError(w, http.StatusNotFound, "ship not found")
		return
	}

	images, err := a.images.ListByShip(shipID)
	if err != nil {
		slog.Error("list ship images failed", "error", err, "ship_id", shipID)
		writeError(w, http.StatusInternalServerError, "failed to load images")
		return
	}
	if images == nil {
		images = []models.Image{}
	}
	writeJSON(w, http.StatusOK, images)
}

// ListTopics returns all topics ordered by name.
func (a *API) ListTopics(w http.ResponseWriter, r *http.Request) {
	topics, err := a.topics.List()
	if err != nil {
		slog.Error("list topics failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load topics")
		return
	}
	if topics == nil {
		topics = []models.Topic{}
	}
	writeJSON(w, http.StatusOK, topics)
}

// ListStyleGuides returns all style guides ordered by name.
func (a *API) ListStyleGuides(w http.ResponseWriter, r *http.Request) {
	guides, err := a.styleGuides.List()
	if err != nil {
		slog.Error("list style guides failed", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to load style guides")
		return
	}
	if guides == nil {
		guides = []models.StyleGuide{}
	}
	writeJSON(w, http.StatusOK, guides)
}
