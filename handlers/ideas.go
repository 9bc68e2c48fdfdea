// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"time"

	"github.com/danielhkuo/idea-board/middleware"
	"github.com/danielhkuo/idea-board/models"
	"github.com/danielhkuo/idea-board/ranking"
	"github.com/danielhkuo/idea-board/store"
)

type IdeaHandler struct {
	store  *store.Store
	engine *ranking.Engine
	now    func() time.Time
}

func NewIdeaHandler(s *store.Store, e *ranking.Engine) *IdeaHandler {
	return &IdeaHandler{store: s, engine: e, now: time.Now}
}

// Submit handles POST /ideas
func (h *IdeaHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req models.SubmitIdeaRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	id, err := h.store.SubmitIdea(r.Context(), req.Title, req.Description, req.AuthorID)
	if err != nil {
		writeStoreError(w, err, "submit idea")
		return
	}

	middleware.JSONResponse(w, http.StatusCreated, models.SubmitIdeaResponse{
		IdeaID: id,
	})
}

// List handles GET /ideas
// Returns ideas in submission order with their authors
func (h *IdeaHandler) List(w http.ResponseWriter, r *http.Request) {
	ideas, err := h.store.ListIdeasJoined(r.Context())
	if err != nil {
		writeStoreError(w, err, "list ideas")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, toIdeaViews(ideas, h.now()))
}

// Ranked handles GET /ideas/ranked
func (h *IdeaHandler) Ranked(w http.ResponseWriter, r *http.Request) {
	ranked, err := h.engine.RankedIdeas(r.Context())
	if err != nil {
		writeStoreError(w, err, "rank ideas")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, toRankedViews(ranked, h.now()))
}

// Get handles GET /ideas/{id}
func (h *IdeaHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "idea_id is required")
		return
	}

	idea, err := h.store.GetIdea(r.Context(), id)
	if err != nil {
		writeStoreError(w, err, "get idea")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, toIdeaView(idea, h.now()))
}

// Vote handles POST /ideas/{id}/votes
// Records one vote and returns the refreshed ranking
func (h *IdeaHandler) Vote(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.engine.Vote(r.Context(), id); err != nil {
		writeStoreError(w, err, "record vote")
		return
	}

	ranked, err := h.engine.RankedIdeas(r.Context())
	if err != nil {
		writeStoreError(w, err, "rank ideas")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.VoteResponse{
		IdeaID:  id,
		Ranking: toRankedViews(ranked, h.now()),
	})
}
