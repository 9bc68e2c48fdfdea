// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/idea-board/middleware"
	"github.com/danielhkuo/idea-board/models"
	"github.com/danielhkuo/idea-board/store"
)

// SubmittedOnLayout formats submitted_on in idea views
const SubmittedOnLayout = "2006-01-02 15:04:05"

func toIdeaView(idea models.IdeaWithAuthor, now time.Time) models.IdeaView {
	return models.IdeaView{
		IdeaWithAuthor: idea,
		SubmittedOn:    idea.CreatedAt.UTC().Format(SubmittedOnLayout),
		SubmittedAgo:   humanize.RelTime(idea.CreatedAt, now, "ago", "from now"),
	}
}

func toIdeaViews(ideas []models.IdeaWithAuthor, now time.Time) []models.IdeaView {
	views := make([]models.IdeaView, len(ideas))
	for i, idea := range ideas {
		views[i] = toIdeaView(idea, now)
	}
	return views
}

func toRankedViews(ranked []models.RankedIdea, now time.Time) []models.RankedIdeaView {
	views := make([]models.RankedIdeaView, len(ranked))
	for i, r := range ranked {
		views[i] = models.RankedIdeaView{
			IdeaView: toIdeaView(r.IdeaWithAuthor, now),
			Rank:     r.Rank,
			Tier:     r.Tier,
		}
	}
	return views
}

// writeStoreError maps record store errors to HTTP responses
func writeStoreError(w http.ResponseWriter, err error, action string) {
	var verr *store.ValidationError
	if errors.As(err, &verr) {
		middleware.ErrorResponse(w, http.StatusBadRequest, verr.Error())
		return
	}

	var nf *store.NotFoundError
	if errors.As(err, &nf) {
		middleware.ErrorResponse(w, http.StatusNotFound, nf.Error())
		return
	}

	slog.Error("failed to "+action, "error", err)
	middleware.ErrorResponse(w, http.StatusInternalServerError, "Failed to "+action)
}
