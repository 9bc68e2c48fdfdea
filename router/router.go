// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/idea-board/handlers"
	"github.com/danielhkuo/idea-board/middleware"
	"github.com/danielhkuo/idea-board/ranking"
	"github.com/danielhkuo/idea-board/store"
)

func NewRouter(s *store.Store, engine *ranking.Engine) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	submitterHandler := handlers.NewSubmitterHandler(s, engine.Tiers())
	ideaHandler := handlers.NewIdeaHandler(s, engine)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Submitters
	mux.HandleFunc("POST /submitters", middleware.WithLogging(submitterHandler.Register))
	mux.HandleFunc("GET /submitters", middleware.WithLogging(submitterHandler.List))
	mux.HandleFunc("GET /submitters/{id}", middleware.WithLogging(submitterHandler.Get))
	mux.HandleFunc("GET /roles", middleware.WithLogging(submitterHandler.Roles))

	// Ideas
	mux.HandleFunc("POST /ideas", middleware.WithLogging(ideaHandler.Submit))
	mux.HandleFunc("GET /ideas", middleware.WithLogging(ideaHandler.List))
	mux.HandleFunc("GET /ideas/ranked", middleware.WithLogging(ideaHandler.Ranked))
	mux.HandleFunc("GET /ideas/{id}", middleware.WithLogging(ideaHandler.Get))

	// Voting
	mux.HandleFunc("POST /ideas/{id}/votes", middleware.WithLogging(ideaHandler.Vote))

	// Root endpoint
	mux.HandleFunc("GET /{$}", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("idea-board API v1"))
	})

	return mux
}
