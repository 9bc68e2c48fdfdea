// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the idea board API.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(s, engine)

# Endpoints

Health:

	GET /health

Submitters:

	POST /submitters      - Register submitter
	GET  /submitters      - List submitters
	GET  /submitters/{id} - Get submitter
	GET  /roles           - Roles and their tiers

Ideas:

	POST /ideas            - Submit idea
	GET  /ideas            - List ideas with authors
	GET  /ideas/ranked     - Ranked ideas
	GET  /ideas/{id}       - Get idea
	POST /ideas/{id}/votes - Vote, returns refreshed ranking

# Handler Initialization

The router creates handler instances with dependency injection:

	submitterHandler := handlers.NewSubmitterHandler(s, engine.Tiers())
	ideaHandler := handlers.NewIdeaHandler(s, engine)

The store and engine share the storage handle opened in main.
*/
package router
