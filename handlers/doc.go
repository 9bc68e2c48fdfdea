// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the idea board API.

# Handler Types

  - SubmitterHandler: Registration, listing and the role catalogue
  - IdeaHandler: Idea submission, listing, ranking and voting

Handlers are created via constructor functions that accept the record
store and ranking engine:

	submitters := handlers.NewSubmitterHandler(s, engine.Tiers())
	ideas := handlers.NewIdeaHandler(s, engine)

# Submitters

	POST /submitters      → Register (name, role)
	GET  /submitters      → List
	GET  /submitters/{id} → Get
	GET  /roles           → Roles

# Ideas

	POST /ideas            → Submit (title, description, author_id)
	GET  /ideas            → List (submission order)
	GET  /ideas/ranked     → Ranked
	GET  /ideas/{id}       → Get
	POST /ideas/{id}/votes → Vote

Vote answers with the refreshed ranking so the client can redraw from one
response.

# Errors

Record store errors map to status codes:

  - ValidationError → 400
  - NotFoundError   → 404
  - anything else   → 500 (logged)
*/
package handlers
