// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - RegisterSubmitterRequest: name, role
  - SubmitIdeaRequest: title, description, author_id

# Response Types

Types for JSON responses:

  - RegisterSubmitterResponse: submitter_id
  - SubmitIdeaResponse: idea_id
  - VoteResponse: idea_id, ranking
  - RoleInfo: role, tier, privileged
  - ErrorResponse: error, message

# Domain Types

  - Submitter: registered participant with a name and role
  - Idea: titled proposal with a vote count
  - IdeaWithAuthor: idea joined with author name and role
  - RankedIdea: idea with its rank and tier in the ranked listing

# View Types

IdeaView and RankedIdeaView add display fields (submitted_on,
submitted_ago) on top of the domain types.

# Constants

Roles:

	RoleCitizen  = "citizen"
	RoleSergeant = "sergeant"
	RoleExpert   = "expert"
	RoleActivist = "activist"
*/
package models
