package models

import (
	"strings"
	"time"
)

// Role is a submitter's self-declared role
type Role string

// Role constants
const (
	RoleCitizen  Role = "citizen"
	RoleSergeant Role = "sergeant"
	RoleExpert   Role = "expert"
	RoleActivist Role = "activist"
)

// AllRoles lists every accepted role in display order
var AllRoles = []Role{RoleCitizen, RoleSergeant, RoleExpert, RoleActivist}

// Valid reports whether r is one of the accepted roles
func (r Role) Valid() bool {
	for _, known := range AllRoles {
		if r == known {
			return true
		}
	}
	return false
}

// ParseRole normalizes case and surrounding whitespace
func ParseRole(s string) Role {
	return Role(strings.ToLower(strings.TrimSpace(s)))
}

// Request types

type RegisterSubmitterRequest struct {
	Name string `json:"name"`
	Role string `json:"role"`
}

type SubmitIdeaRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	AuthorID    string `json:"author_id"`
}

// Response types

type RegisterSubmitterResponse struct {
	SubmitterID string `json:"submitter_id"`
}

type SubmitIdeaResponse struct {
	IdeaID string `json:"idea_id"`
}

type VoteResponse struct {
	IdeaID  string           `json:"idea_id"`
	Ranking []RankedIdeaView `json:"ranking"`
}

type RoleInfo struct {
	Role       Role `json:"role"`
	Tier       int  `json:"tier"`
	Privileged bool `json:"privileged"`
}

// Domain types

type Submitter struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Role      Role      `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

type Idea struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	AuthorID    string    `json:"author_id"`
	CreatedAt   time.Time `json:"created_at"`
	VoteCount   int64     `json:"vote_count"`
}

// IdeaWithAuthor is an idea joined with its author's name and role
type IdeaWithAuthor struct {
	Idea
	AuthorName string `json:"author_name"`
	AuthorRole Role   `json:"author_role"`
}

// RankedIdea is an idea placed in the ranked listing
type RankedIdea struct {
	IdeaWithAuthor
	Rank int `json:"rank"` // 1-indexed
	Tier int `json:"tier"`
}

// View types

type IdeaView struct {
	IdeaWithAuthor
	SubmittedOn  string `json:"submitted_on"`
	SubmittedAgo string `json:"submitted_ago"`
}

type RankedIdeaView struct {
	IdeaView
	Rank int `json:"rank"`
	Tier int `json:"tier"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
