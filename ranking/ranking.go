// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package ranking

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/danielhkuo/idea-board/models"
	"github.com/danielhkuo/idea-board/store"
)

// Tiers
const (
	TierPrivileged = 0
	TierStandard   = 1
)

// TierTable maps a role to its priority tier. Lower tiers rank first.
type TierTable map[models.Role]int

// DefaultTiers ranks sergeant, expert and activist ahead of citizen
func DefaultTiers() TierTable {
	t, _ := NewTierTable([]models.Role{models.RoleSergeant, models.RoleExpert, models.RoleActivist})
	return t
}

// NewTierTable puts the given roles in the privileged tier and every other
// known role in the standard tier
func NewTierTable(privileged []models.Role) (TierTable, error) {
	t := make(TierTable, len(models.AllRoles))
	for _, r := range models.AllRoles {
		t[r] = TierStandard
	}
	for _, r := range privileged {
		if !r.Valid() {
			return nil, fmt.Errorf("unknown role %q", r)
		}
		t[r] = TierPrivileged
	}
	return t, nil
}

// Tier returns the tier for a role. Roles missing from the table rank last.
func (t TierTable) Tier(r models.Role) int {
	if tier, ok := t[r]; ok {
		return tier
	}
	return TierStandard + 1
}

// Privileged lists the roles in the privileged tier, in AllRoles order
func (t TierTable) Privileged() []models.Role {
	var roles []models.Role
	for _, r := range models.AllRoles {
		if t.Tier(r) == TierPrivileged {
			roles = append(roles, r)
		}
	}
	return roles
}

func (t TierTable) String() string {
	var parts []string
	for _, r := range t.Privileged() {
		parts = append(parts, string(r))
	}
	return strings.Join(parts, ",")
}

// IdeaStore is the part of the record store the engine needs
type IdeaStore interface {
	ListIdeasJoined(ctx context.Context) ([]models.IdeaWithAuthor, error)
	IncrementVotes(ctx context.Context, ideaID string) error
}

// Engine orders ideas by tier and votes and records votes
type Engine struct {
	ideas IdeaStore
	tiers TierTable
}

func New(ideas IdeaStore, tiers TierTable) *Engine {
	if tiers == nil {
		tiers = DefaultTiers()
	}
	return &Engine{ideas: ideas, tiers: tiers}
}

// Tiers returns the table the engine ranks with
func (e *Engine) Tiers() TierTable {
	return e.tiers
}

// RankedIdeas returns every idea, privileged tier first, then by
// descending vote count. Ties keep retrieval order.
func (e *Engine) RankedIdeas(ctx context.Context) ([]models.RankedIdea, error) {
	ideas, err := e.ideas.ListIdeasJoined(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list ideas: %w", err)
	}
	return Sort(ideas, e.tiers), nil
}

// Vote adds one vote to an idea. Callers re-fetch RankedIdeas to see the
// new order.
func (e *Engine) Vote(ctx context.Context, ideaID string) error {
	if strings.TrimSpace(ideaID) == "" {
		return &store.ValidationError{Field: "idea_id", Reason: "is required"}
	}
	return e.ideas.IncrementVotes(ctx, ideaID)
}

// Sort stable-sorts ideas by (tier asc, vote count desc) and assigns ranks.
// The input slice is not modified.
func Sort(ideas []models.IdeaWithAuthor, tiers TierTable) []models.RankedIdea {
	ranked := make([]models.RankedIdea, len(ideas))
	for i, idea := range ideas {
		ranked[i] = models.RankedIdea{
			IdeaWithAuthor: idea,
			Tier:           tiers.Tier(idea.AuthorRole),
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]

		// 1. Lower tier first
		if a.Tier != b.Tier {
			return a.Tier < b.Tier
		}

		// 2. More votes first
		return a.VoteCount > b.VoteCount
	})

	for i := range ranked {
		ranked[i].Rank = i + 1 // 1-indexed ranking
	}

	return ranked
}
