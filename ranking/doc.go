// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package ranking orders ideas and records votes.

# Tiers

Every role maps to a tier through a TierTable. Privileged roles are tier 0,
the rest tier 1:

	tiers, err := ranking.NewTierTable(cfg.PrivilegedRoles)

DefaultTiers puts sergeant, expert and activist ahead of citizen.

# Ordering

RankedIdeas lists ideas from the store and sorts them lexicographically:

 1. Lower tier first (tier dominates vote count)
 2. More votes first
 3. Retrieval order (stable sort)

Each result carries its 1-indexed rank and its tier. Sort exposes the
same ordering for callers that already hold the ideas.

# Voting

	err := engine.Vote(ctx, ideaID)

Vote increments the stored count by one and returns nothing else; fetch
RankedIdeas again to observe the new order.
*/
package ranking
