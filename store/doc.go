// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the record store for submitters and ideas.

# Construction

The store wraps a handle opened by the caller:

	conn, _ := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	s := store.New(conn)

# Operations

	RegisterSubmitter(ctx, name, role) → submitter id
	ListSubmitters(ctx)                → all submitters, insertion order
	GetSubmitter(ctx, id)
	SubmitIdea(ctx, title, description, authorID) → idea id
	ListIdeasJoined(ctx)               → ideas with author name and role
	GetIdea(ctx, id)
	IncrementVotes(ctx, ideaID)

Writes run in a single transaction or a single statement. IncrementVotes
adds one in SQL (vote_count = vote_count + 1), so concurrent votes on the
same idea are never lost.

IDs are UUIDv7 strings. They sort by creation time, which gives list
operations their insertion order.

# Errors

Failures are returned as typed errors:

	var nf *store.NotFoundError
	if errors.As(err, &nf) { ... }

	errors.Is(err, store.ErrValidation)
	errors.Is(err, store.ErrNotFound)

Anything else is a wrapped database error.
*/
package store
