// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the idea board API server.

The idea board lets people register with a role, submit ideas and vote on
them. Ideas from sergeants, experts and activists rank ahead of ideas from
citizens; inside each group the most-voted idea comes first.

# Starting the Server

The server reads flags, environment variables, and an optional .env file:

	DATABASE_URL=ideas.db go run .

Or with flags:

	go run . -p 3318 -t postgres -d "postgres://..."

# Configuration

Required settings:

  - DATABASE_URL (-d): sqlite file path or PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - DATABASE_TYPE (-t): sqlite or postgres (default: sqlite)
  - PRIVILEGED_ROLES (-privileged): roles ranked first (default: sergeant,expert,activist)
  - LOG_LEVEL (-log-level): debug, info, warn, error (default: info)

Logs are text on a terminal and JSON otherwise.

# Architecture

The storage handle is opened once here and injected downward:

  - store: Record store for submitters and ideas
  - ranking: Tier table, ranked listing and voting
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: CORS, logging, JSON helpers
  - models: Domain, request and response types
  - db: Driver selection and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
