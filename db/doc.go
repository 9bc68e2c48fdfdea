// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens the storage handle and creates the schema.

# Opening

Open selects the driver from the database type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

postgres uses lib/pq. sqlite uses the pure-Go modernc driver; plain file
paths get foreign key enforcement and a 5s busy timeout, and the pool is
capped at one connection.

# Schema Creation

CreateSchema initializes all required tables for the given dialect:

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - submitter: registered participants and their role
  - idea: submitted ideas and their vote count

# Relationships

	submitter 1──* idea

Submitters are never deleted, so the foreign key has no cascade.

# Indexes

  - idea.author_id
*/
package db
