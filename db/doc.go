// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db opens database connections and creates the schema.

# Connecting

Open picks the driver from the configured database type:

	conn, err := db.Open(cfg.DatabaseType, cfg.DatabaseURL)

  - postgres: github.com/lib/pq
  - pgx: github.com/jackc/pgx/v5/stdlib
  - sqlite: modernc.org/sqlite (foreign keys enabled, single connection)

Queries are written with ? placeholders and passed through Rebind, which
emits $N placeholders for PostgreSQL:

	row := conn.QueryRowContext(ctx, conn.Rebind("SELECT name FROM project WHERE id = ?"), id)

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		log.Fatal(err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

  - project: id, name
  - note: id, title, content, project_id

# Relationships

	project 1──* note

note.project_id uses ON DELETE CASCADE, so deleting a project removes its
notes. There is deliberately no unique constraint on (project_id, title).
*/
package db
