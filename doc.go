// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Quickly Notes API server.

Quickly Notes stores projects and the notes that belong to them, and
serves them over a small JSON REST API. The matching terminal client
lives in cmd/notesctl.

# Starting the Server

The server requires environment variables or CLI flags for configuration:

	DATABASE_URL=postgres://... go run .

Or with flags:

	go run . -p 3000 -d "postgres://..."

Local development without PostgreSQL:

	go run . -t sqlite -d "file:notes.db"

A .env file in the working directory is loaded when present.

# Configuration

Required settings:

  - DATABASE_URL (-d): connection string

Optional settings:

  - DATABASE_TYPE (-t): postgres (lib/pq), pgx or sqlite (default: postgres)
  - PORT (-p): Server port (default: 3000)
  - CLIENT_URL (-origin): allowed CORS origin (default: http://localhost:5173)
  - RATE_LIMIT (-rate), RATE_BURST (-burst): per-client request rate, 0 disables
  - TRUST_PROXY (-trust-proxy): key clients by X-Forwarded-For, only behind a reverse proxy

# Architecture

  - services: business rules for projects and notes
  - handlers: HTTP request handlers
  - router: Route definitions using Go 1.22+ routing
  - middleware: ETag, CORS, rate limiting, metrics, logging, JSON helpers
  - metrics: Prometheus collectors
  - etag: response hashing and If-None-Match matching
  - models: Request/response types
  - db: Connection opening and schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
