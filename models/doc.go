// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines request, response, and domain types for the API.

# Request Types

Types for parsing incoming JSON:

  - CreateProjectRequest: name
  - UpdateProjectRequest: name (optional)
  - CreateNoteRequest: title, content, projectId
  - NotePatch: title, content, projectId (all optional)

ListNotesParams carries the parsed query string of GET /notes.

# Domain Types

  - Project: id, name
  - Note: id, title, content, projectId

# Errors

Every failure is returned as ErrorResponse:

	{"error": "Bad Request", "message": "Invalid projectId"}

# Constants

	DefaultNoteLimit     = 10
	MaxNoteLimit         = 100
	IdempotencyKeyHeader = "Idempotency-Key"
*/
package models
