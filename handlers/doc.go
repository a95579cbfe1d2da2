// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Quickly Notes API.

# Handler Types

Each handler wraps a service from package services:

  - ProjectHandler: project CRUD
  - NoteHandler: note listing, idempotent creation, partial update, delete

	projectHandler := handlers.NewProjectHandler(services.NewProjectService(conn))
	noteHandler := handlers.NewNoteHandler(services.NewNoteService(conn), metrics.NewMetrics())

Handlers parse path, query and body input, then map service errors to
status codes: BadRequest → 400, NotFound → 404, Conflict → 409. Anything
else is logged and answered with 500 "Database error".

# Listing Notes

	GET /notes?projectId=1&limit=10&search=todo&cursor=5

projectId is required. limit defaults to 10 and is capped at 100. cursor
selects the single note with that id.

# Creating Notes

	POST /notes
	Idempotency-Key: 1b4e28ba-2fa1-11d2-883f-0016d3cca427

The header is required. A note with the same title in the same project is
rejected with 409 Conflict.
*/
package handlers
