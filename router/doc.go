// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Quickly Notes API.

# Route Registration

NewRouter returns the full handler: a ServeMux with every endpoint,
wrapped in the optional rate limiter and CORS:

	handler := router.NewRouter(conn, cfg)

Each API route is wrapped with WithLogging, WithMetrics and WithETag.

# Endpoints

Health and metrics:

	GET /health
	GET /metrics

Projects:

	GET    /projects            - List projects
	POST   /projects            - Create project
	GET    /projects/{id}       - Get project
	PUT    /projects/{id}       - Rename project (PATCH also accepted)
	DELETE /projects/{id}       - Delete project and its notes
	GET    /projects/{id}/notes - List the project's notes

Notes:

	GET    /notes?projectId=    - List notes (cursor, limit, search)
	POST   /notes               - Create note (Idempotency-Key required)
	GET    /notes/{id}          - Get note
	PUT    /notes/{id}          - Partial update (PATCH also accepted)
	DELETE /notes/{id}          - Delete note
*/
package router
