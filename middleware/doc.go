// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package middleware provides HTTP middleware and helper functions.

# Request Logging

Wrap handlers with request logging:

	mux.HandleFunc("GET /health", middleware.WithLogging(handler))

Logs request start (method, path, remote) and completion (status, duration_ms).

# ETags

WithETag buffers a handler's response and sets ETag to the quoted base64
SHA-256 of the exact body bytes. GET and HEAD requests carrying a matching
If-None-Match get 304 Not Modified:

	mux.HandleFunc("GET /projects", middleware.WithETag(m.RecordNotModified)(h.List))

Error responses and empty bodies (204) carry no ETag.

# Metrics

WithMetrics records request count and latency per route pattern:

	mux.HandleFunc("GET /notes", middleware.WithMetrics(m)(h.List))

# CORS Middleware

Enable cross-origin requests from the web client:

	handler := middleware.CORS(cfg.AllowedOrigin)(mux)

Allows methods GET, HEAD, POST, PUT, PATCH, DELETE, OPTIONS with headers
Content-Type, Idempotency-Key, If-None-Match, and exposes ETag. Other
origins get no CORS headers.

# Rate Limiting

Optional per-IP token bucket, answering 429 when exhausted:

	rl := middleware.NewRateLimiter(cfg.RateLimit, cfg.RateBurst, cfg.TrustProxy, m.RecordRateLimited)
	handler = rl.Middleware(handler)

# JSON Helpers

Write JSON responses:

	middleware.JSONResponse(w, http.StatusOK, data)
	middleware.ErrorResponse(w, http.StatusBadRequest, "message")

Parse JSON request bodies:

	var req models.CreateNoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

# Client IP Extraction

Get the client IP from the connection, or from X-Forwarded-For and
X-Real-IP when a trusted proxy sets them:

	ip := middleware.GetClientIP(r, cfg.TrustProxy)

Used as the rate limiter key.
*/
package middleware
