// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/danielhkuo/quickly-notes/metrics"
	"github.com/danielhkuo/quickly-notes/middleware"
	"github.com/danielhkuo/quickly-notes/models"
	"github.com/danielhkuo/quickly-notes/services"
)

type NoteHandler struct {
	notes   *services.NoteService
	metrics *metrics.Metrics
}

func NewNoteHandler(notes *services.NoteService, m *metrics.Metrics) *NoteHandler {
	return &NoteHandler{notes: notes, metrics: m}
}

// List handles GET /notes?projectId=&cursor=&limit=&search=
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	projectID, err := strconv.ParseInt(r.URL.Query().Get("projectId"), 10, 64)
	if err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid projectId")
		return
	}

	h.list(w, r, projectID)
}

// ListForProject handles GET /projects/{id}/notes, same query parameters
// as List without projectId
func (h *NoteHandler) ListForProject(w http.ResponseWriter, r *http.Request) {
	projectID, ok := parseID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid projectId")
		return
	}

	h.list(w, r, projectID)
}

func (h *NoteHandler) list(w http.ResponseWriter, r *http.Request, projectID int64) {
	q := r.URL.Query()
	params := models.ListNotesParams{
		ProjectID: projectID,
		Search:    q.Get("search"),
	}

	if raw := q.Get("cursor"); raw != "" {
		cursor, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid cursor")
			return
		}
		params.Cursor = cursor
	}

	if raw := q.Get("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil {
			middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid limit")
			return
		}
		params.Limit = limit
	}

	notes, err := h.notes.List(r.Context(), params)
	if err != nil {
		writeServiceError(w, err, "failed to list notes")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, notes)
}

// Create handles POST /notes. The Idempotency-Key header is required.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	key := r.Header.Get(models.IdempotencyKeyHeader)
	if key == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Idempotency-Key header required")
		return
	}

	var req models.CreateNoteRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	note, err := h.notes.Create(r.Context(), req, key)
	if err != nil {
		if services.KindOf(err) == services.KindConflict {
			slog.Info("duplicate note rejected", "project_id", req.ProjectID, "idempotency_key", key)
			h.metrics.RecordNoteConflict()
		}
		writeServiceError(w, err, "failed to create note")
		return
	}

	slog.Info("note created", "note_id", note.ID, "project_id", note.ProjectID)
	h.metrics.RecordNoteCreated()

	middleware.JSONResponse(w, http.StatusCreated, note)
}

// Get handles GET /notes/{id}
func (h *NoteHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid note ID")
		return
	}

	note, err := h.notes.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "failed to query note")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, note)
}

// Update handles PUT and PATCH /notes/{id}. Absent or null fields keep
// their stored values.
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid note ID")
		return
	}

	var patch models.NotePatch
	if err := middleware.ParseJSONBody(r, &patch); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	note, err := h.notes.Update(r.Context(), id, patch)
	if err != nil {
		writeServiceError(w, err, "failed to update note")
		return
	}

	slog.Info("note updated", "note_id", id)

	middleware.JSONResponse(w, http.StatusOK, note)
}

// Delete handles DELETE /notes/{id}
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid note ID")
		return
	}

	if err := h.notes.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, "failed to delete note")
		return
	}

	slog.Info("note deleted", "note_id", id)

	w.WriteHeader(http.StatusNoContent)
}
