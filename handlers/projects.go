// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"log/slog"
	"net/http"

	"github.com/danielhkuo/quickly-notes/middleware"
	"github.com/danielhkuo/quickly-notes/models"
	"github.com/danielhkuo/quickly-notes/services"
)

type ProjectHandler struct {
	projects *services.ProjectService
}

func NewProjectHandler(projects *services.ProjectService) *ProjectHandler {
	return &ProjectHandler{projects: projects}
}

// List handles GET /projects
func (h *ProjectHandler) List(w http.ResponseWriter, r *http.Request) {
	projects, err := h.projects.List(r.Context())
	if err != nil {
		writeServiceError(w, err, "failed to list projects")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, projects)
}

// Create handles POST /projects
func (h *ProjectHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req models.CreateProjectRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	project, err := h.projects.Create(r.Context(), req.Name)
	if err != nil {
		writeServiceError(w, err, "failed to create project")
		return
	}

	slog.Info("project created", "project_id", project.ID)

	middleware.JSONResponse(w, http.StatusCreated, project)
}

// Get handles GET /projects/{id}
func (h *ProjectHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	project, err := h.projects.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, err, "failed to query project")
		return
	}

	middleware.JSONResponse(w, http.StatusOK, project)
}

// Update handles PUT and PATCH /projects/{id}
func (h *ProjectHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	var req models.UpdateProjectRequest
	if err := middleware.ParseJSONBody(r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	project, err := h.projects.Update(r.Context(), id, req)
	if err != nil {
		writeServiceError(w, err, "failed to update project")
		return
	}

	slog.Info("project updated", "project_id", id)

	middleware.JSONResponse(w, http.StatusOK, project)
}

// Delete handles DELETE /projects/{id}. Notes of the project go with it.
func (h *ProjectHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid project ID")
		return
	}

	if err := h.projects.Delete(r.Context(), id); err != nil {
		writeServiceError(w, err, "failed to delete project")
		return
	}

	slog.Info("project deleted", "project_id", id)

	w.WriteHeader(http.StatusNoContent)
}
