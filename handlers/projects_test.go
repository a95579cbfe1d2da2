// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/danielhkuo/quickly-notes/db"
	"github.com/danielhkuo/quickly-notes/models"
	"github.com/danielhkuo/quickly-notes/services"
	"github.com/danielhkuo/quickly-notes/testutil"
)

// testDB keeps the connection next to the handler under test
type testDB struct {
	conn *db.DB
}

func newProjectHandler(t *testing.T) (*ProjectHandler, *testDB) {
	t.Helper()
	conn := testutil.SetupTestDB(t)
	return NewProjectHandler(services.NewProjectService(conn)), &testDB{conn: conn}
}

func TestCreateProject(t *testing.T) {
	h, _ := newProjectHandler(t)

	testCases := []struct {
		name           string
		body           string
		expectedStatus int
	}{
		{"valid project", `{"name":"P1"}`, http.StatusCreated},
		{"duplicate names allowed", `{"name":"P1"}`, http.StatusCreated},
		{"blank name", `{"name":"  "}`, http.StatusBadRequest},
		{"missing name", `{}`, http.StatusBadRequest},
		{"invalid JSON", `{"name":`, http.StatusBadRequest},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("POST", "/projects", bytes.NewReader([]byte(tc.body)))
			req.Header.Set("Content-Type", "application/json")
			w := httptest.NewRecorder()

			h.Create(w, req)

			testutil.AssertStatus(t, w, tc.expectedStatus)
		})
	}
}

func TestListProjects(t *testing.T) {
	h, tdb := newProjectHandler(t)

	first := testutil.CreateTestProject(t, tdb.conn, "B")
	second := testutil.CreateTestProject(t, tdb.conn, "A")

	req := httptest.NewRequest("GET", "/projects", nil)
	w := httptest.NewRecorder()

	h.List(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)

	var projects []models.Project
	testutil.AssertJSON(t, w, &projects)

	// Ordered by id, not name
	expected := []models.Project{{ID: first, Name: "B"}, {ID: second, Name: "A"}}
	if len(projects) != len(expected) {
		t.Fatalf("Expected %d projects, got %d", len(expected), len(projects))
	}
	for i := range expected {
		if projects[i] != expected[i] {
			t.Errorf("Position %d: expected %+v, got %+v", i, expected[i], projects[i])
		}
	}
}

func TestGetUpdateDeleteProject(t *testing.T) {
	h, tdb := newProjectHandler(t)
	projectID := testutil.CreateTestProject(t, tdb.conn, "P1")
	id := strconv.FormatInt(projectID, 10)

	t.Run("get", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/projects/"+id, nil)
		req.SetPathValue("id", id)
		w := httptest.NewRecorder()

		h.Get(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var p models.Project
		testutil.AssertJSON(t, w, &p)
		if p.Name != "P1" {
			t.Errorf("Expected P1, got %s", p.Name)
		}
	})

	t.Run("rename", func(t *testing.T) {
		body, _ := json.Marshal(map[string]string{"name": "Work"})
		req := httptest.NewRequest("PUT", "/projects/"+id, bytes.NewReader(body))
		req.SetPathValue("id", id)
		w := httptest.NewRecorder()

		h.Update(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var p models.Project
		testutil.AssertJSON(t, w, &p)
		if p.Name != "Work" {
			t.Errorf("Expected Work, got %s", p.Name)
		}
	})

	t.Run("delete", func(t *testing.T) {
		req := httptest.NewRequest("DELETE", "/projects/"+id, nil)
		req.SetPathValue("id", id)
		w := httptest.NewRecorder()

		h.Delete(w, req)

		testutil.AssertStatus(t, w, http.StatusNoContent)
	})

	t.Run("get after delete", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/projects/"+id, nil)
		req.SetPathValue("id", id)
		w := httptest.NewRecorder()

		h.Get(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/projects/abc", nil)
		req.SetPathValue("id", "abc")
		w := httptest.NewRecorder()

		h.Get(w, req)

		testutil.AssertStatus(t, w, http.StatusBadRequest)
	})

	t.Run("non-positive id is not found", func(t *testing.T) {
		for _, raw := range []string{"0", "-1"} {
			req := httptest.NewRequest("DELETE", "/projects/"+raw, nil)
			req.SetPathValue("id", raw)
			w := httptest.NewRecorder()

			h.Delete(w, req)

			testutil.AssertStatus(t, w, http.StatusNotFound)
		}
	})
}
