// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notebook

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/quickly-notes/models"
)

func fixedState(t *testing.T) *State {
	t.Helper()
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	s := NewState()
	s.now = func() time.Time { return now }
	s.ReplaceProjects([]models.Project{{ID: 1, Name: "P1"}, {ID: 2, Name: "P2"}})
	s.ReplaceNotes(1, []models.Note{
		{ID: 10, Title: "a", Content: "A", ProjectID: 1},
		{ID: 11, Title: "b", Content: "B", ProjectID: 1},
		{ID: 12, Title: "c", Content: "C", ProjectID: 1},
	})
	return s
}

func noteIDs(s *State) []int64 {
	ids := make([]int64, len(s.Notes))
	for i, n := range s.Notes {
		ids[i] = n.ID
	}
	return ids
}

func TestCreate_ConfirmAndRollback(t *testing.T) {
	s := fixedState(t)

	op := s.BeginCreate(models.CreateNoteRequest{Title: "new", Content: "N", ProjectID: 1})
	require.Less(t, op.ID, int64(0), "placeholder ids are negative")
	assert.Equal(t, []int64{op.ID, 10, 11, 12}, noteIDs(s))

	t.Run("confirm replaces placeholder in place", func(t *testing.T) {
		s := fixedState(t)
		op := s.BeginCreate(models.CreateNoteRequest{Title: "new", Content: "N", ProjectID: 1})
		stored := models.Note{ID: 13, Title: "new", Content: "N", ProjectID: 1}

		s.ConfirmCreate(op, stored)

		assert.Equal(t, []int64{13, 10, 11, 12}, noteIDs(s))
		assert.Equal(t, stored, s.Notes[0])
	})

	t.Run("rollback removes placeholder", func(t *testing.T) {
		s := fixedState(t)
		op := s.BeginCreate(models.CreateNoteRequest{Title: "new", Content: "N", ProjectID: 1})

		s.Rollback(op)

		assert.Equal(t, []int64{10, 11, 12}, noteIDs(s))
	})

	t.Run("placeholders in the same instant stay distinct", func(t *testing.T) {
		s := fixedState(t)
		a := s.BeginCreate(models.CreateNoteRequest{Title: "x"})
		b := s.BeginCreate(models.CreateNoteRequest{Title: "y"})

		assert.NotEqual(t, a.ID, b.ID)
		s.Rollback(a)
		assert.Equal(t, []int64{b.ID, 10, 11, 12}, noteIDs(s))
	})
}

func TestUpdate_ConfirmAndRollback(t *testing.T) {
	t.Run("applied immediately and restored on rollback", func(t *testing.T) {
		s := fixedState(t)

		op, ok := s.BeginUpdate(11, "b2", "B2")
		require.True(t, ok)
		n, _ := s.Note(11)
		assert.Equal(t, "b2", n.Title)

		s.Rollback(op)

		n, _ = s.Note(11)
		assert.Equal(t, models.Note{ID: 11, Title: "b", Content: "B", ProjectID: 1}, n)
	})

	t.Run("confirm takes server row", func(t *testing.T) {
		s := fixedState(t)
		op, _ := s.BeginUpdate(11, "b2", "B2")

		s.ConfirmUpdate(op, models.Note{ID: 11, Title: "b2", Content: "B2 (server)", ProjectID: 1})

		n, _ := s.Note(11)
		assert.Equal(t, "B2 (server)", n.Content)
		assert.Equal(t, []int64{10, 11, 12}, noteIDs(s))
	})

	t.Run("moved note leaves the list", func(t *testing.T) {
		s := fixedState(t)
		op, _ := s.BeginUpdate(11, "b", "B")

		s.ConfirmUpdate(op, models.Note{ID: 11, Title: "b", Content: "B", ProjectID: 2})

		assert.Equal(t, []int64{10, 12}, noteIDs(s))
	})

	t.Run("unknown note", func(t *testing.T) {
		s := fixedState(t)
		_, ok := s.BeginUpdate(99, "x", "y")
		assert.False(t, ok)
	})
}

func TestDelete_ConfirmAndRollback(t *testing.T) {
	s := fixedState(t)

	op, ok := s.BeginDelete(11)
	require.True(t, ok)
	assert.Equal(t, []int64{10, 12}, noteIDs(s))

	s.Rollback(op)
	assert.Equal(t, []int64{10, 11, 12}, noteIDs(s), "restored at its old position")

	// Rolling back twice does not duplicate
	s.Rollback(op)
	assert.Equal(t, []int64{10, 11, 12}, noteIDs(s))

	op, _ = s.BeginDelete(12)
	s.ConfirmDelete(op)
	assert.Equal(t, []int64{10, 11}, noteIDs(s))

	// Position is clamped when the list shrank meanwhile
	op, _ = s.BeginDelete(11)
	other, _ := s.BeginDelete(10)
	_ = other
	s.Rollback(op)
	assert.Equal(t, []int64{11}, noteIDs(s))
}

func TestProjects(t *testing.T) {
	s := fixedState(t)

	s.AddProject(models.Project{ID: 3, Name: "P3"})
	s.RenameProject(models.Project{ID: 3, Name: "Work"})
	p, ok := s.Project(3)
	require.True(t, ok)
	assert.Equal(t, "Work", p.Name)

	s.RemoveProject(2)
	assert.Len(t, s.Projects, 2)
	assert.Len(t, s.Notes, 3, "notes of the selected project stay")

	s.RemoveProject(1)
	assert.Zero(t, s.SelectedProject)
	assert.Empty(t, s.Notes)
}

func TestReplaceNotesRecordsSync(t *testing.T) {
	s := fixedState(t)
	assert.Equal(t, time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC), s.LastSynced)

	notes := []models.Note{{ID: 1}}
	s.ReplaceNotes(2, notes)
	notes[0].ID = 99
	assert.Equal(t, int64(1), s.Notes[0].ID, "state keeps its own copy")
	assert.Equal(t, int64(2), s.SelectedProject)
}

func TestValidateNote(t *testing.T) {
	testCases := []struct {
		name    string
		title   string
		content string
		want    FormErrors
	}{
		{"valid", "T", "C", FormErrors{}},
		{"blank title", "  ", "C", FormErrors{Title: "Title is required"}},
		{"blank content", "T", "\n", FormErrors{Content: "Content is required"}},
		{"both", "", "", FormErrors{Title: "Title is required", Content: "Content is required"}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := ValidateNote(tc.title, tc.content)
			assert.Equal(t, tc.want, got)
			assert.Equal(t, tc.want == FormErrors{}, got.OK())
		})
	}
}
