// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notebook

import (
	"time"

	"github.com/danielhkuo/quickly-notes/models"
)

type OpKind int

const (
	OpCreate OpKind = iota
	OpUpdate
	OpDelete
)

// PendingOp remembers what an optimistic change replaced so it can be
// confirmed or undone once the server answers
type PendingOp struct {
	Kind OpKind
	// ID is the note's id; for creates it is the temporary id until confirmed
	ID    int64
	prev  models.Note
	index int
}

// State is the client's view of the server. It is owned by one goroutine
// and changed only through its methods.
type State struct {
	Projects        []models.Project
	Notes           []models.Note // notes of SelectedProject, newest optimistic first
	SelectedProject int64
	LastSynced      time.Time

	now func() time.Time
}

func NewState() *State {
	return &State{now: time.Now}
}

func (s *State) clock() time.Time {
	if s.now == nil {
		return time.Now()
	}
	return s.now()
}

// ReplaceNotes installs a freshly fetched page of notes
func (s *State) ReplaceNotes(projectID int64, notes []models.Note) {
	s.SelectedProject = projectID
	s.Notes = append([]models.Note(nil), notes...)
	s.LastSynced = s.clock()
}

func (s *State) ReplaceProjects(projects []models.Project) {
	s.Projects = append([]models.Project(nil), projects...)
}

func (s *State) AddProject(p models.Project) {
	s.Projects = append(s.Projects, p)
}

// RenameProject updates the local name of a project
func (s *State) RenameProject(p models.Project) {
	for i := range s.Projects {
		if s.Projects[i].ID == p.ID {
			s.Projects[i] = p
			return
		}
	}
}

// RemoveProject drops a project; if it was selected its notes go too,
// matching the server-side cascade
func (s *State) RemoveProject(id int64) {
	for i := range s.Projects {
		if s.Projects[i].ID == id {
			s.Projects = append(s.Projects[:i], s.Projects[i+1:]...)
			break
		}
	}
	if s.SelectedProject == id {
		s.SelectedProject = 0
		s.Notes = nil
	}
}

// Project returns the project with the given id
func (s *State) Project(id int64) (models.Project, bool) {
	for _, p := range s.Projects {
		if p.ID == id {
			return p, true
		}
	}
	return models.Project{}, false
}

// Note returns the note with the given id
func (s *State) Note(id int64) (models.Note, bool) {
	if i := s.indexOf(id); i >= 0 {
		return s.Notes[i], true
	}
	return models.Note{}, false
}

// BeginCreate shows draft at the head of the list under a temporary
// negative id, derived from the clock so it cannot collide with a
// server id
func (s *State) BeginCreate(draft models.CreateNoteRequest) PendingOp {
	tempID := -s.clock().UnixNano()
	for s.indexOf(tempID) >= 0 {
		tempID--
	}

	placeholder := models.Note{
		ID:        tempID,
		Title:     draft.Title,
		Content:   draft.Content,
		ProjectID: draft.ProjectID,
	}
	s.Notes = append([]models.Note{placeholder}, s.Notes...)

	return PendingOp{Kind: OpCreate, ID: tempID}
}

// ConfirmCreate swaps the placeholder for the stored note
func (s *State) ConfirmCreate(op PendingOp, note models.Note) {
	if i := s.indexOf(op.ID); i >= 0 {
		s.Notes[i] = note
	} else {
		s.Notes = append([]models.Note{note}, s.Notes...)
	}
	s.LastSynced = s.clock()
}

// BeginUpdate applies the new title and content right away. ok is false
// when the note is not in the list.
func (s *State) BeginUpdate(id int64, title, content string) (op PendingOp, ok bool) {
	i := s.indexOf(id)
	if i < 0 {
		return PendingOp{}, false
	}

	op = PendingOp{Kind: OpUpdate, ID: id, prev: s.Notes[i], index: i}
	s.Notes[i].Title = title
	s.Notes[i].Content = content
	return op, true
}

// ConfirmUpdate takes the server's row. A note moved to another project
// leaves the list.
func (s *State) ConfirmUpdate(op PendingOp, note models.Note) {
	i := s.indexOf(op.ID)
	if i < 0 {
		return
	}
	if note.ProjectID != s.SelectedProject && s.SelectedProject != 0 {
		s.Notes = append(s.Notes[:i], s.Notes[i+1:]...)
	} else {
		s.Notes[i] = note
	}
	s.LastSynced = s.clock()
}

// BeginDelete hides the note and remembers where it was
func (s *State) BeginDelete(id int64) (op PendingOp, ok bool) {
	i := s.indexOf(id)
	if i < 0 {
		return PendingOp{}, false
	}

	op = PendingOp{Kind: OpDelete, ID: id, prev: s.Notes[i], index: i}
	s.Notes = append(s.Notes[:i], s.Notes[i+1:]...)
	return op, true
}

func (s *State) ConfirmDelete(op PendingOp) {
	s.LastSynced = s.clock()
}

// Rollback undoes the optimistic half of op
func (s *State) Rollback(op PendingOp) {
	switch op.Kind {
	case OpCreate:
		if i := s.indexOf(op.ID); i >= 0 {
			s.Notes = append(s.Notes[:i], s.Notes[i+1:]...)
		}
	case OpUpdate:
		if i := s.indexOf(op.ID); i >= 0 {
			s.Notes[i] = op.prev
		}
	case OpDelete:
		if s.indexOf(op.ID) >= 0 {
			return
		}
		i := op.index
		if i > len(s.Notes) {
			i = len(s.Notes)
		}
		s.Notes = append(s.Notes, models.Note{})
		copy(s.Notes[i+1:], s.Notes[i:])
		s.Notes[i] = op.prev
	}
}

func (s *State) indexOf(id int64) int {
	for i := range s.Notes {
		if s.Notes[i].ID == id {
			return i
		}
	}
	return -1
}
