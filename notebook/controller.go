// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package notebook

import (
	"context"
	"errors"

	"github.com/danielhkuo/quickly-notes/client"
	"github.com/danielhkuo/quickly-notes/models"
)

// NotesAPI is the part of the REST API the notebook needs.
// *client.Client implements it.
type NotesAPI interface {
	ListProjects(ctx context.Context) ([]models.Project, error)
	CreateProject(ctx context.Context, name string) (models.Project, error)
	RenameProject(ctx context.Context, id int64, name string) (models.Project, error)
	DeleteProject(ctx context.Context, id int64) error
	ListNotes(ctx context.Context, params models.ListNotesParams) ([]models.Note, error)
	CreateNote(ctx context.Context, req models.CreateNoteRequest) (models.Note, error)
	UpdateNote(ctx context.Context, id int64, patch models.NotePatch) (models.Note, error)
	DeleteNote(ctx context.Context, id int64) error
}

var _ NotesAPI = (*client.Client)(nil)

// Task is the network half of an operation. It may run on any goroutine;
// the Settle it returns must run on the goroutine that owns the State.
type Task func(ctx context.Context) Settle

// Settle confirms or rolls back the optimistic change and reports the
// outcome
type Settle func() error

// Controller drives the optimistic workflow: apply locally, call the API,
// then confirm or roll back. Err holds the message of the last failure
// until dismissed.
type Controller struct {
	api   NotesAPI
	State *State
	Err   string
	// PageSize is sent as limit when loading notes; 0 uses the server default
	PageSize int
	Search   string
}

func NewController(api NotesAPI) *Controller {
	return &Controller{api: api, State: NewState()}
}

// Run executes a task and settles it on the calling goroutine
func (c *Controller) Run(ctx context.Context, task Task) error {
	if task == nil {
		return nil
	}
	return task(ctx)()
}

func (c *Controller) DismissError() {
	c.Err = ""
}

// Refresh reloads the projects and the notes of the selected project,
// selecting the first project when none is selected
func (c *Controller) Refresh() Task {
	selected := c.State.SelectedProject
	params := c.listParams()

	return func(ctx context.Context) Settle {
		projects, err := c.api.ListProjects(ctx)
		if err != nil {
			return c.fail(err, "Failed to load projects. Please try again.")
		}

		if _, ok := findProject(projects, selected); !ok {
			selected = 0
			if len(projects) > 0 {
				selected = projects[0].ID
			}
		}

		var notes []models.Note
		if selected != 0 {
			params.ProjectID = selected
			notes, err = c.api.ListNotes(ctx, params)
			if err != nil {
				return c.fail(err, "Failed to load notes. Please try again.")
			}
		}

		return func() error {
			c.State.ReplaceProjects(projects)
			c.State.ReplaceNotes(selected, notes)
			return nil
		}
	}
}

// SelectProject switches the note list to another project
func (c *Controller) SelectProject(id int64) Task {
	params := c.listParams()
	params.ProjectID = id

	return func(ctx context.Context) Settle {
		notes, err := c.api.ListNotes(ctx, params)
		if err != nil {
			return c.fail(err, "Failed to load notes. Please try again.")
		}
		return func() error {
			c.State.ReplaceNotes(id, notes)
			return nil
		}
	}
}

// AddNote validates the form, shows the note at once and creates it on
// the server. A nil Task means the form was invalid.
func (c *Controller) AddNote(title, content string) (Task, FormErrors) {
	if errs := ValidateNote(title, content); !errs.OK() {
		return nil, errs
	}
	if c.State.SelectedProject == 0 {
		c.Err = "Select a project first"
		return nil, FormErrors{}
	}

	c.Err = ""
	req := models.CreateNoteRequest{Title: title, Content: content, ProjectID: c.State.SelectedProject}
	op := c.State.BeginCreate(req)

	return func(ctx context.Context) Settle {
		note, err := c.api.CreateNote(ctx, req)
		return func() error {
			if err != nil {
				c.State.Rollback(op)
				return c.setErr(err, "Failed to add note. Please try again.")
			}
			c.State.ConfirmCreate(op, note)
			return nil
		}
	}, FormErrors{}
}

// EditNote validates the form and replaces the note's title and content
func (c *Controller) EditNote(id int64, title, content string) (Task, FormErrors) {
	if errs := ValidateNote(title, content); !errs.OK() {
		return nil, errs
	}

	c.Err = ""
	op, ok := c.State.BeginUpdate(id, title, content)
	if !ok {
		c.Err = "Note not found"
		return nil, FormErrors{}
	}

	patch := models.NotePatch{Title: &title, Content: &content}
	return func(ctx context.Context) Settle {
		note, err := c.api.UpdateNote(ctx, id, patch)
		return func() error {
			if err != nil {
				c.State.Rollback(op)
				return c.setErr(err, "Failed to update note. Please try again.")
			}
			c.State.ConfirmUpdate(op, note)
			return nil
		}
	}, FormErrors{}
}

// RemoveNote hides the note and deletes it on the server
func (c *Controller) RemoveNote(id int64) Task {
	c.Err = ""
	op, ok := c.State.BeginDelete(id)
	if !ok {
		return nil
	}

	return func(ctx context.Context) Settle {
		err := c.api.DeleteNote(ctx, id)
		return func() error {
			if err != nil {
				c.State.Rollback(op)
				return c.setErr(err, "Failed to delete note. Please try again.")
			}
			c.State.ConfirmDelete(op)
			return nil
		}
	}
}

// AddProject creates a project and selects it
func (c *Controller) AddProject(name string) Task {
	c.Err = ""
	return func(ctx context.Context) Settle {
		p, err := c.api.CreateProject(ctx, name)
		if err != nil {
			return c.fail(err, "Failed to create project. Please try again.")
		}
		return func() error {
			c.State.AddProject(p)
			c.State.ReplaceNotes(p.ID, nil)
			return nil
		}
	}
}

func (c *Controller) RenameProject(id int64, name string) Task {
	c.Err = ""
	return func(ctx context.Context) Settle {
		p, err := c.api.RenameProject(ctx, id, name)
		if err != nil {
			return c.fail(err, "Failed to rename project. Please try again.")
		}
		return func() error {
			c.State.RenameProject(p)
			return nil
		}
	}
}

// RemoveProject deletes a project along with its notes
func (c *Controller) RemoveProject(id int64) Task {
	c.Err = ""
	return func(ctx context.Context) Settle {
		if err := c.api.DeleteProject(ctx, id); err != nil {
			return c.fail(err, "Failed to delete project. Please try again.")
		}
		return func() error {
			c.State.RemoveProject(id)
			return nil
		}
	}
}

func (c *Controller) listParams() models.ListNotesParams {
	return models.ListNotesParams{Limit: c.PageSize, Search: c.Search}
}

func (c *Controller) fail(err error, fallback string) Settle {
	return func() error {
		return c.setErr(err, fallback)
	}
}

// setErr records the API's message when there is one
func (c *Controller) setErr(err error, fallback string) error {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		c.Err = apiErr.Message
	} else {
		c.Err = fallback
	}
	return err
}

func findProject(projects []models.Project, id int64) (models.Project, bool) {
	for _, p := range projects {
		if p.ID == id {
			return p, true
		}
	}
	return models.Project{}, false
}
