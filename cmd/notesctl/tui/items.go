// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"

	"github.com/danielhkuo/quickly-notes/cmd/notesctl/output"
	"github.com/danielhkuo/quickly-notes/models"
)

type projectItem struct {
	project  models.Project
	selected bool
}

func (i projectItem) FilterValue() string { return i.project.Name }
func (i projectItem) Title() string {
	if i.selected {
		return "● " + i.project.Name
	}
	return "  " + i.project.Name
}
func (i projectItem) Description() string { return fmt.Sprintf("  #%d", i.project.ID) }

type noteItem struct {
	note models.Note
}

func (i noteItem) FilterValue() string { return i.note.Title }
func (i noteItem) Title() string       { return i.note.Title }
func (i noteItem) Description() string {
	// Negative ids are placeholders still waiting for the server
	if i.note.ID < 0 {
		return pendingStyle.Render("saving…")
	}
	return output.Truncate(i.note.Content, 60)
}

func projectItems(projects []models.Project, selected int64) []list.Item {
	items := make([]list.Item, len(projects))
	for i, p := range projects {
		items[i] = projectItem{project: p, selected: p.ID == selected}
	}
	return items
}

func noteItems(notes []models.Note) []list.Item {
	items := make([]list.Item, len(notes))
	for i, n := range notes {
		items[i] = noteItem{note: n}
	}
	return items
}
