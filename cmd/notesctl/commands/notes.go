// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/quickly-notes/models"
	"github.com/danielhkuo/quickly-notes/notebook"
)

var (
	// Notes flags
	projectID      int64
	cursor         int64
	limit          int
	search         string
	title          string
	content        string
	idempotencyKey string
)

// notesCmd groups note subcommands
var notesCmd = &cobra.Command{
	Use:     "notes",
	Aliases: []string{"note", "n"},
	Short:   "Manage notes",
}

var notesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the notes of a project",
	Long: `List the notes of a project, ordered by id.

Examples:
  notesctl notes list --project 1
  notesctl notes list --project 1 --search todo --limit 20
  notesctl notes list --project 1 --cursor 42   # only note 42`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		notes, err := newClient().ListNotes(ctx, models.ListNotesParams{
			ProjectID: projectID,
			Cursor:    cursor,
			Limit:     limit,
			Search:    search,
		})
		if err != nil {
			return err
		}

		p := printer(cmd)
		if jsonOutput {
			return p.JSON(notes)
		}
		p.Notes(notes)
		return nil
	},
}

var notesCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create a note",
	Long: `Create a note in a project.

A fresh idempotency key is generated unless --key is given. Reuse a key
when retrying a create whose outcome is unknown.

Examples:
  notesctl notes create --project 1 --title "Groceries" --content "milk, eggs"`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if errs := notebook.ValidateNote(title, content); !errs.OK() {
			return errors.New(firstNonEmpty(errs.Title, errs.Content))
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		req := models.CreateNoteRequest{Title: title, Content: content, ProjectID: projectID}
		c := newClient()

		var (
			note models.Note
			err  error
		)
		if idempotencyKey != "" {
			note, err = c.CreateNoteWithKey(ctx, req, idempotencyKey)
		} else {
			note, err = c.CreateNote(ctx, req)
		}
		if err != nil {
			return err
		}

		p := printer(cmd)
		if jsonOutput {
			return p.JSON(note)
		}
		p.Success("Created note %d in project %d", note.ID, note.ProjectID)
		return nil
	},
}

var notesGetCmd = &cobra.Command{
	Use:   "get ID",
	Short: "Show a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		note, err := newClient().GetNote(ctx, id)
		if err != nil {
			return err
		}

		p := printer(cmd)
		if jsonOutput {
			return p.JSON(note)
		}
		p.Section(note.Title)
		p.Muted("note %d · project %d", note.ID, note.ProjectID)
		p.Info("%s", note.Content)
		return nil
	},
}

var notesUpdateCmd = &cobra.Command{
	Use:   "update ID",
	Short: "Change a note's title, content or project",
	Long: `Change a note. Only the flags you pass are sent.

Examples:
  notesctl notes update 3 --content "milk, eggs, bread"
  notesctl notes update 3 --project 2`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		var patch models.NotePatch
		if cmd.Flags().Changed("title") {
			patch.Title = &title
		}
		if cmd.Flags().Changed("content") {
			patch.Content = &content
		}
		if cmd.Flags().Changed("project") {
			patch.ProjectID = &projectID
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		note, err := newClient().UpdateNote(ctx, id, patch)
		if err != nil {
			return err
		}

		p := printer(cmd)
		if jsonOutput {
			return p.JSON(note)
		}
		p.Success("Updated note %d", note.ID)
		return nil
	},
}

var notesDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a note",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		if err := newClient().DeleteNote(ctx, id); err != nil {
			return err
		}

		printer(cmd).Success("Deleted note %d", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(notesCmd)
	notesCmd.AddCommand(notesListCmd, notesCreateCmd, notesGetCmd, notesUpdateCmd, notesDeleteCmd)

	// Flags for notes list
	notesListCmd.Flags().Int64Var(&projectID, "project", 0, "Project ID (required)")
	notesListCmd.Flags().Int64Var(&cursor, "cursor", 0, "Only the note with this id")
	notesListCmd.Flags().IntVar(&limit, "limit", 0, "Maximum notes to return (server default 10, max 100)")
	notesListCmd.Flags().StringVar(&search, "search", "", "Substring of the title")
	_ = notesListCmd.MarkFlagRequired("project")

	// Flags for notes create
	notesCreateCmd.Flags().Int64Var(&projectID, "project", 0, "Project ID (required)")
	notesCreateCmd.Flags().StringVar(&title, "title", "", "Note title")
	notesCreateCmd.Flags().StringVar(&content, "content", "", "Note content")
	notesCreateCmd.Flags().StringVar(&idempotencyKey, "key", "", "Idempotency key (default: random UUID)")
	_ = notesCreateCmd.MarkFlagRequired("project")

	// Flags for notes update
	notesUpdateCmd.Flags().Int64Var(&projectID, "project", 0, "Move to this project")
	notesUpdateCmd.Flags().StringVar(&title, "title", "", "New title")
	notesUpdateCmd.Flags().StringVar(&content, "content", "", "New content")
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
