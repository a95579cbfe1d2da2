// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package services

import (
	"context"
	"strings"
	"testing"

	"pgregory.net/rapid"

	"github.com/danielhkuo/quickly-notes/models"
	"github.com/danielhkuo/quickly-notes/testutil"
)

// Titles are lowercase so SQLite's case-insensitive LIKE agrees with
// strings.Contains. % and _ check that wildcards are escaped.
var titleGen = rapid.StringMatching(`[ab%_]{1,6}`)

func TestNoteService_List_Properties(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	projects := NewProjectService(conn)
	notes := NewNoteService(conn)
	ctx := context.Background()

	rapid.Check(t, func(t *rapid.T) {
		project, err := projects.Create(ctx, "prop")
		if err != nil {
			t.Fatalf("create project: %v", err)
		}
		other, err := projects.Create(ctx, "other")
		if err != nil {
			t.Fatalf("create project: %v", err)
		}

		titles := rapid.SliceOfN(titleGen, 0, 15).Draw(t, "titles")
		var created []models.Note
		for _, title := range titles {
			n, err := notes.Create(ctx, models.CreateNoteRequest{Title: title, Content: "c", ProjectID: project.ID}, "")
			if err != nil {
				t.Fatalf("create note: %v", err)
			}
			created = append(created, n)

			// Noise in another project must never leak into the listing
			if _, err := notes.Create(ctx, models.CreateNoteRequest{Title: title, Content: "c", ProjectID: other.ID}, ""); err != nil {
				t.Fatalf("create note: %v", err)
			}
		}

		search := rapid.OneOf(rapid.Just(""), rapid.StringMatching(`[ab%_]{1,3}`)).Draw(t, "search")
		limit := rapid.IntRange(-1, 20).Draw(t, "limit")

		got, err := notes.List(ctx, models.ListNotesParams{ProjectID: project.ID, Limit: limit, Search: search})
		if err != nil {
			t.Fatalf("list: %v", err)
		}

		var want []models.Note
		for _, n := range created {
			if strings.Contains(n.Title, search) {
				want = append(want, n)
			}
		}
		if pageSize := NormalizeLimit(limit); len(want) > pageSize {
			want = want[:pageSize]
		}

		if len(got) != len(want) {
			t.Fatalf("expected %d notes, got %d", len(want), len(got))
		}
		for i := range got {
			if got[i] != want[i] {
				t.Fatalf("note %d: expected %+v, got %+v", i, want[i], got[i])
			}
			if got[i].ProjectID != project.ID {
				t.Fatalf("note %d belongs to project %d", got[i].ID, got[i].ProjectID)
			}
			if i > 0 && got[i-1].ID >= got[i].ID {
				t.Fatalf("notes not in ascending id order: %d then %d", got[i-1].ID, got[i].ID)
			}
		}
	})
}

func TestNoteService_Cursor_Properties(t *testing.T) {
	conn := testutil.SetupTestDB(t)
	projects := NewProjectService(conn)
	notes := NewNoteService(conn)
	ctx := context.Background()

	rapid.Check(t, func(t *rapid.T) {
		project, err := projects.Create(ctx, "cursor")
		if err != nil {
			t.Fatalf("create project: %v", err)
		}

		count := rapid.IntRange(1, 8).Draw(t, "count")
		var created []models.Note
		for i := 0; i < count; i++ {
			n, err := notes.Create(ctx, models.CreateNoteRequest{Title: "t", Content: "c", ProjectID: project.ID}, "")
			if err != nil {
				t.Fatalf("create note: %v", err)
			}
			created = append(created, n)
		}

		pick := created[rapid.IntRange(0, count-1).Draw(t, "pick")]
		got, err := notes.List(ctx, models.ListNotesParams{ProjectID: project.ID, Cursor: pick.ID})
		if err != nil {
			t.Fatalf("list: %v", err)
		}
		if len(got) != 1 || got[0] != pick {
			t.Fatalf("cursor %d: expected exactly that note, got %+v", pick.ID, got)
		}
	})
}
