// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"github.com/spf13/cobra"

	"github.com/danielhkuo/quickly-notes/cmd/notesctl/tui"
	"github.com/danielhkuo/quickly-notes/notebook"
)

var (
	tuiLimit  int
	tuiSearch string
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive notebook",
	Long: `Open a full-screen notebook for browsing and editing notes.

Edits show up immediately and are rolled back if the server rejects them.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctrl := notebook.NewController(newClient())
		ctrl.PageSize = tuiLimit
		ctrl.Search = tuiSearch
		return tui.Run(cmd.Context(), ctrl, timeout)
	},
}

func init() {
	tuiCmd.Flags().IntVar(&tuiLimit, "limit", 0, "Notes loaded per project (server default when 0)")
	tuiCmd.Flags().StringVar(&tuiSearch, "search", "", "Only show notes whose title contains this text")

	rootCmd.AddCommand(tuiCmd)
}
