// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"context"

	"github.com/spf13/cobra"
)

// projectsCmd groups project subcommands
var projectsCmd = &cobra.Command{
	Use:     "projects",
	Aliases: []string{"project", "p"},
	Short:   "Manage projects",
}

var projectsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List projects",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		projects, err := newClient().ListProjects(ctx)
		if err != nil {
			return err
		}

		p := printer(cmd)
		if jsonOutput {
			return p.JSON(projects)
		}
		p.Projects(projects)
		return nil
	},
}

var projectsCreateCmd = &cobra.Command{
	Use:   "create NAME",
	Short: "Create a project",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		project, err := newClient().CreateProject(ctx, args[0])
		if err != nil {
			return err
		}

		p := printer(cmd)
		if jsonOutput {
			return p.JSON(project)
		}
		p.Success("Created project %d (%s)", project.ID, project.Name)
		return nil
	},
}

var projectsRenameCmd = &cobra.Command{
	Use:   "rename ID NAME",
	Short: "Rename a project",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		project, err := newClient().RenameProject(ctx, id, args[1])
		if err != nil {
			return err
		}

		p := printer(cmd)
		if jsonOutput {
			return p.JSON(project)
		}
		p.Success("Renamed project %d to %s", project.ID, project.Name)
		return nil
	},
}

var projectsDeleteCmd = &cobra.Command{
	Use:   "delete ID",
	Short: "Delete a project and all of its notes",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := parseID(args[0])
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()

		if err := newClient().DeleteProject(ctx, id); err != nil {
			return err
		}

		printer(cmd).Success("Deleted project %d", id)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(projectsCmd)
	projectsCmd.AddCommand(projectsListCmd, projectsCreateCmd, projectsRenameCmd, projectsDeleteCmd)
}
