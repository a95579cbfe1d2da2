// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package commands

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/quickly-notes/client"
	"github.com/danielhkuo/quickly-notes/cmd/notesctl/output"
)

var (
	// Global flags
	apiURL     string
	jsonOutput bool
	timeout    time.Duration
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "notesctl",
	Short: "Terminal client for the Quickly Notes API",
	Long: `notesctl manages projects and notes on a Quickly Notes server.

Use the projects and notes subcommands for scripting, or tui for an
interactive notebook with optimistic updates.

The server URL comes from --api or NOTES_API_URL.`,
	Version:       "0.1.0",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		output.New(os.Stderr).Error("%v", err)
		os.Exit(1)
	}
}

func init() {
	defaultURL := os.Getenv("NOTES_API_URL")
	if defaultURL == "" {
		defaultURL = client.DefaultBaseURL
	}

	rootCmd.PersistentFlags().StringVar(&apiURL, "api", defaultURL, "API base URL (env NOTES_API_URL)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 10*time.Second, "Request timeout")
}

func newClient() *client.Client {
	return client.New(apiURL)
}

func printer(cmd *cobra.Command) *output.Printer {
	return output.New(cmd.OutOrStdout())
}

func parseID(arg string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q", arg)
	}
	return id, nil
}
