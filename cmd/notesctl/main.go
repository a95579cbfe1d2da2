// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command notesctl is the terminal client for the Quickly Notes API.
package main

import "github.com/danielhkuo/quickly-notes/cmd/notesctl/commands"

func main() {
	commands.Execute()
}
