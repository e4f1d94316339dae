// Package models holds the state rendered by the terminal UI.
package models

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"

	"github.com/Cyclone1070/rootnav/internal/shell"
)

// Entry is one executed line together with the prompt it was typed at.
// Result is nil while the command is still running.
type Entry struct {
	Prompt string
	Line   string
	Result *shell.CommandResult
}

// State is the complete UI state.
type State struct {
	Width  int
	Height int

	Input    textinput.Model
	Viewport viewport.Model
	Spinner  spinner.Model

	Banner    string
	RootLabel string
	Prompt    string
	Entries   []Entry

	// Running is set while a command is in flight; input is locked meanwhile.
	Running bool

	// History holds submitted lines, oldest first. HistoryIndex equals
	// len(History) unless the user is browsing with up and down.
	History      []string
	HistoryIndex int
	Draft        string
}
