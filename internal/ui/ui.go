// Package ui is the full-screen terminal front-end.
package ui

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/Cyclone1070/rootnav/internal/shell"
)

// UI runs a session in a Bubble Tea program.
type UI struct {
	program *tea.Program
	out     io.Writer
}

// NewUI creates a new Bubble Tea UI. historySize bounds the lines kept for
// up and down recall; 0 keeps everything.
func NewUI(
	ctx context.Context,
	dispatcher *shell.Dispatcher,
	historySize int,
	spinnerFactory SpinnerFactory,
	in io.Reader,
	out io.Writer,
) *UI {
	if spinnerFactory == nil {
		spinnerFactory = DefaultSpinner
	}
	model := newBubbleTeaModel(ctx, dispatcher, historySize, spinnerFactory)

	return &UI{
		program: tea.NewProgram(model,
			tea.WithAltScreen(),
			tea.WithContext(ctx),
			tea.WithInput(in),
			tea.WithOutput(out),
		),
		out: out,
	}
}

// Start runs the program until exit, quit or ctrl+c.
func (u *UI) Start() error {
	if _, err := u.program.Run(); err != nil {
		return fmt.Errorf("terminal ui: %w", err)
	}
	fmt.Fprintln(u.out, "Goodbye!")
	return nil
}
