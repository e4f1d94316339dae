// Package repl runs a session as a plain line-oriented loop. It is used when
// stdin or stdout is not a terminal, e.g. when commands are piped in.
package repl

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"

	"github.com/Cyclone1070/rootnav/internal/shell"
)

// maxLineSize caps a single input line; bufio's default of 64KiB is too small
// for long generated paths.
const maxLineSize = 1 << 20

// REPL reads command lines from in and writes results to out and errOut.
type REPL struct {
	dispatcher *shell.Dispatcher
	in         io.Reader
	out        io.Writer
	errOut     io.Writer
	errStyle   lipgloss.Style
}

func New(dispatcher *shell.Dispatcher, in io.Reader, out, errOut io.Writer) *REPL {
	// Colour only when errOut supports it.
	renderer := lipgloss.NewRenderer(errOut)
	return &REPL{
		dispatcher: dispatcher,
		in:         in,
		out:        out,
		errOut:     errOut,
		errStyle:   renderer.NewStyle().Foreground(lipgloss.Color("196")).Bold(true),
	}
}

// Run prints the banner and executes lines until exit, quit or end of input.
// The returned error is only ever a read error from in.
func (r *REPL) Run(ctx context.Context) error {
	session := r.dispatcher.Session()
	fmt.Fprintf(r.out, "%s\n\n", session.Banner())

	scanner := bufio.NewScanner(r.in)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), maxLineSize)
	for {
		fmt.Fprint(r.out, session.Prompt())
		if !scanner.Scan() {
			// Keep "Goodbye!" off the prompt line.
			fmt.Fprintln(r.out)
			break
		}

		outcome := r.dispatcher.Execute(ctx, scanner.Text())
		cont, ok := outcome.(shell.Continue)
		if !ok {
			break
		}
		r.print(cont.Result)
	}

	fmt.Fprintln(r.out, "Goodbye!")
	return scanner.Err()
}

func (r *REPL) print(result shell.CommandResult) {
	if !result.OK {
		fmt.Fprintln(r.errOut, r.errStyle.Render("Error: "+result.Message))
	} else if result.Message != "" {
		fmt.Fprintln(r.out, result.Message)
	}
	fmt.Fprintln(r.out)
}
