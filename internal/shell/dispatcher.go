// Package shell turns command lines into backend operations for one session.
package shell

import (
	"context"
	"io"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Cyclone1070/rootnav/internal/storage"
)

// Limits bounds how much content a single command may read.
type Limits struct {
	MaxReadSize  int64 // cat and hexdump
	ClassifySize int64 // file
}

// DefaultLimits returns the limits used when none are configured.
func DefaultLimits() Limits {
	return Limits{MaxReadSize: 1024 * 1024, ClassifySize: 1024}
}

// Dispatcher executes command lines against a session.
type Dispatcher struct {
	session  *Session
	limits   Limits
	commands map[string]command
	logger   *log.Logger
}

// NewDispatcher builds the command table for session.
func NewDispatcher(session *Session, limits Limits, logger *log.Logger) *Dispatcher {
	if logger == nil {
		logger = log.New(io.Discard)
	}

	d := &Dispatcher{
		session: session,
		limits:  limits,
		logger:  logger,
	}

	help := newCommand("help", nil, d.help)
	d.commands = map[string]command{
		"ls":      newCommand("ls [-l] [path]", flagSpec{"l": false}, d.list),
		"file":    newCommand("file <filename>", nil, d.file),
		"stat":    newCommand("stat <filename>", nil, d.stat),
		"du":      newCommand("du [-h] [path]", flagSpec{"h": false}, d.diskUsage),
		"cat":     newCommand("cat <filename>", nil, d.cat),
		"cd":      newCommand("cd [path]", nil, d.changeDirectory),
		"pwd":     newCommand("pwd", nil, d.printWorkingDirectory),
		"hexdump": newCommand("hexdump [-offset N] [-len N] <filename>", flagSpec{"offset": true, "len": true}, d.hexdump),
		"help":    help,
		"?":       help,
	}
	return d
}

func (d *Dispatcher) Session() *Session {
	return d.session
}

func (d *Dispatcher) backend() storage.Backend {
	return d.session.Backend()
}

// Execute runs one line. It never fails: every problem is reported inside a
// Continue result, and only exit or quit produce Terminate.
func (d *Dispatcher) Execute(ctx context.Context, line string) Outcome {
	tokens := strings.Fields(line)
	if len(tokens) == 0 {
		return Continue{Result: success("")}
	}

	name := tokens[0]
	if name == "exit" || name == "quit" {
		d.logger.Debug("session terminated", "cwd", d.session.CurrentDirectory())
		return Terminate{}
	}

	cmd, ok := d.commands[name]
	if !ok {
		d.logger.Debug("unknown command", "name", name)
		return Continue{Result: failure(&UnknownCommandError{Name: name})}
	}

	result := cmd.Run(ctx, tokens[1:])
	d.logger.Debug("command executed", "name", name, "args", tokens[1:], "ok", result.OK, "cwd", d.session.CurrentDirectory())
	return Continue{Result: result}
}
