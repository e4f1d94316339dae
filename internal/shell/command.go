package shell

import (
	"context"
	"errors"
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// validator is implemented by request types that check their own fields.
type validator interface {
	Validate() error
}

// command is a single entry of the dispatch table.
type command interface {
	Usage() string
	Run(ctx context.Context, args []string) CommandResult
}

// handlerFunc executes a command with its typed request and returns the text to print.
type handlerFunc[Req any] func(ctx context.Context, req Req) (string, error)

// baseCommand turns raw tokens into a typed request before calling its handler:
// tokens are split into flags and a path, decoded with mapstructure and validated.
type baseCommand[Req any] struct {
	usage   string
	flags   flagSpec
	handler handlerFunc[Req]
}

func newCommand[Req any](usage string, flags flagSpec, handler handlerFunc[Req]) *baseCommand[Req] {
	return &baseCommand[Req]{usage: usage, flags: flags, handler: handler}
}

func (c *baseCommand[Req]) Usage() string {
	return c.usage
}

func (c *baseCommand[Req]) Run(ctx context.Context, args []string) CommandResult {
	values, err := parseArgs(args, c.flags)
	if err != nil {
		return failure(&UsageError{Usage: c.usage})
	}

	var req Req
	if err := mapstructure.Decode(values, &req); err != nil {
		return failure(fmt.Errorf("Invalid arguments: %w", err))
	}

	if v, ok := any(&req).(validator); ok {
		if err := v.Validate(); err != nil {
			if errors.Is(err, errPathRequired) {
				err = &UsageError{Usage: c.usage}
			}
			return failure(err)
		}
	}

	out, err := c.handler(ctx, req)
	if err != nil {
		return failure(err)
	}
	return success(out)
}
