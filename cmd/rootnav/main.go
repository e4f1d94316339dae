// Package main provides the rootnav command: an interactive, read-only shell
// confined to one directory tree on the local disk or in an S3 compatible bucket.
package main

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/Cyclone1070/rootnav/internal/config"
	"github.com/Cyclone1070/rootnav/internal/logging"
	"github.com/Cyclone1070/rootnav/internal/repl"
	"github.com/Cyclone1070/rootnav/internal/shell"
	"github.com/Cyclone1070/rootnav/internal/storage/factory"
	"github.com/Cyclone1070/rootnav/internal/ui"
)

// Dependencies holds the components required to run the application.
type Dependencies struct {
	LoadConfig func() (*config.Config, error)
	IsTerminal func() bool
	Stdin      io.Reader
	Stdout     io.Writer
	Stderr     io.Writer
}

func realDependencies() Dependencies {
	return Dependencies{
		LoadConfig: config.Load,
		IsTerminal: func() bool {
			return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
		},
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}

func newRootCommand(deps Dependencies) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rootnav [root]",
		Short: "rootnav - browse a directory tree without leaving it",
		Long: `rootnav opens an interactive shell confined to a root directory.

Browse a local directory:
  rootnav ~/data

Browse a bucket prefix (backend.type: minio plus endpoint and credentials
in ~/.config/rootnav/config.yaml, or ROOTNAV_BACKEND_TYPE=minio and friends):
  rootnav reports/2024

Commands inside the shell: ls, cd, pwd, file, stat, du, cat, hexdump, help, exit`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, deps, args)
		},
	}

	cmd.SetIn(deps.Stdin)
	cmd.SetOut(deps.Stdout)
	cmd.SetErr(deps.Stderr)
	return cmd
}

func run(cmd *cobra.Command, deps Dependencies, args []string) error {
	cfg, err := deps.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	root := cfg.Backend.Root
	if len(args) == 1 {
		root = args[0]
	}
	if cfg.Backend.Type == config.BackendLocal {
		expanded, err := homedir.Expand(root)
		if err != nil {
			return fmt.Errorf("failed to expand root %q: %w", root, err)
		}
		root = expanded
	}

	useTUI := cfg.Shell.Interface == config.InterfaceTUI ||
		(cfg.Shell.Interface == config.InterfaceAuto && deps.IsTerminal())

	// stderr belongs to the TUI while it runs.
	var logOut io.Writer = deps.Stderr
	if useTUI {
		logOut = io.Discard
	}
	logger, closer, err := logging.New(cfg.Log, logOut)
	if err != nil {
		return err
	}
	defer closer.Close()
	logger, sessionID := logging.WithSession(logger)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	backend, err := factory.New(ctx, cfg.Backend, root, logger)
	if err != nil {
		return fmt.Errorf("cannot open root %s: %w", root, err)
	}
	defer func() {
		if err := backend.Close(); err != nil {
			logger.Warn("failed to close backend", "err", err)
		}
	}()

	logger.Info("session started", "id", sessionID, "backend", cfg.Backend.Type, "root", backend.RootLabel(), "tui", useTUI)

	limits := shell.Limits{MaxReadSize: cfg.Shell.MaxReadSize, ClassifySize: cfg.Shell.ClassifySize}
	dispatcher := shell.NewDispatcher(shell.NewSession(backend), limits, logger)

	if useTUI {
		return ui.NewUI(ctx, dispatcher, cfg.Shell.HistorySize, nil, deps.Stdin, deps.Stdout).Start()
	}
	return repl.New(dispatcher, deps.Stdin, deps.Stdout, deps.Stderr).Run(ctx)
}

func main() {
	deps := realDependencies()
	if err := newRootCommand(deps).ExecuteContext(context.Background()); err != nil {
		log.NewWithOptions(deps.Stderr, log.Options{Prefix: "rootnav"}).Error(err)
		os.Exit(1)
	}
}
