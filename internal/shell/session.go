package shell

import (
	"context"
	"fmt"

	"github.com/Cyclone1070/rootnav/internal/pathutil"
	"github.com/Cyclone1070/rootnav/internal/storage"
)

// Session holds the current virtual directory of one interactive run.
// It is not safe for concurrent use; commands run one at a time.
type Session struct {
	backend storage.Backend
	cwd     string
}

// NewSession starts a session at the root of backend.
func NewSession(backend storage.Backend) *Session {
	return &Session{backend: backend, cwd: pathutil.Separator}
}

func (s *Session) Backend() storage.Backend {
	return s.backend
}

func (s *Session) CurrentDirectory() string {
	return s.cwd
}

// Resolve turns a user supplied path into a virtual path.
// Requests that climb above the root are rejected rather than clamped.
func (s *Session) Resolve(raw string) (string, error) {
	if s.backend.IsEscapeAttempt(raw, s.cwd) {
		return "", &pathutil.EscapeError{Path: raw}
	}
	return pathutil.Resolve(raw, s.cwd), nil
}

// ChangeDirectory moves the session to raw; an empty raw goes to the root.
// The current directory only changes on success.
func (s *Session) ChangeDirectory(ctx context.Context, raw string) error {
	if raw == "" {
		raw = pathutil.Separator
	}

	target, err := s.Resolve(raw)
	if err != nil {
		return err
	}
	if !s.backend.IsDirectory(ctx, target) {
		return &ChangeDirectoryError{Path: raw}
	}

	s.cwd = target
	return nil
}

// Prompt is printed before every command.
func (s *Session) Prompt() string {
	return fmt.Sprintf("[%s] %s $ ", s.backend.RootLabel(), s.cwd)
}

// Banner is printed once when the session starts.
func (s *Session) Banner() string {
	return fmt.Sprintf("rootnav started (Root directory: %s)\nType 'help' for available commands, 'exit' to quit",
		s.backend.RootLabel())
}
