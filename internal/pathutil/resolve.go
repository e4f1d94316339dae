// Package pathutil implements the virtual path model used to keep a session
// confined to its storage root. A virtual path always starts with "/" and is
// interpreted relative to the root, never as a real filesystem path.
package pathutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Separator is the only separator understood by the virtual path model.
const Separator = "/"

// Normalize collapses a raw path into a virtual path.
// Empty and "." segments are dropped, ".." pops the previous segment and is a
// no-op at the top. The result always starts with "/".
func Normalize(raw string) string {
	segments := make([]string, 0, strings.Count(raw, Separator)+1)
	for _, seg := range strings.Split(raw, Separator) {
		switch seg {
		case "", ".":
			continue
		case "..":
			if len(segments) > 0 {
				segments = segments[:len(segments)-1]
			}
		default:
			segments = append(segments, seg)
		}
	}
	return Separator + strings.Join(segments, Separator)
}

// Resolve interprets raw against the current virtual directory.
// An empty raw path yields current; a leading "/" is absolute within the root.
func Resolve(raw, current string) string {
	if raw == "" {
		return current
	}
	if strings.HasPrefix(raw, Separator) {
		return Normalize(raw)
	}
	if current == Separator {
		return Normalize(Separator + raw)
	}
	return Normalize(current + Separator + raw)
}

// IsConfined reports whether p is a confined virtual path.
// Anything returned by Normalize satisfies it, so escape detection must run on
// the raw request (see EscapesRoot).
func IsConfined(p string) bool {
	return strings.HasPrefix(p, Separator)
}

// EscapesRoot reports whether resolving raw against current would climb above
// the root before Normalize gets a chance to clamp it.
func EscapesRoot(raw, current string) bool {
	depth := 0
	if !strings.HasPrefix(raw, Separator) {
		depth = Depth(current)
	}
	for _, seg := range strings.Split(raw, Separator) {
		switch seg {
		case "", ".":
		case "..":
			depth--
			if depth < 0 {
				return true
			}
		default:
			depth++
		}
	}
	return false
}

// Depth returns the number of segments in the normalized form of p.
func Depth(p string) int {
	n := Normalize(p)
	if n == Separator {
		return 0
	}
	return strings.Count(n, Separator)
}

// ToBackendPath maps a virtual path under root. The virtual path is normalized
// first, so the result can only ever extend root.
func ToBackendPath(virtualPath, root string) string {
	rel := strings.TrimPrefix(Normalize(virtualPath), Separator)
	switch {
	case root == "":
		return rel
	case rel == "":
		return root
	case strings.HasSuffix(root, Separator):
		return root + rel
	default:
		return root + Separator + rel
	}
}

// Join appends a child name to a virtual directory.
func Join(dir, name string) string {
	return Normalize(dir + Separator + name)
}

// Base returns the last segment of a virtual path, or "/" for the root.
func Base(p string) string {
	n := Normalize(p)
	if n == Separator {
		return Separator
	}
	return n[strings.LastIndex(n, Separator)+1:]
}

// CanonicaliseRoot makes a root directory absolute and resolves symlinks.
// Returns an error if the path doesn't exist or isn't a directory.
func CanonicaliseRoot(root string) (string, error) {
	if root == "" {
		return "", &RootError{Root: root, Cause: ErrRootNotSet}
	}

	absRoot, err := filepath.Abs(root)
	if err != nil {
		return "", &RootError{Root: root, Cause: err}
	}

	resolved, err := filepath.EvalSymlinks(absRoot)
	if err != nil {
		return "", &RootError{Root: absRoot, Cause: err}
	}

	info, err := os.Stat(resolved)
	if err != nil {
		return "", &RootError{Root: resolved, Cause: err}
	}
	if !info.IsDir() {
		return "", &RootError{Root: resolved, Cause: fmt.Errorf("%w: %s", ErrNotADirectory, resolved)}
	}
	return resolved, nil
}
