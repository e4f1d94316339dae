// Package testhelpers provides shared utilities for tests that need a real directory tree.
package testhelpers

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

// Tree describes files to create. Keys are slash-separated paths relative to the root;
// a key ending in "/" creates an empty directory.
type Tree map[string]string

// WriteTree creates tree under a fresh temporary directory and returns its path.
func WriteTree(t *testing.T, tree Tree) string {
	t.Helper()
	root := t.TempDir()
	WriteTreeAt(t, root, tree)
	return root
}

// WriteTreeAt creates tree under root.
func WriteTreeAt(t *testing.T, root string, tree Tree) {
	t.Helper()
	for rel, body := range tree {
		full := filepath.Join(root, filepath.FromSlash(rel))
		if strings.HasSuffix(rel, "/") {
			require.NoError(t, os.MkdirAll(full, 0o755))
			continue
		}
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(body), 0o644))
	}
}
