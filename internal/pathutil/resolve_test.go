package pathutil

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "empty", input: "", expected: "/"},
		{name: "dot", input: ".", expected: "/"},
		{name: "root", input: "/", expected: "/"},
		{name: "relative segment", input: "a", expected: "/a"},
		{name: "duplicate slashes", input: "//a///b//", expected: "/a/b"},
		{name: "dot segments", input: "/a/./b/.", expected: "/a/b"},
		{name: "parent pops", input: "/a/b/../c", expected: "/a/c"},
		{name: "parent clamps at top", input: "/../../a", expected: "/a"},
		{name: "only parents", input: "../..", expected: "/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Normalize(tt.input))
		})
	}
}

func TestNormalize_Properties(t *testing.T) {
	inputs := []string{
		"", ".", "..", "/", "a/b/c", "../x", "/a/../../b", "./././", "a//b/./../c/",
		"/etc/passwd", "....", ".hidden/..", "a/.../b",
	}

	for _, in := range inputs {
		t.Run(in, func(t *testing.T) {
			once := Normalize(in)
			assert.Equal(t, once, Normalize(once), "normalize must be idempotent")
			assert.True(t, strings.HasPrefix(once, "/"))
			for _, seg := range strings.Split(once, "/") {
				assert.NotEqual(t, ".", seg)
				assert.NotEqual(t, "..", seg)
			}
			assert.True(t, IsConfined(once))
		})
	}
}

func TestResolve(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		current  string
		expected string
	}{
		{name: "empty keeps current", raw: "", current: "/a/b", expected: "/a/b"},
		{name: "empty keeps root", raw: "", current: "/", expected: "/"},
		{name: "relative from root", raw: "sub", current: "/", expected: "/sub"},
		{name: "relative from subdir", raw: "c", current: "/a/b", expected: "/a/b/c"},
		{name: "absolute ignores current", raw: "/x/y", current: "/a/b", expected: "/x/y"},
		{name: "parent from subdir", raw: "..", current: "/sub", expected: "/"},
		{name: "parent clamps", raw: "../../..", current: "/sub", expected: "/"},
		{name: "dot", raw: ".", current: "/a", expected: "/a"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Resolve(tt.raw, tt.current))
		})
	}
}

func TestEscapesRoot(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		current string
		escapes bool
	}{
		{name: "parent at root", raw: "..", current: "/", escapes: true},
		{name: "parent then child at root", raw: "../x", current: "/", escapes: true},
		{name: "parent from subdir", raw: "..", current: "/sub", escapes: false},
		{name: "two parents from subdir", raw: "../..", current: "/sub", escapes: true},
		{name: "absolute parent", raw: "/..", current: "/sub", escapes: true},
		{name: "absolute inside", raw: "/a/b", current: "/", escapes: false},
		{name: "descend then climb", raw: "a/../..", current: "/", escapes: true},
		{name: "descend then climb back", raw: "a/b/../..", current: "/", escapes: false},
		{name: "dots only", raw: "./.", current: "/", escapes: false},
		{name: "empty", raw: "", current: "/", escapes: false},
		{name: "dotted name is not parent", raw: "...", current: "/", escapes: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.escapes, EscapesRoot(tt.raw, tt.current))
		})
	}
}

func TestToBackendPath(t *testing.T) {
	tests := []struct {
		name     string
		virtual  string
		root     string
		expected string
	}{
		{name: "root itself", virtual: "/", root: "/data", expected: "/data"},
		{name: "child", virtual: "/a/b", root: "/data", expected: "/data/a/b"},
		{name: "root with trailing slash", virtual: "/a", root: "/data/", expected: "/data/a"},
		{name: "empty root gives relative key", virtual: "/a/b", root: "", expected: "a/b"},
		{name: "unnormalized input is clamped", virtual: "/../../etc", root: "/data", expected: "/data/etc"},
		{name: "object prefix", virtual: "/x", root: "tenant", expected: "tenant/x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, ToBackendPath(tt.virtual, tt.root))
		})
	}
}

func TestToBackendPath_NeverLeavesRoot(t *testing.T) {
	root := "/srv/data"
	raws := []string{"..", "../..", "/../etc/passwd", "a/../../..", "x/./y", "", "/"}
	currents := []string{"/", "/a", "/a/b/c"}

	for _, cur := range currents {
		for _, raw := range raws {
			got := ToBackendPath(Resolve(raw, cur), root)
			assert.True(t, got == root || strings.HasPrefix(got, root+"/"), "raw=%q cur=%q got=%q", raw, cur, got)
		}
	}
}

func TestBaseAndJoin(t *testing.T) {
	assert.Equal(t, "/", Base("/"))
	assert.Equal(t, "c", Base("/a/b/c"))
	assert.Equal(t, "/a/b", Join("/a", "b"))
	assert.Equal(t, "/b", Join("/", "b"))
	assert.Equal(t, 0, Depth("/"))
	assert.Equal(t, 2, Depth("/a/b"))
}

func TestCanonicaliseRoot(t *testing.T) {
	t.Run("existing directory", func(t *testing.T) {
		dir := t.TempDir()
		expected, err := filepath.EvalSymlinks(dir)
		require.NoError(t, err)

		got, err := CanonicaliseRoot(dir)
		require.NoError(t, err)
		assert.Equal(t, expected, got)
	})

	t.Run("missing directory", func(t *testing.T) {
		_, err := CanonicaliseRoot(filepath.Join(t.TempDir(), "missing"))
		var rootErr *RootError
		require.True(t, errors.As(err, &rootErr))
		assert.True(t, errors.Is(err, os.ErrNotExist))
	})

	t.Run("regular file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "file.txt")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o644))

		_, err := CanonicaliseRoot(file)
		assert.ErrorIs(t, err, ErrNotADirectory)
	})

	t.Run("empty root", func(t *testing.T) {
		_, err := CanonicaliseRoot("")
		assert.ErrorIs(t, err, ErrRootNotSet)
	})
}
