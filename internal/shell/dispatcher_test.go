package shell

import (
	"context"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Cyclone1070/rootnav/internal/storage"
	"github.com/Cyclone1070/rootnav/internal/testing/mocks"
)

func newTestDispatcher(t *testing.T, limits Limits) (*Dispatcher, *mocks.MockBackend) {
	t.Helper()
	b := mocks.NewMockBackend("/data")
	b.CreateDir("/emptydir")
	b.CreateDir("/sub/deep")
	b.CreateFile("/hello.txt", []byte("hello world\n"), 0o644)
	b.CreateFile("/empty.txt", nil, 0o644)
	b.CreateFile("/bin.dat", []byte{0x00, 0x01, 0x02, 0x03, 'A', 'B'}, 0o755)
	b.CreateFile("/exit.txt", []byte("exit"), 0o644)
	b.CreateFile("/sub/notes.json", []byte(`{"a":1}`), 0o600)
	b.CreateFile("/sub/deep/data.bin", make([]byte, 20), 0o644)
	return NewDispatcher(NewSession(b), limits, nil), b
}

// run executes line and requires a Continue outcome.
func run(t *testing.T, d *Dispatcher, line string) CommandResult {
	t.Helper()
	out := d.Execute(context.Background(), line)
	cont, ok := out.(Continue)
	require.True(t, ok, "expected Continue for %q, got %T", line, out)
	return cont.Result
}

func TestExecute_EmptyLine(t *testing.T) {
	d, _ := newTestDispatcher(t, DefaultLimits())

	for _, line := range []string{"", "   ", "\t"} {
		assert.Equal(t, Continue{Result: CommandResult{OK: true, Message: ""}}, d.Execute(context.Background(), line))
	}
}

func TestExecute_Exit(t *testing.T) {
	d, _ := newTestDispatcher(t, DefaultLimits())

	assert.Equal(t, Terminate{}, d.Execute(context.Background(), "exit"))
	assert.Equal(t, Terminate{}, d.Execute(context.Background(), "  quit  "))

	// Output that happens to read "exit" is an ordinary result.
	res := run(t, d, "cat exit.txt")
	assert.Equal(t, CommandResult{OK: true, Message: "exit"}, res)
}

func TestExecute_UnknownCommand(t *testing.T) {
	d, _ := newTestDispatcher(t, DefaultLimits())

	res := run(t, d, "rm -rf /")
	assert.False(t, res.OK)
	assert.Equal(t, "Unknown command: rm, use 'help' for available commands", res.Message)
}

func TestExecute_Navigation(t *testing.T) {
	d, _ := newTestDispatcher(t, DefaultLimits())

	assert.Equal(t, CommandResult{OK: true, Message: ""}, run(t, d, "cd sub"))
	assert.Equal(t, "/sub", run(t, d, "pwd").Message)

	assert.True(t, run(t, d, "cd ..").OK)
	assert.Equal(t, "/", run(t, d, "pwd").Message)

	denied := run(t, d, "cd ..")
	assert.False(t, denied.OK)
	assert.Equal(t, "Access denied: cannot navigate above the root directory (..)", denied.Message)
	assert.Equal(t, "/", run(t, d, "pwd").Message)

	assert.True(t, run(t, d, "cd /sub/deep").OK)
	assert.Equal(t, "/sub/deep", run(t, d, "pwd").Message)
	assert.True(t, run(t, d, "cd").OK)
	assert.Equal(t, "/", run(t, d, "pwd").Message)

	notDir := run(t, d, "cd hello.txt")
	assert.Equal(t, CommandResult{OK: false, Message: "Cannot change to directory: hello.txt"}, notDir)
	missing := run(t, d, "cd nowhere")
	assert.Equal(t, CommandResult{OK: false, Message: "Cannot change to directory: nowhere"}, missing)
	assert.Equal(t, "/", d.Session().CurrentDirectory())
}

func TestExecute_EscapeDeniedForEveryCommand(t *testing.T) {
	d, b := newTestDispatcher(t, DefaultLimits())

	for _, line := range []string{"ls ..", "cat ../etc/passwd", "stat /../x", "du ..", "file ..", "hexdump ../x"} {
		t.Run(line, func(t *testing.T) {
			res := run(t, d, line)
			assert.False(t, res.OK)
			assert.True(t, strings.HasPrefix(res.Message, "Access denied: cannot navigate above the root directory ("))
		})
	}
	assert.Empty(t, b.Calls, "escape attempts must not reach the backend")
}

func TestExecute_List(t *testing.T) {
	d, _ := newTestDispatcher(t, DefaultLimits())

	tests := []struct {
		line     string
		expected CommandResult
	}{
		{"ls", CommandResult{true, "bin.dat  empty.txt  emptydir  exit.txt  hello.txt  sub"}},
		{"ls -", CommandResult{true, "bin.dat  empty.txt  emptydir  exit.txt  hello.txt  sub"}},
		{"ls sub", CommandResult{true, "deep  notes.json"}},
		{"ls emptydir", CommandResult{true, "Directory is empty"}},
		{"ls hello.txt", CommandResult{true, "hello.txt"}},
		{"ls -l hello.txt", CommandResult{true, "-rw-r--r--         12 2024-01-02 03:04:05 hello.txt"}},
		{"ls -l sub", CommandResult{true, "drwxr-xr-x          0 2024-01-02 03:04:05 deep\n" +
			"-rw-------          7 2024-01-02 03:04:05 notes.json"}},
		{"ls missing", CommandResult{false, "Path does not exist: missing"}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.expected, run(t, d, tt.line))
		})
	}
}

func TestExecute_File(t *testing.T) {
	d, b := newTestDispatcher(t, DefaultLimits())
	b.CreateEntry("/fifo", 0, fs.ModeNamedPipe|0o600)

	tests := []struct {
		line     string
		expected CommandResult
	}{
		{"file hello.txt", CommandResult{true, "hello.txt: regular file, text file (text/plain)"}},
		{"file sub/notes.json", CommandResult{true, "sub/notes.json: regular file, text file (application/json)"}},
		{"file bin.dat", CommandResult{true, "bin.dat: regular file, binary file"}},
		{"file empty.txt", CommandResult{true, "empty.txt: regular file, text file (text/plain)"}},
		{"file sub", CommandResult{true, "sub: directory"}},
		{"file fifo", CommandResult{true, "fifo: FIFO"}},
		{"file missing", CommandResult{false, "File does not exist: missing"}},
		{"file", CommandResult{false, "Usage: file <filename>"}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.expected, run(t, d, tt.line))
		})
	}
}

func TestExecute_File_ReadFailureDegrades(t *testing.T) {
	d, b := newTestDispatcher(t, DefaultLimits())
	b.SetOperationError("ReadContent", errors.New("connection reset"))

	res := run(t, d, "file hello.txt")
	assert.Equal(t, CommandResult{true, "hello.txt: regular file, cannot read content"}, res)
}

func TestExecute_Stat(t *testing.T) {
	d, _ := newTestDispatcher(t, DefaultLimits())

	res := run(t, d, "stat sub/notes.json")
	require.True(t, res.OK)
	assert.Equal(t, strings.Join([]string{
		"File: sub/notes.json",
		"Type: regular file",
		"Size: 7 bytes",
		"Permissions: -rw------- (0600)",
		"Modified: 2024-01-02 03:04:05",
		"Accessed: 2024-01-02 03:04:05",
		"Created: 2024-01-02 03:04:05",
	}, "\n"), res.Message)

	dir := run(t, d, "stat sub")
	assert.Contains(t, dir.Message, "Type: directory")
	assert.Contains(t, dir.Message, "Permissions: drwxr-xr-x (0755)")

	assert.Equal(t, CommandResult{false, "File does not exist: nope"}, run(t, d, "stat nope"))
	assert.Equal(t, CommandResult{false, "Usage: stat <filename>"}, run(t, d, "stat"))
}

func TestExecute_DiskUsage(t *testing.T) {
	d, _ := newTestDispatcher(t, DefaultLimits())

	tests := []struct {
		line     string
		expected CommandResult
	}{
		{"du", CommandResult{true, "49\t."}},
		{"du sub", CommandResult{true, "27\tsub"}},
		{"du -h sub/deep", CommandResult{true, "20B\tsub/deep"}},
		{"du hello.txt", CommandResult{true, "12\thello.txt"}},
		{"du emptydir", CommandResult{true, "0\temptydir"}},
		{"du missing", CommandResult{false, "Path does not exist: missing"}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.expected, run(t, d, tt.line))
		})
	}
}

func TestExecute_DiskUsage_HumanReadable(t *testing.T) {
	d, b := newTestDispatcher(t, DefaultLimits())
	b.CreateFile("/big/a", make([]byte, 1536), 0o644)

	assert.Equal(t, CommandResult{true, "1.5KB\tbig"}, run(t, d, "du -h big"))
	assert.Equal(t, CommandResult{true, "1536\tbig"}, run(t, d, "du big"))
}

func TestExecute_Cat(t *testing.T) {
	d, _ := newTestDispatcher(t, DefaultLimits())

	tests := []struct {
		line     string
		expected CommandResult
	}{
		{"cat hello.txt", CommandResult{true, "hello world\n"}},
		{"cat /sub/notes.json", CommandResult{true, `{"a":1}`}},
		{"cat empty.txt", CommandResult{true, "File is empty"}},
		{"cat sub", CommandResult{false, "sub is a directory, cannot display content"}},
		{"cat bin.dat", CommandResult{false, "bin.dat is a binary file, cannot display"}},
		{"cat missing", CommandResult{false, "File does not exist: missing"}},
		{"cat", CommandResult{false, "Usage: cat <filename>"}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.expected, run(t, d, tt.line))
		})
	}
}

func TestExecute_Cat_RespectsReadLimit(t *testing.T) {
	d, _ := newTestDispatcher(t, Limits{MaxReadSize: 5, ClassifySize: 1024})

	assert.Equal(t, CommandResult{true, "hello"}, run(t, d, "cat hello.txt"))
}

func TestExecute_BackendFailure(t *testing.T) {
	d, b := newTestDispatcher(t, DefaultLimits())
	b.SetError("/hello.txt", &storage.StatError{Path: "/hello.txt", Cause: storage.ErrPermission})

	assert.Equal(t, CommandResult{false, "Cannot stat hello.txt: permission denied"}, run(t, d, "cat hello.txt"))
}

func TestExecute_Hexdump(t *testing.T) {
	d, _ := newTestDispatcher(t, DefaultLimits())

	t.Run("whole file", func(t *testing.T) {
		res := run(t, d, "hexdump hello.txt")
		require.True(t, res.OK)
		lines := strings.Split(res.Message, "\n")
		require.Len(t, lines, 2)
		assert.True(t, strings.HasPrefix(lines[0], "00000000: 01101000 01100101 "))
		assert.True(t, strings.HasSuffix(lines[0], " hello wo"))
		assert.True(t, strings.HasPrefix(lines[1], "00000008: 01110010 "))
		assert.True(t, strings.HasSuffix(lines[1], " rld.    "))
	})

	t.Run("window", func(t *testing.T) {
		res := run(t, d, "hexdump -offset 8 -len 2 hello.txt")
		require.True(t, res.OK)
		assert.Equal(t, "00000008: 01110010 01101100 "+strings.Repeat(" ", 9*6)+" rl      ", res.Message)
	})

	tests := []struct {
		line     string
		expected CommandResult
	}{
		{"hexdump -offset 12 hello.txt", CommandResult{true, "No data to display (file empty or offset beyond file size)"}},
		{"hexdump empty.txt", CommandResult{true, "No data to display (file empty or offset beyond file size)"}},
		{"hexdump -offset 13 hello.txt", CommandResult{false, "Offset 13 exceeds file size of hello.txt"}},
		{"hexdump -offset 18446744073709551615 hello.txt", CommandResult{false, "Offset 18446744073709551615 exceeds file size of hello.txt"}},
		{"hexdump -offset abc hello.txt", CommandResult{false, "Invalid offset value: abc"}},
		{"hexdump -len 1x hello.txt", CommandResult{false, "Invalid length value: 1x"}},
		{"hexdump sub", CommandResult{false, "sub is a directory, cannot hexdump"}},
		{"hexdump missing", CommandResult{false, "File does not exist: missing"}},
		{"hexdump", CommandResult{false, "Usage: hexdump [-offset N] [-len N] <filename>"}},
		{"hexdump hello.txt -len", CommandResult{false, "Usage: hexdump [-offset N] [-len N] <filename>"}},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.Equal(t, tt.expected, run(t, d, tt.line))
		})
	}
}

func TestExecute_Hexdump_CapsWindow(t *testing.T) {
	d, _ := newTestDispatcher(t, Limits{MaxReadSize: 8, ClassifySize: 1024})

	res := run(t, d, "hexdump sub/deep/data.bin")
	require.True(t, res.OK)
	assert.Equal(t, 1, strings.Count(res.Message, "\n")+1)

	windowed := run(t, d, "hexdump -offset 4 -len 100 sub/deep/data.bin")
	require.True(t, windowed.OK)
	assert.Equal(t, 1, strings.Count(windowed.Message, "\n")+1)
	assert.True(t, strings.HasPrefix(windowed.Message, "00000004: "))
}

func TestExecute_Help(t *testing.T) {
	d, _ := newTestDispatcher(t, DefaultLimits())

	help := run(t, d, "help")
	assert.True(t, help.OK)
	for _, name := range []string{"ls", "cd", "pwd", "file", "stat", "du", "cat", "hexdump", "exit"} {
		assert.Contains(t, help.Message, name)
	}
	assert.Equal(t, help, run(t, d, "?"))
}
