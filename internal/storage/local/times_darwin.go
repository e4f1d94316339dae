//go:build darwin

package local

import (
	"os"
	"syscall"
	"time"
)

// fileTimes returns the access and status-change times of info, falling back to mtime.
func fileTimes(info os.FileInfo) (atime, ctime time.Time) {
	st, ok := info.Sys().(*syscall.Stat_t)
	if !ok {
		return info.ModTime(), info.ModTime()
	}
	return time.Unix(st.Atimespec.Unix()), time.Unix(st.Ctimespec.Unix())
}
