//go:build !linux && !darwin

package local

import (
	"os"
	"time"
)

func fileTimes(info os.FileInfo) (atime, ctime time.Time) {
	return info.ModTime(), info.ModTime()
}
