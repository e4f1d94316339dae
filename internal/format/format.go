// Package format renders sizes, permission bits and timestamps for display.
package format

import (
	"fmt"
	"io/fs"
	"strconv"
	"time"
)

// TimeLayout is the layout used for every timestamp shown to the user.
const TimeLayout = "2006-01-02 15:04:05"

var sizeUnits = []string{"B", "KB", "MB", "GB", "TB"}

// Size renders a byte count. Human-readable sizes divide by 1024 up to TB;
// bytes are printed as an integer, larger units with one fractional digit.
func Size(bytes int64, humanReadable bool) string {
	if !humanReadable {
		return strconv.FormatInt(bytes, 10)
	}

	value := float64(bytes)
	unit := 0
	for value >= 1024 && unit < len(sizeUnits)-1 {
		value /= 1024
		unit++
	}

	if unit == 0 {
		return fmt.Sprintf("%d%s", bytes, sizeUnits[unit])
	}
	return fmt.Sprintf("%.1f%s", value, sizeUnits[unit])
}

// Permissions renders mode as a 10 character ls-style string, e.g. "drwxr-xr-x".
func Permissions(mode fs.FileMode) string {
	perm := []byte("----------")
	perm[0] = typeGlyph(mode)

	const rwx = "rwx"
	for i := 0; i < 9; i++ {
		if mode&(1<<uint(8-i)) != 0 {
			perm[i+1] = rwx[i%3]
		}
	}
	return string(perm)
}

// Octal renders the permission bits with a leading zero, e.g. "0644".
func Octal(mode fs.FileMode) string {
	return fmt.Sprintf("0%o", mode.Perm())
}

// Time renders t in local time using TimeLayout.
func Time(t time.Time) string {
	return t.Local().Format(TimeLayout)
}

func typeGlyph(mode fs.FileMode) byte {
	switch {
	case mode.IsDir():
		return 'd'
	case mode&fs.ModeSymlink != 0:
		return 'l'
	case mode&fs.ModeCharDevice != 0:
		return 'c'
	case mode&fs.ModeDevice != 0:
		return 'b'
	case mode&fs.ModeNamedPipe != 0:
		return 'p'
	case mode&fs.ModeSocket != 0:
		return 's'
	default:
		return '-'
	}
}
