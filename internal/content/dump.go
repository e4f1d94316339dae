package content

import (
	"fmt"
	"strings"
)

// BytesPerLine is the number of bytes rendered on each dump line.
const BytesPerLine = 8

// ByteWindow is a bounded slice of a file together with its absolute offset.
type ByteWindow struct {
	Offset uint64
	Data   []byte
}

// RenderDump renders a window as a binary-annotated dump.
// Each line starts with the absolute offset in 8-digit hex, then every byte as
// 8 binary digits, then an ASCII panel. Short lines are padded so that all
// lines have the same width.
func RenderDump(window ByteWindow) string {
	var sb strings.Builder
	data := window.Data

	for lineStart := 0; lineStart < len(data); lineStart += BytesPerLine {
		fmt.Fprintf(&sb, "%08x: ", window.Offset+uint64(lineStart))

		var ascii strings.Builder
		for i := 0; i < BytesPerLine; i++ {
			idx := lineStart + i
			if idx >= len(data) {
				sb.WriteString("         ")
				ascii.WriteByte(' ')
				continue
			}

			b := data[idx]
			fmt.Fprintf(&sb, "%08b ", b)
			if isPrintable(b) {
				ascii.WriteByte(b)
			} else {
				ascii.WriteByte('.')
			}
		}

		sb.WriteByte(' ')
		sb.WriteString(ascii.String())
		sb.WriteByte('\n')
	}

	return sb.String()
}

func isPrintable(b byte) bool {
	return b >= 0x20 && b <= 0x7E
}
