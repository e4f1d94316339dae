// Package content classifies byte buffers and renders them for display.
package content

import "bytes"

// textSampleSize is the number of leading bytes inspected by IsText.
const textSampleSize = 512

// binaryThresholdPercent is the share of non-printable units at which content is binary.
const binaryThresholdPercent = 30

// IsText reports whether content looks like text.
// Only the first 512 bytes are inspected. Any NUL byte makes the content binary.
// Otherwise ASCII control bytes (except tab, newline and carriage return),
// invalid UTF-8 lead bytes and malformed or truncated multi-byte sequences each
// count as one non-printable unit, and the content is binary once they reach 30%.
// Empty content is text.
func IsText(content []byte) bool {
	if len(content) == 0 {
		return true
	}

	window := content[:min(len(content), textSampleSize)]
	if bytes.IndexByte(window, 0) >= 0 {
		return false
	}

	total := len(window)
	nonPrintable := 0
	for i := 0; i < total; {
		c := window[i]

		if c < 0x20 {
			if c != '\t' && c != '\n' && c != '\r' {
				nonPrintable++
			}
			i++
			continue
		}

		if c < 0x80 {
			i++
			continue
		}

		width := sequenceWidth(c)
		if width == 0 {
			nonPrintable++
			i++
			continue
		}

		if !validContinuation(window, i, width) {
			nonPrintable++
		}
		i += width
	}

	return nonPrintable*100/total < binaryThresholdPercent
}

// sequenceWidth returns the UTF-8 sequence length announced by a lead byte, or 0 if invalid.
func sequenceWidth(lead byte) int {
	switch {
	case lead&0xE0 == 0xC0:
		return 2
	case lead&0xF0 == 0xE0:
		return 3
	case lead&0xF8 == 0xF0:
		return 4
	default:
		return 0
	}
}

// validContinuation checks that width-1 continuation bytes follow start within buf.
func validContinuation(buf []byte, start, width int) bool {
	for j := 1; j < width; j++ {
		if start+j >= len(buf) {
			return false
		}
		if buf[start+j]&0xC0 != 0x80 {
			return false
		}
	}
	return true
}
