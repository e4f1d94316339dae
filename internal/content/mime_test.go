package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMimeType(t *testing.T) {
	tests := []struct {
		filename string
		expected string
	}{
		{"notes.txt", "text/plain"},
		{"NOTES.TXT", "text/plain"},
		{"main.cc", "text/x-c++src"},
		{"main.c", "text/x-c++src"},
		{"util.hpp", "text/x-c++hdr"},
		{"photo.JPeG", "image/jpeg"},
		{"archive.tar.gz", "application/gzip"},
		{"/docs/v1.2/readme", ""},
		{"Makefile", ""},
		{"data.bin", ""},
		{"trailing.", ""},
	}

	for _, tt := range tests {
		t.Run(tt.filename, func(t *testing.T) {
			assert.Equal(t, tt.expected, MimeType(tt.filename))
		})
	}
}
