package content

import (
	"path"
	"strings"
)

var mimeByExtension = map[string]string{
	"txt":  "text/plain",
	"cpp":  "text/x-c++src",
	"cc":   "text/x-c++src",
	"c":    "text/x-c++src",
	"h":    "text/x-c++hdr",
	"hpp":  "text/x-c++hdr",
	"py":   "text/x-python",
	"js":   "text/javascript",
	"html": "text/html",
	"css":  "text/css",
	"json": "application/json",
	"xml":  "application/xml",
	"pdf":  "application/pdf",
	"jpg":  "image/jpeg",
	"jpeg": "image/jpeg",
	"png":  "image/png",
	"gif":  "image/gif",
	"zip":  "application/zip",
	"tar":  "application/x-tar",
	"gz":   "application/gzip",
}

// MimeType guesses a MIME type from the extension of the last path segment.
// Returns "" when nothing is known, which callers treat as no extra information.
func MimeType(filename string) string {
	name := path.Base(filename)
	dot := strings.LastIndexByte(name, '.')
	if dot < 0 {
		return ""
	}
	return mimeByExtension[strings.ToLower(name[dot+1:])]
}
