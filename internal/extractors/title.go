package extractors

import (
	"path/filepath"
	"strings"
)

// TitleFromURI derives a human-readable title from a file URI by dropping
// the extension and replacing separators with spaces.
func TitleFromURI(uri string) string {
	filename := filepath.Base(uri)

	ext := filepath.Ext(filename)
	if ext != "" {
		filename = strings.TrimSuffix(filename, ext)
	}

	filename = strings.ReplaceAll(filename, "_", " ")
	filename = strings.ReplaceAll(filename, "-", " ")
	return filename
}

// DocumentID derives the stable document identifier from a file URI.
// Document identity follows the source filename.
func DocumentID(uri string) string {
	return filepath.Base(uri)
}
