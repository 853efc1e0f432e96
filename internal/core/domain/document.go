package domain

import "fmt"

// Document represents a single source document after text extraction.
// Content is immutable once extraction completes; the analysis pipeline
// never re-opens the source file.
type Document struct {
	// ID is the unique identifier, derived from the source filename.
	ID string

	// URI is the original location of the source file.
	URI string

	// Title is the human-readable title.
	Title string

	// Content is the full extracted text.
	Content string
}

// Chunk is a bounded span of a document's text, the unit of analysis.
// Chunk IDs are stable across a run: document ID plus sequence index.
type Chunk struct {
	// ID is the unique identifier in the form "<documentID>:<position>".
	ID string

	// DocumentID links to the owning Document.
	DocumentID string

	// Content is the text span.
	Content string

	// Position is the ordinal position within the document.
	Position int
}

// ChunkID builds the stable identifier for a chunk of the given document.
func ChunkID(documentID string, position int) string {
	return fmt.Sprintf("%s:%d", documentID, position)
}
