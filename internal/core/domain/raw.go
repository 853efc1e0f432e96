package domain

// RawDocument represents opaque bytes collected from the input folder.
// It is the connector's output before text extraction.
type RawDocument struct {
	// SourceID identifies the input folder that produced this document.
	SourceID string

	// URI is the original location (file path).
	URI string

	// MIMEType is the content type (e.g., "application/pdf").
	MIMEType string

	// Content is the raw bytes.
	Content []byte

	// Metadata contains connector-specific key-value pairs.
	Metadata map[string]any
}
