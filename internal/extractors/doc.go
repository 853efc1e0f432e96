// Package extractors provides text extraction from raw document bytes.
// Each format (DOCX, PDF, plain text) has its own extractor; the registry
// selects one by MIME type and priority. The analysis core treats
// extraction as an external collaborator producing raw text per document.
package extractors
