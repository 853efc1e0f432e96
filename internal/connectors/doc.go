// Package connectors contains input source implementations.
//
// A connector collects raw documents from a source (a directory tree,
// in the filesystem case) and can report when the source changes. Each
// connector lives in its own subpackage and implements driven.Connector.
package connectors
