// Package driven provides interfaces for infrastructure adapters
// (secondary/outbound ports): document collection, text extraction,
// corpus storage, and artifact persistence.
package driven
