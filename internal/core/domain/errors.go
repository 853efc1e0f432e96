package domain

import "errors"

// Domain errors represent analysis pipeline failures.
// These are distinct from infrastructure errors.
var (
	// ErrInvalidConfig indicates invalid chunking or clustering parameters.
	// The run aborts before any work is done.
	ErrInvalidConfig = errors.New("invalid configuration")

	// ErrEmptyCorpus indicates no chunks were produced from the input.
	ErrEmptyCorpus = errors.New("empty corpus")

	// ErrInvalidK indicates clustering was invoked with an out-of-range
	// cluster count. The selector clamps k, so this is a defensive guard.
	ErrInvalidK = errors.New("invalid cluster count")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnsupportedType indicates an unknown document format.
	ErrUnsupportedType = errors.New("unsupported type")

	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrAnalysisInProgress indicates an analysis run is already active.
	ErrAnalysisInProgress = errors.New("analysis in progress")
)
