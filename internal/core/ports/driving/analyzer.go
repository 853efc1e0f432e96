package driving

import (
	"context"

	"github.com/ambareesh69/documentexplore/internal/core/domain"
)

// Analyzer coordinates the full analysis pipeline: extraction, chunking,
// vectorization, cluster-count selection, clustering, topic naming, and
// artifact persistence.
type Analyzer interface {
	// Analyze collects documents from the configured source and runs the
	// pipeline. The artifact is written only on success.
	Analyze(ctx context.Context) (*domain.Artifact, error)

	// AnalyzeDocuments runs the pipeline over already-extracted documents.
	AnalyzeDocuments(ctx context.Context, docs []domain.Document) (*domain.Artifact, error)

	// Status returns the status of the most recent run.
	Status() AnalysisStatus
}

// AnalysisStatus represents the state of an analysis run.
type AnalysisStatus struct {
	// RunID uniquely identifies the run.
	RunID string

	// Running indicates if analysis is currently in progress.
	Running bool

	// DocumentsProcessed is the count of documents ingested.
	DocumentsProcessed int

	// ChunksProcessed is the count of chunks produced.
	ChunksProcessed int

	// SelectedK is the chosen cluster count, 0 until selection completes.
	SelectedK int

	// Converged reports whether clustering converged before the
	// iteration limit. An unconverged result is still usable.
	Converged bool
}
