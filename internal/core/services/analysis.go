package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/ambareesh69/documentexplore/internal/artifact"
	"github.com/ambareesh69/documentexplore/internal/chunker"
	"github.com/ambareesh69/documentexplore/internal/clusterer"
	"github.com/ambareesh69/documentexplore/internal/core/domain"
	"github.com/ambareesh69/documentexplore/internal/core/ports/driven"
	"github.com/ambareesh69/documentexplore/internal/core/ports/driving"
	"github.com/ambareesh69/documentexplore/internal/logger"
	"github.com/ambareesh69/documentexplore/internal/namer"
	"github.com/ambareesh69/documentexplore/internal/vectorizer"
)

// Ensure AnalysisOrchestrator implements the interface.
var _ driving.Analyzer = (*AnalysisOrchestrator)(nil)

// ExtractorRegistry resolves extractors by MIME type.
type ExtractorRegistry interface {
	ForMIME(mime string) (driven.Extractor, error)
	Has(mime string) bool
}

// AnalysisOrchestrator coordinates the full analysis pipeline.
type AnalysisOrchestrator struct {
	connector  driven.Connector
	registry   ExtractorRegistry
	corpus     driven.CorpusStore
	artifacts  driven.ArtifactStore
	splitter   *chunker.Splitter
	vectorizer *vectorizer.TFIDF
	selector   *clusterer.Selector
	namer      *namer.Namer
	meta       artifact.Metadata
	overrides  map[int]string

	// Status tracking
	mu     sync.RWMutex
	status driving.AnalysisStatus
}

// NewAnalysisOrchestrator creates an orchestrator over the given stages.
// The connector may be nil when only AnalyzeDocuments is used.
func NewAnalysisOrchestrator(
	connector driven.Connector,
	registry ExtractorRegistry,
	corpus driven.CorpusStore,
	artifacts driven.ArtifactStore,
	splitter *chunker.Splitter,
	tfidf *vectorizer.TFIDF,
	selector *clusterer.Selector,
	nm *namer.Namer,
	meta artifact.Metadata,
) *AnalysisOrchestrator {
	return &AnalysisOrchestrator{
		connector:  connector,
		registry:   registry,
		corpus:     corpus,
		artifacts:  artifacts,
		splitter:   splitter,
		vectorizer: tfidf,
		selector:   selector,
		namer:      nm,
		meta:       meta,
	}
}

// SetNameOverrides installs manual cluster names, applied by cluster ID
// after automatic naming and before the artifact is written.
func (o *AnalysisOrchestrator) SetNameOverrides(overrides map[int]string) {
	o.overrides = overrides
}

// Analyze collects documents from the connector and runs the pipeline.
func (o *AnalysisOrchestrator) Analyze(ctx context.Context) (*domain.Artifact, error) {
	if o.connector == nil {
		return nil, fmt.Errorf("%w: no input source configured", domain.ErrInvalidConfig)
	}

	if err := o.begin(); err != nil {
		return nil, err
	}
	defer o.finish()

	// 1. Collect raw documents from the source.
	raws, err := o.connector.Scan(ctx)
	if err != nil {
		return nil, fmt.Errorf("scan source: %w", err)
	}

	// 2. Extract text. Unsupported or unreadable files are skipped, not
	// fatal; a run over a mixed directory should still produce output.
	docs := make([]domain.Document, 0, len(raws))
	for i := range raws {
		raw := &raws[i]
		extractor, err := o.registry.ForMIME(raw.MIMEType)
		if err != nil {
			logger.Warn("skipping %s: %v", raw.URI, err)
			continue
		}
		doc, err := extractor.Extract(ctx, raw)
		if err != nil {
			logger.Warn("skipping %s: %v", raw.URI, err)
			continue
		}
		docs = append(docs, *doc)
	}

	return o.run(ctx, docs)
}

// AnalyzeDocuments runs the pipeline over already-extracted documents.
func (o *AnalysisOrchestrator) AnalyzeDocuments(ctx context.Context, docs []domain.Document) (*domain.Artifact, error) {
	if err := o.begin(); err != nil {
		return nil, err
	}
	defer o.finish()

	return o.run(ctx, docs)
}

// Status returns the status of the most recent run.
func (o *AnalysisOrchestrator) Status() driving.AnalysisStatus {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.status
}

// run executes the pipeline stages over extracted documents. The
// artifact is written only when every stage succeeds.
func (o *AnalysisOrchestrator) run(ctx context.Context, docs []domain.Document) (*domain.Artifact, error) {
	// 3. Store documents and chunks. Duplicate filenames from different
	// directories get a numeric suffix so chunk IDs never collide.
	if err := o.corpus.Clear(ctx); err != nil {
		return nil, fmt.Errorf("clear corpus: %w", err)
	}

	seen := make(map[string]int)
	for i := range docs {
		doc := docs[i]
		if n := seen[doc.ID]; n > 0 {
			doc.ID = fmt.Sprintf("%s-%d", doc.ID, n+1)
		}
		seen[docs[i].ID]++

		if err := o.corpus.SaveDocument(ctx, &doc); err != nil {
			return nil, fmt.Errorf("save document %s: %w", doc.ID, err)
		}
		chunks := o.splitter.Split(&doc)
		if err := o.corpus.SaveChunks(ctx, chunks); err != nil {
			return nil, fmt.Errorf("save chunks for %s: %w", doc.ID, err)
		}
	}

	chunks, err := o.corpus.ListChunks(ctx)
	if err != nil {
		return nil, fmt.Errorf("list chunks: %w", err)
	}
	o.track(func(s *driving.AnalysisStatus) {
		s.DocumentsProcessed = len(docs)
		s.ChunksProcessed = len(chunks)
	})
	if len(chunks) == 0 {
		return nil, fmt.Errorf("%w: no chunks produced from %d documents", domain.ErrEmptyCorpus, len(docs))
	}
	logger.Info("analyzing %d chunks from %d documents", len(chunks), len(docs))

	// 4. Vectorize the chunk corpus.
	vocab, chunkVectors, err := o.vectorizer.Vectorize(chunks)
	if err != nil {
		return nil, fmt.Errorf("vectorize: %w", err)
	}
	logger.Debug("vocabulary has %d terms", vocab.Size())

	vectors := make([][]float64, len(chunkVectors))
	for i := range chunkVectors {
		vectors[i] = chunkVectors[i].Weights
	}

	// 5. Pick the cluster count and cluster in one pass; the winning run
	// is reused rather than recomputed.
	selection, err := o.selector.Select(ctx, vectors)
	if err != nil {
		return nil, fmt.Errorf("select cluster count: %w", err)
	}
	if !selection.Result.Converged {
		logger.Warn("clustering stopped at the iteration limit before converging; using the last assignment")
	}
	o.track(func(s *driving.AnalysisStatus) {
		s.SelectedK = selection.K
		s.Converged = selection.Result.Converged
	})

	// 6. Name the clusters.
	names := o.namer.Name(vocab, chunkVectors, selection.Result.Labels, selection.K)

	// 7. Assemble and persist the artifact.
	result, err := artifact.Build(chunks, selection.Result.Labels, names, selection.K, o.meta)
	if err != nil {
		return nil, fmt.Errorf("build artifact: %w", err)
	}
	artifact.ApplyOverrides(result, o.overrides)
	if err := o.artifacts.Write(ctx, result); err != nil {
		return nil, fmt.Errorf("write artifact: %w", err)
	}

	logger.Info("wrote artifact with %d clusters to %s", selection.K, o.artifacts.Path())
	return result, nil
}

// begin marks a run as started, refusing overlapping runs.
func (o *AnalysisOrchestrator) begin() error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if o.status.Running {
		return domain.ErrAnalysisInProgress
	}
	o.status = driving.AnalysisStatus{
		RunID:   uuid.NewString(),
		Running: true,
	}
	return nil
}

// finish marks the current run as done.
func (o *AnalysisOrchestrator) finish() {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.status.Running = false
}

// track applies a mutation to the current status under lock.
func (o *AnalysisOrchestrator) track(f func(*driving.AnalysisStatus)) {
	o.mu.Lock()
	defer o.mu.Unlock()
	f(&o.status)
}
