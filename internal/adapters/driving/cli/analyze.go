package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/ambareesh69/documentexplore/internal/adapters/driven/storage/memory"
	"github.com/ambareesh69/documentexplore/internal/artifact"
	"github.com/ambareesh69/documentexplore/internal/chunker"
	"github.com/ambareesh69/documentexplore/internal/clusterer"
	"github.com/ambareesh69/documentexplore/internal/config"
	"github.com/ambareesh69/documentexplore/internal/connectors/filesystem"
	"github.com/ambareesh69/documentexplore/internal/core/domain"
	"github.com/ambareesh69/documentexplore/internal/core/services"
	"github.com/ambareesh69/documentexplore/internal/extractors"
	"github.com/ambareesh69/documentexplore/internal/extractors/docx"
	"github.com/ambareesh69/documentexplore/internal/extractors/pdf"
	"github.com/ambareesh69/documentexplore/internal/extractors/plaintext"
	"github.com/ambareesh69/documentexplore/internal/logger"
	"github.com/ambareesh69/documentexplore/internal/namer"
	"github.com/ambareesh69/documentexplore/internal/vectorizer"
)

var (
	analyzeInput        string
	analyzeOutput       string
	analyzeChunkSize    int
	analyzeChunkOverlap int
	analyzeKMin         int
	analyzeKMax         int
	analyzeSeed         int64
	analyzeMaxIter      int
	analyzeTopN         int
	analyzeTitle        string
	analyzeDescription  string
	analyzeClusterNames string
	analyzeWatch        bool
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [input-dir]",
	Args:  cobra.MaximumNArgs(1),
	Short: "Analyze a directory of documents and write the artifact",
	Long: `Scans the input directory for supported documents (.txt, .md, .pdf,
.docx), splits them into overlapping chunks, clusters the chunks by
topic, and writes the exploration artifact as JSON.

Identical input and configuration always produce an identical artifact.`,
	RunE: runAnalyze,
}

func init() {
	analyzeCmd.Flags().StringVarP(&analyzeInput, "input", "i", ".", "directory to analyze")
	analyzeCmd.Flags().StringVarP(&analyzeOutput, "output", "o", "", "artifact output path")
	analyzeCmd.Flags().IntVar(&analyzeChunkSize, "chunk-size", 0, "chunk size in characters")
	analyzeCmd.Flags().IntVar(&analyzeChunkOverlap, "chunk-overlap", -1, "overlap between consecutive chunks")
	analyzeCmd.Flags().IntVar(&analyzeKMin, "k-min", 0, "minimum cluster count to consider")
	analyzeCmd.Flags().IntVar(&analyzeKMax, "k-max", 0, "maximum cluster count to consider")
	analyzeCmd.Flags().Int64Var(&analyzeSeed, "seed", 0, "clustering seed")
	analyzeCmd.Flags().IntVar(&analyzeMaxIter, "max-iterations", 0, "k-means iteration budget")
	analyzeCmd.Flags().IntVar(&analyzeTopN, "top-n", 0, "distinguishing terms per cluster name")
	analyzeCmd.Flags().StringVar(&analyzeTitle, "title", "", "artifact title")
	analyzeCmd.Flags().StringVar(&analyzeDescription, "description", "", "artifact description")
	analyzeCmd.Flags().StringVar(&analyzeClusterNames, "cluster-names", "", "JSON file with manual cluster names")
	analyzeCmd.Flags().BoolVarP(&analyzeWatch, "watch", "w", false, "re-analyze when the input directory changes")

	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		analyzeInput = args[0]
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	applyAnalyzeFlags(cmd, &cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}

	overrides, err := artifact.LoadOverrides(analyzeClusterNames)
	if err != nil {
		return err
	}

	analyzer, connector, err := buildAnalyzer(cfg, analyzeInput)
	if err != nil {
		return err
	}
	defer connector.Close()
	analyzer.SetNameOverrides(overrides)

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	result, err := analyzer.Analyze(ctx)
	if err != nil {
		return fmt.Errorf("analysis failed: %w", err)
	}
	printSummary(cmd, analyzer, result, cfg.Artifact.Output)

	if !analyzeWatch {
		return nil
	}

	cmd.Println("Watching for changes. Press Ctrl+C to stop.")
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	err = connector.Watch(ctx, func() {
		cmd.Println("Change detected, re-analyzing...")
		result, err := analyzer.Analyze(context.Background())
		if err != nil {
			logger.Warn("re-analysis failed: %v", err)
			return
		}
		printSummary(cmd, analyzer, result, cfg.Artifact.Output)
	})
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}

// applyAnalyzeFlags overlays explicitly set flags onto the file config.
func applyAnalyzeFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("output") {
		cfg.Artifact.Output = analyzeOutput
	}
	if flags.Changed("chunk-size") {
		cfg.Chunking.Size = analyzeChunkSize
	}
	if flags.Changed("chunk-overlap") {
		cfg.Chunking.Overlap = analyzeChunkOverlap
	}
	if flags.Changed("k-min") {
		cfg.Clustering.KMin = analyzeKMin
	}
	if flags.Changed("k-max") {
		cfg.Clustering.KMax = analyzeKMax
	}
	if flags.Changed("seed") {
		cfg.Clustering.Seed = analyzeSeed
	}
	if flags.Changed("max-iterations") {
		cfg.Clustering.MaxIterations = analyzeMaxIter
	}
	if flags.Changed("top-n") {
		cfg.Naming.TopN = analyzeTopN
	}
	if flags.Changed("title") {
		cfg.Artifact.Title = analyzeTitle
	}
	if flags.Changed("description") {
		cfg.Artifact.Description = analyzeDescription
	}
}

// buildAnalyzer assembles the pipeline from validated configuration.
func buildAnalyzer(cfg config.Config, inputDir string) (*services.AnalysisOrchestrator, *filesystem.Connector, error) {
	connector, err := filesystem.New(inputDir)
	if err != nil {
		return nil, nil, err
	}

	splitter, err := chunker.New(cfg.Chunking.Size, cfg.Chunking.Overlap)
	if err != nil {
		return nil, nil, err
	}

	selector, err := clusterer.NewSelector(
		cfg.Clustering.KMin,
		cfg.Clustering.KMax,
		cfg.Clustering.Seed,
		clusterer.NewKMeans(cfg.Clustering.MaxIterations),
		nil,
	)
	if err != nil {
		return nil, nil, err
	}

	registry := extractors.NewRegistry()
	registry.Register(plaintext.New())
	registry.Register(pdf.New())
	registry.Register(docx.New())

	orchestrator := services.NewAnalysisOrchestrator(
		connector,
		registry,
		memory.NewCorpusStore(),
		artifact.NewWriter(cfg.Artifact.Output),
		splitter,
		vectorizer.New(),
		selector,
		namer.New(
			namer.WithTopN(cfg.Naming.TopN),
			namer.WithSeparator(cfg.Naming.Separator),
		),
		artifact.Metadata{
			Title:         cfg.Artifact.Title,
			Description:   cfg.Artifact.Description,
			Similarity:    cfg.Artifact.Similarity,
			CharsPerPixel: cfg.Artifact.CharsPerPixel,
		},
	)
	return orchestrator, connector, nil
}

// printSummary reports the run outcome on the command's output stream.
func printSummary(cmd *cobra.Command, analyzer *services.AnalysisOrchestrator, result *domain.Artifact, output string) {
	status := analyzer.Status()
	cmd.Printf("Analyzed %d documents (%d chunks) into %d clusters:\n",
		status.DocumentsProcessed, status.ChunksProcessed, len(result.Clusters))
	for _, c := range result.Clusters {
		cmd.Printf("  %2d  %-40s %d chunks\n", c.ID, c.Name, c.ChunkCount)
	}
	if !status.Converged {
		cmd.Println("Note: clustering hit the iteration limit before converging.")
	}
	cmd.Printf("Artifact written to %s\n", output)
}
