// Package cli wires the analysis pipeline to its command-line surface.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/ambareesh69/documentexplore/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

var (
	verbose    bool
	configPath string
)

var rootCmd = &cobra.Command{
	Use:   "documentexplore",
	Short: "Cluster documents into topics for visual exploration",
	Long: `documentexplore chunks a directory of documents, groups the chunks
into topical clusters, names each cluster after its most distinguishing
terms, and writes a JSON artifact for the visualization layer.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "docexplore.toml", "path to the configuration file")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion overrides the reported version.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}
