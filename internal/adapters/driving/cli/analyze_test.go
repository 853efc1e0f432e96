package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ambareesh69/documentexplore/internal/core/domain"
)

func TestAnalyzeCmd_Use(t *testing.T) {
	assert.Equal(t, "analyze [input-dir]", analyzeCmd.Use)
}

func TestAnalyzeCmd_Short(t *testing.T) {
	assert.Contains(t, analyzeCmd.Short, "Analyze")
}

func TestAnalyzeCmd_Long(t *testing.T) {
	assert.Contains(t, analyzeCmd.Long, "chunks")
	assert.Contains(t, analyzeCmd.Long, "identical artifact")
}

// writeCorpus lays out two pairs of single-topic files.
func writeCorpus(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	kernel := "kernel scheduler preempts threads while managing memory pages"
	baking := "knead dough made from flour then bake bread inside a hot oven"
	files := map[string]string{
		"kernel1.txt": kernel,
		"kernel2.txt": kernel,
		"baking1.txt": baking,
		"baking2.txt": baking,
	}
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func runAnalyzeCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	// Flag values stick to the package-level command between executions.
	analyzeCmd.Flags().Visit(func(f *pflag.Flag) {
		require.NoError(t, f.Value.Set(f.DefValue))
		f.Changed = false
	})

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(append([]string{"analyze"}, args...))
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()
	return buf.String(), err
}

func TestAnalyzeCmd_EndToEnd(t *testing.T) {
	input := writeCorpus(t)
	output := filepath.Join(t.TempDir(), "artifact.json")

	out, err := runAnalyzeCmd(t, "--input", input, "--output", output)
	require.NoError(t, err)

	assert.Contains(t, out, "Analyzed 4 documents (4 chunks) into 2 clusters")
	assert.Contains(t, out, "Artifact written to "+output)

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	var a domain.Artifact
	require.NoError(t, json.Unmarshal(data, &a))
	assert.Len(t, a.Chunks, 4)
	assert.Len(t, a.Clusters, 2)
	assert.Equal(t, "Document Insights", a.Title)
}

func TestAnalyzeCmd_ClusterNameOverrides(t *testing.T) {
	input := writeCorpus(t)
	dir := t.TempDir()
	output := filepath.Join(dir, "artifact.json")

	names := filepath.Join(dir, "names.json")
	require.NoError(t, os.WriteFile(names, []byte(`{"0": "Topic Zero"}`), 0o644))

	_, err := runAnalyzeCmd(t, "--input", input, "--output", output, "--cluster-names", names)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	var a domain.Artifact
	require.NoError(t, json.Unmarshal(data, &a))
	assert.Equal(t, "Topic Zero", a.Clusters[0].Name)
}

func TestAnalyzeCmd_MissingInput(t *testing.T) {
	output := filepath.Join(t.TempDir(), "artifact.json")

	_, err := runAnalyzeCmd(t, "--input", "/does/not/exist", "--output", output)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestAnalyzeCmd_InvalidChunkSize(t *testing.T) {
	input := writeCorpus(t)
	output := filepath.Join(t.TempDir(), "artifact.json")

	_, err := runAnalyzeCmd(t, "--input", input, "--output", output, "--chunk-size", "-5")
	assert.ErrorIs(t, err, domain.ErrInvalidConfig)
}

func TestAnalyzeCmd_EmptyDirectory(t *testing.T) {
	input := t.TempDir()
	output := filepath.Join(t.TempDir(), "artifact.json")

	_, err := runAnalyzeCmd(t, "--input", input, "--output", output)
	assert.ErrorIs(t, err, domain.ErrEmptyCorpus)
}

func TestAnalyzeCmd_PositionalInput(t *testing.T) {
	input := writeCorpus(t)
	output := filepath.Join(t.TempDir(), "artifact.json")

	_, err := runAnalyzeCmd(t, input, "--output", output)
	require.NoError(t, err)

	_, err = os.Stat(output)
	assert.NoError(t, err)
}

func TestAnalyzeCmd_ConfigFile(t *testing.T) {
	input := writeCorpus(t)
	dir := t.TempDir()
	output := filepath.Join(dir, "artifact.json")

	cfgFile := filepath.Join(dir, "docexplore.toml")
	cfgBody := "[artifact]\ntitle = \"From Config\"\noutput = \"" + output + "\"\n"
	require.NoError(t, os.WriteFile(cfgFile, []byte(cfgBody), 0o644))

	oldConfig := configPath
	configPath = cfgFile
	defer func() { configPath = oldConfig }()

	_, err := runAnalyzeCmd(t, "--input", input)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)

	var a domain.Artifact
	require.NoError(t, json.Unmarshal(data, &a))
	assert.Equal(t, "From Config", a.Title)
}
