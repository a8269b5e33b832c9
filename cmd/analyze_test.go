package cmd

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/henrygabriels/llm-literature-explorer/internal/domain"
	"github.com/henrygabriels/llm-literature-explorer/internal/storage"
)

func writeFixtureResultSet(t *testing.T, dir string) string {
	t.Helper()
	path := filepath.Join(dir, "results.json")
	rs := &domain.ResultSet{
		Queries:     []string{"ai storytelling"},
		Page:        1,
		PerPage:     30,
		RetrievedAt: time.Date(2024, 5, 10, 9, 30, 0, 0, time.UTC),
		Repositories: []domain.Repository{
			{ID: 1, Name: "storygen", Language: "Go", StargazersCount: 5},
			{ID: 2, Name: "poem-gpt", Language: "Python", StargazersCount: 15},
			{ID: 3, Name: "litcorpus", StargazersCount: 25},
		},
	}
	require.NoError(t, storage.SaveResultSet(path, rs))
	return path
}

func TestAnalyzeCommand(t *testing.T) {
	t.Run("writes the report for a saved result set", func(t *testing.T) {
		dir := t.TempDir()
		input := writeFixtureResultSet(t, dir)
		output := filepath.Join(dir, "report.json")

		rootCmd.SetArgs([]string{"analyze", "--input", input, "--output", output, "--verbose"})
		require.NoError(t, rootCmd.Execute())

		data, err := os.ReadFile(output)
		require.NoError(t, err)
		assert.Contains(t, string(data), `"total_count": 3`)
		assert.Contains(t, string(data), `"unknown"`)
	})

	t.Run("median flag skips the report file", func(t *testing.T) {
		dir := t.TempDir()
		input := writeFixtureResultSet(t, dir)
		output := filepath.Join(dir, "report.json")

		rootCmd.SetArgs([]string{"analyze", "--input", input, "--output", output, "--median"})
		require.NoError(t, rootCmd.Execute())

		_, err := os.Stat(output)
		assert.True(t, os.IsNotExist(err), "median-only mode must not write a report")
	})
}
