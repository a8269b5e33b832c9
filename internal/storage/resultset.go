// Package storage persists result sets and analysis reports as JSON files.
package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/henrygabriels/llm-literature-explorer/internal/domain"
)

// SaveResultSet writes the result set to path as pretty-printed JSON.
func SaveResultSet(path string, rs *domain.ResultSet) error {
	return writeJSON(path, rs)
}

// LoadResultSet reads a result set previously written by SaveResultSet.
func LoadResultSet(path string) (*domain.ResultSet, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read result set %s: %w", path, err)
	}
	var rs domain.ResultSet
	if err := json.Unmarshal(data, &rs); err != nil {
		return nil, fmt.Errorf("failed to parse result set %s: %w", path, err)
	}
	return &rs, nil
}

// SaveReport writes an analysis report to path as pretty-printed JSON.
func SaveReport(path string, report *domain.AnalysisReport) error {
	return writeJSON(path, report)
}

// AnalysisPath derives the report filename from the result set filename:
// results.json becomes results_analysis.json.
func AnalysisPath(resultPath string) string {
	ext := filepath.Ext(resultPath)
	base := strings.TrimSuffix(resultPath, ext)
	if ext == "" {
		ext = ".json"
	}
	return base + "_analysis" + ext
}

// writeJSON writes atomically: the data goes to a temp file in the target
// directory which is then renamed over the destination, so a crash mid-write
// cannot leave a truncated file behind.
func writeJSON(path string, v any) (err error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal %s: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file for %s: %w", path, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if _, err = tmp.Write(data); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file for %s: %w", path, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("failed to rename temp file to %s: %w", path, err)
	}
	return nil
}
