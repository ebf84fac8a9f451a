package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"
)

// exportEnvelope is what lands in the JSON report file: the summary plus
// the aggregates, frozen at export time.
type exportEnvelope struct {
	*RunSummary
	Stats  Stats        `json:"stats"`
	Suites []SuiteGroup `json:"suites"`
}

// Export writes the run summary as an indented JSON file into dir and
// returns the full path. The filename carries a timestamp so consecutive
// runs never clobber each other.
func Export(summary *RunSummary, dir string) (string, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create report directory: %w", err)
	}

	timestamp := time.Now().Format("20060102-150405")
	fullPath := filepath.Join(dir, fmt.Sprintf("algotest-report-%s.json", timestamp))

	data, err := json.MarshalIndent(exportEnvelope{
		RunSummary: summary,
		Stats:      summary.Stats(),
		Suites:     summary.BySuite(),
	}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal report to JSON: %w", err)
	}

	if err := os.WriteFile(fullPath, data, 0644); err != nil {
		return "", fmt.Errorf("failed to write report file: %w", err)
	}
	return fullPath, nil
}
