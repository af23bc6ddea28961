package report

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// WriteSummaryFile exports the summary as YAML at the given path.
func WriteSummaryFile(filePath string, summary Summary) error {
	data, err := yaml.Marshal(summary)
	if err != nil {
		return fmt.Errorf("can't encode summary: %w", err)
	}

	if err := os.WriteFile(filePath, data, 0o644); err != nil { //nolint:gosec
		return fmt.Errorf("can't write summary file %s: %w", filePath, err)
	}

	return nil
}
