package uipath

import (
	"fmt"
	"io"
	"os"

	"github.com/btms-qa/uireport/internal/logger"
)

const (
	// ResultRowsSelector matches the candidate rows of a report page.
	ResultRowsSelector = "#execution-result tbody tr"

	cellSelector = "td"
	// MinCells is the number of cells a row needs to describe a test case.
	MinCells = 5
)

// Extractor turns report pages into TestCase records.
type Extractor struct {
	parser DocumentParser
}

// NewExtractor creates an Extractor. A nil parser falls back to GoqueryParser.
func NewExtractor(parser DocumentParser) *Extractor {
	if parser == nil {
		parser = GoqueryParser{}
	}

	return &Extractor{parser: parser}
}

// Extract reads one report page and returns its test cases in row order.
// Rows with fewer than MinCells cells are skipped with a warning, and a page without
// any result row yields no test case. Only read or parse failures are returned as errors.
func (e *Extractor) Extract(r io.Reader, folderLabel string) ([]TestCase, error) {
	doc, err := e.parser.Parse(r)
	if err != nil {
		return nil, err
	}

	rows := doc.Find(ResultRowsSelector)
	if len(rows) == 0 {
		logger.Warnf("No result rows found in %q", folderLabel)
		return nil, nil
	}

	testCases := make([]TestCase, 0, len(rows))
	for i, row := range rows {
		cells := row.Find(cellSelector)
		if len(cells) < MinCells {
			logger.Warnf("Skipping row %d in %q: expected at least %d cells, got %d",
				i+1, folderLabel, MinCells, len(cells))
			continue
		}

		testCases = append(testCases, NewTestCase(
			cells[0].Text(),
			cells[1].Text(),
			cells[2].Text(),
			cells[3].Text(),
			cells[4].Text(),
		))
	}

	return testCases, nil
}

// ExtractFile opens the report page at filePath and extracts its test cases.
func (e *Extractor) ExtractFile(filePath, folderLabel string) ([]TestCase, error) {
	file, err := os.Open(filePath) //nolint:gosec
	if err != nil {
		return nil, fmt.Errorf("can't open file %s: %w", filePath, err)
	}

	defer func() {
		if err := file.Close(); err != nil {
			logger.Errorf("can't close file %s: %v", filePath, err)
		}
	}()

	testCases, err := e.Extract(file, folderLabel)
	if err != nil {
		return nil, fmt.Errorf("can't extract test cases from %s: %w", filePath, err)
	}

	return testCases, nil
}
