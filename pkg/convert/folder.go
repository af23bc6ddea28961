package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/btms-qa/uireport/internal/logger"
	"github.com/btms-qa/uireport/pkg/report"
	"github.com/btms-qa/uireport/pkg/uipath"
)

// ProcessFolder converts the report pages found directly inside folderPath.
// A file that cannot be read or parsed is logged and left out. The JUnit report is
// written (and overwritten) only when at least one test case was extracted.
// Errors never escape: they are logged and recorded in the returned FolderReport.
func (c *Converter) ProcessFolder(folderPath, folderLabel string) report.FolderReport {
	folderReport := report.FolderReport{
		Label: folderLabel,
		Path:  folderPath,
	}

	entries, err := os.ReadDir(folderPath)
	if err != nil {
		logger.Errorf("Can't list folder %s: %v", folderPath, err)
		return folderReport.WithError(fmt.Errorf("can't list folder %s: %w", folderPath, err))
	}

	var testCases []uipath.TestCase
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), htmlSuffix) {
			continue
		}

		folderReport.Files++
		filePath := filepath.Join(folderPath, entry.Name())

		fileTestCases, err := c.extractor.ExtractFile(filePath, folderLabel)
		if err != nil {
			logger.Errorf("Error processing file %s in folder %s: %v", entry.Name(), folderLabel, err)
			folderReport.FailedFiles = append(folderReport.FailedFiles, filePath)
			continue
		}

		logger.Debugf("Extracted %d test cases from %s", len(fileTestCases), filePath)
		testCases = append(testCases, fileTestCases...)
	}

	if len(testCases) == 0 {
		logger.Warnf("No test cases found in folder %s", folderLabel)
		folderReport.Status = report.FolderStatusEmpty
		return folderReport
	}

	outputPath := filepath.Join(folderPath, c.reportName)
	if err := c.writeReport(outputPath, folderLabel, testCases); err != nil {
		logger.Errorf("Can't write JUnit report for folder %s: %v", folderLabel, err)
		return folderReport.WithError(err)
	}

	folderReport.Status = report.FolderStatusConverted
	folderReport.OutputPath = outputPath
	folderReport.Tests = len(testCases)
	for _, testCase := range testCases {
		switch {
		case testCase.Failed():
			folderReport.Failures++
		case testCase.NotRun():
			folderReport.Skipped++
		}
	}

	logger.Infof("JUnit report generated: %s", outputPath)

	return folderReport
}

func (c *Converter) writeReport(outputPath, folderLabel string, testCases []uipath.TestCase) error {
	document, err := c.emitter.Emit(folderLabel, testCases)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outputPath, []byte(document), 0o644); err != nil { //nolint:gosec
		return fmt.Errorf("can't write file %s: %w", outputPath, err)
	}

	return nil
}
