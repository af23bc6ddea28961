package report

import (
	"errors"
	"time"

	"github.com/btms-qa/uireport/internal/logger"
)

const (
	FolderStatusConverted FolderStatus = iota
	FolderStatusEmpty
	FolderStatusFailed
	FolderStatusExcluded
)

var (
	ErrFolderFailed = errors.New("some folders could not be converted, see the report for more details")
	ErrTestsFailed  = errors.New("some tests failed, see the report for more details")
)

type FolderStatus int

func (s FolderStatus) String() string {
	switch s {
	case FolderStatusConverted:
		return "converted"
	case FolderStatusEmpty:
		return "empty"
	case FolderStatusFailed:
		return "failed"
	case FolderStatusExcluded:
		return "excluded"
	default:
		return "unknown"
	}
}

// MarshalYAML writes the status as its name.
func (s FolderStatus) MarshalYAML() (any, error) {
	return s.String(), nil
}

// FolderReport holds what happened to one folder of the report root.
type FolderReport struct {
	Label       string       `yaml:"label"`
	Path        string       `yaml:"path"`
	Status      FolderStatus `yaml:"status"`
	Files       int          `yaml:"files"`
	FailedFiles []string     `yaml:"failed_files,omitempty"`
	Tests       int          `yaml:"tests"`
	Failures    int          `yaml:"failures"`
	Skipped     int          `yaml:"skipped"`
	OutputPath  string       `yaml:"output_path,omitempty"`
	Error       string       `yaml:"error,omitempty"`
}

// WithError returns a FolderReport marked as failed.
func (r FolderReport) WithError(err error) FolderReport {
	r.Status = FolderStatusFailed
	r.Error = err.Error()

	return r
}

// Summary holds the reports of every folder found under the root directory, in walk order.
type Summary struct {
	Root           string         `yaml:"root"`
	GenerationDate time.Time      `yaml:"generation_date"`
	Folders        []FolderReport `yaml:"folders"`
}

// NewSummary creates an empty Summary for the given root directory.
func NewSummary(root string) Summary {
	return Summary{
		Root:           root,
		GenerationDate: time.Now(),
		Folders:        []FolderReport{},
	}
}

// Totals sums the test counters of every folder.
func (s Summary) Totals() (tests, failures, skipped int) {
	for _, folder := range s.Folders {
		tests += folder.Tests
		failures += folder.Failures
		skipped += folder.Skipped
	}

	return tests, failures, skipped
}

// OutputPaths returns the path of every written report.
func (s Summary) OutputPaths() []string {
	var paths []string
	for _, folder := range s.Folders {
		if folder.OutputPath != "" {
			paths = append(paths, folder.OutputPath)
		}
	}

	return paths
}

// PrintReports prints the summary to the user.
func PrintReports(summary Summary) {
	logger.Infof("Conversion report for %s", summary.Root)
	for _, folder := range summary.Folders {
		switch folder.Status {
		case FolderStatusConverted:
			logger.Infof("\t[%s]: CONVERTED %d tests (%d failed, %d skipped)",
				folder.Label, folder.Tests, folder.Failures, folder.Skipped)
		case FolderStatusEmpty:
			logger.Warnf("\t[%s]: NO TEST CASES", folder.Label)
		case FolderStatusExcluded:
			logger.Infof("\t[%s]: EXCLUDED", folder.Label)
		case FolderStatusFailed:
			logger.Errorf("\t[%s]: FAILURE: %s", folder.Label, folder.Error)
		}

		for _, file := range folder.FailedFiles {
			logger.Errorf("\t[%s]: could not read %s", folder.Label, file)
		}
	}

	tests, failures, skipped := summary.Totals()
	logger.Infof("Total: %d tests, %d failed, %d skipped", tests, failures, skipped)
}

// CheckError returns an error when the run should be reported as failed.
// In strict mode a failed folder, or a report page that could not be read, is an error.
// When failOnTests is set, failed test cases are reported as an error too.
func (s Summary) CheckError(strict, failOnTests bool) error {
	if strict {
		for _, folder := range s.Folders {
			if folder.Status == FolderStatusFailed || len(folder.FailedFiles) > 0 {
				return ErrFolderFailed
			}
		}
	}

	if failOnTests {
		for _, folder := range s.Folders {
			if folder.Failures > 0 {
				return ErrTestsFailed
			}
		}
	}

	return nil
}
