package convert

import (
	"fmt"

	"github.com/btms-qa/uireport/internal/logger"
	"github.com/btms-qa/uireport/pkg/junit"
	"github.com/btms-qa/uireport/pkg/uipath"
	"github.com/moby/patternmatcher"
)

const (
	// DefaultRoot is the report root used when none is given.
	DefaultRoot = "./UIPATHREPORT"
	// DefaultReportName is the name of the report written in every converted folder.
	DefaultReportName = "junit-report.xml"

	htmlSuffix = ".html"
)

// Options configures a Converter.
type Options struct {
	// ReportName overrides DefaultReportName.
	ReportName string
	// SuitePrefix overrides junit.DefaultSuitePrefix.
	SuitePrefix string
	// Exclude holds dockerignore-style patterns matched against folder names.
	Exclude []string
}

// Converter turns the report pages of a root directory into JUnit reports.
type Converter struct {
	extractor  *uipath.Extractor
	emitter    junit.Emitter
	reportName string
	excluder   *patternmatcher.PatternMatcher
}

// NewConverter creates a Converter parsing pages with the given parser.
// A nil parser falls back to uipath.GoqueryParser.
func NewConverter(parser uipath.DocumentParser, opts Options) (*Converter, error) {
	excluder, err := patternmatcher.New(opts.Exclude)
	if err != nil {
		return nil, fmt.Errorf("invalid exclude patterns: %w", err)
	}

	reportName := opts.ReportName
	if reportName == "" {
		reportName = DefaultReportName
	}

	return &Converter{
		extractor:  uipath.NewExtractor(parser),
		emitter:    junit.Emitter{SuitePrefix: opts.SuitePrefix},
		reportName: reportName,
		excluder:   excluder,
	}, nil
}

// isExcluded checks whether a folder matches one of the exclude patterns.
func (c *Converter) isExcluded(folderLabel string) bool {
	if len(c.excluder.Patterns()) == 0 {
		return false
	}

	match, err := c.excluder.MatchesOrParentMatches(folderLabel)
	if err != nil {
		logger.Errorf("Could not match exclude patterns against %s, keeping it: %v", folderLabel, err)
		return false
	}

	return match
}
