package junit

import (
	_ "embed"
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/btms-qa/uireport/pkg/uipath"
)

const (
	// DefaultSuitePrefix prefixes the folder label in the testsuite name.
	DefaultSuitePrefix = "UIPATH Test Suite"

	notExecutedMessage = "Test was not executed"
)

//go:embed templates/junit-report.xml.tmpl
var reportTemplate string

var templateFuncs = template.FuncMap{
	"escape":  Escape,
	"skipped": skippedText,
}

var reportTpl = template.Must(template.New("junit-report").Funcs(templateFuncs).Parse(reportTemplate))

// Emitter renders test cases as a JUnit XML document.
type Emitter struct {
	SuitePrefix string
}

type suiteData struct {
	Name      string
	ClassName string
	TestCases []uipath.TestCase
}

// Emit renders the test cases of one folder with the default suite prefix.
func Emit(folderLabel string, testCases []uipath.TestCase) (string, error) {
	return Emitter{}.Emit(folderLabel, testCases)
}

// Emit renders the whole document, XML declaration included.
func (e Emitter) Emit(folderLabel string, testCases []uipath.TestCase) (string, error) {
	var builder strings.Builder
	if err := e.Write(&builder, folderLabel, testCases); err != nil {
		return "", err
	}

	return builder.String(), nil
}

// Write renders the document into w. The folder label is used both as the suffix
// of the testsuite name and as the classname of every testcase.
func (e Emitter) Write(w io.Writer, folderLabel string, testCases []uipath.TestCase) error {
	prefix := e.SuitePrefix
	if prefix == "" {
		prefix = DefaultSuitePrefix
	}

	data := suiteData{
		Name:      fmt.Sprintf("%s - %s", prefix, folderLabel),
		ClassName: folderLabel,
		TestCases: testCases,
	}

	if err := reportTpl.Execute(w, data); err != nil {
		return fmt.Errorf("can't render junit report for %s: %w", folderLabel, err)
	}

	return nil
}

func skippedText(comments string) string {
	if comments == "" {
		return notExecutedMessage
	}

	return Escape(comments)
}
