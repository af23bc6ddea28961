package uipath_test

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/btms-qa/uireport/pkg/uipath"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingParser struct{}

func (failingParser) Parse(_ io.Reader) (uipath.Node, error) {
	return nil, errors.New("parser exploded")
}

func TestExtractor_ExtractFile(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected []uipath.TestCase
	}{
		{
			name:  "rows with too few cells are skipped, order is preserved",
			input: "testdata/report-mixed.html",
			expected: []uipath.TestCase{
				{
					TestID:          "TC-001",
					TestName:        "Create load",
					Result:          "pass",
					Status:          uipath.StatusPass,
					DurationSeconds: 10,
				},
				{
					TestID:          "TC-003",
					TestName:        "Accept EDI tender",
					Result:          "fail",
					Status:          uipath.StatusFail,
					Comments:        `Expected <Accepted> & got "Rejected"`,
					DurationSeconds: 3723,
				},
				{
					TestID:   "TC-004",
					TestName: "Bulk status change",
					Result:   "norun",
					Status:   uipath.StatusNoRun,
				},
				{
					TestID:          "TC-005",
					TestName:        "Commission rules",
					Result:          "blocked",
					Status:          uipath.StatusUnknown,
					Comments:        "waiting on data",
					DurationSeconds: 45,
				},
			},
		},
		{
			name:     "empty result table",
			input:    "testdata/report-empty.html",
			expected: nil,
		},
		{
			name:  "id on a wrapping element",
			input: "testdata/report-wrapped.html",
			expected: []uipath.TestCase{
				{
					TestID:          "W1",
					TestName:        "Wrapped table",
					Result:          "pass",
					Status:          uipath.StatusPass,
					Comments:        "implicit tbody",
					DurationSeconds: 125,
				},
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			t.Parallel()

			actual, err := uipath.NewExtractor(nil).ExtractFile(test.input, "suiteA")
			require.NoError(t, err)
			assert.Equal(t, test.expected, actual)
		})
	}
}

func TestExtractor_Extract_NoResultTable(t *testing.T) {
	t.Parallel()

	page := `<html><body><table id="other"><tbody>
<tr><td>T1</td><td>Name</td><td>pass</td><td></td><td>10</td></tr>
</tbody></table></body></html>`

	actual, err := uipath.NewExtractor(uipath.GoqueryParser{}).Extract(strings.NewReader(page), "suiteA")
	require.NoError(t, err)
	assert.Empty(t, actual)
}

func TestExtractor_Extract_ExtraCellsAreIgnored(t *testing.T) {
	t.Parallel()

	page := `<table id="execution-result"><tbody>
<tr><td>T1</td><td>Name A</td><td>pass</td><td></td><td>00:10</td><td>extra</td></tr>
</tbody></table>`

	actual, err := uipath.NewExtractor(nil).Extract(strings.NewReader(page), "suiteA")
	require.NoError(t, err)
	require.Len(t, actual, 1)
	assert.Equal(t, "T1 - Name A", actual[0].FullName())
	assert.Equal(t, 10, actual[0].DurationSeconds)
}

func TestExtractor_ParserError(t *testing.T) {
	t.Parallel()

	_, err := uipath.NewExtractor(failingParser{}).Extract(strings.NewReader("<html></html>"), "suiteA")
	require.Error(t, err)
	assert.ErrorContains(t, err, "parser exploded")
}

func TestExtractor_ExtractFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := uipath.NewExtractor(nil).ExtractFile("testdata/does-not-exist.html", "suiteA")
	require.Error(t, err)
	assert.ErrorContains(t, err, "can't open file")
}
