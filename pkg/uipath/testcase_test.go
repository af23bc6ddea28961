package uipath_test

import (
	"testing"

	"github.com/btms-qa/uireport/pkg/uipath"
	"github.com/stretchr/testify/assert"
)

func TestParseStatus(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input    string
		expected uipath.Status
	}{
		{input: "pass", expected: uipath.StatusPass},
		{input: "PASS", expected: uipath.StatusPass},
		{input: " fail ", expected: uipath.StatusFail},
		{input: "NoRun", expected: uipath.StatusNoRun},
		{input: "blocked", expected: uipath.StatusUnknown},
		{input: "", expected: uipath.StatusUnknown},
	}

	for _, test := range tests {
		t.Run(test.input, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, test.expected, uipath.ParseStatus(test.input))
		})
	}
}

func TestNewTestCase(t *testing.T) {
	t.Parallel()

	actual := uipath.NewTestCase(" T2 ", "\n Name B\t", " FAIL ", " boom ", " 01:00 ")

	expected := uipath.TestCase{
		TestID:          "T2",
		TestName:        "Name B",
		Result:          "fail",
		Status:          uipath.StatusFail,
		Comments:        "boom",
		DurationSeconds: 60,
	}
	assert.Equal(t, expected, actual)
	assert.Equal(t, "T2 - Name B", actual.FullName())
	assert.True(t, actual.Failed())
	assert.False(t, actual.NotRun())
}

func TestNewTestCase_UnknownResultIsKept(t *testing.T) {
	t.Parallel()

	actual := uipath.NewTestCase("T9", "Name", "Blocked", "", "")

	assert.Equal(t, "blocked", actual.Result)
	assert.Equal(t, uipath.StatusUnknown, actual.Status)
	assert.Equal(t, "unknown", actual.Status.String())
	assert.False(t, actual.Failed())
	assert.False(t, actual.NotRun())
	assert.Equal(t, 0, actual.DurationSeconds)
}
