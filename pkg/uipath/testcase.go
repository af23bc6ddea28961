package uipath

import "strings"

const (
	StatusUnknown Status = iota
	StatusPass
	StatusFail
	StatusNoRun
)

// Status is the known outcome of a test case. Any result text the robot may produce
// besides "pass", "fail" and "norun" maps to StatusUnknown.
type Status int

// ParseStatus maps a result cell to a Status. The comparison ignores case and surrounding spaces.
func ParseStatus(result string) Status {
	switch strings.ToLower(strings.TrimSpace(result)) {
	case "pass":
		return StatusPass
	case "fail":
		return StatusFail
	case "norun":
		return StatusNoRun
	default:
		return StatusUnknown
	}
}

func (s Status) String() string {
	switch s {
	case StatusPass:
		return "pass"
	case StatusFail:
		return "fail"
	case StatusNoRun:
		return "norun"
	default:
		return "unknown"
	}
}

// TestCase is one row of a report results table.
type TestCase struct {
	TestID   string
	TestName string
	// Result is the lower-cased result cell, kept verbatim even when its Status is unknown.
	Result          string
	Status          Status
	Comments        string
	DurationSeconds int
}

// NewTestCase builds a TestCase from the raw text of the five result columns.
func NewTestCase(testID, testName, result, comments, duration string) TestCase {
	res := strings.ToLower(strings.TrimSpace(result))

	return TestCase{
		TestID:          strings.TrimSpace(testID),
		TestName:        strings.TrimSpace(testName),
		Result:          res,
		Status:          ParseStatus(res),
		Comments:        strings.TrimSpace(comments),
		DurationSeconds: ToSeconds(strings.TrimSpace(duration)),
	}
}

// FullName returns "<test id> - <test name>".
func (tc TestCase) FullName() string {
	return tc.TestID + " - " + tc.TestName
}

// Failed is true when the robot reported the test as failed.
func (tc TestCase) Failed() bool {
	return tc.Status == StatusFail
}

// NotRun is true when the robot did not execute the test.
func (tc TestCase) NotRun() bool {
	return tc.Status == StatusNoRun
}
