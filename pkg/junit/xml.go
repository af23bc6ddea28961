package junit

import (
	"encoding/xml"
)

// Testsuites is the root element of a generated report.
type Testsuites struct {
	XMLName    xml.Name    `json:"-"                    xml:"testsuites"`
	Testsuites []Testsuite `json:"testsuites,omitempty" xml:"testsuite"`
}

type Testsuite struct {
	XMLName   xml.Name   `json:"-"                   xml:"testsuite"`
	Name      string     `json:"name,omitempty"      xml:"name,attr"`
	Tests     int        `json:"tests"               xml:"tests,attr"`
	TestCases []TestCase `json:"testcases,omitempty" xml:"testcase"`
}

type TestCase struct {
	XMLName   xml.Name `json:"-"                    xml:"testcase"`
	ClassName string   `json:"class_name,omitempty" xml:"classname,attr"`
	Name      string   `json:"name,omitempty"       xml:"name,attr"`
	Time      int      `json:"time"                 xml:"time,attr"`
	Failure   *Failure `json:"failure,omitempty"    xml:"failure"`
	Skipped   *string  `json:"skipped,omitempty"    xml:"skipped"`
	SystemOut *string  `json:"system_out,omitempty" xml:"system-out"`
}

type Failure struct {
	Message string `json:"message,omitempty" xml:"message,attr"`
	Text    string `json:"text,omitempty"    xml:",chardata"`
}

// ParseRawLogs cast a raw XML JUnit report (as byte) into a Testsuites structure.
func ParseRawLogs(data []byte) (Testsuites, error) {
	testsuites := Testsuites{}
	err := xml.Unmarshal(data, &testsuites)
	if err != nil {
		return testsuites, err
	}

	return testsuites, nil
}

// Failures counts the test cases holding a failure element.
func (s Testsuite) Failures() int {
	count := 0
	for _, testCase := range s.TestCases {
		if testCase.Failure != nil {
			count++
		}
	}

	return count
}

// Skipped counts the test cases holding a skipped element.
func (s Testsuite) Skipped() int {
	count := 0
	for _, testCase := range s.TestCases {
		if testCase.Skipped != nil {
			count++
		}
	}

	return count
}
