// Package uipath reads the HTML execution reports produced by UiPath test robots.
//
// A report page carries a table with the "execution-result" id whose body rows hold,
// in order, the test id, the test name, the result, the comments and the duration of
// each executed test case. The package turns those rows into TestCase records.
package uipath
