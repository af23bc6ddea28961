// Package convert walks a UiPath report root and writes one JUnit report per folder.
//
// Every immediate subdirectory of the root is a folder. Its HTML report pages are
// extracted in directory order, and when at least one test case is found the combined
// JUnit document is written next to them. A row, file or folder that cannot be read
// is skipped on its own. Only an unreadable root stops the walk.
package convert
