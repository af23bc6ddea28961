// Package report collects the outcome of a conversion run.
//
// The main functionalities include:
//   - Tracking what happened to every folder of the report root.
//   - Printing the run summary as log lines and as a console table.
//   - Exporting the summary to a YAML file for downstream tooling.
package report
