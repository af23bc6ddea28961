// Package publish ships generated JUnit reports out of the report root.
//
// Reports can be bundled in a tar.gz archive and uploaded, together with the archive,
// to any S3-compatible bucket under a human-readable run id.
package publish
