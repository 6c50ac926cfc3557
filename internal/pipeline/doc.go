// Package pipeline orchestrates a batch run: input validation, output
// directory setup, the output-root lock, file discovery, per-file
// conversion, and summary reporting. It also hosts the --analyze report.
//
// Files are processed one at a time in sorted path order. A failure in one
// file or one format is logged and counted; it never stops the batch.
package pipeline
