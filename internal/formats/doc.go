// Package formats defines the fixed table of output profiles. Each profile
// names an output subdirectory (its key), the file extension written there,
// a one-line description for usage text, and the encoder settings.
//
// The table is ordered: lossless, compatible, balanced, compact. That order
// drives directory creation, per-file output, and the summary listing.
package formats
