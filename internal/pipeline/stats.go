package pipeline

// RunStats tracks aggregate counters and byte totals across a batch run.
type RunStats struct {
	Total     int // TIFF files discovered.
	Current   int // Index of the file being processed (1-based).
	Converted int // Files whose every format succeeded.
	Failed    int // Files with at least one failed format.

	FormatsEncoded int // Outputs written in this run.
	FormatsSkipped int // Outputs that already existed.

	TotalInputBytes  int64 // Size of all processed sources.
	TotalOutputBytes int64 // Size of all outputs written in this run.
}

// Processed returns the number of files that went through conversion.
func (s *RunStats) Processed() int {
	return s.Converted + s.Failed
}
