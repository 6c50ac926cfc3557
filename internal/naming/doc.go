// Package naming derives output file names from source paths and tracks
// which source claimed each name during a run.
//
// Outputs are flat: every source lands directly under its format directory
// as <stem><ext>, whatever subdirectory it came from. Two sources with the
// same stem therefore map to the same outputs; [CollisionTracker] lets the
// pipeline report that instead of silently treating the second one as
// already converted.
package naming
