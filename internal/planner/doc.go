// Package planner decides, per source file and per output format, whether
// to encode or skip, and where the output goes. The converter executes the
// resulting FilePlan.
package planner
