// Package display renders human-facing output: byte sizes, the startup
// banner, and summary tables.
package display

import (
	"fmt"
)

var sizeUnits = []string{"B", "KB", "MB", "GB"}

// HumanSize returns a byte count scaled to the largest unit (B, KB, MB, GB,
// TB) that keeps the value under 1024, with one decimal place and no space
// before the unit: "512.0B", "1.5KB". TB is the ceiling.
func HumanSize(bytes int64) string {
	v := float64(bytes)
	for _, u := range sizeUnits {
		if v < 1024 {
			return fmt.Sprintf("%.1f%s", v, u)
		}
		v /= 1024
	}
	return fmt.Sprintf("%.1fTB", v)
}

// HumanSizeWithSign prefixes with + or - for delta display (e.g. "-1.2MB").
func HumanSizeWithSign(bytes int64) string {
	sign := ""
	if bytes > 0 {
		sign = "+"
	} else if bytes < 0 {
		sign = "-"
		bytes = -bytes
	}
	return sign + HumanSize(bytes)
}

// Percent returns part as a whole-number percentage of total, or 0 when
// total is not positive.
func Percent(part, total int64) int64 {
	if total <= 0 {
		return 0
	}
	return part * 100 / total
}
