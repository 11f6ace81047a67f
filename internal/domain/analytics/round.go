package analytics

import "math"

// Round4 rounds half away from zero to 4 decimal places. Every fractional
// output of this package passes through it exactly once.
func Round4(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return math.Round(v*10000) / 10000
}
