// Package core implements the commit scoring and classification engine:
// line-level diff classification, change impact profiling, message/diff
// match verification, and per-contributor scoring.
package core

import "math"

// round2 rounds to 2 decimal places, used for 0-100 scores.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// round3 rounds to 3 decimal places, used for [0,1] ratios.
func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
