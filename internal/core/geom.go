// Package core provides fundamental types and utilities for the front end.
// It contains no external dependencies (especially no Bubble Tea) to keep menu
// and loadout logic pure and testable.
package core

import "math"

// snapPrecision bounds the decimal places kept by Snap.
const snapPrecision = 1e6

// Snap rounds val to the nearest multiple of step, dropping the float noise
// that repeated fractional steps accumulate. A non-positive step returns val.
func Snap(val, step float64) float64 {
	if step <= 0 {
		return val
	}
	v := math.Round(val/step) * step
	return math.Round(v*snapPrecision) / snapPrecision
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Max returns the larger of two integers.
func Max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

// Lerp linearly interpolates from a toward b by fraction p.
// p is not clamped, so values outside [0, 1] extrapolate.
func Lerp(a, b, p float64) float64 {
	return a + (b-a)*p
}

// Wrap maps i into [0, n) so that -1 becomes n-1 and n becomes 0.
// Returns 0 when n <= 0.
func Wrap(i, n int) int {
	if n <= 0 {
		return 0
	}
	i %= n
	if i < 0 {
		i += n
	}
	return i
}
