// Package dspmath provides the scalar helpers shared by the signal and spectrum
// pipeline: a gaussian envelope, logarithm/decibel conversion, and bounded random
// integers. The helpers are pure unless documented otherwise.
package dspmath

import (
	"math"
	"math/rand"
)

// Gaussian returns 4 * exp(-x²/1024). Even in x; Gaussian(0) == 4.
func Gaussian(x float64) float64 {
	return 4 * math.Exp(-(x*x)/1024)
}

// Zero always returns 0. It seeds placeholder chart bars before the first real frame.
func Zero() float64 {
	return 0
}

// Log10 returns the base-10 logarithm of x. Outside the domain it behaves like
// math.Log: -Inf at 0, NaN below. Callers must guard zero or negative magnitudes.
func Log10(x float64) float64 {
	return math.Log(x) / math.Ln10
}

// ToDecibels converts a linear magnitude to decibels: 20 * log10(x).
// Inherits Log10's domain restriction.
func ToDecibels(x float64) float64 {
	return 20 * Log10(x)
}

// RandInt returns a uniform random integer in [min, min+max).
//
// The historical helper this replaces computed floor(random()*max + min), which for a
// nonzero min shifts and stretches the range instead of honoring a [min, max) contract.
// That behavior was a quirk, not intent; this version keeps the conventional contract.
func RandInt(max, min int) int {
	if max <= 0 {
		return min
	}
	return min + rand.Intn(max)
}
