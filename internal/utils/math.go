// internal/utils/math.go
package utils

import "math"

// RoundTo rounds x to the given number of decimal places, halves to even.
func RoundTo(x float64, places int) float64 {
	scale := math.Pow(10, float64(places))
	return math.RoundToEven(x*scale) / scale
}

// Round1 rounds to one decimal place. Every resource amount goes through it.
func Round1(x float64) float64 {
	return RoundTo(x, 1)
}
