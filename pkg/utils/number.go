package utils

import "math"

// RoundHalfUp arredonda meio para cima, como o Math.round dos navegadores
func RoundHalfUp(f float64) int64 {
	return int64(math.Floor(f + 0.5))
}

// Round é o RoundHalfUp para valores que cabem em int
func Round(f float64) int {
	return int(RoundHalfUp(f))
}
