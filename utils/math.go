// Package utils contains small helpers shared by the so3 packages and tools.
package utils

import (
	"math"

	"golang.org/x/exp/constraints"
)

const (
	degreesPerRadian = 180 / math.Pi
	radiansPerDegree = math.Pi / 180
)

// DegToRad converts degrees to radians in the precision of the input.
func DegToRad[T constraints.Float](degrees T) T {
	return degrees * T(radiansPerDegree)
}

// RadToDeg converts radians to degrees in the precision of the input.
func RadToDeg[T constraints.Float](radians T) T {
	return radians * T(degreesPerRadian)
}
