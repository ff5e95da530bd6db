package spatialmath

import (
	"fmt"
	"math"

	"github.com/golang/geo/r3"
)

// Vector3 is a 3-vector. As raw representation data it is a rotation vector: its norm is the
// rotation angle in radians and its direction is the rotation axis.
type Vector3[S Float] [3]S

// UnitX returns the x-axis, the default axis of a zero rotation.
func UnitX[S Float]() Vector3[S] {
	return Vector3[S]{1, 0, 0}
}

// Vector3FromR3 converts an r3.Vector.
func Vector3FromR3[S Float](v r3.Vector) Vector3[S] {
	return Vector3[S]{S(v.X), S(v.Y), S(v.Z)}
}

// R3 returns the vector as a float64 r3.Vector.
func (v Vector3[S]) R3() r3.Vector {
	return r3.Vector{X: float64(v[0]), Y: float64(v[1]), Z: float64(v[2])}
}

// Norm returns the euclidean length.
func (v Vector3[S]) Norm() S {
	return S(v.R3().Norm())
}

// Norm2 returns the squared euclidean length.
func (v Vector3[S]) Norm2() S {
	return v[0]*v[0] + v[1]*v[1] + v[2]*v[2]
}

// Normalize returns the unit vector with the same direction. The zero vector is returned unchanged.
func (v Vector3[S]) Normalize() Vector3[S] {
	n := v.R3().Norm()
	if n == 0 {
		return v
	}
	return Vector3[S]{S(float64(v[0]) / n), S(float64(v[1]) / n), S(float64(v[2]) / n)}
}

// Dot returns the dot product.
func (v Vector3[S]) Dot(o Vector3[S]) S {
	return S(v.R3().Dot(o.R3()))
}

// Cross returns the cross product v x o.
func (v Vector3[S]) Cross(o Vector3[S]) Vector3[S] {
	return Vector3FromR3[S](v.R3().Cross(o.R3()))
}

// Add returns v + o.
func (v Vector3[S]) Add(o Vector3[S]) Vector3[S] {
	return Vector3[S]{v[0] + o[0], v[1] + o[1], v[2] + o[2]}
}

// Sub returns v - o.
func (v Vector3[S]) Sub(o Vector3[S]) Vector3[S] {
	return Vector3[S]{v[0] - o[0], v[1] - o[1], v[2] - o[2]}
}

// Scale returns s * v.
func (v Vector3[S]) Scale(s S) Vector3[S] {
	return Vector3[S]{s * v[0], s * v[1], s * v[2]}
}

// Neg returns -v.
func (v Vector3[S]) Neg() Vector3[S] {
	return Vector3[S]{-v[0], -v[1], -v[2]}
}

// IsZero returns whether every component is exactly zero.
func (v Vector3[S]) IsZero() bool {
	return v == Vector3[S]{}
}

// IsFinite returns whether no component is NaN or infinite.
func (v Vector3[S]) IsFinite() bool {
	for _, c := range v {
		if math.IsNaN(float64(c)) || math.IsInf(float64(c), 0) {
			return false
		}
	}
	return true
}

func (v Vector3[S]) slice() []float64 {
	return []float64{float64(v[0]), float64(v[1]), float64(v[2])}
}

func (v Vector3[S]) String() string {
	return fmt.Sprintf("[%g %g %g]", float64(v[0]), float64(v[1]), float64(v[2]))
}
