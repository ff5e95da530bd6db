package spatialmath

import (
	"fmt"

	"gonum.org/v1/gonum/num/quat"
)

// Quaternion is a quaternion w + xi + yj + zk. As raw representation data it must be unit-norm.
// q and -q describe the same rotation.
type Quaternion[S Float] struct {
	W S `json:"w"`
	X S `json:"x"`
	Y S `json:"y"`
	Z S `json:"z"`
}

// IdentityQuaternion returns (1, 0, 0, 0).
func IdentityQuaternion[S Float]() Quaternion[S] {
	return Quaternion[S]{W: 1}
}

// QuaternionFromNumber converts a gonum quaternion.
func QuaternionFromNumber[S Float](q quat.Number) Quaternion[S] {
	return Quaternion[S]{W: S(q.Real), X: S(q.Imag), Y: S(q.Jmag), Z: S(q.Kmag)}
}

// Number returns the quaternion as a float64 gonum quaternion.
func (q Quaternion[S]) Number() quat.Number {
	return quat.Number{Real: float64(q.W), Imag: float64(q.X), Jmag: float64(q.Y), Kmag: float64(q.Z)}
}

// Vec returns the imaginary part.
func (q Quaternion[S]) Vec() Vector3[S] {
	return Vector3[S]{q.X, q.Y, q.Z}
}

// Mul returns the Hamilton product q * o.
func (q Quaternion[S]) Mul(o Quaternion[S]) Quaternion[S] {
	return QuaternionFromNumber[S](quat.Mul(q.Number(), o.Number()))
}

// Conj returns the conjugate, which is the inverse of a unit quaternion.
func (q Quaternion[S]) Conj() Quaternion[S] {
	return QuaternionFromNumber[S](quat.Conj(q.Number()))
}

// Neg returns -q, the other quaternion of the double cover.
func (q Quaternion[S]) Neg() Quaternion[S] {
	return Quaternion[S]{-q.W, -q.X, -q.Y, -q.Z}
}

// Norm returns the quaternion magnitude.
func (q Quaternion[S]) Norm() S {
	return S(quat.Abs(q.Number()))
}

// Normalize returns q scaled to unit norm. The zero quaternion is returned as the identity.
func (q Quaternion[S]) Normalize() Quaternion[S] {
	n := quat.Abs(q.Number())
	if n == 0 {
		return IdentityQuaternion[S]()
	}
	return QuaternionFromNumber[S](quat.Scale(1/n, q.Number()))
}

// IsFinite returns whether no component is NaN or infinite.
func (q Quaternion[S]) IsFinite() bool {
	return !quat.IsNaN(q.Number()) && !quat.IsInf(q.Number())
}

func (q Quaternion[S]) slice() []float64 {
	return []float64{float64(q.W), float64(q.X), float64(q.Y), float64(q.Z)}
}

func (q Quaternion[S]) String() string {
	return fmt.Sprintf("(w:%g x:%g y:%g z:%g)", float64(q.W), float64(q.X), float64(q.Y), float64(q.Z))
}
