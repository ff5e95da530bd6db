package spatialmath

import (
	"math"
	"unsafe"
)

const (
	float32Epsilon = 1.1920928955078125e-07
	float64Epsilon = 2.220446049250313e-16
)

// Epsilon returns the machine epsilon of S. It is the threshold below which Exp switches to its
// series expansion.
func Epsilon[S Float]() S {
	var s S
	if unsafe.Sizeof(s) == 4 {
		return S(float32Epsilon)
	}
	return S(float64Epsilon)
}

// Exp maps a Lie algebra element w (an angular velocity integrated over unit time) to the rotation
// matrix rotating by |w| radians about w/|w|. It is Rodrigues' formula written as
//
//	R = cos(t) I + alpha [w]x + beta w w^T,  alpha = sin(t)/t,  beta = (1 - cos(t))/t^2,  t = |w|
//
// with alpha and beta replaced by their Taylor expansions when t is below machine epsilon.
// Exp is defined for every finite w and returns the identity for w = 0.
func Exp[S Float](w Vector3[S]) Matrix3[S] {
	w0, w1, w2 := float64(w[0]), float64(w[1]), float64(w[2])
	s2 := [3]float64{w0 * w0, w1 * w1, w2 * w2}
	s3 := [3]float64{w0 * w1, w1 * w2, w2 * w0}
	theta := math.Sqrt(s2[0] + s2[1] + s2[2])
	cosT := math.Cos(theta)
	alpha, beta := rodriguesCoefficients(theta, float64(Epsilon[S]()))

	var res Matrix3[S]
	res[0][0] = S(beta*s2[0] + cosT)
	res[1][0] = S(beta*s3[0] + alpha*w2)
	res[2][0] = S(beta*s3[2] - alpha*w1)

	res[0][1] = S(beta*s3[0] - alpha*w2)
	res[1][1] = S(beta*s2[1] + cosT)
	res[2][1] = S(beta*s3[1] + alpha*w0)

	res[0][2] = S(beta*s3[2] + alpha*w1)
	res[1][2] = S(beta*s3[1] - alpha*w0)
	res[2][2] = S(beta*s2[2] + cosT)
	return res
}

func rodriguesCoefficients(theta, eps float64) (alpha, beta float64) {
	if theta > eps {
		return math.Sin(theta) / theta, (1 - math.Cos(theta)) / theta / theta
	}
	return rodriguesSeries(theta)
}

// second order expansions of sin(t)/t and (1 - cos(t))/t^2.
func rodriguesSeries(theta float64) (alpha, beta float64) {
	t2 := theta * theta
	return 1 - t2/6, 0.5 - t2/24
}

// Log maps a rotation matrix back to the Lie algebra: the rotation vector angle * axis with the angle
// in [0, pi]. R must be a rotation matrix; the result is undefined otherwise. At the identity the
// result is the zero vector.
func Log[S Float](r Matrix3[S]) Vector3[S] {
	if debugAssertions {
		debugAssert(ValidateRotationMatrix(r, debugTolerance[S]()))
	}
	return QuatToAxisAngle(MatToQuat(r)).ToRotationVector()
}

// Hat returns the skew-symmetric matrix [w]x such that Hat(w) * v = w x v. Exp(w) is the matrix
// exponential of Hat(w).
func Hat[S Float](w Vector3[S]) Matrix3[S] {
	return Matrix3[S]{
		{0, -w[2], w[1]},
		{w[2], 0, -w[0]},
		{-w[1], w[0], 0},
	}
}

// Vee is the inverse of Hat. Only the skew-symmetric part of m is read.
func Vee[S Float](m Matrix3[S]) Vector3[S] {
	return Vector3[S]{
		(m[2][1] - m[1][2]) / 2,
		(m[0][2] - m[2][0]) / 2,
		(m[1][0] - m[0][1]) / 2,
	}
}
