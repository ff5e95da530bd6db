package spatialmath

import (
	"github.com/golang/geo/r3"
)

// AngularVelocity contains angular velocity in rad/s about the x, y and z axes. It is an element of
// the Lie algebra: integrating it for dt seconds gives the rotation Exp(w * dt).
type AngularVelocity[S Float] Vector3[S]

// R3ToAngVel converts an r3.Vector to an AngularVelocity.
func R3ToAngVel[S Float](v r3.Vector) AngularVelocity[S] {
	return AngularVelocity[S](Vector3FromR3[S](v))
}

// Vector3 returns the angular velocity as a plain vector.
func (av AngularVelocity[S]) Vector3() Vector3[S] {
	return Vector3[S](av)
}

// OrientationToAngularVel calculates the constant angular velocity that produces the orientation change o
// over a time difference dt.
func OrientationToAngularVel[S Float](o Orientation[S], dt S) AngularVelocity[S] {
	return AngularVelocity[S](o.RotationVector().Scale(1 / dt))
}

// QuatToAngVel calculates an angular velocity based on an orientation change expressed as a quaternion over
// a time difference.
func QuatToAngVel[S Float](diffQ Quaternion[S], dt S) AngularVelocity[S] {
	return AngularVelocity[S](QuatToAxisAngle(diffQ).ToRotationVector().Scale(1 / dt))
}

// RotMatToAngVel calculates an angular velocity based on an orientation change expressed as a rotation matrix
// over a time difference.
func RotMatToAngVel[S Float](diffRm Matrix3[S], dt S) AngularVelocity[S] {
	return AngularVelocity[S](Log(diffRm).Scale(1 / dt))
}

// Integrate rotates o by the angular velocity av, expressed in the body frame of o, for dt seconds.
func Integrate[S Float, D RepData[S]](o SO3[S, D], av AngularVelocity[S], dt S) SO3[S, D] {
	return o.Mul(SO3Exp[S, Matrix3[S]](av.Vector3().Scale(dt)))
}
