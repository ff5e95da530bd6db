package spatialmath

import (
	"fmt"
	"math"
)

// See here for a thorough explanation: https://en.wikipedia.org/wiki/Axis%E2%80%93angle_representation
// Basic explanation: Imagine a 3d cartesian grid centered at 0,0,0, and a sphere of radius 1 centered at
// that same point. An orientation can be expressed by first specifying an axis, i.e. a line from the origin
// to a point on that sphere, and a rotation around that axis, theta.
// These four numbers can be used as-is (AxisAngle), or the angle can be multiplied into the axis to give a
// vector whose length is theta and whose direction is the original axis (a rotation vector, Vector3).

// AxisAngle is an axis-angle rotation. The axis must be unit length unless the angle is exactly zero,
// in which case the axis is unconstrained.
type AxisAngle[S Float] struct {
	Axis  Vector3[S] `json:"axis"`
	Angle S          `json:"angle"`
}

// IdentityAxisAngle returns a zero rotation about the default x-axis.
func IdentityAxisAngle[S Float]() AxisAngle[S] {
	return AxisAngle[S]{Axis: UnitX[S](), Angle: 0}
}

// ToRotationVector converts to a rotation vector by scaling the axis by the angle.
func (aa AxisAngle[S]) ToRotationVector() Vector3[S] {
	return aa.Axis.Scale(aa.Angle)
}

// ToQuaternion converts to a unit quaternion with the half-angle formula.
// See: https://www.euclideanspace.com/maths/geometry/rotations/conversions/angleToQuaternion/index.htm
func (aa AxisAngle[S]) ToQuaternion() Quaternion[S] {
	half := float64(aa.Angle) / 2
	sinA := S(math.Sin(half))
	return Quaternion[S]{
		W: S(math.Cos(half)),
		X: aa.Axis[0] * sinA,
		Y: aa.Axis[1] * sinA,
		Z: aa.Axis[2] * sinA,
	}
}

// ToRotationMatrix converts to a rotation matrix.
func (aa AxisAngle[S]) ToRotationMatrix() Matrix3[S] {
	axis := aa.Axis
	sinAxis := axis.Scale(S(math.Sin(float64(aa.Angle))))
	c := S(math.Cos(float64(aa.Angle)))
	cos1Axis := axis.Scale(1 - c)

	var res Matrix3[S]
	tmp := cos1Axis[0] * axis[1]
	res[0][1] = tmp - sinAxis[2]
	res[1][0] = tmp + sinAxis[2]

	tmp = cos1Axis[0] * axis[2]
	res[0][2] = tmp + sinAxis[1]
	res[2][0] = tmp - sinAxis[1]

	tmp = cos1Axis[1] * axis[2]
	res[1][2] = tmp - sinAxis[0]
	res[2][1] = tmp + sinAxis[0]

	for i := 0; i < 3; i++ {
		res[i][i] = cos1Axis[i]*axis[i] + c
	}
	return res
}

// Normalize scales the axis onto the unit sphere. A zero axis is replaced by the default x-axis and the
// angle is kept.
func (aa AxisAngle[S]) Normalize() AxisAngle[S] {
	if aa.Axis.IsZero() {
		return AxisAngle[S]{Axis: UnitX[S](), Angle: aa.Angle}
	}
	return AxisAngle[S]{Axis: aa.Axis.Normalize(), Angle: aa.Angle}
}

// Inverse negates the angle.
func (aa AxisAngle[S]) Inverse() AxisAngle[S] {
	return AxisAngle[S]{Axis: aa.Axis, Angle: -aa.Angle}
}

func (aa AxisAngle[S]) String() string {
	return fmt.Sprintf("{axis:%v angle:%g}", aa.Axis, float64(aa.Angle))
}

// QuatToAxisAngle converts a quaternion to an axis angle the same way the C++ Eigen library does.
// https://eigen.tuxfamily.org/dox/AngleAxis_8h_source.html
// The angle is in [0, pi] for a unit quaternion: when the real part is negative the axis is flipped
// instead of the angle. The identity maps to a zero angle about the x-axis.
func QuatToAxisAngle[S Float](q Quaternion[S]) AxisAngle[S] {
	n := float64(q.Vec().Norm())
	if n == 0 {
		return IdentityAxisAngle[S]()
	}
	w := float64(q.W)
	angle := 2 * math.Atan2(n, math.Abs(w))
	axis := q.Vec().Scale(S(1 / n))
	if w < 0 {
		axis = axis.Neg()
	}
	return AxisAngle[S]{Axis: axis, Angle: S(angle)}
}

// RotationVectorToAxisAngle splits a rotation vector into its unit axis and angle. The zero vector maps
// to a zero angle about the x-axis; this default is a fixed policy for the degenerate direction.
func RotationVectorToAxisAngle[S Float](v Vector3[S]) AxisAngle[S] {
	norm := v.Norm()
	if norm > 0 {
		return AxisAngle[S]{Axis: v.Scale(1 / norm), Angle: norm}
	}
	return IdentityAxisAngle[S]()
}
