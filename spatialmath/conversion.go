package spatialmath

import (
	"math"

	"github.com/pkg/errors"
)

// ConversionRoute is how data of one representation is turned into another.
type ConversionRoute int

const (
	// RouteIdentity returns the input unchanged; used when both representations are the same.
	RouteIdentity ConversionRoute = iota
	// RouteShortcut uses a direct formula between two non-canonical representations.
	RouteShortcut
	// RouteCanonical converts to the canonical representation and from there to the target.
	// Either hop is a passthrough when its side is the canonical representation.
	RouteCanonical
)

func (r ConversionRoute) String() string {
	switch r {
	case RouteIdentity:
		return "identity"
	case RouteShortcut:
		return "shortcut"
	case RouteCanonical:
		return "canonical"
	default:
		return "unknown"
	}
}

type kindPair struct {
	from, to Kind
}

// shortcuts are the only pairs that bypass the canonical representation. RotationVector <-> Quaternion
// is deliberately absent and goes through the canonical representation.
var shortcuts = map[kindPair]struct{}{
	{AxisAngleKind, RotationVectorKind}: {},
	{RotationVectorKind, AxisAngleKind}: {},
	{AxisAngleKind, QuaternionKind}:     {},
	{QuaternionKind, AxisAngleKind}:     {},
}

// Route returns how a value of kind from is converted to kind to.
func Route(from, to Kind) ConversionRoute {
	TraitsOf(from)
	TraitsOf(to)
	if from == to {
		return RouteIdentity
	}
	if _, ok := shortcuts[kindPair{from, to}]; ok {
		return RouteShortcut
	}
	return RouteCanonical
}

// Hops returns the number of conversion formulas evaluated when converting from one kind to another:
// 0 for the same kind, 1 for a shortcut or a conversion to or from the canonical kind, and 2 for a
// round trip through the canonical kind.
func Hops(from, to Kind) int {
	switch Route(from, to) {
	case RouteIdentity:
		return 0
	case RouteShortcut:
		return 1
	case RouteCanonical:
		if from == CanonicalKind || to == CanonicalKind {
			return 1
		}
		return 2
	default:
		panic(errors.Errorf("unhandled conversion route from %v to %v", from, to))
	}
}

// ToCanonical converts representation data to the canonical rotation matrix.
func ToCanonical[S Float, D RepData[S]](data D) Matrix3[S] {
	return toCanonical[S](KindOf[S, D](), data)
}

// FromCanonical converts a canonical rotation matrix to representation data.
func FromCanonical[S Float, D RepData[S]](m Matrix3[S]) D {
	return fromCanonical[S](KindOf[S, D](), m).(D)
}

// Convert converts representation data between any two representations using the registered
// shortcut for the pair if there is one, and the canonical representation otherwise.
func Convert[S Float, From, To RepData[S]](data From) To {
	return convertData[S](KindOf[S, From](), KindOf[S, To](), data).(To)
}

func toCanonical[S Float](kind Kind, data any) Matrix3[S] {
	switch kind {
	case RotationMatrixKind:
		return data.(Matrix3[S])
	case AxisAngleKind:
		return data.(AxisAngle[S]).ToRotationMatrix()
	case QuaternionKind:
		return QuatToMat(data.(Quaternion[S]))
	case RotationVectorKind:
		return Exp(data.(Vector3[S]))
	default:
		panic(errors.Errorf("no conversion to the canonical representation from %v", kind))
	}
}

func fromCanonical[S Float](kind Kind, m Matrix3[S]) any {
	switch kind {
	case RotationMatrixKind:
		return m
	case AxisAngleKind:
		return QuatToAxisAngle(MatToQuat(m))
	case QuaternionKind:
		return MatToQuat(m)
	case RotationVectorKind:
		return Log(m)
	default:
		panic(errors.Errorf("no conversion from the canonical representation to %v", kind))
	}
}

func convertData[S Float](from, to Kind, data any) any {
	switch Route(from, to) {
	case RouteIdentity:
		return data
	case RouteShortcut:
		return shortcut[S](from, to, data)
	default:
		return fromCanonical[S](to, toCanonical[S](from, data))
	}
}

func shortcut[S Float](from, to Kind, data any) any {
	switch (kindPair{from, to}) {
	case kindPair{AxisAngleKind, RotationVectorKind}:
		return data.(AxisAngle[S]).ToRotationVector()
	case kindPair{RotationVectorKind, AxisAngleKind}:
		return RotationVectorToAxisAngle(data.(Vector3[S]))
	case kindPair{AxisAngleKind, QuaternionKind}:
		return data.(AxisAngle[S]).ToQuaternion()
	case kindPair{QuaternionKind, AxisAngleKind}:
		return QuatToAxisAngle(data.(Quaternion[S]))
	default:
		panic(errors.Errorf("no shortcut registered from %v to %v", from, to))
	}
}

// QuatToMat converts a unit quaternion to a rotation matrix.
func QuatToMat[S Float](q Quaternion[S]) Matrix3[S] {
	w, x, y, z := float64(q.W), float64(q.X), float64(q.Y), float64(q.Z)
	tx, ty, tz := 2*x, 2*y, 2*z
	twx, twy, twz := tx*w, ty*w, tz*w
	txx, txy, txz := tx*x, ty*x, tz*x
	tyy, tyz, tzz := ty*y, tz*y, tz*z

	return Matrix3[S]{
		{S(1 - (tyy + tzz)), S(txy - twz), S(txz + twy)},
		{S(txy + twz), S(1 - (txx + tzz)), S(tyz - twx)},
		{S(txz - twy), S(tyz + twx), S(1 - (txx + tyy))},
	}
}

// MatToQuat converts a rotation matrix to a unit quaternion. It pivots on the trace when it is positive
// and on the largest diagonal entry otherwise, which keeps the square root argument away from zero.
// The real part is non-negative whenever the trace is positive.
func MatToQuat[S Float](r Matrix3[S]) Quaternion[S] {
	var m [3][3]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m[i][j] = float64(r[i][j])
		}
	}

	var w float64
	var v [3]float64
	if t := m[0][0] + m[1][1] + m[2][2]; t > 0 {
		t = math.Sqrt(t + 1)
		w = 0.5 * t
		t = 0.5 / t
		v[0] = (m[2][1] - m[1][2]) * t
		v[1] = (m[0][2] - m[2][0]) * t
		v[2] = (m[1][0] - m[0][1]) * t
	} else {
		i := 0
		if m[1][1] > m[0][0] {
			i = 1
		}
		if m[2][2] > m[i][i] {
			i = 2
		}
		j := (i + 1) % 3
		k := (j + 1) % 3

		t = math.Sqrt(m[i][i] - m[j][j] - m[k][k] + 1)
		v[i] = 0.5 * t
		t = 0.5 / t
		w = (m[k][j] - m[j][k]) * t
		v[j] = (m[j][i] + m[i][j]) * t
		v[k] = (m[k][i] + m[i][k]) * t
	}
	return Quaternion[S]{W: S(w), X: S(v[0]), Y: S(v[1]), Z: S(v[2])}
}
