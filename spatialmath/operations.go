package spatialmath

import (
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/floats"
)

// mulData composes a * b and returns the result in a's representation. Matching group-native
// representations multiply natively; anything else, including two rotation vectors, is converted to
// the canonical representation, multiplied there and converted back.
//
// Rotation vector composition costs an Exp for each operand and a Log for the result. It is kept on
// the canonical path because composing rotation vectors is rare in hot loops.
func mulData[S Float](kindA Kind, a any, kindB Kind, b any) any {
	if kindA == kindB && !TraitsOf(kindA).IsCoordinates {
		switch kindA {
		case RotationMatrixKind:
			return a.(Matrix3[S]).Mul(b.(Matrix3[S]))
		case QuaternionKind:
			return a.(Quaternion[S]).Mul(b.(Quaternion[S]))
		case AxisAngleKind:
			q := a.(AxisAngle[S]).ToQuaternion().Mul(b.(AxisAngle[S]).ToQuaternion())
			return QuatToAxisAngle(q)
		default:
			panic(errors.Errorf("no native product for %v", kindA))
		}
	}
	product := toCanonical[S](kindA, a).Mul(toCanonical[S](kindB, b))
	return fromCanonical[S](kindA, product)
}

// isApproxData compares two orientations. Matching representations are compared on their raw data,
// anything else on the canonical representation.
func isApproxData[S Float](kindA Kind, a any, kindB Kind, b any, tol S) bool {
	t := float64(tol)
	if kindA != kindB {
		return approxSlices(toCanonical[S](kindA, a).slice(), toCanonical[S](kindB, b).slice(), t)
	}
	switch kindA {
	case RotationMatrixKind:
		return approxSlices(a.(Matrix3[S]).slice(), b.(Matrix3[S]).slice(), t)
	case QuaternionKind:
		qa, qb := a.(Quaternion[S]), b.(Quaternion[S])
		// q and -q are the same rotation.
		return approxSlices(qa.slice(), qb.slice(), t) || approxSlices(qa.slice(), qb.Neg().slice(), t)
	case AxisAngleKind:
		aa, ab := a.(AxisAngle[S]), b.(AxisAngle[S])
		if math.Abs(float64(aa.Angle)) <= t && math.Abs(float64(ab.Angle)) <= t {
			return true
		}
		if approxScalar(float64(aa.Angle), float64(ab.Angle), t) && approxSlices(aa.Axis.slice(), ab.Axis.slice(), t) {
			return true
		}
		// (n, theta) and (-n, -theta) are the same rotation.
		return approxScalar(float64(aa.Angle), -float64(ab.Angle), t) &&
			approxSlices(aa.Axis.slice(), ab.Axis.Neg().slice(), t)
	case RotationVectorKind:
		return approxSlices(a.(Vector3[S]).slice(), b.(Vector3[S]).slice(), t)
	default:
		panic(errors.Errorf("no comparison for %v", kindA))
	}
}

// approxSlices reports whether |a - b| <= tol * max(1, min(|a|, |b|)): an absolute tolerance for
// small values and a relative one for large values.
func approxSlices(a, b []float64, tol float64) bool {
	scale := math.Max(1, math.Min(floats.Norm(a, 2), floats.Norm(b, 2)))
	return floats.Distance(a, b, 2) <= tol*scale
}

func approxScalar(a, b, tol float64) bool {
	return approxSlices([]float64{a}, []float64{b}, tol)
}

func inverseData[S Float](kind Kind, data any) any {
	switch kind {
	case RotationMatrixKind:
		return data.(Matrix3[S]).Transpose()
	case AxisAngleKind:
		return data.(AxisAngle[S]).Inverse()
	case QuaternionKind:
		return data.(Quaternion[S]).Conj()
	case RotationVectorKind:
		return data.(Vector3[S]).Neg()
	default:
		panic(errors.Errorf("no inverse for %v", kind))
	}
}

func identityData[S Float](kind Kind) any {
	switch kind {
	case RotationMatrixKind:
		return Identity3[S]()
	case AxisAngleKind:
		return IdentityAxisAngle[S]()
	case QuaternionKind:
		return IdentityQuaternion[S]()
	case RotationVectorKind:
		return Vector3[S]{}
	default:
		panic(errors.Errorf("no identity for %v", kind))
	}
}

// isIdentityData is true exactly for the identity encoding of each representation; it does not
// tolerate round-off. Use IsApprox against an identity value for a tolerant check.
func isIdentityData[S Float](kind Kind, data any) bool {
	switch kind {
	case RotationMatrixKind:
		return data.(Matrix3[S]) == Identity3[S]()
	case AxisAngleKind:
		return data.(AxisAngle[S]).Angle == 0
	case QuaternionKind:
		return data.(Quaternion[S]) == IdentityQuaternion[S]()
	case RotationVectorKind:
		return data.(Vector3[S]).IsZero()
	default:
		panic(errors.Errorf("no identity for %v", kind))
	}
}

// normalizeData restores the representation invariants of drifted data.
func normalizeData[S Float](kind Kind, data any) any {
	switch kind {
	case RotationMatrixKind:
		return data.(Matrix3[S]).Orthonormalize()
	case AxisAngleKind:
		aa := data.(AxisAngle[S])
		if aa.Angle == 0 {
			return aa
		}
		return aa.Normalize()
	case QuaternionKind:
		return data.(Quaternion[S]).Normalize()
	case RotationVectorKind:
		return data
	default:
		panic(errors.Errorf("no normalization for %v", kind))
	}
}
