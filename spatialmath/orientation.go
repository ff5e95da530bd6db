// Package spatialmath defines the SO(3) rotation group and the interchangeable encodings
// (rotation matrix, axis-angle, quaternion, rotation vector) used to store an orientation.
//
// Every encoding converts to and from a single canonical encoding, the 3x3 rotation matrix.
// Conversions between two non-canonical encodings take two hops through the canonical one unless
// a cheaper exact shortcut is registered for that pair. Group operations dispatch to a native
// implementation when both operands share a group-native encoding and fall back to the canonical
// encoding otherwise.
package spatialmath

import (
	"math/rand"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/exp/constraints"
)

// Float is the scalar type an orientation is stored in.
type Float interface {
	constraints.Float
}

// Kind identifies a representation of SO(3). Kinds are pure dispatch keys and carry no data.
type Kind int

const (
	// RotationMatrixKind is a 3x3 orthonormal matrix with determinant +1.
	RotationMatrixKind Kind = iota
	// AxisAngleKind is a unit axis and an angle about it.
	AxisAngleKind
	// QuaternionKind is a unit quaternion.
	QuaternionKind
	// RotationVectorKind is a 3-vector whose norm is the angle and whose direction is the axis.
	RotationVectorKind
)

// CanonicalKind is the representation every unoptimized conversion and group operation goes through.
const CanonicalKind = RotationMatrixKind

// Kinds lists every registered representation in conversion table order: the canonical rotation
// matrix first, then rotation vector, axis-angle and quaternion. This is not the numeric order of
// Kind.
var Kinds = []Kind{RotationMatrixKind, RotationVectorKind, AxisAngleKind, QuaternionKind}

// Traits describes a representation kind.
type Traits struct {
	Kind Kind
	Name string
	// IsCoordinates is true for flat coordinate encodings that have no native group product.
	IsCoordinates bool
}

var traitsTable = map[Kind]Traits{
	RotationMatrixKind: {Kind: RotationMatrixKind, Name: "rotation_matrix", IsCoordinates: false},
	AxisAngleKind:      {Kind: AxisAngleKind, Name: "axis_angle", IsCoordinates: false},
	QuaternionKind:     {Kind: QuaternionKind, Name: "quaternion", IsCoordinates: false},
	RotationVectorKind: {Kind: RotationVectorKind, Name: "rotation_vector", IsCoordinates: true},
}

// TraitsOf returns the traits of a representation kind. Asking for a kind outside of the closed
// set is a programming error and panics.
func TraitsOf(kind Kind) Traits {
	t, ok := traitsTable[kind]
	if !ok {
		panic(errors.Errorf("no traits registered for representation kind %d", int(kind)))
	}
	return t
}

func (k Kind) String() string {
	if t, ok := traitsTable[k]; ok {
		return t.Name
	}
	return "unknown"
}

// ParseKind returns the kind with the given name. Dashes and underscores are interchangeable.
func ParseKind(name string) (Kind, error) {
	normalized := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(name)), "-", "_")
	for _, k := range Kinds {
		if traitsTable[k].Name == normalized {
			return k, nil
		}
	}
	return 0, errors.Errorf("representation %q not recognized", name)
}

// RepData is the closed set of raw data types backing a representation.
type RepData[S Float] interface {
	Matrix3[S] | AxisAngle[S] | Quaternion[S] | Vector3[S]
}

// KindOf returns the representation kind stored in data type D.
func KindOf[S Float, D RepData[S]]() Kind {
	var d D
	return kindOfData[S](d)
}

func kindOfData[S Float](data any) Kind {
	switch data.(type) {
	case Matrix3[S]:
		return RotationMatrixKind
	case AxisAngle[S]:
		return AxisAngleKind
	case Quaternion[S]:
		return QuaternionKind
	case Vector3[S]:
		return RotationVectorKind
	default:
		panic(errors.Errorf("%T is not a representation of SO(3)", data))
	}
}

// Orientation is implemented by every SO3 value regardless of the representation it is stored in.
// It is the argument type of cross-representation operations.
type Orientation[S Float] interface {
	Kind() Kind
	IsCoordinates() bool
	RotationMatrix() Matrix3[S]
	AxisAngle() AxisAngle[S]
	Quaternion() Quaternion[S]
	RotationVector() Vector3[S]
	repData() any
}

// OrientationAlmostEqual returns whether two orientations describe the same rotation within 1e-5.
func OrientationAlmostEqual[S Float](o1, o2 Orientation[S]) bool {
	return isApproxData[S](o1.Kind(), o1.repData(), o2.Kind(), o2.repData(), 1e-5)
}

// OrientationBetween returns the rotation taking o1 to o2, i.e. o2 * o1^-1, stored as a quaternion.
func OrientationBetween[S Float](o1, o2 Orientation[S]) SO3Quaternion[S] {
	q := o2.Quaternion().Mul(o1.Quaternion().Conj())
	return NewSO3FromData[S](q)
}

// AngleBetween returns the angle in [0, pi] of the rotation taking o1 to o2.
func AngleBetween[S Float](o1, o2 Orientation[S]) S {
	return QuatToAxisAngle(OrientationBetween(o1, o2).RepData()).Angle
}

// The functions below mirror the SO3 methods for callers that only know the representation kind at
// run time.

// IdentityOrientation returns the identity rotation stored in the given kind.
func IdentityOrientation[S Float](kind Kind) Orientation[S] {
	return orientationFromData[S](kind, identityData[S](kind))
}

// ConvertOrientation returns o converted to the given kind.
func ConvertOrientation[S Float](o Orientation[S], kind Kind) Orientation[S] {
	return orientationFromData[S](kind, convertData[S](o.Kind(), kind, o.repData()))
}

// ComposeOrientations returns a * b in the kind of a.
func ComposeOrientations[S Float](a, b Orientation[S]) Orientation[S] {
	return orientationFromData[S](a.Kind(), mulData[S](a.Kind(), a.repData(), b.Kind(), b.repData()))
}

// InvertOrientation returns the inverse of o in the kind of o.
func InvertOrientation[S Float](o Orientation[S]) Orientation[S] {
	return orientationFromData[S](o.Kind(), inverseData[S](o.Kind(), o.repData()))
}

// ExpOrientation returns Exp(w) stored in the given kind.
func ExpOrientation[S Float](w Vector3[S], kind Kind) Orientation[S] {
	return orientationFromData[S](kind, convertData[S](RotationVectorKind, kind, w))
}

// RandomOrientation returns a uniformly distributed random rotation stored in the given kind.
func RandomOrientation[S Float](rng *rand.Rand, kind Kind) Orientation[S] {
	return orientationFromData[S](kind, convertData[S](QuaternionKind, kind, RandomQuaternion[S](rng)))
}

func orientationFromData[S Float](kind Kind, data any) Orientation[S] {
	switch kind {
	case RotationMatrixKind:
		return SO3RotationMatrix[S]{data: data.(Matrix3[S])}
	case AxisAngleKind:
		return SO3AxisAngle[S]{data: data.(AxisAngle[S])}
	case QuaternionKind:
		return SO3Quaternion[S]{data: data.(Quaternion[S])}
	case RotationVectorKind:
		return SO3RotationVector[S]{data: data.(Vector3[S])}
	default:
		panic(errors.Errorf("no orientation type for representation kind %d", int(kind)))
	}
}
