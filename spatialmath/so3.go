package spatialmath

import (
	"fmt"
)

// SO3 is an element of the rotation group stored in the representation whose data type is D.
// The zero value is not valid for every representation; use NewSO3 for the identity.
//
// An SO3 owns its data outright: copying an SO3 copies the rotation, and no two values share state.
// Concurrent reads are safe; concurrent writes need external synchronization.
type SO3[S Float, D RepData[S]] struct {
	data D
}

type (
	// SO3RotationMatrix is an SO3 stored as a rotation matrix, the canonical representation.
	SO3RotationMatrix[S Float] = SO3[S, Matrix3[S]]
	// SO3AxisAngle is an SO3 stored as a unit axis and an angle.
	SO3AxisAngle[S Float] = SO3[S, AxisAngle[S]]
	// SO3Quaternion is an SO3 stored as a unit quaternion.
	SO3Quaternion[S Float] = SO3[S, Quaternion[S]]
	// SO3RotationVector is an SO3 stored as a rotation vector.
	SO3RotationVector[S Float] = SO3[S, Vector3[S]]

	// SO3d is a double precision SO3 in the canonical representation.
	SO3d = SO3RotationMatrix[float64]
	// SO3f is a single precision SO3 in the canonical representation.
	SO3f = SO3RotationMatrix[float32]
)

// NewSO3 returns the identity rotation in the representation D.
func NewSO3[S Float, D RepData[S]]() SO3[S, D] {
	return SO3[S, D]{data: identityData[S](KindOf[S, D]()).(D)}
}

// NewSO3FromData returns an SO3 holding data. The data must satisfy the invariants of its representation.
func NewSO3FromData[S Float, D RepData[S]](data D) SO3[S, D] {
	assertRepData[S](KindOf[S, D](), data)
	return SO3[S, D]{data: data}
}

// NewSO3From returns the rotation o converted to the representation D.
func NewSO3From[S Float, D RepData[S]](o Orientation[S]) SO3[S, D] {
	var s SO3[S, D]
	s.SetFrom(o)
	return s
}

// NewRotationMatrix returns an SO3 holding the rotation matrix m.
func NewRotationMatrix[S Float](m Matrix3[S]) SO3RotationMatrix[S] {
	return NewSO3FromData[S](m)
}

// NewAxisAngle returns an SO3 rotating by angle radians about the unit vector axis.
func NewAxisAngle[S Float](axis Vector3[S], angle S) SO3AxisAngle[S] {
	return NewSO3FromData[S](AxisAngle[S]{Axis: axis, Angle: angle})
}

// NewQuaternion returns an SO3 holding the unit quaternion w + xi + yj + zk.
func NewQuaternion[S Float](w, x, y, z S) SO3Quaternion[S] {
	return NewSO3FromData[S](Quaternion[S]{W: w, X: x, Y: y, Z: z})
}

// NewRotationVector returns an SO3 holding the rotation vector v.
func NewRotationVector[S Float](v Vector3[S]) SO3RotationVector[S] {
	return NewSO3FromData[S](v)
}

// SO3Exp returns Exp(w) stored in the representation D.
func SO3Exp[S Float, D RepData[S]](w Vector3[S]) SO3[S, D] {
	var s SO3[S, D]
	s.SetExp(w)
	return s
}

// Kind returns the representation the rotation is stored in.
func (s SO3[S, D]) Kind() Kind {
	return KindOf[S, D]()
}

// IsCoordinates returns whether the representation is a flat coordinate encoding.
func (s SO3[S, D]) IsCoordinates() bool {
	return TraitsOf(s.Kind()).IsCoordinates
}

// RepData returns a copy of the raw representation data.
func (s SO3[S, D]) RepData() D {
	return s.data
}

func (s SO3[S, D]) repData() any {
	return s.data
}

// SetRepData replaces the raw representation data.
func (s *SO3[S, D]) SetRepData(data D) {
	assertRepData[S](s.Kind(), data)
	s.data = data
}

// SetFrom assigns the rotation o, converting it to this representation.
func (s *SO3[S, D]) SetFrom(o Orientation[S]) {
	s.set(o.Kind(), o.repData())
}

func (s *SO3[S, D]) set(kind Kind, data any) {
	assertRepData[S](kind, data)
	s.data = convertData[S](kind, s.Kind(), data).(D)
}

// SetRotationMatrix assigns the rotation matrix m.
func (s *SO3[S, D]) SetRotationMatrix(m Matrix3[S]) {
	s.set(RotationMatrixKind, m)
}

// SetAxisAngle assigns the rotation by aa.Angle about aa.Axis.
func (s *SO3[S, D]) SetAxisAngle(aa AxisAngle[S]) {
	s.set(AxisAngleKind, aa)
}

// SetQuaternion assigns the unit quaternion q.
func (s *SO3[S, D]) SetQuaternion(q Quaternion[S]) {
	s.set(QuaternionKind, q)
}

// SetRotationVector assigns the rotation vector v.
func (s *SO3[S, D]) SetRotationVector(v Vector3[S]) {
	s.set(RotationVectorKind, v)
}

// RotationMatrix returns the rotation as a rotation matrix.
func (s SO3[S, D]) RotationMatrix() Matrix3[S] {
	return convertData[S](s.Kind(), RotationMatrixKind, s.data).(Matrix3[S])
}

// AxisAngle returns the rotation as an axis and an angle.
func (s SO3[S, D]) AxisAngle() AxisAngle[S] {
	return convertData[S](s.Kind(), AxisAngleKind, s.data).(AxisAngle[S])
}

// Quaternion returns the rotation as a unit quaternion.
func (s SO3[S, D]) Quaternion() Quaternion[S] {
	return convertData[S](s.Kind(), QuaternionKind, s.data).(Quaternion[S])
}

// RotationVector returns the rotation as a rotation vector.
func (s SO3[S, D]) RotationVector() Vector3[S] {
	return convertData[S](s.Kind(), RotationVectorKind, s.data).(Vector3[S])
}

// Mul returns the composition s * o in the representation of s. Applied to a vector, the result
// rotates by o first and by s second. Rotation vectors have no native product, so a rotation
// vector times a rotation vector costs two Exp calls and a Log.
func (s SO3[S, D]) Mul(o Orientation[S]) SO3[S, D] {
	return SO3[S, D]{data: mulData[S](s.Kind(), s.data, o.Kind(), o.repData()).(D)}
}

// MulInPlace sets s to s * o.
func (s *SO3[S, D]) MulInPlace(o Orientation[S]) {
	s.data = mulData[S](s.Kind(), s.data, o.Kind(), o.repData()).(D)
}

// Inverse returns the inverse rotation in the same representation.
func (s SO3[S, D]) Inverse() SO3[S, D] {
	return SO3[S, D]{data: inverseData[S](s.Kind(), s.data).(D)}
}

// Invert sets s to its inverse.
func (s *SO3[S, D]) Invert() {
	s.data = inverseData[S](s.Kind(), s.data).(D)
}

// IsIdentity returns whether the data is exactly the identity encoding of its representation.
func (s SO3[S, D]) IsIdentity() bool {
	return isIdentityData[S](s.Kind(), s.data)
}

// SetIdentity sets s to the identity rotation.
func (s *SO3[S, D]) SetIdentity() {
	s.data = identityData[S](s.Kind()).(D)
}

// IsApprox returns whether s and o describe the same rotation within tol.
func (s SO3[S, D]) IsApprox(o Orientation[S], tol S) bool {
	return isApproxData[S](s.Kind(), s.data, o.Kind(), o.repData(), tol)
}

// Equal returns whether s and o hold exactly the same data. Two axis-angles with zero angle are
// equal whatever their axes.
func (s SO3[S, D]) Equal(o SO3[S, D]) bool {
	if aa, ok := any(s.data).(AxisAngle[S]); ok && aa.Angle == 0 {
		return any(o.data).(AxisAngle[S]).Angle == 0
	}
	return s.data == o.data
}

// Log returns the logarithm of the rotation, a rotation vector with norm in [0, pi].
func (s SO3[S, D]) Log() Vector3[S] {
	return Log(s.RotationMatrix())
}

// SetExp sets s to Exp(w).
func (s *SO3[S, D]) SetExp(w Vector3[S]) {
	if s.Kind() == RotationVectorKind {
		s.data = any(w).(D)
		return
	}
	s.data = fromCanonical[S](s.Kind(), Exp(w)).(D)
}

// Normalize restores the invariants of the representation after numerical drift.
func (s *SO3[S, D]) Normalize() {
	s.data = normalizeData[S](s.Kind(), s.data).(D)
}

func (s SO3[S, D]) String() string {
	return fmt.Sprintf("%v%v", s.Kind(), s.data)
}
