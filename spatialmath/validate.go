package spatialmath

import (
	"math"

	"github.com/pkg/errors"
	"go.uber.org/multierr"
)

// ValidateRotationMatrix returns an error if m is not finite, not orthonormal or has a determinant
// other than +1, within tol.
func ValidateRotationMatrix[S Float](m Matrix3[S], tol S) error {
	if !m.IsFinite() {
		return errors.Errorf("rotation matrix %v is not finite", m)
	}
	var err error
	if e := m.orthonormalityError(); e > float64(tol) {
		err = multierr.Append(err, errors.Errorf("rotation matrix %v is not orthonormal (error %g)", m, e))
	}
	if det := float64(m.Det()); det < 0 {
		err = multierr.Append(err, errors.Errorf("rotation matrix %v is a reflection (determinant %g)", m, det))
	}
	return err
}

// ValidateQuaternion returns an error if q is not a finite unit quaternion within tol.
func ValidateQuaternion[S Float](q Quaternion[S], tol S) error {
	if !q.IsFinite() {
		return errors.Errorf("quaternion %v is not finite", q)
	}
	if n := float64(q.Norm()); math.Abs(n-1) > float64(tol) {
		return errors.Errorf("quaternion %v is not unit length (norm %g)", q, n)
	}
	return nil
}

// ValidateAxisAngle returns an error if the angle is not finite or if the axis is not a finite unit
// vector. The axis is unconstrained when the angle is exactly zero.
func ValidateAxisAngle[S Float](aa AxisAngle[S], tol S) error {
	var err error
	if math.IsNaN(float64(aa.Angle)) || math.IsInf(float64(aa.Angle), 0) {
		err = multierr.Append(err, errors.Errorf("axis angle %v has a non-finite angle", aa))
	}
	if aa.Angle == 0 {
		return err
	}
	if !aa.Axis.IsFinite() {
		return multierr.Append(err, errors.Errorf("axis angle %v has a non-finite axis", aa))
	}
	if n := float64(aa.Axis.Norm()); math.Abs(n-1) > float64(tol) {
		err = multierr.Append(err, errors.Errorf("axis angle %v does not have a unit axis (norm %g)", aa, n))
	}
	return err
}

// ValidateRotationVector returns an error if v is not finite.
func ValidateRotationVector[S Float](v Vector3[S]) error {
	if !v.IsFinite() {
		return errors.Errorf("rotation vector %v is not finite", v)
	}
	return nil
}

// ValidateRepData validates representation data of any kind.
func ValidateRepData[S Float, D RepData[S]](data D, tol S) error {
	return validateData[S](KindOf[S, D](), data, tol)
}

func validateData[S Float](kind Kind, data any, tol S) error {
	switch kind {
	case RotationMatrixKind:
		return ValidateRotationMatrix(data.(Matrix3[S]), tol)
	case AxisAngleKind:
		return ValidateAxisAngle(data.(AxisAngle[S]), tol)
	case QuaternionKind:
		return ValidateQuaternion(data.(Quaternion[S]), tol)
	case RotationVectorKind:
		return ValidateRotationVector(data.(Vector3[S]))
	default:
		return errors.Errorf("representation kind %d not recognized", int(kind))
	}
}

// debugTolerance is the tolerance debug assertions check invariants with: the square root of the
// machine epsilon of S.
func debugTolerance[S Float]() S {
	return S(math.Sqrt(float64(Epsilon[S]())))
}
