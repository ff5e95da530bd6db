package spatialmath

import (
	"testing"

	"github.com/golang/geo/r3"
	"github.com/google/go-cmp/cmp"
	"go.viam.com/test"
)

func TestAngularVelocityFromChange(t *testing.T) {
	dt := 0.25

	for _, tc := range []struct {
		name string
		rate r3.Vector
	}{
		{"about x", r3.Vector{X: 1}},
		{"about y", r3.Vector{Y: -1}},
		{"about z", r3.Vector{Z: 1}},
		{"fast about x", r3.Vector{X: 3}},
		{"fast about z", r3.Vector{Z: -6}},
		{"skewed", r3.Vector{X: 1, Y: -2, Z: 3}},
		{"nearly still", r3.Vector{X: 1e-9, Y: 2e-9}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			expected := R3ToAngVel[float64](tc.rate)
			diff := SO3Exp[float64, Quaternion[float64]](expected.Vector3().Scale(dt))

			qav := QuatToAngVel(diff.RepData(), dt)
			oav := OrientationToAngularVel[float64](diff, dt)
			rav := RotMatToAngVel(diff.RotationMatrix(), dt)

			t.Run("quaternion", func(t *testing.T) {
				test.That(t, cmp.Diff(qav, expected, closeTo), test.ShouldEqual, "")
			})
			t.Run("orientation", func(t *testing.T) {
				test.That(t, cmp.Diff(oav, expected, closeTo), test.ShouldEqual, "")
			})
			t.Run("rotation matrix", func(t *testing.T) {
				test.That(t, cmp.Diff(rav, expected, closeTo), test.ShouldEqual, "")
			})
			t.Run("integrate", func(t *testing.T) {
				start := NewRotationMatrix(m45x)
				end := Integrate(start, expected, dt)
				test.That(t, end.IsApprox(start.Mul(diff), 1e-9), test.ShouldBeTrue)
				test.That(t, cmp.Diff(OrientationToAngularVel[float64](OrientationBetween[float64](start, end), dt),
					R3ToAngVel[float64](start.RotationMatrix().MulVec(expected.Vector3()).R3()), closeTo), test.ShouldEqual, "")
			})
		})
	}
}
