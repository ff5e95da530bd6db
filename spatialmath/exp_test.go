package spatialmath

import (
	"math"
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"go.viam.com/test"
	"gonum.org/v1/gonum/num/quat"
)

func TestExpQuarterTurn(t *testing.T) {
	m := Exp(Vector3[float64]{0, 0, math.Pi / 2})
	expected := Matrix3[float64]{{0, -1, 0}, {1, 0, 0}, {0, 0, 1}}
	test.That(t, cmp.Diff(m, expected, closeTo), test.ShouldEqual, "")

	// A quarter turn about z takes the x-axis to the y-axis.
	test.That(t, cmp.Diff(m.MulVec(Vector3[float64]{1, 0, 0}), Vector3[float64]{0, 1, 0}, closeTo), test.ShouldEqual, "")

	// As axis-angle it is a turn of pi/2 about +z.
	aa := FromCanonical[float64, AxisAngle[float64]](m)
	test.That(t, cmp.Diff(aa.Axis, Vector3[float64]{0, 0, 1}, closeTo), test.ShouldEqual, "")
	test.That(t, aa.Angle, test.ShouldAlmostEqual, math.Pi/2)
	test.That(t, SO3Exp[float64, AxisAngle[float64]](Vector3[float64]{0, 0, math.Pi / 2}).RepData().Angle,
		test.ShouldAlmostEqual, math.Pi/2)
}

func TestExpIdentity(t *testing.T) {
	test.That(t, Exp(Vector3[float64]{}), test.ShouldResemble, Identity3[float64]())
	test.That(t, Exp(Vector3[float32]{}), test.ShouldResemble, Identity3[float32]())
	test.That(t, Log(Identity3[float64]()), test.ShouldResemble, Vector3[float64]{})
}

func TestExpSmallAngles(t *testing.T) {
	eps := Epsilon[float64]()
	test.That(t, eps, test.ShouldEqual, 2.220446049250313e-16)
	test.That(t, Epsilon[float32](), test.ShouldEqual, float32(1.1920928955078125e-07))

	// The series and the closed form agree where both are accurate.
	for _, theta := range []float64{1e-4, 1e-3, 1e-2} {
		alpha, beta := rodriguesSeries(theta)
		test.That(t, alpha, test.ShouldAlmostEqual, math.Sin(theta)/theta, 1e-7)
		test.That(t, beta, test.ShouldAlmostEqual, (1-math.Cos(theta))/theta/theta, 1e-7)
	}

	// Exp is continuous across the switch to the series.
	axis := Vector3[float64]{2, -1, 3}.Normalize()
	below := Exp(axis.Scale(eps * (1 - 1e-3)))
	above := Exp(axis.Scale(eps * (1 + 1e-3)))
	test.That(t, cmp.Diff(below, above, closeTo), test.ShouldEqual, "")

	// Near zero Exp is the identity plus the hat operator.
	w := axis.Scale(1e-9)
	expected := Identity3[float64]()
	hat := Hat(w)
	for i := range expected {
		for j := range expected[i] {
			expected[i][j] += hat[i][j]
		}
	}
	test.That(t, cmp.Diff(Exp(w), expected, closeTo), test.ShouldEqual, "")

	// Single precision switches to the series at a much larger angle.
	small32 := Exp(Vector3[float32]{1e-8, 0, 0})
	test.That(t, small32[1][1], test.ShouldEqual, float32(1))
	test.That(t, float64(small32[2][1]), test.ShouldAlmostEqual, 1e-8, 1e-12)
	test.That(t, ValidateRotationMatrix(small32, debugTolerance[float32]()), test.ShouldBeNil)
}

func TestExpMatchesQuaternionExp(t *testing.T) {
	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 200; i++ {
		w := Vector3[float64]{rng.NormFloat64(), rng.NormFloat64(), rng.NormFloat64()}
		q := QuaternionFromNumber[float64](quat.Exp(quat.Number{Imag: w[0] / 2, Jmag: w[1] / 2, Kmag: w[2] / 2}))
		test.That(t, cmp.Diff(Exp(w), QuatToMat(q), closeTo), test.ShouldEqual, "")
		test.That(t, ValidateRotationMatrix(Exp(w), 1e-12), test.ShouldBeNil)
	}
}

func TestLogExpInverse(t *testing.T) {
	rng := rand.New(rand.NewSource(6))
	for i := 0; i < 200; i++ {
		q := RandomQuaternion[float64](rng)
		m := QuatToMat(q)

		w := Log(m)
		test.That(t, float64(w.Norm()), test.ShouldBeLessThanOrEqualTo, math.Pi+1e-12)
		test.That(t, cmp.Diff(Exp(w), m, closeTo), test.ShouldEqual, "")

		// Log inverts Exp on the open ball of radius pi.
		test.That(t, cmp.Diff(Log(Exp(w)), w, closeTo), test.ShouldEqual, "")
	}

	// Vectors longer than pi come back as the equivalent shorter vector.
	w := Log(Exp(Vector3[float64]{0, 0, 3 * math.Pi / 2}))
	test.That(t, cmp.Diff(w, Vector3[float64]{0, 0, -math.Pi / 2}, closeTo), test.ShouldEqual, "")

	// A half turn has a norm of exactly pi.
	w = Log(Exp(Vector3[float64]{math.Pi, 0, 0}))
	test.That(t, float64(w.Norm()), test.ShouldAlmostEqual, math.Pi)
	test.That(t, math.Abs(w[0]), test.ShouldAlmostEqual, math.Pi)
}

func TestHatVee(t *testing.T) {
	w := Vector3[float64]{1, 2, 3}
	v := Vector3[float64]{-4, 0.5, 2}

	hat := Hat(w)
	test.That(t, hat.MulVec(v), test.ShouldResemble, w.Cross(v))
	test.That(t, hat.Transpose(), test.ShouldResemble, Hat(w.Neg()))
	test.That(t, Vee(hat), test.ShouldResemble, w)

	// Vee ignores the symmetric part.
	sym := Matrix3[float64]{{5, 1, 2}, {1, 6, 3}, {2, 3, 7}}
	withSym := hat
	for i := range withSym {
		for j := range withSym[i] {
			withSym[i][j] += sym[i][j]
		}
	}
	test.That(t, Vee(withSym), test.ShouldResemble, w)
}
