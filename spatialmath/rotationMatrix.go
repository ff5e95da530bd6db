package spatialmath

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
	"gonum.org/v1/gonum/mat"
)

// Matrix3 is a row-major 3x3 matrix. As raw representation data it is a rotation matrix:
// orthonormal with determinant +1. Matrix3 is the canonical representation.
type Matrix3[S Float] [3][3]S

// Identity3 returns the 3x3 identity matrix.
func Identity3[S Float]() Matrix3[S] {
	return Matrix3[S]{{1, 0, 0}, {0, 1, 0}, {0, 0, 1}}
}

// Matrix3FromMgl converts a column-major mgl64.Mat3.
func Matrix3FromMgl[S Float](m mgl64.Mat3) Matrix3[S] {
	var out Matrix3[S]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = S(m.At(i, j))
		}
	}
	return out
}

// Mgl returns the matrix as a float64 mgl64.Mat3.
func (m Matrix3[S]) Mgl() mgl64.Mat3 {
	return mgl64.Mat3FromRows(m.Row(0).mgl(), m.Row(1).mgl(), m.Row(2).mgl())
}

// Row returns row i.
func (m Matrix3[S]) Row(i int) Vector3[S] {
	return Vector3[S](m[i])
}

// Col returns column j.
func (m Matrix3[S]) Col(j int) Vector3[S] {
	return Vector3[S]{m[0][j], m[1][j], m[2][j]}
}

// Mul returns the matrix product m * o.
func (m Matrix3[S]) Mul(o Matrix3[S]) Matrix3[S] {
	return Matrix3FromMgl[S](m.Mgl().Mul3(o.Mgl()))
}

// MulVec returns m * v.
func (m Matrix3[S]) MulVec(v Vector3[S]) Vector3[S] {
	r := m.Mgl().Mul3x1(v.mgl())
	return Vector3[S]{S(r[0]), S(r[1]), S(r[2])}
}

// Transpose returns the transpose, which is the inverse of a rotation matrix.
func (m Matrix3[S]) Transpose() Matrix3[S] {
	return Matrix3[S]{
		{m[0][0], m[1][0], m[2][0]},
		{m[0][1], m[1][1], m[2][1]},
		{m[0][2], m[1][2], m[2][2]},
	}
}

// Det returns the determinant.
func (m Matrix3[S]) Det() S {
	return S(m.Mgl().Det())
}

// Trace returns the sum of the diagonal.
func (m Matrix3[S]) Trace() S {
	return m[0][0] + m[1][1] + m[2][2]
}

// IsFinite returns whether no entry is NaN or infinite.
func (m Matrix3[S]) IsFinite() bool {
	for i := 0; i < 3; i++ {
		if !m.Row(i).IsFinite() {
			return false
		}
	}
	return true
}

// Orthonormalize returns the rotation matrix closest to m in the Frobenius norm. It is used to
// remove the drift that accumulates when rotation matrices are composed many times.
// If the decomposition fails m is returned unchanged.
func (m Matrix3[S]) Orthonormalize() Matrix3[S] {
	a := mat.NewDense(3, 3, m.slice())
	var svd mat.SVD
	if !svd.Factorize(a, mat.SVDFull) {
		return m
	}
	var u, v mat.Dense
	svd.UTo(&u)
	svd.VTo(&v)

	// Flip the last singular direction when U*V^T would be a reflection.
	d := mat.NewDiagDense(3, []float64{1, 1, 1})
	if mat.Det(&u)*mat.Det(&v) < 0 {
		d.SetDiag(2, -1)
	}
	var r mat.Dense
	r.Product(&u, d, v.T())

	var out Matrix3[S]
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			out[i][j] = S(r.At(i, j))
		}
	}
	return out
}

func (m Matrix3[S]) slice() []float64 {
	s := make([]float64, 0, 9)
	for i := 0; i < 3; i++ {
		s = append(s, m.Row(i).slice()...)
	}
	return s
}

func (m Matrix3[S]) String() string {
	return fmt.Sprintf("[%v %v %v]", m.Row(0), m.Row(1), m.Row(2))
}

func (v Vector3[S]) mgl() mgl64.Vec3 {
	return mgl64.Vec3{float64(v[0]), float64(v[1]), float64(v[2])}
}

// orthonormalityError returns the largest deviation of m^T*m from the identity and of det(m) from 1.
func (m Matrix3[S]) orthonormalityError() float64 {
	g := m.Mgl().Transpose().Mul3(m.Mgl())
	worst := math.Abs(g.Det() - 1)
	worst = math.Max(worst, math.Abs(m.Mgl().Det()-1))
	id := mgl64.Ident3()
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			worst = math.Max(worst, math.Abs(g.At(i, j)-id.At(i, j)))
		}
	}
	return worst
}
