package spatialmath

import (
	"math"
	"math/rand"
)

// RandomQuaternion samples a unit quaternion uniformly over SO(3) using Shoemake's subgroup
// algorithm. A nil rng draws from the global source. The real part of the result is non-negative.
func RandomQuaternion[S Float](rng *rand.Rand) Quaternion[S] {
	float := rand.Float64
	if rng != nil {
		float = rng.Float64
	}
	u1, u2, u3 := float(), 2*math.Pi*float(), 2*math.Pi*float()
	a, b := math.Sqrt(1-u1), math.Sqrt(u1)
	q := Quaternion[S]{
		W: S(b * math.Cos(u3)),
		X: S(a * math.Sin(u2)),
		Y: S(a * math.Cos(u2)),
		Z: S(b * math.Sin(u3)),
	}
	if q.W < 0 {
		q = q.Neg()
	}
	return q
}

// RandomSO3 returns a uniformly distributed random rotation in the representation D.
func RandomSO3[S Float, D RepData[S]](rng *rand.Rand) SO3[S, D] {
	var s SO3[S, D]
	s.SetRandom(rng)
	return s
}

// SetRandom sets s to a uniformly distributed random rotation. A nil rng draws from the global source.
func (s *SO3[S, D]) SetRandom(rng *rand.Rand) {
	s.data = convertData[S](QuaternionKind, s.Kind(), RandomQuaternion[S](rng)).(D)
}
