package interpolate

import (
	"math/rand/v2"

	"github.com/tphakala/go-interpolate/geom"
)

// randomUnitQuat draws a uniformly distributed unit quaternion.
func randomUnitQuat(rng *rand.Rand) geom.QuatF64 {
	for {
		q := geom.NewQuat(rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1)
		if l := q.Length(); l > 0.1 && l <= 1 {
			return q.Normalize()
		}
	}
}

// randomStep returns a rotation of at most maxAngle radians about a random axis.
func randomStep(rng *rand.Rand, maxAngle float64) geom.QuatF64 {
	axis := geom.NewVec3(rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1)
	return geom.QuatFromAxisAngle(axis, rng.Float64()*maxAngle)
}

// quatAs converts a float64 quaternion to precision S.
func quatAs[S Float](q geom.QuatF64) geom.Quat[S] {
	return geom.NewQuat(S(q.X), S(q.Y), S(q.Z), S(q.W))
}

// aboutAxis returns the rotation of angle radians about axis at precision S.
func aboutAxis[S Float](axis geom.Vec3F64, angle float64) geom.Quat[S] {
	return quatAs[S](geom.QuatFromAxisAngle(axis, angle))
}
