package geom

import (
	"math"
	"math/rand"
)

const latticeEps = 1e-9

// Axis returns the inclusive samples min, min+step, ... <= max. Samples are
// computed from an integer index so that accumulated rounding never drops
// or adds an endpoint.
func Axis(min, max, step float64) []float64 {
	if step <= 0 || max < min {
		return nil
	}
	n := int(math.Floor((max-min)/step+latticeEps)) + 1
	out := make([]float64, n)
	for i := range out {
		v := min + float64(i)*step
		if math.Abs(v) < latticeEps {
			v = 0
		}
		out[i] = v
	}
	return out
}

// Lattice3 calls fn for every point of the cartesian product xs × ys × zs,
// x varying slowest.
func Lattice3(xs, ys, zs []float64, fn func(p Vec3)) {
	for _, x := range xs {
		for _, y := range ys {
			for _, z := range zs {
				fn(Vec3{x, y, z})
			}
		}
	}
}

// UniformSphere draws a point uniformly distributed on the unit sphere.
// The polar angle comes from the inverse-cosine transform cos θ = 2u-1,
// which makes z = cos θ uniform on [-1, 1] (Archimedes' hat-box theorem),
// and the azimuth is uniform on [0, 2π).
func UniformSphere(rng *rand.Rand) Vec3 {
	theta := math.Acos(2*rng.Float64() - 1)
	phi := rng.Float64() * 2 * math.Pi
	st := math.Sin(theta)
	return Vec3{st * math.Cos(phi), st * math.Sin(phi), math.Cos(theta)}
}

// Circle returns n+1 points of a circle of radius r in the plane spanned
// by the unit vectors u and v around center, closing back on the start.
func Circle(center, u, v Vec3, r float64, n int) []Vec3 {
	pts := make([]Vec3, n+1)
	for i := 0; i <= n; i++ {
		a := float64(i) / float64(n) * 2 * math.Pi
		pts[i] = center.Add(u.Scale(r * math.Cos(a))).Add(v.Scale(r * math.Sin(a)))
	}
	return pts
}
