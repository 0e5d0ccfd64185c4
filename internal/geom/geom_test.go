package geom

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const tol = 1e-9

func TestVec3_Arithmetic(t *testing.T) {
	a := V(1, 2, 3)
	b := V(4, 5, 6)

	assert.Equal(t, V(5, 7, 9), a.Add(b))
	assert.Equal(t, V(3, 3, 3), b.Sub(a))
	assert.Equal(t, V(2, 4, 6), a.Scale(2))
	assert.Equal(t, V(-1, -2, -3), a.Neg())
	assert.Equal(t, 32.0, a.Dot(b))
	assert.Equal(t, V(-3, 6, -3), a.Cross(b))
	assert.Equal(t, UnitZ, UnitX.Cross(UnitY))
}

func TestVec3_Unit(t *testing.T) {
	tests := []struct {
		name string
		v    Vec3
		ok   bool
	}{
		{"axis", V(0, 3, 0), true},
		{"diagonal", V(1, 1, 1), true},
		{"zero", Zero, false},
		{"NaN", V(math.NaN(), 0, 0), false},
		{"Inf", V(math.Inf(1), 0, 0), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			u, ok := tt.v.Unit()
			assert.Equal(t, tt.ok, ok)
			if ok {
				assert.InDelta(t, 1.0, u.Length(), tol)
			} else {
				assert.Equal(t, Zero, u)
			}
		})
	}
}

func TestVec3_Rotate(t *testing.T) {
	got := UnitX.Rotate(UnitZ, math.Pi/2)
	assert.True(t, got.ApproxEqual(UnitY, tol), "got %v", got)

	got = UnitY.Rotate(UnitY, 1.234)
	assert.True(t, got.ApproxEqual(UnitY, tol), "rotation about itself moved the vector: %v", got)
}

func TestVec3_Perpendicular(t *testing.T) {
	for _, v := range []Vec3{UnitX, UnitY, UnitZ, V(1, 2, 3).Normalize(), V(-0.3, 0.1, 0.9).Normalize()} {
		p := v.Perpendicular()
		assert.InDelta(t, 0, p.Dot(v), tol)
		assert.InDelta(t, 1, p.Length(), tol)
	}
}

func TestDirection(t *testing.T) {
	assert.True(t, Direction(0, 0).ApproxEqual(UnitY, tol))
	assert.True(t, Direction(math.Pi/2, 0).ApproxEqual(UnitX, tol))
	assert.True(t, Direction(math.Pi/2, math.Pi/2).ApproxEqual(UnitZ, tol))
}

func TestAxis(t *testing.T) {
	tests := []struct {
		name          string
		min, max, stp float64
		want          []float64
	}{
		{"unit step", -2, 2, 1, []float64{-2, -1, 0, 1, 2}},
		{"half step", -3, 3, 1.5, []float64{-3, -1.5, 0, 1.5, 3}},
		{"inexact step keeps endpoint", -2, 2, 0.8, []float64{-2, -1.2, -0.4, 0.4, 1.2, 2}},
		{"step overshoots", -2, 2, 0.6, []float64{-2, -1.4, -0.8, -0.2, 0.4, 1, 1.6}},
		{"bad step", 0, 1, 0, nil},
		{"empty range", 1, 0, 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Axis(tt.min, tt.max, tt.stp)
			require.Len(t, got, len(tt.want))
			for i := range got {
				assert.InDelta(t, tt.want[i], got[i], 1e-12)
			}
		})
	}
}

func TestLattice3(t *testing.T) {
	n := 0
	Lattice3(Axis(-1, 1, 1), Axis(-1, 1, 1), Axis(0, 1, 1), func(Vec3) { n++ })
	assert.Equal(t, 18, n)
}

// ksUniform returns the Kolmogorov-Smirnov statistic of xs against the
// uniform distribution on [lo, hi].
func ksUniform(xs []float64, lo, hi float64) float64 {
	sort.Float64s(xs)
	n := float64(len(xs))
	var d float64
	for i, x := range xs {
		f := (x - lo) / (hi - lo)
		d = math.Max(d, math.Max(f-float64(i)/n, float64(i+1)/n-f))
	}
	return d
}

func TestUniformSphere_Unbiased(t *testing.T) {
	const n = 20000
	rng := rand.New(rand.NewSource(7))

	zs := make([]float64, n)
	phis := make([]float64, n)
	var mean Vec3
	for i := 0; i < n; i++ {
		p := UniformSphere(rng)
		require.InDelta(t, 1, p.Length(), 1e-12)
		zs[i] = p.Z
		phis[i] = math.Atan2(p.Y, p.X) + math.Pi
		mean = mean.Add(p)
	}
	mean = mean.Scale(1.0 / n)

	// 99.9% critical value for KS is about 1.95/sqrt(n).
	crit := 1.95 / math.Sqrt(n)
	assert.Less(t, ksUniform(zs, -1, 1), crit, "cos(theta) not uniform on [-1,1]")
	assert.Less(t, ksUniform(phis, 0, 2*math.Pi), crit, "azimuth not uniform")
	assert.Less(t, mean.Length(), 0.05, "sample mean drifted from the centre: %v", mean)
}

func TestCatmullRom_Endpoints(t *testing.T) {
	pts := []Vec3{V(0, 0, 0), V(1, 2, 0), V(3, 1, 0), V(4, 4, 1)}
	c := CatmullRom{Points: pts}

	assert.True(t, c.At(0).ApproxEqual(pts[0], tol))
	assert.True(t, c.At(1).ApproxEqual(pts[3], tol))
	// interior control points are interpolated exactly at t = i/(n-1)
	assert.True(t, c.At(1.0/3).ApproxEqual(pts[1], 1e-9))
	assert.True(t, c.At(2.0/3).ApproxEqual(pts[2], 1e-9))
}

func TestCatmullRom_Collinear(t *testing.T) {
	c := CatmullRom{Points: []Vec3{V(0, 0, -3), V(0, 0, 0), V(0, 0, 3)}}
	for _, p := range c.Sample(20) {
		assert.InDelta(t, 0, p.X, tol)
		assert.InDelta(t, 0, p.Y, tol)
	}
}

func TestCatmullRom_Closed(t *testing.T) {
	c := CatmullRom{Points: Circle(Zero, UnitX, UnitZ, 2, 8)[:8], Closed: true}
	s := c.Sample(32)
	require.Len(t, s, 33)
	assert.True(t, s[0].ApproxEqual(s[32], tol))
	for _, p := range s {
		assert.InDelta(t, 2, p.Length(), 0.1)
	}
}

func TestExtrude(t *testing.T) {
	path := CatmullRom{Points: []Vec3{V(0, 0, 0), V(1, 1, 0), V(2, 0, 0)}}.Sample(16)
	verts := Extrude(path, 0.1, 8, false)
	require.Len(t, verts, len(path)*9)

	tangents, normals, binormals := Frames(path, false)
	for i := range path {
		assert.InDelta(t, 0, tangents[i].Dot(normals[i]), 1e-9)
		assert.InDelta(t, 0, tangents[i].Dot(binormals[i]), 1e-9)
		for j := 0; j <= 8; j++ {
			assert.InDelta(t, 0.1, verts[i*9+j].Distance(path[i]), 1e-9)
		}
	}

	assert.Nil(t, Extrude(path[:1], 0.1, 8, false))
}
