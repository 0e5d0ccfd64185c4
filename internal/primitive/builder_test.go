package primitive

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/emviz/internal/geom"
	"github.com/san-kum/emviz/internal/scene"
)

func TestVectorGlyph(t *testing.T) {
	tr := scene.NewTracker()
	b := New(tr)

	p := b.VectorGlyph(geom.UnitZ, geom.V(1, 1, 0), 2, 0xff0000, 0.3, 0.15)
	require.Equal(t, scene.KindArrow, p.Kind)

	a, ok := p.Shape().(scene.Arrow)
	require.True(t, ok)
	assert.True(t, a.Tip().ApproxEqual(geom.V(1, 1, 2), 1e-12))
	assert.Equal(t, scene.Color(0xff0000), p.Material.Color)
	assert.Nil(t, p.Texture)
	assert.Equal(t, 2, tr.Live())
}

func TestVectorGlyph_RejectsBadInput(t *testing.T) {
	b := New(scene.NewTracker())

	assert.Panics(t, func() { b.VectorGlyph(geom.V(1, 1, 0), geom.Zero, 1, 0, 0.2, 0.1) })
	assert.Panics(t, func() { b.VectorGlyph(geom.Zero, geom.Zero, 1, 0, 0.2, 0.1) })
	assert.Panics(t, func() { b.VectorGlyph(geom.UnitX, geom.Zero, 0, 0, 0.2, 0.1) })
	assert.Panics(t, func() { b.VectorGlyph(geom.UnitX, geom.Zero, math.NaN(), 0, 0.2, 0.1) })
}

func TestLabel_AllocatesTexture(t *testing.T) {
	tr := scene.NewTracker()
	p := New(tr).Label("+Q", geom.V(0, 0.5, 0), 0xff4444)

	require.NotNil(t, p.Texture)
	assert.Equal(t, "+Q", p.Texture.Text)
	assert.Equal(t, 1, tr.LiveOf(scene.TextureResource))

	s := p.Shape().(scene.Sprite)
	assert.Equal(t, geom.V(2, 1, 1), s.Scale)
}

func TestCurveTube(t *testing.T) {
	b := New(scene.NewTracker())
	b.TubularSegments = 20

	ctrl := []geom.Vec3{geom.V(0, 0, -3), geom.V(0, 0, 0), geom.V(0, 0, 3)}
	p := b.CurveTube(ctrl, 0, 0.02, false, scene.Basic(0xffa500))
	tube := p.Shape().(scene.Tube)

	require.Len(t, tube.Path, 21)
	assert.Len(t, tube.Vertices, 21*(DefaultRadialSegments+1))
	assert.True(t, tube.Path[0].ApproxEqual(ctrl[0], 1e-9))
	assert.True(t, tube.Path[20].ApproxEqual(ctrl[2], 1e-9))

	// control points are copied, not aliased
	ctrl[0] = geom.V(9, 9, 9)
	assert.Equal(t, geom.V(0, 0, -3), tube.Control[0])

	explicit := b.CurveTube(ctrl, 10, 0.02, false, scene.Basic(0xffa500)).Shape().(scene.Tube)
	assert.Len(t, explicit.Path, 11)

	assert.Panics(t, func() { b.CurveTube(ctrl[:1], 0, 0.02, false, scene.Basic(0)) })
}

func TestIsoSurface(t *testing.T) {
	b := New(scene.NewTracker())

	tests := []struct {
		kind      scene.SurfaceKind
		wireframe bool
	}{
		{scene.SurfaceSphere, true},
		{scene.SurfaceCylinder, true},
		{scene.SurfacePlane, false},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			p := b.IsoSurface(tt.kind, Extent{Radius: 2, Height: 4, Width: 4}, 0xffaa00)
			assert.Equal(t, tt.wireframe, p.Material.Wireframe)
			assert.True(t, p.Material.Transparent)
			assert.InDelta(t, 0.3, p.Material.Opacity, 1e-12)
			assert.Equal(t, geom.UnitY, p.Shape().(scene.Surface).Axis)
		})
	}
}

func TestBuilder_DistinctHandles(t *testing.T) {
	tr := scene.NewTracker()
	b := New(tr)

	seen := map[uint64]bool{}
	for i := 0; i < 10; i++ {
		p := b.Ring(geom.Zero, geom.UnitY, 1, 0.02, scene.Basic(0x888888))
		for _, id := range []uint64{p.Geometry.ID(), p.Material.ID()} {
			assert.False(t, seen[id], "handle %d reused", id)
			seen[id] = true
		}
	}
	assert.Equal(t, 20, tr.Total())
}

func TestSheet_IsDoubleSided(t *testing.T) {
	p := New(scene.NewTracker()).Sheet(geom.Zero, geom.UnitZ, 8, 8, scene.MaterialSpec{Color: 0x666666, Opacity: 0.4})
	assert.True(t, p.Material.DoubleSided)
	assert.Equal(t, scene.KindSheet, p.Kind)
}
