package gui

import (
	"math"

	"github.com/chewxy/math32"
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/san-kum/emviz/internal/geom"
	"github.com/san-kum/emviz/internal/scene"
)

func vec(v geom.Vec3) rl.Vector3 {
	return rl.NewVector3(float32(v.X), float32(v.Y), float32(v.Z))
}

// tint converts a material to a raylib colour. Emissive materials are
// lightened towards their glow colour by their intensity.
func tint(m *scene.Material) rl.Color {
	if m == nil {
		return rl.White
	}
	r, g, b := m.Color.RGB()
	if m.EmissiveIntensity > 0 {
		er, eg, eb := m.Emissive.RGB()
		k := float32(m.EmissiveIntensity)
		r, g, b = blend(r, er, k), blend(g, eg, k), blend(b, eb, k)
	}
	a := uint8(255)
	if m.Transparent {
		a = uint8(math32.Max(0, math32.Min(1, float32(m.Opacity))) * 255)
	}
	return rl.NewColor(r, g, b, a)
}

// blend mixes base towards glow by k, saturating at white.
func blend(base, glow uint8, k float32) uint8 {
	return uint8(math32.Min(255, float32(base)+float32(glow)*k*0.5))
}

// orbitDelta converts a mouse drag in pixels to orbit angles so that
// dragging the full window height turns the camera once.
func orbitDelta(dx, dy, height float32) (left, up float64) {
	if height <= 0 {
		return 0, 0
	}
	k := 2 * float32(math.Pi) / height
	return float64(dx * k), float64(dy * k)
}

// wheelDolly maps a wheel step to a dolly factor. Scrolling up zooms in.
func wheelDolly(wheel float32) float64 {
	if wheel == 0 {
		return 1
	}
	return float64(math32.Pow(0.95, wheel))
}

// labelAlpha fades labels with distance from the camera.
func labelAlpha(dist float32) uint8 {
	t := 1 - math32.Max(0, math32.Min(1, (dist-8)/12))
	return uint8(80 + 175*t)
}

func drawPrimitive(p *scene.Primitive) {
	col := tint(p.Material)
	wire := p.Material != nil && p.Material.Wireframe

	switch s := p.Shape().(type) {
	case scene.Arrow:
		base := vec(s.HeadBase())
		rl.DrawCylinderEx(vec(s.Origin), base, 0.02, 0.02, 6, col)
		rl.DrawCylinderEx(base, vec(s.Tip()), float32(s.HeadWidth), 0, 8, col)
	case scene.Tube:
		r := float32(s.Radius)
		for i := 1; i < len(s.Path); i++ {
			rl.DrawCylinderEx(vec(s.Path[i-1]), vec(s.Path[i]), r, r, 4, col)
		}
	case scene.Surface:
		drawSurface(s, col, wire)
	case scene.Ring:
		pts := s.Points(48)
		r := float32(s.TubeRadius)
		for i := 1; i < len(pts); i++ {
			rl.DrawCylinderEx(vec(pts[i-1]), vec(pts[i]), r, r, 4, col)
		}
	case scene.Polyline:
		for i := 1; i < len(s.Points); i++ {
			rl.DrawLine3D(vec(s.Points[i-1]), vec(s.Points[i]), col)
		}
	case scene.Axes:
		l := float32(s.Length)
		o := rl.NewVector3(0, 0, 0)
		rl.DrawLine3D(o, rl.NewVector3(l, 0, 0), rl.Red)
		rl.DrawLine3D(o, rl.NewVector3(0, l, 0), rl.Green)
		rl.DrawLine3D(o, rl.NewVector3(0, 0, l), rl.Blue)
	case scene.Ball:
		rl.DrawSphere(vec(s.Center), float32(s.Radius), col)
	case scene.Rod:
		a, b := s.Ends()
		r := float32(s.Radius)
		rl.DrawCylinderEx(vec(a), vec(b), r, r, 16, col)
	case scene.Quad:
		drawQuad(s.Corners(), col)
	}
}

// drawLabel projects a sprite to screen space and draws its text.
func drawLabel(p *scene.Primitive, cam rl.Camera3D) {
	s, ok := p.Shape().(scene.Sprite)
	if !ok {
		return
	}
	at := vec(s.Position)
	screen := rl.GetWorldToScreen(at, cam)
	col := tint(p.Material)
	col.A = labelAlpha(rl.Vector3Distance(at, cam.Position))
	const size = 20
	w := rl.MeasureText(s.Text, size)
	rl.DrawText(s.Text, int32(screen.X)-w/2, int32(screen.Y)-size/2, size, col)
}

func drawSurface(s scene.Surface, col rl.Color, wire bool) {
	switch s.Kind {
	case scene.SurfaceSphere:
		if wire {
			rl.DrawSphereWires(vec(s.Center), float32(s.Radius), 16, 32, col)
		} else {
			rl.DrawSphere(vec(s.Center), float32(s.Radius), col)
		}
	case scene.SurfaceCylinder:
		axis := s.Axis
		if axis == geom.Zero {
			axis = geom.UnitY
		}
		h := axis.Scale(s.Height / 2)
		a, b := vec(s.Center.Sub(h)), vec(s.Center.Add(h))
		r := float32(s.Radius)
		if wire {
			rl.DrawCylinderWiresEx(a, b, r, r, 32, col)
		} else {
			rl.DrawCylinderEx(a, b, r, r, 32, col)
		}
	case scene.SurfacePlane:
		q := scene.Quad{Center: s.Center, Normal: s.Axis, Width: s.Width, Height: s.Height}
		drawQuad(q.Corners(), col)
	}
}

// drawQuad fills both faces so sheets are visible from either side.
func drawQuad(k [4]geom.Vec3, col rl.Color) {
	a, b, c, d := vec(k[0]), vec(k[1]), vec(k[2]), vec(k[3])
	rl.DrawTriangle3D(a, b, c, col)
	rl.DrawTriangle3D(a, c, d, col)
	rl.DrawTriangle3D(c, b, a, col)
	rl.DrawTriangle3D(d, c, a, col)
}
