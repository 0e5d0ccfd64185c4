package geom

import "math"

// Vec3 is a point or direction in world space. The y axis points up.
type Vec3 struct {
	X, Y, Z float64
}

// Commonly used directions.
var (
	Zero  = Vec3{}
	UnitX = Vec3{1, 0, 0}
	UnitY = Vec3{0, 1, 0}
	UnitZ = Vec3{0, 0, 1}
)

// V is shorthand for Vec3{x, y, z}.
func V(x, y, z float64) Vec3 { return Vec3{x, y, z} }

// Vec3 methods.
func (v Vec3) Add(o Vec3) Vec3      { return Vec3{v.X + o.X, v.Y + o.Y, v.Z + o.Z} }
func (v Vec3) Sub(o Vec3) Vec3      { return Vec3{v.X - o.X, v.Y - o.Y, v.Z - o.Z} }
func (v Vec3) Scale(s float64) Vec3 { return Vec3{v.X * s, v.Y * s, v.Z * s} }
func (v Vec3) Neg() Vec3            { return Vec3{-v.X, -v.Y, -v.Z} }
func (v Vec3) Dot(o Vec3) float64   { return v.X*o.X + v.Y*o.Y + v.Z*o.Z }
func (v Vec3) LengthSq() float64    { return v.Dot(v) }
func (v Vec3) Length() float64      { return math.Sqrt(v.LengthSq()) }
func (v Vec3) Cross(o Vec3) Vec3 {
	return Vec3{v.Y*o.Z - v.Z*o.Y, v.Z*o.X - v.X*o.Z, v.X*o.Y - v.Y*o.X}
}

// Normalize returns v scaled to unit length, or the zero vector if v has
// no length.
func (v Vec3) Normalize() Vec3 {
	if l := v.Length(); l != 0 {
		return v.Scale(1 / l)
	}
	return Vec3{}
}

// Unit returns the unit vector along v. ok is false when v is zero or not
// finite, in which case the sample has no direction and must be skipped.
func (v Vec3) Unit() (u Vec3, ok bool) {
	l := v.Length()
	if l == 0 || math.IsNaN(l) || math.IsInf(l, 0) {
		return Vec3{}, false
	}
	return v.Scale(1 / l), true
}

// IsUnit reports whether v has length 1 within tol.
func (v Vec3) IsUnit(tol float64) bool {
	return math.Abs(v.Length()-1) <= tol
}

func (v Vec3) IsFinite() bool {
	for _, c := range [3]float64{v.X, v.Y, v.Z} {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return false
		}
	}
	return true
}

// Distance returns |v - o|.
func (v Vec3) Distance(o Vec3) float64 { return v.Sub(o).Length() }

// ApproxEqual compares component-wise within tol.
func (v Vec3) ApproxEqual(o Vec3, tol float64) bool {
	return math.Abs(v.X-o.X) <= tol && math.Abs(v.Y-o.Y) <= tol && math.Abs(v.Z-o.Z) <= tol
}

// Rotate returns v rotated theta radians around the unit axis k
// (Rodrigues' rotation formula).
func (v Vec3) Rotate(k Vec3, theta float64) Vec3 {
	c, s := math.Cos(theta), math.Sin(theta)
	return v.Scale(c).Add(k.Cross(v).Scale(s)).Add(k.Scale(k.Dot(v) * (1 - c)))
}

// Perpendicular returns a unit vector orthogonal to the unit vector v,
// built from the world axis least aligned with v.
func (v Vec3) Perpendicular() Vec3 {
	ax, ay, az := math.Abs(v.X), math.Abs(v.Y), math.Abs(v.Z)
	ref := UnitX
	switch {
	case ay <= ax && ay <= az:
		ref = UnitY
	case az <= ax && az <= ay:
		ref = UnitZ
	}
	return v.Cross(ref).Normalize()
}

// ReflectY mirrors v through the xz plane (y -> -y).
func (v Vec3) ReflectY() Vec3 { return Vec3{v.X, -v.Y, v.Z} }

// Direction returns the y-up unit vector for polar angle theta (from +y)
// and azimuth phi (from +x toward +z).
func Direction(theta, phi float64) Vec3 {
	st := math.Sin(theta)
	return Vec3{st * math.Cos(phi), math.Cos(theta), st * math.Sin(phi)}
}
