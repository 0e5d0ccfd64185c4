package viz

import (
	"math"

	"github.com/san-kum/emviz/internal/geom"
)

const (
	DefaultDamping     = 0.05
	DefaultMinDistance = 2.0
	DefaultMaxDistance = 20.0
	DefaultFOV         = 50 * math.Pi / 180

	polarEps = 1e-6
)

// DefaultEye is the camera's starting position.
var DefaultEye = geom.V(8, 8, 8)

// Orbit is a damped orbit camera around Target. Azimuth is measured from +z
// towards +x and Polar from +y, so the default eye (8,8,8) sits at
// azimuth π/4.
//
// Input (RotateLeft, RotateUp, Dolly) accumulates into pending deltas that
// Tick applies. With Damping > 0 only that fraction of the pending delta is
// applied per tick and the rest decays, giving the eased motion of a
// damped orbit control. AutoRotate feeds a constant rotation into the same
// pending delta, so at AutoRotateSpeed 1 the camera settles to one
// revolution per minute.
type Orbit struct {
	Target          geom.Vec3
	Damping         float64
	AutoRotate      bool
	AutoRotateSpeed float64
	MinDistance     float64
	MaxDistance     float64
	FOV             float64

	azimuth, polar, distance float64
	dAzimuth, dPolar         float64
	scale                    float64

	home struct{ azimuth, polar, distance float64 }
}

// NewOrbit returns an orbit at DefaultEye looking at the origin.
func NewOrbit() *Orbit {
	o := &Orbit{
		Damping:         DefaultDamping,
		AutoRotate:      true,
		AutoRotateSpeed: 1,
		MinDistance:     DefaultMinDistance,
		MaxDistance:     DefaultMaxDistance,
		FOV:             DefaultFOV,
		scale:           1,
	}
	o.LookFrom(DefaultEye)
	o.SaveState()
	return o
}

// LookFrom places the eye at p, keeping the target.
func (o *Orbit) LookFrom(p geom.Vec3) {
	d := p.Sub(o.Target)
	o.distance = d.Length()
	if o.distance == 0 {
		o.azimuth, o.polar = 0, math.Pi/2
	} else {
		o.azimuth = math.Atan2(d.X, d.Z)
		o.polar = math.Acos(clamp(d.Y/o.distance, -1, 1))
	}
	o.dAzimuth, o.dPolar, o.scale = 0, 0, 1
}

// SaveState records the current pose as the one Reset returns to.
func (o *Orbit) SaveState() {
	o.home.azimuth, o.home.polar, o.home.distance = o.azimuth, o.polar, o.distance
}

// Reset restores the saved pose and drops pending motion.
func (o *Orbit) Reset() {
	o.azimuth, o.polar, o.distance = o.home.azimuth, o.home.polar, o.home.distance
	o.dAzimuth, o.dPolar, o.scale = 0, 0, 1
}

func (o *Orbit) RotateLeft(angle float64) { o.dAzimuth -= angle }
func (o *Orbit) RotateUp(angle float64)   { o.dPolar -= angle }

// Dolly scales the distance by factor on the next tick. Factors below one
// move the eye closer.
func (o *Orbit) Dolly(factor float64) {
	if factor > 0 {
		o.scale *= factor
	}
}

func (o *Orbit) Azimuth() float64  { return o.azimuth }
func (o *Orbit) Polar() float64    { return o.polar }
func (o *Orbit) Distance() float64 { return o.distance }

// AutoRotateAngle is the rotation auto-rotate contributes over dt seconds.
func (o *Orbit) AutoRotateAngle(dt float64) float64 {
	return 2 * math.Pi / 60 * o.AutoRotateSpeed * dt
}

// Tick advances the orbit by dt seconds and reports whether the pose
// changed.
func (o *Orbit) Tick(dt float64) bool {
	if o.AutoRotate && dt > 0 {
		o.RotateLeft(o.AutoRotateAngle(dt))
	}

	before := [3]float64{o.azimuth, o.polar, o.distance}
	if o.Damping > 0 {
		o.azimuth += o.dAzimuth * o.Damping
		o.polar += o.dPolar * o.Damping
	} else {
		o.azimuth += o.dAzimuth
		o.polar += o.dPolar
	}
	o.azimuth = math.Remainder(o.azimuth, 2*math.Pi)
	o.polar = clamp(o.polar, polarEps, math.Pi-polarEps)
	o.distance = clamp(o.distance*o.scale, o.MinDistance, o.MaxDistance)
	o.scale = 1

	if o.Damping > 0 {
		o.dAzimuth *= 1 - o.Damping
		o.dPolar *= 1 - o.Damping
	} else {
		o.dAzimuth, o.dPolar = 0, 0
	}
	return before != [3]float64{o.azimuth, o.polar, o.distance}
}

// Eye returns the camera position.
func (o *Orbit) Eye() geom.Vec3 {
	s := math.Sin(o.polar)
	return o.Target.Add(geom.V(
		o.distance*s*math.Sin(o.azimuth),
		o.distance*math.Cos(o.polar),
		o.distance*s*math.Cos(o.azimuth),
	))
}

// Camera returns a projection camera for the current pose.
func (o *Orbit) Camera() Camera {
	return Camera{Eye: o.Eye(), Target: o.Target, Up: geom.UnitY, FOV: o.FOV, Near: 0.1}
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
