package geom

import "math"

// CatmullRom is a centripetal Catmull-Rom spline through Points.
// Open splines extrapolate phantom end points so the curve starts and ends
// exactly on the first and last control points.
type CatmullRom struct {
	Points []Vec3
	Closed bool
}

// At evaluates the spline at t in [0, 1].
func (c CatmullRom) At(t float64) Vec3 {
	pts := c.Points
	l := len(pts)
	switch l {
	case 0:
		return Vec3{}
	case 1:
		return pts[0]
	}

	segs := l - 1
	if c.Closed {
		segs = l
	}
	p := float64(segs) * t
	i := int(math.Floor(p))
	w := p - float64(i)

	if c.Closed {
		i = ((i % l) + l) % l
	} else if i >= l-1 {
		i, w = l-2, 1
	} else if i < 0 {
		i, w = 0, 0
	}

	var p0, p3 Vec3
	p1 := pts[i]
	p2 := pts[(i+1)%l]
	if c.Closed || i > 0 {
		p0 = pts[(i-1+l)%l]
	} else {
		p0 = p1.Scale(2).Sub(p2)
	}
	if c.Closed || i+2 < l {
		p3 = pts[(i+2)%l]
	} else {
		p3 = pts[l-1].Scale(2).Sub(pts[l-2])
	}

	dt0 := math.Pow(p0.Sub(p1).LengthSq(), 0.25)
	dt1 := math.Pow(p1.Sub(p2).LengthSq(), 0.25)
	dt2 := math.Pow(p2.Sub(p3).LengthSq(), 0.25)
	if dt1 < 1e-4 {
		dt1 = 1
	}
	if dt0 < 1e-4 {
		dt0 = dt1
	}
	if dt2 < 1e-4 {
		dt2 = dt1
	}

	return Vec3{
		hermite(p0.X, p1.X, p2.X, p3.X, dt0, dt1, dt2, w),
		hermite(p0.Y, p1.Y, p2.Y, p3.Y, dt0, dt1, dt2, w),
		hermite(p0.Z, p1.Z, p2.Z, p3.Z, dt0, dt1, dt2, w),
	}
}

// Sample returns segments+1 points evenly spaced in t. For closed splines
// the last point repeats the first.
func (c CatmullRom) Sample(segments int) []Vec3 {
	if segments < 1 {
		segments = 1
	}
	out := make([]Vec3, segments+1)
	for i := 0; i <= segments; i++ {
		out[i] = c.At(float64(i) / float64(segments))
	}
	return out
}

// hermite evaluates one non-uniform Catmull-Rom segment between x1 and x2.
func hermite(x0, x1, x2, x3, dt0, dt1, dt2, w float64) float64 {
	t1 := (x1-x0)/dt0 - (x2-x0)/(dt0+dt1) + (x2-x1)/dt1
	t2 := (x2-x1)/dt1 - (x3-x1)/(dt1+dt2) + (x3-x2)/dt2
	t1 *= dt1
	t2 *= dt1

	c0 := x1
	c1 := t1
	c2 := -3*x1 + 3*x2 - 2*t1 - t2
	c3 := 2*x1 - 2*x2 + t1 + t2
	return c0 + w*(c1+w*(c2+w*c3))
}

// Frames computes parallel-transport tangent, normal and binormal vectors
// along path. Closed paths have the accumulated twist spread evenly so the
// first and last frames agree.
func Frames(path []Vec3, closed bool) (tangents, normals, binormals []Vec3) {
	n := len(path)
	if n < 2 {
		return nil, nil, nil
	}
	tangents = make([]Vec3, n)
	normals = make([]Vec3, n)
	binormals = make([]Vec3, n)

	for i := range path {
		var d Vec3
		switch i {
		case 0:
			d = path[1].Sub(path[0])
		case n - 1:
			d = path[n-1].Sub(path[n-2])
		default:
			d = path[i+1].Sub(path[i-1])
		}
		t, ok := d.Unit()
		if !ok {
			if i > 0 {
				t = tangents[i-1]
			} else {
				t = UnitX
			}
		}
		tangents[i] = t
	}

	normals[0] = tangents[0].Perpendicular()
	binormals[0] = tangents[0].Cross(normals[0])
	for i := 1; i < n; i++ {
		normals[i] = normals[i-1]
		if axis, ok := tangents[i-1].Cross(tangents[i]).Unit(); ok {
			theta := math.Acos(clamp(tangents[i-1].Dot(tangents[i]), -1, 1))
			normals[i] = normals[i].Rotate(axis, theta)
		}
		binormals[i] = tangents[i].Cross(normals[i])
	}

	if closed {
		theta := math.Acos(clamp(normals[0].Dot(normals[n-1]), -1, 1)) / float64(n-1)
		if tangents[0].Dot(normals[0].Cross(normals[n-1])) > 0 {
			theta = -theta
		}
		for i := 1; i < n; i++ {
			normals[i] = normals[i].Rotate(tangents[i], theta*float64(i))
			binormals[i] = tangents[i].Cross(normals[i])
		}
	}
	return tangents, normals, binormals
}

// Extrude sweeps a circle of the given radius along path and returns the
// ring vertices, radialSegments+1 per path point (the seam is duplicated).
func Extrude(path []Vec3, radius float64, radialSegments int, closed bool) []Vec3 {
	_, normals, binormals := Frames(path, closed)
	if normals == nil {
		return nil
	}
	out := make([]Vec3, 0, len(path)*(radialSegments+1))
	for i, p := range path {
		for j := 0; j <= radialSegments; j++ {
			a := float64(j) / float64(radialSegments) * 2 * math.Pi
			dir := normals[i].Scale(-math.Cos(a)).Add(binormals[i].Scale(math.Sin(a)))
			out = append(out, p.Add(dir.Scale(radius)))
		}
	}
	return out
}

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}
