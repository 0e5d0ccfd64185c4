package fields

import (
	"fmt"
	"math"
	"strings"
)

// Falloff is a magnitude-vs-distance law used to size vector glyphs.
type Falloff int

const (
	// Constant fields ignore distance (infinite plane or sheet).
	Constant Falloff = iota
	// InverseLinear is the 1/r law of line sources (H = I/2πr).
	InverseLinear
	// InverseSquare is the 1/r² law of point sources.
	InverseSquare
	// Linear grows with distance (F = r and its relatives).
	Linear
)

var falloffNames = map[Falloff]string{
	Constant:      "constant",
	InverseLinear: "inverse-linear",
	InverseSquare: "inverse-square",
	Linear:        "linear",
}

func (f Falloff) String() string {
	if s, ok := falloffNames[f]; ok {
		return s
	}
	return fmt.Sprintf("falloff(%d)", int(f))
}

func ParseFalloff(s string) (Falloff, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for f, name := range falloffNames {
		if name == s {
			return f, nil
		}
	}
	return 0, fmt.Errorf("unknown falloff law: %s", s)
}

// Falloffs lists every law in declaration order.
func Falloffs() []Falloff {
	return []Falloff{Constant, InverseLinear, InverseSquare, Linear}
}

// Magnitude is the field strength of a source of the given strength at
// distance r. Inverse laws diverge to +Inf at r = 0.
func (f Falloff) Magnitude(source, r float64) float64 {
	switch f {
	case InverseLinear:
		return source / r
	case InverseSquare:
		return source / (r * r)
	case Linear:
		return source * r
	}
	return source
}

// Glyph sizes arrows with a saturating law: min(Scale·Magnitude, Cap).
type Glyph struct {
	Law   Falloff
	Scale float64
	Cap   float64
}

// Length returns the arrow length for a source at distance r. The sign of
// source is ignored; direction carries polarity. The result is never above
// Cap and is 0 when the magnitude is undefined.
func (g Glyph) Length(source, r float64) float64 {
	m := g.Scale * g.Law.Magnitude(math.Abs(source), r)
	if math.IsNaN(m) || m < 0 {
		return 0
	}
	return math.Min(m, g.Cap)
}

// Saturated reports whether the glyph at r is clipped to Cap.
func (g Glyph) Saturated(source, r float64) bool {
	return g.Scale*g.Law.Magnitude(math.Abs(source), r) >= g.Cap
}

// Sample evaluates Length at n evenly spaced distances in [r0, r1]. It is
// used for plotting laws.
func (g Glyph) Sample(source, r0, r1 float64, n int) []float64 {
	if n < 2 {
		return []float64{g.Length(source, r0)}
	}
	out := make([]float64, n)
	for i := range out {
		r := r0 + (r1-r0)*float64(i)/float64(n-1)
		out[i] = g.Length(source, r)
	}
	return out
}
