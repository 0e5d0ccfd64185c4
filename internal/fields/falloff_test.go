package fields

import (
	"math"
	"testing"
)

func TestFalloff_Magnitude(t *testing.T) {
	tests := []struct {
		law  Falloff
		r    float64
		want float64
	}{
		{Constant, 3, 2},
		{InverseLinear, 4, 0.5},
		{InverseSquare, 2, 0.5},
		{Linear, 3, 6},
	}
	for _, tt := range tests {
		t.Run(tt.law.String(), func(t *testing.T) {
			if got := tt.law.Magnitude(2, tt.r); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("Magnitude(2, %v) = %v, want %v", tt.r, got, tt.want)
			}
		})
	}
}

func TestGlyph_ClampedAndMonotone(t *testing.T) {
	glyphs := []Glyph{
		{Law: InverseSquare, Scale: 1, Cap: 0.8},
		{Law: InverseLinear, Scale: 0.5, Cap: 1},
		{Law: Linear, Scale: 0.2, Cap: 0.8},
	}

	for _, g := range glyphs {
		t.Run(g.Law.String(), func(t *testing.T) {
			prevM, prevL := -1.0, -1.0
			// walk distances in the order that increases magnitude
			for i := 1; i <= 200; i++ {
				r := float64(i) * 0.05
				if g.Law != Linear {
					r = 10.05 - r
				}
				m := g.Scale * g.Law.Magnitude(1, r)
				l := g.Length(1, r)
				if l > g.Cap {
					t.Fatalf("length %v at r=%v exceeds cap %v", l, r, g.Cap)
				}
				if m > prevM && prevL >= 0 {
					if l < prevL {
						t.Fatalf("length decreased from %v to %v as magnitude grew", prevL, l)
					}
					if prevL < g.Cap && l == prevL {
						t.Fatalf("length flat at %v below cap", l)
					}
				}
				prevM, prevL = m, l
			}
			if !g.Saturated(1, 0.01) && g.Law != Linear {
				t.Error("expected saturation near the source")
			}
		})
	}
}

func TestGlyph_Degenerate(t *testing.T) {
	g := Glyph{Law: InverseSquare, Scale: 1, Cap: 0.8}
	if got := g.Length(1, 0); got != 0.8 {
		t.Errorf("Length at the source = %v, want cap", got)
	}
	if got := g.Length(0, 0); got != 0 {
		t.Errorf("Length(0, 0) = %v, want 0", got)
	}
	if got := g.Length(-2, 1); got != 0.8 {
		t.Errorf("negative source length = %v, want 0.8", got)
	}
}

func TestGlyph_Sample(t *testing.T) {
	s := Glyph{Law: InverseLinear, Scale: 1, Cap: 10}.Sample(1, 1, 4, 4)
	want := []float64{1, 0.5, 1.0 / 3, 0.25}
	for i := range want {
		if math.Abs(s[i]-want[i]) > 1e-12 {
			t.Errorf("Sample[%d] = %v, want %v", i, s[i], want[i])
		}
	}
}

func TestParseFalloff(t *testing.T) {
	for _, f := range Falloffs() {
		got, err := ParseFalloff(f.String())
		if err != nil || got != f {
			t.Errorf("ParseFalloff(%s) = %v, %v", f, got, err)
		}
	}
	if _, err := ParseFalloff("exponential"); err == nil {
		t.Error("expected error for unknown law")
	}
}
