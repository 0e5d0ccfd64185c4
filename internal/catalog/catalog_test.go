package catalog

import (
	"strings"
	"testing"
)

func TestByCategory(t *testing.T) {
	tests := []struct {
		cat   Category
		n     int
		first string
		last  string
	}{
		{Electrostatics, 12, "coordinates-cartesian", "gauss-law"},
		{Magnetostatics, 9, "lorentz-force", "maxwell-magnetostatics"},
	}

	for _, tt := range tests {
		t.Run(tt.cat.String(), func(t *testing.T) {
			got := ByCategory(tt.cat)
			if len(got) != tt.n {
				t.Fatalf("len = %d, want %d", len(got), tt.n)
			}
			if got[0].ID != tt.first {
				t.Errorf("first = %s, want %s", got[0].ID, tt.first)
			}
			if got[len(got)-1].ID != tt.last {
				t.Errorf("last = %s, want %s", got[len(got)-1].ID, tt.last)
			}
		})
	}

	if got := ByCategory(Category(7)); got != nil {
		t.Errorf("ByCategory(unknown) = %v, want nil", got)
	}
}

func TestByCategory_ReturnsCopy(t *testing.T) {
	got := ByCategory(Electrostatics)
	got[0].Label = "mutated"
	if d, _ := Lookup("coordinates-cartesian"); d.Label != "Cartesian Coordinates" {
		t.Errorf("catalog mutated through returned slice: %q", d.Label)
	}
}

func TestLookup(t *testing.T) {
	d, ok := Lookup("electric-field-dipole")
	if !ok {
		t.Fatal("Lookup(electric-field-dipole) not found")
	}
	if d.Concept != Dipole || d.Category != Electrostatics {
		t.Errorf("got %v/%v, want Dipole/Electrostatics", d.Concept, d.Category)
	}
	if !strings.HasPrefix(d.Equation, `\(`) {
		t.Errorf("equation markup = %q", d.Equation)
	}

	for _, id := range []string{"", "nonexistent", "Electric-Field-Point"} {
		if _, ok := Lookup(id); ok {
			t.Errorf("Lookup(%q) ok = true, want false", id)
		}
	}
}

func TestConceptIDs_Consistent(t *testing.T) {
	seen := map[string]bool{}
	for i := ConceptID(0); i < NumConcepts; i++ {
		id := i.String()
		if seen[id] {
			t.Errorf("duplicate id %s", id)
		}
		seen[id] = true

		c, ok := ParseConcept(id)
		if !ok || c != i {
			t.Errorf("ParseConcept(%s) = %v, %v; want %v", id, c, ok, i)
		}
		d, _ := Describe(i)
		if d.Concept != i {
			t.Errorf("descriptor %s has Concept %v", id, d.Concept)
		}
		if d.Label == "" || d.Description == "" || d.Equation == "" {
			t.Errorf("descriptor %s has empty text", id)
		}
	}
	if len(All()) != int(NumConcepts) {
		t.Errorf("len(All()) = %d, want %d", len(All()), NumConcepts)
	}
	if NumConcepts.Valid() {
		t.Error("NumConcepts.Valid() = true")
	}
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
		ok   bool
	}{
		{"electrostatics", Electrostatics, true},
		{"Magnetostatics", Magnetostatics, true},
		{"2", Magnetostatics, true},
		{"optics", 0, false},
	}
	for _, tt := range tests {
		got, ok := ParseCategory(tt.in)
		if ok != tt.ok || got != tt.want {
			t.Errorf("ParseCategory(%q) = %v, %v; want %v, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}

	var c Category
	if err := c.UnmarshalText([]byte("magnetostatics")); err != nil || c != Magnetostatics {
		t.Errorf("UnmarshalText = %v, %v", c, err)
	}
	if Magnetostatics.Badge() != "Unit II" {
		t.Errorf("Badge() = %q", Magnetostatics.Badge())
	}
}
