package catalog

import (
	"fmt"
	"strings"
)

// ConceptID identifies one visualization. The zero value is the first
// electrostatics concept; use [ParseConcept] to validate user input.
type ConceptID int

const (
	CoordinatesCartesian ConceptID = iota
	CoordinatesCylindrical
	CoordinatesSpherical
	Gradient
	Divergence
	Curl
	PointCharge
	Dipole
	LineCharge
	PlaneCharge
	DisplacementFlux
	GaussLaw
	LorentzForce
	StraightConductor
	CurrentLoop
	Solenoid
	CurrentSheet
	MagneticFluxDensity
	BiotSavart
	AmpereCircuit
	MaxwellMagnetostatics

	// NumConcepts is the number of known concepts.
	NumConcepts
)

func (c ConceptID) Valid() bool { return c >= 0 && c < NumConcepts }

// String returns the stable kebab-case identifier.
func (c ConceptID) String() string {
	if !c.Valid() {
		return fmt.Sprintf("concept(%d)", int(c))
	}
	return descriptors[c].ID
}

func (c ConceptID) Category() Category {
	if !c.Valid() {
		return Category(-1)
	}
	return descriptors[c].Category
}

// Category groups concepts into the two course units.
type Category int

const (
	Electrostatics Category = iota
	Magnetostatics
)

func (c Category) String() string {
	switch c {
	case Electrostatics:
		return "electrostatics"
	case Magnetostatics:
		return "magnetostatics"
	}
	return fmt.Sprintf("category(%d)", int(c))
}

// Badge is the short unit tag shown next to the category name.
func (c Category) Badge() string {
	switch c {
	case Electrostatics:
		return "Unit I"
	case Magnetostatics:
		return "Unit II"
	}
	return ""
}

// Title is the display name, e.g. "Electrostatics".
func (c Category) Title() string {
	s := c.String()
	if c != Electrostatics && c != Magnetostatics {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

func (c Category) MarshalText() ([]byte, error) {
	if c != Electrostatics && c != Magnetostatics {
		return nil, fmt.Errorf("catalog: unknown category %d", int(c))
	}
	return []byte(c.String()), nil
}

func (c *Category) UnmarshalText(b []byte) error {
	v, ok := ParseCategory(string(b))
	if !ok {
		return fmt.Errorf("catalog: unknown category %q", string(b))
	}
	*c = v
	return nil
}

// ParseCategory accepts the category name or its unit number ("1"/"2").
func ParseCategory(s string) (Category, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "electrostatics", "1", "unit i":
		return Electrostatics, true
	case "magnetostatics", "2", "unit ii":
		return Magnetostatics, true
	}
	return 0, false
}

// Categories returns both categories in display order.
func Categories() []Category {
	return []Category{Electrostatics, Magnetostatics}
}

// Descriptor is the catalog entry for one concept.
type Descriptor struct {
	Concept     ConceptID `json:"-" yaml:"-"`
	Category    Category  `json:"category" yaml:"category"`
	ID          string    `json:"id" yaml:"id"`
	Label       string    `json:"label" yaml:"label"`
	Description string    `json:"description" yaml:"description"`
	Equation    string    `json:"equation" yaml:"equation"`
}

var byID = func() map[string]ConceptID {
	m := make(map[string]ConceptID, NumConcepts)
	for i, d := range descriptors {
		m[d.ID] = ConceptID(i)
	}
	return m
}()

// ParseConcept resolves a kebab-case identifier.
func ParseConcept(id string) (ConceptID, bool) {
	c, ok := byID[id]
	return c, ok
}

// Lookup returns the descriptor for id. Unknown ids report false.
func Lookup(id string) (Descriptor, bool) {
	c, ok := byID[id]
	if !ok {
		return Descriptor{}, false
	}
	return descriptors[c], true
}

// Describe returns the descriptor of a known concept.
func Describe(c ConceptID) (Descriptor, bool) {
	if !c.Valid() {
		return Descriptor{}, false
	}
	return descriptors[c], true
}

// ByCategory returns the concepts of c in declaration order. The slice is a
// fresh copy.
func ByCategory(c Category) []Descriptor {
	var out []Descriptor
	for _, d := range descriptors {
		if d.Category == c {
			out = append(out, d)
		}
	}
	return out
}

// All returns every descriptor, electrostatics first.
func All() []Descriptor {
	out := make([]Descriptor, NumConcepts)
	copy(out, descriptors[:])
	return out
}

// IDs returns every concept identifier in catalog order.
func IDs() []string {
	out := make([]string, NumConcepts)
	for i, d := range descriptors {
		out[i] = d.ID
	}
	return out
}
