package config

import (
	"sort"

	"github.com/san-kum/emviz/internal/catalog"
)

var Presets = map[string]map[string]*Config{
	"electric-field-point": {
		"positive": {
			Concept: "electric-field-point",
			Params:  Params{Charge: 1, Current: 1, ShowLabels: true, Category: catalog.Electrostatics},
		},
		"negative": {
			Concept: "electric-field-point",
			Params:  Params{Charge: -1, Current: 1, ShowLabels: true, Category: catalog.Electrostatics},
		},
		"full": {
			Concept: "electric-field-point",
			Params: Params{
				Charge: 2, Current: 1, ShowLabels: true, ShowEquipotential: true, ShowFieldVectors: true,
				Category: catalog.Electrostatics,
			},
		},
	},
	"electric-field-line": {
		"equipotential": {
			Concept: "electric-field-line",
			Params:  Params{Charge: 1, Current: 1, ShowLabels: true, ShowEquipotential: true, Category: catalog.Electrostatics},
		},
		"negative": {
			Concept: "electric-field-line",
			Params:  Params{Charge: -1, Current: 1, ShowLabels: true, Category: catalog.Electrostatics},
		},
	},
	"gauss-law": {
		"seeded": {
			Concept: "gauss-law",
			Params:  Params{Charge: 1, Current: 1, ShowLabels: true, Category: catalog.Electrostatics, Seed: 42},
		},
	},
	"magnetic-straight": {
		"vectors": {
			Concept: "magnetic-straight",
			Params:  Params{Charge: 1, Current: 1, ShowLabels: true, ShowFieldVectors: true, Category: catalog.Magnetostatics},
		},
		"strong": {
			Concept: "magnetic-straight",
			Params:  Params{Charge: 1, Current: 5, ShowLabels: true, ShowFieldVectors: true, Category: catalog.Magnetostatics},
		},
	},
	"lorentz-force": {
		"electron": {
			Concept: "lorentz-force",
			Params:  Params{Charge: -1, Current: 1, ShowLabels: true, Category: catalog.Magnetostatics},
		},
	},
}

func GetPreset(concept, preset string) *Config {
	conceptPresets, ok := Presets[concept]
	if !ok {
		return nil
	}
	cfg, ok := conceptPresets[preset]
	if !ok {
		return nil
	}
	return cfg
}

// ListPresets returns the preset names for concept, sorted.
func ListPresets(concept string) []string {
	conceptPresets, ok := Presets[concept]
	if !ok {
		return nil
	}
	names := make([]string, 0, len(conceptPresets))
	for name := range conceptPresets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PresetConcepts returns the concepts that have presets, sorted.
func PresetConcepts() []string {
	out := make([]string, 0, len(Presets))
	for c := range Presets {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
