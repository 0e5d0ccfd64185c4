package config

import (
	"errors"
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/emviz/internal/catalog"
)

const (
	DefaultCharge  = 1.0
	DefaultCurrent = 1.0

	MinCharge  = -5.0
	MaxCharge  = 5.0
	MaxCurrent = 5.0
	// MinCurrent is the smallest current the slider offers.
	MinCurrent = 0.1
	SliderStep = 0.1

	DefaultWidth  = 80
	DefaultHeight = 30
	DefaultDir    = "runs"
)

var ErrParameterBounds = errors.New("config: parameter out of bounds")

// Params is the parameter snapshot a generator reads. It is a value type;
// generators receive a copy.
type Params struct {
	Charge            float64          `yaml:"charge" json:"charge"`
	Current           float64          `yaml:"current" json:"current"`
	ShowLabels        bool             `yaml:"show_labels" json:"show_labels"`
	ShowEquipotential bool             `yaml:"show_equipotential" json:"show_equipotential"`
	ShowFieldVectors  bool             `yaml:"show_field_vectors" json:"show_field_vectors"`
	ActiveConcept     string           `yaml:"active_concept,omitempty" json:"active_concept,omitempty"`
	Category          catalog.Category `yaml:"category" json:"category"`
	Seed              int64            `yaml:"seed,omitempty" json:"seed,omitempty"`
}

func DefaultParams() Params {
	return Params{
		Charge:     DefaultCharge,
		Current:    DefaultCurrent,
		ShowLabels: true,
		Category:   catalog.Electrostatics,
	}
}

// Validate checks slider ranges. Errors wrap ErrParameterBounds.
func (p Params) Validate() error {
	switch {
	case math.IsNaN(p.Charge) || math.IsInf(p.Charge, 0):
		return fmt.Errorf("charge %v: %w", p.Charge, ErrParameterBounds)
	case p.Charge < MinCharge || p.Charge > MaxCharge:
		return fmt.Errorf("charge %v outside [%g, %g]: %w", p.Charge, MinCharge, MaxCharge, ErrParameterBounds)
	case math.IsNaN(p.Current) || math.IsInf(p.Current, 0):
		return fmt.Errorf("current %v: %w", p.Current, ErrParameterBounds)
	case p.Current <= 0 || p.Current > MaxCurrent:
		return fmt.Errorf("current %v outside (0, %g]: %w", p.Current, MaxCurrent, ErrParameterBounds)
	}
	if p.Category != catalog.Electrostatics && p.Category != catalog.Magnetostatics {
		return fmt.Errorf("category %d: %w", int(p.Category), ErrParameterBounds)
	}
	return nil
}

// Clamp pulls charge and current back into their slider ranges.
func (p Params) Clamp() Params {
	p.Charge = math.Max(MinCharge, math.Min(MaxCharge, p.Charge))
	p.Current = math.Max(MinCurrent, math.Min(MaxCurrent, p.Current))
	return p
}

// Positive reports the charge polarity. Zero charge counts as positive.
func (p Params) Positive() bool { return p.Charge >= 0 }

// Control is a user-adjustable parameter.
type Control int

const (
	ControlCharge Control = iota
	ControlCurrent
	ControlLabels
	ControlEquipotential
	ControlVectors
)

func (c Control) String() string {
	switch c {
	case ControlCharge:
		return "Charge (Q)"
	case ControlCurrent:
		return "Current (I)"
	case ControlLabels:
		return "Show Labels"
	case ControlEquipotential:
		return "Equipotential Surfaces"
	case ControlVectors:
		return "Field Vectors"
	}
	return fmt.Sprintf("control(%d)", int(c))
}

// ControlsFor returns the controls visible in a category. Charge and
// equipotentials only apply to electrostatics, current only to
// magnetostatics.
func ControlsFor(c catalog.Category) []Control {
	if c == catalog.Magnetostatics {
		return []Control{ControlCurrent, ControlLabels, ControlVectors}
	}
	return []Control{ControlCharge, ControlLabels, ControlEquipotential, ControlVectors}
}

// Triggers reports whether changing ctl while in category c should rebuild
// the active visualization.
func Triggers(ctl Control, c catalog.Category) bool {
	switch ctl {
	case ControlCharge, ControlEquipotential:
		return c == catalog.Electrostatics
	case ControlCurrent:
		return c == catalog.Magnetostatics
	}
	return true
}

// Overrides is a partial Params. Nil fields leave the base value alone.
type Overrides struct {
	Charge            *float64 `yaml:"charge,omitempty"`
	Current           *float64 `yaml:"current,omitempty"`
	ShowLabels        *bool    `yaml:"show_labels,omitempty"`
	ShowEquipotential *bool    `yaml:"show_equipotential,omitempty"`
	ShowFieldVectors  *bool    `yaml:"show_field_vectors,omitempty"`
	Seed              *int64   `yaml:"seed,omitempty"`
}

func (o Overrides) Apply(p Params) Params {
	if o.Charge != nil {
		p.Charge = *o.Charge
	}
	if o.Current != nil {
		p.Current = *o.Current
	}
	if o.ShowLabels != nil {
		p.ShowLabels = *o.ShowLabels
	}
	if o.ShowEquipotential != nil {
		p.ShowEquipotential = *o.ShowEquipotential
	}
	if o.ShowFieldVectors != nil {
		p.ShowFieldVectors = *o.ShowFieldVectors
	}
	if o.Seed != nil {
		p.Seed = *o.Seed
	}
	return p
}

type Config struct {
	Concept string     `yaml:"concept"`
	Params  Params     `yaml:"params"`
	View    ViewConfig `yaml:"view"`
	DataDir string     `yaml:"data_dir"`
}

type ViewConfig struct {
	Width           int     `yaml:"width"`
	Height          int     `yaml:"height"`
	Theme           string  `yaml:"theme"`
	AutoRotate      bool    `yaml:"auto_rotate"`
	AutoRotateSpeed float64 `yaml:"auto_rotate_speed"`
}

func DefaultConfig() *Config {
	return &Config{
		Concept: "electric-field-point",
		Params:  DefaultParams(),
		View: ViewConfig{
			Width:           DefaultWidth,
			Height:          DefaultHeight,
			Theme:           "dark",
			AutoRotate:      true,
			AutoRotateSpeed: 1.0,
		},
		DataDir: DefaultDir,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if err := cfg.Params.Validate(); err != nil {
		return nil, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
