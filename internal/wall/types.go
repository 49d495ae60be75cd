package wall

import (
	"fmt"
	"math"
)

// MaxLayers is the largest assembly the layer editor builds.
// Larger assemblies still compute but are reported by Diagnose.
const MaxLayers = 8

// Assembly represents a wall build-up loaded from a JSON or YAML file.
// Layers are ordered from the inside face to the outside face.
type Assembly struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`

	// Framing applies to the first layer flagged with has_framing
	Framing *FramingConfig `json:"framing,omitempty" yaml:"framing,omitempty"`

	// Conditions override the command-line boundary conditions (optional)
	Conditions *BoundaryConditions `json:"conditions,omitempty" yaml:"conditions,omitempty"`

	Layers []Layer `json:"layers" yaml:"layers"`
}

// Layer is one material layer of the assembly.
// Conductivity, IsInsulation and VaporResistance are snapshots of the
// material at selection time, not live references into the catalog.
type Layer struct {
	ID        string  `json:"id,omitempty" yaml:"id,omitempty"`
	Material  string  `json:"material" yaml:"material"`   // Empty means not yet selected
	Thickness float64 `json:"thickness" yaml:"thickness"` // mm, 0 means not yet configured

	// λ (W/(m·K))
	Conductivity float64 `json:"conductivity,omitempty" yaml:"conductivity,omitempty"`
	IsInsulation bool    `json:"is_insulation,omitempty" yaml:"is_insulation,omitempty"`
	HasFraming   bool    `json:"has_framing,omitempty" yaml:"has_framing,omitempty"`

	// μ, unset means 1
	VaporResistance float64 `json:"vapor_resistance,omitempty" yaml:"vapor_resistance,omitempty"`
}

// ThicknessMeters converts the layer thickness from mm to m.
// Negative or non-finite thickness is treated as zero.
func (l Layer) ThicknessMeters() float64 {
	if !(l.Thickness > 0) || math.IsInf(l.Thickness, 1) {
		return 0
	}
	return l.Thickness / 1000
}

// VaporFactor returns μ, defaulting to 1 (air-equivalent) when unset or
// not a finite positive number
func (l Layer) VaporFactor() float64 {
	if l.VaporResistance > 0 && !math.IsInf(l.VaporResistance, 1) {
		return l.VaporResistance
	}
	return 1
}

// VaporResistanceThickness returns μ·d in meters
func (l Layer) VaporResistanceThickness() float64 {
	return l.VaporFactor() * l.ThicknessMeters()
}

// IsComplete reports whether the layer has a material and a thickness
func (l Layer) IsComplete() bool {
	return l.Material != "" && l.ThicknessMeters() > 0
}

// BoundaryConditions holds the ambient air state on both sides of the wall
type BoundaryConditions struct {
	InsideTemp  float64 `json:"inside_temp" yaml:"inside_temp"`   // °C
	OutsideTemp float64 `json:"outside_temp" yaml:"outside_temp"` // °C
	InsideRH    float64 `json:"inside_rh" yaml:"inside_rh"`       // %
	OutsideRH   float64 `json:"outside_rh" yaml:"outside_rh"`     // %
}

// DefaultConditions is a heated room on a cool, damp day
var DefaultConditions = BoundaryConditions{
	InsideTemp:  20,
	OutsideTemp: 5,
	InsideRH:    50,
	OutsideRH:   80,
}

// Validate checks if the assembly definition is usable.
// Non-finite numbers (YAML .nan and .inf) are rejected anywhere.
func (a *Assembly) Validate() error {
	if a.Framing != nil {
		if !a.Framing.Type.Known() {
			return &ValidationError{msg: fmt.Sprintf("unknown framing type %q", a.Framing.Type)}
		}
		if err := checkFinite("framing", map[string]float64{
			"width":         a.Framing.Width,
			"depth":         a.Framing.Depth,
			"spacing":       a.Framing.Spacing,
			"conductivity":  a.Framing.Conductivity,
			"area_fraction": a.Framing.AreaFraction,
		}); err != nil {
			return err
		}
	}
	if a.Conditions != nil {
		if err := checkFinite("conditions", map[string]float64{
			"inside_temp":  a.Conditions.InsideTemp,
			"outside_temp": a.Conditions.OutsideTemp,
			"inside_rh":    a.Conditions.InsideRH,
			"outside_rh":   a.Conditions.OutsideRH,
		}); err != nil {
			return err
		}
	}
	for i, layer := range a.Layers {
		if err := checkFinite(fmt.Sprintf("layer %d", i+1), map[string]float64{
			"thickness":        layer.Thickness,
			"conductivity":     layer.Conductivity,
			"vapor_resistance": layer.VaporResistance,
		}); err != nil {
			return err
		}
		if layer.Thickness < 0 {
			return &ValidationError{msg: fmt.Sprintf("layer %d must not have negative thickness", i+1)}
		}
	}
	return nil
}

func checkFinite(where string, fields map[string]float64) error {
	for name, v := range fields {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return &ValidationError{msg: fmt.Sprintf("%s: %s must be a finite number, got %v", where, name, v)}
		}
	}
	return nil
}

// ValidationError represents an assembly validation error
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}
