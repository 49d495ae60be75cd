package wall

import "fmt"

// FramingType selects the kind of framing members bridging a layer
type FramingType string

const (
	FramingNone     FramingType = "none"
	FramingStandard FramingType = "standard"
	FramingIJoist   FramingType = "i-joist"
)

// Known reports whether t is a recognized framing type.
// The empty type is treated as none.
func (t FramingType) Known() bool {
	switch t {
	case "", FramingNone, FramingStandard, FramingIJoist:
		return true
	}
	return false
}

// FramingConfig describes the framing members running through a layer
type FramingConfig struct {
	Type         FramingType `json:"type" yaml:"type"`
	Width        float64     `json:"width,omitempty" yaml:"width,omitempty"`                 // mm
	Depth        float64     `json:"depth,omitempty" yaml:"depth,omitempty"`                 // mm
	Spacing      float64     `json:"spacing,omitempty" yaml:"spacing,omitempty"`             // mm, center to center
	Conductivity float64     `json:"conductivity,omitempty" yaml:"conductivity,omitempty"`   // W/(m·K)
	AreaFraction float64     `json:"area_fraction,omitempty" yaml:"area_fraction,omitempty"` // 0-1
}

// Applies reports whether the framing contributes a parallel heat-flow path
func (f *FramingConfig) Applies() bool {
	return f != nil && f.Type != "" && f.Type != FramingNone
}

// IJoistDepths are the available I-joist depths (mm)
var IJoistDepths = []float64{100, 150, 200, 250, 300, 350, 400}

// FramingPresets holds the default member geometry per framing type
var FramingPresets = []FramingConfig{
	{
		Type: FramingNone,
	},
	{
		Type:         FramingStandard,
		Width:        45,  // 2x4 stud
		Depth:        150, // standard depth
		Spacing:      400, // 16" on center
		Conductivity: 0.12,
		AreaFraction: 0.15,
	},
	{
		Type:         FramingIJoist,
		Width:        45,  // flange width
		Depth:        200, // default depth
		Spacing:      600, // 24" on center
		Conductivity: 0.13,
		AreaFraction: 0.10,
	},
}

// Preset returns the default framing configuration for a type
func Preset(t FramingType) (FramingConfig, bool) {
	if t == "" {
		t = FramingNone
	}
	for _, p := range FramingPresets {
		if p.Type == t {
			return p, true
		}
	}
	return FramingConfig{}, false
}

// IJoistPreset returns the I-joist preset at the given depth
func IJoistPreset(depth float64) (FramingConfig, error) {
	for _, d := range IJoistDepths {
		if d == depth {
			cfg, _ := Preset(FramingIJoist)
			cfg.Depth = depth
			return cfg, nil
		}
	}
	return FramingConfig{}, fmt.Errorf("unsupported I-joist depth %.0f mm (available: %v)", depth, IJoistDepths)
}

// WithDefaults fills zero-valued fields from the preset of the same type
func (f FramingConfig) WithDefaults() FramingConfig {
	p, ok := Preset(f.Type)
	if !ok {
		return f
	}
	if f.Type == "" {
		f.Type = p.Type
	}
	if f.Width == 0 {
		f.Width = p.Width
	}
	if f.Depth == 0 {
		f.Depth = p.Depth
	}
	if f.Spacing == 0 {
		f.Spacing = p.Spacing
	}
	if f.Conductivity == 0 {
		f.Conductivity = p.Conductivity
	}
	if f.AreaFraction == 0 {
		f.AreaFraction = p.AreaFraction
	}
	return f
}
