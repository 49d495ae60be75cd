package hygro

import (
	"strings"

	"github.com/alexiusacademia/gowall/internal/wall"
)

// Condition flags degenerate inputs. A zero Condition means the result is
// a regular, non-degenerate profile.
type Condition uint8

const (
	// ConditionEmptyAssembly means there are no layers at all
	ConditionEmptyAssembly Condition = 1 << iota
	// ConditionIncompleteLayer means some layer lacks a material or thickness
	ConditionIncompleteLayer
	// ConditionZeroResistance means total R is 0; the temperature profile is flat
	ConditionZeroResistance
	// ConditionZeroVaporResistance means total μ·d is 0; the vapor profile is flat
	ConditionZeroVaporResistance
)

var conditionNames = []struct {
	flag Condition
	name string
}{
	{ConditionEmptyAssembly, "empty assembly"},
	{ConditionIncompleteLayer, "incomplete layer"},
	{ConditionZeroResistance, "zero thermal resistance"},
	{ConditionZeroVaporResistance, "zero vapor resistance"},
}

// Has reports whether every bit of flag is set
func (c Condition) Has(flag Condition) bool {
	return c&flag == flag
}

// Degenerate reports whether any condition is set
func (c Condition) Degenerate() bool {
	return c != 0
}

func (c Condition) String() string {
	if c == 0 {
		return "ok"
	}
	var parts []string
	for _, n := range conditionNames {
		if c.Has(n.flag) {
			parts = append(parts, n.name)
		}
	}
	return strings.Join(parts, ", ")
}

// GradientPoint is the state at one layer boundary
type GradientPoint struct {
	Position           float64 // m from the inside face
	Temperature        float64 // °C
	VaporPressure      float64 // Pa
	SaturationPressure float64 // Pa
}

// Positions returns the cumulative boundary positions (m), starting at 0
func Positions(layers []wall.Layer) []float64 {
	out := make([]float64, len(layers)+1)
	for i, layer := range layers {
		out[i+1] = out[i] + layer.ThicknessMeters()
	}
	return out
}

// Temperatures distributes the inside-to-outside temperature drop over the
// layer boundaries in proportion to cumulative thermal resistance.
// The first point is exactly inside and the last exactly outside. With no
// resistance every boundary sits at the inside temperature.
func Temperatures(layers []wall.Layer, framing *wall.FramingConfig, inside, outside float64) ([]float64, Condition) {
	cond := layerConditions(layers)
	rs := wall.LayerResistances(layers, framing)
	totalR := wall.Sum(rs)

	temps := make([]float64, len(layers)+1)
	temps[0] = inside
	if totalR <= 0 {
		for i := range temps {
			temps[i] = inside
		}
		return temps, cond | ConditionZeroResistance
	}

	var currentR float64
	for i, r := range rs {
		currentR += r
		temps[i+1] = inside - (currentR/totalR)*(inside-outside)
	}
	temps[len(temps)-1] = outside

	return temps, cond
}

// VaporPressures distributes the actual vapor pressure over the layer
// boundaries in proportion to cumulative vapor resistance (μ·d).
// The end pressures are Psat(T)·RH/100 of the inside and outside air.
// With no vapor resistance every boundary holds the inside pressure.
func VaporPressures(layers []wall.Layer, bc wall.BoundaryConditions) ([]float64, Condition) {
	cond := layerConditions(layers)
	pInside := SaturationPressure(bc.InsideTemp) * bc.InsideRH / 100
	pOutside := SaturationPressure(bc.OutsideTemp) * bc.OutsideRH / 100

	var totalZ float64
	for _, layer := range layers {
		totalZ += layer.VaporResistanceThickness()
	}

	pressures := make([]float64, len(layers)+1)
	pressures[0] = pInside
	if totalZ <= 0 {
		for i := range pressures {
			pressures[i] = pInside
		}
		return pressures, cond | ConditionZeroVaporResistance
	}

	var currentZ float64
	for i, layer := range layers {
		currentZ += layer.VaporResistanceThickness()
		pressures[i+1] = pInside - (currentZ/totalZ)*(pInside-pOutside)
	}
	pressures[len(pressures)-1] = pOutside

	return pressures, cond
}

// Profile combines position, temperature, actual and saturation vapor
// pressure at every boundary
func Profile(layers []wall.Layer, framing *wall.FramingConfig, bc wall.BoundaryConditions) ([]GradientPoint, Condition) {
	positions := Positions(layers)
	temps, tCond := Temperatures(layers, framing, bc.InsideTemp, bc.OutsideTemp)
	pressures, pCond := VaporPressures(layers, bc)

	points := make([]GradientPoint, len(temps))
	for i := range points {
		points[i] = GradientPoint{
			Position:           positions[i],
			Temperature:        temps[i],
			VaporPressure:      pressures[i],
			SaturationPressure: SaturationPressure(temps[i]),
		}
	}
	return points, tCond | pCond
}

func layerConditions(layers []wall.Layer) Condition {
	if len(layers) == 0 {
		return ConditionEmptyAssembly
	}
	for _, layer := range layers {
		if !layer.IsComplete() {
			return ConditionIncompleteLayer
		}
	}
	return 0
}
