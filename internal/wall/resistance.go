package wall

import "math"

// Resistance calculates the thermal resistance of a single layer (m²·K/W).
// A layer flagged with HasFraming is treated as two parallel heat-flow
// paths, through the framing members and through the cavity, combined by
// area-weighted conductance.
func Resistance(layer Layer, framing *FramingConfig) float64 {
	return layerResistance(layer, framing, layer.HasFraming)
}

// LayerResistances returns the resistance of each layer in order.
// Only the first layer flagged with HasFraming is blended with the
// framing path; later flags are ignored here and reported by Diagnose.
// Every R-value, U-value and gradient in this module is derived from
// this slice.
func LayerResistances(layers []Layer, framing *FramingConfig) []float64 {
	framed := FramedLayer(layers)
	out := make([]float64, len(layers))
	for i, layer := range layers {
		out[i] = layerResistance(layer, framing, i == framed)
	}
	return out
}

// TotalRValue sums the layer resistances of the assembly
func TotalRValue(layers []Layer, framing *FramingConfig) float64 {
	return Sum(LayerResistances(layers, framing))
}

// UValue calculates the thermal transmittance (W/(m²·K)) from a total R-value
func UValue(r float64) float64 {
	if r > 0 {
		return 1 / r
	}
	return 0
}

// Sum adds resistances in order
func Sum(values []float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// FramedLayer returns the index of the first layer flagged with
// HasFraming, or -1 when there is none
func FramedLayer(layers []Layer) int {
	for i, layer := range layers {
		if layer.HasFraming {
			return i
		}
	}
	return -1
}

func layerResistance(layer Layer, framing *FramingConfig, blended bool) float64 {
	t := layer.ThicknessMeters()
	if !blended || !framing.Applies() {
		return plainResistance(t, layer.Conductivity)
	}
	return parallelResistance(t, layer.Conductivity, framing.Conductivity, clampFraction(framing.AreaFraction))
}

// plainResistance is R = d/λ; a non-positive or NaN λ contributes nothing
func plainResistance(t, conductivity float64) float64 {
	if t <= 0 || !(conductivity > 0) {
		return 0
	}
	return t / conductivity
}

// parallelResistance combines the framing and cavity paths:
// R = 1 / (f·λf/d + (1-f)·λc/d)
// A weighted path with non-positive λ is a perfect conductor, so the
// blended layer has no resistance.
func parallelResistance(t, cavityConductivity, framingConductivity, fraction float64) float64 {
	if t <= 0 {
		return 0
	}

	paths := [...]struct {
		weight       float64
		conductivity float64
	}{
		{fraction, framingConductivity},
		{1 - fraction, cavityConductivity},
	}

	var u float64
	for _, p := range paths {
		if p.weight == 0 {
			continue
		}
		if !(p.conductivity > 0) {
			return 0
		}
		u += p.weight * (p.conductivity / t)
	}
	if u <= 0 {
		return 0
	}
	return 1 / u
}

// clampFraction limits f to [0, 1]; NaN becomes 0 (no framing path)
func clampFraction(f float64) float64 {
	if f < 0 || math.IsNaN(f) {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
