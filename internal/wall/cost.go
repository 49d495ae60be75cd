package wall

import "github.com/alexiusacademia/gowall/internal/material"

// LayerCost holds the cost figures of one layer per m² of wall
type LayerCost struct {
	Cost          float64 // material cost × thickness
	Effectiveness float64 // R-value per unit cost, 0 when the layer is free
}

// CostSummary holds the cost figures of a whole assembly
type CostSummary struct {
	Layers               []LayerCost
	Total                float64
	AverageEffectiveness float64
}

// Costs prices each layer from the catalog.
// Layers whose material is not in the catalog cost nothing.
func Costs(layers []Layer, framing *FramingConfig, catalog *material.Catalog) CostSummary {
	rs := LayerResistances(layers, framing)
	summary := CostSummary{Layers: make([]LayerCost, len(layers))}

	var effSum float64
	for i, layer := range layers {
		var lc LayerCost
		if m, ok := catalog.Lookup(layer.Material); ok && layer.Thickness > 0 {
			lc.Cost = m.Cost * layer.Thickness
		}
		if lc.Cost > 0 {
			lc.Effectiveness = rs[i] / lc.Cost
		}
		summary.Layers[i] = lc
		summary.Total += lc.Cost
		effSum += lc.Effectiveness
	}

	if len(layers) > 0 {
		summary.AverageEffectiveness = effSum / float64(len(layers))
	}
	return summary
}
