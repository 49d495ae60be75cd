package wall

import "github.com/alexiusacademia/gowall/internal/material"

type exampleLayer struct {
	material   string
	thickness  float64
	hasFraming bool
}

type exampleWall struct {
	name        string
	description string
	framing     FramingType
	iJoistDepth float64
	layers      []exampleLayer
}

var exampleWalls = []exampleWall{
	{
		name:        "Standard Stud Wall with Service Space",
		description: "Timber stud wall with a service cavity inside the vapour barrier",
		framing:     FramingStandard,
		layers: []exampleLayer{
			{material.GypsumBoard, 12.5, false},
			{material.VapourBarrier, 1, false},
			{material.ServiceSpace, 50, false},
			{material.MineralWool036, 150, true},
			{material.Windbreak, 1, false},
			{material.OSB, 12, false},
		},
	},
	{
		name:        "I-Joist Wall with Mineral Wool",
		description: "Deep I-joist wall with rendered OSB sheathing",
		framing:     FramingIJoist,
		iJoistDepth: 200,
		layers: []exampleLayer{
			{material.GypsumBoard, 12.5, false},
			{material.MineralWool036, 200, true},
			{material.VapourBarrier, 1, false},
			{material.OSB, 12, false},
			{material.Plaster, 12, false},
		},
	},
	{
		name:        "Brick Wall with Mineral Wool",
		description: "Insulated double brick wall",
		framing:     FramingNone,
		layers: []exampleLayer{
			{material.Brick, 102, false},
			{material.MineralWool036, 200, false},
			{material.Brick, 102, false},
		},
	},
}

// Examples returns fresh copies of the example assemblies
func Examples(catalog *material.Catalog) []Assembly {
	out := make([]Assembly, 0, len(exampleWalls))
	for _, ex := range exampleWalls {
		out = append(out, ex.build(catalog))
	}
	return out
}

// Example returns the example assembly with the given name
func Example(catalog *material.Catalog, name string) (Assembly, bool) {
	for _, ex := range exampleWalls {
		if ex.name == name {
			return ex.build(catalog), true
		}
	}
	return Assembly{}, false
}

func (ex exampleWall) build(catalog *material.Catalog) Assembly {
	a := Assembly{
		Name:        ex.name,
		Description: ex.description,
	}

	framing, _ := Preset(ex.framing)
	if ex.iJoistDepth > 0 {
		framing.Depth = ex.iJoistDepth
	}
	a.Framing = &framing

	for _, l := range ex.layers {
		layer := NewLayer(catalog, l.material, l.thickness)
		layer.HasFraming = l.hasFraming
		a.Layers = append(a.Layers, layer)
	}
	return a
}
