package material

import (
	"sort"
	"strings"

	"golang.org/x/text/cases"
)

// Material holds the physical and cost properties of a building material
type Material struct {
	Name            string  // Unique catalog key
	Conductivity    float64 // λ (W/(m·K))
	VaporResistance float64 // μ, vapor resistance factor (dimensionless)
	IsInsulation    bool
	Cost            float64 // Cost per m² per mm of thickness
	Color           string  // Display color (hex)
}

// Common material names
const (
	Brick          = "Brick"
	Concrete       = "Concrete"
	GypsumBoard    = "Gypsum Board"
	MineralWool036 = "Mineral Wool λ0.036"
	MineralWool034 = "Mineral Wool λ0.034"
	InsulationFoam = "Insulation Foam"
	Plywood        = "Plywood"
	OSB            = "OSB"
	ServiceSpace   = "Service Space"
	Windbreak      = "Windbreak"
	VapourBarrier  = "Vapour Barrier"
	Plaster        = "Plaster"
)

// CommonMaterials is the default material table
var CommonMaterials = []Material{
	{Name: Brick, Conductivity: 1.7, VaporResistance: 10, Cost: 0.55, Color: "#BC4A3C"},
	{Name: Concrete, Conductivity: 1.7, VaporResistance: 100, Cost: 150.0, Color: "#C4B6A6"},
	{Name: GypsumBoard, Conductivity: 0.2, VaporResistance: 8, Cost: 2.5, Color: "#EEEDE4"},
	{Name: MineralWool036, Conductivity: 0.036, VaporResistance: 1, IsInsulation: true, Cost: 0.5, Color: "#D3D3D3"},
	{Name: MineralWool034, Conductivity: 0.034, VaporResistance: 1, IsInsulation: true, Cost: 1.0, Color: "#D3D3F3"},
	{Name: InsulationFoam, Conductivity: 0.039, VaporResistance: 50, IsInsulation: true, Cost: 2.25, Color: "#D0EAE8"},
	{Name: Plywood, Conductivity: 0.3, VaporResistance: 200, Cost: 35.55, Color: "#EED5AE"},
	{Name: OSB, Conductivity: 0.13, VaporResistance: 150, Cost: 36.14, Color: "#DAA520"},
	{Name: ServiceSpace, Conductivity: 0.036, VaporResistance: 1, IsInsulation: true, Cost: 0.5, Color: "#E8E8E8"},
	{Name: Windbreak, Conductivity: 0.2, VaporResistance: 100, Cost: 5.0, Color: "#87CEEB"},
	{Name: VapourBarrier, Conductivity: 0.4, VaporResistance: 100000, Cost: 3.0, Color: "#87CEEB"},
	{Name: Plaster, Conductivity: 0.5, VaporResistance: 10, Cost: 5.0, Color: "#F8F8FF"},
}

// DefaultColor is used for layers whose material is not in the catalog
const DefaultColor = "#95A5A6"

// Catalog is a read-only lookup of materials by name.
// Lookups ignore case, so "gypsum board" finds "Gypsum Board".
type Catalog struct {
	byKey map[string]Material
	names []string
}

// NewCatalog builds a catalog from the given materials.
// Later entries replace earlier ones with the same name.
func NewCatalog(materials []Material) *Catalog {
	c := &Catalog{byKey: make(map[string]Material, len(materials))}
	for _, m := range materials {
		key := foldName(m.Name)
		if _, exists := c.byKey[key]; !exists {
			c.names = append(c.names, m.Name)
		}
		c.byKey[key] = m
	}
	sort.Strings(c.names)
	return c
}

var defaultCatalog = NewCatalog(CommonMaterials)

// Default returns the catalog of common materials
func Default() *Catalog {
	return defaultCatalog
}

// Lookup finds a material by name
func (c *Catalog) Lookup(name string) (Material, bool) {
	m, ok := c.byKey[foldName(name)]
	return m, ok
}

// Names returns the material names in alphabetical order
func (c *Catalog) Names() []string {
	out := make([]string, len(c.names))
	copy(out, c.names)
	return out
}

// All returns every material, ordered by name
func (c *Catalog) All() []Material {
	out := make([]Material, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, c.byKey[foldName(name)])
	}
	return out
}

// Color returns the display color for a material name, or DefaultColor
func (c *Catalog) Color(name string) string {
	if m, ok := c.Lookup(name); ok && m.Color != "" {
		return m.Color
	}
	return DefaultColor
}

// Cases are not safe for concurrent use, so each call gets its own.
func foldName(name string) string {
	return cases.Fold().String(strings.TrimSpace(name))
}
