package wall_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/alexiusacademia/gowall/internal/material"
	"github.com/alexiusacademia/gowall/internal/wall"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFromFile_JSONFillsFromCatalog(t *testing.T) {
	path := writeFile(t, "wall.json", `{
  "name": "Test Wall",
  "framing": {"type": "standard"},
  "layers": [
    {"material": "gypsum board", "thickness": 12.5},
    {"id": "cavity", "material": "Mineral Wool λ0.036", "thickness": 150, "has_framing": true},
    {"material": "OSB", "thickness": 12, "vapor_resistance": 120}
  ]
}`)

	a, err := wall.LoadFromFile(path, material.Default())
	require.NoError(t, err)
	require.Len(t, a.Layers, 3)

	gypsum := a.Layers[0]
	assert.Equal(t, material.GypsumBoard, gypsum.Material)
	assert.Equal(t, 0.2, gypsum.Conductivity)
	assert.Equal(t, 8.0, gypsum.VaporResistance)
	assert.NotEmpty(t, gypsum.ID)

	assert.Equal(t, "cavity", a.Layers[1].ID)
	assert.True(t, a.Layers[1].IsInsulation)
	assert.True(t, a.Layers[1].HasFraming)

	// File values win over the catalog
	assert.Equal(t, 120.0, a.Layers[2].VaporResistance)

	require.NotNil(t, a.Framing)
	assert.Equal(t, 0.12, a.Framing.Conductivity)
	assert.Equal(t, 0.15, a.Framing.AreaFraction)
	assert.Equal(t, 400.0, a.Framing.Spacing)
}

func TestLoadFromFile_YAML(t *testing.T) {
	path := writeFile(t, "wall.yaml", `
name: YAML Wall
framing:
  type: i-joist
  depth: 300
  area_fraction: 0.12
conditions:
  inside_temp: 21
  outside_temp: -10
  inside_rh: 40
  outside_rh: 85
layers:
  - material: Brick
    thickness: 102
  - material: Insulation Foam
    thickness: 100
    has_framing: true
`)

	a, err := wall.LoadFromFile(path, material.Default())
	require.NoError(t, err)
	assert.Equal(t, "YAML Wall", a.Name)
	require.Len(t, a.Layers, 2)
	assert.Equal(t, 1.7, a.Layers[0].Conductivity)
	assert.Equal(t, 50.0, a.Layers[1].VaporResistance)

	require.NotNil(t, a.Framing)
	assert.Equal(t, 300.0, a.Framing.Depth)
	assert.Equal(t, 0.12, a.Framing.AreaFraction)
	assert.Equal(t, 0.13, a.Framing.Conductivity)

	require.NotNil(t, a.Conditions)
	assert.Equal(t, wall.BoundaryConditions{InsideTemp: 21, OutsideTemp: -10, InsideRH: 40, OutsideRH: 85}, *a.Conditions)
}

func TestLoadFromFile_UnknownMaterialStaysIncomplete(t *testing.T) {
	path := writeFile(t, "wall.json", `{"layers": [{"material": "Straw Bale", "thickness": 400}]}`)

	a, err := wall.LoadFromFile(path, material.Default())
	require.NoError(t, err)
	assert.Equal(t, "Straw Bale", a.Layers[0].Material)
	assert.Zero(t, a.Layers[0].Conductivity)
	assert.Equal(t, 1.0, a.Layers[0].VaporFactor())
}

func TestLoadFromFile_Errors(t *testing.T) {
	_, err := wall.LoadFromFile(filepath.Join(t.TempDir(), "missing.json"), material.Default())
	assert.ErrorIs(t, err, os.ErrNotExist)

	_, err = wall.LoadFromFile(writeFile(t, "bad.json", `{"layers": [`), material.Default())
	assert.Error(t, err)

	_, err = wall.LoadFromFile(writeFile(t, "frame.json", `{"framing": {"type": "steel"}, "layers": []}`), material.Default())
	var verr *wall.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Error(), "steel")

	_, err = wall.LoadFromFile(writeFile(t, "neg.json", `{"layers": [{"material": "Brick", "thickness": -1}]}`), material.Default())
	assert.True(t, errors.As(err, &verr))
}

func TestLoadFromFile_RejectsNonFiniteNumbers(t *testing.T) {
	cases := map[string]string{
		"fraction.yaml": `
framing:
  type: standard
  area_fraction: .nan
layers:
  - material: Mineral Wool λ0.036
    thickness: 150
    has_framing: true
`,
		"thickness.yaml": `
layers:
  - material: Brick
    thickness: .inf
`,
		"conductivity.yaml": `
layers:
  - material: Brick
    thickness: 102
    conductivity: -.inf
`,
		"conditions.yaml": `
conditions:
  inside_temp: .nan
  outside_temp: -5
  inside_rh: 50
  outside_rh: 80
layers:
  - material: Brick
    thickness: 102
`,
	}

	for name, content := range cases {
		_, err := wall.LoadFromFile(writeFile(t, name, content), material.Default())
		var verr *wall.ValidationError
		require.True(t, errors.As(err, &verr), name)
		assert.Contains(t, verr.Error(), "finite", name)
	}
}

func TestAssembly_SaveToFileRoundTrip(t *testing.T) {
	cat := material.Default()
	ex, ok := wall.Example(cat, "I-Joist Wall with Mineral Wool")
	require.True(t, ok)

	for _, name := range []string{"wall.json", "wall.yml"} {
		path := filepath.Join(t.TempDir(), name)
		require.NoError(t, ex.SaveToFile(path))

		loaded, err := wall.LoadFromFile(path, cat)
		require.NoError(t, err, name)
		assert.Equal(t, ex.Layers, loaded.Layers, name)
		assert.Equal(t, *ex.Framing, *loaded.Framing, name)
	}
}

func TestNewLayer(t *testing.T) {
	cat := material.Default()

	l := wall.NewLayer(cat, "vapour barrier", 1)
	assert.Equal(t, material.VapourBarrier, l.Material)
	assert.Equal(t, 0.4, l.Conductivity)
	assert.Equal(t, 100000.0, l.VaporResistance)
	assert.NotEmpty(t, l.ID)
	assert.InDelta(t, 0.001, l.ThicknessMeters(), 1e-15)

	other := wall.NewLayer(cat, "vapour barrier", 1)
	assert.NotEqual(t, l.ID, other.ID)

	unknown := wall.NewLayer(cat, "", 0)
	assert.False(t, unknown.IsComplete())
}

func TestLayer_VaporFactorDefaultsToOne(t *testing.T) {
	assert.Equal(t, 1.0, wall.Layer{}.VaporFactor())
	assert.Equal(t, 1.0, wall.Layer{VaporResistance: -3}.VaporFactor())
	assert.Equal(t, 150.0, wall.Layer{VaporResistance: 150}.VaporFactor())
	assert.InDelta(t, 1.8, wall.Layer{Thickness: 12, VaporResistance: 150}.VaporResistanceThickness(), 1e-12)
}
