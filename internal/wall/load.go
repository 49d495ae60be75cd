package wall

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/alexiusacademia/gowall/internal/material"
	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
)

// LoadFromFile loads an assembly definition from a JSON or YAML file.
// The format is chosen by extension (.yaml/.yml, anything else is JSON).
func LoadFromFile(path string, catalog *material.Catalog) (*Assembly, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var assembly Assembly
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &assembly)
	default:
		err = json.Unmarshal(data, &assembly)
	}
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}

	if err := assembly.Validate(); err != nil {
		return nil, err
	}
	assembly.Resolve(catalog)

	return &assembly, nil
}

// SaveToFile writes the assembly as indented JSON, or YAML by extension
func (a *Assembly) SaveToFile(path string) error {
	var (
		data []byte
		err  error
	)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err = yaml.Marshal(a)
	default:
		data, err = json.MarshalIndent(a, "", "  ")
	}
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}

// Resolve fills material snapshots from the catalog, assigns missing
// layer IDs, and completes the framing configuration from its preset.
// Values already present in the file win over the catalog.
func (a *Assembly) Resolve(catalog *material.Catalog) {
	for i := range a.Layers {
		layer := &a.Layers[i]
		if layer.ID == "" {
			layer.ID = uuid.NewString()
		}
		m, ok := catalog.Lookup(layer.Material)
		if !ok {
			continue
		}
		layer.Material = m.Name
		if layer.Conductivity == 0 {
			layer.Conductivity = m.Conductivity
		}
		if layer.VaporResistance == 0 {
			layer.VaporResistance = m.VaporResistance
		}
		if !layer.IsInsulation {
			layer.IsInsulation = m.IsInsulation
		}
	}

	if a.Framing != nil {
		cfg := a.Framing.WithDefaults()
		a.Framing = &cfg
	}
}

// NewLayer creates a layer snapshotting the material's properties.
// An unknown material yields an incomplete layer with the given name.
func NewLayer(catalog *material.Catalog, name string, thickness float64) Layer {
	layer := Layer{
		ID:        uuid.NewString(),
		Material:  name,
		Thickness: thickness,
	}
	if m, ok := catalog.Lookup(name); ok {
		layer.Material = m.Name
		layer.Conductivity = m.Conductivity
		layer.IsInsulation = m.IsInsulation
		layer.VaporResistance = m.VaporResistance
	}
	return layer
}
