package cmd

import (
	"fmt"
	"log"

	"github.com/alexiusacademia/gowall/internal/config"
	"github.com/alexiusacademia/gowall/internal/diagram"
	"github.com/alexiusacademia/gowall/internal/hygro"
	"github.com/alexiusacademia/gowall/internal/material"
	"github.com/alexiusacademia/gowall/internal/wall"
	"github.com/spf13/cobra"
)

// conditionFlags are the boundary condition flags shared by wall commands
type conditionFlags struct {
	insideTemp  float64
	outsideTemp float64
	insideRH    float64
	outsideRH   float64
}

func (f *conditionFlags) register(cmd *cobra.Command) {
	d := wall.DefaultConditions
	cmd.Flags().Float64Var(&f.insideTemp, "inside-temp", d.InsideTemp, "Inside air temperature (°C)")
	cmd.Flags().Float64Var(&f.outsideTemp, "outside-temp", d.OutsideTemp, "Outside air temperature (°C)")
	cmd.Flags().Float64Var(&f.insideRH, "inside-rh", d.InsideRH, "Inside relative humidity (%)")
	cmd.Flags().Float64Var(&f.outsideRH, "outside-rh", d.OutsideRH, "Outside relative humidity (%)")
}

// resolve picks the boundary conditions in order of precedence:
// flags set on the command line, the wall file, then the configured defaults
func (f *conditionFlags) resolve(cmd *cobra.Command, cfg config.Config, a *wall.Assembly) wall.BoundaryConditions {
	bc := cfg.Conditions
	if a != nil && a.Conditions != nil {
		bc = *a.Conditions
	}

	changed := func(name string) bool { return cmd.Flags().Changed(name) }
	if changed("inside-temp") {
		bc.InsideTemp = f.insideTemp
	}
	if changed("outside-temp") {
		bc.OutsideTemp = f.outsideTemp
	}
	if changed("inside-rh") {
		bc.InsideRH = f.insideRH
	}
	if changed("outside-rh") {
		bc.OutsideRH = f.outsideRH
	}
	return bc
}

// loadAssembly reads a wall file and applies the configured framing
// default when the file has no framing section
func loadAssembly(path string, catalog *material.Catalog, cfg config.Config) (*wall.Assembly, error) {
	a, err := wall.LoadFromFile(path, catalog)
	if err != nil {
		return nil, err
	}
	if a.Framing == nil && cfg.Framing != wall.FramingNone {
		if preset, ok := wall.Preset(cfg.Framing); ok {
			a.Framing = &preset
		}
	}
	return a, nil
}

// warnIssues reports data-quality problems on stderr
func warnIssues(issues []wall.Issue) {
	for _, issue := range issues {
		log.Printf("WARNING: %s", issue)
	}
}

// gradientDiagramData converts an analysis into diagram input (mm positions)
func gradientDiagramData(a *wall.Assembly, result *hygro.Result, catalog *material.Catalog) diagram.GradientDiagramData {
	data := diagram.GradientDiagramData{
		Title:            a.Name,
		DewPoint:         result.DewPoint,
		DewPointPosition: result.DewPointPosition * 1000,
		HasCrossing:      result.HasDewPointCrossing,
	}

	framed := -1
	if a.Framing.Applies() {
		framed = wall.FramedLayer(a.Layers)
	}
	for i, layer := range a.Layers {
		data.Layers = append(data.Layers, diagram.LayerBand{
			Material:   layer.Material,
			Thickness:  layer.Thickness,
			Color:      catalog.Color(layer.Material),
			Insulation: layer.IsInsulation,
			Framed:     i == framed,
		})
	}
	for _, p := range result.Profile {
		data.Positions = append(data.Positions, p.Position*1000)
		data.Temperatures = append(data.Temperatures, p.Temperature)
		data.VaporPressures = append(data.VaporPressures, p.VaporPressure)
		data.SaturationPressures = append(data.SaturationPressures, p.SaturationPressure)
	}
	data.RiskLayers = riskLayers(result.Assessment)

	return data
}

// riskLayers merges the temperature and vapor risk layers, in order, once each
func riskLayers(a hygro.Assessment) []int {
	seen := make(map[int]bool)
	var out []int
	for _, list := range [][]int{a.TemperatureRiskLayers, a.VaporPressureRiskLayers} {
		for _, i := range list {
			if !seen[i] {
				seen[i] = true
				out = append(out, i)
			}
		}
	}
	return out
}

// resistanceStatus explains a zero total R-value, whose U of 0 would
// otherwise read as an Excellent rating
func resistanceStatus(layers []wall.Layer, r float64) string {
	if r > 0 {
		return ""
	}
	if len(layers) == 0 {
		return "empty assembly, U-value and rating are not meaningful"
	}
	return "zero thermal resistance, U-value and rating are not meaningful"
}

func yesNo(b bool) string {
	if b {
		return "YES"
	}
	return "no"
}

func framingLabel(f *wall.FramingConfig) string {
	if !f.Applies() {
		return string(wall.FramingNone)
	}
	return fmt.Sprintf("%s (%.0f×%.0f mm @ %.0f mm, λ=%.2f, %.0f%% area)",
		f.Type, f.Width, f.Depth, f.Spacing, f.Conductivity, f.AreaFraction*100)
}
