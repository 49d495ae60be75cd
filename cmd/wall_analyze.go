package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gowall/internal/config"
	"github.com/alexiusacademia/gowall/internal/diagram"
	"github.com/alexiusacademia/gowall/internal/export"
	"github.com/alexiusacademia/gowall/internal/hygro"
	"github.com/alexiusacademia/gowall/internal/material"
	"github.com/alexiusacademia/gowall/internal/wall"
	"github.com/spf13/cobra"
)

var (
	wallAnalyzeFile        string
	wallAnalyzeShowDiagram bool
	wallAnalyzeExportFile  string
	wallAnalyzeXLSXFile    string
	wallAnalyzeConditions  conditionFlags
)

var wallAnalyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Thermal and moisture analysis of a wall assembly",
	Long: `Calculate the R-value, U-value, temperature and vapor pressure
profiles, dew point and condensation risk of a wall assembly defined
in a JSON or YAML file.

Boundary conditions come from the command-line flags when set, then
from the "conditions" section of the wall file, then from the
configured defaults (20°C / 50% inside, 5°C / 80% outside).

Examples:
  gowall wall analyze --file stud-wall.json
  gowall wall analyze -f stud-wall.yaml --outside-temp -10 --diagram
  gowall wall analyze -f stud-wall.json -o charts/stud.png --xlsx stud.xlsx`,
	Run: runWallAnalyze,
}

func init() {
	wallCmd.AddCommand(wallAnalyzeCmd)

	wallAnalyzeCmd.Flags().StringVarP(&wallAnalyzeFile, "file", "f", "", "Path to wall JSON or YAML file [required]")
	wallAnalyzeCmd.MarkFlagRequired("file")

	wallAnalyzeConditions.register(wallAnalyzeCmd)

	// Diagram options
	wallAnalyzeCmd.Flags().BoolVar(&wallAnalyzeShowDiagram, "diagram", false, "Show ASCII wall section and temperature profile")
	wallAnalyzeCmd.Flags().StringVarP(&wallAnalyzeExportFile, "output", "o", "", "Export gradient charts to file (png, svg, pdf)")
	wallAnalyzeCmd.Flags().StringVar(&wallAnalyzeXLSXFile, "xlsx", "", "Export results to an Excel workbook")
}

func runWallAnalyze(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		return
	}

	catalog := material.Default()
	assembly, err := loadAssembly(wallAnalyzeFile, catalog, cfg)
	if err != nil {
		fmt.Printf("Error loading wall: %v\n", err)
		return
	}

	bc := wallAnalyzeConditions.resolve(cmd, cfg, assembly)

	// Run analysis
	result, err := hygro.Analyze(assembly.Layers, assembly.Framing, bc)
	if err != nil {
		fmt.Printf("Error analyzing wall: %v\n", err)
		return
	}
	warnIssues(result.Issues)
	costs := wall.Costs(assembly.Layers, assembly.Framing, catalog)

	// Print results
	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     WALL ASSEMBLY THERMAL & MOISTURE ANALYSIS")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if assembly.Name != "" {
		fmt.Printf("  Wall: %s\n", assembly.Name)
	}
	if assembly.Description != "" {
		fmt.Printf("  Description: %s\n", assembly.Description)
	}
	fmt.Printf("  Framing: %s\n", framingLabel(assembly.Framing))
	fmt.Println()

	// Boundary conditions
	fmt.Println("BOUNDARY CONDITIONS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  \tTemperature\tRelative humidity\n")
	fmt.Fprintf(w, "  Inside:\t%.1f °C\t%.0f %%\n", bc.InsideTemp, bc.InsideRH)
	fmt.Fprintf(w, "  Outside:\t%.1f °C\t%.0f %%\n", bc.OutsideTemp, bc.OutsideRH)
	w.Flush()
	fmt.Println()

	printLayerTable(assembly, result.LayerResistances)

	// Thermal performance
	fmt.Println("THERMAL PERFORMANCE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Total R-value:\t%.3f m²K/W\n", result.RValue)
	fmt.Fprintf(w, "  U-value:\t%.3f W/m²K\n", result.UValue)
	fmt.Fprintf(w, "  Rating:\t%s\n", result.Rating)
	fmt.Fprintf(w, "  Total cost:\t%.2f per m²\n", costs.Total)
	w.Flush()
	fmt.Println()

	// Gradient
	fmt.Println("TEMPERATURE & VAPOR PROFILE:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Boundary\tPosition (mm)\tT (°C)\tp (Pa)\tPsat (Pa)\n")
	fmt.Fprintf(w, "  ────────\t─────────────\t──────\t──────\t─────────\n")
	for i, p := range result.Profile {
		fmt.Fprintf(w, "  %d\t%.1f\t%.2f\t%.0f\t%.0f\n",
			i, p.Position*1000, p.Temperature, p.VaporPressure, p.SaturationPressure)
	}
	w.Flush()
	fmt.Println()

	// Dew point
	fmt.Println("DEW POINT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Inside air dew point:\t%.2f °C\n", result.DewPoint)
	if result.HasDewPointCrossing {
		fmt.Fprintf(w, "  Reached at:\t%.1f mm from the inside face\n", result.DewPointPosition*1000)
	} else {
		fmt.Fprintf(w, "  Reached at:\tnot reached within the wall\n")
	}
	w.Flush()
	fmt.Println()

	// Condensation risk
	fmt.Println("CONDENSATION RISK:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Temperature at/below dew point:\t%s%s\n",
		yesNo(result.Assessment.HasTemperatureRisk), layerList(assembly, result.Assessment.TemperatureRiskLayers))
	fmt.Fprintf(w, "  Vapor pressure at/above saturation:\t%s%s\n",
		yesNo(result.Assessment.HasVaporPressureRisk), layerList(assembly, result.Assessment.VaporPressureRiskLayers))
	w.Flush()
	fmt.Println()

	status := "✓ No interstitial condensation risk"
	if result.Assessment.HasRisk() {
		status = "⚠ Interstitial condensation risk"
	}
	fmt.Print(diagram.DrawSummaryBox("RESULT", []string{
		fmt.Sprintf("U = %.3f W/m²K (%s)", result.UValue, result.Rating),
		fmt.Sprintf("R = %.3f m²K/W", result.RValue),
		status,
	}))
	fmt.Println()

	if result.Condition.Degenerate() {
		fmt.Println("STATUS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		fmt.Printf("  Degenerate input: %s\n", result.Condition)
		fmt.Println()
	}

	data := gradientDiagramData(assembly, result, catalog)

	// Show diagram if requested
	if wallAnalyzeShowDiagram {
		fmt.Println(diagram.DrawASCIIWallSection(data))
		fmt.Println(diagram.DrawTemperatureProfile(data))
	}

	// Export charts if requested
	if wallAnalyzeExportFile != "" {
		files, err := diagram.ExportGradientCharts(data, wallAnalyzeExportFile)
		if err != nil {
			fmt.Printf("Error exporting charts: %v\n", err)
		} else {
			for _, f := range files {
				fmt.Printf("Chart exported to: %s\n", f)
			}
		}
	}

	// Export workbook if requested
	if wallAnalyzeXLSXFile != "" {
		report := export.Report{
			Assembly:   assembly,
			Conditions: bc,
			Result:     result,
			Costs:      costs,
		}
		if err := export.WriteWorkbook(report, wallAnalyzeXLSXFile); err != nil {
			fmt.Printf("Error exporting workbook: %v\n", err)
		} else {
			fmt.Printf("Workbook exported to: %s\n", wallAnalyzeXLSXFile)
		}
	}
}

func printLayerTable(assembly *wall.Assembly, resistances []float64) {
	framed := -1
	if assembly.Framing.Applies() {
		framed = wall.FramedLayer(assembly.Layers)
	}

	fmt.Println("LAYERS (inside → outside):")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tMaterial\tt (mm)\tλ (W/mK)\tμ\tR (m²K/W)\n")
	fmt.Fprintf(w, "  ─\t────────\t──────\t────────\t─\t─────────\n")
	for i, layer := range assembly.Layers {
		name := layer.Material
		if name == "" {
			name = "(not selected)"
		}
		if i == framed {
			name += " [framed]"
		}
		fmt.Fprintf(w, "  %d\t%s\t%.1f\t%.3f\t%.0f\t%.3f\n",
			i+1, name, layer.Thickness, layer.Conductivity, layer.VaporFactor(), resistances[i])
	}
	w.Flush()
	fmt.Println()
}

func layerList(assembly *wall.Assembly, indices []int) string {
	if len(indices) == 0 {
		return ""
	}
	s := " ("
	for n, i := range indices {
		if n > 0 {
			s += ", "
		}
		name := fmt.Sprintf("layer %d", i+1)
		if i < len(assembly.Layers) && assembly.Layers[i].Material != "" {
			name += " " + assembly.Layers[i].Material
		}
		s += name
	}
	return s + ")"
}
