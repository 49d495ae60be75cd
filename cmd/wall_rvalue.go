package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gowall/internal/config"
	"github.com/alexiusacademia/gowall/internal/diagram"
	"github.com/alexiusacademia/gowall/internal/material"
	"github.com/alexiusacademia/gowall/internal/wall"
	"github.com/spf13/cobra"
)

var wallRValueFile string

var wallRValueCmd = &cobra.Command{
	Use:   "rvalue",
	Short: "R-value, U-value and cost of a wall assembly",
	Long: `Calculate the per-layer thermal resistance, total R-value,
U-value rating and layer costs of a wall assembly.

The first layer flagged with has_framing is treated as two parallel
heat-flow paths (framing members and cavity).

Examples:
  gowall wall rvalue --file stud-wall.json
  gowall wall rvalue -f brick-wall.yaml`,
	Run: runWallRValue,
}

func init() {
	wallCmd.AddCommand(wallRValueCmd)

	wallRValueCmd.Flags().StringVarP(&wallRValueFile, "file", "f", "", "Path to wall JSON or YAML file [required]")
	wallRValueCmd.MarkFlagRequired("file")
}

func runWallRValue(cmd *cobra.Command, args []string) {
	cfg, err := config.Load()
	if err != nil {
		fmt.Printf("Error loading configuration: %v\n", err)
		return
	}

	catalog := material.Default()
	assembly, err := loadAssembly(wallRValueFile, catalog, cfg)
	if err != nil {
		fmt.Printf("Error loading wall: %v\n", err)
		return
	}
	warnIssues(wall.Diagnose(assembly.Layers, assembly.Framing))

	resistances := wall.LayerResistances(assembly.Layers, assembly.Framing)
	r := wall.Sum(resistances)
	u := wall.UValue(r)
	costs := wall.Costs(assembly.Layers, assembly.Framing, catalog)

	fmt.Println()
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println("     WALL ASSEMBLY R-VALUE & COST")
	fmt.Println("═══════════════════════════════════════════════════════════════")
	fmt.Println()

	if assembly.Name != "" {
		fmt.Printf("  Wall: %s\n", assembly.Name)
	}
	fmt.Printf("  Framing: %s\n", framingLabel(assembly.Framing))
	fmt.Println()

	printLayerTable(assembly, resistances)

	// Cost
	fmt.Println("LAYER COST:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  #\tMaterial\tCost\tR per cost\n")
	fmt.Fprintf(w, "  ─\t────────\t────\t──────────\n")
	for i, lc := range costs.Layers {
		fmt.Fprintf(w, "  %d\t%s\t%.2f\t%.5f\n", i+1, assembly.Layers[i].Material, lc.Cost, lc.Effectiveness)
	}
	w.Flush()
	fmt.Println()
	w = tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Total cost:\t%.2f per m²\n", costs.Total)
	fmt.Fprintf(w, "  Average cost-effectiveness:\t%.5f\n", costs.AverageEffectiveness)
	w.Flush()
	fmt.Println()

	fmt.Print(diagram.DrawSummaryBox("THERMAL PERFORMANCE", []string{
		fmt.Sprintf("R = %.3f m²K/W", r),
		fmt.Sprintf("U = %.3f W/m²K", u),
		fmt.Sprintf("Rating: %s", wall.RateUValue(u)),
	}))
	fmt.Println()

	if status := resistanceStatus(assembly.Layers, r); status != "" {
		fmt.Println("STATUS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		fmt.Printf("  Degenerate input: %s\n", status)
		fmt.Println()
	}
}
