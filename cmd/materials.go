package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gowall/internal/material"
	"github.com/spf13/cobra"
)

var materialsCmd = &cobra.Command{
	Use:   "materials",
	Short: "List the material catalog",
	Long: `List the built-in materials with their thermal conductivity,
vapor resistance factor and cost. Material names in wall files are
matched without regard to case.`,
	Run: runMaterials,
}

func init() {
	rootCmd.AddCommand(materialsCmd)
}

func runMaterials(cmd *cobra.Command, args []string) {
	fmt.Println()
	fmt.Println("MATERIAL CATALOG:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Material\tλ (W/mK)\tμ\tInsulation\tCost (per m²·mm)\n")
	fmt.Fprintf(w, "  ────────\t────────\t─\t──────────\t────────────────\n")
	for _, m := range material.Default().All() {
		insulation := ""
		if m.IsInsulation {
			insulation = "✓"
		}
		fmt.Fprintf(w, "  %s\t%.3f\t%.0f\t%s\t%.2f\n", m.Name, m.Conductivity, m.VaporResistance, insulation, m.Cost)
	}
	w.Flush()
	fmt.Println()
}
