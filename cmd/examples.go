package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gowall/internal/material"
	"github.com/alexiusacademia/gowall/internal/wall"
	"github.com/spf13/cobra"
)

var (
	examplesName  string
	examplesWrite string
)

var examplesCmd = &cobra.Command{
	Use:   "examples",
	Short: "List example wall assemblies",
	Long: `List the built-in example wall assemblies, or write one to a
JSON or YAML file to use as a starting point.

Examples:
  gowall examples
  gowall examples --name "Brick Wall with Mineral Wool" --write brick.json`,
	Run: runExamples,
}

func init() {
	rootCmd.AddCommand(examplesCmd)

	examplesCmd.Flags().StringVar(&examplesName, "name", "", "Example wall name")
	examplesCmd.Flags().StringVar(&examplesWrite, "write", "", "Write the named example to a JSON or YAML file")
}

func runExamples(cmd *cobra.Command, args []string) {
	catalog := material.Default()

	if examplesName == "" {
		if examplesWrite != "" {
			fmt.Println("Error: --write requires --name")
			return
		}
		fmt.Println()
		fmt.Println("EXAMPLE WALLS:")
		fmt.Println("───────────────────────────────────────────────────────────────")
		w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
		fmt.Fprintf(w, "  Name\tLayers\tFraming\tR (m²K/W)\tU (W/m²K)\n")
		fmt.Fprintf(w, "  ────\t──────\t───────\t─────────\t─────────\n")
		for _, ex := range wall.Examples(catalog) {
			r := wall.TotalRValue(ex.Layers, ex.Framing)
			framing := wall.FramingNone
			if ex.Framing.Applies() {
				framing = ex.Framing.Type
			}
			fmt.Fprintf(w, "  %s\t%d\t%s\t%.3f\t%.3f\n", ex.Name, len(ex.Layers), framing, r, wall.UValue(r))
		}
		w.Flush()
		fmt.Println()
		return
	}

	ex, ok := wall.Example(catalog, examplesName)
	if !ok {
		fmt.Printf("Error: unknown example %q\n", examplesName)
		return
	}

	if examplesWrite == "" {
		printLayerTable(&ex, wall.LayerResistances(ex.Layers, ex.Framing))
		return
	}

	if err := ex.SaveToFile(examplesWrite); err != nil {
		fmt.Printf("Error writing example: %v\n", err)
		return
	}
	fmt.Printf("Example written to: %s\n", examplesWrite)
}
