package cmd

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gowall/internal/wall"
	"github.com/spf13/cobra"
)

var framingDepth float64

var framingCmd = &cobra.Command{
	Use:   "framing",
	Short: "List the framing presets",
	Long: `List the framing presets used to correct the framed layer for
thermal bridging. Pass --depth to show the I-joist preset at another
available depth.

Examples:
  gowall framing
  gowall framing --depth 300`,
	Run: runFraming,
}

func init() {
	rootCmd.AddCommand(framingCmd)

	framingCmd.Flags().Float64Var(&framingDepth, "depth", 0, "I-joist depth (mm)")
}

func runFraming(cmd *cobra.Command, args []string) {
	presets := append([]wall.FramingConfig(nil), wall.FramingPresets...)
	if framingDepth > 0 {
		joist, err := wall.IJoistPreset(framingDepth)
		if err != nil {
			fmt.Printf("Error: %v\n", err)
			return
		}
		for i := range presets {
			if presets[i].Type == wall.FramingIJoist {
				presets[i] = joist
			}
		}
	}

	fmt.Println()
	fmt.Println("FRAMING PRESETS:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Type\tWidth (mm)\tDepth (mm)\tSpacing (mm)\tλ (W/mK)\tArea\n")
	fmt.Fprintf(w, "  ────\t──────────\t──────────\t────────────\t────────\t────\n")
	for _, p := range presets {
		if !p.Applies() {
			fmt.Fprintf(w, "  %s\t-\t-\t-\t-\t-\n", p.Type)
			continue
		}
		fmt.Fprintf(w, "  %s\t%.0f\t%.0f\t%.0f\t%.2f\t%.0f%%\n",
			p.Type, p.Width, p.Depth, p.Spacing, p.Conductivity, p.AreaFraction*100)
	}
	w.Flush()
	fmt.Println()
	fmt.Printf("  Available I-joist depths: %v mm\n", wall.IJoistDepths)
	fmt.Println()
}
