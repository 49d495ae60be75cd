package cmd

import (
	"fmt"
	"os"

	"github.com/alexiusacademia/gowall/internal/version"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gowall",
	Short: "Wall Assembly Thermal and Moisture Calculator",
	Long: `gowall - Go Wall Assembly Calculator

A CLI tool for the steady-state thermal and moisture analysis
of multi-layer wall assemblies.

This tool helps building designers check:
  - Total R-value and U-value with framing thermal bridging
  - Temperature and vapor pressure profiles through the wall
  - Dew point and where it is reached inside the wall
  - Interstitial condensation risk per layer
  - Layer cost and cost-effectiveness

Boundary condition defaults can be set in a .env file or with the
GOWALL_INSIDE_TEMP, GOWALL_OUTSIDE_TEMP, GOWALL_INSIDE_RH and
GOWALL_OUTSIDE_RH environment variables.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println()
		fmt.Println("  ╔═══════════════════════════════════════════════════════════╗")
		fmt.Println("  ║                                                           ║")
		fmt.Printf("  ║   gowall v%-48s║\n", version.Version)
		fmt.Println("  ║   Go Wall Assembly Thermal & Moisture Calculator          ║")
		fmt.Println("  ║   Alexius S. Academia ©  2025                             ║")
		fmt.Println("  ║                                                           ║")
		fmt.Println("  ╚═══════════════════════════════════════════════════════════╝")
		fmt.Println()
		fmt.Println("  A CLI tool for the steady-state thermal and moisture analysis")
		fmt.Println("  of multi-layer wall assemblies.")
		fmt.Println()
		fmt.Println("  Features:")
		fmt.Println("    • R-value and U-value with parallel-path framing correction")
		fmt.Println("    • Temperature and vapor pressure gradients")
		fmt.Println("    • Dew point location and condensation risk by layer")
		fmt.Println("    • Chart export (png, svg, pdf) and Excel workbook export")
		fmt.Println()
		fmt.Println("  Use 'gowall --help' to see available commands.")
		fmt.Println()
		fmt.Println("  ─────────────────────────────────────────────────────────────")
		fmt.Printf("  Copyright © %s %s. All rights reserved.\n", version.Year, version.Author)
		fmt.Println()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
