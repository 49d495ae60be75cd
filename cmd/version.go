package cmd

import (
	"fmt"

	"github.com/alexiusacademia/gowall/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of gowall",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(version.String())
		fmt.Println("Wall Assembly Thermal and Moisture Calculator")
		fmt.Println("Steady-state heat flow with Magnus-Tetens dew point")
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
