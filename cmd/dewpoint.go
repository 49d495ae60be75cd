package cmd

import (
	"errors"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/alexiusacademia/gowall/internal/hygro"
	"github.com/spf13/cobra"
)

var (
	dewPointTemp float64
	dewPointRH   float64
)

var dewPointCmd = &cobra.Command{
	Use:   "dewpoint",
	Short: "Calculate the dew point of moist air",
	Long: `Calculate the dew point from air temperature and relative humidity
using the Magnus-Tetens approximation (a = 17.27, b = 237.7 °C).

Valid range: -40 to 60 °C and 0.01 to 100 % relative humidity.

Examples:
  gowall dewpoint --temp 20 --rh 50
  gowall dewpoint -t 22 -r 65`,
	Run: runDewPoint,
}

func init() {
	rootCmd.AddCommand(dewPointCmd)

	dewPointCmd.Flags().Float64VarP(&dewPointTemp, "temp", "t", 0, "Air temperature (°C) [required]")
	dewPointCmd.Flags().Float64VarP(&dewPointRH, "rh", "r", 0, "Relative humidity (%) [required]")
	dewPointCmd.MarkFlagRequired("temp")
	dewPointCmd.MarkFlagRequired("rh")
}

func runDewPoint(cmd *cobra.Command, args []string) {
	dp, err := hygro.DewPoint(dewPointTemp, dewPointRH)
	if err != nil {
		var domainErr *hygro.DomainError
		if errors.As(err, &domainErr) {
			fmt.Printf("Error: %v\n", domainErr)
			return
		}
		fmt.Printf("Error calculating dew point: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("DEW POINT:")
	fmt.Println("───────────────────────────────────────────────────────────────")
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "  Air temperature:\t%.1f °C\n", dewPointTemp)
	fmt.Fprintf(w, "  Relative humidity:\t%.1f %%\n", dewPointRH)
	fmt.Fprintf(w, "  Saturation pressure:\t%.0f Pa\n", hygro.SaturationPressure(dewPointTemp))
	fmt.Fprintf(w, "  Vapor pressure:\t%.0f Pa\n", hygro.SaturationPressure(dewPointTemp)*dewPointRH/100)
	fmt.Fprintf(w, "  Dew point:\t%.2f °C\n", dp)
	w.Flush()
	fmt.Println()
}
