package cmd

import (
	"github.com/spf13/cobra"
)

var wallCmd = &cobra.Command{
	Use:   "wall",
	Short: "Wall assembly analysis",
	Long: `Analyze wall assemblies defined in JSON or YAML files.

Layers are listed from the inside face to the outside face.
Conductivity, vapor resistance and insulation flags are taken
from the material catalog when a layer does not set them.

Subcommands:
  analyze  - Full thermal and moisture report
  rvalue   - Layer resistances, R-value, U-value and cost

Example JSON file structure:
{
  "name": "Stud Wall",
  "framing": {"type": "standard"},
  "conditions": {"inside_temp": 20, "outside_temp": -5, "inside_rh": 50, "outside_rh": 80},
  "layers": [
    {"material": "Gypsum Board", "thickness": 12.5},
    {"material": "Vapour Barrier", "thickness": 1},
    {"material": "Mineral Wool λ0.036", "thickness": 150, "has_framing": true},
    {"material": "OSB", "thickness": 12}
  ]
}`,
}

func init() {
	rootCmd.AddCommand(wallCmd)
}
