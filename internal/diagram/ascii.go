package diagram

import (
	"fmt"
	"math"
	"strings"
	"unicode/utf8"
)

// LayerBand is one layer as drawn in a diagram
type LayerBand struct {
	Material   string
	Thickness  float64 // mm
	Color      string  // hex, e.g. "#95A5A6"
	Insulation bool
	Framed     bool
}

// GradientDiagramData holds data for drawing a wall section with its
// temperature and vapor profiles
type GradientDiagramData struct {
	Title  string
	Layers []LayerBand

	// Boundary profile, len(Layers)+1 points
	Positions           []float64 // mm from the inside face
	Temperatures        []float64 // °C
	VaporPressures      []float64 // Pa
	SaturationPressures []float64 // Pa

	// Dew point of the inside air
	DewPoint         float64 // °C
	DewPointPosition float64 // mm, valid when HasCrossing
	HasCrossing      bool

	// Risky layers, zero-based
	RiskLayers []int
}

// DrawASCIIWallSection creates an ASCII cross-section of the wall, inside on
// the left, with the boundary temperatures under each interface
func DrawASCIIWallSection(data GradientDiagramData) string {
	var sb strings.Builder

	if len(data.Layers) == 0 {
		sb.WriteString("\n  (no layers)\n")
		return sb.String()
	}

	widths := bandWidths(data.Layers, 60)
	risky := make(map[int]bool, len(data.RiskLayers))
	for _, i := range data.RiskLayers {
		risky[i] = true
	}
	height := 8

	sb.WriteString("\n")
	sb.WriteString("  INSIDE" + strings.Repeat(" ", max(1, sum(widths)+len(widths)-12)) + "OUTSIDE\n")

	// Top edge
	sb.WriteString("  ┌")
	for i, w := range widths {
		sb.WriteString(strings.Repeat("─", w))
		if i < len(widths)-1 {
			sb.WriteString("┬")
		}
	}
	sb.WriteString("┐\n")

	for row := 0; row < height; row++ {
		sb.WriteString("  │")
		for i, w := range widths {
			sb.WriteString(bandFill(data.Layers[i], row, w, risky[i]))
			sb.WriteString("│")
		}
		sb.WriteString("\n")
	}

	// Bottom edge
	sb.WriteString("  └")
	for i, w := range widths {
		sb.WriteString(strings.Repeat("─", w))
		if i < len(widths)-1 {
			sb.WriteString("┴")
		}
	}
	sb.WriteString("┘\n")

	// Layer numbers centered under each band
	sb.WriteString("   ")
	for i, w := range widths {
		sb.WriteString(center(fmt.Sprintf("%d", i+1), w))
		sb.WriteString(" ")
	}
	sb.WriteString("\n\n")

	// Boundary temperatures
	if len(data.Temperatures) == len(data.Layers)+1 {
		sb.WriteString("  Boundary temperatures (°C):\n")
		for i, t := range data.Temperatures {
			mark := ""
			if t <= data.DewPoint {
				mark = "  ◄─ at or below dew point"
			}
			sb.WriteString(fmt.Sprintf("    %2d  %7.1f mm  %6.1f%s\n", i, position(data, i), t, mark))
		}
		sb.WriteString("\n")
	}

	// Legend
	sb.WriteString("  Legend:\n")
	for i, layer := range data.Layers {
		extra := ""
		if layer.Framed {
			extra = " (framed)"
		}
		if risky[i] {
			extra += " (condensation risk)"
		}
		sb.WriteString(fmt.Sprintf("  %d = %s, %.1f mm%s\n", i+1, layer.Material, layer.Thickness, extra))
	}
	sb.WriteString("  ▓▓▓ = Insulation or framed layer   ░░░ = Other material   !!! = Risk\n")
	if data.HasCrossing {
		sb.WriteString(fmt.Sprintf("  Dew point %.1f °C reached at %.1f mm from the inside face\n", data.DewPoint, data.DewPointPosition))
	} else {
		sb.WriteString(fmt.Sprintf("  Dew point %.1f °C not reached within the wall\n", data.DewPoint))
	}

	return sb.String()
}

// DrawTemperatureProfile creates an ASCII bar chart of boundary temperatures
// with the dew point marked on every bar
func DrawTemperatureProfile(data GradientDiagramData) string {
	var sb strings.Builder

	width := 40

	sb.WriteString("\n")
	sb.WriteString("  TEMPERATURE PROFILE\n")
	sb.WriteString("  ───────────────────\n\n")

	if len(data.Temperatures) == 0 {
		sb.WriteString("  (no profile)\n")
		return sb.String()
	}

	lo, hi := data.DewPoint, data.DewPoint
	for _, t := range data.Temperatures {
		lo = math.Min(lo, t)
		hi = math.Max(hi, t)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}
	scale := func(v float64) int {
		return int(math.Round((v - lo) / span * float64(width)))
	}
	dpCol := scale(data.DewPoint)

	for i, t := range data.Temperatures {
		n := scale(t)
		bar := []rune(strings.Repeat("█", n) + strings.Repeat(" ", width-n+1))
		if dpCol <= width {
			bar[dpCol] = '┊'
		}
		label := fmt.Sprintf("%7.1f mm", position(data, i))
		sb.WriteString(fmt.Sprintf("  %s │%s %6.1f °C\n", label, string(bar), t))
	}

	sb.WriteString(fmt.Sprintf("\n  ┊ = dew point %.1f °C   scale %.1f to %.1f °C\n", data.DewPoint, lo, hi))

	return sb.String()
}

// DrawSummaryBox creates a summary box for results
func DrawSummaryBox(title string, lines []string) string {
	var sb strings.Builder

	maxLen := utf8.RuneCountInString(title)
	for _, line := range lines {
		if n := utf8.RuneCountInString(line); n > maxLen {
			maxLen = n
		}
	}
	maxLen += 4

	border := strings.Repeat("═", maxLen)
	sb.WriteString(fmt.Sprintf("  ╔%s╗\n", border))
	sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(title, maxLen-4)))
	sb.WriteString(fmt.Sprintf("  ╠%s╣\n", border))
	for _, line := range lines {
		sb.WriteString(fmt.Sprintf("  ║  %s  ║\n", pad(line, maxLen-4)))
	}
	sb.WriteString(fmt.Sprintf("  ╚%s╝\n", border))

	return sb.String()
}

// bandWidths scales layer thicknesses to a total character width, never
// narrower than three characters per band
func bandWidths(layers []LayerBand, total int) []int {
	var thickness float64
	for _, l := range layers {
		thickness += math.Max(l.Thickness, 0)
	}

	widths := make([]int, len(layers))
	for i, l := range layers {
		w := 3
		if thickness > 0 {
			w = int(math.Round(math.Max(l.Thickness, 0) / thickness * float64(total)))
		}
		widths[i] = max(w, 3)
	}
	return widths
}

func bandFill(layer LayerBand, row, width int, risky bool) string {
	switch {
	case risky && row == 0:
		return strings.Repeat("!", width)
	case layer.Framed && row%3 == 1:
		return strings.Repeat("═", width)
	case layer.Framed || layer.Insulation:
		return strings.Repeat("▓", width)
	default:
		return strings.Repeat("░", width)
	}
}

func position(data GradientDiagramData, i int) float64 {
	if i < len(data.Positions) {
		return data.Positions[i]
	}
	return 0
}

func center(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	left := (width - n) / 2
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", width-n-left)
}

func pad(s string, width int) string {
	n := utf8.RuneCountInString(s)
	if n >= width {
		return s
	}
	return s + strings.Repeat(" ", width-n)
}

func sum(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}
