package diagram

import (
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

var (
	temperatureColor = color.RGBA{R: 200, G: 30, B: 30, A: 255}
	dewPointColor    = color.RGBA{R: 30, G: 90, B: 200, A: 255}
	vaporColor       = color.RGBA{R: 0, G: 100, B: 0, A: 255}
	saturationColor  = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	fallbackBand     = color.RGBA{R: 0x95, G: 0xA5, B: 0xA6, A: 255}
)

// ExportTemperatureChart exports the temperature profile through the wall
// with the dew point line and layer bands to an image file
func ExportTemperatureChart(data GradientDiagramData, filename string) error {
	if len(data.Temperatures) < 2 || len(data.Positions) != len(data.Temperatures) {
		return fmt.Errorf("temperature chart needs a profile of at least two points")
	}

	p := plot.New()
	p.Title.Text = chartTitle(data.Title, "Temperature Profile")
	p.X.Label.Text = "Position from inside face (mm)"
	p.Y.Label.Text = "Temperature (°C)"

	lo, hi := data.DewPoint, data.DewPoint
	for _, t := range data.Temperatures {
		lo = min(lo, t)
		hi = max(hi, t)
	}
	lo, hi = lo-2, hi+2

	if err := addLayerBands(p, data, lo, hi); err != nil {
		return err
	}

	tempLine, tempPoints, err := plotter.NewLinePoints(xys(data.Positions, data.Temperatures))
	if err != nil {
		return err
	}
	tempLine.LineStyle.Width = vg.Points(2)
	tempLine.LineStyle.Color = temperatureColor
	tempPoints.GlyphStyle.Color = temperatureColor
	tempPoints.GlyphStyle.Radius = vg.Points(3)
	tempPoints.GlyphStyle.Shape = draw.CircleGlyph{}
	p.Add(tempLine, tempPoints)
	p.Legend.Add("Temperature", tempLine)

	last := data.Positions[len(data.Positions)-1]
	dpLine, err := plotter.NewLine(plotter.XYs{
		{X: 0, Y: data.DewPoint},
		{X: last, Y: data.DewPoint},
	})
	if err != nil {
		return err
	}
	dpLine.LineStyle.Width = vg.Points(1.5)
	dpLine.LineStyle.Color = dewPointColor
	dpLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(dpLine)
	p.Legend.Add(fmt.Sprintf("Dew point %.1f°C", data.DewPoint), dpLine)

	if data.HasCrossing {
		marker, err := plotter.NewScatter(plotter.XYs{{X: data.DewPointPosition, Y: data.DewPoint}})
		if err != nil {
			return err
		}
		marker.GlyphStyle.Color = dewPointColor
		marker.GlyphStyle.Radius = vg.Points(6)
		marker.GlyphStyle.Shape = draw.CrossGlyph{}
		p.Add(marker)

		l, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: data.DewPointPosition, Y: data.DewPoint + 1}},
			Labels: []string{fmt.Sprintf("%.0fmm", data.DewPointPosition)},
		})
		if err != nil {
			return err
		}
		p.Add(l)
	}

	p.Y.Min, p.Y.Max = lo, hi
	p.Legend.Top = true

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// ExportVaporChart exports the vapor pressure and saturation pressure
// profiles through the wall to an image file
func ExportVaporChart(data GradientDiagramData, filename string) error {
	n := len(data.Positions)
	if n < 2 || len(data.VaporPressures) != n || len(data.SaturationPressures) != n {
		return fmt.Errorf("vapor chart needs a profile of at least two points")
	}

	p := plot.New()
	p.Title.Text = chartTitle(data.Title, "Vapor Pressure Profile")
	p.X.Label.Text = "Position from inside face (mm)"
	p.Y.Label.Text = "Pressure (Pa)"

	hi := 0.0
	for i := range data.Positions {
		hi = max(hi, data.VaporPressures[i], data.SaturationPressures[i])
	}
	hi *= 1.1

	if err := addLayerBands(p, data, 0, hi); err != nil {
		return err
	}

	vaporLine, err := plotter.NewLine(xys(data.Positions, data.VaporPressures))
	if err != nil {
		return err
	}
	vaporLine.LineStyle.Width = vg.Points(2)
	vaporLine.LineStyle.Color = vaporColor
	p.Add(vaporLine)
	p.Legend.Add("Vapor pressure", vaporLine)

	satLine, err := plotter.NewLine(xys(data.Positions, data.SaturationPressures))
	if err != nil {
		return err
	}
	satLine.LineStyle.Width = vg.Points(2)
	satLine.LineStyle.Color = saturationColor
	satLine.LineStyle.Dashes = []vg.Length{vg.Points(5), vg.Points(3)}
	p.Add(satLine)
	p.Legend.Add("Saturation pressure", satLine)

	p.Y.Min, p.Y.Max = 0, hi
	p.Legend.Top = true

	return save(p, 8*vg.Inch, 6*vg.Inch, filename)
}

// ExportGradientCharts writes the temperature chart to filename and the
// vapor chart next to it with a "-vapor" suffix. It returns both paths.
func ExportGradientCharts(data GradientDiagramData, filename string) ([]string, error) {
	ext := filepath.Ext(filename)
	if !supportedFormat(ext) {
		filename += ".png"
		ext = ".png"
	}
	vaporFile := strings.TrimSuffix(filename, ext) + "-vapor" + ext

	if err := ExportTemperatureChart(data, filename); err != nil {
		return nil, err
	}
	if err := ExportVaporChart(data, vaporFile); err != nil {
		return nil, err
	}
	return []string{filename, vaporFile}, nil
}

// addLayerBands shades each layer between its boundaries in the material
// color, labelled with the layer number
func addLayerBands(p *plot.Plot, data GradientDiagramData, lo, hi float64) error {
	for i, layer := range data.Layers {
		if i+1 >= len(data.Positions) {
			break
		}
		x0, x1 := data.Positions[i], data.Positions[i+1]
		if x1 <= x0 {
			continue
		}

		band, err := plotter.NewPolygon(plotter.XYs{
			{X: x0, Y: lo},
			{X: x1, Y: lo},
			{X: x1, Y: hi},
			{X: x0, Y: hi},
		})
		if err != nil {
			return err
		}
		c := parseHexColor(layer.Color)
		c.A = 90
		band.Color = c
		band.LineStyle.Color = color.Gray{Y: 160}
		band.LineStyle.Width = vg.Points(0.5)
		p.Add(band)

		l, err := plotter.NewLabels(plotter.XYLabels{
			XYs:    []plotter.XY{{X: (x0 + x1) / 2, Y: hi - (hi-lo)*0.05}},
			Labels: []string{fmt.Sprintf("%d", i+1)},
		})
		if err != nil {
			return err
		}
		p.Add(l)
	}
	return nil
}

func save(p *plot.Plot, width, height vg.Length, filename string) error {
	// Create directory if needed
	dir := filepath.Dir(filename)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}

	if !supportedFormat(filepath.Ext(filename)) {
		filename += ".png"
	}
	return p.Save(width, height, filename)
}

func supportedFormat(ext string) bool {
	switch strings.ToLower(ext) {
	case ".png", ".svg", ".pdf":
		return true
	}
	return false
}

func chartTitle(name, kind string) string {
	if name == "" {
		return kind
	}
	return name + " - " + kind
}

func xys(x, y []float64) plotter.XYs {
	pts := make(plotter.XYs, len(x))
	for i := range x {
		pts[i] = plotter.XY{X: x[i], Y: y[i]}
	}
	return pts
}

// parseHexColor reads "#RRGGBB"; anything else gives the neutral band color
func parseHexColor(s string) color.RGBA {
	var r, g, b uint8
	if len(s) != 7 || s[0] != '#' {
		return fallbackBand
	}
	if _, err := fmt.Sscanf(s[1:], "%02x%02x%02x", &r, &g, &b); err != nil {
		return fallbackBand
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
