package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/alexiusacademia/gowall/internal/hygro"
	"github.com/alexiusacademia/gowall/internal/wall"
	"github.com/xuri/excelize/v2"
)

// Sheet names of the exported workbook
const (
	SummarySheet  = "Summary"
	LayersSheet   = "Layers"
	GradientSheet = "Gradient"
)

// Report is everything written to a workbook
type Report struct {
	Assembly   *wall.Assembly
	Conditions wall.BoundaryConditions
	Result     *hygro.Result
	Costs      wall.CostSummary
}

// WriteWorkbook exports an analysis to an .xlsx file
func WriteWorkbook(report Report, filename string) error {
	f, err := BuildWorkbook(report)
	if err != nil {
		return err
	}
	defer f.Close()

	if dir := filepath.Dir(filename); dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return f.SaveAs(filename)
}

// BuildWorkbook lays out the Summary, Layers and Gradient sheets
func BuildWorkbook(report Report) (*excelize.File, error) {
	if report.Assembly == nil || report.Result == nil {
		return nil, fmt.Errorf("export: assembly and result are required")
	}

	f := excelize.NewFile()
	index, err := f.NewSheet(SummarySheet)
	if err != nil {
		f.Close()
		return nil, err
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		f.Close()
		return nil, err
	}

	for _, write := range []func(*excelize.File, Report) error{writeSummary, writeLayers, writeGradient} {
		if err := write(f, report); err != nil {
			f.Close()
			return nil, err
		}
	}
	return f, nil
}

func writeSummary(f *excelize.File, report Report) error {
	r := report.Result
	bc := report.Conditions

	crossing := "not reached"
	if r.HasDewPointCrossing {
		crossing = fmt.Sprintf("%.1f mm", r.DewPointPosition*1000)
	}
	framing := string(wall.FramingNone)
	if report.Assembly.Framing.Applies() {
		framing = string(report.Assembly.Framing.Type)
	}

	rows := [][]interface{}{
		{"Wall Assembly Summary"},
		{"Name", report.Assembly.Name},
		{"Framing", framing},
		{"Inside temperature (°C)", bc.InsideTemp},
		{"Outside temperature (°C)", bc.OutsideTemp},
		{"Inside RH (%)", bc.InsideRH},
		{"Outside RH (%)", bc.OutsideRH},
		{"Total R-value (m²K/W)", r.RValue},
		{"U-value (W/m²K)", r.UValue},
		{"Rating", string(r.Rating)},
		{"Dew point (°C)", r.DewPoint},
		{"Dew point position", crossing},
		{"Temperature risk", r.Assessment.HasTemperatureRisk},
		{"Vapor pressure risk", r.Assessment.HasVaporPressureRisk},
		{"Total cost", report.Costs.Total},
		{"Condition", r.Condition.String()},
	}
	for _, issue := range r.Issues {
		rows = append(rows, []interface{}{"Warning", issue.String()})
	}
	return writeRows(f, SummarySheet, rows)
}

func writeLayers(f *excelize.File, report Report) error {
	if _, err := f.NewSheet(LayersSheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"#", "Material", "Thickness (mm)", "λ (W/mK)", "μ", "Framed", "R (m²K/W)", "Cost", "R per cost"},
	}
	framed := wall.FramedLayer(report.Assembly.Layers)
	for i, layer := range report.Assembly.Layers {
		row := []interface{}{
			i + 1,
			layer.Material,
			layer.Thickness,
			layer.Conductivity,
			layer.VaporFactor(),
			i == framed && report.Assembly.Framing.Applies(),
			report.Result.LayerResistances[i],
		}
		if i < len(report.Costs.Layers) {
			row = append(row, report.Costs.Layers[i].Cost, report.Costs.Layers[i].Effectiveness)
		}
		rows = append(rows, row)
	}
	return writeRows(f, LayersSheet, rows)
}

func writeGradient(f *excelize.File, report Report) error {
	if _, err := f.NewSheet(GradientSheet); err != nil {
		return err
	}

	rows := [][]interface{}{
		{"Boundary", "Position (mm)", "Temperature (°C)", "Vapor pressure (Pa)", "Saturation pressure (Pa)"},
	}
	for i, p := range report.Result.Profile {
		rows = append(rows, []interface{}{i, p.Position * 1000, p.Temperature, p.VaporPressure, p.SaturationPressure})
	}
	return writeRows(f, GradientSheet, rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for r, row := range rows {
		for c, value := range row {
			cell, err := excelize.CoordinatesToCellName(c+1, r+1)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return err
			}
		}
	}
	return nil
}
