package export_test

import (
	"path/filepath"
	"strconv"
	"testing"

	"github.com/alexiusacademia/gowall/internal/export"
	"github.com/alexiusacademia/gowall/internal/hygro"
	"github.com/alexiusacademia/gowall/internal/material"
	"github.com/alexiusacademia/gowall/internal/wall"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func exampleReport(t *testing.T) export.Report {
	t.Helper()
	cat := material.Default()
	ex, ok := wall.Example(cat, "Standard Stud Wall with Service Space")
	require.True(t, ok)

	bc := wall.BoundaryConditions{InsideTemp: 20, OutsideTemp: -5, InsideRH: 50, OutsideRH: 80}
	result, err := hygro.Analyze(ex.Layers, ex.Framing, bc)
	require.NoError(t, err)

	return export.Report{
		Assembly:   &ex,
		Conditions: bc,
		Result:     result,
		Costs:      wall.Costs(ex.Layers, ex.Framing, cat),
	}
}

func TestWriteWorkbook(t *testing.T) {
	report := exampleReport(t)
	path := filepath.Join(t.TempDir(), "out", "wall.xlsx")
	require.NoError(t, export.WriteWorkbook(report, path))

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	assert.Equal(t, []string{export.SummarySheet, export.LayersSheet, export.GradientSheet}, f.GetSheetList())

	name, err := f.GetCellValue(export.SummarySheet, "B2")
	require.NoError(t, err)
	assert.Equal(t, "Standard Stud Wall with Service Space", name)

	framing, err := f.GetCellValue(export.SummarySheet, "B3")
	require.NoError(t, err)
	assert.Equal(t, "standard", framing)

	raw, err := f.GetCellValue(export.SummarySheet, "B8", excelize.Options{RawCellValue: true})
	require.NoError(t, err)
	r, err := strconv.ParseFloat(raw, 64)
	require.NoError(t, err)
	assert.InDelta(t, report.Result.RValue, r, 1e-9)

	layerRows, err := f.GetRows(export.LayersSheet)
	require.NoError(t, err)
	assert.Len(t, layerRows, len(report.Assembly.Layers)+1)
	assert.Equal(t, "Mineral Wool λ0.036", layerRows[4][1])
	assert.Equal(t, "TRUE", layerRows[4][5])

	gradientRows, err := f.GetRows(export.GradientSheet)
	require.NoError(t, err)
	assert.Len(t, gradientRows, len(report.Result.Profile)+1)
	assert.Equal(t, "20", gradientRows[1][2])
}

func TestBuildWorkbook_RequiresResult(t *testing.T) {
	_, err := export.BuildWorkbook(export.Report{})
	assert.Error(t, err)
}
