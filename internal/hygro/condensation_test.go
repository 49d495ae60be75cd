package hygro_test

import (
	"math"
	"testing"

	"github.com/alexiusacademia/gowall/internal/hygro"
	"github.com/alexiusacademia/gowall/internal/material"
	"github.com/alexiusacademia/gowall/internal/wall"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCrossingPosition_WithinInsulation(t *testing.T) {
	layers := unprotectedWall()
	dp, err := hygro.DewPoint(20, 50)
	require.NoError(t, err)

	pos, ok := hygro.CrossingPosition(layers, nil, 20, -5, dp)
	require.True(t, ok)

	temps, _ := hygro.Temperatures(layers, nil, 20, -5)
	ratio := (temps[1] - dp) / (temps[1] - temps[2])
	assert.InDelta(t, 0.0125+ratio*0.15, pos, 1e-12)
	assert.Greater(t, pos, 0.0125)
	assert.Less(t, pos, 0.1625)
}

func TestCrossingPosition_InsideFaceAlreadyBelow(t *testing.T) {
	pos, ok := hygro.CrossingPosition(unprotectedWall(), nil, 5, -5, 9)
	assert.True(t, ok)
	assert.Zero(t, pos)

	// Empty assembly: only the inside face exists
	pos, ok = hygro.CrossingPosition(nil, nil, 5, -5, 5)
	assert.True(t, ok)
	assert.Zero(t, pos)
}

func TestCrossingPosition_NeverReached(t *testing.T) {
	_, ok := hygro.CrossingPosition(unprotectedWall(), nil, 20, 15, 9.25)
	assert.False(t, ok)

	// Rising profile that stays above the dew point
	_, ok = hygro.CrossingPosition(unprotectedWall(), nil, 20, 30, 15)
	assert.False(t, ok)

	// Flat profile of a zero-resistance assembly above the dew point
	_, ok = hygro.CrossingPosition([]wall.Layer{{Material: "Foil"}}, nil, 20, -5, 9)
	assert.False(t, ok)

	_, ok = hygro.CrossingPosition(nil, nil, 20, -5, 9)
	assert.False(t, ok)
}

func TestCrossingPosition_EndsExactlyAtDewPoint(t *testing.T) {
	layers := []wall.Layer{
		{Material: "A", Thickness: 100, Conductivity: 1},
		{Material: "B", Thickness: 100, Conductivity: 1},
	}
	// Boundary 1 sits at exactly 5 °C
	pos, ok := hygro.CrossingPosition(layers, nil, 10, 0, 5)
	require.True(t, ok)
	assert.InDelta(t, 0.1, pos, 1e-12)
}

func TestCrossingPosition_ReversedOrderMirrors(t *testing.T) {
	layers := unprotectedWall()
	total := hygro.Positions(layers)[len(layers)]

	forward, ok := hygro.CrossingPosition(layers, nil, 20, -5, 0)
	require.True(t, ok)
	// Warm side outside: the crossing measured from the other face
	backward, ok := hygro.CrossingPosition(reversed(layers), nil, -5, 20, 0)
	require.True(t, ok)
	assert.Zero(t, backward)

	mirrored, ok := hygro.CrossingPosition(reversed(layers), nil, 20, -5, 0)
	require.True(t, ok)
	assert.Greater(t, mirrored, 0.0)
	assert.Less(t, mirrored, total)
	assert.NotEqual(t, forward, mirrored)
}

func TestAssess_UnprotectedWallAtRisk(t *testing.T) {
	layers := unprotectedWall()
	dp, _ := hygro.DewPoint(winter.InsideTemp, winter.InsideRH)
	temps, _ := hygro.Temperatures(layers, nil, winter.InsideTemp, winter.OutsideTemp)

	a := hygro.Assess(temps, dp, layers, winter.InsideRH, winter.OutsideRH)
	assert.True(t, a.HasRisk())
	assert.True(t, a.HasTemperatureRisk)
	assert.Equal(t, []int{1}, a.TemperatureRiskLayers)
	assert.True(t, a.HasVaporPressureRisk)
	assert.Equal(t, []int{1}, a.VaporPressureRiskLayers)
}

func TestAssess_VapourBarrierRemovesVaporRisk(t *testing.T) {
	layers := protectedWall()
	dp, _ := hygro.DewPoint(winter.InsideTemp, winter.InsideRH)
	temps, _ := hygro.Temperatures(layers, nil, winter.InsideTemp, winter.OutsideTemp)

	a := hygro.Assess(temps, dp, layers, winter.InsideRH, winter.OutsideRH)
	assert.False(t, a.HasVaporPressureRisk)
	assert.Empty(t, a.VaporPressureRiskLayers)

	// The cold side of the insulation is still below the dew point
	assert.True(t, a.HasTemperatureRisk)
	assert.Equal(t, []int{2}, a.TemperatureRiskLayers)
}

func TestAssess_SkipsBothFaces(t *testing.T) {
	layers := []wall.Layer{{Material: "A", Thickness: 100, Conductivity: 1}}
	// The outside face is far below the dew point, but it is not interior
	a := hygro.Assess([]float64{20, -20}, 10, layers, 50, 80)
	assert.False(t, a.HasRisk())

	a = hygro.Assess([]float64{5, 4, 3}, 10, unprotectedWall()[:2], 50, 80)
	assert.Equal(t, []int{0}, a.TemperatureRiskLayers)

	assert.False(t, hygro.Assess(nil, 10, nil, 50, 80).HasRisk())
}

func TestAssess_WarmWallNoRisk(t *testing.T) {
	layers := unprotectedWall()
	summer := wall.BoundaryConditions{InsideTemp: 22, OutsideTemp: 18, InsideRH: 40, OutsideRH: 60}
	dp, _ := hygro.DewPoint(summer.InsideTemp, summer.InsideRH)
	temps, _ := hygro.Temperatures(layers, nil, summer.InsideTemp, summer.OutsideTemp)

	a := hygro.Assess(temps, dp, layers, summer.InsideRH, summer.OutsideRH)
	assert.False(t, a.HasRisk())
	assert.Nil(t, a.TemperatureRiskLayers)
}

func TestAnalyze_UnprotectedWall(t *testing.T) {
	layers := unprotectedWall()
	r, err := hygro.Analyze(layers, nil, winter)
	require.NoError(t, err)

	assert.InDelta(t, 4.321474, r.RValue, 1e-6)
	assert.InDelta(t, 1/r.RValue, r.UValue, 1e-15)
	assert.Equal(t, wall.RatingGood, r.Rating)
	assert.Len(t, r.LayerResistances, 3)
	assert.Len(t, r.Profile, 4)
	assert.Zero(t, r.Condition)
	assert.Empty(t, r.Issues)

	assert.InDelta(t, 9.254, r.DewPoint, 1e-3)
	assert.True(t, r.HasDewPointCrossing)
	assert.True(t, r.Assessment.HasTemperatureRisk || r.Assessment.HasVaporPressureRisk)

	// R used for U and for the gradient are the same number
	assert.Equal(t, wall.TotalRValue(layers, nil), r.RValue)
}

func TestAnalyze_FramedExample(t *testing.T) {
	ex, _ := wall.Example(material.Default(), "Standard Stud Wall with Service Space")
	r, err := hygro.Analyze(ex.Layers, ex.Framing, winter)
	require.NoError(t, err)

	assert.Equal(t, wall.TotalRValue(ex.Layers, ex.Framing), r.RValue)
	assert.Less(t, r.RValue, wall.TotalRValue(ex.Layers, nil))
	assert.False(t, r.Assessment.HasVaporPressureRisk)
}

func TestAnalyze_EmptyAssembly(t *testing.T) {
	r, err := hygro.Analyze(nil, nil, winter)
	require.NoError(t, err)

	assert.Zero(t, r.RValue)
	assert.Zero(t, r.UValue)
	assert.Equal(t, []float64{20}, r.Temperatures())
	assert.True(t, r.Condition.Has(hygro.ConditionEmptyAssembly))
	assert.True(t, r.Condition.Has(hygro.ConditionZeroResistance))
	assert.False(t, r.HasDewPointCrossing)
	assert.False(t, r.Assessment.HasRisk())
}

func TestAnalyze_ReportsMalformedFraming(t *testing.T) {
	layers := unprotectedWall()
	layers[1].HasFraming = true
	layers[2].HasFraming = true
	framing, _ := wall.Preset(wall.FramingStandard)

	r, err := hygro.Analyze(layers, &framing, winter)
	require.NoError(t, err)
	require.Len(t, r.Issues, 1)
	assert.Equal(t, wall.IssueExtraFramedLayer, r.Issues[0].Kind)

	// Computed as if only the first flag were set
	layers[2].HasFraming = false
	clean, err := hygro.Analyze(layers, &framing, winter)
	require.NoError(t, err)
	assert.Equal(t, clean.RValue, r.RValue)
	assert.Equal(t, clean.Profile, r.Profile)
}

func TestAnalyze_NaNFramingFractionStaysFinite(t *testing.T) {
	layers := unprotectedWall()
	layers[1].HasFraming = true
	framing := &wall.FramingConfig{Type: wall.FramingStandard, Conductivity: 0.12, AreaFraction: math.NaN()}

	r, err := hygro.Analyze(layers, framing, winter)
	require.NoError(t, err)

	plain, err := hygro.Analyze(unprotectedWall(), nil, winter)
	require.NoError(t, err)
	assert.InDelta(t, plain.RValue, r.RValue, 1e-12)
	for _, p := range r.Profile {
		assert.False(t, math.IsNaN(p.Temperature))
		assert.False(t, math.IsNaN(p.VaporPressure))
	}
	require.Len(t, r.Issues, 1)
	assert.Equal(t, wall.IssueFramingFraction, r.Issues[0].Kind)
}

func TestAnalyze_DomainErrors(t *testing.T) {
	bad := []wall.BoundaryConditions{
		{InsideTemp: 70, OutsideTemp: -5, InsideRH: 50, OutsideRH: 80},
		{InsideTemp: 20, OutsideTemp: -45, InsideRH: 50, OutsideRH: 80},
		{InsideTemp: 20, OutsideTemp: -5, InsideRH: 0, OutsideRH: 80},
		{InsideTemp: 20, OutsideTemp: -5, InsideRH: 50, OutsideRH: 120},
	}
	for _, bc := range bad {
		_, err := hygro.Analyze(unprotectedWall(), nil, bc)
		var derr *hygro.DomainError
		assert.ErrorAs(t, err, &derr, "%+v", bc)
	}
}

func TestAnalyze_Idempotent(t *testing.T) {
	ex, _ := wall.Example(material.Default(), "I-Joist Wall with Mineral Wool")
	a, err := hygro.Analyze(ex.Layers, ex.Framing, winter)
	require.NoError(t, err)
	b, err := hygro.Analyze(ex.Layers, ex.Framing, winter)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}
