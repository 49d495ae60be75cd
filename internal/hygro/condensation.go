package hygro

import "github.com/alexiusacademia/gowall/internal/wall"

// Assessment holds the condensation risk flags of an assembly.
// The two detectors are independent: a layer may trigger either, both or
// neither.
type Assessment struct {
	HasTemperatureRisk    bool
	TemperatureRiskLayers []int // layers whose outer boundary is at or below the dew point

	HasVaporPressureRisk    bool
	VaporPressureRiskLayers []int // layers whose outer boundary reaches saturation
}

// HasRisk reports whether either detector fired
func (a Assessment) HasRisk() bool {
	return a.HasTemperatureRisk || a.HasVaporPressureRisk
}

// Assess flags condensation risk at the interior boundaries of a
// temperature profile (the two wall faces are excluded). Boundary i is
// reported as layer i-1.
//
// The vapor profile is rebuilt from the profile's end temperatures and the
// given humidities, then compared with the saturation pressure at each
// boundary.
func Assess(temps []float64, dewPoint float64, layers []wall.Layer, insideRH, outsideRH float64) Assessment {
	var a Assessment
	if len(temps) < 3 {
		return a
	}

	bc := wall.BoundaryConditions{
		InsideTemp:  temps[0],
		OutsideTemp: temps[len(temps)-1],
		InsideRH:    insideRH,
		OutsideRH:   outsideRH,
	}
	actual, _ := VaporPressures(layers, bc)
	saturation := SaturationPressures(temps)

	for i := 1; i < len(temps)-1 && i < len(actual); i++ {
		if temps[i] <= dewPoint {
			a.TemperatureRiskLayers = append(a.TemperatureRiskLayers, i-1)
		}
		if actual[i] >= saturation[i] {
			a.VaporPressureRiskLayers = append(a.VaporPressureRiskLayers, i-1)
		}
	}

	a.HasTemperatureRisk = len(a.TemperatureRiskLayers) > 0
	a.HasVaporPressureRisk = len(a.VaporPressureRiskLayers) > 0
	return a
}
