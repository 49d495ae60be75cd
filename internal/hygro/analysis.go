package hygro

import "github.com/alexiusacademia/gowall/internal/wall"

// Result holds every figure computed for one assembly and set of
// boundary conditions
type Result struct {
	// Thermal resistance
	LayerResistances []float64 // m²·K/W, per layer
	RValue           float64   // m²·K/W
	UValue           float64   // W/(m²·K)
	Rating           wall.Rating

	// Boundary profile, len(layers)+1 points
	Profile []GradientPoint

	// Dew point of the inside air
	DewPoint            float64 // °C
	DewPointPosition    float64 // m from the inside face, valid when HasDewPointCrossing
	HasDewPointCrossing bool

	Assessment Assessment

	// Degenerate inputs and data-quality issues
	Condition Condition
	Issues    []wall.Issue
}

// Analyze runs the full thermal and moisture calculation.
// It fails only with *DomainError when a boundary temperature or humidity
// is outside the validity range of the psychrometric formulas.
func Analyze(layers []wall.Layer, framing *wall.FramingConfig, bc wall.BoundaryConditions) (*Result, error) {
	if err := checkConditions(bc); err != nil {
		return nil, err
	}

	dewPoint, err := DewPoint(bc.InsideTemp, bc.InsideRH)
	if err != nil {
		return nil, err
	}

	result := &Result{
		LayerResistances: wall.LayerResistances(layers, framing),
		DewPoint:         dewPoint,
		Issues:           wall.Diagnose(layers, framing),
	}
	result.RValue = wall.Sum(result.LayerResistances)
	result.UValue = wall.UValue(result.RValue)
	result.Rating = wall.RateUValue(result.UValue)

	result.Profile, result.Condition = Profile(layers, framing, bc)

	result.DewPointPosition, result.HasDewPointCrossing = CrossingPosition(layers, framing, bc.InsideTemp, bc.OutsideTemp, dewPoint)
	result.Assessment = Assess(result.Temperatures(), dewPoint, layers, bc.InsideRH, bc.OutsideRH)

	return result, nil
}

// Temperatures returns the temperature of every profile point
func (r *Result) Temperatures() []float64 {
	out := make([]float64, len(r.Profile))
	for i, p := range r.Profile {
		out[i] = p.Temperature
	}
	return out
}

func checkConditions(bc wall.BoundaryConditions) error {
	if err := checkTemperature("inside temperature", bc.InsideTemp); err != nil {
		return err
	}
	if err := checkTemperature("outside temperature", bc.OutsideTemp); err != nil {
		return err
	}
	if err := checkHumidity("inside relative humidity", bc.InsideRH); err != nil {
		return err
	}
	return checkHumidity("outside relative humidity", bc.OutsideRH)
}
