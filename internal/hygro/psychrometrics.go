package hygro

import (
	"fmt"
	"math"
)

// Validity bounds of the Magnus-Tetens approximation
const (
	MinTemperature = -40.0 // °C
	MaxTemperature = 60.0  // °C
	MinHumidity    = 0.01  // %
	MaxHumidity    = 100.0 // %
)

// Magnus-Tetens dew point constants
const (
	magnusA = 17.27
	magnusB = 237.7 // °C
)

// Saturation pressure constants
const (
	satP0 = 610.7 // Pa at 0 °C
	satA  = 7.5
	satB  = 237.3 // °C
)

// DomainError reports an input outside the physical validity range of a
// formula. The value is never clamped.
type DomainError struct {
	Quantity string
	Value    float64
	Min      float64
	Max      float64
	Unit     string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%s %g%s is outside the valid range %g%s to %g%s",
		e.Quantity, e.Value, e.Unit, e.Min, e.Unit, e.Max, e.Unit)
}

// SaturationPressure calculates the saturation vapor pressure (Pa) at a
// temperature (°C): Psat = 610.7 · 10^(7.5T / (237.3 + T))
func SaturationPressure(temp float64) float64 {
	return satP0 * math.Pow(10, (satA*temp)/(satB+temp))
}

// SaturationPressures maps SaturationPressure over a temperature profile
func SaturationPressures(temps []float64) []float64 {
	out := make([]float64, len(temps))
	for i, t := range temps {
		out[i] = SaturationPressure(t)
	}
	return out
}

// DewPoint calculates the dew point (°C) of air at a temperature (°C) and
// relative humidity (%) with the Magnus-Tetens formula.
// Inputs outside -40..60 °C or 0.01..100 % fail with *DomainError.
func DewPoint(temp, rh float64) (float64, error) {
	if err := checkTemperature("temperature", temp); err != nil {
		return 0, err
	}
	if err := checkHumidity("relative humidity", rh); err != nil {
		return 0, err
	}

	// γ = aT/(b+T) + ln(RH/100)
	gamma := (magnusA*temp)/(magnusB+temp) + math.Log(rh/100)
	return (magnusB * gamma) / (magnusA - gamma), nil
}

func checkTemperature(quantity string, t float64) error {
	if math.IsNaN(t) || t < MinTemperature || t > MaxTemperature {
		return &DomainError{Quantity: quantity, Value: t, Min: MinTemperature, Max: MaxTemperature, Unit: "°C"}
	}
	return nil
}

func checkHumidity(quantity string, rh float64) error {
	if math.IsNaN(rh) || rh < MinHumidity || rh > MaxHumidity {
		return &DomainError{Quantity: quantity, Value: rh, Min: MinHumidity, Max: MaxHumidity, Unit: "%"}
	}
	return nil
}
