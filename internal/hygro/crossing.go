package hygro

import "github.com/alexiusacademia/gowall/internal/wall"

// CrossingPosition finds where the temperature profile first drops to the
// dew point, scanning from the inside face outwards. It returns the
// distance from the inside face (m) and true, or false when the dew point
// is never reached. A profile already at or below the dew point on the
// inside face crosses at 0.
func CrossingPosition(layers []wall.Layer, framing *wall.FramingConfig, inside, outside, dewPoint float64) (float64, bool) {
	positions := Positions(layers)
	temps, _ := Temperatures(layers, framing, inside, outside)

	if temps[0] <= dewPoint {
		return 0, true
	}

	for i := 0; i < len(temps)-1; i++ {
		tStart, tEnd := temps[i], temps[i+1]
		// Only a drop from above to at-or-below the dew point counts
		if tStart > dewPoint && tEnd <= dewPoint {
			ratio := (tStart - dewPoint) / (tStart - tEnd)
			return positions[i] + ratio*(positions[i+1]-positions[i]), true
		}
	}
	return 0, false
}
