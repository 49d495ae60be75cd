package wall

// Rating is the qualitative U-value band
type Rating string

const (
	RatingExcellent Rating = "Excellent"
	RatingGood      Rating = "Good"
	RatingModerate  Rating = "Moderate"
	RatingPoor      Rating = "Poor"
)

// U-value band upper limits (W/(m²·K))
const (
	ExcellentMaxU = 0.15
	GoodMaxU      = 0.30
	ModerateMaxU  = 0.50
)

// RateUValue classifies a U-value into one of four bands
func RateUValue(u float64) Rating {
	switch {
	case u <= ExcellentMaxU:
		return RatingExcellent
	case u <= GoodMaxU:
		return RatingGood
	case u <= ModerateMaxU:
		return RatingModerate
	default:
		return RatingPoor
	}
}
