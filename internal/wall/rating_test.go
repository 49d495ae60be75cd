package wall_test

import (
	"testing"

	"github.com/alexiusacademia/gowall/internal/wall"
	"github.com/stretchr/testify/assert"
)

func TestRateUValue(t *testing.T) {
	cases := []struct {
		u    float64
		want wall.Rating
	}{
		{0, wall.RatingExcellent},
		{0.15, wall.RatingExcellent},
		{0.151, wall.RatingGood},
		{0.30, wall.RatingGood},
		{0.45, wall.RatingModerate},
		{0.50, wall.RatingModerate},
		{0.51, wall.RatingPoor},
		{2.3, wall.RatingPoor},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, wall.RateUValue(c.u), "U=%g", c.u)
	}
}
