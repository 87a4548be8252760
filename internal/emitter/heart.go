package emitter

import (
	"math"

	"github.com/iburimskiy/heart-particles/internal/particle"
)

// HeartPoint samples the parametric heart curve at angle t in [-pi, pi].
// The result is in math orientation, y grows upwards.
func HeartPoint(t float64) particle.Point {
	sin := math.Sin(t)
	return particle.Point{
		X: 160 * sin * sin * sin,
		Y: 130*math.Cos(t) - 50*math.Cos(2*t) - 20*math.Cos(3*t) - 10*math.Cos(4*t) + 25,
	}
}
